package http

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type Middleware struct {
	appName string
	fiber   *fiber.App
}

func NewMiddleware(appName string, fiber *fiber.App) *Middleware {
	return &Middleware{
		appName: appName,
		fiber:   fiber,
	}
}

func (m *Middleware) Register() {
	m.useRequestID()
	m.useMetrics()
}

func (m *Middleware) useMetrics() {
	prometheus := fiberprometheus.New(m.appName)
	prometheus.RegisterAt(m.fiber, "/metrics")
	m.fiber.Use(prometheus.Middleware)
}

func (m *Middleware) useRequestID() {
	m.fiber.Use(func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Locals(HeaderRequestID, id)
		c.Set(HeaderRequestID, id)

		return c.Next()
	})
}
