package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(
	f *fiber.App,
	signals SignalService,
	pairs PairService,
	tickers TickerService,
	l *logrus.Logger,
) {
	h := NewHandler(f, signals, pairs, tickers, l)

	api := f.Group("api")
	api.Get("/healthcheck", h.HealthCheck)

	v1 := api.Group("v1")

	v1.Post("/webhook", h.WebhookPost)
	v1.Put("/webhook/order", h.WebhookOrderPut)

	v1.Get("/signals", h.SignalList)
	v1.Get("/signals/:count", h.SignalList)
	v1.Get("/signal/:rowid", h.SignalGet)
	v1.Delete("/signal/:rowid", h.SignalDelete)

	v1.Post("/pairs", h.PairPost)
	v1.Put("/pairs", h.PairPut)
	v1.Get("/pairs", h.PairList)
	v1.Get("/pairs/:count", h.PairList)
	v1.Get("/pair/:name", h.PairGet)
	v1.Delete("/pair/:name", h.PairDelete)

	v1.Post("/tickers", h.TickerPost)
	v1.Put("/tickers", h.TickerPut)
	v1.Get("/tickers", h.TickerList)
	v1.Get("/tickers/:count", h.TickerList)
	v1.Get("/ticker/:symbol", h.TickerGet)
	v1.Delete("/ticker/:symbol", h.TickerDelete)
}
