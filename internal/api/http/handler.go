package http

import (
	"errors"
	"strconv"

	"pairtrader/internal/usecasees"
	"pairtrader/internal/usecasees/structs"
	"pairtrader/models"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SignalService interface {
	CreateFromWebhook(req *structs.WebhookRequest) (*models.Signal, error)
	ApplyOrderUpdate(req *structs.OrderUpdateRequest) (*models.Signal, error)
	List(limit int) ([]models.Signal, error)
	Get(rowID int) (*models.Signal, error)
	Delete(passphrase string, rowID int) error
}

type PairService interface {
	Register(m *models.Pair) error
	Update(m *models.Pair) error
	List(limit int) ([]models.Pair, error)
	ListActive(limit int) ([]models.Pair, error)
	ListWatchlist(limit int) ([]models.Pair, error)
	Get(name string) (*models.Pair, error)
	Delete(name string) error
}

type TickerService interface {
	Register(m *models.Ticker) error
	Upsert(m *models.Ticker) (bool, error)
	List(limit int) ([]models.Ticker, error)
	Get(symbol string) (*models.Ticker, error)
	Delete(symbol string) error
}

type Handler struct {
	fiber *fiber.App

	signals SignalService
	pairs   PairService
	tickers TickerService

	logger *logrus.Logger
}

func NewHandler(
	f *fiber.App,
	signals SignalService,
	pairs PairService,
	tickers TickerService,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		fiber:   f,
		signals: signals,
		pairs:   pairs,
		tickers: tickers,
		logger:  logger,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

// WebhookPost is the signal intake. A malformed ticker expression is not an
// error here: the record is stored flagged and the 201 carries an advisory
// message, because the alerting platform will not resend.
func (h *Handler) WebhookPost(c *fiber.Ctx) error {
	var req structs.WebhookRequest

	if err := c.BodyParser(&req); err != nil {
		return h.message(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.Ticker == "" {
		return h.message(c, fiber.StatusBadRequest, "this webhook needs a ticker!")
	}
	if req.OrderAction == "" {
		return h.message(c, fiber.StatusBadRequest, "this webhook needs an order action!")
	}
	if req.OrderContracts == 0 {
		return h.message(c, fiber.StatusBadRequest, "this webhook needs an order amount!")
	}

	signal, err := h.signals.CreateFromWebhook(&req)
	if err != nil {
		return h.fail(c, err)
	}

	msg := "signal created successfully."
	if signal.OrderStatus == models.StatusError {
		msg = "signal created, needs attention: " + signal.StatusMsg
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msg,
		"signal":  signal,
	})
}

// WebhookOrderPut applies one venue fill report and returns the full
// updated record.
func (h *Handler) WebhookOrderPut(c *fiber.Ctx) error {
	var req structs.OrderUpdateRequest

	if err := c.BodyParser(&req); err != nil {
		return h.message(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.OrderID == "" {
		return h.message(c, fiber.StatusBadRequest, "this update needs an order id!")
	}
	if req.Symbol == "" {
		return h.message(c, fiber.StatusBadRequest, "this update needs a symbol!")
	}

	signal, err := h.signals.ApplyOrderUpdate(&req)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(signal)
}

func (h *Handler) SignalList(c *fiber.Ctx) error {
	signals, err := h.signals.List(h.count(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"signals": signals})
}

func (h *Handler) SignalGet(c *fiber.Ctx) error {
	rowID, err := strconv.Atoi(c.Params("rowid"))
	if err != nil {
		return h.message(c, fiber.StatusBadRequest, "invalid rowid")
	}

	signal, err := h.signals.Get(rowID)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(signal)
}

func (h *Handler) SignalDelete(c *fiber.Ctx) error {
	rowID, err := strconv.Atoi(c.Params("rowid"))
	if err != nil {
		return h.message(c, fiber.StatusBadRequest, "invalid rowid")
	}

	if err := h.signals.Delete(c.Query("passphrase"), rowID); err != nil {
		return h.fail(c, err)
	}

	return h.message(c, fiber.StatusOK, "signal deleted")
}

func (h *Handler) PairPost(c *fiber.Ctx) error {
	pair, err := h.parsePair(c)
	if err != nil {
		return h.message(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.pairs.Register(pair); err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(pair)
}

func (h *Handler) PairPut(c *fiber.Ctx) error {
	pair, err := h.parsePair(c)
	if err != nil {
		return h.message(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.pairs.Update(pair); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(pair)
}

func (h *Handler) PairList(c *fiber.Ctx) error {
	var (
		pairs []models.Pair
		err   error
	)

	switch c.Query("status") {
	case "active":
		pairs, err = h.pairs.ListActive(h.count(c))
	case "watchlist":
		pairs, err = h.pairs.ListWatchlist(h.count(c))
	default:
		pairs, err = h.pairs.List(h.count(c))
	}

	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"pairs": pairs})
}

func (h *Handler) PairGet(c *fiber.Ctx) error {
	pair, err := h.pairs.Get(c.Params("name"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(pair)
}

func (h *Handler) PairDelete(c *fiber.Ctx) error {
	if err := h.pairs.Delete(c.Params("name")); err != nil {
		return h.fail(c, err)
	}

	return h.message(c, fiber.StatusOK, "pair deleted")
}

func (h *Handler) TickerPost(c *fiber.Ctx) error {
	ticker, err := h.parseTicker(c)
	if err != nil {
		return h.message(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.tickers.Register(ticker); err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(ticker)
}

func (h *Handler) TickerPut(c *fiber.Ctx) error {
	ticker, err := h.parseTicker(c)
	if err != nil {
		return h.message(c, fiber.StatusBadRequest, err.Error())
	}

	created, err := h.tickers.Upsert(ticker)
	if err != nil {
		return h.fail(c, err)
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(ticker)
	}

	return c.JSON(ticker)
}

func (h *Handler) TickerList(c *fiber.Ctx) error {
	tickers, err := h.tickers.List(h.count(c))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"tickers": tickers})
}

func (h *Handler) TickerGet(c *fiber.Ctx) error {
	ticker, err := h.tickers.Get(c.Params("symbol"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(ticker)
}

func (h *Handler) TickerDelete(c *fiber.Ctx) error {
	if err := h.tickers.Delete(c.Params("symbol")); err != nil {
		return h.fail(c, err)
	}

	return h.message(c, fiber.StatusOK, "ticker deleted")
}

func (h *Handler) parsePair(c *fiber.Ctx) (*models.Pair, error) {
	var pair models.Pair

	if err := c.BodyParser(&pair); err != nil {
		return nil, errors.New("invalid request body")
	}

	if pair.Ticker1 == "" || pair.Ticker2 == "" {
		return nil, errors.New("a pair needs both leg tickers!")
	}

	return &pair, nil
}

func (h *Handler) parseTicker(c *fiber.Ctx) (*models.Ticker, error) {
	var ticker models.Ticker

	if err := c.BodyParser(&ticker); err != nil {
		return nil, errors.New("invalid request body")
	}

	if ticker.Symbol == "" {
		return nil, errors.New("a ticker needs a symbol!")
	}

	if ticker.SecType == "" {
		ticker.SecType = models.SecTypeStock
	}
	if ticker.Xch == "" {
		ticker.Xch = "SMART"
	}
	if ticker.PriXch == "" {
		ticker.PriXch = "NYSE"
	}
	if ticker.Currency == "" {
		ticker.Currency = "USD"
	}

	return &ticker, nil
}

func (h *Handler) count(c *fiber.Ctx) int {
	count, err := strconv.Atoi(c.Params("count", "0"))
	if err != nil || count < 0 {
		return 0
	}

	return count
}

func (h *Handler) message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := statusFromErr(err)

	if status == fiber.StatusInternalServerError {
		h.logger.
			WithField("path", c.Path()).
			WithError(err).
			Error("request failed")
	}

	return h.message(c, status, err.Error())
}

func statusFromErr(err error) int {
	switch {
	case errors.Is(err, usecasees.ErrSignalNotFound),
		errors.Is(err, usecasees.ErrPairNotFound),
		errors.Is(err, usecasees.ErrTickerNotFound):
		return fiber.StatusNotFound

	case errors.Is(err, usecasees.ErrWebhookDisabled):
		return fiber.StatusServiceUnavailable

	case errors.Is(err, usecasees.ErrPassphraseWrong),
		errors.Is(err, usecasees.ErrMissingContracts),
		errors.Is(err, usecasees.ErrPairExists),
		errors.Is(err, usecasees.ErrTickerExists),
		errors.Is(err, usecasees.ErrTickerBusy),
		errors.Is(err, usecasees.ErrTickerSingle),
		errors.Is(err, usecasees.ErrProblematicTicker):
		return fiber.StatusBadRequest
	}

	return fiber.StatusInternalServerError
}
