package usecasees

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"runtime/debug"

	"pairtrader/internal/controllers"
	"pairtrader/internal/repository/mongo"
	"pairtrader/internal/repository/mongo/structs"
	"pairtrader/internal/repository/postgres"
	signalStructs "pairtrader/internal/usecasees/structs"
	"pairtrader/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const MsgMultipleActive = "multiple active orders"

var (
	ErrPassphraseWrong  = errors.New("passphrase incorrect")
	ErrWebhookDisabled  = errors.New("webhook disabled")
	ErrSignalNotFound   = errors.New("signal not found")
	ErrMissingContracts = errors.New("missing contract amount")
)

type SignalUseCase struct {
	cryptoController controllers.CryptoCtrl
	tgmController    controllers.TgmCtrl

	signalRepo postgres.SignalRepo
	tickerRepo postgres.TickerRepo

	settingsRepo mongo.SettingsRepo

	metrics map[signalStructs.MetricConst]prometheus.Counter

	logger *logrus.Logger
}

func NewSignalUseCase(
	cryptoController controllers.CryptoCtrl,
	tgmController controllers.TgmCtrl,
	signalRepo postgres.SignalRepo,
	tickerRepo postgres.TickerRepo,
	settingsRepo mongo.SettingsRepo,
	metrics map[signalStructs.MetricConst]prometheus.Counter,
	logger *logrus.Logger,
) *SignalUseCase {
	return &SignalUseCase{
		cryptoController: cryptoController,
		tgmController:    tgmController,
		signalRepo:       signalRepo,
		tickerRepo:       tickerRepo,
		settingsRepo:     settingsRepo,
		metrics:          metrics,
		logger:           logger,
	}
}

// CreateFromWebhook runs the parser once and persists the signal whatever the
// parse outcome. An incoming trade intent is never dropped: malformed tickers
// come back flagged with order_status "error" and the reason in status_msg.
func (u *SignalUseCase) CreateFromWebhook(req *signalStructs.WebhookRequest) (*models.Signal, error) {
	if !u.cryptoController.PassphraseValid(req.Passphrase) {
		return nil, ErrPassphraseWrong
	}

	if err := u.webhookEnabled(); err != nil {
		return nil, err
	}

	u.inc(signalStructs.MetricSignalReceived)

	signal := &models.Signal{
		Ticker:         req.Ticker,
		OrderAction:    req.OrderAction,
		OrderContracts: req.OrderContracts,
		OrderPrice:     req.OrderPrice,
		MarPos:         req.MarPos,
		MarPosSize:     req.MarPosSize,
		PreMarPos:      req.PreMarPos,
		PreMarPosSize:  req.PreMarPosSize,
		OrderComment:   req.OrderComment,
		OrderStatus:    req.OrderStatus,
		OrderID1:       req.OrderID1,
		OrderID2:       req.OrderID2,
	}

	if signal.OrderStatus == "" {
		signal.OrderStatus = models.StatusWaiting
	}

	res := ParseTicker(req.Ticker, u.lookup)

	signal.TickerType = res.Kind
	signal.Ticker1 = res.Ticker1
	signal.Ticker2 = res.Ticker2
	signal.Hedge = res.Hedge

	if req.Ticker1 != "" {
		signal.Ticker1 = req.Ticker1
	}
	if req.Ticker2 != "" {
		signal.Ticker2 = req.Ticker2
	}
	if req.Hedge != 0 {
		signal.Hedge = req.Hedge
	}

	if !res.OK {
		signal.OrderStatus = models.StatusError
		signal.StatusMsg = res.Reason

		u.inc(signalStructs.MetricSignalParseFailed)
		u.notify(fmt.Sprintf("[ Webhook ]\nproblematic signal: %s\nreason: %s", req.Ticker, res.Reason))
	}

	rowID, err := u.signalRepo.Store(signal)
	if err != nil {
		return nil, err
	}
	signal.RowID = rowID

	return signal, nil
}

// ApplyOrderUpdate matches one venue fill report to a stored signal leg and
// runs it through the state transition. A signal that already reached
// "filled" is terminal: the event is acknowledged without mutation.
func (u *SignalUseCase) ApplyOrderUpdate(req *signalStructs.OrderUpdateRequest) (*models.Signal, error) {
	if !u.cryptoController.PassphraseValid(req.Passphrase) {
		return nil, ErrPassphraseWrong
	}

	if req.Partial && req.Contracts == 0 {
		return nil, ErrMissingContracts
	}

	signal, err := u.signalRepo.GetByOrder(req.OrderID, req.Symbol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSignalNotFound
		}
		return nil, err
	}

	if signal.OrderStatus == models.StatusFilled {
		return signal, nil
	}

	updated := applyOrderEvent(*signal, req.Event())

	if err := u.signalRepo.Update(&updated); err != nil {
		return nil, err
	}

	u.inc(signalStructs.MetricOrderUpdateApplied)

	switch updated.OrderStatus {
	case models.StatusFilled:
		u.inc(signalStructs.MetricOrderFilled)
	case models.StatusCanceled:
		u.inc(signalStructs.MetricOrderCanceled)
		u.notify(fmt.Sprintf("[ Order ]\ncanceled: %s\norder %s", updated.Ticker, req.OrderID))
	}

	return &updated, nil
}

func (u *SignalUseCase) List(limit int) ([]models.Signal, error) {
	return u.signalRepo.GetRows(limit)
}

func (u *SignalUseCase) Get(rowID int) (*models.Signal, error) {
	signal, err := u.signalRepo.GetByRowID(rowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSignalNotFound
		}
		return nil, err
	}

	return signal, nil
}

func (u *SignalUseCase) Delete(passphrase string, rowID int) error {
	if !u.cryptoController.PassphraseValid(passphrase) {
		return ErrPassphraseWrong
	}

	return u.signalRepo.Delete(rowID)
}

// lookup adapts the ticker repository for the parser. Registry misses and
// store failures both read as "unregistered": the parser must keep going
// either way, so only the error gets logged.
func (u *SignalUseCase) lookup(symbol string) *models.Ticker {
	ticker, err := u.tickerRepo.GetBySymbol(symbol)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			u.logger.
				WithError(err).
				Error(string(debug.Stack()))
		}
		return nil
	}

	return ticker
}

func (u *SignalUseCase) webhookEnabled() error {
	settings, err := u.settingsRepo.Load(mongo.ProfileWebhook)
	if err != nil {
		// settings store being down must not lose signals
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
		return nil
	}

	if settings.Status == structs.Disabled.ToString() {
		return ErrWebhookDisabled
	}

	return nil
}

func (u *SignalUseCase) notify(text string) {
	if settings, err := u.settingsRepo.Load(mongo.ProfileWebhook); err == nil && !settings.Notify {
		return
	}

	if err := u.tgmController.Send(text); err != nil {
		u.logger.
			WithField("func", "notify").
			Debug(err)
	}
}

func (u *SignalUseCase) inc(m signalStructs.MetricConst) {
	if c, ok := u.metrics[m]; ok {
		c.Inc()
	}
}

// applyOrderEvent is the reconciliation state machine: current persisted
// state in, one venue event in, next state out. No side effects, no store.
func applyOrderEvent(s models.Signal, ev signalStructs.OrderEvent) models.Signal {
	if s.OrderStatus == models.StatusFilled {
		return s
	}

	switch ev.Type {
	case signalStructs.EventCancel:
		s.OrderStatus = models.StatusCanceled
		s.StatusMsg = MsgMultipleActive
		return s

	case signalStructs.EventPartialAdjust:
		canceled := s.OrderContracts - ev.Contracts
		s.OrderContracts = ev.Contracts
		s.OrderStatus = models.StatusPartFilled
		s.StatusMsg = fmt.Sprintf("%d contracts canceled", canceled)
		return s
	}

	leg := matchLeg(&s, ev.OrderID, ev.Symbol)
	if leg == 0 {
		return s
	}

	expected := s.OrderContracts
	if leg == 1 {
		s.FillPrice1 = ev.Price
	} else {
		s.FillPrice2 = ev.Price
		expected = int(math.Floor(float64(s.OrderContracts) * s.Hedge))
	}

	if ev.Filled < expected {
		s.OrderStatus = models.StatusPartFilled
		s.StatusMsg = fmt.Sprintf("%s: %d remaining", ev.Symbol, expected-ev.Filled)
		return s
	}

	if s.TickerType == models.KindPair && (s.FillPrice1 == 0 || s.FillPrice2 == 0) {
		// this leg is done but the spread price is still unobservable
		s.OrderStatus = models.StatusFilledWait
		return s
	}

	if s.TickerType == models.KindPair {
		s.FillPrice = round4(s.FillPrice1 - s.Hedge*s.FillPrice2)
	} else {
		s.FillPrice = s.FillPrice1
	}

	s.OrderStatus = models.StatusFilled
	s.StatusMsg = ""

	if s.OrderPrice != 0 {
		slip := round4(s.OrderPrice - s.FillPrice)
		if s.OrderAction == models.SideSell {
			slip = -slip
		}
		s.Slip = slip
	}

	return s
}

// matchLeg double-keys on (order id, symbol) so a stale order id reused for a
// different instrument cannot corrupt the wrong leg.
func matchLeg(s *models.Signal, orderID, symbol string) int {
	switch {
	case s.OrderID1 == orderID && s.Ticker1 == symbol:
		return 1
	case s.OrderID2 == orderID && s.Ticker2 == symbol:
		return 2
	}

	return 0
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
