package usecasees

import (
	"database/sql"
	"errors"

	"pairtrader/internal/repository/postgres"
	"pairtrader/models"

	"github.com/sirupsen/logrus"
)

var (
	ErrTickerNotFound = errors.New("ticker not found")
	ErrTickerExists   = errors.New("ticker with that symbol already exists")
)

type TickerUseCase struct {
	tickerRepo postgres.TickerRepo
	pairRepo   postgres.PairRepo

	logger *logrus.Logger
}

func NewTickerUseCase(
	tickerRepo postgres.TickerRepo,
	pairRepo postgres.PairRepo,
	logger *logrus.Logger,
) *TickerUseCase {
	return &TickerUseCase{
		tickerRepo: tickerRepo,
		pairRepo:   pairRepo,
		logger:     logger,
	}
}

// Register adds an instrument to the registry. A ticker activated for single
// trading must not be an active leg of any pair.
func (u *TickerUseCase) Register(m *models.Ticker) error {
	if existing, err := u.tickerRepo.GetBySymbol(m.Symbol); err == nil && existing != nil {
		return ErrTickerExists
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if err := u.checkFree(m); err != nil {
		return err
	}

	return u.tickerRepo.Store(m)
}

// Upsert updates an existing registration or creates it, the way the webhook
// configuration UI posts tickers.
func (u *TickerUseCase) Upsert(m *models.Ticker) (created bool, err error) {
	if err := u.checkFree(m); err != nil {
		return false, err
	}

	if _, err := u.tickerRepo.GetBySymbol(m.Symbol); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return true, u.tickerRepo.Store(m)
		}
		return false, err
	}

	return false, u.tickerRepo.Update(m)
}

func (u *TickerUseCase) List(limit int) ([]models.Ticker, error) {
	return u.tickerRepo.GetRows(limit)
}

func (u *TickerUseCase) Get(symbol string) (*models.Ticker, error) {
	ticker, err := u.tickerRepo.GetBySymbol(symbol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTickerNotFound
		}
		return nil, err
	}

	return ticker, nil
}

func (u *TickerUseCase) Delete(symbol string) error {
	if _, err := u.Get(symbol); err != nil {
		return err
	}

	return u.tickerRepo.Delete(symbol)
}

func (u *TickerUseCase) checkFree(m *models.Ticker) error {
	if m.Active != 1 {
		return nil
	}

	active, err := u.pairRepo.FindActiveTicker(m.Symbol)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if active != nil {
		return ErrTickerBusy
	}

	return nil
}
