package usecasees

import (
	"database/sql"
	"errors"
	"strings"

	"pairtrader/internal/repository/postgres"
	"pairtrader/models"

	"github.com/sirupsen/logrus"
)

var (
	ErrPairNotFound      = errors.New("pair not found")
	ErrPairExists        = errors.New("pair with that name already exists")
	ErrProblematicTicker = errors.New(ReasonProblematic)
	ErrTickerBusy        = errors.New("ticker is already active in a pair!")
	ErrTickerSingle      = errors.New("ticker is already active for single trading!")
)

type PairUseCase struct {
	pairRepo   postgres.PairRepo
	tickerRepo postgres.TickerRepo

	logger *logrus.Logger
}

func NewPairUseCase(
	pairRepo postgres.PairRepo,
	tickerRepo postgres.TickerRepo,
	logger *logrus.Logger,
) *PairUseCase {
	return &PairUseCase{
		pairRepo:   pairRepo,
		tickerRepo: tickerRepo,
		logger:     logger,
	}
}

// Register creates a pair. The composite name is ticker1-ticker2, so a dash
// inside either leg would make the name ambiguous and is refused. An active
// pair must not share a leg with another active pair or an active single
// ticker; this gate is what the reconciliation logic relies on.
func (u *PairUseCase) Register(m *models.Pair) error {
	name, err := combineTickers(m.Ticker1, m.Ticker2)
	if err != nil {
		return err
	}
	m.Name = name

	if existing, err := u.pairRepo.GetByName(m.Name); err == nil && existing != nil {
		return ErrPairExists
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if err := u.checkLegsFree(m); err != nil {
		return err
	}

	return u.pairRepo.Store(m)
}

func (u *PairUseCase) Update(m *models.Pair) error {
	name, err := combineTickers(m.Ticker1, m.Ticker2)
	if err != nil {
		return err
	}
	m.Name = name

	if _, err := u.pairRepo.GetByName(m.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPairNotFound
		}
		return err
	}

	if err := u.checkLegsFree(m); err != nil {
		return err
	}

	return u.pairRepo.Update(m)
}

func (u *PairUseCase) List(limit int) ([]models.Pair, error) {
	return u.pairRepo.GetRows(limit)
}

func (u *PairUseCase) ListActive(limit int) ([]models.Pair, error) {
	return u.pairRepo.GetActive(limit)
}

func (u *PairUseCase) ListWatchlist(limit int) ([]models.Pair, error) {
	return u.pairRepo.GetWatchlist(limit)
}

func (u *PairUseCase) Get(name string) (*models.Pair, error) {
	pair, err := u.pairRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPairNotFound
		}
		return nil, err
	}

	return pair, nil
}

func (u *PairUseCase) Delete(name string) error {
	if _, err := u.Get(name); err != nil {
		return err
	}

	return u.pairRepo.Delete(name)
}

func (u *PairUseCase) checkLegsFree(m *models.Pair) error {
	if m.Status != models.PairActive {
		return nil
	}

	for _, leg := range []string{m.Ticker1, m.Ticker2} {
		active, err := u.pairRepo.FindActiveTicker(leg)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if active != nil && active.Name != m.Name {
			return ErrTickerBusy
		}

		ticker, err := u.tickerRepo.GetBySymbol(leg)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		if ticker != nil && ticker.Active == 1 {
			return ErrTickerSingle
		}
	}

	return nil
}

func combineTickers(ticker1, ticker2 string) (string, error) {
	if strings.Contains(ticker1, "-") || strings.Contains(ticker2, "-") {
		return "", ErrProblematicTicker
	}

	return ticker1 + "-" + ticker2, nil
}
