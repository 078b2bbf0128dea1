package mocks

import (
	"pairtrader/models"

	"github.com/stretchr/testify/mock"
)

type TickerRepo struct {
	mock.Mock
}

func (m *TickerRepo) Store(ticker *models.Ticker) error {
	args := m.Called(ticker)
	return args.Error(0)
}

func (m *TickerRepo) GetBySymbol(symbol string) (*models.Ticker, error) {
	args := m.Called(symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticker), args.Error(1)
}

func (m *TickerRepo) GetRows(limit int) ([]models.Ticker, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticker), args.Error(1)
}

func (m *TickerRepo) Update(ticker *models.Ticker) error {
	args := m.Called(ticker)
	return args.Error(0)
}

func (m *TickerRepo) Delete(symbol string) error {
	args := m.Called(symbol)
	return args.Error(0)
}
