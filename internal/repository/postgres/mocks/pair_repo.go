package mocks

import (
	"pairtrader/models"

	"github.com/stretchr/testify/mock"
)

type PairRepo struct {
	mock.Mock
}

func (m *PairRepo) Store(pair *models.Pair) error {
	args := m.Called(pair)
	return args.Error(0)
}

func (m *PairRepo) GetByName(name string) (*models.Pair, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pair), args.Error(1)
}

func (m *PairRepo) GetRows(limit int) ([]models.Pair, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pair), args.Error(1)
}

func (m *PairRepo) GetActive(limit int) ([]models.Pair, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pair), args.Error(1)
}

func (m *PairRepo) GetWatchlist(limit int) ([]models.Pair, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pair), args.Error(1)
}

func (m *PairRepo) FindActiveTicker(symbol string) (*models.Pair, error) {
	args := m.Called(symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pair), args.Error(1)
}

func (m *PairRepo) Update(pair *models.Pair) error {
	args := m.Called(pair)
	return args.Error(0)
}

func (m *PairRepo) SetAnalytics(name string, actPrice, sma, smaDist, std float64) error {
	args := m.Called(name, actPrice, sma, smaDist, std)
	return args.Error(0)
}

func (m *PairRepo) Delete(name string) error {
	args := m.Called(name)
	return args.Error(0)
}
