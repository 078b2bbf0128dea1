package mocks

import (
	"time"

	"pairtrader/models"

	"github.com/stretchr/testify/mock"
)

type PriceRepo struct {
	mock.Mock
}

func (m *PriceRepo) Store(price *models.Price) error {
	args := m.Called(price)
	return args.Error(0)
}

func (m *PriceRepo) GetByCreatedByInterval(pair string, sTime, eTime time.Time) ([]models.Price, error) {
	args := m.Called(pair, sTime, eTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Price), args.Error(1)
}

func (m *PriceRepo) GetLast(pair string) (*models.Price, error) {
	args := m.Called(pair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Price), args.Error(1)
}
