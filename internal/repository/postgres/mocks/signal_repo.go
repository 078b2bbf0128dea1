package mocks

import (
	"pairtrader/models"

	"github.com/stretchr/testify/mock"
)

type SignalRepo struct {
	mock.Mock
}

func (m *SignalRepo) Store(sig *models.Signal) (int, error) {
	args := m.Called(sig)
	return args.Int(0), args.Error(1)
}

func (m *SignalRepo) GetByRowID(rowID int) (*models.Signal, error) {
	args := m.Called(rowID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Signal), args.Error(1)
}

func (m *SignalRepo) GetByOrder(orderID, symbol string) (*models.Signal, error) {
	args := m.Called(orderID, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Signal), args.Error(1)
}

func (m *SignalRepo) GetRows(limit int) ([]models.Signal, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Signal), args.Error(1)
}

func (m *SignalRepo) Update(sig *models.Signal) error {
	args := m.Called(sig)
	return args.Error(0)
}

func (m *SignalRepo) Delete(rowID int) error {
	args := m.Called(rowID)
	return args.Error(0)
}
