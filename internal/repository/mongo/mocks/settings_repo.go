package mocks

import (
	"pairtrader/internal/repository/mongo/structs"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SettingsRepo struct {
	mock.Mock
}

func (m *SettingsRepo) SetDefault() error {
	args := m.Called()
	return args.Error(0)
}

func (m *SettingsRepo) Load(name string) (*structs.Settings, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*structs.Settings), args.Error(1)
}

func (m *SettingsRepo) ReLoad(settings *structs.Settings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *SettingsRepo) UpdateStatus(id primitive.ObjectID, status structs.WebhookStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *SettingsRepo) UpdateSMAWindow(id primitive.ObjectID, window int) error {
	args := m.Called(id, window)
	return args.Error(0)
}
