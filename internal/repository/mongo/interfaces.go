package mongo

import (
	"pairtrader/internal/repository/mongo/structs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockery --case=snake --name=SettingsRepo

type SettingsRepo interface {
	SetDefault() error
	Load(name string) (*structs.Settings, error)
	ReLoad(settings *structs.Settings) error
	UpdateStatus(id primitive.ObjectID, status structs.WebhookStatus) error
	UpdateSMAWindow(id primitive.ObjectID, window int) error
}
