package mongo

import (
	"context"

	"pairtrader/internal/repository/mongo/structs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ProfileWebhook   = "webhook"
	ProfileAnalytics = "analytics"
)

type SettingsRepository struct {
	conn       *mongo.Client
	collection *mongo.Collection
}

func NewSettingsRepository(conn *mongo.Client) *SettingsRepository {
	collection := conn.Database("settings").Collection("profiles")

	return &SettingsRepository{conn: conn, collection: collection}
}

func (r *SettingsRepository) SetDefault() error {
	profiles := []structs.Settings{
		{
			Name:      ProfileWebhook,
			Status:    structs.Enabled.ToString(),
			Notify:    true,
			SMAWindow: 0,
		},
		{
			Name:      ProfileAnalytics,
			Status:    structs.Enabled.ToString(),
			Notify:    false,
			SMAWindow: 20,
		},
	}

	for _, profile := range profiles {
		check, err := r.Load(profile.Name)
		if err != nil && err != mongo.ErrNoDocuments {
			return err
		}

		if primitive.ObjectID.IsZero(check.ID) {
			_, err := r.collection.InsertOne(context.TODO(), profile)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *SettingsRepository) Load(name string) (*structs.Settings, error) {
	var result structs.Settings

	if err := r.collection.FindOne(context.TODO(), bson.D{{Key: "name", Value: name}}).Decode(&result); err != nil {
		return &result, err
	}

	return &result, nil
}

func (r *SettingsRepository) ReLoad(settings *structs.Settings) error {
	if err := r.collection.FindOne(context.TODO(), bson.D{{Key: "name", Value: settings.Name}}).Decode(&settings); err != nil {
		return err
	}

	return nil
}

func (r *SettingsRepository) UpdateStatus(id primitive.ObjectID, status structs.WebhookStatus) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: status}}}},
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *SettingsRepository) UpdateSMAWindow(id primitive.ObjectID, window int) error {
	_, err := r.collection.UpdateOne(
		context.TODO(),
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "sma_window", Value: window}}}},
	)
	if err != nil {
		return err
	}

	return nil
}
