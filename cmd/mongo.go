package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

func (a *App) initMongo() error {
	credential := options.Credential{
		AuthSource: a.Config.Mongo.DBName,
		Username:   a.Config.Mongo.User,
		Password:   a.Config.Mongo.Password,
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.Config.Mongo.DSN()).SetAuth(credential))
	if err != nil {
		return err
	}

	// fail at startup, not on the first settings read
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	a.Mongo = client

	return nil
}
