package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramApiToken  string
	TelegramChatID    string
	QuoteApiKey       string
	QuoteUrl          string
	WebhookPassphrase string
	SecretKey         string
	ListenAddr        string
	LokiHost          string
	LogLevel          string
	DB                *DB
	Mongo             *Mongo
}

type DB struct {
	Host     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Mongo struct {
	Host     string
	User     string
	Password string
	DBName   string
}

var ErrEnvNotFound = errors.New("err env not found")

func (a *App) loadConfig(confFileName string) error {
	var cfg Config
	var db DB
	var mg Mongo

	err := godotenv.Load(confFileName)
	if err != nil {
		return err
	}

	if cfg.TelegramApiToken, err = cfg.set("TELEGRAM_API_TOKEN"); err != nil {
		return err
	}

	if cfg.TelegramChatID, err = cfg.set("TELEGRAM_CHAT_ID"); err != nil {
		return err
	}

	if cfg.QuoteApiKey, err = cfg.set("QUOTE_API_KEY"); err != nil {
		return err
	}

	if cfg.QuoteUrl, err = cfg.set("QUOTE_URL"); err != nil {
		return err
	}

	if cfg.WebhookPassphrase, err = cfg.set("WEBHOOK_PASSPHRASE"); err != nil {
		return err
	}

	if cfg.SecretKey, err = cfg.set("SECRET_KEY"); err != nil {
		return err
	}

	if cfg.ListenAddr, err = cfg.set("LISTEN_ADDR"); err != nil {
		return err
	}

	if cfg.LokiHost, err = cfg.set("LOKI_HOST"); err != nil {
		return err
	}

	cfg.LogLevel = os.Getenv("LOG_LEVEL")

	if db.Host, err = cfg.set("PG_HOST"); err != nil {
		return err
	}

	if db.User, err = cfg.set("PG_USER"); err != nil {
		return err
	}

	if db.Password, err = cfg.set("PG_PASSWORD"); err != nil {
		return err
	}

	if db.DBName, err = cfg.set("PG_DBNAME"); err != nil {
		return err
	}

	if db.SSLMode, err = cfg.set("PG_SSL_MODE"); err != nil {
		return err
	}

	if mg.Host, err = cfg.set("MONGO_HOST"); err != nil {
		return err
	}

	if mg.User, err = cfg.set("MONGO_USER"); err != nil {
		return err
	}

	if mg.Password, err = cfg.set("MONGO_PASSWORD"); err != nil {
		return err
	}

	if mg.DBName, err = cfg.set("MONGO_DBNAME"); err != nil {
		return err
	}

	cfg.DB = &db
	cfg.Mongo = &mg

	a.Config = &cfg

	return nil
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

func (m *Mongo) DSN() string {
	return fmt.Sprintf("mongodb://%s:27017", m.Host)
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", ErrEnvNotFound
	}

	return os.Getenv(key), nil
}
