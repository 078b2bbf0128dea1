package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (a *App) initTgBot() error {
	bot, err := tgbotapi.NewBotAPI(a.Config.TelegramApiToken)
	if err != nil {
		return err
	}

	// bot API tracing follows the service log level
	bot.Debug = a.Config.LogLevel == "DEBUG"

	a.TGM = bot

	return nil
}
