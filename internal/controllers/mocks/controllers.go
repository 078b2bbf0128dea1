package mocks

import (
	"net/url"

	tgmBotAPI "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/mock"
)

type ClientCtrl struct {
	mock.Mock
}

func (m *ClientCtrl) Send(method string, url *url.URL, body []byte, useApiKey bool) ([]byte, error) {
	args := m.Called(method, url, body, useApiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type CryptoCtrl struct {
	mock.Mock
}

func (m *CryptoCtrl) GetSignature(query string) string {
	args := m.Called(query)
	return args.String(0)
}

func (m *CryptoCtrl) PassphraseValid(passphrase string) bool {
	args := m.Called(passphrase)
	return args.Bool(0)
}

type TgmCtrl struct {
	mock.Mock
}

func (m *TgmCtrl) Send(text string) error {
	args := m.Called(text)
	return args.Error(0)
}

func (m *TgmCtrl) GetUpdates() tgmBotAPI.UpdatesChannel {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(tgmBotAPI.UpdatesChannel)
}
