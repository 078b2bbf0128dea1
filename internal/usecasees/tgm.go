package usecasees

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"time"

	"pairtrader/internal/controllers"
	"pairtrader/internal/repository/mongo"
	mongoStructs "pairtrader/internal/repository/mongo/structs"
	"pairtrader/internal/repository/postgres"

	"github.com/sirupsen/logrus"
)

// TgmUseCase is the operator command loop: the webhook and analytics profiles
// can be toggled and the SMA window resized from the chat, without a redeploy.
type TgmUseCase struct {
	tgmController controllers.TgmCtrl

	pairRepo  postgres.PairRepo
	priceRepo postgres.PriceRepo

	settingsRepo mongo.SettingsRepo

	logger *logrus.Logger
}

func NewTgmUseCase(
	tgmController controllers.TgmCtrl,
	pairRepo postgres.PairRepo,
	priceRepo postgres.PriceRepo,
	settingsRepo mongo.SettingsRepo,
	logger *logrus.Logger,
) *TgmUseCase {
	return &TgmUseCase{
		tgmController: tgmController,
		pairRepo:      pairRepo,
		priceRepo:     priceRepo,
		settingsRepo:  settingsRepo,
		logger:        logger,
	}
}

func (u *TgmUseCase) CommandProcessor() {
	for update := range u.tgmController.GetUpdates() {
		if update.Message == nil {
			continue
		}

		switch update.Message.Command() {
		case "ping":
			u.pingProc()
		case "status":
			u.statusProc()
		case "webhook":
			u.profileProc(mongo.ProfileWebhook, update.Message.CommandArguments())
		case "analytics":
			u.profileProc(mongo.ProfileAnalytics, update.Message.CommandArguments())
		case "window":
			u.windowProc(update.Message.CommandArguments())
		}
	}
}

func (u *TgmUseCase) pingProc() {
	if err := u.tgmController.Send(
		fmt.Sprintf("PONG [ %s ]", time.Now().Format(time.RFC822)),
	); err != nil {
		u.logger.WithField("method", "pingProc").Debug(err)
	}
}

// statusProc reports every active pair with its last sampled spread and the
// current SMA columns.
func (u *TgmUseCase) statusProc() {
	msg := "[ Pairs Stat ]\n"

	pairs, err := u.pairRepo.GetActive(0)
	if err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	for _, pair := range pairs {
		last, err := u.priceRepo.GetLast(pair.Name)
		if err != nil {
			u.logger.
				WithField("pair", pair.Name).
				WithError(err).
				Error(string(debug.Stack()))
			continue
		}

		msg += fmt.Sprintf(
			"Pair:\t%s\n"+
				"Last:\t%.4f\n"+
				"SMA:\t%.4f\n"+
				"Dist:\t%.4f\n"+
				"Std:\t%.4f\n",
			pair.Name,
			last.Price,
			pair.SMA,
			pair.SMADist,
			pair.Std,
		)
	}

	if err := u.tgmController.Send(msg); err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
	}
}

func (u *TgmUseCase) profileProc(profile, arg string) {
	var status mongoStructs.WebhookStatus

	switch arg {
	case "on":
		status = mongoStructs.Enabled
	case "off":
		status = mongoStructs.Disabled
	default:
		u.reply(fmt.Sprintf("usage: /%s on|off", profile))
		return
	}

	settings, err := u.settingsRepo.Load(profile)
	if err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	if err := u.settingsRepo.UpdateStatus(settings.ID, status); err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	u.reply(fmt.Sprintf("%s %s", profile, status.ToString()))
}

func (u *TgmUseCase) windowProc(arg string) {
	window, err := strconv.Atoi(arg)
	if err != nil || window <= 0 {
		u.reply("usage: /window <samples>")
		return
	}

	settings, err := u.settingsRepo.Load(mongo.ProfileAnalytics)
	if err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	if err := u.settingsRepo.UpdateSMAWindow(settings.ID, window); err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	if err := u.settingsRepo.ReLoad(settings); err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
		return
	}

	u.reply(fmt.Sprintf("sma window is now %d samples", settings.SMAWindow))
}

func (u *TgmUseCase) reply(text string) {
	if err := u.tgmController.Send(text); err != nil {
		u.logger.
			WithField("method", "reply").
			Debug(err)
	}
}
