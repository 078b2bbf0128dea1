package main

import (
	"flag"
	"strconv"

	httpAPI "pairtrader/internal/api/http"
	"pairtrader/internal/controllers"
	mongoRepo "pairtrader/internal/repository/mongo"
	"pairtrader/internal/repository/postgres"
	"pairtrader/internal/usecasees"

	"github.com/gofiber/fiber/v2"
	"github.com/ic2hrmk/promtail"
)

func main() {
	var app App
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	app.Name = "pairtrader"

	app.initLogger()

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.setLogLevel()

	if err := app.initPromTail(); err != nil {
		panic(err)
	}

	if err := app.initTgBot(); err != nil {
		panic(err)
	}

	if err := app.InitDB(app.Config.DB); err != nil {
		panic(err)
	}

	if err := app.initMongo(); err != nil {
		panic(err)
	}

	app.initHTTPClient()
	app.InitMetrics()

	chatID, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
	if err != nil {
		panic(err)
	}

	signalRepo := postgres.NewSignalRepository(app.DB)
	pairRepo := postgres.NewPairRepository(app.DB)
	tickerRepo := postgres.NewTickerRepository(app.DB)
	priceRepo := postgres.NewPriceRepository(app.DB)

	settingsRepo := mongoRepo.NewSettingsRepository(app.Mongo)
	if err := settingsRepo.SetDefault(); err != nil {
		panic(err)
	}

	clientController := controllers.NewClientController(
		app.HTTPClient,
		app.Config.QuoteApiKey,
		app.Logger,
	)
	cryptoController := controllers.NewCryptoController(
		app.Config.SecretKey,
		app.Config.WebhookPassphrase,
	)
	tgmController := controllers.NewTgmController(
		app.TGM,
		chatID,
	)

	signalUseCase := usecasees.NewSignalUseCase(
		cryptoController,
		tgmController,
		signalRepo,
		tickerRepo,
		settingsRepo,
		app.Metrics.Signal,
		app.Logger,
	)

	pairUseCase := usecasees.NewPairUseCase(
		pairRepo,
		tickerRepo,
		app.Logger,
	)

	tickerUseCase := usecasees.NewTickerUseCase(
		tickerRepo,
		pairRepo,
		app.Logger,
	)

	analyticsUseCase := usecasees.NewAnalyticsUseCase(
		clientController,
		tgmController,
		pairRepo,
		priceRepo,
		settingsRepo,
		app.Config.QuoteUrl,
		app.Logger,
	)

	tgmUseCase := usecasees.NewTgmUseCase(
		tgmController,
		pairRepo,
		priceRepo,
		settingsRepo,
		app.Logger,
	)

	go tgmUseCase.CommandProcessor()

	if err := analyticsUseCase.Monitoring(); err != nil {
		panic(err)
	}
	defer analyticsUseCase.Stop()

	f := fiber.New()

	middleware := httpAPI.NewMiddleware(app.Name, f)
	middleware.Register()

	httpAPI.RegisterHTTPEndpoints(f, signalUseCase, pairUseCase, tickerUseCase, app.Logger)

	app.PromTail.Logf(promtail.Info, "%s listening on %s", app.Name, app.Config.ListenAddr)

	if err := f.Listen(app.Config.ListenAddr); err != nil {
		app.Logger.Fatal(err)
	}
}
