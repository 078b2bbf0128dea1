package usecasees

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"runtime/debug"
	"strconv"
	"time"

	"pairtrader/internal/controllers"
	"pairtrader/internal/repository/mongo"
	mongoStructs "pairtrader/internal/repository/mongo/structs"
	"pairtrader/internal/repository/postgres"
	signalStructs "pairtrader/internal/usecasees/structs"
	"pairtrader/models"

	"github.com/montanaflynn/stats"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	quoteUrlPath = "/api/v1/quote"

	sampleInterval   = 15 * time.Minute
	defaultSMAWindow = 20
)

var CRONJobs = map[string]string{
	"15min": "0,15,30,45 * * * *",
	"1h":    "0 * * * *",
	"1min":  "* * * * *",
}

// AnalyticsUseCase samples spread prices for every active pair and keeps the
// pair SMA/std columns fresh for the dashboard.
type AnalyticsUseCase struct {
	clientController controllers.ClientCtrl
	tgmController    controllers.TgmCtrl

	pairRepo  postgres.PairRepo
	priceRepo postgres.PriceRepo

	settingsRepo mongo.SettingsRepo

	cron *cron.Cron

	url string

	logger *logrus.Logger
}

func NewAnalyticsUseCase(
	clientController controllers.ClientCtrl,
	tgmController controllers.TgmCtrl,
	pairRepo postgres.PairRepo,
	priceRepo postgres.PriceRepo,
	settingsRepo mongo.SettingsRepo,
	url string,
	logger *logrus.Logger,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		clientController: clientController,
		tgmController:    tgmController,
		pairRepo:         pairRepo,
		priceRepo:        priceRepo,
		settingsRepo:     settingsRepo,
		cron:             cron.New(),
		url:              url,
		logger:           logger,
	}
}

func (u *AnalyticsUseCase) Monitoring() error {
	if _, err := u.cron.AddFunc(CRONJobs["15min"], func() {
		if err := u.Refresh(); err != nil {
			u.logger.
				WithError(err).
				Error(string(debug.Stack()))
		}
	}); err != nil {
		return err
	}

	u.cron.Start()

	return nil
}

func (u *AnalyticsUseCase) Stop() {
	u.cron.Stop()
}

func (u *AnalyticsUseCase) Refresh() error {
	window := defaultSMAWindow

	settings, err := u.settingsRepo.Load(mongo.ProfileAnalytics)
	if err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))
	} else {
		if settings.Status == mongoStructs.Disabled.ToString() {
			return nil
		}
		if settings.SMAWindow > 0 {
			window = settings.SMAWindow
		}
	}

	pairs, err := u.pairRepo.GetActive(0)
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		if err := u.refreshPair(&pair, window); err != nil {
			u.logger.
				WithField("pair", pair.Name).
				WithError(err).
				Error(string(debug.Stack()))

			if err := u.tgmController.Send(fmt.Sprintf("[ Analytics ]\npair %s refresh failed\n%s", pair.Name, err)); err != nil {
				u.logger.
					WithField("func", "Refresh").
					Debug(err)
			}
		}
	}

	return nil
}

func (u *AnalyticsUseCase) refreshPair(pair *models.Pair, window int) error {
	price1, err := u.quote(pair.Ticker1)
	if err != nil {
		return err
	}

	price2, err := u.quote(pair.Ticker2)
	if err != nil {
		return err
	}

	spread := round4(price1 - pair.Hedge*price2)

	eTime := time.Now()
	sTime := eTime.Add(-time.Duration(window) * sampleInterval)

	if err := u.priceRepo.Store(&models.Price{
		Pair:      pair.Name,
		Price:     spread,
		CreatedAt: eTime,
	}); err != nil {
		return err
	}

	// interval is strict on both ends, so the sample just stored is not in
	// the query result and is appended once below
	prices, err := u.priceRepo.GetByCreatedByInterval(pair.Name, sTime, eTime)
	if err != nil {
		return err
	}

	values := make(stats.Float64Data, 0, len(prices)+1)
	for _, p := range prices {
		values = append(values, p.Price)
	}
	values = append(values, spread)

	sma, err := stats.Mean(values)
	if err != nil {
		return err
	}

	std, err := stats.StandardDeviation(values)
	if err != nil {
		return err
	}

	return u.pairRepo.SetAnalytics(pair.Name, spread, round4(sma), round4(spread-sma), round4(std))
}

func (u *AnalyticsUseCase) quote(symbol string) (float64, error) {
	baseURL, err := url.Parse(u.url)
	if err != nil {
		return 0, err
	}

	baseURL.Path = path.Join(baseURL.Path, quoteUrlPath)

	q := baseURL.Query()
	q.Set("symbol", symbol)
	baseURL.RawQuery = q.Encode()

	req, err := u.clientController.Send(http.MethodGet, baseURL, nil, true)
	if err != nil {
		return 0, err
	}

	var out signalStructs.Quote
	if err := json.Unmarshal(req, &out); err != nil {
		return 0, err
	}

	return strconv.ParseFloat(out.Price, 64)
}
