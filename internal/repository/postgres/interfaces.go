package postgres

import (
	"time"

	"pairtrader/models"
)

//go:generate mockery --case=snake --name=SignalRepo
//go:generate mockery --case=snake --name=PairRepo
//go:generate mockery --case=snake --name=TickerRepo
//go:generate mockery --case=snake --name=PriceRepo

type SignalRepo interface {
	Store(m *models.Signal) (int, error)
	GetByRowID(rowID int) (*models.Signal, error)
	GetByOrder(orderID, symbol string) (*models.Signal, error)
	GetRows(limit int) ([]models.Signal, error)
	Update(m *models.Signal) error
	Delete(rowID int) error
}

type PairRepo interface {
	Store(m *models.Pair) error
	GetByName(name string) (*models.Pair, error)
	GetRows(limit int) ([]models.Pair, error)
	GetActive(limit int) ([]models.Pair, error)
	GetWatchlist(limit int) ([]models.Pair, error)
	FindActiveTicker(symbol string) (*models.Pair, error)
	Update(m *models.Pair) error
	SetAnalytics(name string, actPrice, sma, smaDist, std float64) error
	Delete(name string) error
}

type TickerRepo interface {
	Store(m *models.Ticker) error
	GetBySymbol(symbol string) (*models.Ticker, error)
	GetRows(limit int) ([]models.Ticker, error)
	Update(m *models.Ticker) error
	Delete(symbol string) error
}

type PriceRepo interface {
	Store(m *models.Price) error
	GetByCreatedByInterval(pair string, sTime, eTime time.Time) ([]models.Price, error)
	GetLast(pair string) (*models.Price, error)
}
