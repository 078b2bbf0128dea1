package postgres

import (
	"pairtrader/models"

	"github.com/jmoiron/sqlx"
)

type TickerRepository struct {
	conn *sqlx.DB
}

func NewTickerRepository(conn *sqlx.DB) TickerRepo {
	return &TickerRepository{
		conn: conn,
	}
}

func (r *TickerRepository) Store(m *models.Ticker) error {
	if _, err := r.conn.NamedExec("INSERT INTO tickers (symbol,sectype,xch,prixch,currency,active) "+
		"VALUES (:symbol,:sectype,:xch,:prixch,:currency,:active)", m); err != nil {
		return err
	}

	return nil
}

func (r *TickerRepository) GetBySymbol(symbol string) (*models.Ticker, error) {
	var ticker models.Ticker

	if err := r.conn.QueryRowx("SELECT * FROM tickers WHERE symbol = $1 LIMIT 1", symbol).StructScan(&ticker); err != nil {
		return nil, err
	}

	return &ticker, nil
}

func (r *TickerRepository) GetRows(limit int) ([]models.Ticker, error) {
	var tickers []models.Ticker

	if limit == 0 {
		if err := r.conn.Select(&tickers, "SELECT * FROM tickers ORDER BY rowid DESC;"); err != nil {
			return nil, err
		}

		return tickers, nil
	}

	if err := r.conn.Select(&tickers, "SELECT * FROM tickers ORDER BY rowid DESC LIMIT $1;", limit); err != nil {
		return nil, err
	}

	return tickers, nil
}

func (r *TickerRepository) Update(m *models.Ticker) error {
	if _, err := r.conn.NamedExec("UPDATE tickers SET sectype=:sectype, xch=:xch, prixch=:prixch, "+
		"currency=:currency, active=:active WHERE symbol=:symbol", m); err != nil {
		return err
	}

	return nil
}

func (r *TickerRepository) Delete(symbol string) error {
	if _, err := r.conn.Exec("DELETE FROM tickers WHERE symbol = $1;", symbol); err != nil {
		return err
	}

	return nil
}
