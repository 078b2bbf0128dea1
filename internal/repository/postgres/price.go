package postgres

import (
	"time"

	"pairtrader/models"

	"github.com/jmoiron/sqlx"
)

type PriceRepository struct {
	conn *sqlx.DB
}

func NewPriceRepository(conn *sqlx.DB) PriceRepo {
	return &PriceRepository{
		conn: conn,
	}
}

func (r *PriceRepository) Store(m *models.Price) error {
	if _, err := r.conn.NamedExec("INSERT INTO prices (pair,price,created_at) "+
		"VALUES (:pair,:price,:created_at)", m); err != nil {
		return err
	}

	return nil
}

func (r *PriceRepository) GetByCreatedByInterval(pair string, sTime, eTime time.Time) ([]models.Price, error) {
	var out []models.Price

	if err := r.conn.Select(&out, "SELECT * FROM prices WHERE created_at > $1 AND created_at < $2 AND pair = $3 "+
		"ORDER BY id;", sTime.UTC(), eTime.UTC(), pair); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *PriceRepository) GetLast(pair string) (*models.Price, error) {
	var price models.Price

	if err := r.conn.QueryRowx("SELECT * FROM prices WHERE pair = $1 ORDER BY id DESC LIMIT 1", pair).StructScan(&price); err != nil {
		return nil, err
	}

	return &price, nil
}
