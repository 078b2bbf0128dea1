package postgres

import (
	"pairtrader/models"

	"github.com/jmoiron/sqlx"
)

type PairRepository struct {
	conn *sqlx.DB
}

func NewPairRepository(conn *sqlx.DB) PairRepo {
	return &PairRepository{
		conn: conn,
	}
}

func (r *PairRepository) Store(m *models.Pair) error {
	if _, err := r.conn.NamedExec("INSERT INTO pairs (name,ticker1,ticker2,hedge,status,notes,contracts,"+
		"act_price,sma,sma_dist,std) VALUES (:name,:ticker1,:ticker2,:hedge,:status,:notes,:contracts,"+
		":act_price,:sma,:sma_dist,:std)", m); err != nil {
		return err
	}

	return nil
}

func (r *PairRepository) GetByName(name string) (*models.Pair, error) {
	var pair models.Pair

	if err := r.conn.QueryRowx("SELECT * FROM pairs WHERE name = $1 LIMIT 1", name).StructScan(&pair); err != nil {
		return nil, err
	}

	return &pair, nil
}

func (r *PairRepository) GetRows(limit int) ([]models.Pair, error) {
	var pairs []models.Pair

	if limit == 0 {
		if err := r.conn.Select(&pairs, "SELECT * FROM pairs ORDER BY rowid DESC;"); err != nil {
			return nil, err
		}

		return pairs, nil
	}

	if err := r.conn.Select(&pairs, "SELECT * FROM pairs ORDER BY rowid DESC LIMIT $1;", limit); err != nil {
		return nil, err
	}

	return pairs, nil
}

func (r *PairRepository) GetActive(limit int) ([]models.Pair, error) {
	return r.getByStatus(models.PairActive, limit)
}

func (r *PairRepository) GetWatchlist(limit int) ([]models.Pair, error) {
	return r.getByStatus(models.PairWatchlist, limit)
}

func (r *PairRepository) getByStatus(status, limit int) ([]models.Pair, error) {
	var pairs []models.Pair

	if limit == 0 {
		if err := r.conn.Select(&pairs, "SELECT * FROM pairs WHERE status = $1 ORDER BY rowid DESC;", status); err != nil {
			return nil, err
		}

		return pairs, nil
	}

	if err := r.conn.Select(&pairs, "SELECT * FROM pairs WHERE status = $1 ORDER BY rowid DESC LIMIT $2;", status, limit); err != nil {
		return nil, err
	}

	return pairs, nil
}

func (r *PairRepository) FindActiveTicker(symbol string) (*models.Pair, error) {
	var pair models.Pair

	if err := r.conn.QueryRowx("SELECT * FROM pairs WHERE (ticker1 = $1 OR ticker2 = $1) AND status = $2 LIMIT 1",
		symbol, models.PairActive).StructScan(&pair); err != nil {
		return nil, err
	}

	return &pair, nil
}

func (r *PairRepository) Update(m *models.Pair) error {
	if _, err := r.conn.NamedExec("UPDATE pairs SET ticker1=:ticker1, ticker2=:ticker2, hedge=:hedge, "+
		"status=:status, notes=:notes, contracts=:contracts, act_price=:act_price, sma=:sma, "+
		"sma_dist=:sma_dist, std=:std WHERE name=:name", m); err != nil {
		return err
	}

	return nil
}

func (r *PairRepository) SetAnalytics(name string, actPrice, sma, smaDist, std float64) error {
	if _, err := r.conn.Exec("UPDATE pairs SET act_price = $1, sma = $2, sma_dist = $3, std = $4 WHERE name = $5;",
		actPrice, sma, smaDist, std, name); err != nil {
		return err
	}

	return nil
}

func (r *PairRepository) Delete(name string) error {
	if _, err := r.conn.Exec("DELETE FROM pairs WHERE name = $1;", name); err != nil {
		return err
	}

	return nil
}
