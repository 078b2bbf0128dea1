package postgres

import (
	"pairtrader/models"

	"github.com/jmoiron/sqlx"
)

type SignalRepository struct {
	conn *sqlx.DB
}

func NewSignalRepository(conn *sqlx.DB) SignalRepo {
	return &SignalRepository{
		conn: conn,
	}
}

func (r *SignalRepository) Store(m *models.Signal) (int, error) {
	rows, err := r.conn.NamedQuery("INSERT INTO signals (ticker,order_action,order_contracts,order_price,"+
		"mar_pos,mar_pos_size,pre_mar_pos,pre_mar_pos_size,order_comment,order_status,status_msg,"+
		"ticker_type,ticker1,ticker2,hedge,order_id1,order_id2,fill_price1,fill_price2,fill_price,slip) "+
		"VALUES (:ticker,:order_action,:order_contracts,:order_price,"+
		":mar_pos,:mar_pos_size,:pre_mar_pos,:pre_mar_pos_size,:order_comment,:order_status,:status_msg,"+
		":ticker_type,:ticker1,:ticker2,:hedge,:order_id1,:order_id2,:fill_price1,:fill_price2,:fill_price,:slip) "+
		"RETURNING rowid", m)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var rowID int
	if rows.Next() {
		if err := rows.Scan(&rowID); err != nil {
			return 0, err
		}
	}

	return rowID, nil
}

func (r *SignalRepository) GetByRowID(rowID int) (*models.Signal, error) {
	var signal models.Signal

	if err := r.conn.QueryRowx("SELECT * FROM signals WHERE rowid = $1 LIMIT 1", rowID).StructScan(&signal); err != nil {
		return nil, err
	}

	return &signal, nil
}

func (r *SignalRepository) GetByOrder(orderID, symbol string) (*models.Signal, error) {
	var signal models.Signal

	if err := r.conn.QueryRowx("SELECT * FROM signals WHERE (order_id1 = $1 AND ticker1 = $2) "+
		"OR (order_id2 = $1 AND ticker2 = $2) ORDER BY rowid DESC LIMIT 1", orderID, symbol).StructScan(&signal); err != nil {
		return nil, err
	}

	return &signal, nil
}

func (r *SignalRepository) GetRows(limit int) ([]models.Signal, error) {
	var signals []models.Signal

	if limit == 0 {
		if err := r.conn.Select(&signals, "SELECT * FROM signals ORDER BY rowid DESC;"); err != nil {
			return nil, err
		}

		return signals, nil
	}

	if err := r.conn.Select(&signals, "SELECT * FROM signals ORDER BY rowid DESC LIMIT $1;", limit); err != nil {
		return nil, err
	}

	return signals, nil
}

func (r *SignalRepository) Update(m *models.Signal) error {
	if _, err := r.conn.NamedExec("UPDATE signals SET ticker=:ticker, order_action=:order_action, "+
		"order_contracts=:order_contracts, order_price=:order_price, mar_pos=:mar_pos, mar_pos_size=:mar_pos_size, "+
		"pre_mar_pos=:pre_mar_pos, pre_mar_pos_size=:pre_mar_pos_size, order_comment=:order_comment, "+
		"order_status=:order_status, status_msg=:status_msg, ticker_type=:ticker_type, ticker1=:ticker1, "+
		"ticker2=:ticker2, hedge=:hedge, order_id1=:order_id1, order_id2=:order_id2, fill_price1=:fill_price1, "+
		"fill_price2=:fill_price2, fill_price=:fill_price, slip=:slip "+
		"WHERE rowid=:rowid", m); err != nil {
		return err
	}

	return nil
}

func (r *SignalRepository) Delete(rowID int) error {
	if _, err := r.conn.Exec("DELETE FROM signals WHERE rowid = $1;", rowID); err != nil {
		return err
	}

	return nil
}
