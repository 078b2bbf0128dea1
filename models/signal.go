package models

import "time"

const (
	KindSingle = "single"
	KindPair   = "pair"

	StatusWaiting    = "waiting"
	StatusRerouted   = "rerouted"
	StatusCanceled   = "canceled"
	StatusPartFilled = "part.filled"
	StatusFilledWait = "filled(...)"
	StatusFilled     = "filled"
	StatusError      = "error"

	SideBuy  = "buy"
	SideSell = "sell"
)

// Signal is one webhook-posted trading intent plus its execution lifecycle.
// TickerType, Ticker1/Ticker2 and Hedge are written by the parser only.
// Zero prices mean "not reported yet"; FillPrice is defined once every leg
// has a price and Slip once both OrderPrice and FillPrice exist.
type Signal struct {
	RowID          int       `db:"rowid" json:"rowid"`
	Timestamp      time.Time `db:"timestamp" json:"timestamp"`
	Ticker         string    `db:"ticker" json:"ticker"`
	OrderAction    string    `db:"order_action" json:"order_action"`
	OrderContracts int       `db:"order_contracts" json:"order_contracts"`
	OrderPrice     float64   `db:"order_price" json:"order_price"`
	MarPos         string    `db:"mar_pos" json:"mar_pos"`
	MarPosSize     int       `db:"mar_pos_size" json:"mar_pos_size"`
	PreMarPos      string    `db:"pre_mar_pos" json:"pre_mar_pos"`
	PreMarPosSize  int       `db:"pre_mar_pos_size" json:"pre_mar_pos_size"`
	OrderComment   string    `db:"order_comment" json:"order_comment"`
	OrderStatus    string    `db:"order_status" json:"order_status"`
	StatusMsg      string    `db:"status_msg" json:"status_msg"`

	TickerType string  `db:"ticker_type" json:"ticker_type"`
	Ticker1    string  `db:"ticker1" json:"ticker1"`
	Ticker2    string  `db:"ticker2" json:"ticker2"`
	Hedge      float64 `db:"hedge" json:"hedge"`

	OrderID1   string  `db:"order_id1" json:"order_id1"`
	OrderID2   string  `db:"order_id2" json:"order_id2"`
	FillPrice1 float64 `db:"fill_price1" json:"fill_price1"`
	FillPrice2 float64 `db:"fill_price2" json:"fill_price2"`
	FillPrice  float64 `db:"fill_price" json:"fill_price"`
	Slip       float64 `db:"slip" json:"slip"`
}
