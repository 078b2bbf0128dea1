package models

const (
	PairActive    = 1
	PairPassive   = 0
	PairWatchlist = -1
)

// Pair is a registered two-instrument trading unit. At most one active pair
// may reference a given ticker on either leg; the registration use case
// enforces that, not the database.
type Pair struct {
	RowID     int     `db:"rowid" json:"rowid"`
	Name      string  `db:"name" json:"name"`
	Ticker1   string  `db:"ticker1" json:"ticker1"`
	Ticker2   string  `db:"ticker2" json:"ticker2"`
	Hedge     float64 `db:"hedge" json:"hedge"`
	Status    int     `db:"status" json:"status"`
	Notes     string  `db:"notes" json:"notes"`
	Contracts int     `db:"contracts" json:"contracts"`
	ActPrice  float64 `db:"act_price" json:"act_price"`
	SMA       float64 `db:"sma" json:"sma"`
	SMADist   float64 `db:"sma_dist" json:"sma_dist"`
	Std       float64 `db:"std" json:"std"`
}
