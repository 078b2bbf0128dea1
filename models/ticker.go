package models

const (
	SecTypeStock  = "STK"
	SecTypeCash   = "CASH"
	SecTypeCrypto = "CRYPTO"
)

// Ticker is a registered tradable instrument the parser validates against.
type Ticker struct {
	RowID    int    `db:"rowid" json:"rowid"`
	Symbol   string `db:"symbol" json:"symbol"`
	SecType  string `db:"sectype" json:"sectype"`
	Xch      string `db:"xch" json:"xch"`
	PriXch   string `db:"prixch" json:"prixch"`
	Currency string `db:"currency" json:"currency"`
	Active   int    `db:"active" json:"active"`
}
