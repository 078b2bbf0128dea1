package structs

// ParseResult is what the ticker expression parser yields. On failure OK is
// false and Reason holds the human-readable cause; partially parsed legs are
// kept so a malformed signal can still be persisted.
type ParseResult struct {
	Kind    string
	Ticker1 string
	Ticker2 string
	Hedge   float64
	OK      bool
	Reason  string
}

// Quote is a single leg price from the market-data provider.
type Quote struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}
