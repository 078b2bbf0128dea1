package structs

// WebhookRequest is the signal-intake payload posted by the external
// alerting platform. Ticker1/Ticker2/Hedge/OrderID1/OrderID2 are optional
// explicit overrides for what the parser derives.
type WebhookRequest struct {
	Passphrase     string  `json:"passphrase"`
	Ticker         string  `json:"ticker"`
	OrderAction    string  `json:"order_action"`
	OrderContracts int     `json:"order_contracts"`
	OrderPrice     float64 `json:"order_price"`
	MarPos         string  `json:"mar_pos"`
	MarPosSize     int     `json:"mar_pos_size"`
	PreMarPos      string  `json:"pre_mar_pos"`
	PreMarPosSize  int     `json:"pre_mar_pos_size"`
	OrderComment   string  `json:"order_comment"`
	OrderStatus    string  `json:"order_status"`

	Ticker1  string  `json:"ticker1"`
	Ticker2  string  `json:"ticker2"`
	Hedge    float64 `json:"hedge"`
	OrderID1 string  `json:"order_id1"`
	OrderID2 string  `json:"order_id2"`
}

// OrderUpdateRequest is one fill report from the execution venue.
// Filled is cumulative. Contracts carries the new target size and is
// required when Partial is set.
type OrderUpdateRequest struct {
	Passphrase string  `json:"passphrase"`
	OrderID    string  `json:"order_id"`
	Symbol     string  `json:"symbol"`
	Price      float64 `json:"price"`
	Filled     int     `json:"filled"`
	Cancel     bool    `json:"cancel"`
	Partial    bool    `json:"partial"`
	Contracts  int     `json:"contracts"`
}

type OrderEventType int

const (
	EventFill OrderEventType = iota
	EventCancel
	EventPartialAdjust
)

// OrderEvent is the typed form of an OrderUpdateRequest, dispatched through
// the signal state-transition function.
type OrderEvent struct {
	Type      OrderEventType
	OrderID   string
	Symbol    string
	Price     float64
	Filled    int
	Contracts int
}

func (r *OrderUpdateRequest) Event() OrderEvent {
	ev := OrderEvent{
		Type:      EventFill,
		OrderID:   r.OrderID,
		Symbol:    r.Symbol,
		Price:     r.Price,
		Filled:    r.Filled,
		Contracts: r.Contracts,
	}

	switch {
	case r.Cancel:
		ev.Type = EventCancel
	case r.Partial:
		ev.Type = EventPartialAdjust
	}

	return ev
}
