package structs

type MetricConst string

const (
	MetricSignalReceived     MetricConst = "signal_received"
	MetricSignalParseFailed  MetricConst = "signal_parse_failed"
	MetricOrderUpdateApplied MetricConst = "order_update_applied"
	MetricOrderFilled        MetricConst = "order_filled"
	MetricOrderCanceled      MetricConst = "order_canceled"
)

func (m MetricConst) ToString() string {
	return string(m)
}
