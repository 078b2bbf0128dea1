package main

import (
	"pairtrader/internal/usecasees/structs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Signal map[structs.MetricConst]prometheus.Counter
}

func (a *App) InitMetrics() {
	metrics := Metrics{Signal: map[structs.MetricConst]prometheus.Counter{}}

	for _, m := range []structs.MetricConst{
		structs.MetricSignalReceived,
		structs.MetricSignalParseFailed,
		structs.MetricOrderUpdateApplied,
		structs.MetricOrderFilled,
		structs.MetricOrderCanceled,
	} {
		metrics.Signal[m] = promauto.NewCounter(prometheus.CounterOpts{
			Name: m.ToString(),
			Help: m.ToString(),
		})
	}

	a.Metrics = &metrics
}
