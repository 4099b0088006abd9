package send

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	built prometheus.Counter
}

// Registered once; Service instances share the collectors.
var serviceMetrics = newMetrics()

func newMetrics() *metrics {
	return &metrics{
		built: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "wallet_bot",
				Subsystem: "",
				Name:      "transfers_built_total",
				Help:      "total quantity of unsigned transfer transactions built",
			}),
	}
}
