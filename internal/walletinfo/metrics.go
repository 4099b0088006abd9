package walletinfo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	fetchErrors prometheus.Counter
}

// Registered once; Service instances share the collectors.
var serviceMetrics = newMetrics()

func newMetrics() *metrics {
	return &metrics{
		fetchErrors: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "wallet_bot",
				Subsystem: "",
				Name:      "walletinfo_fetch_errors_total",
				Help:      "total quantity of failed wallet report fan-outs",
			}),
	}
}
