package chain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	return &metrics{
		duration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wallet_bot",
				Subsystem: "",
				Name:      "rpc_req_duration",
				Help:      "solana rpc request duration",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			}, []string{"method"}),
	}
}
