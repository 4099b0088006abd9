package bot

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics() *metrics {
	return &metrics{
		commands: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wallet_bot",
				Subsystem: "",
				Name:      "commands_total",
				Help:      "total quantity of dispatched slash commands",
			}, []string{"command", "status"}),
		duration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wallet_bot",
				Subsystem: "",
				Name:      "command_duration",
				Help:      "slash command handling duration",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			}, []string{"command"}),
	}
}

func (m *metrics) observe(command, status string, started time.Time) {
	m.commands.WithLabelValues(command, status).Inc()
	m.duration.WithLabelValues(command).Observe(time.Since(started).Seconds())
}
