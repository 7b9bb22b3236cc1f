// Package metrics exposes Prometheus counters for scheduled deliveries.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DeliveriesSent counts scheduled BTC updates delivered successfully, by currency.
	DeliveriesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "btcbot_deliveries_sent_total",
			Help: "Total number of scheduled BTC updates delivered successfully, by currency.",
		},
		[]string{"currency"},
	)

	// DeliveriesFailed counts scheduled deliveries that failed (fetch or send), by currency.
	// A failed delivery is rescheduled forward, not retried.
	DeliveriesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "btcbot_deliveries_failed_total",
			Help: "Total number of scheduled deliveries that failed and were rescheduled, by currency.",
		},
		[]string{"currency"},
	)
)

// Handler returns the HTTP handler for the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
