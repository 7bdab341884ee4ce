package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	OrdersSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gokelly_orders_submitted_total",
			Help: "Total number of orders submitted (by strategy).",
		},
		[]string{"strategy"},
	)

	TicksProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gokelly_ticks_processed_total",
			Help: "Price ticks processed per symbol.",
		},
		[]string{"symbol"},
	)

	EquityGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gokelly_equity",
			Help: "Current cash balance of the executor (paper or live).",
		},
	)

	BandFraction = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gokelly_band_fraction",
			Help: "Kelly sizing fraction per oscillator band, set at estimation time.",
		},
		[]string{"symbol", "band"},
	)
)

func init() {
	prometheus.MustRegister(OrdersSubmitted, TicksProcessed, EquityGauge, BandFraction)
}
