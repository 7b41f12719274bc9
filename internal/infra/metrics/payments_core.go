package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		ordersTotal,
		ordersAmountTotal,
	)
}

var (
	// status: created|rejected|failed
	ordersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Order creation attempts by outcome.",
		},
		[]string{"status"},
	)

	ordersAmountTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_amount_minor_total",
			Help: "Sum of created order amounts in minor units, labeled by currency.",
		},
		[]string{"currency"},
	)
)

func IncOrder(status string) {
	ordersTotal.WithLabelValues(norm(status)).Inc()
}

func AddOrderAmount(currency string, amountMinor int64) {
	ordersAmountTotal.WithLabelValues(norm(currency)).Add(float64(amountMinor))
}
