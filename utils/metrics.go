package utils

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are the storefront's Prometheus collectors
type Metrics struct {
	Requests          *prometheus.CounterVec
	LatencyMS         *prometheus.HistogramVec
	OrdersPlaced      *prometheus.CounterVec
	PromoApplications *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dira",
			Subsystem: "storefront",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"handler", "method", "status"}),
		LatencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dira",
			Subsystem: "storefront",
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"handler"}),
		OrdersPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dira",
			Name:      "orders_placed_total",
			Help:      "Orders handed off to the shop.",
		}, []string{"payment_method"}),
		PromoApplications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dira",
			Name:      "promo_applications_total",
			Help:      "Promo code attempts by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.Requests, m.LatencyMS, m.OrdersPlaced, m.PromoApplications)
	return m
}

// OrderPlaced counts a dispatched order
func (m *Metrics) OrderPlaced(paymentMethod string) {
	m.OrdersPlaced.WithLabelValues(paymentMethod).Inc()
}

// PromoAttempt counts a promo application by outcome
func (m *Metrics) PromoAttempt(applied bool) {
	result := "invalid"
	if applied {
		result = "applied"
	}
	m.PromoApplications.WithLabelValues(result).Inc()
}

// MetricsHandler exposes g in the Prometheus text format
func MetricsHandler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
