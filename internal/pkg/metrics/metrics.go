package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "calldesk"

// UnknownResource is the resource label of requests whose id did not resolve.
const UnknownResource = "unknown"

// Metrics owns the collectors of the service and the registry they live in.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	SlotsOffered    *prometheus.HistogramVec
	BookingsTotal   *prometheus.CounterVec
	TransfersTotal  *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "endpoint", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint", "status"}),
		SlotsOffered: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "slots_offered",
			Help:      "Number of slots returned per availability request.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		}, []string{"resource"}),
		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by resource and outcome.",
		}, []string{"resource", "outcome"}),
		TransfersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "call_transfers_total",
			Help:      "Call transfer attempts by reason and outcome.",
		}, []string{"reason", "outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.SlotsOffered,
		m.BookingsTotal,
		m.TransfersTotal,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveSlots(resourceID string, count int) {
	if m == nil {
		return
	}
	m.SlotsOffered.WithLabelValues(resourceID).Observe(float64(count))
}

func (m *Metrics) CountBooking(resourceID, outcome string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(resourceID, outcome).Inc()
}

func (m *Metrics) CountTransfer(reason, outcome string) {
	if m == nil {
		return
	}
	m.TransfersTotal.WithLabelValues(reason, outcome).Inc()
}
