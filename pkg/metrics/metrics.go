package metrics

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса на собственном registry
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingTransitions  *prometheus.CounterVec
}

// New создаёт и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	namespace := sanitize(serviceName)
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "The total number of processed HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		BookingTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "bookings",
				Name:      "transitions_total",
				Help:      "Booking lifecycle transitions by event type",
			},
			[]string{"event"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingTransitions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RegisterDB добавляет метрики пула соединений
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) {
	m.registry.MustRegister(collectors.NewDBStatsCollector(db, dbName))
}

// RecordTransition увеличивает счётчик переходов бронирования
func (m *Metrics) RecordTransition(event string) {
	m.BookingTransitions.WithLabelValues(event).Inc()
}

// Handler отдаёт метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry используется в тестах для чтения значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func sanitize(name string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(strings.ToLower(name))
}
