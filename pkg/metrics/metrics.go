// Package metrics Prometheus-метрики сервиса
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор коллекторов сервиса. Все методы безопасны для nil-получателя,
// поэтому при выключенных метриках можно передавать nil
type Metrics struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	bookingsTotal   *prometheus.CounterVec
	deliveriesTotal *prometheus.CounterVec
	storageFailures *prometheus.CounterVec
}

// New регистрирует коллекторы в reg (nil = DefaultRegisterer)
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by route, method and status",
			ConstLabels: labels,
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"route", "method"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_transitions_total",
			Help:        "Booking lifecycle transitions",
			ConstLabels: labels,
		}, []string{"status"}),
		deliveriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_deliveries_total",
			Help:        "Deliveries of confirmed bookings to external sinks",
			ConstLabels: labels,
		}, []string{"sink", "result"}),
		storageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_storage_failures_total",
			Help:        "Failed save/load operations of the booking collection",
			ConstLabels: labels,
		}, []string{"operation"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.httpRequests, m.httpDuration, m.bookingsTotal, m.deliveriesTotal, m.storageFailures)
	return m
}

// ObserveHTTP учитывает завершённый HTTP запрос
func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// BookingTransition учитывает переход бронирования в статус
func (m *Metrics) BookingTransition(status string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(status).Inc()
}

// Delivery учитывает результат отправки во внешний приёмник
func (m *Metrics) Delivery(sink string, ok bool) {
	if m == nil {
		return
	}
	result := "success"
	if !ok {
		result = "failure"
	}
	m.deliveriesTotal.WithLabelValues(sink, result).Inc()
}

// StorageFailure учитывает ошибку хранилища ("save" или "load")
func (m *Metrics) StorageFailure(operation string) {
	if m == nil {
		return
	}
	m.storageFailures.WithLabelValues(operation).Inc()
}
