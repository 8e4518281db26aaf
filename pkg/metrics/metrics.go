package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
// Все методы безопасны для nil-получателя, чтобы метрики можно было отключить конфигом
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration    *prometheus.HistogramVec
	dbOpenConnections  prometheus.Gauge
	dbInUseConnections prometheus.Gauge
	dbIdleConnections  prometheus.Gauge
	dbWaitCount        prometheus.Gauge

	slotQueriesTotal           *prometheus.CounterVec
	meetingRequestTransitions  *prometheus.CounterVec
	notificationFailuresTotal  *prometheus.CounterVec
	availabilityRequestsPurged prometheus.Counter
}

// New регистрирует метрики в переданном registerer
// В production передается prometheus.DefaultRegisterer, в тестах - prometheus.NewRegistry()
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation", "status"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		dbInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		dbIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		slotQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_queries_total",
			Help:        "Available slot queries, degraded=true when conflicts were not checked",
			ConstLabels: labels,
		}, []string{"degraded"}),
		meetingRequestTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "meeting_request_transitions_total",
			Help:        "Meeting request status transitions",
			ConstLabels: labels,
		}, []string{"status"}),
		notificationFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "notification_failures_total",
			Help:        "Notifications that could not be published",
			ConstLabels: labels,
		}, []string{"event"}),
		availabilityRequestsPurged: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "availability_requests_purged_total",
			Help:        "Dangling availability requests removed by the janitor",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbOpenConnections,
		m.dbInUseConnections,
		m.dbIdleConnections,
		m.dbWaitCount,
		m.slotQueriesTotal,
		m.meetingRequestTransitions,
		m.notificationFailuresTotal,
		m.availabilityRequestsPurged,
	)

	return m
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики пула соединений
func (m *Metrics) SetDBPoolStats(open, inUse, idle int, waitCount int64) {
	if m == nil {
		return
	}
	m.dbOpenConnections.Set(float64(open))
	m.dbInUseConnections.Set(float64(inUse))
	m.dbIdleConnections.Set(float64(idle))
	m.dbWaitCount.Set(float64(waitCount))
}

// ObserveSlotQuery фиксирует запрос доступных слотов
func (m *Metrics) ObserveSlotQuery(degraded bool) {
	if m == nil {
		return
	}
	m.slotQueriesTotal.WithLabelValues(strconv.FormatBool(degraded)).Inc()
}

// RecordTransition фиксирует переход заявки на встречу в новый статус
func (m *Metrics) RecordTransition(status string) {
	if m == nil {
		return
	}
	m.meetingRequestTransitions.WithLabelValues(status).Inc()
}

// RecordNotificationFailure фиксирует неотправленное уведомление
func (m *Metrics) RecordNotificationFailure(event string) {
	if m == nil {
		return
	}
	m.notificationFailuresTotal.WithLabelValues(event).Inc()
}

// AddPurgedAvailabilityRequests фиксирует удаленные "висящие" запросы доступности
func (m *Metrics) AddPurgedAvailabilityRequests(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.availabilityRequestsPurged.Add(float64(n))
}
