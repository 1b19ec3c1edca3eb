package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса.
// Методы безопасно вызывать на nil, когда метрики выключены.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec
	dbWaitCount     *prometheus.GaugeVec

	bookingSlotsGenerated prometheus.Counter
	bookingSlotsChosen    prometheus.Counter
	allocationConflicts   *prometheus.CounterVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в переданном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db_service"}),
		dbInUseConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db_service"}),
		dbIdleConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db_service"}),
		dbWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db_service"}),

		bookingSlotsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_slots_generated_total",
			Help:        "Total number of generated booking slots",
			ConstLabels: constLabels,
		}),
		bookingSlotsChosen: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_slots_chosen_total",
			Help:        "Total number of successfully chosen booking slots",
			ConstLabels: constLabels,
		}),
		allocationConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_allocation_conflicts_total",
			Help:        "Total number of rejected allocations by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.dbWaitCount,
		m.bookingSlotsGenerated,
		m.bookingSlotsChosen,
		m.allocationConflicts,
	)

	return m
}

// ObserveHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(_ string, operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBPoolStats обновляет метрики connection pool
func (m *Metrics) SetDBPoolStats(dbService string, stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConns.WithLabelValues(dbService).Set(float64(stats.OpenConnections))
	m.dbInUseConns.WithLabelValues(dbService).Set(float64(stats.InUse))
	m.dbIdleConns.WithLabelValues(dbService).Set(float64(stats.Idle))
	m.dbWaitCount.WithLabelValues(dbService).Set(float64(stats.WaitCount))
}

// AddBookingSlotsGenerated увеличивает счетчик созданных слотов
func (m *Metrics) AddBookingSlotsGenerated(count int) {
	if m == nil {
		return
	}
	m.bookingSlotsGenerated.Add(float64(count))
}

// IncBookingSlotsChosen увеличивает счетчик занятых слотов
func (m *Metrics) IncBookingSlotsChosen() {
	if m == nil {
		return
	}
	m.bookingSlotsChosen.Inc()
}

// IncAllocationConflict фиксирует отказ в выборе слота
func (m *Metrics) IncAllocationConflict(reason string) {
	if m == nil {
		return
	}
	m.allocationConflicts.WithLabelValues(reason).Inc()
}
