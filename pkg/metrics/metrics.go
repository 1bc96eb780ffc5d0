package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// Покрывает входящие HTTP-запросы и исходящие запросы к интеграциям
type Metrics struct {
	serviceName string

	// HTTP server
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Исходящие запросы к внешним сервисам (TutorDirectory, ScheduleService)
	IntegrationRequestsTotal   *prometheus.CounterVec
	IntegrationRequestDuration *prometheus.HistogramVec

	// Кэш расписаний
	ScheduleCacheHits   prometheus.Counter
	ScheduleCacheMisses prometheus.Counter
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		HTTPRequestsInFlight: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Current number of in-flight HTTP requests",
			ConstLabels: constLabels,
		}),

		IntegrationRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "integration_requests_total",
			Help:        "Total number of outgoing requests to external services",
			ConstLabels: constLabels,
		}, []string{"integration", "method", "status"}),

		IntegrationRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "integration_request_duration_seconds",
			Help:        "Outgoing request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"integration", "method"}),

		ScheduleCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_cache_hits_total",
			Help:        "Total number of schedule cache hits",
			ConstLabels: constLabels,
		}),

		ScheduleCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "schedule_cache_misses_total",
			Help:        "Total number of schedule cache misses",
			ConstLabels: constLabels,
		}),
	}
}

// ServiceName возвращает имя сервиса, с которым зарегистрированы метрики
func (m *Metrics) ServiceName() string {
	return m.serviceName
}
