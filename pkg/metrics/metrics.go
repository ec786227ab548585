package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	lotSpotsOccupied    *prometheus.GaugeVec
	lotSpotsFree        *prometheus.GaugeVec
}

// New регистрирует метрики в реестре по умолчанию и возвращает их.
// serviceName попадает во все метрики константной меткой service.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		lotSpotsOccupied: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "lot_spots_occupied",
			Help:        "Number of occupied parking spots by spot type",
			ConstLabels: constLabels,
		}, []string{"spot_type"}),

		lotSpotsFree: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "lot_spots_free",
			Help:        "Number of free parking spots by spot type",
			ConstLabels: constLabels,
		}, []string{"spot_type"}),
	}
}

// ObserveHTTPRequest фиксирует завершённый HTTP запрос.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// SetLotOccupancy обновляет gauge занятости для типа места.
func (m *Metrics) SetLotOccupancy(spotType string, occupied, free int) {
	m.lotSpotsOccupied.WithLabelValues(spotType).Set(float64(occupied))
	m.lotSpotsFree.WithLabelValues(spotType).Set(float64(free))
}
