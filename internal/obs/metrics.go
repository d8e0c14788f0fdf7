package obs

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics aggregates request timings. It owns a private Prometheus registry
// so tests can construct independent instances, and keeps a mutex-guarded
// summary for the JSON metrics endpoint.
type Metrics struct {
	registry *prometheus.Registry

	inFlight        prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	mu       sync.Mutex
	total    int64
	sum      time.Duration
	slowest  time.Duration
	fastest  time.Duration
	byStatus map[int]int64
}

// Snapshot is a point-in-time summary of the aggregator.
type Snapshot struct {
	TotalRequests int64         `json:"total_requests"`
	AverageMillis float64       `json:"average_ms"`
	SlowestMillis float64       `json:"slowest_ms"`
	FastestMillis float64       `json:"fastest_ms"`
	ByStatus      map[int]int64 `json:"by_status"`
	CollectedAt   time.Time     `json:"collected_at"`
}

// NewMetrics builds an aggregator with registered collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		byStatus: make(map[int]int64),
	}
	m.registry.MustRegister(m.inFlight, m.requestsTotal, m.requestDuration)
	return m
}

// Begin marks a request as in flight. The returned func records the
// observation once the response is written.
func (m *Metrics) Begin() func(method, path string, status int, elapsed time.Duration) {
	m.inFlight.Inc()
	return func(method, path string, status int, elapsed time.Duration) {
		m.inFlight.Dec()
		m.Observe(method, path, status, elapsed)
	}
}

// Observe records a completed request.
func (m *Metrics) Observe(method, path string, status int, elapsed time.Duration) {
	label := statusLabel(status)
	m.requestsTotal.WithLabelValues(method, path, label).Inc()
	m.requestDuration.WithLabelValues(method, path, label).Observe(elapsed.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.total++
	m.sum += elapsed
	if elapsed > m.slowest {
		m.slowest = elapsed
	}
	if m.fastest == 0 || elapsed < m.fastest {
		m.fastest = elapsed
	}
	m.byStatus[status]++
}

// Stats returns the current summary.
func (m *Metrics) Stats() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		TotalRequests: m.total,
		SlowestMillis: durationMillis(m.slowest),
		FastestMillis: durationMillis(m.fastest),
		ByStatus:      make(map[int]int64, len(m.byStatus)),
		CollectedAt:   time.Now().UTC(),
	}
	if m.total > 0 {
		snap.AverageMillis = durationMillis(m.sum) / float64(m.total)
	}
	for status, count := range m.byStatus {
		snap.ByStatus[status] = count
	}
	return snap
}

// Reset clears the summary. Prometheus collectors are monotonic and are
// left untouched.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.total = 0
	m.sum = 0
	m.slowest = 0
	m.fastest = 0
	m.byStatus = make(map[int]int64)
}

// Handler serves the text exposition format for the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func statusLabel(status int) string {
	return strconv.Itoa(status)
}

func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
