package rescache

import "github.com/prometheus/client_golang/prometheus"

// Metrics receives one call per cache event. Implementations must be safe for concurrent use.
type Metrics interface {
	// Hit is called when a live entry is returned.
	Hit()
	// Miss is called when a new operation is started, including replacements of stale entries.
	Miss()
	// Expire is called when a stale entry is dropped on access.
	Expire()
	// Invalidate is called when an entry is removed explicitly.
	Invalidate()
}

type NoopMetrics struct{}

func (NoopMetrics) Hit()        {}
func (NoopMetrics) Miss()       {}
func (NoopMetrics) Expire()     {}
func (NoopMetrics) Invalidate() {}

const (
	metricsNamespace = "pokecache"
	metricsSubsystem = "resource_cache"
)

// PrometheusMetrics counts cache events per cache name. The counters are shared between all
// caches built from the same instance, so one instance can serve many per-session caches.
type PrometheusMetrics struct {
	hits          *prometheus.CounterVec
	misses        *prometheus.CounterVec
	expirations   *prometheus.CounterVec
	invalidations *prometheus.CounterVec
}

// NewPrometheusMetrics creates the counters and registers them with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	counter := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      name,
			Help:      help,
		}, []string{"cache"})
	}

	m := &PrometheusMetrics{
		hits:          counter("hits_total", "Number of lookups answered by a live entry."),
		misses:        counter("misses_total", "Number of lookups that started a new operation."),
		expirations:   counter("expirations_total", "Number of stale entries replaced on access."),
		invalidations: counter("invalidations_total", "Number of entries removed explicitly."),
	}

	for _, c := range []prometheus.Collector{m.hits, m.misses, m.expirations, m.invalidations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// For binds the counters to one cache name.
func (m *PrometheusMetrics) For(cache string) Metrics {
	return boundMetrics{
		hit:        m.hits.WithLabelValues(cache),
		miss:       m.misses.WithLabelValues(cache),
		expire:     m.expirations.WithLabelValues(cache),
		invalidate: m.invalidations.WithLabelValues(cache),
	}
}

type boundMetrics struct {
	hit, miss, expire, invalidate prometheus.Counter
}

func (b boundMetrics) Hit()        { b.hit.Inc() }
func (b boundMetrics) Miss()       { b.miss.Inc() }
func (b boundMetrics) Expire()     { b.expire.Inc() }
func (b boundMetrics) Invalidate() { b.invalidate.Inc() }
