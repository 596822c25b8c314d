package metrics

import (
	"time"

	"arclean_orcamentos/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arclean"

// Prometheus exports facade mutations and cache sizes.
type Prometheus struct {
	mutations *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	size      *prometheus.GaugeVec
}

var _ interfaces.IMetrics = (*Prometheus)(nil)

// NewPrometheus registers the collectors on reg (prometheus.DefaultRegisterer
// when serving /metrics through promhttp.Handler).
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Facade mutations by operation and result.",
		}, []string{"op", "result"}),
		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mutation_duration_seconds",
			Help:      "Time spent in a facade mutation, store round-trip and reload included.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"op"}),
		size: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_size",
			Help:      "Rows in the cached collection after the last reload.",
		}, []string{"collection"}),
	}
}

func (p *Prometheus) ObserveMutation(op string, took time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.mutations.WithLabelValues(op, result).Inc()
	p.latency.WithLabelValues(op).Observe(took.Seconds())
}

func (p *Prometheus) SetCollectionSize(collection string, n int) {
	p.size.WithLabelValues(collection).Set(float64(n))
}
