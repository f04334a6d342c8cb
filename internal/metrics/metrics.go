package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Set bundles the server's prometheus collectors. Collectors register
// against the given registerer, so tests can use a fresh registry per Set.
type Set struct {
	Connections prometheus.Gauge
	Messages    prometheus.Counter
	Feedback    *prometheus.CounterVec
}

// New creates and registers the collector set.
func New(reg prometheus.Registerer) *Set {
	f := promauto.With(reg)
	return &Set{
		Connections: f.NewGauge(prometheus.GaugeOpts{
			Name: "banter_connections",
			Help: "Connections currently registered with the chat service.",
		}),
		Messages: f.NewCounter(prometheus.CounterOpts{
			Name: "banter_messages_total",
			Help: "Messages appended to the store.",
		}),
		Feedback: f.NewCounterVec(prometheus.CounterOpts{
			Name: "banter_feedback_total",
			Help: "Feedback events applied, by kind.",
		}, []string{"kind"}),
	}
}
