// Package metrics provides Prometheus instruments for bot activity.
// The instruments are served by the ops HTTP server's /metrics endpoint.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for command metrics.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the bot's Prometheus instruments.
type Metrics struct {
	commandsTotal       *prometheus.CounterVec
	interactionDuration *prometheus.HistogramVec
}

// New creates and registers the bot metrics on the given registerer.
// Pass prometheus.DefaultRegisterer for the default /metrics output.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		commandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quotebot",
			Name:      "commands_total",
			Help:      "Slash command invocations by subcommand and outcome.",
		}, []string{"subcommand", "outcome"}),
		interactionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quotebot",
			Name:      "interaction_duration_seconds",
			Help:      "Time spent handling an interaction, by kind.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
}

// ObserveCommand records one slash command invocation.
func (m *Metrics) ObserveCommand(subcommand, outcome string) {
	if m == nil {
		return
	}
	m.commandsTotal.WithLabelValues(subcommand, outcome).Inc()
}

// ObserveInteraction records the duration of one handled interaction.
func (m *Metrics) ObserveInteraction(kind string, since time.Time) {
	if m == nil {
		return
	}
	m.interactionDuration.WithLabelValues(kind).Observe(time.Since(since).Seconds())
}
