// Package metrics exposes Prometheus counters for rounds and guesses.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
)

// Metrics owns a private registry so tests and multiple servers don't clash
// on the global one.
type Metrics struct {
	reg *prometheus.Registry

	roundsStarted  *prometheus.CounterVec
	roundsFinished *prometheus.CounterVec
	guesses        *prometheus.CounterVec
	attempts       prometheus.Histogram
}

// New builds and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		roundsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_rounds_started_total",
			Help: "Rounds started, by target mode.",
		}, []string{"mode"}),
		roundsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_rounds_finished_total",
			Help: "Rounds finished, by outcome.",
		}, []string{"outcome"}),
		guesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wordle_guesses_total",
			Help: "Guess submissions, by result status.",
		}, []string{"status"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wordle_winning_attempt",
			Help:    "Attempt number on which rounds were won.",
			Buckets: prometheus.LinearBuckets(1, 1, game.AllowedGuesses),
		}),
	}
	m.reg.MustRegister(
		m.roundsStarted, m.roundsFinished, m.guesses, m.attempts,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RoundStarted counts a new round.
func (m *Metrics) RoundStarted(mode game.Mode) {
	m.roundsStarted.WithLabelValues(string(mode)).Inc()
}

// Guess counts a submission and, when it ended the round, the outcome.
func (m *Metrics) Guess(r game.Result, out game.Outcome) {
	m.guesses.WithLabelValues(r.Status.String()).Inc()
	if r.Status != game.Accepted || !r.State.Terminal() {
		return
	}
	m.roundsFinished.WithLabelValues(out.State.String()).Inc()
	if out.Won() {
		m.attempts.Observe(float64(out.Attempts))
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
