package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
)

func TestMetrics_Counts(t *testing.T) {
	m := New()
	m.RoundStarted(game.ModeRandom)
	m.RoundStarted(game.ModeDaily)

	m.Guess(game.Result{Status: game.RejectedNotInVocabulary}, game.Outcome{})
	m.Guess(game.Result{Status: game.Accepted, State: game.StateAwaitingGuess}, game.Outcome{Attempts: 1})
	m.Guess(game.Result{Status: game.Accepted, State: game.StateWon}, game.Outcome{State: game.StateWon, Attempts: 2})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.roundsStarted.WithLabelValues("daily")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.guesses.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.guesses.WithLabelValues("not_in_vocabulary")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roundsFinished.WithLabelValues("won")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.roundsFinished.WithLabelValues("lost")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RoundStarted(game.ModeRandom)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `wordle_rounds_started_total{mode="random"} 1`)
}
