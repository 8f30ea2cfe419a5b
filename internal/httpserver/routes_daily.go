// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode.
//   - POST /daily/new → start a round whose target is fixed for the UTC day.
//
// Guesses go through the regular POST /game/guess endpoint; a daily round is
// an ordinary session with ModeDaily. Deterministic word selection is based
// on date + salt.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/daily"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
	})
}

// startDaily begins a round on today's word.
func (s *Server) startDaily() (*game.Session, string, error) {
	word, date, err := daily.Target(s.dealer.Vocabulary(), s.now(), s.salt)
	if err != nil {
		return nil, "", err
	}
	g, err := s.dealer.StartWith(word, game.ModeDaily)
	return g, date, err
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	g, date, err := s.startDaily()
	if err != nil {
		log.Error().Err(err).Msg("start daily round")
		writeError(w, http.StatusInternalServerError, "start_failed", err)
		return
	}
	s.startRound(w, r, g, date)
}
