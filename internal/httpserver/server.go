// internal/httpserver/server.go
//
// HTTP server wiring for the Wordle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/metrics", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}.
//   - Daily Challenge: POST /daily/new (see routes_daily.go).
//   - Live play over a WebSocket: GET /game/ws (see ws.go).
//
// Notes:
//   - Every game request loads a snapshot, rebuilds the session through the
//     Dealer, applies the change and saves it back, under a per-game lock.
//   - Round tokens (token.go) tie a client to the game it started.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"hash/fnv"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/metrics"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/store"
)

// Options configures a Server.
type Options struct {
	Store        store.Store
	Dealer       *game.Dealer
	Metrics      *metrics.Metrics // nil builds a private one
	TokenSecret  string
	TokenTTL     time.Duration
	DailySalt    string
	ClientOrigin string
}

// Server bundles router, session store and dealer.
type Server struct {
	r       *chi.Mux
	store   store.Store
	dealer  *game.Dealer
	metrics *metrics.Metrics
	tokens  *tokens
	salt    string
	now     func() time.Time

	upgrader websocket.Upgrader

	locks [64]sync.Mutex // per-game locks, striped by ID hash
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		store:   opts.Store,
		dealer:  opts.Dealer,
		metrics: opts.Metrics,
		tokens:  newTokens(opts.TokenSecret, opts.TokenTTL),
		salt:    opts.DailySalt,
		now:     time.Now,
	}
	if s.metrics == nil {
		s.metrics = metrics.New()
	}
	origin := opts.ClientOrigin
	if origin == "" {
		origin = defaultClientOrigin
	}
	s.upgrader = newUpgrader(origin)

	// --- middleware ---
	s.r.Use(chimw.RequestID) // add X-Request-ID
	s.r.Use(chimw.RealIP)    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)
	s.r.Use(chimw.Recoverer) // recover from panics
	s.r.Use(cors(origin))

	// WebSocket play is long-lived; keep it outside the timeout group.
	s.r.Get("/game/ws", s.handleWS)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
		r.Use(jsonContentType)

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"service":"wordle-go","endpoints":["/health","POST /game/new","POST /game/guess","GET /game/{id}","POST /daily/new","GET /game/ws"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]int{"words": s.dealer.Vocabulary().Len()})
		})

		r.Post("/game/new", s.handleNewGame)
		r.Post("/game/guess", s.handleGuess)
		r.Get("/game/{id}", s.handleGetGame)

		s.mountDaily(r)
	})

	s.r.Handle("/metrics", s.metrics.Handler())

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.r }

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}
type newGameRes struct {
	GameID     string    `json:"gameId"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Mode       game.Mode `json:"mode"`
	Date       string    `json:"date,omitempty"`
	Remaining  int       `json:"remaining"`
	WordLength int       `json:"wordLength"`
}

// handleNewGame starts a round (random target unless an answer is given).
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	var (
		g   *game.Session
		err error
	)
	if req.Answer != "" {
		g, err = s.dealer.StartWith(req.Answer, game.ModeFixed)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown_answer", err)
			return
		}
	} else if g, err = s.dealer.Start(); err != nil {
		log.Error().Err(err).Msg("start round")
		writeError(w, http.StatusInternalServerError, "start_failed", err)
		return
	}
	s.startRound(w, r, g, "")
}

// startRound saves a fresh session and answers with its token.
func (s *Server) startRound(w http.ResponseWriter, r *http.Request, g *game.Session, date string) {
	if err := s.store.Save(r.Context(), g.Snapshot()); err != nil {
		log.Error().Err(err).Str("gameId", g.ID()).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed", err)
		return
	}
	tok, exp, err := s.tokens.issue(g.ID())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed", err)
		return
	}
	s.metrics.RoundStarted(g.Mode())
	log.Info().Str("gameId", g.ID()).Str("mode", string(g.Mode())).Msg("round started")

	writeJSON(w, http.StatusOK, newGameRes{
		GameID:     g.ID(),
		Token:      tok,
		ExpiresAt:  exp,
		Mode:       g.Mode(),
		Date:       date,
		Remaining:  g.Remaining(),
		WordLength: game.WordLength,
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Status    string      `json:"status"`
	Guess     string      `json:"guess"`
	Marks     []game.Mark `json:"marks,omitempty"`
	State     game.State  `json:"state"` // "playing" | "won" | "lost"
	Remaining int         `json:"remaining"`
	Attempts  int         `json:"attempts"`
	Target    string      `json:"target,omitempty"` // revealed once finished
}

// handleGuess applies a guess to a stored game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err)
		return
	}
	if err := s.tokens.authorize(r, req.GameID); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", err)
		return
	}

	res, status, err := s.submit(r.Context(), req.GameID, req.Guess)
	if err != nil {
		writeError(w, status, errorCode(err), err)
		return
	}
	writeJSON(w, status, res)
}

// submit runs one guess against a stored game and returns the response body
// with its HTTP status. Rejected guesses are 400/409 responses that still
// carry a body, never a storage change.
func (s *Server) submit(ctx context.Context, id, guess string) (guessRes, int, error) {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	g, err := s.load(ctx, id)
	if err != nil {
		return guessRes{}, statusFor(err), err
	}

	res := g.Submit(guess)
	out, _ := g.Outcome()
	s.metrics.Guess(res, out)

	body := guessRes{
		Status:    res.Status.String(),
		Guess:     res.Guess,
		State:     res.State,
		Remaining: g.Remaining(),
		Attempts:  len(g.Transcript()),
	}
	if target, ok := g.Target(); ok {
		body.Target = target
	}

	switch res.Status {
	case game.RejectedRoundOver:
		return body, http.StatusConflict, nil
	case game.RejectedWrongLength, game.RejectedNotInVocabulary:
		return body, http.StatusBadRequest, nil
	}

	body.Marks = res.Feedback[:]
	if err := s.store.Save(ctx, g.Snapshot()); err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("save game")
		return guessRes{}, http.StatusInternalServerError, err
	}
	if res.State.Terminal() {
		log.Info().Str("gameId", id).Str("state", res.State.String()).Int("attempts", out.Attempts).Msg("round finished")
	}
	return body, http.StatusOK, nil
}

// gameView is the read model for GET /game/{id}.
type gameView struct {
	GameID    string       `json:"gameId"`
	Mode      game.Mode    `json:"mode"`
	State     game.State   `json:"state"`
	Remaining int          `json:"remaining"`
	Guesses   []game.Entry `json:"guesses"`
	Target    string       `json:"target,omitempty"`
	StartedAt time.Time    `json:"startedAt"`
}

func viewOf(g *game.Session) gameView {
	v := gameView{
		GameID:    g.ID(),
		Mode:      g.Mode(),
		State:     g.State(),
		Remaining: g.Remaining(),
		Guesses:   g.Transcript(),
		StartedAt: g.StartedAt(),
	}
	if t, ok := g.Target(); ok {
		v.Target = t
	}
	return v
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.tokens.authorize(r, id); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	g, err := s.load(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), errorCode(err), err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(g))
}

// load fetches and rebuilds a session.
func (s *Server) load(ctx context.Context, id string) (*game.Session, error) {
	snap, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.dealer.Restore(snap)
}

func (s *Server) lock(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &s.locks[h.Sum32()%uint32(len(s.locks))]
}

// ------------------------------- util --------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	body := map[string]string{"error": code}
	if err != nil && status < http.StatusInternalServerError {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrBadSnapshot):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "not_found"
	case errors.Is(err, game.ErrBadSnapshot):
		return "corrupt_game"
	}
	return "server_error"
}
