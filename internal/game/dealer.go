// internal/game/dealer.go
//
// Dealer starts and restores sessions over one shared vocabulary.
// The random source is seeded once and guarded by a mutex, so a single
// Dealer can serve concurrent HTTP handlers.

package game

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

// Dealer starts rounds against a shared vocabulary. It owns the random
// source for target selection, seeded once by the caller, and is safe for
// concurrent use.
type Dealer struct {
	vocab *words.Vocabulary

	mu  sync.Mutex // guards rng
	rng words.Source

	now func() time.Time
}

// NewDealer returns a Dealer drawing targets from vocab with rng.
func NewDealer(vocab *words.Vocabulary, rng words.Source) *Dealer {
	return &Dealer{vocab: vocab, rng: rng, now: time.Now}
}

// Vocabulary returns the shared word list.
func (d *Dealer) Vocabulary() *words.Vocabulary { return d.vocab }

// Start begins a round with a uniformly random target.
func (d *Dealer) Start() (*Session, error) {
	d.mu.Lock()
	target, err := d.vocab.RandomWord(d.rng)
	d.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("start round: %w", err)
	}
	s := newSession(uuid.NewString(), ModeRandom, d.vocab, target, d.now().UTC())
	log.Debug().Str("gameId", s.id).Msg("round started")
	return s, nil
}

// StartWith begins a round with a fixed target, which must be in the
// vocabulary.
func (d *Dealer) StartWith(target string, mode Mode) (*Session, error) {
	t := words.Normalize(target)
	if !d.vocab.Contains(t) {
		return nil, fmt.Errorf("start round: %w: %q", ErrUnknownTarget, target)
	}
	s := newSession(uuid.NewString(), mode, d.vocab, t, d.now().UTC())
	log.Debug().Str("gameId", s.id).Str("mode", string(mode)).Msg("round started")
	return s, nil
}

// Restore rebuilds a Session from a snapshot by replaying its guesses, so
// feedback and state are recomputed rather than trusted.
func (d *Dealer) Restore(snap Snapshot) (*Session, error) {
	if snap.ID == "" || !d.vocab.Contains(snap.Target) {
		return nil, fmt.Errorf("%w: id %q", ErrBadSnapshot, snap.ID)
	}
	if len(snap.Guesses) > AllowedGuesses {
		return nil, fmt.Errorf("%w: %d guesses", ErrBadSnapshot, len(snap.Guesses))
	}
	mode := snap.Mode
	if mode == "" {
		mode = ModeRandom
	}
	s := newSession(snap.ID, mode, d.vocab, snap.Target, snap.StartedAt)
	for i, g := range snap.Guesses {
		if r := s.Submit(g); r.Status != Accepted {
			return nil, fmt.Errorf("%w: guess %d %q: %v", ErrBadSnapshot, i+1, g, r.Err())
		}
	}
	return s, nil
}
