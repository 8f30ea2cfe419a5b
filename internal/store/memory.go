// internal/store/memory.go
//
// Session persistence for rounds in progress.
//
// Stores hold game.Snapshot values rather than live sessions; callers
// rebuild a *game.Session with game.Dealer.Restore, which re-validates the
// snapshot against the vocabulary.
//
// Implementations:
//   - memory (this file): map + RWMutex, lost on restart.
//   - redis.go:  JSON values with TTL.
//   - sqlite.go: one row per game.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
)

// ErrNotFound is returned by Get for unknown game IDs.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a game snapshot.
	Save(ctx context.Context, snap game.Snapshot) error

	// Get retrieves a snapshot by game ID, or ErrNotFound.
	Get(ctx context.Context, id string) (game.Snapshot, error)

	// Delete removes a game; deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex             // guards games map
	games map[string]game.Snapshot // keyed by Snapshot.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]game.Snapshot)}
}

// Save adds or updates the snapshot in the map.
func (m *memory) Save(ctx context.Context, snap game.Snapshot) error {
	snap.Guesses = append([]string(nil), snap.Guesses...)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[snap.ID] = snap
	return nil
}

// Get looks up a snapshot by ID.
func (m *memory) Get(ctx context.Context, id string) (game.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.games[id]; ok {
		s.Guesses = append([]string(nil), s.Guesses...)
		return s, nil
	}
	return game.Snapshot{}, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}
