// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used for ephemeral rounds, in development/testing, or when durability
// is not required.
//
// Characteristics:
//   - Stores *game.Round values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Values are cloned on the way in and out so no caller shares a Round.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/vocab-jumble/internal/game"
)

// ErrNotFound is returned when no round has the requested ID.
var ErrNotFound = errors.New("store: round not found")

// Store persists per-player round state between requests.
// Implementations may be backed by memory (this file) or SQLite.
type Store interface {
	// Save persists or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Get retrieves a copy of the round with the given ID.
	Get(ctx context.Context, id string) (*game.Round, error)

	// Update loads the round, applies fn, and saves the result. No other
	// Update on the same round runs while fn executes. If fn returns an
	// error nothing is saved.
	Update(ctx context.Context, id string, fn func(r *game.Round) error) error

	// Delete removes a round. Deleting a missing round is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteBefore removes every round created before t and reports how
	// many were removed.
	DeleteBefore(ctx context.Context, t time.Time) (int64, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex           // guards rounds map
	rounds map[string]*game.Round // keyed by Round.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

func (m *memory) Save(ctx context.Context, r *game.Round) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[r.ID] = r.Clone()
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rounds[id]; ok {
		return r.Clone(), nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(r *game.Round) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	r := cur.Clone()
	if err := fn(r); err != nil {
		return err
	}
	m.rounds[id] = r
	return nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}

func (m *memory) DeleteBefore(ctx context.Context, t time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, r := range m.rounds {
		if r.CreatedAt.Before(t) {
			delete(m.rounds, id)
			n++
		}
	}
	return n, nil
}
