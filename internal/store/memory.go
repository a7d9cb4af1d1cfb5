// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Active daily sessions live here while a player is partway through a
// puzzle; results are persisted to SQLite only on terminal state.
//
// Characteristics:
//   - Stores *game.Session keyed by player|game|date.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/lexigames/guessle/internal/game"
)

// ErrNotFound is returned by Get for unknown keys.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for active sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a session under key.
	Save(ctx context.Context, key string, s *game.Session) error

	// Get retrieves a session by key, or ErrNotFound.
	Get(ctx context.Context, key string) (*game.Session, error)

	// Delete removes a session; deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}

// Key builds the canonical session key for one player's daily game.
func Key(playerID, gameID, date string) string {
	return playerID + "|" + gameID + "|" + date
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Session)}
}

func (m *memory) Save(ctx context.Context, key string, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[key] = s
	return nil
}

func (m *memory) Get(ctx context.Context, key string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[key]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
	return nil
}
