// internal/store/memory.go
//
// In-memory implementation of Store. Used in development and tests, or when
// durability across restarts is not required.
//
// Characteristics:
//   - Holds the serialized JSON form, exercising the same encode/decode
//     path as the durable backends.
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/imgdle/go-server/internal/game"
)

type memory struct {
	mu       sync.RWMutex
	sessions map[string][]byte // keyed by owner|dateKey
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string][]byte)}
}

func key(owner, dateKey string) string { return owner + "|" + dateKey }

func (m *memory) Get(ctx context.Context, owner, dateKey string) (*game.Session, error) {
	m.mu.RLock()
	raw, ok := m.sessions[key(owner, dateKey)]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	var s game.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		// Unparsable state reads as absent.
		return nil, nil
	}
	return &s, nil
}

func (m *memory) Put(ctx context.Context, owner, dateKey string, s *game.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.sessions[key(owner, dateKey)] = raw
	m.mu.Unlock()
	return nil
}

func (m *memory) Delete(ctx context.Context, owner, dateKey string) error {
	m.mu.Lock()
	delete(m.sessions, key(owner, dateKey))
	m.mu.Unlock()
	return nil
}
