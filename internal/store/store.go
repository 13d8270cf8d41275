// internal/store/store.go
//
// Durable per-day session storage. A session is keyed by (owner, dateKey)
// and stored as serialized JSON. Implementations may be backed by memory
// (development, tests) or SQLite (the default server configuration).
//
// Corrupt stored state is indistinguishable from absent state: Get returns
// (nil, nil) and the caller initializes a fresh session.

package store

import (
	"context"

	"github.com/imgdle/go-server/internal/game"
)

// Store defines the persistence interface for daily sessions.
type Store interface {
	// Get retrieves the session stored for (owner, dateKey).
	// Returns (nil, nil) when nothing usable is stored.
	Get(ctx context.Context, owner, dateKey string) (*game.Session, error)

	// Put persists or overwrites the session for (owner, dateKey).
	Put(ctx context.Context, owner, dateKey string, s *game.Session) error

	// Delete removes the session for (owner, dateKey). Used by manual reset.
	Delete(ctx context.Context, owner, dateKey string) error
}
