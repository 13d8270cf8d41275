// internal/game/types.go
//
// Core type definitions for one daily round.
// Defines:
//   - Tile: the rendered scoring unit for one field of one attempt.
//   - Attempt: one scored guess submission.
//   - Session: per-calendar-day progress, serialized to the session store.

package game

import (
	"github.com/imgdle/go-server/internal/compare"
)

// Tile is one field's verdict enriched with the field label and the
// guess's formatted display value.
type Tile struct {
	Key    string         `json:"key"`
	Label  string         `json:"label"`
	Value  string         `json:"value"`
	Status compare.Status `json:"status"`
	Sub    string         `json:"sub"`
}

// Attempt is one scored guess. Never mutated after creation.
type Attempt struct {
	Name    string `json:"name"`    // resolved record's display name
	ID      string `json:"id"`      // resolved record's identifier
	Correct bool   `json:"correct"` // resolved record is the target
	Tiles   []Tile `json:"tiles"`   // one per field, in schema order
}

// Session is one calendar day's progress. TargetID pins the state to a
// specific daily puzzle; a stored session whose TargetID differs from
// today's freshly computed target is discarded.
type Session struct {
	TargetID string    `json:"targetId"`
	Attempts []Attempt `json:"attempts"`
	Done     bool      `json:"done"`
}

// Won reports whether any attempt hit the target. The round also stops at
// the first winning attempt, so this is equivalent to checking the last
// one; the any-attempt form is the contract.
func (s *Session) Won() bool {
	for _, a := range s.Attempts {
		if a.Correct {
			return true
		}
	}
	return false
}

// State reports a coarse string representation of the round state.
func (s *Session) State() string {
	if s.Done {
		return "done"
	}
	return "in_progress"
}
