// internal/game/engine.go
//
// Core engine for the daily guessing game.
// Responsibilities:
//   - Pick today's target deterministically from the dataset.
//   - Reconcile a stored session against today's target.
//   - Validate and apply guesses, scoring each field into tiles.
//   - Track state transitions: in_progress → done (win or attempt cap).
//
// The engine holds only immutable configuration; all mutable state lives in
// the Session the caller passes in and persists after every submission.

package game

import (
	"errors"

	"github.com/imgdle/go-server/internal/compare"
	"github.com/imgdle/go-server/internal/daily"
	"github.com/imgdle/go-server/internal/dataset"
	"github.com/imgdle/go-server/internal/schema"
)

// Submission rejections. None of these mutate the session.
var (
	// ErrFinished rejects a submission once the round is done.
	ErrFinished = errors.New("round finished")
	// ErrEmptyGuess rejects blank input.
	ErrEmptyGuess = errors.New("empty guess")
	// ErrUnknownName rejects input that resolves to no record or alias.
	ErrUnknownName = errors.New("unknown name")
)

// Game scores guesses for one dataset and field schema.
type Game struct {
	data     *dataset.Data
	fields   []schema.Field
	maxTries int
}

// New constructs a Game. maxTries <= 0 falls back to the default limit.
func New(data *dataset.Data, fields []schema.Field, maxTries int) *Game {
	if maxTries <= 0 {
		maxTries = schema.DefaultMaxTries
	}
	return &Game{data: data, fields: fields, maxTries: maxTries}
}

// MaxTries returns the attempt limit.
func (g *Game) MaxTries() int { return g.maxTries }

// Fields returns the field schema in tile order.
func (g *Game) Fields() []schema.Field { return g.fields }

// Data returns the dataset the game scores against.
func (g *Game) Data() *dataset.Data { return g.data }

// TargetFor returns the daily target for a date key.
func (g *Game) TargetFor(dateKey string) *dataset.Record {
	return g.data.At(daily.Index(dateKey, g.data.Len()))
}

// SessionFor reconciles a stored session against today's target: nil or a
// session pinned to a different target yields a fresh empty session.
func (g *Game) SessionFor(stored *Session, target *dataset.Record) *Session {
	if stored == nil || stored.TargetID != target.ID {
		return &Session{TargetID: target.ID}
	}
	return stored
}

// Submit resolves raw player input and applies it as an attempt.
// Rejections (ErrFinished, ErrEmptyGuess, ErrUnknownName) leave the session
// untouched. On success the attempt is appended, and the session flips to
// done when the attempt is correct or the attempt count reaches the limit.
// The caller persists the session after every successful submission.
func (g *Game) Submit(sess *Session, target *dataset.Record, raw string) (*Attempt, error) {
	if sess.Done {
		return nil, ErrFinished
	}
	rec, err := g.Resolve(raw)
	if err != nil {
		return nil, err
	}

	att := Attempt{
		Name:    rec.Name,
		ID:      rec.ID,
		Correct: rec.ID == target.ID,
		Tiles:   BuildTiles(g.fields, rec, target),
	}
	sess.Attempts = append(sess.Attempts, att)

	if att.Correct || len(sess.Attempts) >= g.maxTries {
		sess.Done = true
	}
	return &att, nil
}

// Resolve validates raw input against the dataset's name index without
// touching any session.
func (g *Game) Resolve(raw string) (*dataset.Record, error) {
	if compare.Normalize(raw) == "" {
		return nil, ErrEmptyGuess
	}
	rec := g.data.Resolve(raw)
	if rec == nil {
		return nil, ErrUnknownName
	}
	return rec, nil
}

// BuildTiles scores guess against target field by field and returns one
// tile per descriptor, preserving descriptor order. The order is the stable
// visual layout and never depends on the data.
func BuildTiles(fields []schema.Field, guess, target *dataset.Record) []Tile {
	tiles := make([]Tile, len(fields))
	for i, f := range fields {
		v := f.Compare(guess, target)
		tiles[i] = Tile{
			Key:    f.Key,
			Label:  f.Label,
			Value:  f.Display(guess.Attr(f.Key)),
			Status: v.Status,
			Sub:    v.Sub,
		}
	}
	return tiles
}
