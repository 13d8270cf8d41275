// internal/store/sqlite.go
//
// SQLite-backed Store. Sessions live in the daily_sessions table, one row
// per (owner, date), holding the serialized session JSON. Survives server
// restarts so a reloaded page reproduces the same attempts.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/imgdle/go-server/internal/game"
)

type sqliteStore struct{ db *sql.DB }

// NewSQLiteStore wraps a database handle; the daily_sessions table comes
// from the sql/ migrations.
func NewSQLiteStore(db *sql.DB) Store {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Get(ctx context.Context, owner, dateKey string) (*game.Session, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM daily_sessions WHERE owner=? AND date=?`,
		owner, dateKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess game.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		// Unparsable state reads as absent; the round restarts fresh.
		log.Warn().Err(err).Str("owner", owner).Str("date", dateKey).Msg("corrupt stored session")
		return nil, nil
	}
	return &sess, nil
}

func (s *sqliteStore) Put(ctx context.Context, owner, dateKey string, sess *game.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO daily_sessions(owner, date, state) VALUES(?,?,?)
		 ON CONFLICT(owner, date) DO UPDATE SET state=excluded.state, updated_at=CURRENT_TIMESTAMP`,
		owner, dateKey, string(raw))
	return err
}

func (s *sqliteStore) Delete(ctx context.Context, owner, dateKey string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM daily_sessions WHERE owner=? AND date=?`, owner, dateKey)
	return err
}
