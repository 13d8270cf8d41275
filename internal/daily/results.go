// internal/daily/results.go
//
// Finished-round persistence for the daily leaderboard. One row per owner
// per date, written when a round reaches done.

package daily

import (
	"context"
	"database/sql"
)

// Result is one finished daily round.
type Result struct {
	Owner    string `json:"owner"`
	Date     string `json:"date"`
	Attempts int    `json:"attempts"`
	Won      bool   `json:"won"`
}

// Results reads and writes daily_results rows.
type Results struct{ db *sql.DB }

// NewResults wraps a database handle.
func NewResults(db *sql.DB) *Results { return &Results{db: db} }

// Insert records a finished round. Replays of the same day are ignored.
func (s *Results) Insert(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(owner, date, attempts, won)
		 VALUES(?,?,?,?)`, r.Owner, r.Date, r.Attempts, boolToInt(r.Won))
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	Owner    string `json:"owner"`
	Attempts int    `json:"attempts"`
}

// Leaderboard returns the winning rounds for date, fewest attempts first.
func (s *Results) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT owner, attempts
		 FROM daily_results
		 WHERE date=? AND won=1
		 ORDER BY attempts ASC, created_at ASC
		 LIMIT ?`, date, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LBRow
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.Owner, &r.Attempts); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
