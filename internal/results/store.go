// internal/results/store.go
//
// SQLite-backed store for finished daily results. Keyed by
// (game, date, player) so a player records at most one result per game per
// day; the core engine never reads these rows back.

package results

import (
	"context"
	"database/sql"
)

// Result is one finished session's outcome.
type Result struct {
	Game     string `json:"game"`
	Date     string `json:"date"`
	PlayerID string `json:"playerId"`
	Won      bool   `json:"won"`
	Attempts int    `json:"attempts"`
}

// Store wraps the daily_results table.
type Store struct{ db *sql.DB }

// NewStore constructs a Store over db.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether a result row exists for the player/game/date.
func (s *Store) AlreadyPlayed(ctx context.Context, gameID, playerID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE game=? AND date=? AND player_id=?`,
		gameID, date, playerID,
	).Scan(&cnt)
	return cnt > 0, err
}

// Record inserts a result row. Duplicate submissions for the same key are
// ignored; first write wins.
func (s *Store) Record(ctx context.Context, r Result) error {
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(game, date, player_id, won, attempts)
		 VALUES(?,?,?,?,?)`, r.Game, r.Date, r.PlayerID, won, r.Attempts,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	PlayerID string `json:"playerId"`
	Won      bool   `json:"won"`
	Attempts int    `json:"attempts"`
}

// Leaderboard returns the day's top results: wins first, fewest attempts,
// earliest finish breaking ties.
func (s *Store) Leaderboard(ctx context.Context, gameID, date string, limit int) ([]LBRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT player_id, won, attempts
		 FROM daily_results
		 WHERE game=? AND date=?
		 ORDER BY won DESC, attempts ASC, created_at ASC
		 LIMIT ?`, gameID, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LBRow{}
	for rows.Next() {
		var r LBRow
		var won int
		if err := rows.Scan(&r.PlayerID, &won, &r.Attempts); err != nil {
			return nil, err
		}
		r.Won = won == 1
		out = append(out, r)
	}
	return out, rows.Err()
}

// Distribution aggregates a day's outcomes: wins bucketed by attempt count
// (1..6) plus the number of losses. Feeds the share-screen histogram.
type Distribution struct {
	Wins   map[int]int `json:"wins"`
	Losses int         `json:"losses"`
}

// Distribution returns the win-distribution aggregate for one game/date.
func (s *Store) Distribution(ctx context.Context, gameID, date string) (Distribution, error) {
	d := Distribution{Wins: map[int]int{}}
	rows, err := s.db.QueryContext(ctx,
		`SELECT won, attempts, COUNT(1)
		 FROM daily_results
		 WHERE game=? AND date=?
		 GROUP BY won, attempts`, gameID, date,
	)
	if err != nil {
		return d, err
	}
	defer rows.Close()
	for rows.Next() {
		var won, attempts, n int
		if err := rows.Scan(&won, &attempts, &n); err != nil {
			return d, err
		}
		if won == 1 {
			d.Wins[attempts] += n
		} else {
			d.Losses += n
		}
	}
	return d, rows.Err()
}
