// internal/puzzle/daily.go
//
// Deterministic puzzle-of-the-day selection.
//
// Every player sees the same puzzle on the same calendar date: the index is
// days-since-epoch modulo pool length, so the pool cycles in order and every
// record is used exactly once before any repeats. No "used puzzle" state is
// persisted anywhere.
//
// The date passed in is the caller's LOCAL calendar date, not UTC — the
// puzzle rolls over at local midnight. Two adjacent time zones seeing
// different puzzles near midnight is accepted behavior.

package puzzle

import (
	"errors"
	"time"
)

// Epoch is day zero of puzzle numbering. Date math is done on calendar
// days in the supplied date's own location.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	// ErrEmptyPool means the game was configured with no puzzle records.
	ErrEmptyPool = errors.New("puzzle: empty pool")
	// ErrBeforeEpoch means the date predates puzzle numbering. This is a
	// configuration error (bad clock or bad request), not a runtime fault.
	ErrBeforeEpoch = errors.New("puzzle: date before epoch")
)

// DayNumber returns the number of whole calendar days between the epoch and
// date, computed in date's own location. Day 0 is 2024-01-01.
func DayNumber(date time.Time) (int, error) {
	y, m, d := date.Date()
	local := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := int(local.Sub(Epoch).Hours() / 24)
	if days < 0 {
		return 0, ErrBeforeEpoch
	}
	return days, nil
}

// Number returns the 1-based puzzle number for date, as used in share text
// ("Capitale #207 ...").
func Number(date time.Time) (int, error) {
	d, err := DayNumber(date)
	if err != nil {
		return 0, err
	}
	return d + 1, nil
}

// SelectDaily returns the puzzle record for date. Same date and pool always
// yield the same record, and over len(pool) consecutive days every record is
// selected exactly once.
func SelectDaily(pool []Record, date time.Time) (*Record, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	days, err := DayNumber(date)
	if err != nil {
		return nil, err
	}
	return &pool[days%len(pool)], nil
}

// DateKey returns the YYYY-MM-DD key used for results rows and sessions,
// in date's own location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
