package puzzle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(n int) []Record {
	pool := make([]Record, n)
	for i := range pool {
		pool[i] = Record{ID: string(rune('a' + i)), Answer: string(rune('A' + i))}
	}
	return pool
}

func TestSelectDailyDeterminism(t *testing.T) {
	pool := testPool(7)
	date := time.Date(2024, 6, 15, 13, 37, 0, 0, time.UTC)

	a, err := SelectDaily(pool, date)
	require.NoError(t, err)
	b, err := SelectDaily(pool, date)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// Time of day never changes the selection.
	evening := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)
	c, err := SelectDaily(pool, evening)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestSelectDailyFullCoverageBeforeRepeat(t *testing.T) {
	pool := testPool(5)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	seen := map[string]int{}
	for i := 0; i < len(pool); i++ {
		rec, err := SelectDaily(pool, start.AddDate(0, 0, i))
		require.NoError(t, err)
		seen[rec.ID]++
	}
	assert.Len(t, seen, len(pool))
	for id, n := range seen {
		assert.Equal(t, 1, n, "record %s selected %d times", id, n)
	}

	// Day N wraps back to day 0's record.
	first, err := SelectDaily(pool, start)
	require.NoError(t, err)
	wrapped, err := SelectDaily(pool, start.AddDate(0, 0, len(pool)))
	require.NoError(t, err)
	assert.Equal(t, first, wrapped)
}

func TestSelectDailyEpochDayZero(t *testing.T) {
	pool := testPool(9)
	rec, err := SelectDaily(pool, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, &pool[0], rec)

	n, err := Number(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSelectDailyErrors(t *testing.T) {
	pool := testPool(3)

	_, err := SelectDaily(nil, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrEmptyPool)

	_, err = SelectDaily(pool, time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrBeforeEpoch)
}

func TestDayNumberUsesLocalCalendarDate(t *testing.T) {
	// 2024-01-02 00:30 in UTC+10 is still 2024-01-01 in UTC, but the
	// caller's calendar says day 1.
	loc := time.FixedZone("UTC+10", 10*3600)
	d, err := DayNumber(time.Date(2024, 1, 2, 0, 30, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, 1, d)
}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	assert.Equal(t, "2024-07-04", DateKey(time.Date(2024, 7, 4, 22, 0, 0, 0, loc)))
}
