package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexigames/guessle/internal/game"
)

func TestInitLoadsEmbeddedGames(t *testing.T) {
	require.NoError(t, Init())

	games := List()
	require.Len(t, games, 3)
	assert.Equal(t, "capitale", games[0].ID)
	assert.Equal(t, "foodle", games[1].ID)
	assert.Equal(t, "creaturedle", games[2].ID)

	for _, g := range games {
		assert.NotEmpty(t, g.Name)
		assert.NotEmpty(t, g.ShareURL)
		assert.Equal(t, game.DefaultMaxAttempts, g.MaxAttempts)
		assert.Greater(t, len(g.Pool), 0)
		assert.Greater(t, g.Vocab.Len(), 0)
	}
}

func TestEveryAnswerIsGuessable(t *testing.T) {
	require.NoError(t, Init())
	for _, g := range List() {
		for _, rec := range g.Pool {
			assert.True(t, g.Vocab.IsValid(rec.Answer), "%s: answer %q", g.ID, rec.Answer)
			if g.Kind == game.KindAttributes {
				assert.NotNil(t, g.Entity(rec.Answer), "%s: entity for %q", g.ID, rec.Answer)
			}
		}
	}
}

func TestNewSessionScoresAttributes(t *testing.T) {
	require.NoError(t, Init())
	g, ok := Get("foodle")
	require.True(t, ok)

	// Epoch day 0 selects the first record.
	date := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	sess, err := g.NewSession(date, "player-1", false)
	require.NoError(t, err)
	assert.Equal(t, game.KindAttributes, sess.Kind)
	require.Equal(t, "Pizza Margherita", sess.Puzzle.Answer)
	require.NotNil(t, sess.Puzzle.Target)

	// Sushi vs Pizza Margherita: only the course matches; the calorie gap
	// exceeds the tolerance and points upward.
	att, err := sess.Submit("Sushi")
	require.NoError(t, err)
	assert.False(t, att.Correct)
	require.Len(t, att.AttrMarks, len(g.Schema))
	assert.Equal(t, game.AttrMark{Field: "cuisine", Mark: game.MarkMiss}, att.AttrMarks[0])
	assert.Equal(t, game.AttrMark{Field: "course", Mark: game.MarkHit}, att.AttrMarks[1])
	assert.Equal(t, game.AttrMark{Field: "ingredients", Mark: game.MarkMiss}, att.AttrMarks[2])
	assert.Equal(t, game.AttrMark{Field: "method", Mark: game.MarkMiss}, att.AttrMarks[3])
	assert.Equal(t, game.AttrMark{Field: "calories", Mark: game.MarkMiss, Direction: game.DirHigher}, att.AttrMarks[4])
}

// Guessing the day's own answer through the catalog path must score every
// attribute as a hit, for every attribute game.
func TestNewSessionAnswerScoresAllHit(t *testing.T) {
	require.NoError(t, Init())
	date := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, g := range List() {
		if g.Kind != game.KindAttributes {
			continue
		}
		sess, err := g.NewSession(date, "player-1", false)
		require.NoError(t, err, g.ID)
		require.NotNil(t, sess.Puzzle.Target, g.ID)

		att, err := sess.Submit(sess.Puzzle.Answer)
		require.NoError(t, err, g.ID)
		assert.True(t, att.Correct, g.ID)
		require.Len(t, att.AttrMarks, len(g.Schema), g.ID)
		for _, am := range att.AttrMarks {
			assert.Equal(t, game.MarkHit, am.Mark, "%s: field %s", g.ID, am.Field)
		}
	}
}

func TestNewSessionDeterministicPerDate(t *testing.T) {
	require.NoError(t, Init())
	g, ok := Get("capitale")
	require.True(t, ok)

	date := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	a, err := g.NewSession(date, "p1", false)
	require.NoError(t, err)
	b, err := g.NewSession(date, "p2", false)
	require.NoError(t, err)
	assert.Equal(t, a.Puzzle.ID, b.Puzzle.ID)
}

func TestParseGameRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"missing id", `{"name":"X","records":[{"id":"a","answer":"A"}],"vocab":[{"name":"A"}]}`},
		{"no records", `{"id":"x","name":"X","vocab":[{"name":"A"}]}`},
		{"answer not in vocab", `{"id":"x","name":"X","records":[{"id":"a","answer":"A"}],"vocab":[{"name":"B"}]}`},
		{"attribute game without schema", `{"id":"x","name":"X","kind":"attributes","records":[{"id":"a","answer":"A"}],"entities":[{"name":"A","attrs":{}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseGame([]byte(tt.json))
			assert.Error(t, err)
		})
	}
}
