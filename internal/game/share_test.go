package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareTextWon(t *testing.T) {
	s := capitalsSession(t)
	_, err := s.Submit("London")
	require.NoError(t, err)
	_, err = s.Submit("Paris")
	require.NoError(t, err)
	require.Equal(t, StateWon, s.State)

	want := "Capitale #42 2/6\n" +
		"⬜⬜⬜⬜⬜⬜\n" +
		"🟩🟩🟩🟩🟩\n" +
		"Play daily at https://playguessle.com/capitale"
	assert.Equal(t, want, ShareText("Capitale", 42, s, "https://playguessle.com/capitale"))
}

func TestShareTextLost(t *testing.T) {
	s := capitalsSession(t)
	for _, g := range []string{"London", "Berlin", "Madrid", "Lisbon", "Vienna", "Warsaw"} {
		_, err := s.Submit(g)
		require.NoError(t, err)
	}
	require.Equal(t, StateLost, s.State)

	got := ShareText("Capitale", 7, s, "https://playguessle.com/capitale")
	assert.Contains(t, got, "Capitale #7 X/6\n")
	assert.Contains(t, got, "Play daily at https://playguessle.com/capitale")
}

func TestShareTextAttributeRows(t *testing.T) {
	att := Attempt{AttrMarks: []AttrMark{
		{Field: "cuisine", Mark: MarkHit},
		{Field: "course", Mark: MarkPresent},
		{Field: "year", Mark: MarkMiss},
	}}
	assert.Equal(t, "🟩🟨⬜", emojiRow(att))
}
