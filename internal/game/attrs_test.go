package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexigames/guessle/internal/puzzle"
)

var dishSchema = Schema{
	{Name: "cuisine", Kind: FieldCategory, Parents: map[string]string{
		"Italian": "European", "French": "European", "Thai": "Asian", "Japanese": "Asian",
	}},
	{Name: "course", Kind: FieldText},
	{Name: "ingredients", Kind: FieldSet},
	{Name: "year", Kind: FieldNumber, Tolerance: 10},
}

func dish(cuisine, course string, ingredients []string, year float64) puzzle.Entity {
	return puzzle.Entity{
		"cuisine":     {Text: cuisine},
		"course":      {Text: course},
		"ingredients": {Set: ingredients},
		"year":        {Number: year},
	}
}

func TestScoreAttributes(t *testing.T) {
	target := dish("Italian", "Main", []string{"dough", "tomato", "basil"}, 1889)

	tests := []struct {
		name  string
		guess puzzle.Entity
		want  []AttrMark
	}{
		{
			name:  "identical entity is all hit",
			guess: dish("Italian", "Main", []string{"tomato", "dough", "basil"}, 1889),
			want: []AttrMark{
				{Field: "cuisine", Mark: MarkHit},
				{Field: "course", Mark: MarkHit},
				{Field: "ingredients", Mark: MarkHit},
				{Field: "year", Mark: MarkHit},
			},
		},
		{
			name:  "shared parent category and set overlap",
			guess: dish("French", "Dessert", []string{"butter", "tomato"}, 1850),
			want: []AttrMark{
				{Field: "cuisine", Mark: MarkPresent},
				{Field: "course", Mark: MarkMiss},
				{Field: "ingredients", Mark: MarkPresent},
				{Field: "year", Mark: MarkMiss, Direction: DirHigher},
			},
		},
		{
			name:  "unrelated category and near-miss year",
			guess: dish("Thai", "Main", []string{"rice noodles"}, 1895),
			want: []AttrMark{
				{Field: "cuisine", Mark: MarkMiss},
				{Field: "course", Mark: MarkHit},
				{Field: "ingredients", Mark: MarkMiss},
				{Field: "year", Mark: MarkPresent, Direction: DirLower},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreAttributes(tt.guess, target, dishSchema))
		})
	}
}

func TestScoreAttributesDirectionPointsTowardAnswer(t *testing.T) {
	schema := Schema{{Name: "year", Kind: FieldNumber, Tolerance: 5}}
	target := puzzle.Entity{"year": {Number: 1900}}

	low := ScoreAttributes(puzzle.Entity{"year": {Number: 1800}}, target, schema)
	require.Len(t, low, 1)
	assert.Equal(t, DirHigher, low[0].Direction)
	assert.Equal(t, MarkMiss, low[0].Mark)

	high := ScoreAttributes(puzzle.Entity{"year": {Number: 1903}}, target, schema)
	require.Len(t, high, 1)
	assert.Equal(t, DirLower, high[0].Direction)
	assert.Equal(t, MarkPresent, high[0].Mark)
}

func TestScoreAttributesMissingValues(t *testing.T) {
	target := puzzle.Entity{"course": {Text: "Main"}}
	marks := ScoreAttributes(puzzle.Entity{}, target, Schema{{Name: "course", Kind: FieldText}})
	require.Len(t, marks, 1)
	assert.Equal(t, MarkMiss, marks[0].Mark)
}

// Parent-group lookup tolerates case/diacritic variants of the stored
// category values, like equality comparison does.
func TestScoreCategoryNormalizesParentLookup(t *testing.T) {
	schema := Schema{{Name: "cuisine", Kind: FieldCategory, Parents: map[string]string{
		"Italian": "European", "French": "European", "Thai": "Asian",
	}}}
	target := puzzle.Entity{"cuisine": {Text: "French"}}

	got := ScoreAttributes(puzzle.Entity{"cuisine": {Text: "italian"}}, target, schema)
	require.Len(t, got, 1)
	assert.Equal(t, MarkPresent, got[0].Mark)

	got = ScoreAttributes(puzzle.Entity{"cuisine": {Text: "thai"}}, target, schema)
	require.Len(t, got, 1)
	assert.Equal(t, MarkMiss, got[0].Mark)
}

func TestScoreSetSubsetIsNotHit(t *testing.T) {
	schema := Schema{{Name: "ingredients", Kind: FieldSet}}
	target := puzzle.Entity{"ingredients": {Set: []string{"rice", "fish", "nori"}}}
	guess := puzzle.Entity{"ingredients": {Set: []string{"rice", "fish"}}}

	marks := ScoreAttributes(guess, target, schema)
	require.Len(t, marks, 1)
	assert.Equal(t, MarkPresent, marks[0].Mark)
}
