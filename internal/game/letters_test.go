package game

import (
	"strings"
	"testing"

	"github.com/lexigames/guessle/internal/vocab"
	"github.com/stretchr/testify/assert"
)

func TestScoreLetters(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		answer string
		want   []Mark
	}{
		{
			name:   "all hits on exact match",
			guess:  "paris",
			answer: "Paris",
			want:   []Mark{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit},
		},
		{
			name:   "repeated letters respect answer counts",
			guess:  "LEASE",
			answer: "ALLEE",
			want:   []Mark{MarkPresent, MarkPresent, MarkPresent, MarkMiss, MarkHit},
		},
		{
			name:   "present never exceeds occurrences",
			guess:  "LLAMA",
			answer: "ALLEE",
			// L hits at pos 1; remaining answer letters A,L,E,E: first L
			// present, first A present, M miss, second A miss (one A only).
			want: []Mark{MarkPresent, MarkHit, MarkPresent, MarkMiss, MarkMiss},
		},
		{
			name:   "no shared letters",
			guess:  "crwth",
			answer: "lemon",
			want:   []Mark{MarkMiss, MarkMiss, MarkMiss, MarkMiss, MarkMiss},
		},
		{
			name:   "diacritics fold before comparison",
			guess:  "bogota",
			answer: "Bogotá",
			want:   []Mark{MarkHit, MarkHit, MarkHit, MarkHit, MarkHit, MarkHit},
		},
		{
			name:   "longer guess than answer",
			guess:  "london",
			answer: "paris",
			// No positional matches; no shared letters either.
			want: []Mark{MarkMiss, MarkMiss, MarkMiss, MarkMiss, MarkMiss, MarkMiss},
		},
		{
			name:   "longer guess with shared letters",
			guess:  "lisbon",
			answer: "paris",
			// i hits nothing positionally; s present, i present... paris: p,a,r,i,s
			want: []Mark{MarkMiss, MarkPresent, MarkPresent, MarkMiss, MarkMiss, MarkMiss},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreLetters(tt.guess, tt.answer))
		})
	}
}

// Hit+Present markings for any letter never exceed that letter's
// occurrence count in the answer.
func TestScoreLettersConservation(t *testing.T) {
	pairs := [][2]string{
		{"LEASE", "ALLEE"},
		{"eerie", "melee"},
		{"mamma", "madam"},
		{"london", "paris"},
		{"aaaaa", "abaca"},
	}
	for _, p := range pairs {
		guess, answer := p[0], p[1]
		marks := ScoreLetters(guess, answer)

		counted := map[rune]int{}
		for i, r := range []rune(vocab.Normalize(guess)) {
			if marks[i] == MarkHit || marks[i] == MarkPresent {
				counted[r]++
			}
		}
		for r, n := range counted {
			occ := strings.Count(vocab.Normalize(answer), string(r))
			assert.LessOrEqual(t, n, occ, "%q vs %q: letter %q", guess, answer, string(r))
		}
	}
}

// For equal-length inputs, all-hit holds exactly when the normalized
// strings are equal.
func TestScoreLettersAllHitIffEqual(t *testing.T) {
	words := []string{"paris", "parts", "sirap", "Páris"}
	for _, g := range words {
		for _, a := range words {
			marks := ScoreLetters(g, a)
			same := vocab.Normalize(g) == vocab.Normalize(a)
			assert.Equal(t, same, AllHit(marks), "guess %q answer %q", g, a)
		}
	}
}
