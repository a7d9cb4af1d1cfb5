// internal/game/letters.go
//
// Wordle-style letter scoring.
//
// ScoreLetters implements the standard two-pass algorithm:
//   Pass 1: mark exact positional matches as Hit and count the remaining
//           (non-hit) answer letters by rune.
//   Pass 2: for each non-hit guess letter, mark Present while unmatched
//           answer letters of that rune remain, otherwise Miss.
//
// The two passes guarantee that Hit+Present markings for any letter never
// exceed that letter's occurrence count in the answer, which a naive single
// pass gets wrong for repeated letters.
//
// Inputs are compared in normalized form (see vocab.Normalize), so scoring
// is case- and diacritic-insensitive. Guess and answer may differ in length:
// positional comparison runs over the shared prefix and the remaining guess
// letters fall through to the Present/Miss pass.

package game

import "github.com/lexigames/guessle/internal/vocab"

// ScoreLetters returns one mark per letter of the guess.
func ScoreLetters(guess, answer string) []Mark {
	guessRunes := []rune(vocab.Normalize(guess))
	answerRunes := []rune(vocab.Normalize(answer))

	res := make([]Mark, len(guessRunes))
	counts := make(map[rune]int, len(answerRunes))

	// First pass: hits on the overlapping positions, then count every
	// answer letter not consumed by a hit.
	for i, r := range answerRunes {
		if i < len(guessRunes) && guessRunes[i] == r {
			res[i] = MarkHit
		} else {
			counts[r]++
		}
	}

	// Second pass: resolve presents/misses for the remaining tiles.
	for i, r := range guessRunes {
		if res[i] == MarkHit {
			continue
		}
		if counts[r] > 0 {
			res[i] = MarkPresent
			counts[r]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}
