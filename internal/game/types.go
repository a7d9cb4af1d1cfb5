// internal/game/types.go
//
// Core type definitions for the guess-feedback engine.
// Defines:
//   - Mark: per-unit (letter or attribute) result of a guess.
//   - Direction: high/low hint for ordinal attribute comparisons.
//   - Kind: whether a game scores letters or attributes.
//   - AttrMark: one attribute's mark plus its direction hint.

package game

// Mark represents the evaluation result for a single letter or attribute.
// Possible values:
//   - "hit":     correct and in the correct position / exact attribute match.
//   - "present": in the answer elsewhere / close attribute match.
//   - "miss":    not in the answer at all / unrelated attribute value.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Direction hints which way a guessed ordinal value missed.
type Direction string

const (
	DirNone   Direction = ""
	DirHigher Direction = "higher" // answer is higher than the guess
	DirLower  Direction = "lower"  // answer is lower than the guess
)

// Kind selects the feedback engine a game uses.
type Kind string

const (
	KindLetters    Kind = "letters"
	KindAttributes Kind = "attributes"
)

// AttrMark is the scored result for one attribute of a guessed entity.
type AttrMark struct {
	Field     string    `json:"field"`
	Mark      Mark      `json:"mark"`
	Direction Direction `json:"direction,omitempty"`
}

// AllHit reports true if every mark is MarkHit.
func AllHit(marks []Mark) bool {
	for _, m := range marks {
		if m != MarkHit {
			return false
		}
	}
	return len(marks) > 0
}
