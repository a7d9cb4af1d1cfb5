// internal/game/attrs.go
//
// Attribute scoring for entity-guessing games (Foodle, Creaturedle, ...).
//
// Each game declares an ordered schema of typed fields. Scoring generalizes
// the three-state letter model:
//   - text:     exact (normalized) match → hit, otherwise miss.
//   - number:   equal → hit; within the field's tolerance → present with a
//               higher/lower direction hint; otherwise miss, still hinted.
//   - category: same value → hit; different values sharing a parent
//               category → present; otherwise miss.
//   - set:      equal as sets → hit; any overlap → present; disjoint → miss.

package game

import (
	"math"

	"github.com/lexigames/guessle/internal/puzzle"
	"github.com/lexigames/guessle/internal/vocab"
)

// FieldKind is the comparison rule for one schema field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldCategory FieldKind = "category"
	FieldSet      FieldKind = "set"
)

// Field describes one attribute of a game's entities.
type Field struct {
	Name      string            `json:"name"`
	Kind      FieldKind         `json:"kind"`
	Tolerance float64           `json:"tolerance,omitempty"` // number fields: |guess-answer| <= Tolerance → present
	Parents   map[string]string `json:"parents,omitempty"`   // category fields: value → parent group
}

// Schema is the ordered field list shared by all entities of a game.
type Schema []Field

// ScoreAttributes compares a guessed entity against the target, field by
// field in schema order. Marks for missing values are miss.
func ScoreAttributes(guess, target puzzle.Entity, schema Schema) []AttrMark {
	out := make([]AttrMark, 0, len(schema))
	for _, f := range schema {
		gv, gok := guess[f.Name]
		tv, tok := target[f.Name]
		am := AttrMark{Field: f.Name, Mark: MarkMiss}
		if gok && tok {
			switch f.Kind {
			case FieldNumber:
				am.Mark, am.Direction = scoreNumber(gv.Number, tv.Number, f.Tolerance)
			case FieldCategory:
				am.Mark = scoreCategory(gv.Text, tv.Text, f.Parents)
			case FieldSet:
				am.Mark = scoreSet(gv.Set, tv.Set)
			default: // FieldText
				if vocab.Normalize(gv.Text) == vocab.Normalize(tv.Text) {
					am.Mark = MarkHit
				}
			}
		}
		out = append(out, am)
	}
	return out
}

// scoreNumber compares ordinal values. The direction always points from the
// guess toward the answer so the player can narrow in.
func scoreNumber(guess, answer, tolerance float64) (Mark, Direction) {
	switch {
	case guess == answer:
		return MarkHit, DirNone
	case answer > guess:
		if math.Abs(guess-answer) <= tolerance {
			return MarkPresent, DirHigher
		}
		return MarkMiss, DirHigher
	default:
		if math.Abs(guess-answer) <= tolerance {
			return MarkPresent, DirLower
		}
		return MarkMiss, DirLower
	}
}

// scoreCategory compares categorical values, crediting a shared parent
// group as a near miss.
func scoreCategory(guess, answer string, parents map[string]string) Mark {
	g, a := vocab.Normalize(guess), vocab.Normalize(answer)
	if g == a {
		return MarkHit
	}
	gp, gok := parentOf(parents, g)
	ap, aok := parentOf(parents, a)
	if gok && aok && gp == ap {
		return MarkPresent
	}
	return MarkMiss
}

// parentOf finds the parent group for a normalized category value. Map keys
// are display strings, so they are normalized before comparison.
func parentOf(parents map[string]string, norm string) (string, bool) {
	for k, p := range parents {
		if vocab.Normalize(k) == norm {
			return p, true
		}
	}
	return "", false
}

// scoreSet compares unordered value sets by normalized membership.
func scoreSet(guess, answer []string) Mark {
	gs := make(map[string]struct{}, len(guess))
	for _, v := range guess {
		gs[vocab.Normalize(v)] = struct{}{}
	}
	overlap := 0
	for _, v := range answer {
		if _, ok := gs[vocab.Normalize(v)]; ok {
			overlap++
		}
	}
	switch {
	case overlap == len(answer) && len(gs) == len(answer):
		return MarkHit
	case overlap > 0:
		return MarkPresent
	default:
		return MarkMiss
	}
}
