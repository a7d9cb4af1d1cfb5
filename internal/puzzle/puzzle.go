// internal/puzzle/puzzle.go
//
// Core type definitions for daily puzzle records.
// Defines:
//   - Value:  one typed attribute value of an entity (text/number/set).
//   - Entity: named attribute values for attribute-based games.
//   - Record: one day's secret answer plus its supporting metadata.

package puzzle

// Value holds a single attribute value. Exactly one of the fields is
// meaningful for a given attribute; which one is decided by the game's
// attribute schema.
type Value struct {
	Text   string   `json:"text,omitempty"`
	Number float64  `json:"number,omitempty"`
	Set    []string `json:"set,omitempty"`
}

// Entity maps attribute names to values for attribute-based games
// (e.g. a dish's cuisine, course, main ingredients).
type Entity map[string]Value

// Record is one candidate daily answer. It is built once from the game's
// static pool and never mutated during play.
type Record struct {
	ID      string            `json:"id"`
	Answer  string            `json:"answer"`            // canonical display string
	Target  Entity            `json:"target,omitempty"`  // attribute games only
	Aliases []string          `json:"aliases,omitempty"` // acceptable alternate spellings
	Hints   []string          `json:"hints,omitempty"`   // ordered, revealed one per wrong guess
	Aux     map[string]string `json:"aux,omitempty"`     // passthrough metadata (country, category, ...)
}
