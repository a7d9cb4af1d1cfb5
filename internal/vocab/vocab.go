// internal/vocab/vocab.go
//
// Controlled-vocabulary validation for free-text guesses.
//
// Responsibilities:
//   - Normalize user input (case, whitespace, diacritics) for comparison.
//   - Resolve a guess to a known entry by canonical name or alias.
//   - Provide substring-based suggestions for autocomplete.
//
// Normalization uses gosimple/unidecode so "São Tomé" and "sao tome"
// resolve identically. Pools are read-only after construction.

package vocab

import (
	"strings"

	"github.com/gosimple/unidecode"
)

// Suggestion defaults. Queries shorter than minQueryLen match too broadly
// to be useful.
const (
	defaultSuggestLimit = 8
	minQueryLen         = 2
)

// Entry is one known entity in the guessable universe.
type Entry struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

// Pool is an immutable set of entries with a normalized lookup index.
type Pool struct {
	entries []Entry
	index   map[string]int // normalized name/alias → entries index
}

// Normalize folds a guess into its comparison form: diacritics stripped,
// lowercased, trimmed, internal whitespace collapsed. Normalize is
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = unidecode.Unidecode(s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

// NewPool builds a pool and its lookup index. Later entries never shadow
// earlier ones when names collide after normalization.
func NewPool(entries []Entry) *Pool {
	p := &Pool{entries: entries, index: make(map[string]int, len(entries)*2)}
	for i, e := range entries {
		key := Normalize(e.Name)
		if _, ok := p.index[key]; !ok {
			p.index[key] = i
		}
		for _, a := range e.Aliases {
			key := Normalize(a)
			if _, ok := p.index[key]; !ok {
				p.index[key] = i
			}
		}
	}
	return p
}

// Len reports the number of entries in the pool.
func (p *Pool) Len() int { return len(p.entries) }

// Entries returns the backing slice in pool order. Callers must not mutate.
func (p *Pool) Entries() []Entry { return p.entries }

// Resolve maps a raw guess to its canonical entry, matching canonical names
// and aliases case/diacritic-insensitively.
func (p *Pool) Resolve(guess string) (Entry, bool) {
	i, ok := p.index[Normalize(guess)]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

// IsValid reports whether guess resolves to any known entry.
func (p *Pool) IsValid(guess string) bool {
	_, ok := p.Resolve(guess)
	return ok
}

// Suggest returns up to limit entries whose canonical name contains the
// query as a substring, in pool order. Queries shorter than two characters
// return nil. A limit <= 0 falls back to the default of 8.
func (p *Pool) Suggest(query string, limit int) []Entry {
	q := Normalize(query)
	if len(q) < minQueryLen {
		return nil
	}
	if limit <= 0 {
		limit = defaultSuggestLimit
	}
	var out []Entry
	for _, e := range p.entries {
		if strings.Contains(Normalize(e.Name), q) {
			out = append(out, e)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}
