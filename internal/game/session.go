// internal/game/session.go
//
// Game session state machine for a single player's daily puzzle.
// Responsibilities:
//   - Create sessions bound to a puzzle record and attempt budget (6).
//   - Validate and apply guesses (vocabulary, per-game length rule).
//   - Score guesses via the letter or attribute engine.
//   - Track state transitions: playing → won/lost.
//
// Invalid guesses never consume an attempt; a session is mutated only by
// appending attempts, and only through Submit.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/lexigames/guessle/internal/puzzle"
	"github.com/lexigames/guessle/internal/vocab"
)

// DefaultMaxAttempts is the attempt budget shared by all the daily games.
const DefaultMaxAttempts = 6

// State is the coarse session phase.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

var (
	// ErrSessionOver signals a guess submitted after the session is
	// terminal. The guess is ignored.
	ErrSessionOver = errors.New("game: session finished")
	// ErrNotInList signals a guess that does not resolve to any known
	// entity. No attempt is consumed.
	ErrNotInList = errors.New("game: guess not in word list")
	// ErrLengthMismatch signals a guess of the wrong length in games that
	// enforce equal-length comparison. No attempt is consumed.
	ErrLengthMismatch = errors.New("game: guess length mismatch")
)

// Attempt is one accepted guess and its feedback. Immutable once appended.
type Attempt struct {
	Raw        string     `json:"raw"`                 // what the player typed
	Guess      string     `json:"guess"`               // canonical resolved name
	Normalized string     `json:"normalized"`          // comparison form
	Marks      []Mark     `json:"marks,omitempty"`     // letter games
	AttrMarks  []AttrMark `json:"attrMarks,omitempty"` // attribute games
	Correct    bool       `json:"correct"`
}

// Config carries the per-game knobs a session needs.
type Config struct {
	Game        string // game id ("capitale", ...)
	Kind        Kind
	MaxAttempts int         // 0 → DefaultMaxAttempts
	ExactLength bool        // letter games: reject guesses whose length differs from the answer
	Schema      Schema      // attribute games
	Vocab       *vocab.Pool // guessable universe
}

// Session holds the evolving state of one puzzle attempt by one player.
type Session struct {
	ID          string         `json:"id"`
	PlayerID    string         `json:"playerId"`
	Game        string         `json:"game"`
	Date        string         `json:"date"` // YYYY-MM-DD local date key
	Kind        Kind           `json:"kind"`
	Puzzle      *puzzle.Record `json:"-"` // shared, never mutated
	MaxAttempts int            `json:"maxAttempts"`
	HardMode    bool           `json:"hardMode"`
	Attempts    []Attempt      `json:"attempts"`
	State       State          `json:"state"`
	Started     time.Time      `json:"started"`

	exactLength bool
	schema      Schema
	vocab       *vocab.Pool
	entities    EntityLookup
}

// New constructs a playing session for one puzzle record.
func New(cfg Config, rec *puzzle.Record, playerID, date string, hardMode bool) *Session {
	max := cfg.MaxAttempts
	if max <= 0 {
		max = DefaultMaxAttempts
	}
	return &Session{
		ID:          randomID(),
		PlayerID:    playerID,
		Game:        cfg.Game,
		Date:        date,
		Kind:        cfg.Kind,
		Puzzle:      rec,
		MaxAttempts: max,
		HardMode:    hardMode,
		Attempts:    []Attempt{},
		State:       StatePlaying,
		Started:     time.Now(),
		exactLength: cfg.ExactLength,
		schema:      cfg.Schema,
		vocab:       cfg.Vocab,
	}
}

// Terminal reports whether the session has reached won or lost.
func (s *Session) Terminal() bool { return s.State != StatePlaying }

// Reveal returns the current hint reveal percentage.
func (s *Session) Reveal() int {
	return RevealPercent(len(s.Attempts), s.MaxAttempts, s.Terminal())
}

// Hint returns the hint line unlocked by the attempts made so far.
// In hard mode hints are withheld here and must be requested explicitly
// by the caller via ForcedHint.
func (s *Session) Hint() (string, bool) {
	if s.HardMode {
		return "", false
	}
	return s.ForcedHint()
}

// ForcedHint returns the unlocked hint regardless of hard mode.
func (s *Session) ForcedHint() (string, bool) {
	return HintText(len(s.Attempts), s.Puzzle.Hints)
}

// Submit validates, scores, and records one guess, returning the new
// attempt. On error the session is unchanged and no attempt is consumed.
//
// Transitions:
//   - Correct guess           → State = won.
//   - Budget exhausted        → State = lost.
//   - Otherwise               → still playing.
func (s *Session) Submit(raw string) (*Attempt, error) {
	if s.Terminal() || len(s.Attempts) >= s.MaxAttempts {
		return nil, ErrSessionOver
	}
	entry, ok := s.vocab.Resolve(raw)
	if !ok {
		return nil, ErrNotInList
	}
	norm := vocab.Normalize(entry.Name)
	if s.Kind == KindLetters && s.exactLength &&
		len([]rune(norm)) != len([]rune(vocab.Normalize(s.Puzzle.Answer))) {
		return nil, ErrLengthMismatch
	}

	att := Attempt{
		Raw:        raw,
		Guess:      entry.Name,
		Normalized: norm,
		Correct:    s.matchesAnswer(norm),
	}
	switch s.Kind {
	case KindAttributes:
		guessed := s.lookupEntity(entry.Name)
		target := s.Puzzle.Target
		if target == nil {
			target = s.lookupEntity(s.Puzzle.Answer)
		}
		att.AttrMarks = ScoreAttributes(guessed, target, s.schema)
	default:
		att.Marks = ScoreLetters(entry.Name, s.Puzzle.Answer)
	}

	s.Attempts = append(s.Attempts, att)
	switch {
	case att.Correct:
		s.State = StateWon
	case len(s.Attempts) >= s.MaxAttempts:
		s.State = StateLost
	}
	return &att, nil
}

// matchesAnswer reports whether a normalized canonical guess names the
// puzzle's answer, directly or through one of its aliases.
func (s *Session) matchesAnswer(norm string) bool {
	if norm == vocab.Normalize(s.Puzzle.Answer) {
		return true
	}
	for _, a := range s.Puzzle.Aliases {
		if norm == vocab.Normalize(a) {
			return true
		}
	}
	return false
}

// EntityLookup resolves a canonical name to its attribute entity. Wired by
// the catalog for attribute games; nil for letter games.
type EntityLookup func(name string) puzzle.Entity

// SetEntityLookup installs the attribute lookup used to score guesses.
func (s *Session) SetEntityLookup(fn EntityLookup) { s.entities = fn }

func (s *Session) lookupEntity(name string) puzzle.Entity {
	if s.entities == nil {
		return nil
	}
	return s.entities(name)
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
