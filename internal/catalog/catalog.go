// internal/catalog/catalog.go
//
// Game catalog: loads and indexes the daily games the server hosts.
//
// Responsibilities:
//   - Load per-game JSON data from a configured directory or fall back to
//     the embedded defaults.
//   - Validate each game on load (answers resolvable, schemas present).
//   - Hand out session configs and daily puzzle records to the HTTP layer.
//
// Initialization behavior (Init):
//   1. If GUESSLE_DATA_DIR is set, load every *.json file in it
//      (lexical order).
//   2. Otherwise load the embedded defaults from the assets package.
//
// Initialization runs once (sync.Once); games are immutable afterwards.

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lexigames/guessle/assets"
	"github.com/lexigames/guessle/internal/game"
	"github.com/lexigames/guessle/internal/puzzle"
	"github.com/lexigames/guessle/internal/vocab"
)

// Game is one configured daily game with its pool and vocabulary.
type Game struct {
	ID          string
	Name        string
	Kind        game.Kind
	ShareURL    string
	MaxAttempts int
	ExactLength bool
	Schema      game.Schema
	Pool        []puzzle.Record
	Vocab       *vocab.Pool

	entities map[string]puzzle.Entity // normalized name → attributes
}

var (
	initOnce   sync.Once
	games      map[string]*Game
	gameOrder  []string
	initialErr error
)

// Init loads the catalog exactly once.
func Init() error {
	initOnce.Do(func() {
		games = make(map[string]*Game)

		var payloads [][]byte
		if dir := os.Getenv("GUESSLE_DATA_DIR"); dir != "" {
			entries, err := os.ReadDir(dir)
			if err != nil {
				initialErr = fmt.Errorf("catalog: read data dir: %w", err)
				return
			}
			var names []string
			for _, e := range entries {
				if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".json") {
					names = append(names, e.Name())
				}
			}
			sort.Strings(names)
			for _, n := range names {
				b, err := os.ReadFile(filepath.Join(dir, n))
				if err != nil {
					initialErr = fmt.Errorf("catalog: read %s: %w", n, err)
					return
				}
				payloads = append(payloads, b)
			}
		} else {
			for _, n := range assets.GameFiles() {
				b, err := assets.ReadGame(n)
				if err != nil {
					initialErr = fmt.Errorf("catalog: embedded %s: %w", n, err)
					return
				}
				payloads = append(payloads, b)
			}
		}

		for _, b := range payloads {
			g, err := parseGame(b)
			if err != nil {
				initialErr = err
				return
			}
			games[g.ID] = g
			gameOrder = append(gameOrder, g.ID)
		}
		if len(games) == 0 {
			initialErr = fmt.Errorf("catalog: no games loaded")
		}
	})
	return initialErr
}

// Get returns one game by id.
func Get(id string) (*Game, bool) {
	g, ok := games[id]
	return g, ok
}

// List returns all games in load order.
func List() []*Game {
	out := make([]*Game, 0, len(gameOrder))
	for _, id := range gameOrder {
		out = append(out, games[id])
	}
	return out
}

// gameFile is the on-disk JSON shape of one game.
type gameFile struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Kind        game.Kind       `json:"kind"`
	ShareURL    string          `json:"shareUrl"`
	MaxAttempts int             `json:"maxAttempts"`
	ExactLength bool            `json:"exactLength"`
	Schema      game.Schema     `json:"schema"`
	Entities    []entityDef     `json:"entities"`
	Records     []puzzle.Record `json:"records"`
	Vocab       []vocab.Entry   `json:"vocab"`
}

type entityDef struct {
	Name    string        `json:"name"`
	Aliases []string      `json:"aliases,omitempty"`
	Attrs   puzzle.Entity `json:"attrs"`
}

// parseGame decodes and validates one game definition.
func parseGame(data []byte) (*Game, error) {
	var gf gameFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("catalog: bad game json: %w", err)
	}
	if gf.ID == "" || gf.Name == "" {
		return nil, fmt.Errorf("catalog: game missing id or name")
	}
	if len(gf.Records) == 0 {
		return nil, fmt.Errorf("catalog: game %q has no records", gf.ID)
	}

	g := &Game{
		ID:          gf.ID,
		Name:        gf.Name,
		Kind:        gf.Kind,
		ShareURL:    gf.ShareURL,
		MaxAttempts: gf.MaxAttempts,
		ExactLength: gf.ExactLength,
		Schema:      gf.Schema,
		Pool:        gf.Records,
	}
	if g.Kind == "" {
		g.Kind = game.KindLetters
	}
	if g.MaxAttempts <= 0 {
		g.MaxAttempts = game.DefaultMaxAttempts
	}

	entries := gf.Vocab
	if g.Kind == game.KindAttributes {
		if len(gf.Schema) == 0 {
			return nil, fmt.Errorf("catalog: game %q: attribute game without schema", gf.ID)
		}
		if len(gf.Entities) == 0 {
			return nil, fmt.Errorf("catalog: game %q: attribute game without entities", gf.ID)
		}
		g.entities = make(map[string]puzzle.Entity, len(gf.Entities))
		if len(entries) == 0 {
			// Vocabulary defaults to the entity list in file order.
			for _, e := range gf.Entities {
				entries = append(entries, vocab.Entry{Name: e.Name, Aliases: e.Aliases})
			}
		}
		for _, e := range gf.Entities {
			g.entities[vocab.Normalize(e.Name)] = e.Attrs
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("catalog: game %q has no vocabulary", gf.ID)
	}
	g.Vocab = vocab.NewPool(entries)

	// Every answer must be a guessable entity. Attribute records score
	// against their answer's entity, so wire it in as the target.
	for i := range g.Pool {
		r := &g.Pool[i]
		if !g.Vocab.IsValid(r.Answer) {
			return nil, fmt.Errorf("catalog: game %q: answer %q not in vocabulary", gf.ID, r.Answer)
		}
		if g.Kind == game.KindAttributes {
			target := g.Entity(r.Answer)
			if target == nil {
				return nil, fmt.Errorf("catalog: game %q: answer %q has no entity", gf.ID, r.Answer)
			}
			if r.Target == nil {
				r.Target = target
			}
		}
	}
	return g, nil
}

// Entity returns the attribute set for a canonical name, or nil.
func (g *Game) Entity(name string) puzzle.Entity {
	return g.entities[vocab.Normalize(name)]
}

// Today returns the puzzle record and 1-based puzzle number for date.
func (g *Game) Today(date time.Time) (*puzzle.Record, int, error) {
	rec, err := puzzle.SelectDaily(g.Pool, date)
	if err != nil {
		return nil, 0, err
	}
	n, err := puzzle.Number(date)
	if err != nil {
		return nil, 0, err
	}
	return rec, n, nil
}

// NewSession builds a playing session on today's puzzle for one player.
func (g *Game) NewSession(date time.Time, playerID string, hardMode bool) (*game.Session, error) {
	rec, _, err := g.Today(date)
	if err != nil {
		return nil, err
	}
	s := game.New(game.Config{
		Game:        g.ID,
		Kind:        g.Kind,
		MaxAttempts: g.MaxAttempts,
		ExactLength: g.ExactLength,
		Schema:      g.Schema,
		Vocab:       g.Vocab,
	}, rec, playerID, puzzle.DateKey(date), hardMode)
	if g.Kind == game.KindAttributes {
		s.SetEntityLookup(g.Entity)
	}
	return s, nil
}
