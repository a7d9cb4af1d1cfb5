// internal/httpserver/routes_games.go
//
// HTTP routes for the daily games.
// Exposes, under /games:
//   - GET  /games                        → catalog listing
//   - POST /games/{game}/session        → start or resume today's session
//   - POST /games/{game}/guess          → submit a guess
//   - GET  /games/{game}/suggest?q=     → vocabulary suggestions
//   - GET  /games/{game}/share          → share text (terminal sessions)
//   - GET  /games/{game}/leaderboard    → top results for a date
//   - GET  /games/{game}/distribution   → win distribution for a date
//
// Each player gets one session per game per local day. Sessions are held in
// memory for active play; a result row is persisted when a session reaches
// a terminal state.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/lexigames/guessle/internal/catalog"
	"github.com/lexigames/guessle/internal/game"
	"github.com/lexigames/guessle/internal/puzzle"
	"github.com/lexigames/guessle/internal/results"
	"github.com/lexigames/guessle/internal/store"
)

// mountGames registers all /games routes.
func (s *Server) mountGames(r chi.Router) {
	r.Route("/games", func(r chi.Router) {
		r.Get("/", s.handleListGames)
		r.Route("/{game}", func(r chi.Router) {
			r.Post("/session", s.handleSession)
			r.Post("/guess", s.handleGameGuess)
			r.Get("/suggest", s.handleSuggest)
			r.Get("/share", s.handleShare)
			r.Get("/leaderboard", s.handleLeaderboard)
			r.Get("/distribution", s.handleDistribution)
		})
	})
}

// gameFromURL resolves the {game} path parameter against the catalog.
func gameFromURL(w http.ResponseWriter, r *http.Request) (*catalog.Game, bool) {
	g, ok := catalog.Get(chi.URLParam(r, "game"))
	if !ok {
		http.Error(w, `{"error":"unknown_game"}`, http.StatusNotFound)
		return nil, false
	}
	return g, true
}

// handleListGames returns the catalog in load order.
func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	type gameInfo struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Kind        game.Kind `json:"kind"`
		MaxAttempts int       `json:"maxAttempts"`
	}
	out := []gameInfo{}
	for _, g := range catalog.List() {
		out = append(out, gameInfo{ID: g.ID, Name: g.Name, Kind: g.Kind, MaxAttempts: g.MaxAttempts})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// -----------------------------------------------------------------------------
// POST /games/{game}/session

type sessionReq struct {
	HardMode bool `json:"hardMode"`
}

type sessionRes struct {
	SessionID   string            `json:"sessionId,omitempty"`
	Date        string            `json:"date"`
	Number      int               `json:"number"`
	MaxAttempts int               `json:"maxAttempts"`
	State       game.State        `json:"state,omitempty"`
	Attempts    []game.Attempt    `json:"attempts,omitempty"`
	Reveal      int               `json:"reveal"`
	Hint        string            `json:"hint,omitempty"`
	Aux         map[string]string `json:"aux,omitempty"`
	Played      bool              `json:"played"`
}

// handleSession creates or resumes today's session for the current player.
// If the player already has a persisted result for today → Played=true.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	g, ok := gameFromURL(w, r)
	if !ok {
		return
	}
	var req sessionReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	pid := s.playerID(w, r)
	now := s.now()
	date := puzzle.DateKey(now)
	number, err := puzzle.Number(now)
	if err != nil {
		http.Error(w, `{"error":"puzzle_unavailable"}`, http.StatusInternalServerError)
		return
	}

	if played, err := s.results.AlreadyPlayed(r.Context(), g.ID, pid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(sessionRes{Date: date, Number: number, MaxAttempts: g.MaxAttempts, Played: true, Reveal: 100})
		return
	}

	key := store.Key(pid, g.ID, date)
	sess, err := s.sessions.Get(r.Context(), key)
	if err != nil {
		sess, err = g.NewSession(now, pid, req.HardMode)
		if err != nil {
			log.Error().Err(err).Str("game", g.ID).Msg("create session")
			http.Error(w, `{"error":"puzzle_unavailable"}`, http.StatusInternalServerError)
			return
		}
		if err := s.sessions.Save(r.Context(), key, sess); err != nil {
			http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
			return
		}
	}

	res := sessionRes{
		SessionID:   sess.ID,
		Date:        date,
		Number:      number,
		MaxAttempts: sess.MaxAttempts,
		State:       sess.State,
		Attempts:    sess.Attempts,
		Reveal:      sess.Reveal(),
		Aux:         sess.Puzzle.Aux,
	}
	if h, ok := sess.Hint(); ok {
		res.Hint = h
	}
	_ = json.NewEncoder(w).Encode(res)
}

// -----------------------------------------------------------------------------
// POST /games/{game}/guess

type gameGuessReq struct {
	SessionID string `json:"sessionId"`
	Guess     string `json:"guess"`
}

type gameGuessRes struct {
	Guess     string          `json:"guess"`
	Marks     []game.Mark     `json:"marks,omitempty"`
	AttrMarks []game.AttrMark `json:"attrMarks,omitempty"`
	Correct   bool            `json:"correct"`
	State     game.State      `json:"state"`
	Attempts  int             `json:"attempts"`
	Reveal    int             `json:"reveal"`
	Hint      string          `json:"hint,omitempty"`
}

// handleGameGuess validates and applies a guess for today's session.
// Invalid guesses (not in vocabulary) return 422 and consume no attempt;
// guesses after a terminal state return 409.
func (s *Server) handleGameGuess(w http.ResponseWriter, r *http.Request) {
	g, ok := gameFromURL(w, r)
	if !ok {
		return
	}
	var req gameGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if req.SessionID == "" || req.Guess == "" {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}

	pid := s.playerID(w, r)
	date := puzzle.DateKey(s.now())
	key := store.Key(pid, g.ID, date)
	sess, err := s.sessions.Get(r.Context(), key)
	if err != nil || sess.ID != req.SessionID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	att, err := sess.Submit(req.Guess)
	switch {
	case errors.Is(err, game.ErrSessionOver):
		http.Error(w, `{"error":"session_finished"}`, http.StatusConflict)
		return
	case errors.Is(err, game.ErrNotInList):
		http.Error(w, `{"error":"not_in_list"}`, http.StatusUnprocessableEntity)
		return
	case errors.Is(err, game.ErrLengthMismatch):
		http.Error(w, `{"error":"length_mismatch"}`, http.StatusUnprocessableEntity)
		return
	case err != nil:
		http.Error(w, `{"error":"guess_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.sessions.Save(r.Context(), key, sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	// Persist outcome on terminal state (best effort, non-fatal if it fails).
	if sess.Terminal() {
		res := results.Result{
			Game:     g.ID,
			Date:     date,
			PlayerID: pid,
			Won:      sess.State == game.StateWon,
			Attempts: len(sess.Attempts),
		}
		if err := s.results.Record(r.Context(), res); err != nil {
			log.Warn().Err(err).Str("game", g.ID).Msg("record result")
		}
		if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
			if err := s.bumpStats(me.ID, res.Won); err != nil {
				log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
			}
		}
	}

	out := gameGuessRes{
		Guess:     att.Guess,
		Marks:     att.Marks,
		AttrMarks: att.AttrMarks,
		Correct:   att.Correct,
		State:     sess.State,
		Attempts:  len(sess.Attempts),
		Reveal:    sess.Reveal(),
	}
	if h, ok := sess.Hint(); ok {
		out.Hint = h
	}
	_ = json.NewEncoder(w).Encode(out)
}

// -----------------------------------------------------------------------------
// GET /games/{game}/suggest?q=&limit=

// handleSuggest returns autocomplete candidates for a partial guess.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	g, ok := gameFromURL(w, r)
	if !ok {
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}
	matches := g.Vocab.Suggest(r.URL.Query().Get("q"), limit)
	names := []string{}
	for _, e := range matches {
		names = append(names, e.Name)
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"suggestions": names})
}

// -----------------------------------------------------------------------------
// GET /games/{game}/share

// handleShare renders the share text for a finished session.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	g, ok := gameFromURL(w, r)
	if !ok {
		return
	}
	pid := s.playerID(w, r)
	now := s.now()
	key := store.Key(pid, g.ID, puzzle.DateKey(now))
	sess, err := s.sessions.Get(r.Context(), key)
	if err != nil {
		http.Error(w, `{"error":"no_session"}`, http.StatusNotFound)
		return
	}
	if !sess.Terminal() {
		http.Error(w, `{"error":"not_finished"}`, http.StatusConflict)
		return
	}
	number, err := puzzle.Number(now)
	if err != nil {
		http.Error(w, `{"error":"puzzle_unavailable"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{
		"text": game.ShareText(g.Name, number, sess, g.ShareURL),
	})
}

// -----------------------------------------------------------------------------
// GET /games/{game}/leaderboard?date=

// handleLeaderboard returns the top 20 results for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	g, ok := gameFromURL(w, r)
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = puzzle.DateKey(s.now())
	}
	rows, err := s.results.Leaderboard(r.Context(), g.ID, date, 20)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"date": date, "top": rows})
}

// handleDistribution returns the win distribution for the given date.
func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	g, ok := gameFromURL(w, r)
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = puzzle.DateKey(s.now())
	}
	dist, err := s.results.Distribution(r.Context(), g.ID, date)
	if err != nil {
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"date": date, "wins": dist.Wins, "losses": dist.Losses})
}
