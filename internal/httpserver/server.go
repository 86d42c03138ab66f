// apps/go-term/internal/httpserver/server.go
//
// HTTP host for the round engine (`cordl serve`).
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     JSON content type, request logging).
//   - Public endpoints: "/", "/health", "/stats".
//   - Round endpoints: POST /game/new, POST /game/guess, POST /game/abandon.
//   - Daily endpoint: POST /daily/new (see routes_daily.go).
//
// Notes:
//   - Rounds live in an in-memory store; a restart forgets them, and a
//     round is dropped as soon as it is won, lost or abandoned.
//   - Guess and abandon require the round token issued by /game/new.
//   - A single mutex serialises round mutation; rounds are not safe for
//     concurrent use.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/stats"
	"github.com/robalobadob/wordle/apps/go-term/internal/store"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// Deps bundles what the server needs.
type Deps struct {
	Store     store.Store
	Dict      *words.Dictionary
	Stats     *stats.Store // optional
	Rand      words.Rand
	Tokens    *Tokens
	DailySalt string
	Timeout   time.Duration
	Now       func() time.Time
}

// Server bundles router, round store and statistics.
type Server struct {
	r    *chi.Mux
	deps Deps

	mu sync.Mutex // serialises round mutation and Rand
}

// New constructs a Server, installs middleware, and registers routes.
func New(deps Deps) *Server {
	if deps.Timeout <= 0 {
		deps.Timeout = 10 * time.Second
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	s := &Server{r: chi.NewRouter(), deps: deps}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)               // zerolog access log
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(deps.Timeout)) // bound handler time
	s.r.Use(jsonContentType)             // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "cordl",
			"endpoints": []string{"/health", "/stats", "POST /game/new", "POST /game/guess", "POST /game/abandon", "POST /daily/new"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "words": deps.Dict.Len()})
	})
	s.r.Get("/stats", s.handleStats)

	// --- rounds ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Group(func(r chi.Router) {
		r.Use(deps.Tokens.requireRoundToken)
		r.Post("/game/guess", s.handleGuess)
		r.Post("/game/abandon", s.handleAbandon)
	})

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router (useful for tests and http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Hard   bool   `json:"hard"`
	Answer string `json:"answer"` // optional fixed answer; must be in the dictionary
}
type newGameRes struct {
	GameID string `json:"gameId"`
	Token  string `json:"token"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	Hard   bool   `json:"hard"`
	Date   string `json:"date,omitempty"`
}

// handleNewGame starts a round with a random or requested answer.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if !decode(w, r, &req, true) {
		return
	}

	var target game.Word
	if req.Answer != "" {
		t, err := game.ParseWord(req.Answer)
		if err != nil || !s.deps.Dict.IsValid(t.String()) {
			writeError(w, http.StatusBadRequest, "invalid_answer", "answer must be a dictionary word")
			return
		}
		target = t
	} else {
		s.mu.Lock()
		target = s.deps.Dict.Pick(s.deps.Rand)
		s.mu.Unlock()
	}

	s.startRound(w, r, target, req.Hard, "")
}

// startRound registers a fresh round and replies with its token.
func (s *Server) startRound(w http.ResponseWriter, r *http.Request, target game.Word, hard bool, date string) {
	id := uuid.NewString()
	cfg := game.Config{ID: id, Hard: hard, Dict: s.deps.Dict}
	if s.deps.Stats != nil {
		cfg.Recorder = s.deps.Stats
	}
	round := game.NewRound(target, cfg)

	if err := s.deps.Store.Save(r.Context(), round); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed", "could not store round")
		return
	}
	token, err := s.deps.Tokens.Sign(id)
	if err != nil {
		log.Error().Err(err).Msg("sign round token")
		writeError(w, http.StatusInternalServerError, "token_failed", "could not sign token")
		return
	}

	log.Debug().Str("gameId", id).Bool("hard", hard).Msg("round started")
	writeJSON(w, http.StatusOK, newGameRes{
		GameID: id,
		Token:  token,
		Rows:   game.RowCount,
		Cols:   game.WordLen,
		Hard:   hard,
		Date:   date,
	})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Marks    []game.Classification          `json:"marks"`
	State    string                         `json:"state"` // "playing" | "won" | "lost" | "abandoned"
	Row      int                            `json:"row"`   // guesses used so far
	Keyboard map[string]game.Classification `json:"keyboard"`
	Answer   string                         `json:"answer,omitempty"`
}

// handleGuess submits a whole word to the token's round.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if !decode(w, r, &req, false) {
		return
	}
	round, ok := s.tokenRound(w, r, req.GameID)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := round.Guess(req.Guess); err != nil {
		if errors.Is(err, game.ErrRoundOver) {
			writeError(w, http.StatusConflict, "round_over", err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, errorCode(err), err.Error())
		return
	}
	res := snapshot(round)
	s.forgetFinished(r.Context(), round)
	writeJSON(w, http.StatusOK, res)
}

type abandonReq struct {
	GameID string `json:"gameId"`
}

// handleAbandon gives up on a round and reveals its answer.
func (s *Server) handleAbandon(w http.ResponseWriter, r *http.Request) {
	var req abandonReq
	if !decode(w, r, &req, false) {
		return
	}
	round, ok := s.tokenRound(w, r, req.GameID)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := round.Handle(game.Cancel); err != nil {
		writeError(w, http.StatusConflict, "round_over", err.Error())
		return
	}
	res := snapshot(round)
	s.forgetFinished(r.Context(), round)
	writeJSON(w, http.StatusOK, res)
}

// forgetFinished drops a round from the store once it can take no more
// input. Callers hold s.mu.
func (s *Server) forgetFinished(ctx context.Context, round *game.Round) {
	if !round.Phase().Terminal() {
		return
	}
	if err := s.deps.Store.Delete(ctx, round.ID()); err != nil {
		log.Warn().Err(err).Str("gameId", round.ID()).Msg("delete finished round")
		return
	}
	log.Debug().Str("gameId", round.ID()).Str("state", round.Phase().String()).Msg("round finished")
}

// tokenRound loads the round named by the request, which must match the token.
func (s *Server) tokenRound(w http.ResponseWriter, r *http.Request, gameID string) (*game.Round, bool) {
	if gameID == "" || gameID != tokenRound(r.Context()) {
		writeError(w, http.StatusForbidden, "forbidden", "token does not match gameId")
		return nil, false
	}
	round, err := s.deps.Store.Get(r.Context(), gameID)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "unknown gameId")
		return nil, false
	}
	return round, true
}

// snapshot renders a round's latest row and keyboard.
func snapshot(round *game.Round) guessRes {
	kb := round.Keyboard()
	res := guessRes{
		Marks:    []game.Classification{},
		State:    round.Phase().String(),
		Keyboard: kb.Map(),
	}
	hist := round.History()
	res.Row = len(hist)
	if n := len(hist); n > 0 {
		m := hist[n-1].Marks
		res.Marks = m[:]
	}
	if round.Phase().Terminal() {
		res.Answer = round.Target().String()
	}
	return res
}

// errorCode maps round rejections onto stable API codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrHardMode):
		return "hard_mode"
	case errors.Is(err, game.ErrNotAWord):
		return "not_a_word"
	case errors.Is(err, game.ErrIncomplete):
		return "too_short"
	case errors.Is(err, game.ErrTooLong):
		return "too_long"
	default:
		return "invalid_guess"
	}
}

// ------------------------------ STATS --------------------------------------

type statsRes struct {
	stats.Histogram
	Played    int `json:"played"`
	Wins      int `json:"wins"`
	Streak    int `json:"streak"`
	Abandoned int `json:"abandoned"`
}

// handleStats reports the session histogram.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.deps.Stats == nil {
		writeJSON(w, http.StatusOK, statsRes{})
		return
	}
	ctx := r.Context()
	h, err := s.deps.Stats.Histogram(ctx)
	if err != nil {
		log.Error().Err(err).Msg("stats histogram")
		writeError(w, http.StatusInternalServerError, "db_error", "could not read statistics")
		return
	}
	streak, err := s.deps.Stats.Streak(ctx)
	if err != nil {
		log.Error().Err(err).Msg("stats streak")
		writeError(w, http.StatusInternalServerError, "db_error", "could not read statistics")
		return
	}
	abandoned, err := s.deps.Stats.Abandoned(ctx)
	if err != nil {
		log.Error().Err(err).Msg("stats abandoned")
		writeError(w, http.StatusInternalServerError, "db_error", "could not read statistics")
		return
	}
	writeJSON(w, http.StatusOK, statsRes{
		Histogram: h,
		Played:    h.Played(),
		Wins:      h.Wins(),
		Streak:    streak,
		Abandoned: abandoned,
	})
}

// ------------------------------- small util --------------------------------

// decode reads a JSON body into v. An empty body is accepted when optional.
func decode(w http.ResponseWriter, r *http.Request, v any, optional bool) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	writeError(w, http.StatusBadRequest, "bad_json", err.Error())
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, reason string) {
	writeJSON(w, status, map[string]string{"error": code, "reason": reason})
}
