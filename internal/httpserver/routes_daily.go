// apps/go-term/internal/httpserver/routes_daily.go
//
// HTTP route for the daily round.
//   - POST /daily/new → start a round on today's word
//
// The word is derived from the UTC date and DAILY_SALT, so every client
// gets the same target on the same day. Guesses then go through
// POST /game/guess like any other round.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/go-term/internal/daily"
)

type dailyNewReq struct {
	Hard bool `json:"hard"`
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
	})
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	var req dailyNewReq
	if !decode(w, r, &req, true) {
		return
	}
	now := s.deps.Now()
	target := daily.Word(s.deps.Dict, now, s.deps.DailySalt)
	s.startRound(w, r, target, req.Hard, daily.DateKey(now))
}
