// internal/httpserver/routes_daily.go
//
// HTTP route for the daily round.
//   - GET /daily → start today's daily round
//
// Every player starting the daily round on the same UTC date gets the
// same jumble; their progress is still their own round in the store.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/vocab-jumble/internal/daily"
	"github.com/robalobadob/vocab-jumble/internal/game"
	"github.com/robalobadob/vocab-jumble/internal/jumble"
)

// mountDaily registers the /daily route.
func (s *Server) mountDaily(r chi.Router) {
	r.Get("/daily", s.handleDaily)
}

// handleDaily starts a round from the date-seeded generator.
func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	gen := jumble.New(daily.Source(now, s.salt))
	rd, err := game.New(gen, s.vocab, s.target)
	if err != nil {
		log.Error().Err(err).Msg("new daily round")
		http.Error(w, `{"error":"no_round"}`, http.StatusInternalServerError)
		return
	}
	log.Debug().Str("date", daily.DateKey(now)).Msg("daily round")
	s.startRound(w, r, rd)
}
