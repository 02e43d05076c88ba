// internal/httpserver/server.go
//
// HTTP server wiring for the vocab jumble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, logging).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Round endpoints: /index (new round), /keep_going, /_check, /success.
//   - Daily round endpoint: mounted at /daily.
//
// Notes:
//   - The vocabulary is loaded once by the caller and shared read-only.
//   - The session cookie only names the caller's round; the round itself
//     lives in the store and is mutated through store.Update so two
//     submissions on one round never interleave.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/vocab-jumble/internal/game"
	"github.com/robalobadob/vocab-jumble/internal/jumble"
	"github.com/robalobadob/vocab-jumble/internal/letterbag"
	"github.com/robalobadob/vocab-jumble/internal/session"
	"github.com/robalobadob/vocab-jumble/internal/store"
	"github.com/robalobadob/vocab-jumble/internal/words"
)

// Options configures a Server. Vocab, Store, Sessions and Generator are required.
type Options struct {
	Vocab        *words.Vocab
	Store        store.Store
	Sessions     *session.Manager
	Generator    *jumble.Generator
	Target       int    // desired matches per round before capping
	DailySalt    string // seed salt for /daily
	ClientOrigin string // CORS origin
}

// Server bundles router, shared vocabulary, round store, and session manager.
type Server struct {
	r        *chi.Mux
	vocab    *words.Vocab
	store    store.Store
	sessions *session.Manager
	target   int
	salt     string
	now      func() time.Time

	genMu sync.Mutex // guards gen
	gen   *jumble.Generator
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		vocab:    opts.Vocab,
		store:    opts.Store,
		sessions: opts.Sessions,
		target:   opts.Target,
		salt:     opts.DailySalt,
		now:      time.Now,
		gen:      opts.Generator,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // one zerolog line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"vocab-jumble","endpoints":["/health","/index","/keep_going","/_check?text=","/success","/daily"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.vocab.Len()})
	})

	// --- rounds ---
	for _, path := range []string{"/index", "/round/new"} {
		s.r.Get(path, s.handleNewRound)
		s.r.Post(path, s.handleNewRound)
	}
	s.r.Get("/keep_going", s.handleKeepGoing)
	s.r.Get("/_check", s.handleCheck)
	s.r.Get("/success", s.handleSuccess)
	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ ROUNDS -------------------------------------

// roundRes is returned when a round starts or is resumed.
type roundRes struct {
	RoundID string   `json:"roundId"`
	Jumble  string   `json:"jumble"`
	Target  int      `json:"target"`
	Matches []string `json:"matches"`
}

func newRoundRes(rd *game.Round) roundRes {
	return roundRes{RoundID: rd.ID, Jumble: rd.Jumble, Target: rd.Target, Matches: rd.Matches}
}

// handleNewRound replaces the caller's round with a fresh one.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	s.genMu.Lock()
	rd, err := game.New(s.gen, s.vocab, s.target)
	s.genMu.Unlock()
	if err != nil {
		log.Error().Err(err).Msg("new round")
		http.Error(w, `{"error":"no_round"}`, http.StatusInternalServerError)
		return
	}
	s.startRound(w, r, rd)
}

// startRound saves rd, drops the caller's previous round, and points the
// session cookie at rd.
func (s *Server) startRound(w http.ResponseWriter, r *http.Request, rd *game.Round) {
	if err := s.store.Save(r.Context(), rd); err != nil {
		log.Error().Err(err).Msg("save round")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	if prev, err := s.sessions.RoundID(r); err == nil && prev != rd.ID {
		if err := s.store.Delete(r.Context(), prev); err != nil {
			log.Warn().Err(err).Str("roundId", prev).Msg("delete previous round")
		}
	}
	if err := s.sessions.Set(w, rd.ID); err != nil {
		log.Error().Err(err).Msg("sign session")
		http.Error(w, `{"error":"session_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Debug().
		Str("roundId", rd.ID).
		Int("target", rd.Target).
		Str("letters", letterbag.New(rd.Jumble).String()).
		Msg("round started")
	_ = json.NewEncoder(w).Encode(newRoundRes(rd))
}

// handleKeepGoing returns the caller's current round unchanged.
func (s *Server) handleKeepGoing(w http.ResponseWriter, r *http.Request) {
	rd, ok := s.currentRound(w, r)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(newRoundRes(rd))
}

// checkRes is the payload of /_check, wrapped as {"result": ...}.
type checkRes struct {
	Message  string   `json:"message"`  // match found | already found | not in list | cant be made | success
	Response string   `json:"response"` // player-facing text, or "/success" once won
	Outcome  string   `json:"outcome"`
	Won      bool     `json:"won"` // this submission completed the round
	Matches  []string `json:"matches"`
}

// outcomeMessages maps each outcome to its short /_check message.
var outcomeMessages = map[game.Outcome]string{
	game.NewMatch:     "match found",
	game.AlreadyFound: "already found",
	game.NotAWord:     "not in list",
	game.NotSpellable: "cant be made",
}

// handleCheck evaluates ?text= against the caller's round.
// Once the round has reached its target every response points at /success.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	id, err := s.sessions.RoundID(r)
	if err != nil {
		http.Error(w, `{"error":"no_round"}`, http.StatusConflict)
		return
	}
	text := r.URL.Query().Get("text")

	var (
		res   game.Result
		out   checkRes
		ended bool
	)
	err = s.store.Update(r.Context(), id, func(rd *game.Round) error {
		res = rd.Evaluate(s.vocab, text)
		out.Response = res.Message(rd.Jumble)
		ended = rd.Won()
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"no_round"}`, http.StatusConflict)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("roundId", id).Msg("evaluate")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}

	out.Message = outcomeMessages[res.Outcome]
	out.Outcome = res.Outcome.String()
	out.Won = res.Won
	out.Matches = res.Matches
	if ended {
		out.Message, out.Response = "success", "/success"
	}
	log.Debug().Str("roundId", id).Str("word", res.Word).Str("outcome", out.Outcome).Bool("won", res.Won).Msg("check")
	_ = json.NewEncoder(w).Encode(map[string]checkRes{"result": out})
}

// handleSuccess confirms a won round.
func (s *Server) handleSuccess(w http.ResponseWriter, r *http.Request) {
	rd, ok := s.currentRound(w, r)
	if !ok {
		return
	}
	if !rd.Won() {
		http.Error(w, `{"error":"not_won"}`, http.StatusConflict)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"message": "success", "matches": rd.Matches})
}

// currentRound loads the caller's round, writing a 409 if there is none.
func (s *Server) currentRound(w http.ResponseWriter, r *http.Request) (*game.Round, bool) {
	id, err := s.sessions.RoundID(r)
	if err != nil {
		http.Error(w, `{"error":"no_round"}`, http.StatusConflict)
		return nil, false
	}
	rd, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"no_round"}`, http.StatusConflict)
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("roundId", id).Msg("load round")
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return nil, false
	}
	return rd, true
}
