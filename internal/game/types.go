// internal/game/types.go
//
// Core type definitions for the jumble game engine.
// Defines:
//   - Outcome: classification of one submitted word.
//   - Round: state for a single round (jumble, target, matches so far).
//   - Result: what Evaluate reports back to the caller.

package game

import "time"

// Outcome is the classification of a single submission.
// Exactly one applies to every submission, checked in declaration order.
type Outcome int

const (
	AlreadyFound Outcome = iota // word is already in Round.Matches
	NotAWord                    // word is not in the vocabulary
	NotSpellable                // word is in the vocabulary but not in the jumble's letters
	NewMatch                    // accepted and appended to Round.Matches
)

// String returns the short wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case AlreadyFound:
		return "already_found"
	case NotAWord:
		return "not_a_word"
	case NotSpellable:
		return "not_spellable"
	case NewMatch:
		return "new_match"
	}
	return "unknown"
}

// Round holds the state of one play session.
// A Round has a single writer; callers that share one across goroutines
// must serialise Evaluate (see store.Store.Update).
type Round struct {
	ID        string    // random hex identifier
	Jumble    string    // scrambled letters shown to the player
	Target    int       // distinct matches needed to win
	Matches   []string  // words found so far, in discovery order
	Words     []string  // words the jumble was built from
	CreatedAt time.Time // round start
}

// Result is the outcome of evaluating one submission.
type Result struct {
	Word    string   // normalised submission
	Outcome Outcome  // exactly one of the four outcomes
	Won     bool     // true only when this submission completed the round
	Matches []string // matches after evaluation (copy)
}

// Clone returns a deep copy of r.
func (r *Round) Clone() *Round {
	c := *r
	c.Matches = append([]string{}, r.Matches...)
	c.Words = append([]string{}, r.Words...)
	return &c
}
