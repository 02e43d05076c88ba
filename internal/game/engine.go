// internal/game/engine.go
//
// Core game engine for a single jumble round.
// Responsibilities:
//   - Start rounds from a jumble.Generator and a shared vocabulary.
//   - Classify submissions: already found, not a word, not spellable, new match.
//   - Detect the win: a new match that brings Matches up to Target.
//
// Notes:
//   - Checks run in a fixed order; an already-found word is reported as
//     such before anything else is looked at.
//   - Only a NewMatch mutates the round.
//   - randomID() is a compact hex identifier for correlating server state.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/robalobadob/vocab-jumble/internal/jumble"
	"github.com/robalobadob/vocab-jumble/internal/letterbag"
	"github.com/robalobadob/vocab-jumble/internal/words"
)

// New starts a round with up to target words drawn from vocab.
func New(gen *jumble.Generator, vocab *words.Vocab, target int) (*Round, error) {
	res, err := gen.Generate(vocab, target)
	if err != nil {
		return nil, err
	}
	return &Round{
		ID:        randomID(),
		Jumble:    res.Jumble,
		Target:    res.Target,
		Matches:   []string{},
		Words:     res.Words,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Evaluate classifies submission against the round and the vocabulary.
// On NewMatch the word is appended to r.Matches; nothing else mutates r.
func (r *Round) Evaluate(vocab *words.Vocab, submission string) Result {
	word := strings.ToLower(strings.TrimSpace(submission))
	out := Result{Word: word, Outcome: r.classify(vocab, word)}
	if out.Outcome == NewMatch {
		r.Matches = append(r.Matches, word)
		out.Won = r.Won()
	}
	out.Matches = append([]string(nil), r.Matches...)
	return out
}

func (r *Round) classify(vocab *words.Vocab, word string) Outcome {
	if r.HasMatch(word) {
		return AlreadyFound
	}
	if !vocab.Has(word) {
		return NotAWord
	}
	if !letterbag.New(r.Jumble).Contains(word) {
		return NotSpellable
	}
	return NewMatch
}

// HasMatch reports whether word was already found this round.
func (r *Round) HasMatch(word string) bool {
	for _, m := range r.Matches {
		if m == word {
			return true
		}
	}
	return false
}

// Won reports whether the round has reached its target.
func (r *Round) Won() bool {
	return r.Target > 0 && len(r.Matches) >= r.Target
}

// Message returns the player-facing text for res in a round whose jumble
// is letters.
func (res Result) Message(letters string) string {
	switch res.Outcome {
	case NewMatch:
		return strings.Join(res.Matches, " ")
	case AlreadyFound:
		return fmt.Sprintf("You already found %s", res.Word)
	case NotAWord:
		return fmt.Sprintf("%s isn't in the list of words", res.Word)
	case NotSpellable:
		return fmt.Sprintf("%q can't be made from the letters %s", res.Word, letters)
	}
	return ""
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
