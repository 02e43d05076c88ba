// internal/jumble/jumble.go
//
// Jumble generation.
//
// A jumble is built by picking Target distinct words from the vocabulary,
// concatenating them, and shuffling the combined letters. Because every
// selected word's letters are in the pool, each of them can always be
// spelled from the jumble; the shuffle only hides the words.
//
// A Generator owns its random source and is not safe for concurrent use.

package jumble

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/robalobadob/vocab-jumble/internal/words"
)

// ErrEmptyVocabulary is returned when there are no words to draw from.
var ErrEmptyVocabulary = errors.New("jumble: empty vocabulary")

// Result is one generated jumble.
type Result struct {
	Jumble string   // shuffled letters shown to the player
	Target int      // matches needed to win, capped at the vocabulary size
	Words  []string // words the jumble was built from, in selection order
}

// Generator produces jumbles from a random source.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator drawing from src. A fixed source gives
// reproducible jumbles.
func New(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeeded returns a Generator seeded from crypto/rand.
func NewSeeded() (*Generator, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))), nil
}

// Generate picks min(target, v.Len()) distinct words and shuffles their
// letters together. A target below 1 is treated as 1.
func (g *Generator) Generate(v *words.Vocab, target int) (Result, error) {
	n := v.Len()
	if n == 0 {
		return Result{}, ErrEmptyVocabulary
	}
	if target < 1 {
		target = 1
	}
	if target > n {
		target = n
	}

	// Partial Fisher-Yates: the first target slots end up holding a
	// uniformly random subset of distinct indices.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	picked := make([]string, target)
	var sb strings.Builder
	for i := 0; i < target; i++ {
		j := i + g.rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		picked[i] = v.At(idx[i])
		sb.WriteString(picked[i])
	}

	letters := []rune(sb.String())
	g.rng.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})

	return Result{Jumble: string(letters), Target: target, Words: picked}, nil
}
