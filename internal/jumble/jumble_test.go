package jumble

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/robalobadob/vocab-jumble/internal/letterbag"
	"github.com/robalobadob/vocab-jumble/internal/words"
)

func mustVocab(t *testing.T, list ...string) *words.Vocab {
	t.Helper()
	v, err := words.FromList(list)
	if err != nil {
		t.Fatalf("FromList: %v", err)
	}
	return v
}

func TestGenerateIsSolvable(t *testing.T) {
	v := mustVocab(t, "cat", "bat", "cab", "apple", "banana", "kettle", "river", "shadow")
	for seed := uint64(0); seed < 200; seed++ {
		g := New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		res, err := g.Generate(v, 3)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if res.Target != 3 || len(res.Words) != 3 {
			t.Fatalf("seed %d: target=%d words=%v", seed, res.Target, res.Words)
		}
		bag := letterbag.New(res.Jumble)
		total := 0
		seen := map[string]bool{}
		for _, w := range res.Words {
			if seen[w] {
				t.Fatalf("seed %d: duplicate word %q in %v", seed, w, res.Words)
			}
			seen[w] = true
			if !v.Has(w) {
				t.Fatalf("seed %d: %q not in vocabulary", seed, w)
			}
			if !bag.Contains(w) {
				t.Fatalf("seed %d: jumble %q cannot spell %q", seed, res.Jumble, w)
			}
			total += len(w)
		}
		if len(res.Jumble) != total {
			t.Fatalf("seed %d: jumble length %d, want %d", seed, len(res.Jumble), total)
		}
	}
}

func TestGenerateKeepsMultiplicities(t *testing.T) {
	v := mustVocab(t, "banana")
	res, err := New(rand.NewPCG(1, 2)).Generate(v, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := letterbag.New(res.Jumble).String(); got != "aaabnn" {
		t.Fatalf("letters = %q, want aaabnn", got)
	}
}

func TestGenerateCapsTarget(t *testing.T) {
	v := mustVocab(t, "one", "two", "three", "four", "five")
	res, err := New(rand.NewPCG(7, 7)).Generate(v, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if res.Target != 5 {
		t.Fatalf("Target = %d, want 5", res.Target)
	}
	if len(res.Words) != 5 {
		t.Fatalf("Words = %v, want all five", res.Words)
	}
}

func TestGenerateNonPositiveTarget(t *testing.T) {
	v := mustVocab(t, "one", "two")
	res, err := New(rand.NewPCG(3, 4)).Generate(v, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Target != 1 {
		t.Fatalf("Target = %d, want 1", res.Target)
	}
}

func TestGenerateEmptyVocabulary(t *testing.T) {
	_, err := New(rand.NewPCG(1, 1)).Generate(nil, 3)
	if !errors.Is(err, ErrEmptyVocabulary) {
		t.Fatalf("err = %v, want ErrEmptyVocabulary", err)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	v := mustVocab(t, "cat", "bat", "cab", "apple", "river")
	a, _ := New(rand.NewPCG(42, 43)).Generate(v, 2)
	b, _ := New(rand.NewPCG(42, 43)).Generate(v, 2)
	if a.Jumble != b.Jumble {
		t.Fatalf("same seed gave %q and %q", a.Jumble, b.Jumble)
	}
}

func TestGenerateScrambles(t *testing.T) {
	v := mustVocab(t, "abcdefghijklmnop")
	g := New(rand.NewPCG(5, 6))
	for i := 0; i < 10; i++ {
		res, err := g.Generate(v, 1)
		if err != nil {
			t.Fatal(err)
		}
		if res.Jumble != "abcdefghijklmnop" {
			return
		}
	}
	t.Fatal("ten shuffles of sixteen letters all came out unshuffled")
}

func TestNewSeeded(t *testing.T) {
	g, err := NewSeeded()
	if err != nil {
		t.Fatalf("NewSeeded: %v", err)
	}
	if _, err := g.Generate(mustVocab(t, "word"), 1); err != nil {
		t.Fatal(err)
	}
}
