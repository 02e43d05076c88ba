// internal/letterbag/letterbag.go
//
// Multiset of letters used to decide whether a word can be spelled
// from a jumble.
//
// Notes:
//   - Input is lower-cased before counting, so "Cat" and "cat" build the same bag.
//   - A Bag is immutable once built.
//   - Containment respects multiplicity: "book" needs two 'o's.

package letterbag

import (
	"sort"
	"strings"
)

// Bag maps each letter to the number of times it occurs.
type Bag struct {
	counts map[rune]int
	size   int // total letters, repeats included
}

// New builds a Bag from the letters of s.
func New(s string) Bag {
	b := Bag{counts: make(map[rune]int, len(s))}
	for _, r := range strings.ToLower(s) {
		b.counts[r]++
		b.size++
	}
	return b
}

// Contains reports whether every letter of word occurs in the bag at
// least as many times as it occurs in word. The empty word is always
// contained.
func (b Bag) Contains(word string) bool {
	need := New(word)
	for r, n := range need.counts {
		if b.counts[r] < n {
			return false
		}
	}
	return true
}

// String lists the bag's letters in sorted order, repeats included.
func (b Bag) String() string {
	letters := make([]rune, 0, b.size)
	for r, n := range b.counts {
		for i := 0; i < n; i++ {
			letters = append(letters, r)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}
