// internal/words/words.go
//
// Vocabulary management for the jumble game.
//
// Responsibilities:
//   - Load a word list from a file, any io.Reader, or the embedded default.
//   - Answer membership (Has) and enumeration (AsList) queries.
//
// Loading rules:
//   - One word per line; lines are trimmed and lower-cased.
//   - Blank lines and lines starting with '#' are skipped.
//   - Duplicates are dropped; the first occurrence keeps its position.
//   - A line with inner whitespace or any non-letter is an error.
//   - A source that yields no words is an error: nothing could be played.
//
// A *Vocab never changes after construction, so a single instance is
// shared by every request without locking.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/vocab-jumble/assets"
)

// ErrNoWords is wrapped by LoadError when a source yields zero words.
var ErrNoWords = errors.New("no usable words")

// LoadError reports a vocabulary source that could not be used.
type LoadError struct {
	Source string // file path or "embedded"
	Line   int    // 1-based line number, 0 when not line specific
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("words: load %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("words: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Vocab is an immutable set of words with a stable enumeration order.
type Vocab struct {
	list []string            // first-seen order
	set  map[string]struct{} // lookup
}

// Load reads a vocabulary from r. name is used in error messages.
func Load(name string, r io.Reader) (*Vocab, error) {
	v := &Vocab{set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		w := normalize(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if strings.IndexFunc(w, unicode.IsSpace) >= 0 {
			return nil, &LoadError{Source: name, Line: line, Err: fmt.Errorf("word %q contains whitespace", w)}
		}
		if i := strings.IndexFunc(w, notLetter); i >= 0 {
			r, _ := utf8.DecodeRuneInString(w[i:])
			return nil, &LoadError{Source: name, Line: line, Err: fmt.Errorf("word %q contains non-letter %q", w, r)}
		}
		v.add(w)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	if len(v.list) == 0 {
		return nil, &LoadError{Source: name, Err: ErrNoWords}
	}
	return v, nil
}

// LoadFile reads a vocabulary from the file at path.
func LoadFile(path string) (*Vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Load(path, f)
}

// LoadDefault reads the vocabulary embedded in the assets package.
func LoadDefault() (*Vocab, error) {
	f, err := assets.OpenVocab()
	if err != nil {
		return nil, &LoadError{Source: "embedded", Err: err}
	}
	defer f.Close()
	return Load("embedded", f)
}

// FromList builds a vocabulary from an in-memory list using the same
// rules as Load.
func FromList(list []string) (*Vocab, error) {
	return Load("list", strings.NewReader(strings.Join(list, "\n")))
}

// Has reports whether w is in the vocabulary. Lookup is case-insensitive.
func (v *Vocab) Has(w string) bool {
	if v == nil {
		return false
	}
	_, ok := v.set[normalize(w)]
	return ok
}

// AsList returns the words in load order. The slice is a copy.
func (v *Vocab) AsList() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// Len returns the number of distinct words.
func (v *Vocab) Len() int {
	if v == nil {
		return 0
	}
	return len(v.list)
}

// At returns the i-th word in load order.
func (v *Vocab) At(i int) string { return v.list[i] }

func (v *Vocab) add(w string) {
	if _, dup := v.set[w]; dup {
		return
	}
	v.set[w] = struct{}{}
	v.list = append(v.list, w)
}

func notLetter(r rune) bool { return !unicode.IsLetter(r) }

// normalize lower-cases and trims a word.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
