package letterbag

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		source string
		word   string
		want   bool
	}{
		{"aabbcc", "abc", true},
		{"aabbcc", "aabbcc", true},
		{"aabbcc", "aabbccd", false},
		{"aabbcc", "aaabbcc", false},
		{"ballon", "ball", true},
		{"ballon", "balloon", false},
		{"tabatc", "cat", true},
		{"tabatc", "cab", true},
		{"tabatc", "abba", false},
		{"", "", true},
		{"xyz", "", true},
		{"", "a", false},
		{"CaT", "tac", true},
		{"cat", "TAC", true},
	}
	for _, tt := range tests {
		if got := New(tt.source).Contains(tt.word); got != tt.want {
			t.Errorf("New(%q).Contains(%q) = %v, want %v", tt.source, tt.word, got, tt.want)
		}
	}
}

func TestContainsEverySubsetOfSource(t *testing.T) {
	src := "mississippi"
	bag := New(src)
	// every prefix and suffix is spellable from the whole
	for i := 0; i <= len(src); i++ {
		if !bag.Contains(src[:i]) {
			t.Fatalf("prefix %q not contained", src[:i])
		}
		if !bag.Contains(src[i:]) {
			t.Fatalf("suffix %q not contained", src[i:])
		}
	}
}

func TestString(t *testing.T) {
	if got := New("tabatc").String(); got != "aabctt" {
		t.Fatalf("String() = %q, want %q", got, "aabctt")
	}
	if got := New("").String(); got != "" {
		t.Fatalf("String() of empty bag = %q", got)
	}
}
