package orp

import "testing"

func TestIndex(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"", 0},
		{"a", 0},
		{"is", 0},
		{"the", 1},
		{"word", 1},
		{"hello", 2},
		{"reading", 3},
		{"naïve", 2},
	}
	for _, tc := range cases {
		if got := Index(tc.word); got != tc.want {
			t.Fatalf("Index(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		word string
		want Word
	}{
		{"", Word{}},
		{"a", Word{Prefix: "", Letter: "a", Suffix: ""}},
		{"the", Word{Prefix: "t", Letter: "h", Suffix: "e"}},
		{"word", Word{Prefix: "w", Letter: "o", Suffix: "rd"}},
		{"café,", Word{Prefix: "ca", Letter: "f", Suffix: "é,"}},
	}
	for _, tc := range cases {
		got := Split(tc.word)
		if got != tc.want {
			t.Fatalf("Split(%q) = %+v, want %+v", tc.word, got, tc.want)
		}
	}
}

func TestSplitRoundTrip(t *testing.T) {
	for _, word := range []string{"", "a", "stop.", "résumé", "reading"} {
		if got := Split(word).String(); got != word {
			t.Fatalf("Split(%q).String() = %q", word, got)
		}
	}
}

func TestIsZero(t *testing.T) {
	if !Split("").IsZero() {
		t.Fatalf("expected empty split to be zero")
	}
	if Split("a").IsZero() {
		t.Fatalf("expected non-empty split to not be zero")
	}
}
