package reader

import "testing"

var navWords = []string{"first", "one.", "second", "here!", "third", "now?"}

func TestNextSentenceStart(t *testing.T) {
	cases := []struct {
		from int
		want int
	}{
		{0, 2},
		{1, 2},
		{2, 4},
		{4, 5}, // "now?" is the last word; clamp to len-1
		{5, 5},
	}
	for _, tc := range cases {
		if got := NextSentenceStart(navWords, tc.from); got != tc.want {
			t.Fatalf("NextSentenceStart(%d) = %d, want %d", tc.from, got, tc.want)
		}
	}
}

func TestNextSentenceStartNoTerminals(t *testing.T) {
	words := []string{"no", "terminals", "here"}
	if got := NextSentenceStart(words, 0); got != 2 {
		t.Fatalf("NextSentenceStart without terminals = %d, want 2", got)
	}
	if got := NextSentenceStart(nil, 0); got != 0 {
		t.Fatalf("NextSentenceStart on empty = %d, want 0", got)
	}
}

func TestPreviousSentenceStart(t *testing.T) {
	cases := []struct {
		from int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 2},
		{3, 2},
		{4, 4},
		{5, 4},
	}
	for _, tc := range cases {
		if got := PreviousSentenceStart(navWords, tc.from); got != tc.want {
			t.Fatalf("PreviousSentenceStart(%d) = %d, want %d", tc.from, got, tc.want)
		}
	}
}

func TestColonDoesNotEndSentence(t *testing.T) {
	words := []string{"note:", "details", "follow."}
	if got := NextSentenceStart(words, 0); got != 2 {
		t.Fatalf("colon treated as sentence end: NextSentenceStart = %d", got)
	}
	if got := PreviousSentenceStart(words, 2); got != 0 {
		t.Fatalf("colon treated as sentence end: PreviousSentenceStart = %d", got)
	}
}

func TestJumpToPreviousSentenceDoubleBack(t *testing.T) {
	r := newTestReader(navWords, 1.0)
	r.Seek(4)
	// Already at a sentence start, so jump to the preceding sentence.
	r.JumpToPreviousSentence()
	if r.Index() != 2 {
		t.Fatalf("double-back jump landed at %d, want 2", r.Index())
	}
	// Mid-sentence jump goes to the start of the current sentence.
	r.Seek(3)
	r.JumpToPreviousSentence()
	if r.Index() != 2 {
		t.Fatalf("mid-sentence jump landed at %d, want 2", r.Index())
	}
	// At index 0 there is nothing earlier.
	r.Seek(0)
	r.JumpToPreviousSentence()
	if r.Index() != 0 {
		t.Fatalf("jump at start landed at %d, want 0", r.Index())
	}
}

func TestJumpToNextSentence(t *testing.T) {
	r := newTestReader(navWords, 1.0)
	r.JumpToNextSentence()
	if r.Index() != 2 {
		t.Fatalf("jump landed at %d, want 2", r.Index())
	}
	r.JumpToNextSentence()
	if r.Index() != 4 {
		t.Fatalf("jump landed at %d, want 4", r.Index())
	}
	r.JumpToNextSentence()
	if r.Index() != 5 {
		t.Fatalf("jump landed at %d, want 5", r.Index())
	}
}
