// Package orp computes the Optimal Recognition Point of a word.
package orp

// Word is a word split around its ORP letter for emphasis rendering.
type Word struct {
	Prefix string
	Letter string
	Suffix string
}

// Index returns the rune index of the ORP letter: the center for odd-length
// words, the center-left position for even-length words. Empty words map to 0.
func Index(word string) int {
	runes := []rune(word)
	if len(runes) == 0 {
		return 0
	}
	return (len(runes) - 1) / 2
}

// Split divides a word into the spans before, at, and after its ORP letter.
// An empty word yields a zero Word.
func Split(word string) Word {
	runes := []rune(word)
	if len(runes) == 0 {
		return Word{}
	}
	idx := Index(word)
	return Word{
		Prefix: string(runes[:idx]),
		Letter: string(runes[idx]),
		Suffix: string(runes[idx+1:]),
	}
}

// String joins the spans back into the plain word.
func (w Word) String() string {
	return w.Prefix + w.Letter + w.Suffix
}

// IsZero reports whether the word has no content.
func (w Word) IsZero() bool {
	return w.Prefix == "" && w.Letter == "" && w.Suffix == ""
}
