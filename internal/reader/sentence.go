package reader

import "strings"

// sentenceEnders marks sentence boundaries for navigation. This set is
// narrower than the settle-delay terminals: a colon slows the reader down
// but does not end a sentence.
const sentenceEnders = ".!?"

func endsSentence(word string) bool {
	if word == "" {
		return false
	}
	runes := []rune(word)
	return strings.ContainsRune(sentenceEnders, runes[len(runes)-1])
}

// PreviousSentenceStart returns the index of the first word of the sentence
// containing from, scanning backward from from-1. Returns 0 when no earlier
// sentence-terminal word exists.
func PreviousSentenceStart(words []string, from int) int {
	if from <= 0 {
		return 0
	}
	if from > len(words) {
		from = len(words)
	}
	for i := from - 1; i >= 0; i-- {
		if endsSentence(words[i]) {
			return i + 1
		}
	}
	return 0
}

// NextSentenceStart returns the index of the first word after the nearest
// sentence-terminal word at or after from, clamped to the last word. Returns
// the last word index when no terminal is found.
func NextSentenceStart(words []string, from int) int {
	if len(words) == 0 {
		return 0
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < len(words); i++ {
		if endsSentence(words[i]) {
			next := i + 1
			if next > len(words)-1 {
				next = len(words) - 1
			}
			return next
		}
	}
	return len(words) - 1
}
