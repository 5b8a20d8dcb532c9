// Package source resolves and normalizes reading material.
package source

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
)

// ClipboardSentinel selects the system clipboard when passed as the
// positional source argument. Matching is case-insensitive.
const ClipboardSentinel = ":clipboard:"

var (
	// ErrNotFound indicates the source file does not exist.
	ErrNotFound = errors.New("source file not found")
	// ErrClipboardUnavailable indicates the platform clipboard could not be read.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	// ErrEmptyInput indicates the resolved text contains no words.
	ErrEmptyInput = errors.New("no words to read")
)

// Normalize splits raw text on runs of whitespace and lowercases every token.
// Punctuation stays attached to its word; the reader inspects trailing
// punctuation for delays and sentence boundaries. Empty or all-whitespace
// input yields an empty slice.
func Normalize(raw string) []string {
	fields := strings.Fields(raw)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		words = append(words, strings.ToLower(field))
	}
	return words
}

// LoadFile reads the whole file at path.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// LoadClipboard reads the system clipboard.
func LoadClipboard() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return text, nil
}

// Resolve turns the CLI source argument into a normalized word sequence and a
// human-readable source label. The clipboard is selected by the sentinel
// argument or the flag; anything else is treated as a file path.
func Resolve(arg string, useClipboard bool) ([]string, string, error) {
	var (
		text  string
		label string
		err   error
	)
	if useClipboard || strings.EqualFold(arg, ClipboardSentinel) {
		label = "clipboard"
		text, err = LoadClipboard()
	} else {
		label = arg
		text, err = LoadFile(arg)
	}
	if err != nil {
		return nil, label, err
	}
	words := Normalize(text)
	if len(words) == 0 {
		return nil, label, fmt.Errorf("%w (source: %s)", ErrEmptyInput, label)
	}
	return words, label, nil
}
