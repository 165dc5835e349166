package wikisect

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalizer turns raw whitespace-separated tokens into countable words.
type Normalizer struct {
	stopWords StopWordSet
	strict    bool
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithStrictDigits makes the normalizer discard tokens that hold no run of
// at least two letters, so "1990s" is dropped instead of counted as "s".
func WithStrictDigits() NormalizerOption {
	return func(n *Normalizer) {
		n.strict = true
	}
}

// NewNormalizer returns a Normalizer filtering against stopWords.
func NewNormalizer(stopWords StopWordSet, opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{stopWords: stopWords}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize keeps only the letters of token and lowercases them.
// It returns false when nothing is left or the result is a stop word.
//
// Non-letters are dropped rather than splitting the token: "cats," becomes
// "cats" and "1990s" becomes "s" unless WithStrictDigits is set.
func (n *Normalizer) Normalize(token string) (string, bool) {
	var sb strings.Builder
	run, longest := 0, 0
	for _, r := range token {
		if !unicode.IsLetter(r) {
			run = 0
			continue
		}
		sb.WriteRune(r)
		run++
		longest = max(longest, run)
	}

	if sb.Len() == 0 {
		return "", false
	}
	if n.strict && longest < 2 {
		return "", false
	}

	word := cases.Lower(language.Und).String(sb.String())
	if n.stopWords.Contains(word) {
		return "", false
	}
	return word, true
}
