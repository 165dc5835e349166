package wikisect

import (
	"bufio"
	"context"
	"io"
	"sort"
	"strings"
)

// StopWordSet is an immutable set of lowercase words excluded from ranking.
// The zero value is an empty set.
type StopWordSet struct {
	words map[string]struct{}
}

// NewStopWordSet builds a set from words. Words are lowercased and blank
// entries are skipped.
func NewStopWordSet(words []string) StopWordSet {
	set := StopWordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set.words[w] = struct{}{}
	}
	return set
}

// ParseStopWords reads whitespace-separated words from r.
func ParseStopWords(r io.Reader) (StopWordSet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return StopWordSet{}, err
	}
	return NewStopWordSet(words), nil
}

// Contains reports whether word is in the set.
func (s StopWordSet) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s StopWordSet) Len() int {
	return len(s.words)
}

// Words returns the set's words in sorted order.
func (s StopWordSet) Words() []string {
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// StopWordSource loads a stop-word set from a named resource.
type StopWordSource interface {
	// Load reads the whole resource and releases it before returning.
	// Returns EUNAVAILABLE if the resource cannot be read.
	Load(ctx context.Context) (StopWordSet, error)
}

// WarnFunc receives a non-fatal diagnostic.
type WarnFunc func(err error)

// LoadStopWords loads the set from src. If src is nil or fails, warn is
// called with the failure and the builtin default set is returned instead.
func LoadStopWords(ctx context.Context, src StopWordSource, warn WarnFunc) StopWordSet {
	if src == nil {
		return DefaultStopWords()
	}

	set, err := src.Load(ctx)
	if err != nil {
		if warn != nil {
			warn(err)
		}
		return DefaultStopWords()
	}
	return set
}

// DefaultStopWords returns the builtin English stop-word list.
func DefaultStopWords() StopWordSet {
	return NewStopWordSet(defaultStopWords[:])
}

var defaultStopWords = [...]string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any",
	"are", "aren't", "as", "at", "be", "because", "been", "before", "being", "below",
	"between", "both", "but", "by", "can't", "cannot", "could", "couldn't", "did", "didn't",
	"do", "does", "doesn't", "doing", "don't", "down", "during", "each", "few", "for", "from",
	"further", "had", "hadn't", "has", "hasn't", "have", "haven't", "having", "he", "he'd",
	"he'll", "he's", "her", "here", "here's", "hers", "herself", "him", "himself", "his",
	"how", "how's", "i", "i'd", "i'll", "i'm", "i've", "if", "in", "into", "is", "isn't",
	"it", "it's", "its", "itself", "let's", "me", "more", "most", "mustn't", "my", "myself",
	"no", "nor", "not", "of", "off", "on", "once", "only", "or", "other", "ought", "our",
	"ours", "ourselves", "out", "over", "own", "same", "shan't", "she", "she'd", "she'll",
	"she's", "should", "shouldn't", "so", "some", "such", "than", "that", "that's", "the",
	"their", "theirs", "them", "themselves", "then", "there", "there's", "these", "they",
	"they'd", "they'll", "they're", "they've", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "wasn't", "we", "we'd", "we'll", "we're", "we've",
	"were", "weren't", "what", "what's", "when", "when's", "where", "where's", "which",
	"while", "who", "who's", "whom", "why", "why's", "with", "won't", "would", "wouldn't",
	"you", "you'd", "you'll", "you're", "you've", "your", "yours", "yourself", "yourselves",
}
