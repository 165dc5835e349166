package wikisect

import (
	"strconv"
	"strings"
)

// Limit bounds how many entries of a ranked list are shown.
// The zero value is Unbounded.
type Limit struct {
	n       int
	bounded bool
}

// Unbounded returns a Limit that keeps every entry.
func Unbounded() Limit {
	return Limit{}
}

// Bounded returns a Limit that keeps at most n entries. Negative n is treated as 0.
func Bounded(n int) Limit {
	return Limit{n: max(n, 0), bounded: true}
}

// IsBounded reports whether the limit caps the number of entries.
func (l Limit) IsBounded() bool {
	return l.bounded
}

// Apply returns how many of length entries the limit keeps.
func (l Limit) Apply(length int) int {
	if !l.bounded || l.n > length {
		return length
	}
	return l.n
}

// String returns "all" for Unbounded and the decimal cap otherwise.
func (l Limit) String() string {
	if !l.bounded {
		return "all"
	}
	return strconv.Itoa(l.n)
}

// ParseLimit parses "all" (or an empty string) as Unbounded and a
// non-negative integer as Bounded.
func ParseLimit(s string) (Limit, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return Unbounded(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return Limit{}, Errorf(EINVALID, "invalid limit %q: want a non-negative number or \"all\"", s)
	}
	return Bounded(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Limit) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Limit) UnmarshalText(text []byte) error {
	parsed, err := ParseLimit(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Truncate returns the prefix of items kept by l. It never reorders.
func Truncate[T any](items []T, l Limit) []T {
	return items[:l.Apply(len(items))]
}
