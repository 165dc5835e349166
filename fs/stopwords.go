// Package fs provides file-based resources for wikisect.
package fs

import (
	"context"
	"os"

	"github.com/fwojciec/wikisect"
)

// Ensure StopWordFile implements wikisect.StopWordSource at compile time.
var _ wikisect.StopWordSource = (*StopWordFile)(nil)

// StopWordFile reads a whitespace-separated stop-word list from disk.
type StopWordFile struct {
	path string
}

// NewStopWordFile creates a StopWordFile for path.
func NewStopWordFile(path string) *StopWordFile {
	return &StopWordFile{path: path}
}

// Path returns the file path.
func (f *StopWordFile) Path() string {
	return f.path
}

// Load reads the file once and closes it before returning.
func (f *StopWordFile) Load(ctx context.Context) (wikisect.StopWordSet, error) {
	if err := ctx.Err(); err != nil {
		return wikisect.StopWordSet{}, err
	}

	file, err := os.Open(f.path)
	if err != nil {
		return wikisect.StopWordSet{}, wikisect.Errorf(wikisect.EUNAVAILABLE, "error opening %s: used default list", f.path)
	}
	defer file.Close()

	set, err := wikisect.ParseStopWords(file)
	if err != nil {
		return wikisect.StopWordSet{}, wikisect.Errorf(wikisect.EUNAVAILABLE, "error reading %s: used default list", f.path)
	}
	return set, nil
}
