package mock

import (
	"context"

	"github.com/fwojciec/wikisect"
)

var _ wikisect.StopWordSource = (*StopWordSource)(nil)

// StopWordSource is a mock implementation of wikisect.StopWordSource.
type StopWordSource struct {
	LoadFn func(ctx context.Context) (wikisect.StopWordSet, error)
}

func (s *StopWordSource) Load(ctx context.Context) (wikisect.StopWordSet, error) {
	return s.LoadFn(ctx)
}
