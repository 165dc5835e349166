package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikisect"
)

// Ensure LoggingStopWordSource implements wikisect.StopWordSource.
var _ wikisect.StopWordSource = (*LoggingStopWordSource)(nil)

// LoggingStopWordSource wraps a StopWordSource with logging.
type LoggingStopWordSource struct {
	next   wikisect.StopWordSource
	name   string
	logger *slog.Logger
}

// NewLoggingStopWordSource creates a new LoggingStopWordSource.
// The name identifies the source in log lines.
func NewLoggingStopWordSource(next wikisect.StopWordSource, name string, logger *slog.Logger) *LoggingStopWordSource {
	return &LoggingStopWordSource{next: next, name: name, logger: logger}
}

// Load delegates to the wrapped source and logs the number of words loaded.
func (s *LoggingStopWordSource) Load(ctx context.Context) (set wikisect.StopWordSet, err error) {
	defer func(begin time.Time) {
		s.logger.Info("stop words",
			"source", s.name,
			"count", set.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}
