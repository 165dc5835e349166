package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/wikisect"
)

// Ensure LoggingParser implements wikisect.Parser.
var _ wikisect.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging.
type LoggingParser struct {
	next   wikisect.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next wikisect.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the input size.
func (p *LoggingParser) Parse(html string) (doc wikisect.Document, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html)
}
