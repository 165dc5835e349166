package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/wikisect"
	"github.com/fwojciec/wikisect/mock"
	wikislog "github.com/fwojciec/wikisect/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("logs input size and returns the document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &mock.Document{}
		inner := &mock.Parser{
			ParseFn: func(html string) (wikisect.Document, error) {
				return want, nil
			},
		}

		parser := wikislog.NewLoggingParser(inner, logger)
		doc, err := parser.Parse("<html></html>")

		require.NoError(t, err)
		assert.Same(t, want, doc)
		output := buf.String()
		assert.Contains(t, output, "msg=parse")
		assert.Contains(t, output, "bytes=13")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs parse failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Parser{
			ParseFn: func(html string) (wikisect.Document, error) {
				return nil, errors.New("bad markup")
			},
		}

		parser := wikislog.NewLoggingParser(inner, logger)
		_, err := parser.Parse("<")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"bad markup\"")
	})
}
