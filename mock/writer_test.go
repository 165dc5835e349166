package mock_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/fwojciec/wikisect"
	"github.com/fwojciec/wikisect/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ wikisect.ReportWriter = &mock.ReportWriter{}
}

func TestReportWriter_WritePage(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WritePageFn", func(t *testing.T) {
		t.Parallel()

		var (
			calledPage  *wikisect.Page
			calledWords wikisect.Limit
		)
		w := &mock.ReportWriter{
			WritePageFn: func(out io.Writer, page *wikisect.Page, words, links wikisect.Limit) error {
				calledPage = page
				calledWords = words
				_, err := io.WriteString(out, page.Title)
				return err
			},
		}
		page := &wikisect.Page{Title: "Cat"}
		var buf bytes.Buffer

		err := w.WritePage(&buf, page, wikisect.Bounded(5), wikisect.Unbounded())

		require.NoError(t, err)
		assert.Same(t, page, calledPage)
		assert.Equal(t, wikisect.Bounded(5), calledWords)
		assert.Equal(t, "Cat", buf.String())
	})
}
