package mock

import (
	"io"

	"github.com/fwojciec/wikisect"
)

var _ wikisect.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of wikisect.ReportWriter.
type ReportWriter struct {
	WritePageFn func(w io.Writer, page *wikisect.Page, words, links wikisect.Limit) error
}

func (r *ReportWriter) WritePage(w io.Writer, page *wikisect.Page, words, links wikisect.Limit) error {
	return r.WritePageFn(w, page, words, links)
}
