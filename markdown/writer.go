// Package markdown renders wikisect page reports as Markdown.
package markdown

import (
	"io"
	"strconv"

	"github.com/fwojciec/wikisect"
	"github.com/nao1215/markdown"
)

// Ensure ReportWriter implements wikisect.ReportWriter at compile time.
var _ wikisect.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes a page as a Markdown document: a title, a table of
// contents, and one heading per section followed by a word table and a link
// list.
type ReportWriter struct {
	toc bool
}

// Option configures a ReportWriter.
type Option func(*ReportWriter)

// WithoutTOC omits the table of contents.
func WithoutTOC() Option {
	return func(w *ReportWriter) {
		w.toc = false
	}
}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter(opts ...Option) *ReportWriter {
	w := &ReportWriter{toc: true}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WritePage renders page to out.
func (w *ReportWriter) WritePage(out io.Writer, page *wikisect.Page, words, links wikisect.Limit) error {
	md := markdown.NewMarkdown(out)

	md.H1(page.Title)
	md.PlainText(markdown.Link(page.SourceURL, page.SourceURL))
	md.PlainText("")

	if w.toc && len(page.Sections) > 0 {
		items := make([]string, 0, len(page.Sections))
		for _, s := range page.Sections {
			items = append(items, markdown.Link(s.Heading, "#"+s.Anchor))
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	for _, s := range page.Sections {
		writeSection(md, wikisect.Render(s, words, links))
	}

	return md.Build()
}

func writeSection(md *markdown.Markdown, r wikisect.Rendered) {
	heading(md, r.Level, r.Heading)

	if len(r.Words) > 0 {
		rows := make([][]string, 0, len(r.Words))
		for _, wc := range r.Words {
			rows = append(rows, []string{wc.Word, strconv.Itoa(wc.Count)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Word", "Count"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(r.Links) > 0 {
		items := make([]string, 0, len(r.Links))
		for _, l := range r.Links {
			if l.URL == "" {
				items = append(items, l.Key)
				continue
			}
			items = append(items, markdown.Link(l.Key, l.URL))
		}
		md.BulletList(items...)
		md.PlainText("")
	}
}

// heading maps a section level onto H2..H6; H1 is reserved for the page title.
func heading(md *markdown.Markdown, level int, text string) {
	switch {
	case level <= 2:
		md.H2(text)
	case level == 3:
		md.H3(text)
	case level == 4:
		md.H4(text)
	case level == 5:
		md.H5(text)
	default:
		md.H6(text)
	}
}
