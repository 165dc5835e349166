package wikisect

import (
	"encoding/json"
	"fmt"
	"io"
)

// ReportWriter writes a page report in some output format.
type ReportWriter interface {
	WritePage(w io.Writer, page *Page, words, links Limit) error
}

// Ensure writers implement ReportWriter at compile time.
var (
	_ ReportWriter = (*TextWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
)

// SectionBanner prefixes each section heading in text output.
const SectionBanner = "--------"

// FormatSection writes one rendered section: the banner line, one
// "word - count" line per word, one "key - url" line per link, and a
// blank separator.
func FormatSection(w io.Writer, r Rendered) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", SectionBanner, r.Heading); err != nil {
		return err
	}
	for _, wc := range r.Words {
		if _, err := fmt.Fprintf(w, "%s - %d\n", wc.Word, wc.Count); err != nil {
			return err
		}
	}
	for _, l := range r.Links {
		if _, err := fmt.Fprintf(w, "%s - %s\n", l.Key, l.URL); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\n\n")
	return err
}

// TextWriter writes the plain console report.
type TextWriter struct{}

// NewTextWriter creates a new TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

// WritePage writes the page title, a blank line, and every section.
func (tw *TextWriter) WritePage(w io.Writer, page *Page, words, links Limit) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", page.Title); err != nil {
		return err
	}
	for _, s := range page.Sections {
		if err := FormatSection(w, Render(s, words, links)); err != nil {
			return err
		}
	}
	return nil
}

// JSONWriter writes the page aggregate as JSON.
// Limits apply to the exported lists the same way they apply to text output.
type JSONWriter struct {
	indent string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(indent string) JSONWriterOption {
	return func(jw *JSONWriter) {
		jw.indent = indent
	}
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(opts ...JSONWriterOption) *JSONWriter {
	jw := &JSONWriter{}
	for _, opt := range opts {
		opt(jw)
	}
	return jw
}

// WritePage encodes the page summary to w.
func (jw *JSONWriter) WritePage(w io.Writer, page *Page, words, links Limit) error {
	summary := page.Summary()
	for i := range summary.Sections {
		summary.Sections[i].Words = Truncate(summary.Sections[i].Words, words)
		summary.Sections[i].Hyperlinks = Truncate(summary.Sections[i].Hyperlinks, links)
	}

	enc := json.NewEncoder(w)
	if jw.indent != "" {
		enc.SetIndent("", jw.indent)
	}
	return enc.Encode(summary)
}
