// Package scrape coordinates fetching, parsing, and sectioning of a single
// article page.
package scrape

import (
	"context"

	"github.com/fwojciec/wikisect"
)

// Scraper turns a URL into a fully sectioned Page.
type Scraper struct {
	Fetcher wikisect.Fetcher
	Parser  wikisect.Parser
	Options wikisect.PageOptions
}

// Scrape fetches url, parses it, and builds the page. On any failure no
// Page is returned; the error carries the failure's code.
func (s *Scraper) Scrape(ctx context.Context, url string) (*wikisect.Page, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := s.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	return wikisect.NewPage(doc, url, s.Options), nil
}
