package wikisect

// Page is a fetched article split into sections.
type Page struct {
	Title     string
	SourceURL string
	Sections  []*Section
}

// Section is the content between one heading and the next.
type Section struct {
	Heading string
	Level   int
	Anchor  string

	// Words is ordered by descending count, ties in first-seen order.
	Words []WordCount

	// Links is ordered by discovery.
	Links []Link
}

// PageOptions controls how a Page is built from a Document.
type PageOptions struct {
	StopWords StopWordSet
	BaseURL   string
	Sentinel  string
	Strict    bool
}

// DefaultPageOptions returns options matching the source site with the
// builtin stop-word list.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		StopWords: DefaultStopWords(),
		BaseURL:   DefaultBaseURL,
		Sentinel:  DefaultSentinel,
	}
}

// NewPage partitions doc into sections and computes every section's ranked
// words and links.
func NewPage(doc Document, sourceURL string, opts PageOptions) *Page {
	var normOpts []NormalizerOption
	if opts.Strict {
		normOpts = append(normOpts, WithStrictDigits())
	}
	normalizer := NewNormalizer(opts.StopWords, normOpts...)

	bounds := FindSections(doc, opts.Sentinel)
	titles := make([]string, len(bounds))
	for i, b := range bounds {
		titles[i] = b.Title
	}
	anchors := assignAnchors(titles)

	page := &Page{
		Title:     doc.Title(),
		SourceURL: sourceURL,
		Sections:  make([]*Section, 0, len(bounds)),
	}
	for i, b := range bounds {
		page.Sections = append(page.Sections, &Section{
			Heading: b.Title,
			Level:   b.Level,
			Anchor:  anchors[i],
			Words:   Rank(b.Content, normalizer),
			Links:   ExtractLinks(b.Heading.FollowingNodes(LinkBoundaryNames...), opts.BaseURL),
		})
	}
	return page
}

// Rendered is a section with its words and links truncated for display.
type Rendered struct {
	Heading string
	Level   int
	Anchor  string
	Words   []WordCount
	Links   []Link
}

// Render truncates the section's words and links to the given limits.
// Truncation takes a prefix of the already ordered lists.
func Render(s *Section, words, links Limit) Rendered {
	return Rendered{
		Heading: s.Heading,
		Level:   s.Level,
		Anchor:  s.Anchor,
		Words:   Truncate(s.Words, words),
		Links:   Truncate(s.Links, links),
	}
}

// PageSummary is the whole-page aggregate for programmatic consumers.
type PageSummary struct {
	PageName      string           `json:"page_name"`
	PageHyperlink string           `json:"page_hyperlink"`
	Sections      []SectionSummary `json:"sections"`
}

// SectionSummary holds one heading's full words and links.
type SectionSummary struct {
	Heading    string      `json:"heading"`
	Level      int         `json:"level"`
	Words      []WordCount `json:"words"`
	Hyperlinks []Link      `json:"hyperlinks"`
}

// Summary builds the page aggregate. It is independent of any rendering.
func (p *Page) Summary() *PageSummary {
	summary := &PageSummary{
		PageName:      p.Title,
		PageHyperlink: p.SourceURL,
		Sections:      make([]SectionSummary, 0, len(p.Sections)),
	}
	for _, s := range p.Sections {
		words := s.Words
		if words == nil {
			words = []WordCount{}
		}
		links := s.Links
		if links == nil {
			links = []Link{}
		}
		summary.Sections = append(summary.Sections, SectionSummary{
			Heading:    s.Heading,
			Level:      s.Level,
			Words:      words,
			Hyperlinks: links,
		})
	}
	return summary
}

// ByHeading indexes sections by heading text. When headings repeat, the
// later section wins.
func (s *PageSummary) ByHeading() map[string]SectionSummary {
	m := make(map[string]SectionSummary, len(s.Sections))
	for _, sec := range s.Sections {
		m[sec.Heading] = sec
	}
	return m
}
