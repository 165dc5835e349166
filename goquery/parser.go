// Package goquery implements wikisect.Parser on top of goquery and the
// golang.org/x/net/html node tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikisect"
	"golang.org/x/net/html"
)

// Ensure Parser implements wikisect.Parser at compile time.
var _ wikisect.Parser = (*Parser)(nil)

// Parser parses raw markup into a navigable Document.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a Document from html.
func (p *Parser) Parse(markup string) (wikisect.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, wikisect.Errorf(wikisect.EMALFORMED, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Ensure Document implements wikisect.Document at compile time.
var _ wikisect.Document = (*Document)(nil)

// Document wraps a parsed goquery document.
type Document struct {
	doc *goquery.Document
}

// Title returns the trimmed text of the first <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Descendants returns every element named in names, in document order.
func (d *Document) Descendants(names ...string) []wikisect.Node {
	want := nameSet(names)
	var nodes []wikisect.Node
	for _, root := range d.doc.Nodes {
		for n := root.FirstChild; n != nil; n = nextInTree(n, root) {
			if n.Type == html.ElementNode && want[n.Data] {
				nodes = append(nodes, newNode(n))
			}
		}
	}
	return nodes
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = true
	}
	return set
}

// nextInTree returns the node after n in document order, staying inside
// root. A nil root walks to the end of the document.
func nextInTree(n, root *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil && n != root; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}
