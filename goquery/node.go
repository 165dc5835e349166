package goquery

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikisect"
	"golang.org/x/net/html"
)

// Ensure Node implements wikisect.Node at compile time.
var _ wikisect.Node = (*Node)(nil)

// Node wraps a single element of a parsed document.
type Node struct {
	n   *html.Node
	sel *goquery.Selection
}

func newNode(n *html.Node) *Node {
	return &Node{n: n, sel: goquery.NewDocumentFromNode(n).Selection}
}

// Name returns the element's tag name.
func (nd *Node) Name() string {
	return nd.n.Data
}

// Text returns the combined text of the element and its descendants.
func (nd *Node) Text() string {
	return nd.sel.Text()
}

// Attr returns the named attribute.
func (nd *Node) Attr(name string) (string, bool) {
	return nd.sel.Attr(name)
}

// FollowingSiblings returns the element siblings after the node.
//
// Newer MediaWiki skins wrap each heading in <div class="mw-heading">. For a
// heading inside such a wrapper the wrapper's siblings are returned, and
// wrappers met along the way are replaced by the heading they hold, so the
// section boundaries match the flat layout.
func (nd *Node) FollowingSiblings() []wikisect.Node {
	start := nd.n
	if isHeadingElement(start) && isHeadingWrapper(start.Parent) {
		start = start.Parent
	}

	var nodes []wikisect.Node
	for s := start.NextSibling; s != nil; s = s.NextSibling {
		if s.Type != html.ElementNode {
			continue
		}
		if h := wrappedHeading(s); h != nil {
			nodes = append(nodes, newNode(h))
			continue
		}
		nodes = append(nodes, newNode(s))
	}
	return nodes
}

// FollowingNodes yields the elements named in names that come after the
// node's start tag, in document order. Nodes are wrapped one at a time as
// the consumer pulls them.
func (nd *Node) FollowingNodes(names ...string) iter.Seq[wikisect.Node] {
	want := nameSet(names)
	return func(yield func(wikisect.Node) bool) {
		for n := nextInTree(nd.n, nil); n != nil; n = nextInTree(n, nil) {
			if n.Type != html.ElementNode || !want[n.Data] {
				continue
			}
			if !yield(newNode(n)) {
				return
			}
		}
	}
}

func isHeadingElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && wikisect.IsHeading(n.Data)
}

func isHeadingWrapper(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || n.Data != "div" {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, class := range strings.Fields(a.Val) {
				if class == "mw-heading" {
					return true
				}
			}
		}
	}
	return false
}

func wrappedHeading(n *html.Node) *html.Node {
	if !isHeadingWrapper(n) {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isHeadingElement(c) {
			return c
		}
	}
	return nil
}
