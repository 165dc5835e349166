package mock

import (
	"iter"

	"github.com/fwojciec/wikisect"
)

// Compile-time interface verification.
var (
	_ wikisect.Parser   = (*Parser)(nil)
	_ wikisect.Document = (*Document)(nil)
	_ wikisect.Node     = (*Node)(nil)
)

// Parser is a mock implementation of wikisect.Parser.
type Parser struct {
	ParseFn func(html string) (wikisect.Document, error)
}

func (p *Parser) Parse(html string) (wikisect.Document, error) {
	return p.ParseFn(html)
}

// Document is a mock implementation of wikisect.Document.
type Document struct {
	TitleFn       func() string
	DescendantsFn func(names ...string) []wikisect.Node
}

func (d *Document) Title() string {
	return d.TitleFn()
}

func (d *Document) Descendants(names ...string) []wikisect.Node {
	return d.DescendantsFn(names...)
}

// Node is a mock implementation of wikisect.Node.
type Node struct {
	NameFn              func() string
	TextFn              func() string
	AttrFn              func(name string) (string, bool)
	FollowingSiblingsFn func() []wikisect.Node
	FollowingNodesFn    func(names ...string) iter.Seq[wikisect.Node]
}

func (n *Node) Name() string {
	return n.NameFn()
}

func (n *Node) Text() string {
	return n.TextFn()
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) FollowingSiblings() []wikisect.Node {
	return n.FollowingSiblingsFn()
}

func (n *Node) FollowingNodes(names ...string) iter.Seq[wikisect.Node] {
	return n.FollowingNodesFn(names...)
}
