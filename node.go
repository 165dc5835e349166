package wikisect

import "iter"

// Node is a single element in a parsed page.
// Elements are distinguished by tag name ("h1".."h8", "a", "p", ...).
type Node interface {
	// Name returns the lowercase tag name.
	Name() string

	// Text returns the concatenated text content of the node and its descendants.
	Text() string

	// Attr returns the value of the named attribute and whether it is present.
	Attr(name string) (string, bool)

	// FollowingSiblings returns the element siblings after the node, in order.
	FollowingSiblings() []Node

	// FollowingNodes yields every element after the node's start tag in
	// document order (its own descendants first) whose name is in names.
	// The walk advances only as far as the consumer pulls.
	FollowingNodes(names ...string) iter.Seq[Node]
}

// Document is a navigable tree of nodes built from raw page markup.
type Document interface {
	// Title returns the page title, or an empty string if the page has none.
	Title() string

	// Descendants returns every element whose name is in names, in document order.
	Descendants(names ...string) []Node
}

// Parser builds a Document from raw markup.
type Parser interface {
	// Parse returns EMALFORMED if the markup cannot be turned into a tree.
	Parse(html string) (Document, error)
}
