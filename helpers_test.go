package wikisect_test

import (
	"iter"
	"slices"

	"github.com/fwojciec/wikisect"
	"github.com/fwojciec/wikisect/mock"
)

// element returns a node with no relatives. Attributes are given as
// alternating key/value pairs.
func element(name, text string, attrs ...string) *mock.Node {
	attrMap := make(map[string]string)
	for i := 0; i+1 < len(attrs); i += 2 {
		attrMap[attrs[i]] = attrs[i+1]
	}
	return &mock.Node{
		NameFn: func() string { return name },
		TextFn: func() string { return text },
		AttrFn: func(key string) (string, bool) {
			v, ok := attrMap[key]
			return v, ok
		},
		FollowingSiblingsFn: func() []wikisect.Node { return nil },
		FollowingNodesFn:    func(...string) iter.Seq[wikisect.Node] { return slices.Values([]wikisect.Node(nil)) },
	}
}

// flatDoc lays nodes out as siblings of a single parent, the way article
// bodies are laid out, and wires their navigation accordingly.
func flatDoc(title string, nodes ...*mock.Node) *mock.Document {
	for i, n := range nodes {
		rest := nodes[i+1:]
		n.FollowingSiblingsFn = func() []wikisect.Node {
			return asNodes(rest)
		}
		n.FollowingNodesFn = func(names ...string) iter.Seq[wikisect.Node] {
			return slices.Values(filter(rest, names))
		}
	}
	return &mock.Document{
		TitleFn: func() string { return title },
		DescendantsFn: func(names ...string) []wikisect.Node {
			return filter(nodes, names)
		},
	}
}

func asNodes(nodes []*mock.Node) []wikisect.Node {
	out := make([]wikisect.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	return out
}

func filter(nodes []*mock.Node, names []string) []wikisect.Node {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[name] = true
	}
	var out []wikisect.Node
	for _, n := range nodes {
		if want[n.Name()] {
			out = append(out, n)
		}
	}
	return out
}
