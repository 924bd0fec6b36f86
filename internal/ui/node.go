// Package ui models a page as an immutable tree of styled nodes.
//
// Builders in this package are pure: they take literal parameters and return a
// Node value. Rendering to HTML lives in the render subpackage.
package ui

// Kind identifies the element a node renders as.
type Kind string

const (
	KindFragment Kind = "#fragment"
	KindText     Kind = "#text"

	KindDiv   Kind = "div"
	KindP     Kind = "p"
	KindSpan  Kind = "span"
	KindA     Kind = "a"
	KindH1    Kind = "h1"
	KindH2    Kind = "h2"
	KindH3    Kind = "h3"
	KindH4    Kind = "h4"
	KindUl    Kind = "ul"
	KindLi    Kind = "li"
	KindSvg   Kind = "svg"
	KindLink  Kind = "link"
	KindStyle Kind = "style"
)

// Attr is a single markup attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of the output tree. Nodes are values: builders copy
// everything they are given, and nothing in this module mutates a Node after
// construction.
type Node struct {
	Kind       Kind
	Attrs      []Attr
	Classes    []string
	Style      Style
	Hover      Style
	Responsive []Tier
	// Text is the escaped content of a KindText node.
	Text string
	// Raw is emitted verbatim as the element body. Only style blocks use it.
	Raw      string
	Children []Node
}

// Part configures a node under construction. Nodes are parts too: passing a
// Node to a builder appends it as a child.
type Part interface {
	apply(*Node)
}

type partFunc func(*Node)

func (f partFunc) apply(n *Node) { f(n) }

func (n Node) apply(parent *Node) {
	parent.Children = append(parent.Children, n)
}

// Attribute returns the value of the named attribute.
func (n Node) Attribute(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// ID returns the id attribute, or "".
func (n Node) ID() string {
	v, _ := n.Attribute("id")
	return v
}

// TextContent concatenates the text of n and all its descendants.
func (n Node) TextContent() string {
	if n.Kind == KindText {
		return n.Text
	}
	var out string
	for _, c := range n.Children {
		out += c.TextContent()
	}
	return out
}

// Walk visits n and its descendants depth-first in document order. Returning
// false from fn skips the children of the visited node.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns every node in the tree (n included) matching pred, in document
// order.
func (n Node) Find(pred func(Node) bool) []Node {
	var out []Node
	n.Walk(func(c Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

func build(kind Kind, parts []Part) Node {
	n := Node{Kind: kind}
	for _, p := range parts {
		if p == nil {
			continue
		}
		p.apply(&n)
	}
	return n
}
