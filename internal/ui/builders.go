package ui

import "strings"

// Text returns a text node. The renderer escapes its content.
func Text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// ID sets the id attribute.
func ID(v string) Part { return AttrPart("id", v) }

// Href sets the href attribute.
func Href(v string) Part { return AttrPart("href", v) }

// AttrPart sets an arbitrary attribute, replacing an earlier value of the same
// name.
func AttrPart(name, value string) Part {
	return partFunc(func(n *Node) {
		for i := range n.Attrs {
			if n.Attrs[i].Name == name {
				n.Attrs[i].Value = value
				return
			}
		}
		n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	})
}

// Class adds utility class names.
func Class(names ...string) Part {
	return partFunc(func(n *Node) {
		for _, name := range names {
			for _, f := range strings.Fields(name) {
				n.Classes = append(n.Classes, f)
			}
		}
	})
}

// CSS sets one inline style property.
func CSS(property, value string) Part {
	return partFunc(func(n *Node) {
		n.Style = n.Style.Set(property, value)
	})
}

// Styled merges a style record into the inline style.
func Styled(s Style) Part {
	return partFunc(func(n *Node) {
		n.Style = n.Style.Merge(s)
	})
}

// OnHover merges a style record applied while the pointer is over the node.
func OnHover(s Style) Part {
	return partFunc(func(n *Node) {
		n.Hover = n.Hover.Merge(s)
	})
}

// Responsive binds a breakpoint table to one property.
func Responsive(property string, bp Breakpoints) Part {
	return partFunc(func(n *Node) {
		tiers := make([]Tier, 0, len(bp))
		for _, b := range bp {
			tiers = append(tiers, Tier{MinWidth: b.MinWidth, Style: S(property, b.Value)})
		}
		n.Responsive = mergeTiers(n.Responsive, tiers...)
	})
}

// ResponsiveStyle binds style override records to width thresholds.
func ResponsiveStyle(tiers ...Tier) Part {
	return partFunc(func(n *Node) {
		n.Responsive = mergeTiers(n.Responsive, tiers...)
	})
}

// Group bundles several parts so they can be passed around as one.
func Group(parts ...Part) Part {
	return partFunc(func(n *Node) {
		for _, p := range parts {
			if p != nil {
				p.apply(n)
			}
		}
	})
}

// Fragment groups children without introducing an element.
func Fragment(children ...Node) Node {
	n := Node{Kind: KindFragment}
	n.Children = append(n.Children, children...)
	return n
}

// Box is a generic block container.
func Box(parts ...Part) Node { return build(KindDiv, parts) }

// Flex is a block container laid out with flexbox.
func Flex(parts ...Part) Node {
	return build(KindDiv, append([]Part{CSS("display", "flex")}, parts...))
}

// Grid is a block container laid out with CSS grid.
func Grid(parts ...Part) Node {
	return build(KindDiv, append([]Part{CSS("display", "grid")}, parts...))
}

// Heading renders an h1..h4 element; other levels fall back to h2.
func Heading(level int, parts ...Part) Node {
	kind := KindH2
	switch level {
	case 1:
		kind = KindH1
	case 3:
		kind = KindH3
	case 4:
		kind = KindH4
	}
	return build(kind, parts)
}

// Paragraph is a block of running text.
func Paragraph(parts ...Part) Node { return build(KindP, parts) }

// Span is an inline text run.
func Span(parts ...Part) Node { return build(KindSpan, parts) }

// Link is a hyperlink.
func Link(href string, parts ...Part) Node {
	return build(KindA, append([]Part{Href(href)}, parts...))
}

// List is an unordered list.
func List(parts ...Part) Node { return build(KindUl, parts) }

// ListItem is one entry of a List.
func ListItem(parts ...Part) Node { return build(KindLi, parts) }

// Icon renders a Lucide icon as inline SVG that inherits the text color. name
// is the icon tag (e.g. "bar-chart"); alt labels it. Unknown names draw a
// plain circle.
func Icon(name, alt string, parts ...Part) Node {
	base := []Part{
		Class("icon", "icon-"+name),
		AttrPart("data-icon", name),
		AttrPart("aria-label", alt),
		AttrPart("role", "img"),
		AttrPart("xmlns", "http://www.w3.org/2000/svg"),
		AttrPart("viewBox", "0 0 24 24"),
		AttrPart("fill", "none"),
		AttrPart("stroke", "currentColor"),
		AttrPart("stroke-width", "2"),
		AttrPart("stroke-linecap", "round"),
		AttrPart("stroke-linejoin", "round"),
		CSS("display", "inline-block"),
		CSS("flex-shrink", "0"),
	}
	n := build(KindSvg, append(base, parts...))
	glyph, ok := Glyph(name)
	if !ok {
		glyph = fallbackGlyph
	}
	n.Raw = glyph
	return n
}

// StylesheetLink references an external stylesheet.
func StylesheetLink(href string) Node {
	return build(KindLink, []Part{AttrPart("rel", "stylesheet"), Href(href)})
}

// StyleBlock embeds a literal CSS block.
func StyleBlock(css string) Node {
	return Node{Kind: KindStyle, Raw: css}
}
