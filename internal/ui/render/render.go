// Package render turns ui.Node trees into HTML.
//
// Static styles are emitted inline. Hover records and breakpoint tables cannot
// be expressed inline, so they become generated classes collected into a Sheet
// that the document shell places in <head>.
package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/holistic-man/pagina-guia/internal/seo"
	"github.com/holistic-man/pagina-guia/internal/ui"
)

const (
	defaultTitle    = "ServicePro"
	defaultLanguage = "es"
)

// Options describes the document shell.
type Options struct {
	Title       string
	Description string
	Language    string

	// Canonical is the absolute URL the page is published under.
	Canonical string
	OpenGraph seo.OpenGraph

	// StructuredData entries are emitted as JSON-LD scripts in order.
	StructuredData []any
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Title) == "" {
		o.Title = defaultTitle
	}
	if strings.TrimSpace(o.Language) == "" {
		o.Language = defaultLanguage
	}
	return o
}

// Fragment converts n into gomponents nodes, returning the generated sheet
// alongside.
func Fragment(n ui.Node) (g.Node, *Sheet) {
	sheet := newSheet()
	return convert(n, sheet), sheet
}

func convert(n ui.Node, sheet *Sheet) g.Node {
	switch n.Kind {
	case ui.KindText:
		return g.Text(n.Text)
	case ui.KindFragment:
		return g.Group(convertAll(n.Children, sheet))
	}

	parts := make([]g.Node, 0, len(n.Attrs)+len(n.Children)+3)
	for _, a := range n.Attrs {
		parts = append(parts, g.Attr(a.Name, a.Value))
	}
	classes := append(append([]string(nil), n.Classes...), sheet.classesFor(n)...)
	if len(classes) > 0 {
		parts = append(parts, h.Class(strings.Join(classes, " ")))
	}
	if len(n.Style) > 0 {
		parts = append(parts, g.Attr("style", n.Style.String()))
	}
	if n.Raw != "" {
		parts = append(parts, g.Raw(n.Raw))
	}
	parts = append(parts, convertAll(n.Children, sheet)...)
	return g.El(string(n.Kind), parts...)
}

func convertAll(children []ui.Node, sheet *Sheet) []g.Node {
	out := make([]g.Node, 0, len(children))
	for _, c := range children {
		out = append(out, convert(c, sheet))
	}
	return out
}

// splitHead separates the top-level link and style nodes of a fragment, which
// belong in <head>, from the layout.
func splitHead(n ui.Node) (head, body []ui.Node) {
	if n.Kind != ui.KindFragment {
		return nil, []ui.Node{n}
	}
	for _, c := range n.Children {
		switch c.Kind {
		case ui.KindLink, ui.KindStyle:
			head = append(head, c)
		default:
			body = append(body, c)
		}
	}
	return head, body
}

// Document wraps n in an HTML5 shell.
func Document(n ui.Node, opts Options) g.Node {
	opts = opts.withDefaults()
	headNodes, bodyNodes := splitHead(n)

	sheet := newSheet()
	head := convertAll(headNodes, sheet)
	body := convertAll(bodyNodes, sheet)

	meta := []g.Node{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(opts.Title)),
	}
	if opts.Description != "" {
		meta = append(meta, h.Meta(h.Name("description"), h.Content(opts.Description)))
	}
	if opts.Canonical != "" {
		meta = append(meta, h.Link(h.Rel("canonical"), h.Href(opts.Canonical)))
	}
	for _, p := range opts.OpenGraph.Properties(opts.Title, opts.Description) {
		meta = append(meta, h.Meta(g.Attr("property", p.Name), h.Content(p.Content)))
	}
	for _, v := range opts.StructuredData {
		if payload := seo.JSON(v); payload != "" {
			meta = append(meta, h.Script(h.Type("application/ld+json"), g.Raw(payload)))
		}
	}
	head = append(meta, head...)
	if sheet.Len() > 0 {
		head = append(head, g.El("style", g.Attr("data-generated", "landing"), g.Raw(sheet.String())))
	}

	return h.Doctype(
		h.HTML(h.Lang(opts.Language),
			h.Head(head...),
			h.Body(body...),
		),
	)
}

// HTML renders n as a complete document.
func HTML(n ui.Node, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Document(n, opts).Render(&buf); err != nil {
		return nil, fmt.Errorf("render document: %w", err)
	}
	return buf.Bytes(), nil
}

// Component adapts the document for templ handlers and layouts.
func Component(n ui.Node, opts Options) templ.Component {
	doc := Document(n, opts)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return doc.Render(w)
	})
}

// Static wraps an already rendered document so handlers write the same bytes
// on every request without rendering again.
func Static(body []byte) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := w.Write(body)
		return err
	})
}
