package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/holistic-man/pagina-guia/internal/ui"
)

const classPrefix = "sp-"

type rule struct {
	selector string
	body     string
}

// Sheet collects the hover and responsive rules generated while rendering a
// tree. Class names are derived from rule content, so equal rules collapse
// into one class.
type Sheet struct {
	seen  map[string]struct{}
	base  []rule
	hover []rule
	media map[int][]rule
}

func newSheet() *Sheet {
	return &Sheet{
		seen:  map[string]struct{}{},
		media: map[int][]rule{},
	}
}

// Len reports how many generated classes the sheet holds.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.seen)
}

// classesFor registers the rules of n and returns the generated class names.
func (s *Sheet) classesFor(n ui.Node) []string {
	var out []string
	if len(n.Hover) > 0 {
		body := declarations(n.Hover, n.Style)
		name := className("hover", body)
		if s.add(name) {
			s.hover = append(s.hover, rule{selector: "." + name + ":hover", body: body})
		}
		out = append(out, name)
	}
	if tiers := validTiers(n.Responsive); len(tiers) > 0 {
		name := className("responsive", tiersKey(tiers, n.Style))
		if s.add(name) {
			for _, t := range tiers {
				r := rule{selector: "." + name, body: declarations(t.Style, n.Style)}
				if t.IsBase() {
					s.base = append(s.base, r)
					continue
				}
				px, _ := ui.Pixels(t.MinWidth)
				s.media[px] = append(s.media[px], r)
			}
		}
		out = append(out, name)
	}
	return out
}

func (s *Sheet) add(name string) bool {
	if _, ok := s.seen[name]; ok {
		return false
	}
	s.seen[name] = struct{}{}
	return true
}

// String renders the sheet: unconditional rules, hover rules, then one media
// block per threshold in ascending width order.
func (s *Sheet) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, r := range s.base {
		writeRule(&b, r)
	}
	for _, r := range s.hover {
		writeRule(&b, r)
	}
	widths := make([]int, 0, len(s.media))
	for px := range s.media {
		widths = append(widths, px)
	}
	sort.Ints(widths)
	for _, px := range widths {
		fmt.Fprintf(&b, "@media (min-width: %dpx){", px)
		for _, r := range s.media[px] {
			writeRule(&b, r)
		}
		b.WriteString("}")
	}
	return b.String()
}

func writeRule(b *strings.Builder, r rule) {
	b.WriteString(r.selector)
	b.WriteByte('{')
	b.WriteString(r.body)
	b.WriteByte('}')
}

// declarations renders decls, marking properties that the inline style also
// sets as important so the generated rule can override them.
func declarations(decls ui.Style, inline ui.Style) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
		if inline.Has(d.Property) {
			b.WriteString(" !important")
		}
	}
	return b.String()
}

// validTiers drops tiers whose threshold is not a pixel width.
func validTiers(tiers []ui.Tier) []ui.Tier {
	out := make([]ui.Tier, 0, len(tiers))
	for _, t := range tiers {
		if t.Valid() {
			out = append(out, t)
		}
	}
	return out
}

func tiersKey(tiers []ui.Tier, inline ui.Style) string {
	var b strings.Builder
	for _, t := range tiers {
		px, _ := ui.Pixels(t.MinWidth)
		fmt.Fprintf(&b, "%d{%s}", px, declarations(t.Style, inline))
	}
	return b.String()
}

func className(kind, body string) string {
	return fmt.Sprintf("%s%08x", classPrefix, uint32(xxhash.Sum64String(kind+"|"+body)))
}
