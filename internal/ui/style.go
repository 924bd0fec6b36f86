package ui

import (
	"strconv"
	"strings"
)

// Decl is a single CSS property declaration.
type Decl struct {
	Property string
	Value    string
}

// Style is an ordered style record. Declarations keep call-site order; setting
// a property that already exists replaces its value in place.
type Style []Decl

// S builds a Style from alternating property/value pairs. A trailing property
// without a value is ignored.
func S(pairs ...string) Style {
	var s Style
	for i := 0; i+1 < len(pairs); i += 2 {
		s = s.Set(pairs[i], pairs[i+1])
	}
	return s
}

// Set returns a copy of s with property set to value.
func (s Style) Set(property, value string) Style {
	property = strings.TrimSpace(property)
	if property == "" {
		return s
	}
	out := make(Style, len(s), len(s)+1)
	copy(out, s)
	for i := range out {
		if out[i].Property == property {
			out[i].Value = value
			return out
		}
	}
	return append(out, Decl{Property: property, Value: value})
}

// Merge returns a copy of s with every declaration of other applied in order.
func (s Style) Merge(other Style) Style {
	out := s
	for _, d := range other {
		out = out.Set(d.Property, d.Value)
	}
	return out
}

// Get returns the value of property, if set.
func (s Style) Get(property string) (string, bool) {
	for _, d := range s {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Has reports whether property is declared.
func (s Style) Has(property string) bool {
	_, ok := s.Get(property)
	return ok
}

// String renders the record as a CSS declaration list ("a:b;c:d").
func (s Style) String() string {
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
	}
	return b.String()
}

// Breakpoint is one row of a breakpoint table: the value applies from
// MinWidth upwards.
type Breakpoint struct {
	MinWidth string
	Value    string
}

// Breakpoints is an ordered mapping from viewport-width threshold to value.
type Breakpoints []Breakpoint

// BP builds a breakpoint table from alternating threshold/value pairs, e.g.
// BP("0px", "none", "768px", "flex").
func BP(pairs ...string) Breakpoints {
	var out Breakpoints
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Breakpoint{MinWidth: pairs[i], Value: pairs[i+1]})
	}
	return out
}

// Tier is a style override record that applies from MinWidth upwards.
type Tier struct {
	MinWidth string
	Style    Style
}

// IsBase reports whether the tier applies unconditionally.
func (t Tier) IsBase() bool {
	px, ok := Pixels(t.MinWidth)
	return ok && px == 0
}

// Valid reports whether the tier's threshold is a pixel width. Tiers with any
// other threshold ("48em", "wide", "") are not rendered.
func (t Tier) Valid() bool {
	_, ok := Pixels(t.MinWidth)
	return ok
}

// Pixels parses a width threshold such as "768px" or "0". Other units,
// negative and malformed values are rejected.
func Pixels(width string) (int, bool) {
	w := strings.TrimSpace(width)
	w = strings.TrimSuffix(w, "px")
	if w == "" {
		return 0, false
	}
	n, err := strconv.Atoi(w)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func thresholdKey(width string) string {
	if px, ok := Pixels(width); ok {
		return strconv.Itoa(px)
	}
	return strings.TrimSpace(width)
}

// mergeTiers folds add into tiers, combining declarations that share a
// threshold and keeping first-seen threshold order.
func mergeTiers(tiers []Tier, add ...Tier) []Tier {
	out := make([]Tier, len(tiers), len(tiers)+len(add))
	copy(out, tiers)
	for _, t := range add {
		merged := false
		for i := range out {
			if thresholdKey(out[i].MinWidth) == thresholdKey(t.MinWidth) {
				out[i].Style = out[i].Style.Merge(t.Style)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, Tier{MinWidth: t.MinWidth, Style: t.Style.Merge(nil)})
		}
	}
	return out
}
