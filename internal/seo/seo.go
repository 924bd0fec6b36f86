// Package seo builds the head metadata and schema.org payloads that describe
// the landing page to crawlers.
package seo

import (
	"encoding/json"
	"strings"
)

// OpenGraph carries the og:* properties.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
}

// IsZero reports whether no property is set.
func (o OpenGraph) IsZero() bool {
	return o == OpenGraph{}
}

// Property is a single <meta property=… content=…> pair.
type Property struct {
	Name    string
	Content string
}

// Properties returns the non-empty og:* pairs in a stable order. Title and
// description fall back to the document's own values.
func (o OpenGraph) Properties(title, description string) []Property {
	if o.IsZero() {
		return nil
	}
	if strings.TrimSpace(o.Title) == "" {
		o.Title = title
	}
	if strings.TrimSpace(o.Description) == "" {
		o.Description = description
	}
	if strings.TrimSpace(o.Type) == "" {
		o.Type = "website"
	}

	candidates := []Property{
		{Name: "og:type", Content: o.Type},
		{Name: "og:title", Content: o.Title},
		{Name: "og:description", Content: o.Description},
		{Name: "og:url", Content: o.URL},
		{Name: "og:image", Content: o.Image},
	}
	out := make([]Property, 0, len(candidates))
	for _, p := range candidates {
		if strings.TrimSpace(p.Content) != "" {
			out = append(out, p)
		}
	}
	return out
}

// JSON marshals v to a compact JSON string. It returns an empty string on error.
// The encoder escapes <, > and &, so the result is safe inside a script element.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
