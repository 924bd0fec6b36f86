package landing

import "github.com/holistic-man/pagina-guia/internal/ui"

// HoverLink is a plain link that restyles on hover.
func HoverLink(hover ui.Style, href, label string) ui.Node {
	return ui.Link(href, ui.Text(label), ui.OnHover(hover))
}

// StyledButton is a pill-shaped call to action pointing at the contact section.
func StyledButton(hover ui.Style, background, foreground, label string) ui.Node {
	return ui.Link("#"+AnchorContact,
		ui.Text(label),
		ui.CSS("background-color", background),
		ui.CSS("transition-duration", "300ms"),
		ui.OnHover(hover),
		ui.CSS("padding-left", "1.5rem"),
		ui.CSS("padding-right", "1.5rem"),
		ui.CSS("padding-top", "0.75rem"),
		ui.CSS("padding-bottom", "0.75rem"),
		ui.CSS("border-radius", "9999px"),
		ui.CSS("color", foreground),
		ui.CSS("transition-property", transitionProperty),
		ui.CSS("transition-timing-function", "cubic-bezier(0.4, 0, 0.2, 1)"),
	)
}

// Overlay darkens a background image behind its siblings.
func Overlay() ui.Node {
	return ui.Box(
		ui.CSS("position", "absolute"),
		ui.CSS("background-color", ColorBlack),
		ui.CSS("top", "0"),
		ui.CSS("right", "0"),
		ui.CSS("bottom", "0"),
		ui.CSS("left", "0"),
		ui.CSS("opacity", "0.5"),
	)
}

// SectionHeading is the centered h2 opening each section.
func SectionHeading(marginBottom, text string) ui.Node {
	return ui.Heading(2,
		ui.Text(text),
		ui.CSS("font-weight", "700"),
		ui.CSS("margin-bottom", marginBottom),
		ui.CSS("font-size", "1.875rem"),
		ui.CSS("line-height", "2.25rem"),
		ui.CSS("text-align", "center"),
	)
}

// CustomHeading is a semibold heading at an explicit level and size.
func CustomHeading(level int, fontSize, marginBottom, text string) ui.Node {
	return ui.Heading(level,
		ui.Text(text),
		ui.CSS("font-weight", "600"),
		ui.CSS("margin-bottom", marginBottom),
		ui.CSS("font-size", fontSize),
		ui.CSS("line-height", "1.75rem"),
	)
}

// Text is a paragraph of body copy.
func Text(content string) ui.Node {
	return ui.Paragraph(ui.Text(content))
}

// FeatureIcon is the large icon heading a feature card.
func FeatureIcon(alt, name string) ui.Node {
	return ui.Icon(name, alt,
		ui.CSS("height", "3rem"),
		ui.CSS("margin-bottom", "1rem"),
		ui.CSS("width", "3rem"),
	)
}

// SmallIcon precedes a line of contact text.
func SmallIcon(alt, name string) ui.Node {
	return ui.Icon(name, alt,
		ui.CSS("height", "1.25rem"),
		ui.CSS("margin-right", "0.5rem"),
		ui.CSS("width", "1.25rem"),
	)
}

// MediumIcon is used for social links.
func MediumIcon(alt, name string) ui.Node {
	return ui.Icon(name, alt,
		ui.CSS("height", "1.5rem"),
		ui.CSS("width", "1.5rem"),
	)
}

// FeatureBox is a service card.
func FeatureBox(s Service) ui.Node {
	return ui.Box(
		FeatureIcon(s.IconAlt, s.Icon),
		CustomHeading(3, "1.25rem", "0.5rem", s.Title),
		Text(s.Description),
		ui.CSS("background-color", ColorGray100),
		ui.CSS("padding", "1.5rem"),
		ui.CSS("border-radius", "0.5rem"),
	)
}

// StepCircle shows a process step number.
func StepCircle(number string) ui.Node {
	return ui.Flex(
		ui.Text(number),
		ui.CSS("background-color", ColorBrand),
		ui.CSS("height", "4rem"),
		ui.CSS("align-items", "center"),
		ui.CSS("justify-content", "center"),
		ui.CSS("margin-bottom", "1.5rem"),
		ui.CSS("margin-left", "auto"),
		ui.CSS("margin-right", "auto"),
		ui.CSS("border-radius", "9999px"),
		ui.CSS("color", ColorWhite),
		ui.CSS("width", "4rem"),
	)
}

// ProcessStep is one card of the process row.
func ProcessStep(s Step) ui.Node {
	return ui.Box(
		StepCircle(s.Number),
		CustomHeading(3, "1.25rem", "1rem", s.Title),
		Text(s.Description),
		ui.CSS("background-color", ColorWhite),
		ui.CSS("padding", "2rem"),
		ui.CSS("border-radius", "0.5rem"),
		ui.CSS("box-shadow", shadowCard),
		ui.CSS("text-align", "center"),
		ui.Responsive("width", bpColumnWidth),
	)
}

// IconText is a centered icon followed by a line of text.
func IconText(c Channel) ui.Node {
	return ui.Paragraph(
		SmallIcon(c.IconAlt, c.Icon),
		ui.Span(ui.Text(c.Value)),
		ui.CSS("display", "flex"),
		ui.CSS("align-items", "center"),
		ui.CSS("justify-content", "center"),
		ui.CSS("margin-bottom", "0.5rem"),
	)
}

// SocialLink is an icon-only link to a social profile.
func SocialLink(hover ui.Style, s Social) ui.Node {
	return ui.Link("#",
		MediumIcon(s.Name, s.Icon),
		ui.OnHover(hover),
	)
}

// SocialRow lays out one link per network.
func SocialRow(hover ui.Style, parts ...ui.Part) ui.Node {
	items := []ui.Part{
		ui.CSS("column-gap", "1rem"),
	}
	for _, s := range Socials() {
		items = append(items, SocialLink(hover, s))
	}
	return ui.Flex(append(items, parts...)...)
}

// NavItem is a list entry holding a footer link.
func NavItem(a Anchor) ui.Node {
	return ui.ListItem(
		HoverLink(ui.S("color", ColorBrandLight), a.Href(), a.Label),
	)
}

// Container centers its content and caps its width per breakpoint.
func Container(parts ...ui.Part) ui.Node {
	base := []ui.Part{
		ui.CSS("width", "100%"),
		containerLadder(),
		ui.CSS("margin-left", "auto"),
		ui.CSS("margin-right", "auto"),
		ui.CSS("padding-left", "1.5rem"),
		ui.CSS("padding-right", "1.5rem"),
	}
	return ui.Box(append(base, parts...)...)
}
