package landing

import "github.com/holistic-man/pagina-guia/internal/ui"

// Header holds the brand link and the desktop navigation.
func Header() ui.Node {
	nav := []ui.Part{
		ui.Responsive("display", bpHidden),
		ui.CSS("column-gap", "1.5rem"),
	}
	for _, a := range Anchors() {
		nav = append(nav, HoverLink(ui.S("color", ColorBrand), a.Href(), a.Label))
	}
	return ui.Flex(
		ui.Link("#",
			ui.Text(BrandName),
			ui.CSS("font-weight", "700"),
			ui.CSS("font-size", "1.5rem"),
			ui.CSS("line-height", "2rem"),
			ui.CSS("color", ColorBrand),
		),
		ui.Box(nav...),
		ui.CSS("align-items", "center"),
		ui.CSS("justify-content", "space-between"),
	)
}

// StickyHeader pins the header to the top of the viewport.
func StickyHeader() ui.Node {
	return ui.Box(
		Container(
			Header(),
			ui.CSS("padding-top", "0.75rem"),
			ui.CSS("padding-bottom", "0.75rem"),
		),
		ui.CSS("background-color", ColorWhite),
		ui.CSS("box-shadow", shadowHeader),
		ui.CSS("position", "sticky"),
		ui.CSS("top", "0"),
		ui.CSS("width", "100%"),
		ui.CSS("z-index", "10"),
	)
}

// HeroContent is the headline block over the hero image.
func HeroContent() ui.Node {
	return ui.Box(
		ui.Heading(1,
			ui.Text(HeroTitle),
			ui.CSS("font-weight", "700"),
			ui.CSS("margin-bottom", "1rem"),
			ui.CSS("font-size", "3rem"),
			ui.CSS("line-height", "1"),
			ui.CSS("color", ColorWhite),
		),
		ui.Paragraph(
			ui.Text(Tagline),
			ui.CSS("margin-bottom", "2rem"),
			ui.CSS("color", ColorWhite),
			ui.CSS("font-size", "1.25rem"),
			ui.CSS("line-height", "1.75rem"),
		),
		StyledButton(ui.S("background-color", ColorBrandDark), ColorBrand, ColorWhite, HeroCTA),
		ui.CSS("position", "relative"),
		ui.CSS("text-align", "center"),
		ui.CSS("z-index", "10"),
	)
}

// HeroSection is the full-width welcome banner.
func HeroSection() ui.Node {
	return ui.Flex(
		Overlay(),
		HeroContent(),
		ui.Class("h-[50vh]"),
		ui.ID(AnchorWelcome),
		backgroundImage(HeroImageURL),
		ui.CSS("align-items", "center"),
		ui.CSS("justify-content", "center"),
		ui.CSS("position", "relative"),
		ui.CSS("min-height", "50vh"),
	)
}

// ServicesSection lists the service cards.
func ServicesSection() ui.Node {
	grid := []ui.Part{
		ui.CSS("gap", "2rem"),
		ui.Responsive("grid-template-columns", bpGridColumns),
	}
	for _, s := range Services() {
		grid = append(grid, FeatureBox(s))
	}
	return Container(
		SectionHeading("2rem", ServicesTitle),
		ui.Grid(grid...),
	)
}

// ProcessSection lists the process steps.
func ProcessSection() ui.Node {
	row := []ui.Part{
		ui.Responsive("flex-direction", bpDirection),
		ui.CSS("align-items", "center"),
		ui.CSS("justify-content", "space-between"),
		ui.Responsive("gap", bpStackGap),
		ui.Responsive("column-gap", bpRowGap),
	}
	for _, s := range Steps() {
		row = append(row, ProcessStep(s))
	}
	return Container(
		SectionHeading("3rem", ProcessTitle),
		ui.Flex(row...),
	)
}

// FollowUs is the social block of the contact section.
func FollowUs() ui.Node {
	return ui.Box(
		CustomHeading(4, "1.125rem", "0.5rem", FollowTitle),
		SocialRow(ui.S("color", ColorBrand), ui.CSS("justify-content", "center")),
		ui.CSS("margin-top", "1.5rem"),
	)
}

// ContactInfo lists the contact channels.
func ContactInfo() ui.Node {
	card := []ui.Part{
		CustomHeading(3, "1.25rem", "1rem", ContactSubtitle),
	}
	for _, c := range Channels() {
		card = append(card, IconText(c))
	}
	card = append(card, FollowUs(), ui.CSS("text-align", "center"))
	return ui.Flex(
		ui.Box(card...),
		ui.CSS("flex-direction", "column"),
		ui.CSS("align-items", "center"),
	)
}

// ContactSection is the contact band.
func ContactSection() ui.Node {
	return ui.Box(
		Container(
			SectionHeading("3rem", ContactTitle),
			ContactInfo(),
		),
		ui.ID(AnchorContact),
		sectionBand(ColorWhite),
	)
}

// CTASection is the closing call to action.
func CTASection() ui.Node {
	return Container(
		ui.Heading(2,
			ui.Text(CTATitle),
			ui.CSS("font-weight", "700"),
			ui.CSS("margin-bottom", "1rem"),
			ui.CSS("font-size", "1.875rem"),
			ui.CSS("line-height", "2.25rem"),
		),
		ui.Paragraph(
			ui.Text(CTASubtitle),
			ui.CSS("margin-bottom", "2rem"),
		),
		StyledButton(ui.S("background-color", ColorGray100), ColorWhite, ColorBrand, CTAButton),
		ui.CSS("position", "relative"),
		ui.CSS("text-align", "center"),
		ui.CSS("z-index", "10"),
	)
}

// MainContent stacks the hero and the body sections.
func MainContent() ui.Node {
	return ui.Box(
		HeroSection(),
		ui.Box(
			ServicesSection(),
			ui.ID(AnchorServices),
			sectionBand(ColorWhite),
		),
		ui.Box(
			ProcessSection(),
			ui.ID(AnchorProcess),
			sectionBand(ColorGray100),
		),
		ContactSection(),
		ui.Box(
			Overlay(),
			CTASection(),
			backgroundImage(HeroImageURL),
			ui.CSS("padding-top", "5rem"),
			ui.CSS("padding-bottom", "5rem"),
			ui.CSS("position", "relative"),
			ui.CSS("color", ColorWhite),
		),
	)
}

// FooterBranding repeats the brand and tagline.
func FooterBranding() ui.Node {
	return ui.Box(
		ui.Heading(3,
			ui.Text(BrandName),
			ui.CSS("font-weight", "700"),
			ui.CSS("margin-bottom", "0.5rem"),
			ui.CSS("font-size", "1.5rem"),
			ui.CSS("line-height", "2rem"),
		),
		Text(Tagline),
		ui.Responsive("margin-bottom", bpStackMargin),
		ui.Responsive("width", bpColumnWidth),
	)
}

// QuickLinks is the footer copy of the navigation.
func QuickLinks() ui.Node {
	items := make([]ui.Part, 0, len(Anchors()))
	for _, a := range Anchors() {
		items = append(items, NavItem(a))
	}
	return ui.Box(
		CustomHeading(4, "1.125rem", "1rem", QuickLinksTitle),
		ui.List(items...),
		ui.Responsive("margin-bottom", bpStackMargin),
		ui.Responsive("width", bpColumnWidth),
	)
}

// FooterContent is the three-column footer row.
func FooterContent() ui.Node {
	return ui.Flex(
		FooterBranding(),
		QuickLinks(),
		ui.Box(
			CustomHeading(4, "1.125rem", "1rem", FollowTitle),
			SocialRow(ui.S("color", ColorBrandLight)),
			ui.Responsive("width", bpColumnWidth),
		),
		ui.CSS("flex-wrap", "wrap"),
		ui.CSS("align-items", "center"),
		ui.CSS("justify-content", "space-between"),
	)
}

// Footer closes the page with the link columns and the copyright line.
func Footer() ui.Node {
	return Container(
		FooterContent(),
		ui.Box(
			Text(Copyright),
			ui.CSS("border-color", ColorGray700),
			ui.CSS("border-top-width", "1px"),
			ui.CSS("margin-top", "2rem"),
			ui.CSS("padding-top", "2rem"),
			ui.CSS("text-align", "center"),
		),
	)
}

// PageLayout is the body of the page: header, main content and footer.
func PageLayout() ui.Node {
	return ui.Box(
		StickyHeader(),
		MainContent(),
		ui.Box(
			Footer(),
			ui.CSS("background-color", ColorGray800),
			ui.CSS("padding-top", "2rem"),
			ui.CSS("padding-bottom", "2rem"),
			ui.CSS("color", ColorWhite),
		),
		ui.CSS("background-color", ColorWhite),
		ui.CSS("font-family", fontStack),
		ui.CSS("color", ColorBlack),
	)
}

// Page is the complete document fragment: stylesheet, icon font-face block and layout.
func Page() ui.Node {
	return ui.Fragment(
		ui.StylesheetLink(TailwindURL),
		ui.StyleBlock(FontFaceCSS),
		PageLayout(),
	)
}
