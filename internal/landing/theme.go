package landing

import "github.com/holistic-man/pagina-guia/internal/ui"

// Palette.
const (
	ColorBrand      = "#059669"
	ColorBrandDark  = "#047857"
	ColorBrandLight = "#34D399"
	ColorWhite      = "#ffffff"
	ColorBlack      = "#000000"
	ColorGray100    = "#F3F4F6"
	ColorGray700    = "#374151"
	ColorGray800    = "#1F2937"
)

// External resources referenced by the document.
const (
	TailwindURL  = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	IconFontURL  = "https://unpkg.com/lucide-static@latest/font/Lucide.ttf"
	HeroImageURL = "https://images.pexels.com/photos/130621/pexels-photo-130621.jpeg"
)

const fontStack = `system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, "Noto Sans", sans-serif, "Apple Color Emoji", "Segoe UI Emoji", "Segoe UI Symbol", "Noto Color Emoji"`

// FontFaceCSS declares the Lucide icon font.
const FontFaceCSS = `
        @font-face {
            font-family: 'LucideIcons';
            src: url(` + IconFontURL + `) format('truetype');
        }
    `

const transitionProperty = "background-color, border-color, color, fill, stroke, opacity, box-shadow, transform"

const (
	shadowHeader = "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)"
	shadowCard   = "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)"
)

// Two-tier tables switching at 768px.
var (
	bpHidden      = ui.BP("0px", "none", "768px", "flex")
	bpColumnWidth = ui.BP("0px", "100%", "768px", "33.333333%")
	bpGridColumns = ui.BP("0px", "repeat(1, minmax(0, 1fr))", "768px", "repeat(3, minmax(0, 1fr))")
	bpDirection   = ui.BP("0px", "column", "768px", "row")
	bpStackGap    = ui.BP("0px", "2rem", "768px", "0")
	bpRowGap      = ui.BP("768px", "2rem")
	bpStackMargin = ui.BP("0px", "1.5rem", "768px", "0")
)

// containerLadder caps the content width at each standard breakpoint.
func containerLadder() ui.Part {
	widths := []string{"640px", "768px", "1024px", "1280px", "1536px"}
	tiers := make([]ui.Tier, 0, len(widths))
	for _, w := range widths {
		tiers = append(tiers, ui.Tier{MinWidth: w, Style: ui.S("max-width", w)})
	}
	return ui.ResponsiveStyle(tiers...)
}

func sectionBand(background string) ui.Part {
	return ui.Group(
		ui.CSS("background-color", background),
		ui.CSS("padding-top", "5rem"),
		ui.CSS("padding-bottom", "5rem"),
	)
}

func backgroundImage(url string) ui.Part {
	return ui.Group(
		ui.CSS("background-image", "url('"+url+"')"),
		ui.CSS("background-position", "center"),
		ui.CSS("background-size", "cover"),
	)
}
