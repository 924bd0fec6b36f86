package landing

import (
	"github.com/holistic-man/pagina-guia/internal/seo"
	"github.com/holistic-man/pagina-guia/internal/ui/render"
)

// Site carries the document metadata that is configured per deployment.
type Site struct {
	Title       string
	Description string
	// URL is the absolute address the page is published under, if known.
	URL string
}

// DocumentOptions returns the document shell for the landing page: title and
// description, Open Graph preview using the hero image, and schema.org data
// describing ServicePro and its services.
func DocumentOptions(site Site) render.Options {
	return render.Options{
		Title:       site.Title,
		Description: site.Description,
		Canonical:   site.URL,
		OpenGraph: seo.OpenGraph{
			Type:  "website",
			Image: HeroImageURL,
			URL:   site.URL,
		},
		StructuredData: StructuredData(site.URL),
	}
}

// StructuredData describes the organization, the site and each service as
// JSON-LD payloads.
func StructuredData(siteURL string) []any {
	org := seo.Organization(BrandName, siteURL, "")
	org["description"] = Tagline
	org["contactPoint"] = seo.ContactPoint("customer service", channelValue("phone"), channelValue("mail"))

	out := []any{org, seo.WebSite(BrandName, siteURL, "es")}
	for _, s := range Services() {
		out = append(out, seo.Service(s.Title, s.Description, BrandName))
	}
	return out
}

func channelValue(icon string) string {
	for _, c := range Channels() {
		if c.Icon == icon {
			return c.Value
		}
	}
	return ""
}
