package seo

const schemaContext = "https://schema.org"

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	return m
}

// ContactPoint describes one way to reach an organization.
func ContactPoint(contactType, telephone, email string) map[string]any {
	m := map[string]any{
		"@type":       "ContactPoint",
		"contactType": contactType,
	}
	if telephone != "" {
		m["telephone"] = telephone
	}
	if email != "" {
		m["email"] = email
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, language string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if language != "" {
		m["inLanguage"] = language
	}
	return m
}

// Service returns a Service schema offered by the named provider.
func Service(name, description, provider string) map[string]any {
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "Service",
		"name":        name,
		"description": description,
	}
	if provider != "" {
		m["provider"] = map[string]any{"@type": "Organization", "name": provider}
	}
	return m
}
