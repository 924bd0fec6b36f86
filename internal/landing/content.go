package landing

// Brand copy.
const (
	BrandName   = "ServicePro"
	Tagline     = "Soluciones innovadoras para las necesidades de tu negocio"
	HeroTitle   = "Bienvenido a ServicePro"
	HeroCTA     = "Empezar"
	CTATitle    = "¿Listo para empezar?"
	CTASubtitle = "Transformemos tu negocio juntos"
	CTAButton   = "Contáctanos Ahora"
	Copyright   = "© 2023 ServicePro. Todos los derechos reservados."
)

// Section headings.
const (
	ServicesTitle   = "Nuestros Servicios"
	ProcessTitle    = "Cómo lo Hacemos"
	ContactTitle    = "Contáctanos"
	ContactSubtitle = "Ponte en Contacto"
	FollowTitle     = "Síguenos"
	QuickLinksTitle = "Enlaces Rápidos"
)

// Anchor is an in-page navigation target.
type Anchor struct {
	ID    string
	Label string
}

// Href returns the fragment link to the anchor.
func (a Anchor) Href() string { return "#" + a.ID }

// Anchors lists the page sections reachable from the header and the footer,
// in navigation order.
func Anchors() []Anchor {
	return []Anchor{
		{ID: "welcome", Label: "Inicio"},
		{ID: "services", Label: "Servicios"},
		{ID: "process", Label: "Proceso"},
		{ID: "contact", Label: "Contacto"},
	}
}

// Anchor IDs used as section identifiers.
const (
	AnchorWelcome  = "welcome"
	AnchorServices = "services"
	AnchorProcess  = "process"
	AnchorContact  = "contact"
)

// Service is one card of the services grid.
type Service struct {
	IconAlt     string
	Icon        string
	Title       string
	Description string
}

// Services lists the offered services.
func Services() []Service {
	return []Service{
		{
			IconAlt:     "Icono de Analítica",
			Icon:        "bar-chart",
			Title:       "Analítica de Datos",
			Description: "Desbloquea insights de tus datos para impulsar el crecimiento del negocio.",
		},
		{
			IconAlt:     "Icono de Desarrollo",
			Icon:        "code",
			Title:       "Desarrollo Web",
			Description: "Crea sitios web impresionantes y responsivos adaptados a tus necesidades.",
		},
		{
			IconAlt:     "Icono de Marketing",
			Icon:        "target",
			Title:       "Marketing Digital",
			Description: "Aumenta tu presencia en línea y alcanza a tu audiencia objetivo.",
		},
	}
}

// Step is one stage of the working process.
type Step struct {
	Number      string
	Title       string
	Description string
}

// Steps lists the process stages in order.
func Steps() []Step {
	return []Step{
		{Number: "1", Title: "Consulta", Description: "Discutimos tus necesidades y objetivos para entender tu visión."},
		{Number: "2", Title: "Ejecución", Description: "Implementamos la solución con precisión y cuidado."},
		{Number: "3", Title: "Revisión", Description: "Analizamos y optimizamos los resultados para una mejora continua."},
	}
}

// Channel is a contact line with its icon.
type Channel struct {
	IconAlt string
	Icon    string
	Value   string
}

// Channels lists the contact details.
func Channels() []Channel {
	return []Channel{
		{IconAlt: "Email", Icon: "mail", Value: "info@servicepro.com"},
		{IconAlt: "Teléfono", Icon: "phone", Value: "+1 (123) 456-7890"},
		{IconAlt: "Sitio Web", Icon: "globe", Value: "www.servicepro.com"},
	}
}

// Social is a social network profile link.
type Social struct {
	Name string
	Icon string
}

// Socials lists the social networks, in display order.
func Socials() []Social {
	return []Social{
		{Name: "Facebook", Icon: "facebook"},
		{Name: "Twitter", Icon: "twitter"},
		{Name: "Instagram", Icon: "instagram"},
		{Name: "LinkedIn", Icon: "linkedin"},
	}
}
