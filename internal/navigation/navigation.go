// Package navigation is the page table of the dashboard: which paths exist,
// how the sidebar groups them and where unknown paths are sent.
package navigation

import "strings"

// Layout tells the frontend how to frame a page.
type Layout string

const (
	LayoutLogin  Layout = "login"
	LayoutFramed Layout = "framed"
)

// FallbackPath is where unknown paths redirect.
const FallbackPath = "/dashboard"

// Page is one routable screen.
type Page struct {
	Path   string `json:"path"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
	Group  string `json:"group,omitempty"`
	Layout Layout `json:"layout"`
	// API is the endpoint the page loads its data from.
	API string `json:"api,omitempty"`
}

// Sidebar groups in display order.
const (
	GroupPrincipal      = "Principal"
	GroupAdministracion = "Administración"
	GroupGestion        = "Gestión"
	GroupFinanciero     = "Financiero"
	GroupSistema        = "Sistema"
)

var groupOrder = []string{GroupPrincipal, GroupAdministracion, GroupGestion, GroupFinanciero, GroupSistema}

var pages = []Page{
	{Path: "/", Title: "Iniciar Sesión", Layout: LayoutLogin, API: "/api/auth/login"},
	{Path: "/dashboard", Title: "Dashboard", Icon: "Home", Group: GroupPrincipal, Layout: LayoutFramed, API: "/api/dashboard"},
	{Path: "/users", Title: "Usuarios", Icon: "UserCog", Group: GroupAdministracion, Layout: LayoutFramed, API: "/api/users"},
	{Path: "/tenants", Title: "Inquilinos", Icon: "Users", Group: GroupGestion, Layout: LayoutFramed, API: "/api/tenants"},
	{Path: "/owners", Title: "Propietarios", Icon: "Building", Group: GroupGestion, Layout: LayoutFramed, API: "/api/owners"},
	{Path: "/properties", Title: "Inmuebles", Icon: "Building2", Group: GroupGestion, Layout: LayoutFramed, API: "/api/properties"},
	{Path: "/contracts", Title: "Contratos", Icon: "FileText", Group: GroupGestion, Layout: LayoutFramed, API: "/api/contracts"},
	{Path: "/payments", Title: "Pagos", Icon: "CreditCard", Group: GroupFinanciero, Layout: LayoutFramed, API: "/api/payments"},
	{Path: "/reports", Title: "Reportes", Icon: "PieChart", Group: GroupFinanciero, Layout: LayoutFramed, API: "/api/reports"},
	{Path: "/notifications", Title: "Notificaciones", Icon: "Bell", Group: GroupSistema, Layout: LayoutFramed, API: "/api/notifications"},
	{Path: "/backups", Title: "Backups", Icon: "HardDrive", Group: GroupSistema, Layout: LayoutFramed, API: "/api/backups"},
	{Path: "/settings", Title: "Configuración", Icon: "Settings", Group: GroupSistema, Layout: LayoutFramed, API: "/api/settings"},
}

// Pages returns the route table.
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// Item is a sidebar entry.
type Item struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

type Group struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Sidebar returns the groups with the entry whose URL equals path marked
// active. Matching is exact; "/payments/" does not activate Pagos.
func Sidebar(path string) []Group {
	byGroup := map[string][]Item{}
	for _, p := range pages {
		if p.Group == "" {
			continue
		}
		byGroup[p.Group] = append(byGroup[p.Group], Item{
			Title:  p.Title,
			URL:    p.Path,
			Icon:   p.Icon,
			Active: p.Path == path,
		})
	}

	groups := make([]Group, 0, len(groupOrder))
	for _, name := range groupOrder {
		groups = append(groups, Group{Name: name, Items: byGroup[name]})
	}
	return groups
}

// Resolution is the outcome of looking up a path.
type Resolution struct {
	Path     string `json:"path"`
	Found    bool   `json:"found"`
	Page     *Page  `json:"page,omitempty"`
	Redirect string `json:"redirect,omitempty"`
	Title    string `json:"title,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Resolve finds the page for path. Query strings and fragments are ignored.
func Resolve(path string) Resolution {
	clean, _, _ := strings.Cut(path, "?")
	clean, _, _ = strings.Cut(clean, "#")

	for i := range pages {
		if pages[i].Path == clean {
			p := pages[i]
			return Resolution{Path: clean, Found: true, Page: &p}
		}
	}
	return NotFound(clean)
}

// NotFound is the catch-all page.
func NotFound(path string) Resolution {
	return Resolution{
		Path:     path,
		Redirect: FallbackPath,
		Title:    "Página no encontrada",
		Message:  "La página que buscas no existe o ha sido movida",
	}
}
