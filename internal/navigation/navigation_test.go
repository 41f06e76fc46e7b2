package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesCoverEveryRoute(t *testing.T) {
	t.Parallel()

	var paths []string
	for _, p := range Pages() {
		paths = append(paths, p.Path)
	}
	assert.ElementsMatch(t, []string{
		"/", "/dashboard", "/tenants", "/users", "/owners", "/properties", "/contracts",
		"/payments", "/reports", "/notifications", "/backups", "/settings",
	}, paths)
}

func TestSidebarGroupsInOrder(t *testing.T) {
	t.Parallel()

	groups := Sidebar("/payments")
	require.Len(t, groups, 5)

	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Principal", "Administración", "Gestión", "Financiero", "Sistema"}, names)

	var gestion []string
	for _, it := range groups[2].Items {
		gestion = append(gestion, it.Title)
	}
	assert.Equal(t, []string{"Inquilinos", "Propietarios", "Inmuebles", "Contratos"}, gestion)

	var active []string
	for _, g := range groups {
		for _, it := range g.Items {
			if it.Active {
				active = append(active, it.URL)
			}
		}
	}
	assert.Equal(t, []string{"/payments"}, active)
}

func TestSidebarActiveIsExact(t *testing.T) {
	t.Parallel()

	for _, g := range Sidebar("/payments/") {
		for _, it := range g.Items {
			assert.False(t, it.Active, it.URL)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := Resolve("/reports?tab=financial")
	require.True(t, r.Found)
	assert.Equal(t, "Reportes", r.Page.Title)
	assert.Empty(t, r.Redirect)

	login := Resolve("/")
	require.True(t, login.Found)
	assert.Equal(t, LayoutLogin, login.Page.Layout)

	miss := Resolve("/inquilinos")
	assert.False(t, miss.Found)
	assert.Nil(t, miss.Page)
	assert.Equal(t, "/dashboard", miss.Redirect)
	assert.Equal(t, "/inquilinos", miss.Path)
}

func TestPagesReturnsCopy(t *testing.T) {
	t.Parallel()

	ps := Pages()
	ps[0].Title = "changed"
	assert.NotEqual(t, "changed", Pages()[0].Title)
}
