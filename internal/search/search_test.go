package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inmogestor-backend/internal/fixtures"
	"inmogestor-backend/internal/models"
)

func paymentIDs(ps []models.Payment) []string {
	ids := make([]string, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestEmptyQueryIsIdentity(t *testing.T) {
	t.Parallel()

	payments := fixtures.Payments()
	assert.Equal(t, payments, FilterSearchable(payments, ""))
}

func TestFilterByTenantName(t *testing.T) {
	t.Parallel()

	got := FilterSearchable(fixtures.Payments(), "García")
	assert.Equal(t, []string{"PG-002"}, paymentIDs(got))
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	upper := FilterSearchable(fixtures.Tenants(), "JUAN")
	lower := FilterSearchable(fixtures.Tenants(), "juan")
	assert.Equal(t, upper, lower)
	assert.Len(t, upper, 1)
	assert.Equal(t, "Juan Pérez", upper[0].Name)

	accented := FilterSearchable(fixtures.Tenants(), "PÉREZ")
	assert.Len(t, accented, 1)
}

func TestFilterPreservesOrderAndIsSubsequence(t *testing.T) {
	t.Parallel()

	payments := fixtures.Payments()
	got := FilterSearchable(payments, "2024")
	assert.Equal(t, []string{"PG-001", "PG-002"}, paymentIDs(got))

	byPeriod := FilterSearchable(payments, "enero")
	assert.Equal(t, []string{"PG-001", "PG-002"}, paymentIDs(byPeriod))

	all := FilterSearchable(payments, "PG-")
	assert.Equal(t, paymentIDs(payments), paymentIDs(all))
}

func TestFilterOnlyDesignatedFields(t *testing.T) {
	t.Parallel()

	// The tenants page matches name, dni and email; the phone is not searched.
	assert.Empty(t, FilterSearchable(fixtures.Tenants(), "+54"))
	assert.Len(t, FilterSearchable(fixtures.Tenants(), "8765"), 1)
}

func TestFilterNoMatch(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FilterSearchable(fixtures.Contracts(), "zzz"))
}

func TestFilterWithExplicitFields(t *testing.T) {
	t.Parallel()

	words := []string{"Cochera", "Pileta", "Cocina integrada"}
	got := Filter(words, "CO", func(s string) []string { return []string{s} })
	assert.Equal(t, []string{"Cochera", "Cocina integrada"}, got)
}

func TestMatches(t *testing.T) {
	t.Parallel()

	assert.True(t, Matches("", "anything"))
	assert.True(t, Matches("vencer", "Por Vencer"))
	assert.False(t, Matches("vencer"))
}
