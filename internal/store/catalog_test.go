package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/fixtures"
)

type failingSource struct{}

func (failingSource) Name() string { return "broken" }

func (failingSource) Load(context.Context) (*Dataset, error) {
	return nil, apperr.Transient("query tenants", errors.New("connection refused"))
}

func loadFixtures(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load(context.Background(), FixtureSource{})
	require.NoError(t, err)
	return c
}

func TestLoadFixtures(t *testing.T) {
	t.Parallel()

	c := loadFixtures(t)
	assert.Equal(t, "fixtures", c.Source())
	assert.Len(t, c.Tenants(), len(fixtures.Tenants()))
	assert.Len(t, c.Payments(), len(fixtures.Payments()))
	assert.NotEmpty(t, c.Reports().ExpiringContracts)
}

func TestLoadWrapsSourceErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), failingSource{})
	require.Error(t, err)
	assert.True(t, apperr.IsTransient(err))
	assert.Contains(t, err.Error(), "load broken")
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	data, err := FixtureSource{}.Load(context.Background())
	require.NoError(t, err)
	data.Payments = append(data.Payments, data.Payments[0])

	_, err = New("fixtures", data)
	require.Error(t, err)
	assert.True(t, apperr.IsFatal(err))
	assert.Contains(t, err.Error(), "duplicate payment id PG-001")
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	c := loadFixtures(t)

	tenants := c.Tenants()
	tenants[0].Name = "changed"
	assert.NotEqual(t, "changed", c.Tenants()[0].Name)

	props := c.Properties()
	props[0].Amenities[0] = "changed"
	assert.NotEqual(t, "changed", c.Properties()[0].Amenities[0])

	backups := c.Backups()
	backups[0].Tables = append(backups[0].Tables[:0], "changed")
	assert.NotEqual(t, "changed", c.Backups()[0].Tables[0])

	rep := c.Reports()
	rep.ExpiringContracts[0].Tenant = "changed"
	assert.NotEqual(t, "changed", c.Reports().ExpiringContracts[0].Tenant)
}

func TestLookupContract(t *testing.T) {
	t.Parallel()

	c := loadFixtures(t)

	opt, ok := c.LookupContract("CT-003")
	require.True(t, ok)
	assert.Equal(t, "Carlos López", opt.Tenant)
	assert.Equal(t, "Rivadavia 890", opt.Property)

	_, ok = c.LookupContract("CT-999")
	assert.False(t, ok)
}

func TestUserByEmailIgnoresCase(t *testing.T) {
	t.Parallel()

	c := loadFixtures(t)
	first := c.Users()[0]

	u, ok := c.UserByEmail(strings.ToUpper(first.Email))
	require.True(t, ok)
	assert.Equal(t, first.ID, u.ID)
	assert.Equal(t, first.Role, u.Role)
}
