// Package store loads the dashboard records once at startup and serves
// read-only copies of them for the life of the process.
package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/fixtures"
	"inmogestor-backend/internal/models"
)

// Dataset is every collection the pages read.
type Dataset struct {
	Tenants          []models.Tenant
	Owners           []models.Owner
	Properties       []models.Property
	Contracts        []models.Contract
	Payments         []models.Payment
	Notifications    []models.Notification
	Backups          []models.Backup
	Users            []models.User
	Dashboard        models.Dashboard
	Reports          models.ReportData
	PaymentContracts []fixtures.ContractOption
}

// Source produces a Dataset.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
	Name() string
}

// FixtureSource serves the built-in records.
type FixtureSource struct{}

func (FixtureSource) Name() string { return "fixtures" }

func (FixtureSource) Load(context.Context) (*Dataset, error) {
	return &Dataset{
		Tenants:          fixtures.Tenants(),
		Owners:           fixtures.Owners(),
		Properties:       fixtures.Properties(),
		Contracts:        fixtures.Contracts(),
		Payments:         fixtures.Payments(),
		Notifications:    fixtures.Notifications(),
		Backups:          fixtures.Backups(),
		Users:            fixtures.Users(),
		Dashboard:        fixtures.Dashboard(),
		Reports:          fixtures.Reports(),
		PaymentContracts: fixtures.PaymentContracts(),
	}, nil
}

// Catalog is the immutable in-memory view handed to handlers.
// Accessors return copies; nothing mutates the underlying data.
type Catalog struct {
	source    string
	data      *Dataset
	contracts map[string]fixtures.ContractOption
}

// Load builds a Catalog from src and checks it for duplicate ids.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	data, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src.Name(), err)
	}
	return New(src.Name(), data)
}

// New wraps an already loaded dataset.
func New(source string, data *Dataset) (*Catalog, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	lookup := make(map[string]fixtures.ContractOption, len(data.PaymentContracts))
	for _, c := range data.PaymentContracts {
		lookup[c.ID] = c
	}

	return &Catalog{source: source, data: data, contracts: lookup}, nil
}

func validate(d *Dataset) error {
	checks := []struct {
		name string
		ids  []string
	}{
		{"tenant", idsOf(d.Tenants, func(t models.Tenant) string { return fmt.Sprint(t.ID) })},
		{"owner", idsOf(d.Owners, func(o models.Owner) string { return fmt.Sprint(o.ID) })},
		{"property", idsOf(d.Properties, func(p models.Property) string { return fmt.Sprint(p.ID) })},
		{"contract", idsOf(d.Contracts, func(c models.Contract) string { return c.ID })},
		{"payment", idsOf(d.Payments, func(p models.Payment) string { return p.ID })},
		{"notification", idsOf(d.Notifications, func(n models.Notification) string { return fmt.Sprint(n.ID) })},
		{"backup", idsOf(d.Backups, func(b models.Backup) string { return b.ID })},
		{"user", idsOf(d.Users, func(u models.User) string { return fmt.Sprint(u.ID) })},
		{"payment contract", idsOf(d.PaymentContracts, func(c fixtures.ContractOption) string { return c.ID })},
	}

	for _, c := range checks {
		seen := make(map[string]bool, len(c.ids))
		for _, id := range c.ids {
			if seen[id] {
				return apperr.Fatalf("duplicate %s id %s", c.name, id)
			}
			seen[id] = true
		}
	}
	return nil
}

func idsOf[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

// Source names where the data came from.
func (c *Catalog) Source() string { return c.source }

func (c *Catalog) Tenants() []models.Tenant { return slices.Clone(c.data.Tenants) }
func (c *Catalog) Owners() []models.Owner   { return slices.Clone(c.data.Owners) }

func (c *Catalog) Properties() []models.Property {
	out := slices.Clone(c.data.Properties)
	for i := range out {
		out[i].Amenities = slices.Clone(out[i].Amenities)
	}
	return out
}

func (c *Catalog) Contracts() []models.Contract { return slices.Clone(c.data.Contracts) }
func (c *Catalog) Payments() []models.Payment   { return slices.Clone(c.data.Payments) }
func (c *Catalog) Users() []models.User         { return slices.Clone(c.data.Users) }

func (c *Catalog) Notifications() []models.Notification {
	return slices.Clone(c.data.Notifications)
}

func (c *Catalog) Backups() []models.Backup {
	out := slices.Clone(c.data.Backups)
	for i := range out {
		out[i].Tables = slices.Clone(out[i].Tables)
	}
	return out
}

func (c *Catalog) Dashboard() models.Dashboard {
	d := c.data.Dashboard
	d.RecentPayments = slices.Clone(d.RecentPayments)
	d.ExpiringContracts = slices.Clone(d.ExpiringContracts)
	return d
}

func (c *Catalog) Reports() models.ReportData {
	r := c.data.Reports
	return models.ReportData{
		ExpiringContracts: slices.Clone(r.ExpiringContracts),
		PropertyInventory: slices.Clone(r.PropertyInventory),
		Delinquency:       slices.Clone(r.Delinquency),
		MonthlyIncome:     slices.Clone(r.MonthlyIncome),
	}
}

// PaymentContracts lists the contracts the Add Payment dialog offers.
func (c *Catalog) PaymentContracts() []fixtures.ContractOption {
	return slices.Clone(c.data.PaymentContracts)
}

// LookupContract returns the tenant and property of a selectable contract.
func (c *Catalog) LookupContract(id string) (fixtures.ContractOption, bool) {
	opt, ok := c.contracts[id]
	return opt, ok
}

// UserByEmail finds a staff account, ignoring case.
func (c *Catalog) UserByEmail(email string) (models.User, bool) {
	for _, u := range c.data.Users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}
