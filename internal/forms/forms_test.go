package forms

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/fixtures"
	"inmogestor-backend/internal/models"
)

type lookupTable map[string]fixtures.ContractOption

func (l lookupTable) LookupContract(id string) (fixtures.ContractOption, bool) {
	c, ok := l[id]
	return c, ok
}

func contracts() lookupTable {
	out := lookupTable{}
	for _, c := range fixtures.PaymentContracts() {
		out[c.ID] = c
	}
	return out
}

func validPayment() PaymentForm {
	f := DefaultPaymentForm()
	f.ContractID = "CT-003"
	f.Period = "Febrero 2024"
	f.Amount = decimal.NewFromInt(38000)
	f.DueDate = "2024-02-05"
	return f
}

func TestFillSelectsTenantAndProperty(t *testing.T) {
	t.Parallel()

	fill, ok := Fill(contracts(), "CT-003")
	require.True(t, ok)
	assert.Equal(t, "Carlos López", fill.Tenant)
	assert.Equal(t, "Rivadavia 890", fill.Property)
	assert.True(t, fill.TenantDisabled)
	assert.True(t, fill.PropertyDisabled)

	_, ok = Fill(contracts(), "CT-404")
	assert.False(t, ok)
}

func TestResolveOverwritesClientTenant(t *testing.T) {
	t.Parallel()

	f := validPayment()
	f.Tenant = "Someone Else"
	f.Property = "Elsewhere 1"

	errs := f.Resolve(contracts())
	assert.Empty(t, errs)
	assert.Equal(t, "Carlos López", f.Tenant)
	assert.Equal(t, "Rivadavia 890", f.Property)
}

func TestResolveUnknownContract(t *testing.T) {
	t.Parallel()

	f := validPayment()
	f.ContractID = "CT-999"
	f.Tenant = "X"
	f.Property = "Y"

	errs := f.Resolve(contracts())
	assert.Equal(t, "Seleccione un contrato", errs["contractId"])
}

func TestPaymentValidationMessages(t *testing.T) {
	t.Parallel()

	f := PaymentForm{Status: "Perdido", DueDate: "05/02/2024", PaymentDate: "ayer"}
	errs := f.Resolve(contracts())

	assert.Equal(t, map[string]string{
		"contractId":  "Seleccione un contrato",
		"tenant":      "El nombre del inquilino es requerido",
		"property":    "La propiedad es requerida",
		"period":      "El período es requerido",
		"amount":      "El monto debe ser mayor a 0",
		"dueDate":     "La fecha de vencimiento es requerida",
		"paymentDate": "Fecha de pago inválida",
		"status":      "Seleccione un estado válido",
	}, errs)
}

func TestPaymentAmountBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		amount string
		ok     bool
	}{
		{"0", false},
		{"0.001", false},
		{"-10", false},
		{"0.01", true},
		{"45000.5", true},
	}
	for _, tc := range cases {
		f := validPayment()
		f.Amount = decimal.RequireFromString(tc.amount)
		_, failed := f.Resolve(contracts())["amount"]
		assert.Equal(t, !tc.ok, failed, tc.amount)
	}

	// the fine is optional and unbounded
	f := validPayment()
	f.FineAmount = decimal.RequireFromString("-12.75")
	assert.Empty(t, f.Resolve(contracts()))
}

func TestPaymentAcceptsEveryStatus(t *testing.T) {
	t.Parallel()

	for _, s := range models.PaymentStatuses {
		f := validPayment()
		f.Status = s
		assert.Empty(t, f.Resolve(contracts()), s)
	}
}

func TestPaymentRecord(t *testing.T) {
	t.Parallel()

	f := validPayment()
	f.FineAmount = decimal.RequireFromString("3800.25")
	f.PaymentDate = "2024-02-10"
	require.Empty(t, f.Resolve(contracts()))

	p := f.Payment("PG-X")
	assert.Equal(t, "41800.25", p.TotalAmount.String())
	require.NotNil(t, p.PaymentDate)
	assert.Equal(t, "2024-02-10", *p.PaymentDate)
	assert.Nil(t, p.ReceiptNumber)
}

func TestUserValidation(t *testing.T) {
	t.Parallel()

	f := DefaultUserForm()
	f.Name = "Laura Díaz"
	f.Email = "not-an-email"
	f.Phone = "+54 11 5555-0000"

	assert.Equal(t, map[string]string{"email": "Email inválido"}, f.Validate())

	f.Email = "laura@inmobiliariaplus.com"
	assert.Empty(t, f.Validate())

	f.Role = "owner"
	f.Status = ""
	errs := f.Validate()
	assert.Equal(t, "Selecciona un rol", errs["role"])
	assert.Equal(t, "Selecciona un estado", errs["status"])
}

func TestSchemas(t *testing.T) {
	t.Parallel()

	ps := PaymentSchema(fixtures.PaymentContracts())
	disabled := map[string]bool{}
	for _, f := range ps.Fields {
		disabled[f.Name] = f.Disabled
	}
	assert.True(t, disabled["tenant"])
	assert.True(t, disabled["property"])
	assert.False(t, disabled["contractId"])
	assert.Equal(t, models.PaymentPending, ps.Defaults.(PaymentForm).Status)

	us := UserSchema()
	assert.Equal(t, models.RoleOperator, us.Defaults.(UserForm).Role)
	assert.Len(t, us.Fields[3].Options, 3)
}

func TestDialogLifecycle(t *testing.T) {
	t.Parallel()

	var ran atomic.Int32
	d := NewDialog(Submitter{After: func(context.Context) { ran.Add(1) }})
	assert.Equal(t, DialogClosed, d.State())

	bad := UserForm{Email: "nope"}
	require.Error(t, d.Submit(context.Background(), &bad), "closed dialog cannot submit")

	require.NoError(t, d.Open())
	err := d.Submit(context.Background(), &bad)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, DialogOpen, d.State())
	assert.Zero(t, ran.Load())

	good := DefaultUserForm()
	good.Name, good.Email, good.Phone = "Laura", "laura@example.com", "123"
	require.NoError(t, d.Submit(context.Background(), &good))
	assert.Equal(t, DialogClosed, d.State())
	assert.Equal(t, int32(1), ran.Load())
}

func TestDialogSubmittingState(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	entered := make(chan struct{})
	d := NewDialog(Submitter{After: func(context.Context) {
		close(entered)
		<-release
	}})
	require.NoError(t, d.Open())

	f := validPayment()
	done := make(chan error, 1)
	go func() { done <- d.Submit(context.Background(), f.Bound(contracts())) }()

	<-entered
	assert.Equal(t, DialogSubmitting, d.State())
	assert.Error(t, d.Close())
	assert.Error(t, d.Open())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, DialogClosed, d.State())
}

func TestDialogCancelledSubmissionStaysOpen(t *testing.T) {
	t.Parallel()

	d := NewDialog(Submitter{Delay: time.Hour})
	require.NoError(t, d.Open())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := validPayment()
	err := d.Submit(ctx, f.Bound(contracts()))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, DialogOpen, d.State())
}

func TestSubmitterWaitsForDelay(t *testing.T) {
	t.Parallel()

	start := time.Now()
	require.NoError(t, Submitter{Delay: 20 * time.Millisecond}.Run(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
