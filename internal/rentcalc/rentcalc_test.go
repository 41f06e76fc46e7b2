package rentcalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inmogestor-backend/internal/fixtures"
	"inmogestor-backend/internal/models"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestRemainingDays(t *testing.T) {
	t.Parallel()

	now := date(t, "2025-01-01")
	assert.Equal(t, 150, RemainingDays(date(t, "2025-05-31"), now))
	assert.Equal(t, 0, RemainingDays(now, now))
	assert.Equal(t, -1, RemainingDays(date(t, "2024-12-31"), now))

	// Partial days round up.
	assert.Equal(t, 1, RemainingDays(now.Add(time.Hour), now))
}

func TestDaysOverdueOverduePayment(t *testing.T) {
	t.Parallel()

	now := date(t, "2024-01-20")
	due := date(t, "2024-01-10")
	assert.Equal(t, 10, DaysOverdue(due, models.PaymentOverdue, now))
	assert.Equal(t, 10, DaysOverdue(due, models.PaymentPending, now))
}

func TestDaysOverdueSettledIsZero(t *testing.T) {
	t.Parallel()

	now := date(t, "2024-03-01")
	due := date(t, "2023-12-10")
	assert.Equal(t, 0, DaysOverdue(due, models.PaymentPaid, now))
	assert.Equal(t, 0, DaysOverdue(due, models.PaymentPaidLate, now))
}

func TestDaysOverdueNeverNegative(t *testing.T) {
	t.Parallel()

	now := date(t, "2024-01-05")
	assert.Equal(t, 0, DaysOverdue(date(t, "2024-01-10"), models.PaymentPending, now))
}

func TestDaysOverdueRoundsPartialDayUp(t *testing.T) {
	t.Parallel()

	due := date(t, "2024-01-10")
	now := due.Add(36 * time.Hour)
	assert.Equal(t, 2, DaysOverdue(due, models.PaymentOverdue, now))
}

func TestFixturePaymentsOverdue(t *testing.T) {
	t.Parallel()

	now := date(t, "2024-01-20")
	got := map[string]int{}
	for _, p := range fixtures.Payments() {
		got[p.ID] = PaymentDaysOverdue(p, now)
	}
	assert.Equal(t, map[string]int{"PG-001": 0, "PG-002": 10, "PG-003": 0, "PG-004": 71}, got)
}

func TestContractRemainingDays(t *testing.T) {
	t.Parallel()

	now := date(t, "2025-01-01")
	days, ok := ContractRemainingDays(fixtures.Contracts()[2], now)
	require.True(t, ok)
	assert.Equal(t, 150, days)

	_, ok = ContractRemainingDays(models.Contract{EndDate: "31/05/2025"}, now)
	assert.False(t, ok)
}

func TestExpiresWithin(t *testing.T) {
	t.Parallel()

	now := date(t, "2025-04-15")
	c := models.Contract{EndDate: "2025-05-31"}
	assert.True(t, ExpiresWithin(c, 60, now))
	assert.False(t, ExpiresWithin(c, 30, now))
	assert.False(t, ExpiresWithin(models.Contract{EndDate: "2025-01-01"}, 60, now))
}
