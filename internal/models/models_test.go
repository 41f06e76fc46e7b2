package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgesAreTotal(t *testing.T) {
	t.Parallel()

	unknown := "Desconocido"

	assert.Equal(t, Badge{Label: unknown, Variant: VariantSecondary}, TenantContractStatus(unknown).Badge())
	assert.Equal(t, Badge{Label: unknown, Variant: VariantSecondary}, OwnerStatus(unknown).Badge())
	assert.Equal(t, Badge{Label: unknown, Variant: VariantSecondary}, PropertyStatus(unknown).Badge())
	assert.Equal(t, Badge{Label: unknown, Variant: VariantSecondary, Icon: IconClock}, ContractStatus(unknown).Badge())
	assert.Equal(t, Badge{Label: unknown, Variant: VariantSecondary, Icon: IconClock}, PaymentStatus(unknown).Badge())
	assert.Equal(t, Badge{Label: unknown, Variant: VariantSecondary, Icon: IconClock}, BackupStatus(unknown).Badge())
	assert.Equal(t, "bg-muted text-muted-foreground", BackupType(unknown).Badge().ClassName)
	assert.Equal(t, "bg-gray-100 text-gray-800", DelinquencyRange(unknown).Badge().ClassName)
}

func TestPaymentBadges(t *testing.T) {
	t.Parallel()

	cases := map[PaymentStatus]struct{ variant, icon string }{
		PaymentPaid:     {VariantDefault, IconCheckCircle},
		PaymentPending:  {VariantSecondary, IconClock},
		PaymentPaidLate: {VariantOutline, IconAlertTriangle},
		PaymentOverdue:  {VariantDestructive, IconAlertTriangle},
	}
	for status, want := range cases {
		b := status.Badge()
		assert.Equal(t, string(status), b.Label)
		assert.Equal(t, want.variant, b.Variant, status)
		assert.Equal(t, want.icon, b.Icon, status)
	}
}

func TestUserBadges(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Administrador", RoleAdmin.Badge().Label)
	assert.Equal(t, "Gestor", RoleManager.Badge().Label)
	assert.Equal(t, "Operador", RoleOperator.Badge().Label)
	assert.Equal(t, "Operador", UserRole("superuser").Badge().Label)

	assert.Equal(t, "Activo", UserActive.Badge().Label)
	assert.Equal(t, "Inactivo", UserInactive.Badge().Label)
	assert.Equal(t, "Inactivo", UserStatus("suspended").Badge().Label)
}

func TestNotificationPresentation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alta", PriorityHigh.Badge().Label)
	assert.Equal(t, "Media", PriorityMedium.Badge().Label)
	assert.Equal(t, "Baja", PriorityLow.Badge().Label)
	assert.Equal(t, Badge{Label: "Baja", Variant: VariantDefault, ClassName: "bg-muted text-muted-foreground"}, NotificationPriority("urgent").Badge())

	assert.Equal(t, IconAlertTriangle, NotificationPaymentOverdue.Icon())
	assert.Equal(t, IconDollarSign, NotificationPaymentPending.Icon())
	assert.Equal(t, IconCalendar, NotificationContractExpiring.Icon())
	assert.Equal(t, IconBell, NotificationSystem.Icon())
	assert.Equal(t, IconBell, NotificationType("maintenance").Icon())
}

func TestNotificationTabs(t *testing.T) {
	t.Parallel()

	n := Notification{Status: NotificationRead, Priority: PriorityHigh}
	assert.True(t, TabAll.Matches(n))
	assert.False(t, TabUnread.Matches(n))
	assert.True(t, TabHigh.Matches(n))
	assert.True(t, NotificationTab("archived").Matches(n))
}

func TestPaymentStatusHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, PaymentPaid.Settled())
	assert.True(t, PaymentPaidLate.Settled())
	assert.False(t, PaymentPending.Settled())
	assert.False(t, PaymentOverdue.Settled())

	st, ok := ParsePaymentStatus("Pagado con Mora")
	assert.True(t, ok)
	assert.Equal(t, PaymentPaidLate, st)
	_, ok = ParsePaymentStatus("pagado")
	assert.False(t, ok)
}

func TestDelinquencyRangeBuckets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RangeUpTo30, RangeForDays(0))
	assert.Equal(t, RangeUpTo30, RangeForDays(15))
	assert.Equal(t, RangeUpTo30, RangeForDays(30))
	assert.Equal(t, Range31To60, RangeForDays(31))
	assert.Equal(t, Range31To60, RangeForDays(45))
	assert.Equal(t, Range31To60, RangeForDays(60))
	assert.Equal(t, RangeOver60, RangeForDays(61))
	assert.Equal(t, RangeOver60, DelinquencyRow{DaysOverdue: 65}.Range())
}

func TestReportDates(t *testing.T) {
	t.Parallel()

	d, ok := ExpiringContractRow{EndDate: "2025-05-31"}.ReportDate()
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = DelinquencyRow{}.ReportDate()
	assert.False(t, ok)

	_, ok = MonthlyIncomeRow{Date: "enero"}.ReportDate()
	assert.False(t, ok)
}
