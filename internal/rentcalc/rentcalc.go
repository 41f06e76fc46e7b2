// Package rentcalc provides pure functions for contract and payment day
// counts. They take the current time as a parameter and have no other
// dependencies, so callers inject a clock and tests stay deterministic.
package rentcalc

import (
	"math"
	"time"

	"inmogestor-backend/internal/models"
)

const day = 24 * time.Hour

// ParseDate parses a YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, s)
}

// ceilDays rounds a duration up to whole days.
func ceilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(day)))
}

// RemainingDays is ceil((end - now) / 1 day). It is negative once end has passed.
func RemainingDays(end, now time.Time) int {
	return ceilDays(end.Sub(now))
}

// DaysOverdue is max(0, ceil((now - due) / 1 day)), and always 0 once the
// payment is settled.
func DaysOverdue(due time.Time, status models.PaymentStatus, now time.Time) int {
	if status.Settled() {
		return 0
	}
	days := ceilDays(now.Sub(due))
	if days < 0 {
		return 0
	}
	return days
}

// ContractRemainingDays parses the contract end date. ok is false when the
// date is malformed.
func ContractRemainingDays(c models.Contract, now time.Time) (days int, ok bool) {
	end, err := ParseDate(c.EndDate)
	if err != nil {
		return 0, false
	}
	return RemainingDays(end, now), true
}

// PaymentDaysOverdue parses the payment due date; malformed dates count as 0.
func PaymentDaysOverdue(p models.Payment, now time.Time) int {
	due, err := ParseDate(p.DueDate)
	if err != nil {
		return 0
	}
	return DaysOverdue(due, p.Status, now)
}

// ExpiresWithin reports whether the contract ends between now and window days from now.
func ExpiresWithin(c models.Contract, window int, now time.Time) bool {
	days, ok := ContractRemainingDays(c, now)
	return ok && days >= 0 && days <= window
}
