package models

import "time"

// DateLayout is the calendar-date format used throughout the data.
const DateLayout = "2006-01-02"

// DelinquencyRange buckets overdue days.
type DelinquencyRange string

const (
	RangeUpTo30 DelinquencyRange = "0-30 días"
	Range31To60 DelinquencyRange = "31-60 días"
	RangeOver60 DelinquencyRange = "+60 días"
)

// RangeForDays returns the bucket for a number of overdue days.
func RangeForDays(days int) DelinquencyRange {
	switch {
	case days > 60:
		return RangeOver60
	case days > 30:
		return Range31To60
	}
	return RangeUpTo30
}

func (r DelinquencyRange) Badge() Badge {
	switch r {
	case RangeUpTo30:
		return Badge{Label: string(r), Variant: VariantDefault, ClassName: "bg-yellow-100 text-yellow-800"}
	case Range31To60:
		return Badge{Label: string(r), Variant: VariantDefault, ClassName: "bg-orange-100 text-orange-800"}
	case RangeOver60:
		return Badge{Label: string(r), Variant: VariantDefault, ClassName: "bg-red-100 text-red-800"}
	}
	return Badge{Label: string(r), Variant: VariantDefault, ClassName: "bg-gray-100 text-gray-800"}
}

// parseDate returns false for empty or malformed dates.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExpiringContractRow is a line of the operational expiring-contracts report.
type ExpiringContractRow struct {
	ContractID string `json:"contractId"`
	Tenant     string `json:"tenant"`
	Property   string `json:"property"`
	EndDate    string `json:"endDate"`
}

func (r ExpiringContractRow) ReportDate() (time.Time, bool) { return parseDate(r.EndDate) }

// InventoryRow is a line of the property inventory report.
type InventoryRow struct {
	ID         int            `json:"id"`
	Address    string         `json:"address"`
	Type       string         `json:"type"`
	Status     PropertyStatus `json:"status"`
	RentAmount int64          `json:"rentAmount"`
}

// DelinquencyRow is a line of the financial delinquency report. Date is the
// due date of the oldest unpaid installment.
type DelinquencyRow struct {
	Tenant      string `json:"tenant"`
	Property    string `json:"property"`
	Amount      int64  `json:"amount"`
	DaysOverdue int    `json:"daysOverdue"`
	Date        string `json:"date"`
}

func (r DelinquencyRow) ReportDate() (time.Time, bool) { return parseDate(r.Date) }

// Range derives the bucket from the overdue days.
func (r DelinquencyRow) Range() DelinquencyRange { return RangeForDays(r.DaysOverdue) }

// MonthlyIncomeRow is a line of the monthly income report. Date is the first
// day of Month.
type MonthlyIncomeRow struct {
	Month      string `json:"month"`
	Date       string `json:"date"`
	Collected  int64  `json:"collected"`
	Pending    int64  `json:"pending"`
	Commission int64  `json:"commission"`
	NetOwners  int64  `json:"netOwners"`
}

func (r MonthlyIncomeRow) ReportDate() (time.Time, bool) { return parseDate(r.Date) }

// ReportData groups the datasets behind the reports page.
type ReportData struct {
	ExpiringContracts []ExpiringContractRow `json:"expiringContracts"`
	PropertyInventory []InventoryRow        `json:"propertyInventory"`
	Delinquency       []DelinquencyRow      `json:"delinquency"`
	MonthlyIncome     []MonthlyIncomeRow    `json:"monthlyIncome"`
}
