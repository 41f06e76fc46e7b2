// Package reports assembles the operational and financial reports and
// applies the optional date range to them.
package reports

import (
	"fmt"
	"time"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/format"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/rentcalc"
)

// Dated records expose the date a range filter compares. ok is false for
// records without a date; those are always kept.
type Dated interface {
	ReportDate() (t time.Time, ok bool)
}

// Range is an inclusive pair of calendar days. A nil bound is open.
type Range struct {
	From *time.Time
	To   *time.Time
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether t falls inside the range, at day granularity.
func (r Range) Contains(t time.Time) bool {
	day := truncateToDay(t)
	if r.From != nil && day.Before(truncateToDay(*r.From)) {
		return false
	}
	if r.To != nil && day.After(truncateToDay(*r.To)) {
		return false
	}
	return true
}

// ParseRange reads YYYY-MM-DD bounds; empty strings leave a bound open.
func ParseRange(from, to string) (Range, error) {
	var r Range
	errs := map[string]string{}

	if from != "" {
		t, err := time.Parse(models.DateLayout, from)
		if err != nil {
			errs["dateFrom"] = "Fecha inválida, use AAAA-MM-DD"
		} else {
			r.From = &t
		}
	}
	if to != "" {
		t, err := time.Parse(models.DateLayout, to)
		if err != nil {
			errs["dateTo"] = "Fecha inválida, use AAAA-MM-DD"
		} else {
			r.To = &t
		}
	}

	if err := apperr.NewValidation(errs); err != nil {
		return Range{}, err
	}
	return r, nil
}

// FilterByDateRange keeps records dated inside r, in order, plus every
// undated record.
func FilterByDateRange[T Dated](items []T, r Range) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		t, ok := it.ReportDate()
		if !ok || r.Contains(t) {
			out = append(out, it)
		}
	}
	return out
}

// Tab selects which half of the page is returned.
type Tab string

const (
	TabOperational Tab = "operational"
	TabFinancial   Tab = "financial"
	TabBoth        Tab = ""
)

// ParseTab accepts operational, financial or empty.
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabOperational, TabFinancial, TabBoth:
		return Tab(s), nil
	}
	return "", apperr.NewValidation(map[string]string{"tab": fmt.Sprintf("Pestaña desconocida: %q", s)})
}

type ExpiringContractLine struct {
	models.ExpiringContractRow
	EndDateLabel  string `json:"endDateLabel"`
	DaysRemaining int    `json:"daysRemaining"`
	DaysLabel     string `json:"daysLabel"`
}

type InventoryLine struct {
	models.InventoryRow
	Badge    models.Badge `json:"badge"`
	RentText string       `json:"rentText"`
}

type DelinquencyLine struct {
	models.DelinquencyRow
	Range      models.DelinquencyRange `json:"range"`
	Badge      models.Badge            `json:"badge"`
	AmountText string                  `json:"amountText"`
}

type IncomeLine struct {
	models.MonthlyIncomeRow
	CollectedText  string `json:"collectedText"`
	PendingText    string `json:"pendingText"`
	CommissionText string `json:"commissionText"`
	NetOwnersText  string `json:"netOwnersText"`
}

type Operational struct {
	ExpiringContracts []ExpiringContractLine `json:"expiringContracts"`
	PropertyInventory []InventoryLine        `json:"propertyInventory"`
}

type Financial struct {
	Delinquency   []DelinquencyLine `json:"delinquency"`
	MonthlyIncome []IncomeLine      `json:"monthlyIncome"`
}

// Summary holds the four cards above the tabs, always over the full data.
type Summary struct {
	Properties         int    `json:"properties"`
	Occupied           int    `json:"occupied"`
	LatestMonth        string `json:"latestMonth"`
	LatestCollected    int64  `json:"latestCollected"`
	LatestCollectedTxt string `json:"latestCollectedText"`
	Delinquent         int    `json:"delinquent"`
}

// Report is the reports page payload.
type Report struct {
	Tab         Tab          `json:"tab"`
	DateFrom    string       `json:"dateFrom,omitempty"`
	DateTo      string       `json:"dateTo,omitempty"`
	Summary     Summary      `json:"summary"`
	Operational *Operational `json:"operational,omitempty"`
	Financial   *Financial   `json:"financial,omitempty"`
}

// Build assembles the report for tab, filtering dated sections by r.
// Remaining days are computed against now.
func Build(data models.ReportData, tab Tab, r Range, now time.Time) Report {
	rep := Report{Tab: tab, Summary: summarize(data)}
	if r.From != nil {
		rep.DateFrom = r.From.Format(models.DateLayout)
	}
	if r.To != nil {
		rep.DateTo = r.To.Format(models.DateLayout)
	}

	if tab == TabOperational || tab == TabBoth {
		rep.Operational = buildOperational(data, r, now)
	}
	if tab == TabFinancial || tab == TabBoth {
		rep.Financial = buildFinancial(data, r)
	}
	return rep
}

func summarize(data models.ReportData) Summary {
	s := Summary{
		Properties: len(data.PropertyInventory),
		Delinquent: len(data.Delinquency),
	}
	for _, p := range data.PropertyInventory {
		if p.Status == models.PropertyOccupied {
			s.Occupied++
		}
	}
	if len(data.MonthlyIncome) > 0 {
		s.LatestMonth = data.MonthlyIncome[0].Month
		s.LatestCollected = data.MonthlyIncome[0].Collected
	}
	s.LatestCollectedTxt = format.Currency(s.LatestCollected)
	return s
}

func buildOperational(data models.ReportData, r Range, now time.Time) *Operational {
	op := &Operational{
		ExpiringContracts: []ExpiringContractLine{},
		PropertyInventory: make([]InventoryLine, 0, len(data.PropertyInventory)),
	}

	for _, row := range FilterByDateRange(data.ExpiringContracts, r) {
		line := ExpiringContractLine{ExpiringContractRow: row, EndDateLabel: format.Date(row.EndDate)}
		if end, err := rentcalc.ParseDate(row.EndDate); err == nil {
			line.DaysRemaining = rentcalc.RemainingDays(end, now)
		}
		line.DaysLabel = format.Days(line.DaysRemaining)
		op.ExpiringContracts = append(op.ExpiringContracts, line)
	}

	for _, row := range data.PropertyInventory {
		op.PropertyInventory = append(op.PropertyInventory, InventoryLine{
			InventoryRow: row,
			Badge:        row.Status.InventoryBadge(),
			RentText:     format.Currency(row.RentAmount),
		})
	}
	return op
}

func buildFinancial(data models.ReportData, r Range) *Financial {
	fin := &Financial{
		Delinquency:   []DelinquencyLine{},
		MonthlyIncome: []IncomeLine{},
	}

	for _, row := range FilterByDateRange(data.Delinquency, r) {
		rng := row.Range()
		fin.Delinquency = append(fin.Delinquency, DelinquencyLine{
			DelinquencyRow: row,
			Range:          rng,
			Badge:          rng.Badge(),
			AmountText:     format.Currency(row.Amount),
		})
	}

	for _, row := range FilterByDateRange(data.MonthlyIncome, r) {
		fin.MonthlyIncome = append(fin.MonthlyIncome, IncomeLine{
			MonthlyIncomeRow: row,
			CollectedText:    format.Currency(row.Collected),
			PendingText:      format.Currency(row.Pending),
			CommissionText:   format.Currency(row.Commission),
			NetOwnersText:    format.Currency(row.NetOwners),
		})
	}
	return fin
}
