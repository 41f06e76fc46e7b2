package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/fixtures"
	"inmogestor-backend/internal/models"
)

type dated struct {
	id   string
	date string
}

func (d dated) ReportDate() (time.Time, bool) {
	if d.date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(models.DateLayout, d.date)
	return t, err == nil
}

func mustRange(t *testing.T, from, to string) Range {
	t.Helper()
	r, err := ParseRange(from, to)
	require.NoError(t, err)
	return r
}

func ids(ds []dated) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.id)
	}
	return out
}

func TestFilterByDateRangeInclusiveBounds(t *testing.T) {
	t.Parallel()

	items := []dated{{"a", "2024-12-31"}, {"b", "2025-01-01"}, {"c", "2025-06-30"}, {"d", "2025-07-01"}}
	got := FilterByDateRange(items, mustRange(t, "2025-01-01", "2025-06-30"))
	assert.Equal(t, []string{"b", "c"}, ids(got))
}

func TestFilterByDateRangeOpenBounds(t *testing.T) {
	t.Parallel()

	items := []dated{{"a", "2024-12-31"}, {"b", "2025-01-01"}}
	assert.Equal(t, []string{"a", "b"}, ids(FilterByDateRange(items, Range{})))
	assert.Equal(t, []string{"b"}, ids(FilterByDateRange(items, mustRange(t, "2025-01-01", ""))))
	assert.Equal(t, []string{"a"}, ids(FilterByDateRange(items, mustRange(t, "", "2024-12-31"))))
}

func TestFilterByDateRangeKeepsUndated(t *testing.T) {
	t.Parallel()

	items := []dated{{"a", ""}, {"b", "2020-01-01"}, {"c", "bogus"}}
	got := FilterByDateRange(items, mustRange(t, "2025-01-01", "2025-12-31"))
	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestRangeContainsIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	r := mustRange(t, "2025-01-01", "2025-01-01")
	assert.True(t, r.Contains(time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestParseRangeRejectsMalformedDates(t *testing.T) {
	t.Parallel()

	_, err := ParseRange("01/01/2025", "2025-13-01")
	require.Error(t, err)

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "dateFrom")
	assert.Contains(t, ve.Fields, "dateTo")
}

func TestParseTab(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "operational", "financial"} {
		_, err := ParseTab(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseTab("legal")
	assert.True(t, apperr.IsValidation(err))
}

func TestExpiringContractsFromJanuary2025(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rep := Build(fixtures.Reports(), TabOperational, mustRange(t, "2025-01-01", ""), now)

	require.NotNil(t, rep.Operational)
	assert.Nil(t, rep.Financial)

	var got []string
	for _, c := range rep.Operational.ExpiringContracts {
		got = append(got, c.ContractID)
	}
	assert.Equal(t, []string{"CT-003", "CT-007", "CT-012", "CT-015"}, got)
	assert.Equal(t, 150, rep.Operational.ExpiringContracts[0].DaysRemaining)
	assert.Equal(t, "31/5/2025", rep.Operational.ExpiringContracts[0].EndDateLabel)
	assert.Len(t, rep.Operational.PropertyInventory, 4)
}

func TestFinancialTab(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	rep := Build(fixtures.Reports(), TabFinancial, mustRange(t, "2023-12-01", ""), now)

	require.NotNil(t, rep.Financial)
	assert.Nil(t, rep.Operational)

	require.Len(t, rep.Financial.Delinquency, 2)
	assert.Equal(t, "Jorge Martín", rep.Financial.Delinquency[0].Tenant)
	assert.Equal(t, models.Range31To60, rep.Financial.Delinquency[0].Range)
	assert.Equal(t, models.RangeUpTo30, rep.Financial.Delinquency[1].Range)

	require.Len(t, rep.Financial.MonthlyIncome, 2)
	assert.Equal(t, "Enero 2024", rep.Financial.MonthlyIncome[0].Month)
	assert.Equal(t, "$287.000", rep.Financial.MonthlyIncome[0].CollectedText)
}

func TestSummaryIgnoresRange(t *testing.T) {
	t.Parallel()

	rep := Build(fixtures.Reports(), TabBoth, mustRange(t, "2030-01-01", ""), time.Now())
	assert.Equal(t, Summary{
		Properties:         4,
		Occupied:           2,
		LatestMonth:        "Enero 2024",
		LatestCollected:    287000,
		LatestCollectedTxt: "$287.000",
		Delinquent:         3,
	}, rep.Summary)
	assert.Empty(t, rep.Operational.ExpiringContracts)
	assert.Empty(t, rep.Financial.Delinquency)
	assert.Equal(t, "2030-01-01", rep.DateFrom)
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rep := Build(fixtures.Reports(), TabBoth, Range{}, now)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rep))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Contratos por vencer\n"))
	assert.Contains(t, out, "CT-003,Carlos López,Rivadavia 890,2025-05-31,150\n")
	assert.Contains(t, out, "Ana Rodríguez,Belgrano 456,53300,65,+60 días\n")
	assert.Contains(t, out, "Enero 2024,287000,53300,28700,258300\n")
}

func TestCSVEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", csvEscape("plain"))
	assert.Equal(t, `"Av. Corrientes 1234, CABA"`, csvEscape("Av. Corrientes 1234, CABA"))
	assert.Equal(t, `"say ""hi"""`, csvEscape(`say "hi"`))
}
