// Package format renders values the way the dashboard shows them to
// Argentine users.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"inmogestor-backend/internal/models"
)

var esAR = language.MustParse("es-AR")

// MaxAmenities is how many amenities a property card lists before "+N".
const MaxAmenities = 3

// Number groups thousands with the es-AR separator.
func Number(n int64) string {
	return message.NewPrinter(esAR).Sprintf("%d", n)
}

// Currency formats whole pesos, e.g. 45000 → "$45.000".
func Currency(n int64) string {
	if n < 0 {
		return "-$" + Number(-n)
	}
	return "$" + Number(n)
}

// Money formats an amount that may carry cents, e.g. 45000.5 → "$45.000,50".
// Whole amounts print like Currency.
func Money(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.Sign() < 0 {
		sign = "-"
		d = d.Abs()
	}
	whole := d.IntPart()
	out := sign + "$" + Number(whole)
	if cents := d.Sub(decimal.NewFromInt(whole)).Shift(2).IntPart(); cents != 0 {
		out += fmt.Sprintf(",%02d", cents)
	}
	return out
}

// Date renders a YYYY-MM-DD date as day/month/year without padding, e.g.
// "2024-01-15" → "15/1/2024". Unparseable input is returned unchanged.
func Date(s string) string {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return s
	}
	return DateOf(t)
}

// DateOf renders t as day/month/year.
func DateOf(t time.Time) string {
	return t.Format("2/1/2006")
}

// LongDate is the dashboard header date, e.g. "sábado, 20 de enero de 2024".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

var weekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MaskAccount hides all but the last four digits of a bank account.
func MaskAccount(account string) string {
	if len(account) <= 4 {
		return "***" + account
	}
	return "***" + account[len(account)-4:]
}

// Amenities splits a list into the visible part and the "+N" overflow
// label, which is empty when nothing is hidden.
func Amenities(all []string) (visible []string, overflow string) {
	if len(all) <= MaxAmenities {
		return all, ""
	}
	return all[:MaxAmenities], fmt.Sprintf("+%d", len(all)-MaxAmenities)
}

// ParseSizeMB reads sizes such as "45.2 MB".
func ParseSizeMB(size string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(size), "MB")), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// RoundTenth rounds to one decimal place.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// SizeMB renders a size with one decimal, e.g. "138.8 MB".
func SizeMB(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + " MB"
}

// Days renders a day count the way badges show it, e.g. "15 días".
func Days(n int) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d día", n)
	}
	return fmt.Sprintf("%d días", n)
}
