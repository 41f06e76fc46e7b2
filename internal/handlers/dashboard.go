package handlers

import (
	"net/http"
	"time"

	"inmogestor-backend/internal/format"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/store"
)

// DashboardHandler serves the landing page summary.
type DashboardHandler struct {
	catalog *store.Catalog
	now     func() time.Time
}

func NewDashboardHandler(catalog *store.Catalog) *DashboardHandler {
	return &DashboardHandler{catalog: catalog, now: time.Now}
}

type recentPaymentRow struct {
	models.RecentPayment
	Badge      models.Badge `json:"badge"`
	AmountText string       `json:"amountText"`
	DateText   string       `json:"dateText"`
}

type expiringPreviewRow struct {
	models.ExpiringContractPreview
	ExpiryDateText string `json:"expiryDateText"`
	DaysLeftText   string `json:"daysLeftText"`
}

// Get handles GET /api/dashboard
// The numbers are fixed; only the date follows the clock.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	d := h.catalog.Dashboard()

	payments := make([]recentPaymentRow, 0, len(d.RecentPayments))
	for _, p := range d.RecentPayments {
		payments = append(payments, recentPaymentRow{
			RecentPayment: p,
			Badge:         p.Status.Badge(),
			AmountText:    format.Currency(p.Amount),
			DateText:      format.Date(p.Date),
		})
	}

	expiring := make([]expiringPreviewRow, 0, len(d.ExpiringContracts))
	for _, c := range d.ExpiringContracts {
		expiring = append(expiring, expiringPreviewRow{
			ExpiringContractPreview: c,
			ExpiryDateText:          format.Date(c.ExpiryDate),
			DaysLeftText:            format.Days(c.DaysLeft),
		})
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"today":             format.LongDate(h.now()),
		"stats":             d.Stats,
		"revenueText":       format.Currency(d.Stats.MonthlyRevenue),
		"recentPayments":    payments,
		"expiringContracts": expiring,
	})
}
