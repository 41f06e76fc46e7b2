package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/ctxkeys"
	"inmogestor-backend/internal/format"
	"inmogestor-backend/internal/forms"
	"inmogestor-backend/internal/logger"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/rentcalc"
	"inmogestor-backend/internal/search"
	"inmogestor-backend/internal/stats"
	"inmogestor-backend/internal/store"
)

// FormRecorder counts dialog submissions; *metrics.Metrics satisfies it.
type FormRecorder interface {
	FormSubmitted(form, outcome string)
}

// PaymentHandler serves the payments page and the Add Payment dialog.
type PaymentHandler struct {
	catalog *store.Catalog
	delay   time.Duration
	rec     FormRecorder
	now     func() time.Time
}

func NewPaymentHandler(catalog *store.Catalog, submitDelay time.Duration, rec FormRecorder) *PaymentHandler {
	return &PaymentHandler{catalog: catalog, delay: submitDelay, rec: rec, now: time.Now}
}

type paymentRow struct {
	models.Payment
	Badge           models.Badge `json:"badge"`
	AmountText      string       `json:"amountText"`
	FineText        string       `json:"fineText"`
	TotalText       string       `json:"totalText"`
	DueDateText     string       `json:"dueDateText"`
	PaymentDateText string       `json:"paymentDateText,omitempty"`
	DaysOverdue     int          `json:"daysOverdue"`
}

// ── List ───────────────────────────────────────────────────────

// List handles GET /api/payments?search=
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Payments()
	matched := search.FilterSearchable(all, r.URL.Query().Get("search"))
	now := h.now()

	rows := make([]paymentRow, 0, len(matched))
	for _, p := range matched {
		row := paymentRow{
			Payment:     p,
			Badge:       p.Status.Badge(),
			AmountText:  format.Money(p.Amount),
			FineText:    format.Money(p.FineAmount),
			TotalText:   format.Money(p.TotalAmount),
			DueDateText: format.Date(p.DueDate),
			DaysOverdue: rentcalc.PaymentDaysOverdue(p, now),
		}
		if p.PaymentDate != nil {
			row.PaymentDateText = format.Date(*p.PaymentDate)
		}
		rows = append(rows, row)
	}

	JSON(w, http.StatusOK, listResponse(rows, len(rows), stats.Payments(all)))
}

// ── Export ──────────────────────────────────────────────────────

// Export handles GET /api/payments/export?search= — returns CSV
func (h *PaymentHandler) Export(w http.ResponseWriter, r *http.Request) {
	matched := search.FilterSearchable(h.catalog.Payments(), r.URL.Query().Get("search"))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=pagos.csv")

	fmt.Fprintln(w, "ID,Contrato,Inquilino,Inmueble,Período,Monto,Mora,Total,Vencimiento,Fecha de pago,Estado,Recibo")
	for _, p := range matched {
		paid, receipt := "", ""
		if p.PaymentDate != nil {
			paid = *p.PaymentDate
		}
		if p.ReceiptNumber != nil {
			receipt = *p.ReceiptNumber
		}
		fmt.Fprintf(w, "%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			p.ID, p.ContractID, csvEscape(p.Tenant), csvEscape(p.Property), csvEscape(p.Period),
			p.Amount, p.FineAmount, p.TotalAmount, p.DueDate, paid,
			csvEscape(string(p.Status)), csvEscape(receipt))
	}
}

// ── Create ──────────────────────────────────────────────────────

// Create handles POST /api/payments
// The record is validated, "registered" after the submit delay and echoed;
// the payments list is not modified.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	form := forms.DefaultPaymentForm()
	if !decodeJSON(w, r, &form) {
		return
	}

	dialog := forms.NewDialog(forms.Submitter{Delay: h.delay})
	if err := dialog.Open(); err != nil {
		writeAppError(w, r, err)
		return
	}
	if err := dialog.Submit(r.Context(), form.Bound(h.catalog)); err != nil {
		if apperr.IsValidation(err) {
			h.rec.FormSubmitted("payment", "rejected")
		}
		writeAppError(w, r, err)
		return
	}

	payment := form.Payment("PG-" + strings.ToUpper(uuid.NewString()[:8]))

	logger.FromContext(r.Context()).Info("payment registered",
		zap.String("payment_id", payment.ID),
		zap.String("contract_id", payment.ContractID),
		zap.String("tenant", payment.Tenant),
		zap.String("period", payment.Period),
		zap.Stringer("total_amount", payment.TotalAmount),
		zap.String("status", string(payment.Status)),
		zap.String("registered_by", ctxkeys.Subject(r.Context())),
	)
	h.rec.FormSubmitted("payment", "accepted")

	JSON(w, http.StatusCreated, map[string]interface{}{
		"data":  payment,
		"toast": forms.PaymentToast,
	})
}

// ── Helpers ────────────────────────────────────────────────────

// csvEscape wraps a value in quotes if it contains commas or quotes.
func csvEscape(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}
