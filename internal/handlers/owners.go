package handlers

import (
	"net/http"

	"inmogestor-backend/internal/format"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/search"
	"inmogestor-backend/internal/stats"
	"inmogestor-backend/internal/store"
)

type OwnerHandler struct {
	catalog *store.Catalog
}

func NewOwnerHandler(catalog *store.Catalog) *OwnerHandler {
	return &OwnerHandler{catalog: catalog}
}

// ownerRow never carries the full bank account.
type ownerRow struct {
	models.Owner
	BankAccount     string       `json:"bankAccount"`
	Badge           models.Badge `json:"badge"`
	TotalIncomeText string       `json:"totalIncomeText"`
}

// List handles GET /api/owners?search=
func (h *OwnerHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Owners()
	matched := search.FilterSearchable(all, r.URL.Query().Get("search"))

	rows := make([]ownerRow, 0, len(matched))
	for _, o := range matched {
		rows = append(rows, ownerRow{
			Owner:           o,
			BankAccount:     format.MaskAccount(o.BankAccount),
			Badge:           o.Status.Badge(),
			TotalIncomeText: format.Currency(o.TotalIncome),
		})
	}

	JSON(w, http.StatusOK, listResponse(rows, len(rows), stats.Owners(all)))
}
