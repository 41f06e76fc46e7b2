package handlers

import (
	"net/http"

	"inmogestor-backend/internal/format"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/search"
	"inmogestor-backend/internal/stats"
	"inmogestor-backend/internal/store"
)

// TenantHandler serves the tenants page.
type TenantHandler struct {
	catalog *store.Catalog
}

func NewTenantHandler(catalog *store.Catalog) *TenantHandler {
	return &TenantHandler{catalog: catalog}
}

type tenantRow struct {
	models.Tenant
	Badge           models.Badge `json:"badge"`
	RentText        string       `json:"rentText"`
	LastPaymentText string       `json:"lastPaymentText"`
}

// List handles GET /api/tenants?search=
// Stats always cover the full list.
func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Tenants()
	matched := search.FilterSearchable(all, r.URL.Query().Get("search"))

	rows := make([]tenantRow, 0, len(matched))
	for _, t := range matched {
		rows = append(rows, tenantRow{
			Tenant:          t,
			Badge:           t.ContractStatus.Badge(),
			RentText:        format.Currency(t.RentAmount),
			LastPaymentText: format.Date(t.LastPayment),
		})
	}

	JSON(w, http.StatusOK, listResponse(rows, len(rows), stats.Tenants(all)))
}
