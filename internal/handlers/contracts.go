package handlers

import (
	"net/http"
	"time"

	"inmogestor-backend/internal/format"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/rentcalc"
	"inmogestor-backend/internal/search"
	"inmogestor-backend/internal/stats"
	"inmogestor-backend/internal/store"
)

type ContractHandler struct {
	catalog *store.Catalog
	now     func() time.Time
}

func NewContractHandler(catalog *store.Catalog) *ContractHandler {
	return &ContractHandler{catalog: catalog, now: time.Now}
}

type contractRow struct {
	models.Contract
	Badge         models.Badge `json:"badge"`
	RentText      string       `json:"rentText"`
	DepositText   string       `json:"depositText"`
	StartDateText string       `json:"startDateText"`
	EndDateText   string       `json:"endDateText"`
	// DaysRemaining is negative once the contract has ended and absent
	// when the end date is malformed.
	DaysRemaining *int `json:"daysRemaining,omitempty"`
}

// List handles GET /api/contracts?search=
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Contracts()
	matched := search.FilterSearchable(all, r.URL.Query().Get("search"))
	now := h.now()

	rows := make([]contractRow, 0, len(matched))
	for _, c := range matched {
		row := contractRow{
			Contract:      c,
			Badge:         c.Status.Badge(),
			RentText:      format.Currency(c.MonthlyRent),
			DepositText:   format.Currency(c.Deposit),
			StartDateText: format.Date(c.StartDate),
			EndDateText:   format.Date(c.EndDate),
		}
		if days, ok := rentcalc.ContractRemainingDays(c, now); ok {
			row.DaysRemaining = &days
		}
		rows = append(rows, row)
	}

	JSON(w, http.StatusOK, listResponse(rows, len(rows), stats.Contracts(all)))
}
