package handlers

import (
	"net/http"

	"inmogestor-backend/internal/format"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/search"
	"inmogestor-backend/internal/stats"
	"inmogestor-backend/internal/store"
)

type PropertyHandler struct {
	catalog *store.Catalog
}

func NewPropertyHandler(catalog *store.Catalog) *PropertyHandler {
	return &PropertyHandler{catalog: catalog}
}

type propertyRow struct {
	models.Property
	Badge             models.Badge `json:"badge"`
	RentText          string       `json:"rentText"`
	VisibleAmenities  []string     `json:"visibleAmenities"`
	AmenitiesOverflow string       `json:"amenitiesOverflow,omitempty"`
}

// List handles GET /api/properties?search=
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Properties()
	matched := search.FilterSearchable(all, r.URL.Query().Get("search"))

	rows := make([]propertyRow, 0, len(matched))
	for _, p := range matched {
		visible, overflow := format.Amenities(p.Amenities)
		rows = append(rows, propertyRow{
			Property:          p,
			Badge:             p.Status.Badge(),
			RentText:          format.Currency(p.RentAmount),
			VisibleAmenities:  visible,
			AmenitiesOverflow: overflow,
		})
	}

	JSON(w, http.StatusOK, listResponse(rows, len(rows), stats.Properties(all)))
}
