package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inmogestor-backend/internal/forms"
	"inmogestor-backend/internal/store"
)

// FormHandler describes the create dialogs.
type FormHandler struct {
	catalog *store.Catalog
}

func NewFormHandler(catalog *store.Catalog) *FormHandler {
	return &FormHandler{catalog: catalog}
}

// PaymentForm handles GET /api/forms/payment
func (h *FormHandler) PaymentForm(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, forms.PaymentSchema(h.catalog.PaymentContracts()))
}

// ContractFill handles GET /api/forms/payment/contracts/{id}
func (h *FormHandler) ContractFill(w http.ResponseWriter, r *http.Request) {
	fill, ok := forms.Fill(h.catalog, chi.URLParam(r, "id"))
	if !ok {
		JSONError(w, http.StatusNotFound, "Contract not found")
		return
	}
	JSON(w, http.StatusOK, fill)
}

// UserForm handles GET /api/forms/user
func (h *FormHandler) UserForm(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, forms.UserSchema())
}
