package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/ctxkeys"
	"inmogestor-backend/internal/forms"
	"inmogestor-backend/internal/logger"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/search"
	"inmogestor-backend/internal/stats"
	"inmogestor-backend/internal/store"
)

// UserHandler serves the staff accounts page and the Add User dialog.
type UserHandler struct {
	catalog *store.Catalog
	delay   time.Duration
	rec     FormRecorder
	now     func() time.Time
}

func NewUserHandler(catalog *store.Catalog, submitDelay time.Duration, rec FormRecorder) *UserHandler {
	return &UserHandler{catalog: catalog, delay: submitDelay, rec: rec, now: time.Now}
}

type userRow struct {
	models.User
	RoleBadge   models.Badge `json:"roleBadge"`
	StatusBadge models.Badge `json:"statusBadge"`
}

// List handles GET /api/users?search=
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Users()
	matched := search.FilterSearchable(all, r.URL.Query().Get("search"))

	rows := make([]userRow, 0, len(matched))
	for _, u := range matched {
		rows = append(rows, userRow{User: u, RoleBadge: u.Role.Badge(), StatusBadge: u.Status.Badge()})
	}

	JSON(w, http.StatusOK, listResponse(rows, len(rows), stats.Users(all)))
}

// Create handles POST /api/users (admin only)
// Invalid input keeps the dialog open and logs nothing. The users list is
// not modified.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	form := forms.DefaultUserForm()
	if !decodeJSON(w, r, &form) {
		return
	}

	dialog := forms.NewDialog(forms.Submitter{Delay: h.delay})
	if err := dialog.Open(); err != nil {
		writeAppError(w, r, err)
		return
	}
	if err := dialog.Submit(r.Context(), &form); err != nil {
		if apperr.IsValidation(err) {
			h.rec.FormSubmitted("user", "rejected")
		}
		writeAppError(w, r, err)
		return
	}

	user := form.User(h.now().Format("2006-01-02"))

	logger.FromContext(r.Context()).Info("user created",
		zap.String("name", user.Name),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
		zap.String("status", string(user.Status)),
		zap.String("created_by", ctxkeys.Subject(r.Context())),
	)
	h.rec.FormSubmitted("user", "accepted")

	JSON(w, http.StatusCreated, map[string]interface{}{
		"data":  user,
		"toast": forms.UserToast,
	})
}
