package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"inmogestor-backend/internal/ctxkeys"
	"inmogestor-backend/internal/logger"
	"inmogestor-backend/internal/settings"
)

const maxSettingsBody = 64 << 10

// SettingsHandler serves the settings page. Nothing is persisted.
type SettingsHandler struct {
	current settings.Settings
}

func NewSettingsHandler(current settings.Settings) *SettingsHandler {
	return &SettingsHandler{current: current}
}

// Get handles GET /api/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.current)
}

// Update handles PUT /api/settings/{group}
// The body is a partial update of one group; the merged group is validated
// and echoed back.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSettingsBody))
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Request body too large")
		return
	}

	merged, err := h.current.Merge(group, body)
	if errors.Is(err, settings.ErrUnknownGroup) {
		JSONError(w, http.StatusNotFound, "Unknown settings group")
		return
	}
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("settings saved locally",
		zap.String("group", group),
		zap.String("user_id", ctxkeys.Subject(r.Context())),
	)
	JSON(w, http.StatusOK, map[string]interface{}{
		"group": group,
		"data":  merged,
		"toast": map[string]string{"title": "Configuración guardada", "description": "Los cambios se aplicaron correctamente."},
	})
}
