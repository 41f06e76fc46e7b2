package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"inmogestor-backend/internal/logger"
	"inmogestor-backend/internal/navigation"
)

type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler { return &NavigationHandler{} }

// Sidebar handles GET /api/navigation?path=
func (h *NavigationHandler) Sidebar(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"groups": navigation.Sidebar(r.URL.Query().Get("path")),
	})
}

// Routes handles GET /api/routes
func (h *NavigationHandler) Routes(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{"data": navigation.Pages()})
}

// Resolve handles GET /api/routes/resolve?path=
// Unknown pages are logged and answered with the redirect target.
func (h *NavigationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	res := navigation.Resolve(r.URL.Query().Get("path"))
	if !res.Found {
		logger.FromContext(r.Context()).Warn("page not found", zap.String("path", res.Path))
	}
	JSON(w, http.StatusOK, res)
}

// NotFound answers any unmatched route with a JSON 404 carrying the same
// redirect the frontend uses.
func NotFound(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Warn("route not found",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	res := navigation.NotFound(r.URL.Path)
	JSON(w, http.StatusNotFound, map[string]interface{}{
		"error":    "Not found",
		"path":     res.Path,
		"redirect": res.Redirect,
		"title":    res.Title,
		"message":  res.Message,
	})
}
