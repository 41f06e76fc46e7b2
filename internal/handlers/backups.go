package handlers

import (
	"net/http"

	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/search"
	"inmogestor-backend/internal/stats"
	"inmogestor-backend/internal/store"
)

// BackupHandler lists backup history. Creating or restoring backups is not
// supported.
type BackupHandler struct {
	catalog *store.Catalog
}

func NewBackupHandler(catalog *store.Catalog) *BackupHandler {
	return &BackupHandler{catalog: catalog}
}

type backupRow struct {
	models.Backup
	StatusBadge models.Badge `json:"statusBadge"`
	TypeBadge   models.Badge `json:"typeBadge"`
}

// List handles GET /api/backups?search=
func (h *BackupHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.Backups()
	matched := search.FilterSearchable(all, r.URL.Query().Get("search"))

	rows := make([]backupRow, 0, len(matched))
	for _, b := range matched {
		rows = append(rows, backupRow{Backup: b, StatusBadge: b.Status.Badge(), TypeBadge: b.Type.Badge()})
	}

	JSON(w, http.StatusOK, listResponse(rows, len(rows), stats.Backups(all)))
}
