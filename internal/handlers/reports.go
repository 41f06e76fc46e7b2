package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"inmogestor-backend/internal/logger"
	"inmogestor-backend/internal/reports"
	"inmogestor-backend/internal/storage"
	"inmogestor-backend/internal/store"
)

// ExportRecorder counts generated exports; *metrics.Metrics satisfies it.
type ExportRecorder interface {
	ExportGenerated(report string)
}

type ReportHandler struct {
	catalog *store.Catalog
	files   storage.Store
	rec     ExportRecorder
	now     func() time.Time
}

func NewReportHandler(catalog *store.Catalog, files storage.Store, rec ExportRecorder) *ReportHandler {
	return &ReportHandler{catalog: catalog, files: files, rec: rec, now: time.Now}
}

// build parses tab, dateFrom and dateTo from the query string.
func (h *ReportHandler) build(r *http.Request) (reports.Report, error) {
	q := r.URL.Query()

	tab, err := reports.ParseTab(q.Get("tab"))
	if err != nil {
		return reports.Report{}, err
	}
	rng, err := reports.ParseRange(q.Get("dateFrom"), q.Get("dateTo"))
	if err != nil {
		return reports.Report{}, err
	}
	return reports.Build(h.catalog.Reports(), tab, rng, h.now()), nil
}

// Get handles GET /api/reports?tab=&dateFrom=&dateTo=
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	rep, err := h.build(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	JSON(w, http.StatusOK, rep)
}

// Export handles POST /api/reports/export?tab=&dateFrom=&dateTo=
// The CSV is written to file storage and its location returned.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	rep, err := h.build(r)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := reports.WriteCSV(&buf, rep); err != nil {
		writeAppError(w, r, err)
		return
	}

	name := "completo"
	if rep.Tab != reports.TabBoth {
		name = string(rep.Tab)
	}
	path := fmt.Sprintf("reports/%d_reporte_%s.csv", h.now().Unix(), name)

	info, err := h.files.Save(r.Context(), path, &buf, "text/csv")
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("report exported",
		zap.String("tab", name),
		zap.String("url", info.URL),
		zap.Int64("size", info.FileSize),
	)
	h.rec.ExportGenerated(name)

	JSON(w, http.StatusCreated, info)
}
