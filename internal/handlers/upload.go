package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"inmogestor-backend/internal/logger"
	"inmogestor-backend/internal/storage"
)

// Allowed file types and size limit for uploads.
const maxUploadSize = 10 << 20 // 10 MB

var allowedTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
}

// UploadHandler stores the company logo and serves stored files. Only the
// latest logo is kept.
type UploadHandler struct {
	store storage.Store
	now   func() time.Time

	mu       sync.Mutex
	logoPath string
}

func NewUploadHandler(store storage.Store) *UploadHandler {
	return &UploadHandler{store: store, now: time.Now}
}

// UploadLogo handles POST /api/settings/logo (multipart "file" field)
// The stored URL is returned and the previous logo is removed; the settings
// themselves are not updated.
func (h *UploadHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	// Enforce size limit before reading body
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		JSONError(w, http.StatusBadRequest, "File too large. Maximum size is 10MB.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Missing 'file' field in form data.")
		return
	}
	defer file.Close()

	// Validate file type by reading the first 512 bytes (MIME sniffing)
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		JSONError(w, http.StatusBadRequest, "Could not read file.")
		return
	}
	contentType := http.DetectContentType(buffer[:n])

	if !allowedTypes[contentType] {
		JSONError(w, http.StatusBadRequest, fmt.Sprintf(
			"File type '%s' not allowed. Accepted: PDF, JPG, PNG.", contentType,
		))
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to process file.")
		return
	}

	storagePath := fmt.Sprintf("settings/%d_%s", h.now().Unix(), sanitizeFilename(header.Filename))

	info, err := h.store.Save(r.Context(), storagePath, file, contentType)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	log := logger.FromContext(r.Context())
	log.Info("logo uploaded",
		zap.String("url", info.URL),
		zap.Int64("size", info.FileSize),
		zap.String("type", contentType),
	)

	h.mu.Lock()
	previous := h.logoPath
	h.logoPath = storagePath
	h.mu.Unlock()

	if previous != "" && previous != storagePath {
		// A failed cleanup leaves an orphan file; the upload still stands.
		if err := h.store.Delete(r.Context(), previous); err != nil {
			log.Warn("failed to remove previous logo", zap.String("path", previous), zap.Error(err))
		}
	}
	JSON(w, http.StatusOK, info)
}

// ServeFile handles GET /api/files/*
// R2-backed files redirect to their public URL; local files are served
// from disk.
func (h *UploadHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	filePath := strings.TrimPrefix(r.URL.Path, "/api/files/")
	if filePath == "" || filePath == r.URL.Path {
		JSONError(w, http.StatusBadRequest, "File path required.")
		return
	}

	if url := h.store.URL(filePath); strings.HasPrefix(url, "https://") {
		http.Redirect(w, r, url, http.StatusTemporaryRedirect)
		return
	}

	local, ok := h.store.(*storage.LocalStore)
	if !ok {
		JSONError(w, http.StatusNotFound, "File not found.")
		return
	}
	full, err := local.Resolve(filePath)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "File path required.")
		return
	}
	http.ServeFile(w, r, full)
}

// sanitizeFilename removes path separators and unsafe characters.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
