// Package storage persists generated files (report exports, the settings
// logo) either on local disk or in Cloudflare R2.
package storage

import (
	"context"
	"io"
)

// Store is implemented by LocalStore and R2Store.
type Store interface {
	// Save writes the contents of r under path and returns its metadata.
	Save(ctx context.Context, path string, r io.Reader, contentType string) (*FileInfo, error)
	Delete(ctx context.Context, path string) error
	// URL is the address the frontend uses to fetch path.
	URL(path string) string
}

// FileInfo describes a stored file.
type FileInfo struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}
