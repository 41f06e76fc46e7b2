package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inmogestor-backend/internal/config"
	"inmogestor-backend/internal/storage"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Env:    "test",
		Log:    config.LogConfig{Level: "error", ServiceName: "inmogestor-test"},
		Upload: config.UploadConfig{Dir: t.TempDir(), BaseURL: "/api/files"},
		Digest: config.DigestConfig{Enabled: false, Schedule: "0 8 * * *", ExpiryWindow: 60},
	}
}

func TestNewWithFixtures(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close(context.Background()) })

	assert.Nil(t, a.DB)
	assert.Equal(t, "fixtures", a.Catalog.Source())
	assert.NotEmpty(t, a.Catalog.Payments())
	assert.IsType(t, &storage.LocalStore{}, a.Files)
	assert.Equal(t, "InmoGestor", a.Settings.General.CompanyName)
	require.NoError(t, a.Start())
}

func TestNewSettingsFile(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("general:\n  companyName: Inmobiliaria Sur\n"), 0o600))
	cfg.Catalog.SettingsFile = path

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close(context.Background()) })

	assert.Equal(t, "Inmobiliaria Sur", a.Settings.General.CompanyName)
	assert.Equal(t, "ARS", a.Settings.General.Currency)
}

func TestNewMissingSettingsFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Catalog.SettingsFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := New(context.Background(), cfg)
	assert.Error(t, err)
}

func TestStartFailureStillCloses(t *testing.T) {
	cfg := testConfig(t)
	cfg.Digest = config.DigestConfig{Enabled: true, Schedule: "every day", ExpiryWindow: 60}

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)

	assert.Error(t, a.Start())
	assert.NotPanics(t, func() { a.Close(context.Background()) })
}
