package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/config"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewLocalStore(dir, "/api/files/")
	require.NoError(t, err)

	info, err := s.Save(context.Background(), "reports/2024_reporte.csv", strings.NewReader("a,b\n"), "text/csv")
	require.NoError(t, err)
	assert.Equal(t, "/api/files/reports/2024_reporte.csv", info.URL)
	assert.Equal(t, "2024_reporte.csv", info.FileName)
	assert.Equal(t, int64(4), info.FileSize)

	raw, err := os.ReadFile(filepath.Join(dir, "reports", "2024_reporte.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(raw))

	require.NoError(t, s.Delete(context.Background(), "reports/2024_reporte.csv"))
	require.NoError(t, s.Delete(context.Background(), "reports/2024_reporte.csv"), "missing file is not an error")
}

func TestLocalStoreStaysInsideDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewLocalStore(dir, "/api/files")
	require.NoError(t, err)

	full, err := s.Resolve("../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "etc", "passwd"), full)

	_, err = s.Resolve("")
	assert.Error(t, err)
}

func TestLocalStoreHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	s, err := NewLocalStore(t.TempDir(), "/api/files")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Save(ctx, "x.csv", strings.NewReader("x"), "text/csv")
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeObjects struct {
	put, head, del error
	body           string
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.put != nil {
		return nil, f.put
	}
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjects) HeadObject(context.Context, *s3.HeadObjectInput, ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.head != nil {
		return nil, f.head
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(f.body)))}, nil
}

func (f *fakeObjects) DeleteObject(context.Context, *s3.DeleteObjectInput, ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	return &s3.DeleteObjectOutput{}, f.del
}

func TestR2StoreSave(t *testing.T) {
	t.Parallel()

	fake := &fakeObjects{}
	s := newR2Store(fake, "inmogestor", "https://pub-123.r2.dev/")

	info, err := s.Save(context.Background(), "settings/logo.png", strings.NewReader("png!"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://pub-123.r2.dev/settings/logo.png", info.URL)
	assert.Equal(t, "logo.png", info.FileName)
	assert.Equal(t, int64(4), info.FileSize)
}

func TestR2StoreErrorsAreTransient(t *testing.T) {
	t.Parallel()

	s := newR2Store(&fakeObjects{put: errors.New("timeout")}, "b", "https://x")
	_, err := s.Save(context.Background(), "a", strings.NewReader(""), "text/csv")
	assert.True(t, apperr.IsTransient(err))

	s = newR2Store(&fakeObjects{head: errors.New("503")}, "b", "https://x")
	_, err = s.Save(context.Background(), "a", strings.NewReader(""), "text/csv")
	assert.True(t, apperr.IsTransient(err))

	s = newR2Store(&fakeObjects{del: errors.New("503")}, "b", "https://x")
	assert.True(t, apperr.IsTransient(s.Delete(context.Background(), "a")))
}

func TestNewPicksLocalWithoutR2(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Upload: config.UploadConfig{Dir: t.TempDir(), BaseURL: "/api/files"}}
	s, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, s)
}
