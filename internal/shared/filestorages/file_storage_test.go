package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"log_analysis_results.csv",
		"analyses/01ARZ3NDEKTSV4RRFFQ69G5FAV.json",
		"nested/deep/path/report.csv",
		"report-with-dashes.csv",
		"report.with.dots.csv",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			data := "section,value"
			result, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			fullPath := filepath.Join(storage.(*fileStorage).dir, key)
			assert.Equal(t, fullPath, result.Location)
			content, err := os.ReadFile(fullPath)
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestPut_AllowOverwriteFalse_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "analyses/01ARZ3NDEKTSV4RRFFQ69G5FAV.json"
	_, err := storage.Put(ctx, key, strings.NewReader("first"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	_, err = storage.Put(ctx, key, strings.NewReader("second"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestPut_AllowOverwriteTrue_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "log_analysis_results.csv"
	_, err := storage.Put(ctx, key, strings.NewReader("run 1"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)

	result, err := storage.Put(ctx, key, strings.NewReader("run 2"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, key, result.FileKey)

	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
	require.NoError(t, err)
	assert.Equal(t, "run 2", string(content))
}

func TestPut_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "log_analysis_results.csv", strings.NewReader("x"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	_, err = storage.Put(ctx, "other.csv", strings.NewReader("y"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	entries, err := os.ReadDir(storage.(*fileStorage).dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), ".tmp-"), "temp file %q left behind", entry.Name())
	}
	assert.Len(t, entries, 2)
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../report.csv",
		"../../etc/passwd",
		"analyses/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{AllowOverwrite: false})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)

			_, err = storage.Location(key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "analyses/missing.json")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "analyses/01ARZ3NDEKTSV4RRFFQ69G5FAV.json"
	data := `{"analysisId":"01ARZ3NDEKTSV4RRFFQ69G5FAV","requestsByClient":[]}`

	_, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	readCloser, err := storage.Get(ctx, key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("  ")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func newTestStorage(t *testing.T) FileStorage {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}
