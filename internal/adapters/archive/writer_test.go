package archive_test

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/binpack/internal/adapters/archive"
	"go.trai.ch/binpack/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readEntries(t *testing.T, archivePath string) map[string]string {
	t.Helper()
	reader, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer reader.Close()

	entries := make(map[string]string, len(reader.File))
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(data)
	}
	return entries
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeFile(t, dir, "App.dll", "binary"),
		writeFile(t, dir, "App.xml", "<doc/>"),
		writeFile(t, dir, "App.exe.config", "<configuration/>"),
	}
	archivePath := filepath.Join(dir, "App.zip")

	writer := archive.NewWriter()
	require.NoError(t, writer.Write(archivePath, files))

	entries := readEntries(t, archivePath)
	assert.Equal(t, map[string]string{
		"App.dll":        "binary",
		"App.xml":        "<doc/>",
		"App.exe.config": "<configuration/>",
	}, entries)
}

func TestWrite_FlatEntryNames(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "bin", "Debug")
	require.NoError(t, os.MkdirAll(nested, 0o750))
	file := writeFile(t, nested, "Lib.dll", "x")
	archivePath := filepath.Join(dir, "Lib.zip")

	writer := archive.NewWriter()
	require.NoError(t, writer.Write(archivePath, []string{file}))

	entries := readEntries(t, archivePath)
	_, ok := entries["Lib.dll"]
	assert.True(t, ok, "entry must be named by basename only")
}

func TestWrite_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "App.dll", "v2")
	archivePath := filepath.Join(dir, "App.zip")
	require.NoError(t, os.WriteFile(archivePath, []byte("stale zip"), 0o644))

	writer := archive.NewWriter()
	require.NoError(t, writer.Write(archivePath, []string{file}))

	entries := readEntries(t, archivePath)
	assert.Equal(t, "v2", entries["App.dll"])
}

func TestWrite_MissingInputRemovesArchive(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "App.zip")

	writer := archive.NewWriter()
	err := writer.Write(archivePath, []string{filepath.Join(dir, "gone.dll")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFileOpenFailed))

	_, statErr := os.Stat(archivePath)
	assert.True(t, os.IsNotExist(statErr), "partial archive must be removed")
}

func TestWrite_UncreatableArchive(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "App.dll", "x")

	writer := archive.NewWriter()
	err := writer.Write(filepath.Join(dir, "missing", "App.zip"), []string{file})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrArchiveCreateFailed))
}
