// Package archive implements the zip Archiver port.
package archive

import (
	"archive/zip"
	"os"
	"path/filepath"

	"go.trai.ch/binpack/internal/core/domain"
	"go.trai.ch/binpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Archiver = (*Writer)(nil)

// Writer writes flat zip archives.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write creates (or truncates) the archive at archivePath and adds each
// file as a flat, deflated entry named by its basename. On any failure
// the partially written archive is removed.
func (w *Writer) Write(archivePath string, files []string) (err error) {
	zipFile, err := os.Create(archivePath) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrArchiveCreateFailed, err.Error()), "path", archivePath)
	}

	defer func() {
		_ = zipFile.Close()
		if err != nil {
			_ = os.Remove(archivePath)
		}
	}()

	zipWriter := zip.NewWriter(zipFile)

	for _, file := range files {
		if err = w.addEntry(zipWriter, file); err != nil {
			return err
		}
	}

	if err = zipWriter.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrArchiveCloseFailed, err.Error()), "path", archivePath)
	}

	return nil
}

// addEntry adds a single file to the archive under its basename.
func (w *Writer) addEntry(zipWriter *zip.Writer, path string) error {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFileOpenFailed, err.Error()), "path", path)
	}

	header, err := zip.FileInfoHeader(fileInfo)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error()), "path", path)
	}
	header.Name = filepath.Base(path)
	header.Method = zip.Deflate

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error()), "path", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFileOpenFailed, err.Error()), "path", path)
	}

	if _, err := writer.Write(data); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error()), "path", path)
	}

	return nil
}
