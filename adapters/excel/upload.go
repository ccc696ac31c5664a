package excel

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// spoolChunkSize is the buffer size for copying uploads to disk
const spoolChunkSize = 1024 * 1024

// SpoolUpload copies an uploaded stream to a temporary file so the reader
// can open it by path (excelize works on files, not streams). An empty dir
// falls back to the system temp directory. The returned cleanup removes the
// temp file and must always be called.
func SpoolUpload(src io.Reader, originalName, dir string) (string, func(), error) {
	pattern := "insighta_upload_*" + filepath.Ext(originalName)
	tempFile, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	buf := make([]byte, spoolChunkSize)
	if _, err := io.CopyBuffer(tempFile, src, buf); err != nil {
		tempFile.Close()
		os.Remove(tempFile.Name())
		return "", nil, fmt.Errorf("failed to copy to temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		os.Remove(tempFile.Name())
		return "", nil, fmt.Errorf("failed to flush temp file: %w", err)
	}

	path := tempFile.Name()
	cleanup := func() { os.Remove(path) }
	return path, cleanup, nil
}
