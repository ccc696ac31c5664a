package core

import (
	"errors"
)

// Domain errors - centralized error definitions
var (
	// Ingestion errors
	ErrEmptyFile       = errors.New("file has no data rows")
	ErrUnsupportedFile = errors.New("unsupported file type")

	// Assistant errors
	ErrAssistantUnavailable = errors.New("assistant not configured")
	ErrAssistantCall        = errors.New("assistant call failed")
)

// IsIngestionError reports whether an error came from file ingestion
func IsIngestionError(err error) bool {
	return errors.Is(err, ErrEmptyFile) || errors.Is(err, ErrUnsupportedFile)
}
