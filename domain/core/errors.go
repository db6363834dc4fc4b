package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)
	ErrDatasetNotFound = fmt.Errorf("%w: dataset", ErrNotFound)

	// Ingestion errors
	ErrEmptyDataset  = errors.New("dataset has no data rows")
	ErrMissingColumn = errors.New("required column missing")
	ErrNotNumeric    = errors.New("non-numeric concentration value")

	// Analysis errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// Error constructors with context
func NewMissingColumnError(column string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumn, column)
}

func NewNotNumericError(column string, row int, value string) error {
	return fmt.Errorf("%w: column %s, row %d: %q", ErrNotNumeric, column, row, value)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsIngestionError(err error) bool {
	return errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrNotNumeric)
}
