package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrDataLoad      = errors.New("data load failed")
	ErrUnknownField  = errors.New("unknown field")
	ErrNotFilterable = errors.New("field is not filterable")
	ErrNoDataset     = errors.New("no dataset loaded")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
	Err     error // optional sentinel, e.g. ErrUnknownField
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DataLoadError represents a failure to fetch or parse the dataset.
// The failure is terminal: no query runs against a dataset that failed to load.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

func (e *DataLoadError) Is(target error) bool {
	return target == ErrDataLoad
}
