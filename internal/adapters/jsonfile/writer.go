package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"resourcedex/internal/domain"
)

// Writer implements ports.DatasetWriter, producing the JSON array the
// viewer loads. Output is indented by two spaces and keeps non-ASCII text as-is.
type Writer struct {
	path string
}

// NewWriter creates a new JSON dataset writer
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Describe returns the file path
func (w *Writer) Describe() string {
	return w.path
}

// Write replaces the file with records
func (w *Writer) Write(ctx context.Context, records []domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.path, err)
	}

	if err := Encode(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes records as an indented JSON array
func Encode(out io.Writer, records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	return nil
}
