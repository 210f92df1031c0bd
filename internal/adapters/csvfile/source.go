package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"resourcedex/internal/domain"
)

const utf8BOM = "\ufeff"

// Source implements ports.DatasetSource for a CSV export whose first row
// holds the dataset keys (Category, Subcategory, Resource Name, ...)
type Source struct {
	path string
}

// NewSource creates a new CSV dataset source
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Describe returns the file path
func (s *Source) Describe() string {
	return s.path
}

// Load reads every row of the file
func (s *Source) Load(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	return ReadRecords(f)
}

// ReadRecords parses CSV rows keyed by the header row. Short rows leave the
// remaining fields empty and cells beyond the header are dropped. Columns
// that are not record fields are ignored.
func ReadRecords(r io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []domain.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		values := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(row) {
				values[key] = row[i]
			}
		}
		records = append(records, domain.RecordFromMap(values))
	}

	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}
