package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"resourcedex/internal/config"
	"resourcedex/internal/domain"
)

// Source implements ports.DatasetSource for a JSON array of record objects
type Source struct {
	path string
}

// NewSource creates a new JSON dataset source
func NewSource(path string) *Source {
	return &Source{path: config.ExpandHome(path)}
}

// Describe returns the file path
func (s *Source) Describe() string {
	return s.path
}

// Load reads and decodes the whole file
func (s *Source) Load(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a JSON array of objects into records. Keys outside the
// record schema are ignored, missing keys become "", and non-string values
// keep their JSON text ("null" becomes "").
func Decode(r io.Reader) ([]domain.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	records := make([]domain.Record, 0, len(raw))
	for _, obj := range raw {
		values := make(map[string]string, len(obj))
		for k, v := range obj {
			values[k] = stringify(v)
		}
		records = append(records, domain.RecordFromMap(values))
	}
	return records, nil
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(val); err != nil {
			return fmt.Sprint(val)
		}
		return strings.TrimSpace(buf.String())
	}
}
