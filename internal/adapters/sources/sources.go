package sources

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"resourcedex/internal/adapters/csvfile"
	"resourcedex/internal/adapters/jsonfile"
	"resourcedex/internal/adapters/sqlite"
	"resourcedex/internal/ports"
)

// Kind identifies a dataset file format
type Kind string

const (
	KindJSON   Kind = "json"
	KindCSV    Kind = "csv"
	KindSQLite Kind = "sqlite"
)

// DetectKind picks a dataset format from the file extension
func DetectKind(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return KindJSON, nil
	case ".csv":
		return KindCSV, nil
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite, nil
	case "":
		return "", fmt.Errorf("cannot detect dataset format of %q: no file extension", path)
	default:
		return "", fmt.Errorf("unsupported dataset format %q", ext)
	}
}

// Open returns a dataset source for path. The returned close function
// releases any handle the source holds and is always safe to call.
func Open(path string, logger *zap.Logger) (ports.DatasetSource, func() error, error) {
	noop := func() error { return nil }

	kind, err := DetectKind(path)
	if err != nil {
		return nil, noop, err
	}

	switch kind {
	case KindCSV:
		return csvfile.NewSource(path), noop, nil
	case KindSQLite:
		store := sqlite.NewStore(logger)
		if err := store.Open(path); err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	default:
		return jsonfile.NewSource(path), noop, nil
	}
}
