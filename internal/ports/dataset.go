package ports

import (
	"context"

	"resourcedex/internal/domain"
)

// DatasetSource loads the full record collection once at startup
type DatasetSource interface {
	// Load returns every record in source order
	Load(ctx context.Context) ([]domain.Record, error)

	// Describe returns a human-readable name for the source (usually a path)
	Describe() string
}

// DatasetStore keeps an imported copy of a dataset between runs.
// A store is also a DatasetSource for the snapshot it holds.
type DatasetStore interface {
	DatasetSource

	// Lifecycle
	Open(path string) error
	Close() error

	// Import replaces the stored snapshot with records in one transaction
	Import(ctx context.Context, source string, records []domain.Record) (*domain.ImportStats, error)

	// Info describes the current snapshot, nil when nothing was imported yet
	Info(ctx context.Context) (*domain.SnapshotInfo, error)
}

// DatasetWriter persists a record collection in an exchange format
type DatasetWriter interface {
	Write(ctx context.Context, records []domain.Record) error
	Describe() string
}
