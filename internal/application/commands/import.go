package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"resourcedex/internal/application"
	"resourcedex/internal/domain"
	"resourcedex/internal/ports"
)

// ImportCommand loads a dataset and stores it as the local snapshot
type ImportCommand struct {
	source ports.DatasetSource
	store  ports.DatasetStore
	logger *zap.Logger
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(source ports.DatasetSource, store ports.DatasetStore, logger *zap.Logger) *ImportCommand {
	return &ImportCommand{
		source: source,
		store:  store,
		logger: logger,
	}
}

// Execute replaces the stored snapshot with the source's records
func (c *ImportCommand) Execute(ctx context.Context) (*domain.ImportStats, error) {
	records, err := application.LoadDataset(ctx, c.source, c.logger)
	if err != nil {
		return nil, err
	}

	stats, err := c.store.Import(ctx, c.source.Describe(), records)
	if err != nil {
		return nil, fmt.Errorf("failed to import snapshot: %w", err)
	}
	return stats, nil
}
