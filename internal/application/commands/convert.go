package commands

import (
	"context"

	"go.uber.org/zap"

	"resourcedex/internal/application"
	"resourcedex/internal/ports"
)

// ConvertCommand copies a dataset from one format to another
// (typically a CSV export into the JSON array the viewer loads).
type ConvertCommand struct {
	source ports.DatasetSource
	dest   ports.DatasetWriter
	logger *zap.Logger
}

// NewConvertCommand creates a new ConvertCommand
func NewConvertCommand(source ports.DatasetSource, dest ports.DatasetWriter, logger *zap.Logger) *ConvertCommand {
	return &ConvertCommand{
		source: source,
		dest:   dest,
		logger: logger,
	}
}

// Execute reads every record and writes it out, returning the record count
func (c *ConvertCommand) Execute(ctx context.Context) (int, error) {
	records, err := application.LoadDataset(ctx, c.source, c.logger)
	if err != nil {
		return 0, err
	}

	if err := c.dest.Write(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
