package commands

import (
	"context"

	"go.uber.org/zap"

	"resourcedex/internal/application"
	"resourcedex/internal/domain"
	"resourcedex/internal/ports"
)

// ValueCount is the number of records holding one value of a field
type ValueCount struct {
	Value string
	Count int
}

// Stats summarizes a dataset along one filterable field
type Stats struct {
	Total  int
	Field  domain.Field
	Counts []ValueCount // in facet order
}

// StatsCommand counts records per value of a field
type StatsCommand struct {
	source ports.DatasetSource
	logger *zap.Logger
	Field  string // defaults to category
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(source ports.DatasetSource, logger *zap.Logger, field string) *StatsCommand {
	return &StatsCommand{
		source: source,
		logger: logger,
		Field:  field,
	}
}

// Execute loads the dataset and counts records per value
func (c *StatsCommand) Execute(ctx context.Context) (*Stats, error) {
	field := domain.FieldCategory
	if c.Field != "" {
		f, err := application.ValidateFilterField("field", c.Field)
		if err != nil {
			return nil, err
		}
		field = f
	}

	records, err := application.LoadDataset(ctx, c.source, c.logger)
	if err != nil {
		return nil, err
	}

	return CountBy(records, field), nil
}

// CountBy counts records per distinct value of field
func CountBy(records []domain.Record, field domain.Field) *Stats {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Value(field)]++
	}

	stats := &Stats{Total: len(records), Field: field}
	for _, v := range domain.DistinctValues(records, field) {
		stats.Counts = append(stats.Counts, ValueCount{Value: v, Count: counts[v]})
	}
	return stats
}
