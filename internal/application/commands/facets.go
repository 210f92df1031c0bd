package commands

import (
	"context"

	"go.uber.org/zap"

	"resourcedex/internal/application"
	"resourcedex/internal/domain"
	"resourcedex/internal/ports"
)

// Facet is the set of selectable filter values for one field
type Facet struct {
	Field  domain.Field
	Values []string
}

// FacetsCommand lists the distinct values of filterable fields
type FacetsCommand struct {
	source ports.DatasetSource
	logger *zap.Logger
	Field  string // optional, all filterable fields when empty
}

// NewFacetsCommand creates a new FacetsCommand
func NewFacetsCommand(source ports.DatasetSource, logger *zap.Logger, field string) *FacetsCommand {
	return &FacetsCommand{
		source: source,
		logger: logger,
		Field:  field,
	}
}

// Validate checks the command arguments
func (c *FacetsCommand) Validate() error {
	if c.Field == "" {
		return nil
	}
	_, err := application.ValidateFilterField("field", c.Field)
	return err
}

// Execute returns facets in filter display order
func (c *FacetsCommand) Execute(ctx context.Context) ([]Facet, error) {
	fields := domain.FilterFields
	if c.Field != "" {
		f, err := application.ValidateFilterField("field", c.Field)
		if err != nil {
			return nil, err
		}
		fields = []domain.Field{f}
	}

	records, err := application.LoadDataset(ctx, c.source, c.logger)
	if err != nil {
		return nil, err
	}

	facets := make([]Facet, 0, len(fields))
	for _, f := range fields {
		facets = append(facets, Facet{
			Field:  f,
			Values: domain.DistinctValues(records, f),
		})
	}
	return facets, nil
}
