package commands

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"resourcedex/internal/application"
	"resourcedex/internal/domain"
	"resourcedex/internal/ports"
)

// QueryCommand runs one stateless query against a dataset source:
// filter, rank by search term, then an explicit sort if one was requested.
type QueryCommand struct {
	source     ports.DatasetSource
	logger     *zap.Logger
	Filters    map[string]string // column name -> exact value
	Search     string
	SortField  string
	Descending bool
}

// NewQueryCommand creates a new QueryCommand
func NewQueryCommand(source ports.DatasetSource, logger *zap.Logger) *QueryCommand {
	return &QueryCommand{
		source:  source,
		logger:  logger,
		Filters: map[string]string{},
	}
}

// Validate checks the command arguments
func (c *QueryCommand) Validate() error {
	_, err := c.State()
	return err
}

// State resolves the raw arguments into a query state
func (c *QueryCommand) State() (domain.QueryState, error) {
	state := domain.NewQueryState()

	// Resolve in a stable order so the first bad name is always the one reported
	names := make([]string, 0, len(c.Filters))
	for name := range c.Filters {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		f, err := application.ValidateFilterField("filter", name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v := c.Filters[name]; v != "" {
			state.Filters[f] = v
		}
	}

	state.SearchTerm = c.Search

	if c.SortField != "" {
		f, err := application.ValidateField("sort", c.SortField)
		if err != nil {
			errs = append(errs, err)
		} else {
			state.Sort = domain.SortSpec{Field: f, Ascending: !c.Descending}
		}
	}

	if len(errs) > 0 {
		return state, errors.Join(errs...)
	}
	return state, nil
}

// Execute runs the query and returns the result set
func (c *QueryCommand) Execute(ctx context.Context) (application.Result, error) {
	state, err := c.State()
	if err != nil {
		return application.Result{}, err
	}

	records, err := application.LoadDataset(ctx, c.source, c.logger)
	if err != nil {
		return application.Result{}, err
	}

	return Evaluate(records, state), nil
}

// Evaluate applies state to records and summarizes the outcome
func Evaluate(records []domain.Record, state domain.QueryState) application.Result {
	result := state.Run(records)

	order := application.OrderDataset
	switch {
	case state.Sort.Active():
		order = application.OrderColumn
	case state.Term() != "":
		order = application.OrderRelevance
	}

	return application.Result{
		Records:          result,
		ResultCount:      len(result),
		TotalCount:       len(records),
		ActiveDimensions: state.ActiveDimensions(),
		Sort:             state.Sort,
		Order:            order,
	}
}
