package application

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"resourcedex/internal/domain"
)

// Order tells which step produced the current ordering of a result set
type Order int

const (
	OrderDataset   Order = iota // dataset order, no search and no sort
	OrderRelevance              // ranked by fuzzy score
	OrderColumn                 // explicit column sort
)

func (o Order) String() string {
	switch o {
	case OrderRelevance:
		return "relevance"
	case OrderColumn:
		return "column"
	default:
		return "dataset"
	}
}

// Result is the displayed subset of the dataset plus its summary
type Result struct {
	Records          []domain.Record
	ResultCount      int
	TotalCount       int
	ActiveDimensions []string
	Sort             domain.SortSpec
	Order            Order
}

// Empty reports whether the query matched nothing. This is a valid state,
// distinct from a failed load.
func (r Result) Empty() bool {
	return r.ResultCount == 0
}

// Summary renders the counts as "N of M resources"
func (r Result) Summary() string {
	return fmt.Sprintf("%d of %d resources", r.ResultCount, r.TotalCount)
}

// Session owns a loaded dataset and the query state applied to it.
// Every filter or search change recomputes the result set from the full
// dataset. A column sort reorders the current result set in place, so the
// most recent of search ranking and column sort decides the visible order.
// A Session is not safe for concurrent use.
type Session struct {
	records []domain.Record
	facets  map[domain.Field][]string
	state   domain.QueryState
	result  []domain.Record
	order   Order
	logger  *zap.Logger
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for recomputation traces
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session over records with the startup query state
func NewSession(records []domain.Record, opts ...Option) *Session {
	s := &Session{
		records: slices.Clip(records),
		state:   domain.NewQueryState(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.facets = domain.Facets(s.records)
	s.recompute()
	return s
}

// SetFilter constrains field to value. An empty value removes the filter.
// Fields that are not filterable are ignored.
func (s *Session) SetFilter(field domain.Field, value string) {
	if !field.IsFilterable() {
		return
	}
	if value == "" {
		delete(s.state.Filters, field)
	} else {
		s.state.Filters[field] = value
	}
	s.recompute()
}

// ClearFilter removes the filter on field
func (s *Session) ClearFilter(field domain.Field) {
	s.SetFilter(field, "")
}

// ClearFilters removes every filter and the search term
func (s *Session) ClearFilters() {
	s.state.Filters = domain.Filters{}
	s.state.SearchTerm = ""
	s.recompute()
}

// SetSearch replaces the search term. Surrounding whitespace is ignored for
// ranking but a non-empty input still counts as an active dimension.
func (s *Session) SetSearch(term string) {
	s.state.SearchTerm = term
	s.recompute()
}

// SortBy sorts the current result set on field. Sorting the same field again
// flips the direction; a new field starts ascending.
func (s *Session) SortBy(field domain.Field) domain.SortSpec {
	if field == domain.FieldUnknown {
		return s.state.Sort
	}
	s.state.Sort = s.state.Sort.Toggle(field)
	s.result = domain.SortRecords(s.result, s.state.Sort)
	s.order = OrderColumn

	s.logger.Debug("sorted result set",
		zap.String("field", field.Key()),
		zap.String("direction", s.state.Sort.Direction()),
		zap.Int("results", len(s.result)),
	)
	return s.state.Sort
}

// Result returns the current result set and its summary
func (s *Session) Result() Result {
	return Result{
		Records:          slices.Clone(s.result),
		ResultCount:      len(s.result),
		TotalCount:       len(s.records),
		ActiveDimensions: s.state.ActiveDimensions(),
		Sort:             s.state.Sort,
		Order:            s.order,
	}
}

// State returns a copy of the current query state
func (s *Session) State() domain.QueryState {
	return s.state.Clone()
}

// Facets returns the distinct values of each filterable field across the
// full dataset, computed once when the session was created.
func (s *Session) Facets() map[domain.Field][]string {
	out := make(map[domain.Field][]string, len(s.facets))
	for f, values := range s.facets {
		out[f] = slices.Clone(values)
	}
	return out
}

// Total returns the number of records in the dataset
func (s *Session) Total() int {
	return len(s.records)
}

func (s *Session) recompute() {
	result := domain.ApplyFilters(s.records, s.state.Filters)
	s.order = OrderDataset

	if term := s.state.Term(); term != "" {
		ranked := domain.Rank(result, term)
		result = make([]domain.Record, len(ranked))
		for i, sr := range ranked {
			result[i] = sr.Record
		}
		s.order = OrderRelevance
	}

	s.result = result

	s.logger.Debug("recomputed result set",
		zap.Strings("dimensions", s.state.ActiveDimensions()),
		zap.Int("results", len(s.result)),
		zap.Int("total", len(s.records)),
	)
}
