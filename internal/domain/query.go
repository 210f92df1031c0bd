package domain

import "strings"

// SearchDimension names the free-text search in the list of active dimensions
const SearchDimension = "Search"

// QueryState is everything the user has asked for: exact filters, a search
// term and an optional explicit sort.
type QueryState struct {
	Filters    Filters
	SearchTerm string
	Sort       SortSpec
}

// NewQueryState returns the startup state: no filters, no search, no sort
func NewQueryState() QueryState {
	return QueryState{Filters: Filters{}}
}

// Clone returns a copy that shares nothing with q
func (q QueryState) Clone() QueryState {
	return QueryState{
		Filters:    q.Filters.Clone(),
		SearchTerm: q.SearchTerm,
		Sort:       q.Sort,
	}
}

// Term returns the search term with surrounding whitespace removed
func (q QueryState) Term() string {
	return strings.TrimSpace(q.SearchTerm)
}

// ActiveDimensions returns the display names of the constrained filters,
// followed by SearchDimension when the search input is non-empty.
func (q QueryState) ActiveDimensions() []string {
	dims := make([]string, 0, len(FilterFields)+1)
	for _, f := range q.Filters.Active() {
		dims = append(dims, f.Key())
	}
	if q.SearchTerm != "" {
		dims = append(dims, SearchDimension)
	}
	return dims
}

// Describe renders the active dimensions the way the status line shows them
func (q QueryState) Describe() string {
	return DescribeDimensions(q.ActiveDimensions())
}

// DescribeDimensions renders a list of active dimension names for display
func DescribeDimensions(dims []string) string {
	if len(dims) == 0 {
		return "No filters applied"
	}
	return "Active filters: " + strings.Join(dims, ", ")
}

// Run evaluates the state against records in one pass: filter, rank by the
// search term when present, then apply the explicit sort if one is set.
func (q QueryState) Run(records []Record) []Record {
	result := ApplyFilters(records, q.Filters)

	if term := q.Term(); term != "" {
		ranked := Rank(result, term)
		result = make([]Record, len(ranked))
		for i, sr := range ranked {
			result[i] = sr.Record
		}
	}

	if q.Sort.Active() {
		result = SortRecords(result, q.Sort)
	}
	return result
}
