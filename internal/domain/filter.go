package domain

import "slices"

// Filters maps a field to the exact value it must hold.
// An empty value means the field is unconstrained.
type Filters map[Field]string

// Active returns the constrained fields in FilterFields order, followed by any
// other constrained field in Columns order.
func (f Filters) Active() []Field {
	var active []Field
	for _, field := range Columns {
		if f[field] != "" {
			active = append(active, field)
		}
	}
	slices.SortStableFunc(active, func(a, b Field) int {
		return filterRank(a) - filterRank(b)
	})
	return active
}

// Clone returns an independent copy without empty entries
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for field, v := range f {
		if v != "" {
			out[field] = v
		}
	}
	return out
}

// Matches reports whether a record satisfies every non-empty filter
func (f Filters) Matches(r Record) bool {
	for field, want := range f {
		if want == "" {
			continue
		}
		if r.Value(field) != want {
			return false
		}
	}
	return true
}

// ApplyFilters returns the records matching every non-empty filter, in input
// order. The input slice is never modified.
func ApplyFilters(records []Record, filters Filters) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if filters.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// DistinctValues returns the unique values of a field across records,
// sorted ascending.
func DistinctValues(records []Record, field Field) []string {
	seen := make(map[string]struct{}, len(records))
	values := make([]string, 0)
	for _, r := range records {
		v := r.Value(field)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

// Facets returns the distinct values of every filterable field
func Facets(records []Record) map[Field][]string {
	facets := make(map[Field][]string, len(FilterFields))
	for _, f := range FilterFields {
		facets[f] = DistinctValues(records, f)
	}
	return facets
}

func filterRank(f Field) int {
	if i := slices.Index(FilterFields, f); i >= 0 {
		return i
	}
	return len(FilterFields) + slices.Index(Columns, f)
}
