package domain

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// SortSpec describes an explicit column sort
type SortSpec struct {
	Field     Field
	Ascending bool
}

// Active reports whether a column sort has been requested
func (s SortSpec) Active() bool {
	return s.Field != FieldUnknown
}

// Toggle returns the spec produced by sorting on field: the same field flips
// direction, any other field starts ascending.
func (s SortSpec) Toggle(field Field) SortSpec {
	if s.Active() && s.Field == field {
		return SortSpec{Field: field, Ascending: !s.Ascending}
	}
	return SortSpec{Field: field, Ascending: true}
}

// Direction returns "asc" or "desc"
func (s SortSpec) Direction() string {
	if s.Ascending {
		return "asc"
	}
	return "desc"
}

// ParseLeadingNumber parses the longest numeric prefix of s, after leading
// whitespace: "12 hours" is 12, "3.5k" is 3.5, "Free" is not a number.
func ParseLeadingNumber(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if strings.HasPrefix(s[i:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0, false
	}

	// Exponent only counts when at least one digit follows it
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		// Out of range values come back as ±Inf with ErrRange
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// CompareValues orders two field values: numerically when both parse as
// numbers, otherwise case-insensitively as strings.
func CompareValues(a, b string) int {
	an, aok := ParseLeadingNumber(a)
	bn, bok := ParseLeadingNumber(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// SortRecords returns a copy of records ordered by spec. Ties keep their
// input order. An inactive spec returns the records unchanged.
func SortRecords(records []Record, spec SortSpec) []Record {
	out := slices.Clone(records)
	if !spec.Active() {
		return out
	}

	slices.SortStableFunc(out, func(a, b Record) int {
		c := CompareValues(a.Value(spec.Field), b.Value(spec.Field))
		if !spec.Ascending {
			c = -c
		}
		return c
	})
	return out
}
