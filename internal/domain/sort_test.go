package domain

import (
	"math"
	"reflect"
	"slices"
	"testing"
)

func TestParseLeadingNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"10", 10, true},
		{"9", 9, true},
		{"  42", 42, true},
		{"12 hours", 12, true},
		{"3.5k", 3.5, true},
		{"-2", -2, true},
		{".5", 0.5, true},
		{"1e3", 1000, true},
		{"1e", 1, true},
		{"Infinity", math.Inf(1), true},
		{"Free", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{".", 0, false},
		{"$20", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLeadingNumber(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseLeadingNumber(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseLeadingNumber(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"numeric beats lexicographic", "9", "10", -1},
		{"numeric greater", "100", "20", 1},
		{"numeric equal", "5", "5.0", 0},
		{"case insensitive strings", "Apple", "banana", -1},
		{"case only difference", "apple", "APPLE", 0},
		{"mixed falls back to strings", "10", "Free", -1},
		{"empty sorts first", "", "a", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareValues(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareValues(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSortSpec_Toggle(t *testing.T) {
	var spec SortSpec

	spec = spec.Toggle(FieldName)
	if spec.Field != FieldName || !spec.Ascending {
		t.Fatalf("first sort should be ascending on name, got %+v", spec)
	}

	spec = spec.Toggle(FieldName)
	if spec.Field != FieldName || spec.Ascending {
		t.Fatalf("second sort on same field should flip to descending, got %+v", spec)
	}

	spec = spec.Toggle(FieldCost)
	if spec.Field != FieldCost || !spec.Ascending {
		t.Fatalf("switching field should reset to ascending, got %+v", spec)
	}
}

func TestSortRecords(t *testing.T) {
	records := []Record{
		{Name: "banana", Priority: "10"},
		{Name: "Apple", Priority: "9"},
		{Name: "cherry", Priority: "100"},
	}

	byName := SortRecords(records, SortSpec{Field: FieldName, Ascending: true})
	if got := names(byName); !reflect.DeepEqual(got, []string{"Apple", "banana", "cherry"}) {
		t.Errorf("ascending by name = %v", got)
	}

	byPriority := SortRecords(records, SortSpec{Field: FieldPriority, Ascending: true})
	if got := names(byPriority); !reflect.DeepEqual(got, []string{"Apple", "banana", "cherry"}) {
		t.Errorf("ascending numeric priority = %v", got)
	}

	desc := SortRecords(records, SortSpec{Field: FieldPriority, Ascending: false})
	if got := names(desc); !reflect.DeepEqual(got, []string{"cherry", "banana", "Apple"}) {
		t.Errorf("descending numeric priority = %v", got)
	}

	if got := names(records); !reflect.DeepEqual(got, []string{"banana", "Apple", "cherry"}) {
		t.Errorf("input was reordered: %v", got)
	}
}

func TestSortRecords_DescendingReversesAscending(t *testing.T) {
	records := sampleRecords()
	spec := SortSpec{}.Toggle(FieldName)

	asc := SortRecords(records, spec)
	desc := SortRecords(asc, spec.Toggle(FieldName))

	reversed := slices.Clone(asc)
	slices.Reverse(reversed)
	if !reflect.DeepEqual(desc, reversed) {
		t.Errorf("descending = %v, want %v", names(desc), names(reversed))
	}
}

func TestSortRecords_Idempotent(t *testing.T) {
	spec := SortSpec{Field: FieldCategory, Ascending: true}

	once := SortRecords(sampleRecords(), spec)
	twice := SortRecords(once, spec)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("sorting twice changed the order: %v vs %v", names(once), names(twice))
	}
}

func TestSortRecords_InactiveSpec(t *testing.T) {
	records := sampleRecords()
	got := SortRecords(records, SortSpec{})
	if !reflect.DeepEqual(got, records) {
		t.Errorf("inactive sort changed the order: %v", names(got))
	}
}
