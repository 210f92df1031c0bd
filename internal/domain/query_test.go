package domain

import (
	"reflect"
	"testing"
)

func TestQueryState_ActiveDimensions(t *testing.T) {
	tests := []struct {
		name  string
		state QueryState
		want  []string
		text  string
	}{
		{
			name:  "startup state",
			state: NewQueryState(),
			want:  []string{},
			text:  "No filters applied",
		},
		{
			name: "filters in display order then search",
			state: QueryState{
				Filters:    Filters{FieldPriority: "High", FieldCategory: "AI"},
				SearchTerm: "deep",
			},
			want: []string{"Category", "Priority", "Search"},
			text: "Active filters: Category, Priority, Search",
		},
		{
			name:  "whitespace search still counts as active",
			state: QueryState{SearchTerm: "  "},
			want:  []string{"Search"},
			text:  "Active filters: Search",
		},
		{
			name:  "skill level uses dataset key",
			state: QueryState{Filters: Filters{FieldSkillLevel: "Beginner"}},
			want:  []string{"Skill Level"},
			text:  "Active filters: Skill Level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.ActiveDimensions(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ActiveDimensions() = %q, want %q", got, tt.want)
			}
			if got := tt.state.Describe(); got != tt.text {
				t.Errorf("Describe() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestDescribeDimensions(t *testing.T) {
	if got := DescribeDimensions(nil); got != "No filters applied" {
		t.Errorf("DescribeDimensions(nil) = %q", got)
	}
	if got := DescribeDimensions([]string{"Category", SearchDimension}); got != "Active filters: Category, Search" {
		t.Errorf("DescribeDimensions() = %q", got)
	}
}

func TestQueryState_Run(t *testing.T) {
	records := []Record{
		{Category: "AI", Cost: "Free", Name: "Prompt Engineering Guide"},
		{Category: "AI", Cost: "Paid", Name: "Deep Learning Course"},
	}

	state := NewQueryState()
	state.Filters[FieldCategory] = "AI"
	if got := state.Run(records); len(got) != 2 {
		t.Fatalf("category filter should keep both records, got %d", len(got))
	}

	state.SearchTerm = "deep"
	got := state.Run(records)
	if len(got) != 1 || got[0].Name != "Deep Learning Course" {
		t.Fatalf("search should keep only the course, got %v", names(got))
	}
	if s := Score(got[0].SearchText(), "deep"); s < ExactMatchScore {
		t.Errorf("expected substring score, got %d", s)
	}

	state.SearchTerm = "zzzzz"
	if got := state.Run(records); len(got) != 0 {
		t.Errorf("expected no results, got %v", names(got))
	}
}

func TestQueryState_RunAppliesExplicitSortAfterRanking(t *testing.T) {
	records := []Record{
		{Name: "b-e-t-a"},
		{Name: "Beta"},
		{Name: "alphabet"},
	}

	state := QueryState{SearchTerm: "bet"}
	ranked := names(state.Run(records))
	if ranked[0] != "Beta" {
		t.Fatalf("expected substring match first, got %v", ranked)
	}

	state.Sort = SortSpec{Field: FieldName, Ascending: true}
	sorted := names(state.Run(records))
	if !reflect.DeepEqual(sorted, []string{"alphabet", "b-e-t-a", "Beta"}) {
		t.Errorf("sorted = %v", sorted)
	}
}

func TestQueryState_CloneIsIndependent(t *testing.T) {
	state := NewQueryState()
	state.Filters[FieldCost] = "Free"

	clone := state.Clone()
	clone.Filters[FieldCost] = "Paid"

	if state.Filters[FieldCost] != "Free" {
		t.Error("clone shares the filter map with the original")
	}
}
