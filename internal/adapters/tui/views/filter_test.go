package views

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"resourcedex/internal/domain"
)

func openPicker(current domain.Filters) *FilterModel {
	m := NewFilterModel()
	m.SetSize(120, 40)
	m.Open(domain.Facets(testRecords()), current)
	return m
}

func TestFilter_FieldList(t *testing.T) {
	m := openPicker(domain.Filters{domain.FieldCategory: "AI"})

	if m.Stage() != FilterStageField {
		t.Fatalf("stage = %v, want field list", m.Stage())
	}
	view := m.View()
	for _, f := range domain.FilterFields {
		if !strings.Contains(view, f.Key()) {
			t.Errorf("field list missing %q", f.Key())
		}
	}
	if strings.Contains(view, "Resource Name") {
		t.Error("Resource Name is not filterable and should not be listed")
	}
	if !strings.Contains(view, "AI") {
		t.Error("expected current Category value in field list")
	}
}

func TestFilter_SelectValue(t *testing.T) {
	m := openPicker(nil)

	// Category is first
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Stage() != FilterStageValue || m.Field() != domain.FieldCategory {
		t.Fatalf("stage/field = %v/%v, want value/Category", m.Stage(), m.Field())
	}

	want := []string{AllValues, "AI", "Data", "Web"}
	if got := m.Options(); !reflect.DeepEqual(got, want) {
		t.Errorf("options = %v, want %v", got, want)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	sel, ok := cmd().(FilterSelectedMsg)
	if !ok {
		t.Fatalf("msg = %T, want FilterSelectedMsg", cmd())
	}
	if sel.Field != domain.FieldCategory || sel.Value != "AI" {
		t.Errorf("selected = %+v, want Category=AI", sel)
	}
}

func TestFilter_AllClearsFilter(t *testing.T) {
	m := openPicker(domain.Filters{domain.FieldCategory: "AI"})

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	sel := cmd().(FilterSelectedMsg)
	if sel.Value != "" {
		t.Errorf("value = %q, want empty for %s", sel.Value, AllValues)
	}
}

func TestFilter_FuzzyNarrowing(t *testing.T) {
	m := openPicker(nil)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for _, r := range "we" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	if got := m.Options(); !reflect.DeepEqual(got, []string{"Web"}) {
		t.Errorf("options = %v, want [Web]", got)
	}

	for _, r := range "zz" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if got := m.Options(); len(got) != 0 {
		t.Errorf("options = %v, want none", got)
	}
	if !strings.Contains(m.View(), "No Category values match") {
		t.Error("expected empty match hint")
	}

	// Enter on an empty list does nothing
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("expected no command for an empty list")
	}
}

func TestFilter_EscGoesBack(t *testing.T) {
	m := openPicker(nil)

	// Skill Level is the fifth field
	for i := 0; i < 4; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Field() != domain.FieldSkillLevel {
		t.Fatalf("field = %v, want Skill Level", m.Field())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Stage() != FilterStageField {
		t.Fatalf("stage = %v, want field list", m.Stage())
	}
	if got := m.paginator.Cursor(); got != 4 {
		t.Errorf("cursor = %d, want 4", got)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(SwitchToBrowserMsg); !ok {
		t.Error("esc on the field list should return to the browser")
	}
}
