package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"resourcedex/internal/adapters/tui/styles"
	"resourcedex/internal/domain"
)

// AllValues is the picker entry that removes a filter
const AllValues = "(All)"

// FilterStage tells which list the picker is showing
type FilterStage int

const (
	FilterStageField FilterStage = iota
	FilterStageValue
)

// FilterKeyMap defines key bindings for the filter picker
type FilterKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

var FilterKeys = FilterKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// filterOption is one row of the value list
type filterOption struct {
	value   string
	matched []int
}

// FilterModel picks a filter field and then one of its distinct values.
// Typing narrows the value list with fuzzy matching.
type FilterModel struct {
	ViewState
	stage     FilterStage
	facets    map[domain.Field][]string
	current   domain.Filters
	field     domain.Field
	input     textinput.Model
	options   []filterOption
	paginator *Paginator
}

// NewFilterModel creates a new filter picker
func NewFilterModel() *FilterModel {
	input := textinput.New()
	input.Placeholder = "Type to narrow..."
	input.Prompt = "> "

	return &FilterModel{
		input:     input,
		paginator: NewPaginator(12),
	}
}

// Open resets the picker to the field list for the given dataset facets
// and the filters currently applied
func (m *FilterModel) Open(facets map[domain.Field][]string, current domain.Filters) {
	m.facets = facets
	m.current = current.Clone()
	m.stage = FilterStageField
	m.field = domain.FieldUnknown
	m.input.Reset()
	m.input.Blur()
	m.options = nil
	m.paginator.Reset()
	m.paginator.SetTotal(len(domain.FilterFields))
}

// Init initializes the picker
func (m *FilterModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker
func (m *FilterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.stage == FilterStageValue {
			return m.updateValueStage(msg)
		}
		return m.updateFieldStage(msg)
	}

	if m.stage == FilterStageValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *FilterModel) updateFieldStage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, FilterKeys.Back), msg.String() == "q":
		return m, func() tea.Msg {
			return SwitchToBrowserMsg{}
		}
	case key.Matches(msg, FilterKeys.Up), msg.String() == "k":
		m.paginator.CursorUp()
	case key.Matches(msg, FilterKeys.Down), msg.String() == "j":
		m.paginator.CursorDown()
	case key.Matches(msg, FilterKeys.Select):
		m.field = domain.FilterFields[m.paginator.Cursor()]
		m.stage = FilterStageValue
		m.input.Reset()
		m.narrow()
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *FilterModel) updateValueStage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, FilterKeys.Back):
		m.stage = FilterStageField
		m.input.Blur()
		m.paginator.SetTotal(len(domain.FilterFields))
		m.paginator.SetCursor(fieldIndex(m.field))
		return m, nil
	case key.Matches(msg, FilterKeys.Up):
		m.paginator.CursorUp()
		return m, nil
	case key.Matches(msg, FilterKeys.Down):
		m.paginator.CursorDown()
		return m, nil
	case key.Matches(msg, FilterKeys.Select):
		if len(m.options) == 0 {
			return m, nil
		}
		value := m.options[m.paginator.Cursor()].value
		if value == AllValues {
			value = ""
		}
		field := m.field
		return m, func() tea.Msg {
			return FilterSelectedMsg{Field: field, Value: value}
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.narrow()
	}
	return m, cmd
}

// narrow rebuilds the value list for the typed pattern. An empty pattern
// lists AllValues followed by every non-empty distinct value in order.
func (m *FilterModel) narrow() {
	values := m.facets[m.field]
	pattern := m.input.Value()

	m.options = m.options[:0]
	if pattern == "" {
		m.options = append(m.options, filterOption{value: AllValues})
		for _, v := range values {
			if v != "" {
				m.options = append(m.options, filterOption{value: v})
			}
		}
	} else {
		for _, match := range fuzzy.Find(pattern, values) {
			m.options = append(m.options, filterOption{value: match.Str, matched: match.MatchedIndexes})
		}
	}

	m.paginator.Reset()
	m.paginator.SetTotal(len(m.options))
}

// Stage returns the list currently shown
func (m *FilterModel) Stage() FilterStage {
	return m.stage
}

// Field returns the field whose values are listed
func (m *FilterModel) Field() domain.Field {
	return m.field
}

// Options returns the values currently listed
func (m *FilterModel) Options() []string {
	out := make([]string, len(m.options))
	for i, o := range m.options {
		out[i] = o.value
	}
	return out
}

// SetSize updates the view dimensions
func (m *FilterModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(max(height-12, 5))
	m.input.Width = max(width-10, 10)
}

// View renders the picker
func (m *FilterModel) View() string {
	vb := NewViewBuilder()

	if m.stage == FilterStageField {
		vb.Title("Filter", "choose a field")
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			f := domain.FilterFields[i]
			label := PadRight(f.Key(), 14)
			if v, ok := m.current[f]; ok && v != "" {
				label += styles.ListValue.Render(v)
			} else {
				label += styles.MutedText.Render(AllValues)
			}
			vb.Line(m.renderRow(label, i == m.paginator.Cursor()))
		}
		vb.BlankLine()
		vb.Help(FilterKeys.Up, FilterKeys.Down, FilterKeys.Select, FilterKeys.Back)
		return vb.String()
	}

	vb.Title("Filter", m.field.Key())
	vb.Line(styles.InputFocused.Render(m.input.View()))
	vb.BlankLine()

	if len(m.options) == 0 {
		vb.Muted(fmt.Sprintf("No %s values match %q", m.field.Key(), m.input.Value()))
	}

	above, below := m.paginator.HasMore()
	if above {
		vb.Muted("  ...")
	}
	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		o := m.options[i]
		label := o.value
		if len(o.matched) > 0 {
			label = lipgloss.StyleRunes(o.value, o.matched, styles.SearchMatch, styles.ListItem)
		}
		if m.current[m.field] == o.value {
			label += styles.MutedText.Render(" (current)")
		}
		vb.Line(m.renderRow(label, i == m.paginator.Cursor()))
	}
	if below {
		vb.Muted("  ...")
	}

	vb.BlankLine()
	vb.Help(FilterKeys.Up, FilterKeys.Down, FilterKeys.Select, FilterKeys.Back)
	return vb.String()
}

func (m *FilterModel) renderRow(label string, selected bool) string {
	if selected {
		return styles.ListSelected.Render("> ") + label
	}
	return "  " + label
}

func fieldIndex(f domain.Field) int {
	for i, ff := range domain.FilterFields {
		if ff == f {
			return i
		}
	}
	return 0
}
