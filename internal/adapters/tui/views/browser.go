package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"resourcedex/internal/adapters/tui/styles"
	"resourcedex/internal/application"
	"resourcedex/internal/domain"
	"resourcedex/internal/ports"
)

// URLColumnWidth is the widest the URL/Source column is ever drawn
const URLColumnWidth = 40

// columnWidths holds the preferred cell width of each table column
var columnWidths = map[domain.Field]int{
	domain.FieldCategory:    14,
	domain.FieldSubcategory: 14,
	domain.FieldName:        28,
	domain.FieldType:        10,
	domain.FieldCost:        8,
	domain.FieldURL:         URLColumnWidth,
	domain.FieldDescription: 32,
	domain.FieldSkillLevel:  12,
	domain.FieldPriority:    10,
}

// BrowserState is the lifecycle state of the results view
type BrowserState int

const (
	BrowserLoading BrowserState = iota
	BrowserReady
	BrowserError
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Search key.Binding
	Filter key.Binding
	Clear  key.Binding
	Sort   key.Binding
	Copy   key.Binding
	Open   key.Binding
	Help   key.Binding
	Quit   key.Binding

	// Active while the search input has focus
	Accept key.Binding
	Cancel key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear"),
	),
	Sort: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "sort"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy url"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open url"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "done"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
}

// BrowserModel is the model for the results table view
type BrowserModel struct {
	ViewState
	source         ports.DatasetSource
	opener         ports.URLOpener
	logger         *zap.Logger
	writeClipboard func(string) error

	state   BrowserState
	err     error
	session *application.Session
	result  application.Result

	table     table.Model
	search    textinput.Model
	searching bool
	spinner   spinner.Model
}

// NewBrowserModel creates a new browser model. opener may be nil, in which
// case opening links reports an error instead.
func NewBrowserModel(source ports.DatasetSource, opener ports.URLOpener, logger *zap.Logger) *BrowserModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Placeholder = "Type to search..."
	input.Prompt = "Search: "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = styles.TableHeader
	ts.Cell = styles.TableCell
	ts.Selected = styles.TableSelected
	t.SetStyles(ts)

	return &BrowserModel{
		source:         source,
		opener:         opener,
		logger:         logger,
		writeClipboard: clipboard.WriteAll,
		state:          BrowserLoading,
		table:          t,
		search:         input,
		spinner:        s,
	}
}

// Init starts loading the dataset
func (m *BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadDataset)
}

func (m *BrowserModel) loadDataset() tea.Msg {
	records, err := application.LoadDataset(context.Background(), m.source, m.logger)
	if err != nil {
		return datasetErrMsg{err}
	}
	return datasetLoadedMsg{records}
}

type datasetLoadedMsg struct {
	records []domain.Record
}

type datasetErrMsg struct {
	err error
}

type statusMsg struct {
	message string
	isErr   bool
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if m.state != BrowserLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case datasetLoadedMsg:
		m.session = application.NewSession(msg.records, application.WithLogger(m.logger))
		m.state = BrowserReady
		m.err = nil
		m.refresh()
		return m, nil

	case datasetErrMsg:
		m.state = BrowserError
		m.err = msg.err
		return m, nil

	case statusMsg:
		m.SetMessage(msg.message, msg.isErr)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case BrowserLoading:
			if key.Matches(msg, BrowserKeys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		case BrowserError:
			return m.updateErrorMode(msg)
		}
		if m.searching {
			return m.updateSearchMode(msg)
		}
		return m.updateTableMode(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateErrorMode only offers quit: a failed load is terminal for the view
func (m *BrowserModel) updateErrorMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, BrowserKeys.Quit) {
		return m, tea.Quit
	}
	return m, nil
}

func (m *BrowserModel) updateSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, BrowserKeys.Accept):
		m.searching = false
		m.search.Blur()
		return m, nil

	case key.Matches(msg, BrowserKeys.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.session.SetSearch("")
		m.refresh()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if value := m.search.Value(); value != before {
		m.session.SetSearch(value)
		m.refresh()
	}
	return m, cmd
}

func (m *BrowserModel) updateTableMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ClearMessage()

	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, BrowserKeys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, BrowserKeys.Filter):
		return m, func() tea.Msg {
			return SwitchToFilterMsg{}
		}

	case key.Matches(msg, BrowserKeys.Help):
		return m, func() tea.Msg {
			return SwitchToHelpMsg{}
		}

	case key.Matches(msg, BrowserKeys.Clear):
		m.session.ClearFilters()
		m.search.SetValue("")
		m.refresh()
		m.SetMessage("Filters cleared", false)
		return m, nil

	case key.Matches(msg, BrowserKeys.Sort):
		idx := int(msg.Runes[0] - '1')
		if idx < 0 || idx >= len(domain.Columns) {
			return m, nil
		}
		spec := m.session.SortBy(domain.Columns[idx])
		m.refresh()
		m.SetMessage(fmt.Sprintf("Sorted by %s (%s)", spec.Field, spec.Direction()), false)
		return m, nil

	case key.Matches(msg, BrowserKeys.Copy):
		if rec, ok := m.Selected(); ok {
			return m, m.copyURL(rec)
		}
		return m, nil

	case key.Matches(msg, BrowserKeys.Open):
		if rec, ok := m.Selected(); ok {
			return m, m.openURL(rec)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *BrowserModel) copyURL(rec domain.Record) tea.Cmd {
	return func() tea.Msg {
		if rec.URL == "" {
			return statusMsg{fmt.Sprintf("%s has no URL", rec.Name), true}
		}
		if err := m.writeClipboard(rec.URL); err != nil {
			return statusMsg{fmt.Sprintf("Copy failed: %v", err), true}
		}
		return statusMsg{"Copied " + rec.URL, false}
	}
}

func (m *BrowserModel) openURL(rec domain.Record) tea.Cmd {
	return func() tea.Msg {
		if m.opener == nil {
			return statusMsg{"Opening links is not available", true}
		}
		if err := m.opener.OpenURL(rec.URL); err != nil {
			return statusMsg{fmt.Sprintf("Open failed: %v", err), true}
		}
		return statusMsg{"Opened " + rec.URL, false}
	}
}

// ApplyFilter sets or clears (empty value) the filter on field
func (m *BrowserModel) ApplyFilter(field domain.Field, value string) {
	if m.session == nil {
		return
	}
	m.session.SetFilter(field, value)
	m.refresh()
	if value == "" {
		m.SetMessage(fmt.Sprintf("Cleared %s filter", field), false)
	} else {
		m.SetMessage(fmt.Sprintf("%s = %s", field, value), false)
	}
}

// Session returns the loaded session, nil until the dataset is loaded
func (m *BrowserModel) Session() *application.Session {
	return m.session
}

// State returns the lifecycle state
func (m *BrowserModel) State() BrowserState {
	return m.state
}

// Result returns the currently displayed result set
func (m *BrowserModel) Result() application.Result {
	return m.result
}

// Selected returns the record under the table cursor
func (m *BrowserModel) Selected() (domain.Record, bool) {
	cursor := m.table.Cursor()
	if m.state != BrowserReady || cursor < 0 || cursor >= len(m.result.Records) {
		return domain.Record{}, false
	}
	return m.result.Records[cursor], true
}

// refresh pulls the session result into the table
func (m *BrowserModel) refresh() {
	if m.session == nil {
		return
	}
	m.result = m.session.Result()

	// The header arrow only shows while the column sort decides the order
	sort := domain.SortSpec{}
	if m.result.Order == application.OrderColumn {
		sort = m.result.Sort
	}
	m.table.SetColumns(tableColumns(sort))
	m.table.SetRows(tableRows(m.result.Records))
	if len(m.result.Records) > 0 {
		m.table.SetCursor(0)
	}
	m.resizeTable()
}

func tableColumns(sort domain.SortSpec) []table.Column {
	cols := make([]table.Column, 0, len(domain.Columns))
	for _, f := range domain.Columns {
		title := f.Key()
		if sort.Active() && sort.Field == f {
			if sort.Ascending {
				title += styles.SortAscending
			} else {
				title += styles.SortDescending
			}
		}
		cols = append(cols, table.Column{Title: title, Width: columnWidths[f]})
	}
	return cols
}

func tableRows(records []domain.Record) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, r := range records {
		row := make(table.Row, 0, len(domain.Columns))
		for _, f := range domain.Columns {
			row = append(row, Truncate(r.Value(f), columnWidths[f]))
		}
		rows = append(rows, row)
	}
	return rows
}

// chromeHeight is the number of lines drawn around the table
const chromeHeight = 16

func (m *BrowserModel) resizeTable() {
	if m.Height > 0 {
		m.table.SetHeight(max(m.Height-chromeHeight, 3))
	}
	if m.Width > 0 {
		m.table.SetWidth(max(m.Width-4, 20))
	}
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.search.Width = max(width-20, 10)
	m.resizeTable()
}

// View renders the browser
func (m *BrowserModel) View() string {
	vb := NewViewBuilder()
	vb.Title("Resource Dex", m.sourceName())

	switch m.state {
	case BrowserLoading:
		vb.Line(m.spinner.View() + " Loading resources...")
		vb.BlankLine()
		vb.Help(BrowserKeys.Quit)
		return vb.String()

	case BrowserError:
		msg := "Failed to load resources"
		if m.err != nil {
			msg += "\n\n" + m.err.Error()
		}
		vb.Line(styles.ErrorBox.Render(styles.ErrorMsg.Render(msg)))
		vb.BlankLine()
		vb.Help(BrowserKeys.Quit)
		return vb.String()
	}

	vb.Line(m.renderSearch())
	vb.BlankLine()

	if m.result.Empty() {
		vb.Line(styles.EmptyState.Render("No results"))
		vb.Muted("Try a different search term or press x to clear filters.")
	} else {
		vb.Line(m.table.View())
		vb.BlankLine()
		vb.Line(m.renderDetail())
	}

	vb.BlankLine()
	vb.Line(m.renderStatus())
	vb.Message(m.Message, m.MessageErr)
	vb.BlankLine()

	if m.searching {
		vb.Help(BrowserKeys.Accept, BrowserKeys.Cancel)
	} else {
		vb.Help(
			BrowserKeys.Search,
			BrowserKeys.Filter,
			BrowserKeys.Sort,
			BrowserKeys.Clear,
			BrowserKeys.Copy,
			BrowserKeys.Open,
			BrowserKeys.Help,
			BrowserKeys.Quit,
		)
	}
	return vb.String()
}

func (m *BrowserModel) sourceName() string {
	if m.source == nil {
		return ""
	}
	return m.source.Describe()
}

func (m *BrowserModel) renderSearch() string {
	if m.searching {
		return styles.InputFocused.Render(m.search.View())
	}
	if term := m.search.Value(); term != "" {
		return styles.InputField.Render(RenderLabelValue("Search", term))
	}
	return styles.InputField.Render(styles.MutedText.Render("Press / to search"))
}

func (m *BrowserModel) renderStatus() string {
	var b strings.Builder
	b.WriteString(styles.StatusKey.Render(m.result.Summary()))

	describe := domain.QueryState{}.Describe()
	if m.session != nil {
		describe = m.session.State().Describe()
	}
	b.WriteString(styles.StatusBar.Render(describe))

	switch m.result.Order {
	case application.OrderRelevance:
		b.WriteString(styles.StatusText.Render("  ranked by relevance"))
	case application.OrderColumn:
		b.WriteString(styles.StatusText.Render(fmt.Sprintf("  sorted by %s %s", m.result.Sort.Field, m.result.Sort.Direction())))
	}
	return b.String()
}

func (m *BrowserModel) renderDetail() string {
	rec, ok := m.Selected()
	if !ok {
		return ""
	}

	priority := lipgloss.NewStyle().Foreground(styles.PriorityColor(rec.Priority)).Render(rec.Priority)
	width := max(m.Width-8, 40)

	var b strings.Builder
	b.WriteString(styles.Title.Render(rec.Name))
	if rec.Priority != "" {
		b.WriteString("  ")
		b.WriteString(priority)
	}
	b.WriteString("\n")
	if rec.URL != "" {
		b.WriteString(RenderLabelValue("URL", rec.URL))
		b.WriteString("\n")
	}
	b.WriteString(styles.MutedText.Render(Truncate(rec.Description, width)))
	return b.String()
}
