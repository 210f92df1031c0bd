package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"resourcedex/internal/adapters/tui/styles"
	"resourcedex/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Resource Dex Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("f / b", "Page down/up"))
	b.WriteString(helpLine("g / G", "First/last row"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Query"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Fuzzy search (enter keeps, esc clears)"))
	b.WriteString(helpLine("f", "Filter by a column value"))
	b.WriteString(helpLine("x", "Clear all filters and the search"))
	b.WriteString(helpLine("1-9", "Sort by column, again to reverse"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Sort columns"))
	b.WriteString("\n")
	for i, f := range domain.Columns {
		b.WriteString(helpLine(fmt.Sprintf("%d", i+1), f.Key()))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Resource"))
	b.WriteString("\n")
	b.WriteString(helpLine("y", "Copy URL to clipboard"))
	b.WriteString(helpLine("o", "Open URL in browser"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(PadRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}
