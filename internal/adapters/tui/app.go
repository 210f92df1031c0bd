package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"resourcedex/internal/adapters/tui/views"
	"resourcedex/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewFilter
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state   ViewState
	browser *views.BrowserModel
	filter  *views.FilterModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application over a dataset source
func NewApp(source ports.DatasetSource, opener ports.URLOpener, logger *zap.Logger) *App {
	return &App{
		state:   ViewBrowser,
		browser: views.NewBrowserModel(source, opener, logger),
		filter:  views.NewFilterModel(),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.filter.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToFilterMsg:
		session := a.browser.Session()
		if session == nil {
			return a, nil
		}
		a.filter.Open(session.Facets(), session.State().Filters)
		a.state = ViewFilter
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	case views.FilterSelectedMsg:
		a.browser.ApplyFilter(msg.Field, msg.Value)
		a.state = ViewBrowser
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		return a, a.delegate(msg)
	}

	// Load results, spinner ticks and status updates belong to the browser
	// whichever view is showing
	if a.state == ViewFilter {
		return a, tea.Batch(a.delegate(msg), a.updateBrowser(msg))
	}
	return a, a.updateBrowser(msg)
}

func (a *App) delegate(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewFilter:
		_, cmd = a.filter.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}
	return cmd
}

func (a *App) updateBrowser(msg tea.Msg) tea.Cmd {
	_, cmd := a.browser.Update(msg)
	return cmd
}

// State returns the view currently shown
func (a *App) State() ViewState {
	return a.state
}

// Browser returns the results view
func (a *App) Browser() *views.BrowserModel {
	return a.browser
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewFilter:
		return a.filter.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
