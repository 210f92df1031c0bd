package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"resourcedex/internal/adapters/browser"
	"resourcedex/internal/adapters/sources"
	"resourcedex/internal/adapters/tui"
	"resourcedex/internal/config"
	"resourcedex/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dataFlag := flag.String("data", cfg.DataPath, "dataset file (.json, .csv, or .db snapshot)")
	levelFlag := flag.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := logging.New(*levelFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Initialize adapters
	source, closeSource, err := sources.Open(config.ExpandHome(*dataFlag), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeSource()

	// Create and run TUI app
	app := tui.NewApp(source, browser.NewOpener(), logger)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
