package tui

import (
	"fmt"
	"log"

	"github.com/bstn-hfmn/rustman/internal/config"
	"github.com/bstn-hfmn/rustman/internal/history"
	"github.com/bstn-hfmn/rustman/internal/keybinds"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures Run
type Options struct {
	Settings *config.Settings
	// DatabasePath overrides config.DatabasePath
	DatabasePath string
	NoHistory    bool
}

// Run starts the TUI and blocks until it exits
func Run(opts Options) error {
	settings := opts.Settings
	if settings == nil {
		settings = config.Default()
	}

	registry, err := keybinds.Build(settings.Keybinds)
	if err != nil {
		return fmt.Errorf("invalid keybinds: %w", err)
	}
	result := keybinds.NewValidator().ValidateRegistry(registry)
	if result.HasErrors() {
		return fmt.Errorf("invalid keybinds:\n%s", result.String())
	}
	if result.HasWarnings() {
		log.Printf("keybinds: %s", result.String())
	}

	var historyManager *history.Manager
	if settings.History.Enabled && !opts.NoHistory {
		dbPath := opts.DatabasePath
		if dbPath == "" {
			dbPath = config.DatabasePath
		}
		historyManager, err = history.NewManager(dbPath)
		if err != nil {
			return err
		}
	}

	m := New(settings, registry, historyManager)
	defer m.Cleanup()

	// pointer since Update uses a pointer receiver
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
