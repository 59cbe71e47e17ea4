package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/burrow/internal/bookmarks"
	"github.com/studiowebux/burrow/internal/config"
	"github.com/studiowebux/burrow/internal/keybinds"
)

// Run starts the interactive client. startURL overrides the configured
// start page when non-empty.
func Run(cfg config.Config, startURL string) error {
	keys, err := keybinds.LoadOrDefault(config.KeybindsPath())
	if err != nil {
		return err
	}

	marks, err := bookmarks.Open(config.BookmarksPath())
	if err != nil {
		return fmt.Errorf("failed to load bookmarks: %w", err)
	}

	m := New(cfg, keys, marks, startURL)

	// Pass a pointer since Update uses a pointer receiver. Mouse is
	// disabled by default in bubbletea.
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
