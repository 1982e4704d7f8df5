package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"postdeck/internal/api"
	"postdeck/internal/config"
)

func Run(cfg config.Config) error {
	applyColorProfilePreference()
	applyThemePreference()

	client := api.New(cfg.BaseURL, cfg.Timeout)
	m := newAppModel(cfg, client)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
