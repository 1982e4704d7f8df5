package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette helpers. The TUI must stay readable on both light and dark
// backgrounds, so everything goes through lipgloss.AdaptiveColor.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorAccent     lipgloss.TerminalColor = ac("27", "62")
	colorSurfaceBg  lipgloss.TerminalColor = ac("255", "235")
	colorSurfaceFg  lipgloss.TerminalColor = ac("235", "252")
	colorHeaderBg   lipgloss.TerminalColor = ac("252", "236")
	colorSelectedBg                        = ac("#e9e9e9", "#262626")
	colorSelectedFg                        = ac("235", "255")
	colorHighlight  lipgloss.TerminalColor = ac("220", "94") // search-match background
	colorNewRow     lipgloss.TerminalColor = ac("29", "42")  // newly-created accent
	colorError      lipgloss.TerminalColor = ac("160", "203")
)

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError).Bold(true)
}

// applyColorProfilePreference only honors NO_COLOR; termenv's CLICOLOR
// handling is meant for non-interactive output and can wrongly strip a TUI.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// applyThemePreference lets POSTDECK_TUI_THEME=light|dark override background
// detection for terminals that misreport it.
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("POSTDECK_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
}
