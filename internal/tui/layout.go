package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/lipgloss"
)

// truncate forces s to at most width columns (ANSI-aware), appending an
// ellipsis when cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return xansi.Cut(s, 0, 1)
	}
	return xansi.Cut(s, 0, width-1) + "…"
}

// pad forces s to exactly width columns.
func pad(s string, width int) string {
	s = truncate(s, width)
	if w := xansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func modalBodyWidth(termWidth int) int {
	w := termWidth - 14
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderModalBox draws a dialog: header bar plus body on the modal surface.
// Borders are avoided; some terminals show background artifacts when nesting
// bordered components inside a modal with a background color.
func renderModalBox(termWidth int, title, body string) string {
	w := modalBodyWidth(termWidth)

	header := lipgloss.NewStyle().
		Background(colorHeaderBg).
		Foreground(colorSurfaceFg).
		Bold(true).
		Padding(0, 1).
		Width(w + 2).
		Render(truncate(title, w))

	surface := lipgloss.NewStyle().
		Background(colorSurfaceBg).
		Foreground(colorSurfaceFg).
		Padding(1, 1).
		Width(w + 2).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, surface)
}

// renderBuriedModal is the de-emphasized rendering for a dialog that is
// still open underneath the top entry: collapsed to its header line so the
// nesting remains visible without competing with the active dialog.
func renderBuriedModal(termWidth int, title string) string {
	w := modalBodyWidth(termWidth) - 6
	if w < 14 {
		w = 14
	}
	return styleMuted().
		Padding(0, 1).
		Width(w + 2).
		Render(truncate("▸ "+title, w))
}

func placeCentered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
