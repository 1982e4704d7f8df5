package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"postdeck/internal/model"
)

const (
	colID     = 5
	colLikes  = 6
	colAuthor = 16
	colTags   = 24
)

func (m appModel) View() string {
	if m.width == 0 {
		return "loading…"
	}

	base := lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewTable(),
		m.viewFooter(),
	)

	if m.modals.Len() == 0 {
		return base
	}
	return m.viewModalOverlay()
}

func (m appModel) viewHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Render("postdeck")

	var filters []string
	if m.params.Searching() {
		filters = append(filters, "search:"+m.params.Search)
	}
	if tag := m.params.TagFilter(); tag != "" {
		filters = append(filters, "tag:"+tag)
	}
	if m.params.SortBy != "" && m.params.SortBy != "none" {
		filters = append(filters, "sort:"+m.params.SortBy+" "+m.params.Order)
	}
	status := ""
	if len(filters) > 0 {
		status = styleMuted().Render(" · " + strings.Join(filters, " "))
	}

	search := ""
	if m.searchFocused {
		search = "  " + m.searchInput.View()
	}
	return title + status + search
}

func (m appModel) viewTable() string {
	titleWidth := m.width - colID - colLikes - colAuthor - colTags - 8
	if titleWidth < 16 {
		titleWidth = 16
	}

	header := lipgloss.NewStyle().Background(colorHeaderBg).Bold(true).Render(
		" " + pad("ID", colID) + " " + pad("Title", titleWidth) + " " +
			pad("Tags", colTags) + " " + pad("Likes", colLikes) + " " + pad("Author", colAuthor),
	)

	rows := []string{header}
	if m.listLoading && len(m.processed.Posts) == 0 {
		rows = append(rows, styleMuted().Render(" loading posts…"))
	}
	for i, p := range m.processed.Posts {
		rows = append(rows, m.viewRow(p, i == m.cursor, titleWidth))
	}

	return strings.Join(rows, "\n")
}

func (m appModel) viewRow(p model.Post, selected bool, titleWidth int) string {
	title := p.Title
	if m.params.Searching() {
		title = highlightMatches(title, m.params.Search)
	}

	author := ""
	if p.Author != nil {
		author = p.Author.Username
	}
	likes := fmt.Sprintf("%d", p.Reactions.Likes)

	line := " " + pad(fmt.Sprintf("%d", p.ID), colID) + " " + pad(title, titleWidth) + " " +
		pad(strings.Join(p.Tags, ","), colTags) + " " + pad(likes, colLikes) + " " + pad(author, colAuthor)

	switch {
	case selected:
		return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Render(line)
	case m.engine.Modified.IsNewlyCreated(p.ID):
		return lipgloss.NewStyle().Foreground(colorNewRow).Render(line)
	default:
		return line
	}
}

func (m appModel) viewFooter() string {
	if m.flash != "" {
		if m.flashIsErr {
			return styleError().Render(m.flash)
		}
		return styleMuted().Render(m.flash)
	}

	page := ""
	if !m.params.Searching() && m.params.TagFilter() == "" && m.processed.Total > 0 {
		page = fmt.Sprintf("  %d-%d of %d",
			m.params.Skip+1,
			min(m.params.Skip+m.params.Limit, m.processed.Total),
			m.processed.Total)
	} else if m.processed.Total > 0 {
		page = fmt.Sprintf("  %d results", m.processed.Total)
	}

	help := "a:add e:edit d:del enter:open /:search t:tag s:sort o:order"
	if m.params.HasActiveFilters() {
		help += " r:reset"
	}
	help += " q:quit"
	return styleMuted().Render(help + page)
}

// viewModalOverlay renders the dialog stack centered: buried entries collapse
// to their header line above the fully rendered top entry.
func (m appModel) viewModalOverlay() string {
	entries := m.modals.Snapshot()

	var parts []string
	for _, e := range entries[:len(entries)-1] {
		parts = append(parts, renderBuriedModal(m.width, m.modalTitle(e)))
	}
	top := entries[len(entries)-1]
	parts = append(parts, renderModalBox(m.width, m.modalTitle(top), m.modalBody(top)))

	stacked := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return placeCentered(m.width, m.height, stacked)
}
