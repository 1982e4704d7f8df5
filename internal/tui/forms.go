package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"postdeck/internal/model"
)

// postForm backs both the add and the edit dialog; editID distinguishes them.
type postForm struct {
	title textinput.Model
	body  textarea.Model
	tags  textinput.Model
	focus int // 0 title, 1 body, 2 tags

	editID int // 0 means creating
	// known holds the loaded tag slugs, offered as suggestions.
	known []string
}

func newPostForm(width int) postForm {
	f := postForm{}

	f.title = textinput.New()
	f.title.Placeholder = "title"
	f.title.CharLimit = 200
	f.title.Width = width
	f.title.Focus()

	f.body = textarea.New()
	f.body.Placeholder = "body"
	f.body.SetWidth(width)
	f.body.SetHeight(6)
	f.body.CharLimit = 4000

	f.tags = textinput.New()
	f.tags.Placeholder = "tags (comma separated)"
	f.tags.CharLimit = 200
	f.tags.Width = width

	return f
}

func newPostEditForm(p model.Post, width int) postForm {
	f := newPostForm(width)
	f.editID = p.ID
	f.title.SetValue(p.Title)
	f.body.SetValue(p.Body)
	f.tags.SetValue(strings.Join(p.Tags, ", "))
	return f
}

func (f *postForm) cycleFocus(back bool) {
	f.title.Blur()
	f.body.Blur()
	f.tags.Blur()
	if back {
		f.focus = (f.focus + 2) % 3
	} else {
		f.focus = (f.focus + 1) % 3
	}
	switch f.focus {
	case 0:
		f.title.Focus()
	case 1:
		f.body.Focus()
	case 2:
		f.tags.Focus()
	}
}

func (f *postForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.title, cmd = f.title.Update(msg)
	case 1:
		f.body, cmd = f.body.Update(msg)
	case 2:
		f.tags, cmd = f.tags.Update(msg)
	}
	return cmd
}

// tagList parses the tags field, trimming and dropping duplicates while
// preserving the entry order.
func (f postForm) tagList() []string {
	var out []string
	for _, t := range strings.Split(f.tags.Value(), ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = appendUniqueTag(out, t)
		}
	}
	return out
}

func appendUniqueTag(tags []string, tag string) []string {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

// availableTags returns the known slugs not yet selected, for the suggestion
// line under the tags field.
func availableTags(known, selected []string) []string {
	taken := make(map[string]bool, len(selected))
	for _, t := range selected {
		taken[t] = true
	}
	var out []string
	for _, t := range known {
		if !taken[t] {
			out = append(out, t)
		}
	}
	return out
}

func (f postForm) valid() bool {
	return strings.TrimSpace(f.title.Value()) != "" && strings.TrimSpace(f.body.Value()) != ""
}

func (f postForm) view() string {
	lines := []string{
		f.title.View(),
		"",
		f.body.View(),
		"",
		f.tags.View(),
	}
	if avail := availableTags(f.known, f.tagList()); len(avail) > 0 {
		lines = append(lines, styleMuted().Render("known: "+strings.Join(avail, ", ")))
	}
	lines = append(lines, "",
		styleMuted().Render("tab: next field · enter on title/tags: submit · esc: cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// commentForm backs the comment add and edit dialogs.
type commentForm struct {
	body textarea.Model

	postID int
	editID int // 0 means creating
}

func newCommentForm(postID, editID int, body string, width int) commentForm {
	f := commentForm{postID: postID, editID: editID}
	f.body = textarea.New()
	f.body.Placeholder = "comment"
	f.body.SetWidth(width)
	f.body.SetHeight(4)
	f.body.CharLimit = 2000
	f.body.SetValue(body)
	f.body.Focus()
	return f
}

func (f *commentForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.body, cmd = f.body.Update(msg)
	return cmd
}

func (f commentForm) valid() bool {
	return strings.TrimSpace(f.body.Value()) != ""
}

func (f commentForm) view() string {
	hint := styleMuted().Render("ctrl+s: submit · esc: cancel")
	return lipgloss.JoinVertical(lipgloss.Left, f.body.View(), "", hint)
}
