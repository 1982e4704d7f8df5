package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"postdeck/internal/cache"
	"postdeck/internal/modal"
	"postdeck/internal/model"
)

func (m appModel) modalTitle(e modal.Entry) string {
	switch e.Kind {
	case modal.KindPostDetail:
		if p, ok := m.detailPost(e.Data.PostID); ok {
			return p.Title
		}
	case modal.KindUserDetail:
		if u := model.FindUser(m.cache.Users(), e.Data.UserID); u != nil {
			return "@" + u.Username
		}
	}
	return e.Kind.Title()
}

func (m appModel) modalBody(e modal.Entry) string {
	switch e.Kind {
	case modal.KindPostAdd, modal.KindPostEdit:
		return m.postForm.view()
	case modal.KindPostDetail:
		return m.viewPostDetail(e.Data.PostID)
	case modal.KindCommentAdd, modal.KindCommentEdit:
		return m.commentForm.view()
	case modal.KindUserDetail:
		return m.viewUserDetail(e.Data.UserID)
	}
	return ""
}

// detailPost resolves a post for the detail view. The cache copy wins over
// nothing; a locally-edited or fabricated post never hits the network, so
// whatever the cache holds is the truth.
func (m appModel) detailPost(id int) (model.Post, bool) {
	if p, ok := m.cache.PostDetail(id); ok {
		return p, true
	}
	return cache.FindPost(m.cache, id)
}

func (m appModel) viewPostDetail(id int) string {
	width := modalBodyWidth(m.width)

	p, ok := m.detailPost(id)
	if !ok {
		return styleMuted().Render("loading…")
	}

	var b []string
	meta := fmt.Sprintf("#%d · %d likes · %d views", p.ID, p.Reactions.Likes, p.Views)
	if u := model.FindUser(m.cache.Users(), p.UserID); u != nil {
		meta += " · @" + u.Username
	}
	if len(p.Tags) > 0 {
		meta += " · " + strings.Join(p.Tags, ", ")
	}
	b = append(b, styleMuted().Render(meta), "")

	b = append(b, renderMarkdown(p.Body, width))

	b = append(b, "", lipgloss.NewStyle().Bold(true).Render("Comments"))
	b = append(b, m.viewComments(id, width)...)

	b = append(b, "", styleMuted().Render("c:comment e:edit d:del l:like u:author esc:close"))
	return strings.Join(b, "\n")
}

func (m appModel) viewComments(postID, width int) []string {
	comments := m.detailComments(postID)
	if len(comments) == 0 {
		if _, cached := m.cache.Comments(postID); !cached && model.IsRealPostID(postID) {
			return []string{styleMuted().Render("loading comments…")}
		}
		return []string{styleMuted().Render("no comments yet")}
	}

	var out []string
	for i, c := range comments {
		liked := " "
		if m.engine.Liked.IsLiked(c.ID) {
			liked = "♥"
		}
		head := fmt.Sprintf("%s @%s · %d", liked, c.User.Username, c.Likes)
		line := truncate(head+"  "+strings.ReplaceAll(c.Body, "\n", " "), width)
		if i == m.commentCursor {
			line = lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Render(pad(line, width))
		}
		out = append(out, line)
	}
	return out
}

func (m appModel) viewUserDetail(id int) string {
	u := model.FindUser(m.cache.Users(), id)
	if u == nil {
		return styleMuted().Render("user not loaded")
	}

	var b []string
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		b = append(b, name)
	}
	b = append(b, "@"+u.Username)
	if u.Email != "" {
		b = append(b, u.Email)
	}
	if u.Company != nil {
		b = append(b, u.Company.Title+" at "+u.Company.Name)
	}
	if u.Address != nil {
		b = append(b, u.Address.City+", "+u.Address.State)
	}
	b = append(b, "", styleMuted().Render("esc:close"))
	return strings.Join(b, "\n")
}

// highlightMatches wraps every case-insensitive occurrence of query in the
// search-highlight style.
func highlightMatches(s, query string) string {
	if query == "" {
		return s
	}
	lower := strings.ToLower(s)
	q := strings.ToLower(query)
	style := lipgloss.NewStyle().Background(colorHighlight)

	var out strings.Builder
	for {
		i := strings.Index(lower, q)
		if i < 0 {
			out.WriteString(s)
			return out.String()
		}
		out.WriteString(s[:i])
		out.WriteString(style.Render(s[i : i+len(q)]))
		s = s[i+len(q):]
		lower = lower[i+len(q):]
	}
}
