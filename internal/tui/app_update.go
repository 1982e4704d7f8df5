package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"postdeck/internal/cache"
	"postdeck/internal/modal"
	"postdeck/internal/model"
	"postdeck/internal/params"
)

const flashDuration = 3 * time.Second

func (m appModel) flashCmd() tea.Cmd {
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = max(20, msg.Width/3)
		return m, nil

	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case postsLoadedMsg:
		return m.handlePostsLoaded(msg)

	case searchLoadedMsg:
		if msg.err != nil {
			m.flashError("search failed: " + msg.err.Error())
			m.listLoading = false
			return m, m.flashCmd()
		}
		if m.cache.Accept(msg.key, msg.token) {
			m.cache.SetPostSearch(msg.query, msg.list)
		}
		if m.params.Searching() && msg.query == m.params.Search {
			m.listLoading = false
		}
		m.reprocess()
		return m, nil

	case detailLoadedMsg:
		if msg.err == nil && m.cache.Accept(msg.key, msg.token) {
			m.cache.SetPostDetail(msg.post)
		}
		return m, nil

	case commentsLoadedMsg:
		if msg.err == nil && m.cache.Accept(msg.key, msg.token) {
			m.cache.SetComments(msg.postID, msg.list)
		}
		return m, nil

	case usersLoadedMsg:
		if msg.err == nil {
			m.cache.SetUsers(msg.users)
			if len(msg.users) > 0 {
				m.authorUserID = msg.users[0].ID
			}
			m.reprocess()
		}
		return m, nil

	case userLoadedMsg:
		if msg.err == nil {
			m.cache.SetUsers(mergeUser(m.cache.Users(), msg.user))
			m.reprocess()
		}
		return m, nil

	case tagsLoadedMsg:
		if msg.err == nil {
			m.cache.SetTags(msg.tags)
		}
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			if msg.rollback != nil {
				msg.rollback()
			}
			m.flashError(msg.label + " failed: " + msg.err.Error())
		} else {
			if msg.commit != nil {
				msg.commit()
			}
			m.flashInfo(msg.label + " ok")
		}
		m.reprocess()
		return m, m.flashCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handlePostsLoaded(msg postsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.flashError("load failed: " + msg.err.Error())
		m.listLoading = false
		return m, m.flashCmd()
	}
	if m.cache.Accept(msg.key, msg.token) {
		m.cache.SetPostList(msg.params, msg.list)
		// The mock API can page synthetic-range IDs back once enough
		// accumulate; the allocator floor must clear them.
		m.engine.SeedFromCache()
	}
	if msg.key == cache.PostListKey(m.params) {
		m.listLoading = false
	}
	m.reprocess()
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.cfg.DebugLog != "" {
		m.debugKeyMsg(msg.String())
	}
	if msg.String() == "ctrl+c" {
		m.saveSession()
		return m, tea.Quit
	}

	if m.searchFocused {
		return m.handleSearchKey(msg)
	}
	if top, ok := m.modals.Top(); ok {
		return m.handleModalKey(top, msg)
	}
	return m.handleBrowseKey(msg)
}

func (m appModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchFocused = false
		m.searchInput.Blur()
		p := m.params
		p.Search = strings.TrimSpace(m.searchInput.Value())
		return m, m.setParams(p)
	case "esc":
		m.searchFocused = false
		m.searchInput.Blur()
		m.searchInput.SetValue(m.params.Search)
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m appModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.saveSession()
		return m, tea.Quit

	case "/":
		m.searchFocused = true
		m.searchInput.SetValue(m.params.Search)
		return m, m.searchInput.Focus()

	case "esc":
		if m.params.Searching() {
			p := m.params
			p.Search = ""
			m.searchInput.SetValue("")
			return m, m.setParams(p)
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.processed.Posts)-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		if m.params.Searching() || m.params.TagFilter() != "" {
			return m, nil // single-page modes
		}
		p := m.params
		p.Skip -= p.Limit
		if p.Skip < 0 {
			p.Skip = 0
		}
		if p.Skip == m.params.Skip {
			return m, nil
		}
		return m, m.setParams(p)

	case "right", "l":
		if m.params.Searching() || m.params.TagFilter() != "" {
			return m, nil
		}
		p := m.params
		if p.Skip+p.Limit >= m.processed.Total {
			return m, nil
		}
		p.Skip += p.Limit
		return m, m.setParams(p)

	case "t":
		return m, m.setParams(m.nextTagParams(1))

	case "T":
		return m, m.setParams(m.nextTagParams(-1))

	case "s":
		p := m.params
		p.SortBy = nextSortBy(p.SortBy)
		return m, m.setParams(p)

	case "o":
		p := m.params
		if p.Order == "desc" {
			p.Order = params.DefaultOrder
		} else {
			p.Order = "desc"
		}
		return m, m.setParams(p)

	case "r":
		if !m.params.HasActiveFilters() {
			return m, nil
		}
		m.searchInput.SetValue("")
		return m, m.setParams(params.Default())

	case "a":
		m.postForm = newPostForm(modalBodyWidth(m.width))
		m.postForm.known = m.knownTagSlugs()
		m.modals.Open(modal.KindPostAdd, modal.Data{})
		return m, nil

	case "e":
		if id, ok := m.selectedPost(); ok {
			m.postForm = newPostEditForm(m.processed.Posts[m.cursor], modalBodyWidth(m.width))
			m.postForm.known = m.knownTagSlugs()
			m.modals.Open(modal.KindPostEdit, modal.Data{PostID: id})
		}
		return m, nil

	case "d":
		if id, ok := m.selectedPost(); ok {
			return m.deletePost(id)
		}
		return m, nil

	case "enter":
		if id, ok := m.selectedPost(); ok {
			return m.openPostDetail(id)
		}
		return m, nil
	}
	return m, nil
}

func nextSortBy(cur string) string {
	order := []string{"", "id", "title", "reactions"}
	for i, s := range order {
		if s == cur {
			return order[(i+1)%len(order)]
		}
	}
	return ""
}

func (m appModel) knownTagSlugs() []string {
	tags := m.cache.Tags()
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Slug)
	}
	return out
}

// nextTagParams cycles the tag filter through "all" plus the loaded tag
// slugs.
func (m appModel) nextTagParams(dir int) params.Params {
	slugs := append([]string{"all"}, m.knownTagSlugs()...)

	cur := 0
	for i, s := range slugs {
		if s == m.params.Tag {
			cur = i
			break
		}
	}
	next := (cur + dir + len(slugs)) % len(slugs)

	p := m.params
	p.Tag = slugs[next]
	if p.Tag == "all" {
		p.Tag = ""
	}
	return p
}

func (m appModel) openPostDetail(id int) (tea.Model, tea.Cmd) {
	m.modals.Open(modal.KindPostDetail, modal.Data{PostID: id})
	m.commentCursor = 0

	var cmds []tea.Cmd
	// Fabricated posts and locally-edited posts are cache-authoritative; a
	// refetch would either 404 or clobber the edit.
	if _, ok := m.cache.PostDetail(id); !ok {
		if model.IsRealPostID(id) && !m.engine.Modified.IsModified(id) {
			cmds = append(cmds, m.fetchDetailCmd(id))
		}
	}
	if _, ok := m.cache.Comments(id); !ok {
		if model.IsRealPostID(id) {
			cmds = append(cmds, m.fetchCommentsCmd(id))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) handleModalKey(top modal.Entry, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+g" {
		m.modals.CloseAll()
		return m, nil
	}

	switch top.Kind {
	case modal.KindPostAdd, modal.KindPostEdit:
		return m.handlePostFormKey(top, msg)
	case modal.KindPostDetail:
		return m.handleDetailKey(top, msg)
	case modal.KindCommentAdd, modal.KindCommentEdit:
		return m.handleCommentFormKey(top, msg)
	case modal.KindUserDetail:
		if msg.String() == "esc" {
			m.modals.Close()
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) handlePostFormKey(top modal.Entry, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modals.Close()
		return m, nil
	case "tab":
		m.postForm.cycleFocus(false)
		return m, nil
	case "shift+tab":
		m.postForm.cycleFocus(true)
		return m, nil
	case "ctrl+s":
		return m.submitPostForm(top)
	case "enter":
		// The body textarea needs enter for newlines; the single-line fields
		// submit.
		if m.postForm.focus != 1 {
			return m.submitPostForm(top)
		}
	}
	cmd := m.postForm.update(msg)
	return m, cmd
}

func (m appModel) submitPostForm(top modal.Entry) (tea.Model, tea.Cmd) {
	if !m.postForm.valid() {
		m.flashError("title and body are required")
		return m, m.flashCmd()
	}

	title := strings.TrimSpace(m.postForm.title.Value())
	body := strings.TrimSpace(m.postForm.body.Value())
	tags := m.postForm.tagList()

	if top.Kind == modal.KindPostAdd {
		data := model.NewPost{Title: title, Body: body, UserID: m.authorUserID, Tags: tags}
		res := m.engine.CreatePost(data)
		m.modals.Close()
		m.cursor = 0
		m.reprocess()
		m.flashInfo(fmt.Sprintf("created post #%d", res.Post.ID))
		return m, tea.Batch(
			m.mutationCmd("create post", func(ctx context.Context) error {
				_, err := m.client.CreatePost(ctx, data)
				return err
			}, nil, nil),
			m.flashCmd(),
		)
	}

	id := top.Data.PostID
	u := model.UpdatePost{Title: &title, Body: &body, Tags: &tags}
	res := m.engine.UpdatePost(id, u)
	m.modals.Close()
	m.reprocess()
	return m, m.mutationCmd("update post", func(ctx context.Context) error {
		_, err := m.client.UpdatePost(ctx, id, u)
		return err
	}, res.Rollback, nil)
}

func (m appModel) deletePost(id int) (tea.Model, tea.Cmd) {
	res := m.engine.DeletePost(id)
	m.reprocess()
	return m, m.mutationCmd("delete post", func(ctx context.Context) error {
		return m.client.DeletePost(ctx, id)
	}, res.Rollback, res.Commit)
}

func (m appModel) handleDetailKey(top modal.Entry, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	postID := top.Data.PostID
	comments := m.detailComments(postID)

	switch msg.String() {
	case "esc":
		m.modals.Close()
		return m, nil

	case "up", "k":
		if m.commentCursor > 0 {
			m.commentCursor--
		}
		return m, nil

	case "down", "j":
		if m.commentCursor < len(comments)-1 {
			m.commentCursor++
		}
		return m, nil

	case "c":
		m.commentForm = newCommentForm(postID, 0, "", modalBodyWidth(m.width))
		m.modals.Open(modal.KindCommentAdd, modal.Data{PostID: postID})
		return m, nil

	case "e":
		if c, ok := selectedComment(comments, m.commentCursor); ok {
			m.commentForm = newCommentForm(postID, c.ID, c.Body, modalBodyWidth(m.width))
			m.modals.Open(modal.KindCommentEdit, modal.Data{PostID: postID, CommentID: c.ID})
		}
		return m, nil

	case "d":
		if c, ok := selectedComment(comments, m.commentCursor); ok {
			res := m.engine.DeleteComment(postID, c.ID)
			if m.commentCursor > 0 {
				m.commentCursor--
			}
			return m, m.mutationCmd("delete comment", func(ctx context.Context) error {
				return m.client.DeleteComment(ctx, c.ID)
			}, res.Rollback, nil)
		}
		return m, nil

	case "l", " ":
		if c, ok := selectedComment(comments, m.commentCursor); ok {
			res, err := m.engine.ToggleCommentLike(postID, c.ID)
			if err != nil {
				m.flashError(err.Error())
				return m, m.flashCmd()
			}
			likes := res.Likes
			return m, m.mutationCmd("like", func(ctx context.Context) error {
				_, err := m.client.LikeComment(ctx, c.ID, likes)
				return err
			}, res.Rollback, nil)
		}
		return m, nil

	case "u":
		if p, ok := cache.FindPost(m.cache, postID); ok {
			return m.openUserDetail(p.UserID)
		}
		return m, nil
	}
	return m, nil
}

// openUserDetail shows a user and lazily upgrades the trimmed list entry to
// the full profile. Fabricated-post authors above the user ceiling have no
// server record to fetch.
func (m appModel) openUserDetail(id int) (tea.Model, tea.Cmd) {
	m.modals.Open(modal.KindUserDetail, modal.Data{UserID: id})

	u := model.FindUser(m.cache.Users(), id)
	if (u == nil || u.Email == "") && model.IsRealUserID(id) {
		return m, m.fetchUserCmd(id)
	}
	return m, nil
}

// mergeUser replaces (or appends) the full profile into the user list.
func mergeUser(users []model.User, u model.User) []model.User {
	out := append([]model.User(nil), users...)
	for i := range out {
		if out[i].ID == u.ID {
			out[i] = u
			return out
		}
	}
	return append(out, u)
}

func selectedComment(comments []model.Comment, cursor int) (model.Comment, bool) {
	if cursor < 0 || cursor >= len(comments) {
		return model.Comment{}, false
	}
	return comments[cursor], true
}

func (m appModel) handleCommentFormKey(top modal.Entry, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modals.Close()
		return m, nil
	case "ctrl+s":
		if !m.commentForm.valid() {
			m.flashError("comment body is required")
			return m, m.flashCmd()
		}
		body := strings.TrimSpace(m.commentForm.body.Value())
		postID := m.commentForm.postID

		if top.Kind == modal.KindCommentAdd {
			data := model.NewComment{Body: body, PostID: postID, UserID: m.authorUserID}
			res := m.engine.CreateComment(data)
			m.modals.Close()
			m.flashInfo(fmt.Sprintf("added comment #%d", res.Comment.ID))
			return m, tea.Batch(
				m.mutationCmd("create comment", func(ctx context.Context) error {
					_, err := m.client.CreateComment(ctx, data)
					return err
				}, nil, nil),
				m.flashCmd(),
			)
		}

		id := m.commentForm.editID
		res := m.engine.UpdateComment(postID, id, body)
		m.modals.Close()
		return m, m.mutationCmd("update comment", func(ctx context.Context) error {
			_, err := m.client.UpdateComment(ctx, id, body)
			return err
		}, res.Rollback, nil)
	}
	cmd := m.commentForm.update(msg)
	return m, cmd
}

// detailComments returns the cached comment page for a post, empty while
// loading.
func (m appModel) detailComments(postID int) []model.Comment {
	cl, ok := m.cache.Comments(postID)
	if !ok {
		return nil
	}
	return cl.Comments
}
