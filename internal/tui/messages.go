package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"postdeck/internal/cache"
	"postdeck/internal/model"
	"postdeck/internal/params"
)

// Fetch results carry the region key and the generation token issued when the
// fetch started. Update only writes a result into the cache when
// cache.Accept(key, token) still holds; a mutation in the meantime bumps the
// generation and the stale page is dropped on the floor.

type postsLoadedMsg struct {
	key    string
	token  int
	params params.Params
	list   model.PostList
	err    error
}

type searchLoadedMsg struct {
	key   string
	token int
	query string
	list  model.PostList
	err   error
}

type detailLoadedMsg struct {
	key   string
	token int
	id    int
	post  model.Post
	err   error
}

type commentsLoadedMsg struct {
	key    string
	token  int
	postID int
	list   model.CommentList
	err    error
}

type usersLoadedMsg struct {
	users []model.User
	err   error
}

// userLoadedMsg carries one full profile; the bulk user list is trimmed to
// username/image and the detail dialog wants the rest.
type userLoadedMsg struct {
	user model.User
	err  error
}

type tagsLoadedMsg struct {
	tags []model.Tag
	err  error
}

// mutationDoneMsg reports a settled network write. The optimistic cache write
// already happened in Update; err decides between commit and rollback.
type mutationDoneMsg struct {
	label    string
	err      error
	rollback func()
	commit   func()
}

type flashDoneMsg struct{ seq int }

func (m appModel) apiCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.cfg.Timeout)
}

func (m appModel) fetchPostsCmd() tea.Cmd {
	p := m.params
	key := cache.PostListKey(p)
	token := m.cache.BeginFetch(key)
	return func() tea.Msg {
		ctx, cancel := m.apiCtx()
		defer cancel()
		var (
			list model.PostList
			err  error
		)
		if tag := p.TagFilter(); tag != "" {
			list, err = m.client.PostsByTag(ctx, tag)
		} else {
			list, err = m.client.PostList(ctx, p)
		}
		return postsLoadedMsg{key: key, token: token, params: p, list: list, err: err}
	}
}

func (m appModel) fetchSearchCmd(query string) tea.Cmd {
	key := cache.PostSearchKey(query)
	token := m.cache.BeginFetch(key)
	return func() tea.Msg {
		ctx, cancel := m.apiCtx()
		defer cancel()
		list, err := m.client.PostSearch(ctx, query)
		return searchLoadedMsg{key: key, token: token, query: query, list: list, err: err}
	}
}

func (m appModel) fetchDetailCmd(id int) tea.Cmd {
	key := cache.PostDetailKey(id)
	token := m.cache.BeginFetch(key)
	return func() tea.Msg {
		ctx, cancel := m.apiCtx()
		defer cancel()
		post, err := m.client.PostByID(ctx, id)
		return detailLoadedMsg{key: key, token: token, id: id, post: post, err: err}
	}
}

func (m appModel) fetchCommentsCmd(postID int) tea.Cmd {
	key := cache.CommentListKey(postID)
	token := m.cache.BeginFetch(key)
	return func() tea.Msg {
		ctx, cancel := m.apiCtx()
		defer cancel()
		list, err := m.client.CommentsByPost(ctx, postID)
		return commentsLoadedMsg{key: key, token: token, postID: postID, list: list, err: err}
	}
}

func (m appModel) fetchUsersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.apiCtx()
		defer cancel()
		ul, err := m.client.UserList(ctx)
		return usersLoadedMsg{users: ul.Users, err: err}
	}
}

func (m appModel) fetchUserCmd(id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.apiCtx()
		defer cancel()
		u, err := m.client.UserByID(ctx, id)
		return userLoadedMsg{user: u, err: err}
	}
}

func (m appModel) fetchTagsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.apiCtx()
		defer cancel()
		tags, err := m.client.Tags(ctx)
		return tagsLoadedMsg{tags: tags, err: err}
	}
}

// mutationCmd runs the network half of an already-applied optimistic write.
// rollback/commit travel with the message so the handler does not need to
// look anything up.
func (m appModel) mutationCmd(label string, call func(context.Context) error, rollback, commit func()) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.apiCtx()
		defer cancel()
		return mutationDoneMsg{
			label:    label,
			err:      call(ctx),
			rollback: rollback,
			commit:   commit,
		}
	}
}
