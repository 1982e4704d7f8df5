package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"postdeck/internal/api"
	"postdeck/internal/cache"
	"postdeck/internal/config"
	"postdeck/internal/modal"
	"postdeck/internal/mutate"
	"postdeck/internal/params"
	"postdeck/internal/reconcile"
	"postdeck/internal/session"
)

type appModel struct {
	cfg     config.Config
	client  *api.Client
	cache   *cache.Store
	engine  *mutate.Engine
	session session.Store
	modals  *modal.Stack

	width  int
	height int

	params params.Params
	// authorUserID is who new posts/comments are attributed to. The mock API
	// has no auth; the first loaded user stands in.
	authorUserID int

	cursor     int
	processed  reconcile.Result
	listLoading bool

	searchInput   textinput.Model
	searchFocused bool

	postForm    postForm
	commentForm commentForm

	// commentCursor selects within the post-detail comment list.
	commentCursor int

	flash      string
	flashIsErr bool
	flashSeq   int
}

func newAppModel(cfg config.Config, client *api.Client) appModel {
	c := cache.NewStore()
	engine := mutate.NewEngine(c)

	sess := session.Store{Dir: cfg.StateDir}
	if st, err := sess.Load(context.Background()); err == nil {
		st.Apply(engine.PostIDs, engine.CommentIDs, engine.Modified, engine.Liked)
	}

	m := appModel{
		cfg:          cfg,
		client:       client,
		cache:        c,
		engine:       engine,
		session:      sess,
		modals:       modal.NewStack(),
		params:       params.Default(),
		authorUserID: 1,
		listLoading:  true,
	}

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "search posts"
	m.searchInput.Prompt = "/ "
	m.searchInput.CharLimit = 120

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.fetchPostsCmd(), m.fetchUsersCmd(), m.fetchTagsCmd())
}

// reprocess rebuilds the rendered list from the cache and the current params,
// then clamps the cursor.
func (m *appModel) reprocess() {
	in := reconcile.Input{
		Params:   m.params,
		Users:    m.cache.Users(),
		Cache:    m.cache,
		Modified: m.engine.Modified.IDs(),
	}
	if m.params.Searching() {
		if pl, ok := m.cache.PostSearch(m.params.Search); ok {
			in.Search = &pl
		}
	} else if pl, ok := m.cache.PostList(m.params); ok {
		in.List = &pl
	}
	m.processed = reconcile.Process(in)

	if m.cursor >= len(m.processed.Posts) {
		m.cursor = len(m.processed.Posts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// setParams navigates to a new listing. Moving to a different listing (not
// just a different page) drops the transient newly-created highlighting.
func (m *appModel) setParams(p params.Params) tea.Cmd {
	if !params.ListingEqual(m.params, p) {
		m.engine.Modified.ClearNewlyCreated()
		p.Skip = 0
	}
	m.params = p
	m.cursor = 0
	m.reprocess()

	if p.Searching() {
		if _, ok := m.cache.PostSearch(p.Search); ok {
			m.listLoading = false
			return nil
		}
		m.listLoading = true
		return m.fetchSearchCmd(p.Search)
	}
	if _, ok := m.cache.PostList(p); ok {
		m.listLoading = false
		return nil
	}
	m.listLoading = true
	return m.fetchPostsCmd()
}

func (m *appModel) flashInfo(text string) {
	m.flash = text
	m.flashIsErr = false
	m.flashSeq++
}

func (m *appModel) flashError(text string) {
	m.flash = text
	m.flashIsErr = true
	m.flashSeq++
}

func (m appModel) selectedPost() (int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.processed.Posts) {
		return 0, false
	}
	return m.processed.Posts[m.cursor].ID, true
}

// saveSession is called on quit; best effort, the in-memory state is already
// consistent.
func (m appModel) saveSession() {
	ctx, cancel := m.apiCtx()
	defer cancel()
	_ = m.session.Save(ctx, m.engine.PostIDs, m.engine.CommentIDs, m.engine.Modified, m.engine.Liked)
}
