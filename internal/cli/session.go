package cli

import (
	"context"

	"postdeck/internal/cache"
	"postdeck/internal/mutate"
	"postdeck/internal/session"
)

// withSession runs fn against a mutation engine seeded from the persisted
// session state, then writes the state back. Scripted invocations share the
// synthetic ID counters and the modified/liked sets with the TUI, so a post
// created here never collides with one created interactively.
func (a *App) withSession(ctx context.Context, fn func(e *mutate.Engine) error) error {
	e := mutate.NewEngine(cache.NewStore())
	sess := session.Store{Dir: a.Config.StateDir}

	if st, err := sess.Load(ctx); err == nil {
		st.Apply(e.PostIDs, e.CommentIDs, e.Modified, e.Liked)
	}
	if err := fn(e); err != nil {
		return err
	}
	return sess.Save(ctx, e.PostIDs, e.CommentIDs, e.Modified, e.Liked)
}
