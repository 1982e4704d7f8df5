package mutate

import (
	"testing"

	"postdeck/internal/cache"
	"postdeck/internal/model"
	"postdeck/internal/params"
)

func seededEngine() *Engine {
	c := cache.NewStore()
	c.SetPostList(params.Default(), model.PostList{
		Posts: []model.Post{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}},
		Total: 251,
	})
	return NewEngine(c)
}

func TestCreatePostAllocatesAboveCeiling(t *testing.T) {
	t.Parallel()

	e := seededEngine()
	res := e.CreatePost(model.NewPost{Title: "mine", Body: "b", UserID: 3})

	if res.Post.ID != model.MaxRealPostID+1 {
		t.Fatalf("id = %d; want %d", res.Post.ID, model.MaxRealPostID+1)
	}
	if res.Post.Reactions.Likes != 0 || res.Post.Reactions.Dislikes != 0 {
		t.Fatalf("reactions must default to zero: %+v", res.Post.Reactions)
	}

	pl, _ := e.Cache.PostList(params.Default())
	if pl.Posts[0].ID != res.Post.ID {
		t.Fatalf("new post must be prepended; head = %d", pl.Posts[0].ID)
	}
	if pl.Total != 252 {
		t.Fatalf("total = %d; want 252", pl.Total)
	}
	if !e.Modified.IsNewlyCreated(res.Post.ID) {
		t.Fatalf("new post should carry the newly-created highlight")
	}
}

func TestCreateDeleteCreateDistinctIDs(t *testing.T) {
	t.Parallel()

	e := seededEngine()
	first := e.CreatePost(model.NewPost{Title: "a"}).Post.ID
	e.DeletePost(first).Commit()
	second := e.CreatePost(model.NewPost{Title: "b"}).Post.ID
	if first == second {
		t.Fatalf("recreate must not reuse id %d", first)
	}
}

func TestCreatePostCancelsPendingListFetch(t *testing.T) {
	t.Parallel()

	e := seededEngine()
	key := cache.PostListKey(params.Default())
	token := e.Cache.BeginFetch(key)

	e.CreatePost(model.NewPost{Title: "a"})

	if e.Cache.Accept(key, token) {
		t.Fatalf("refetch started before the mutation must be dropped")
	}
}

func TestUpdateRealPostMarksAndRollsBack(t *testing.T) {
	t.Parallel()

	e := seededEngine()
	title := "Updated"
	res := e.UpdatePost(1, model.UpdatePost{Title: &title})

	if !e.Modified.IsModified(1) {
		t.Fatalf("real-range edit must be tracked")
	}
	pl, _ := e.Cache.PostList(params.Default())
	if pl.Posts[0].Title != "Updated" {
		t.Fatalf("optimistic write missing: %q", pl.Posts[0].Title)
	}

	res.Rollback()
	pl, _ = e.Cache.PostList(params.Default())
	if pl.Posts[0].Title != "one" {
		t.Fatalf("rollback should restore title; got %q", pl.Posts[0].Title)
	}
}

func TestUpdateFabricatedPostNeverRollsBack(t *testing.T) {
	t.Parallel()

	e := seededEngine()
	created := e.CreatePost(model.NewPost{Title: "orig"})

	title := "changed"
	res := e.UpdatePost(created.Post.ID, model.UpdatePost{Title: &title})
	if e.Modified.IsModified(created.Post.ID) {
		t.Fatalf("fabricated ids must not enter the modified set")
	}

	res.Rollback()
	pl, _ := e.Cache.PostList(params.Default())
	if pl.Posts[0].Title != "changed" {
		t.Fatalf("rollback must be a no-op for fabricated posts; got %q", pl.Posts[0].Title)
	}
}

func TestUpdateTouchesDetailRegionToo(t *testing.T) {
	t.Parallel()

	e := seededEngine()
	e.Cache.SetPostDetail(model.Post{ID: 1, Title: "one"})

	title := "Updated"
	res := e.UpdatePost(1, model.UpdatePost{Title: &title})
	if d, _ := e.Cache.PostDetail(1); d.Title != "Updated" {
		t.Fatalf("detail region not patched: %q", d.Title)
	}

	res.Rollback()
	if d, _ := e.Cache.PostDetail(1); d.Title != "one" {
		t.Fatalf("detail region not restored: %q", d.Title)
	}
}

func TestDeleteRealPostRollback(t *testing.T) {
	t.Parallel()

	e := seededEngine()
	res := e.DeletePost(1)

	pl, _ := e.Cache.PostList(params.Default())
	if len(pl.Posts) != 1 || pl.Total != 250 {
		t.Fatalf("optimistic delete missing: %+v", pl)
	}

	res.Rollback()
	pl, _ = e.Cache.PostList(params.Default())
	if len(pl.Posts) != 2 || pl.Total != 251 {
		t.Fatalf("rollback should re-insert and restore total: %+v", pl)
	}
}

func TestDeleteFabricatedPostStaysDeletedOnFailure(t *testing.T) {
	t.Parallel()

	e := seededEngine()
	created := e.CreatePost(model.NewPost{Title: "mine"})

	res := e.DeletePost(created.Post.ID)
	res.Rollback() // network failed; must be a no-op for synthetic ids

	if _, ok := cache.FindPost(e.Cache, created.Post.ID); ok {
		t.Fatalf("fabricated post must remain absent after failed delete")
	}
}

func TestDeleteCommitUnmarksModified(t *testing.T) {
	t.Parallel()

	e := seededEngine()
	title := "x"
	e.UpdatePost(1, model.UpdatePost{Title: &title})
	if !e.Modified.IsModified(1) {
		t.Fatalf("precondition: 1 modified")
	}

	e.DeletePost(1).Commit()
	if e.Modified.IsModified(1) {
		t.Fatalf("successful delete should unmark the id")
	}
}
