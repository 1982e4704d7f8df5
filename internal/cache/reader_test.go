package cache

import (
	"reflect"
	"testing"

	"postdeck/internal/model"
)

func TestFindPostAcrossPages(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetPostList(listParams(0), model.PostList{Posts: []model.Post{{ID: 1}}, Total: 251})
	s.SetPostList(listParams(10), model.PostList{Posts: []model.Post{{ID: 10, Title: "edited"}}, Total: 251})

	p, ok := FindPost(s, 10)
	if !ok || p.Title != "edited" {
		t.Fatalf("FindPost = %+v ok=%v", p, ok)
	}
	if _, ok := FindPost(s, 9999); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestFabricatedPostsDedupesAcrossPages(t *testing.T) {
	t.Parallel()

	s := NewStore()
	fab := model.Post{ID: 252, Title: "mine"}
	s.SetPostList(listParams(0), model.PostList{Posts: []model.Post{fab, {ID: 1}}, Total: 252})
	s.SetPostList(listParams(10), model.PostList{Posts: []model.Post{fab, {ID: 11}}, Total: 252})

	got := FabricatedPosts(s)
	if len(got) != 1 || got[0].ID != 252 {
		t.Fatalf("FabricatedPosts = %+v", got)
	}
}

func TestFabricatedPostsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetPostList(listParams(0), model.PostList{Posts: []model.Post{{ID: 253}, {ID: 1}}, Total: 252})
	s.SetPostList(listParams(10), model.PostList{Posts: []model.Post{{ID: 252}}, Total: 252})

	a := FabricatedPosts(s)
	b := FabricatedPosts(s)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical snapshots must yield identical results: %+v vs %+v", a, b)
	}
	if len(a) != 2 {
		t.Fatalf("expected both fabricated posts, got %+v", a)
	}
}

func TestFindComment(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetComments(5, model.CommentList{Comments: []model.Comment{{ID: 3, Body: "b"}}, Total: 1})

	c, ok := FindComment(s, 5, 3)
	if !ok || c.Body != "b" {
		t.Fatalf("FindComment = %+v ok=%v", c, ok)
	}
	if _, ok := FindComment(s, 5, 99); ok {
		t.Fatalf("expected miss")
	}
	if _, ok := FindComment(s, 99, 3); ok {
		t.Fatalf("expected miss for unknown post")
	}
}

func TestMaxPostID(t *testing.T) {
	t.Parallel()

	s := NewStore()
	if got := MaxPostID(s); got != 0 {
		t.Fatalf("empty cache max = %d", got)
	}
	s.SetPostList(listParams(0), model.PostList{Posts: []model.Post{{ID: 40}, {ID: 260}}, Total: 2})
	if got := MaxPostID(s); got != 260 {
		t.Fatalf("max = %d; want 260", got)
	}
}
