package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"postdeck/internal/model"
	"postdeck/internal/params"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestPostListQueryShape(t *testing.T) {
	t.Parallel()

	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(model.PostList{Posts: []model.Post{{ID: 1, Title: "a"}}, Total: 251})
	})

	p := params.Default()
	p.Skip = 20
	p.SortBy = "title"
	p.Order = "desc"
	out, err := c.PostList(context.Background(), p)
	if err != nil {
		t.Fatalf("PostList error: %v", err)
	}
	if out.Total != 251 || len(out.Posts) != 1 {
		t.Fatalf("unexpected response: %+v", out)
	}
	want := "limit=10&order=desc&skip=20&sortBy=title"
	if gotQuery != want {
		t.Fatalf("query = %q; want %q", gotQuery, want)
	}
}

func TestPostListOmitsNoneSort(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("sortBy") || r.URL.Query().Has("order") {
			t.Errorf("sortBy=none must not be sent; got %q", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(model.PostList{})
	})
	p := params.Default()
	p.SortBy = "none"
	if _, err := c.PostList(context.Background(), p); err != nil {
		t.Fatalf("PostList error: %v", err)
	}
}

func TestCreatePostSendsJSON(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/posts/add" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var in model.NewPost
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if in.Title != "hello" || in.UserID != 3 {
			t.Errorf("unexpected body: %+v", in)
		}
		_ = json.NewEncoder(w).Encode(model.Post{ID: 252, Title: in.Title})
	})

	out, err := c.CreatePost(context.Background(), model.NewPost{Title: "hello", Body: "b", UserID: 3})
	if err != nil {
		t.Fatalf("CreatePost error: %v", err)
	}
	if out.ID != 252 {
		t.Fatalf("unexpected id %d", out.ID)
	}
}

func TestLikeCommentPatch(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/comments/5" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var in struct {
			Likes int `json:"likes"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(model.Comment{ID: 5, Likes: in.Likes})
	})

	out, err := c.LikeComment(context.Background(), 5, 4)
	if err != nil {
		t.Fatalf("LikeComment error: %v", err)
	}
	if out.Likes != 4 {
		t.Fatalf("likes = %d; want 4", out.Likes)
	}
}

func TestNonSuccessStatus(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})
	_, err := c.PostByID(context.Background(), 9999)
	var se StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError; got %v", err)
	}
	if se.Status != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", se.Status)
	}
}

func TestUserListSelectsFields(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("limit") != "0" || q.Get("select") != "username,image" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(model.UserList{Users: []model.User{{ID: 1, Username: "ada"}}, Total: 208})
	})
	out, err := c.UserList(context.Background())
	if err != nil {
		t.Fatalf("UserList error: %v", err)
	}
	if out.Total != 208 {
		t.Fatalf("unexpected total %d", out.Total)
	}
}
