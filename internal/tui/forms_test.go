package tui

import (
	"reflect"
	"testing"

	"postdeck/internal/model"
)

func TestTagListDedupesAndTrims(t *testing.T) {
	f := newPostForm(60)
	f.tags.SetValue(" history, crime ,history,, crime")
	if got, want := f.tagList(), []string{"history", "crime"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("tagList = %v; want %v", got, want)
	}
}

func TestAvailableTagsExcludesSelected(t *testing.T) {
	got := availableTags([]string{"history", "crime", "love"}, []string{"crime"})
	if want := []string{"history", "love"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("availableTags = %v; want %v", got, want)
	}
}

func TestEditFormSeedsFromPost(t *testing.T) {
	p := model.Post{ID: 7, Title: "t", Body: "b", Tags: []string{"a", "b"}}
	f := newPostEditForm(p, 60)
	if f.editID != 7 || f.title.Value() != "t" || f.body.Value() != "b" {
		t.Fatalf("form not seeded: %+v", f)
	}
	if got := f.tags.Value(); got != "a, b" {
		t.Fatalf("tags field = %q", got)
	}
}

func TestMergeUserReplacesTrimmedEntry(t *testing.T) {
	users := []model.User{{ID: 1, Username: "ada"}, {ID: 2, Username: "bob"}}
	full := model.User{ID: 2, Username: "bob", Email: "bob@example.com"}
	merged := mergeUser(users, full)
	if merged[1].Email != "bob@example.com" {
		t.Fatalf("full profile should replace the trimmed entry: %+v", merged[1])
	}
	if len(merged) != 2 {
		t.Fatalf("merge must not duplicate, len=%d", len(merged))
	}
	if users[1].Email != "" {
		t.Fatalf("input slice must not be mutated")
	}
}
