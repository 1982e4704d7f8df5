package reconcile

import (
	"testing"

	"postdeck/internal/model"
)

func TestSortPosts(t *testing.T) {
	t.Parallel()

	posts := []model.Post{
		{ID: 2, Title: "banana", Reactions: model.Reactions{Likes: 5}},
		{ID: 1, Title: "Apple", Reactions: model.Reactions{Likes: 9}},
		{ID: 3, Title: "cherry", Reactions: model.Reactions{Likes: 1}},
	}

	tests := []struct {
		name   string
		sortBy string
		order  string
		want   []int // expected ID order
	}{
		{"id asc", "id", "asc", []int{1, 2, 3}},
		{"id desc", "id", "desc", []int{3, 2, 1}},
		{"likes asc", "reactions", "asc", []int{3, 2, 1}},
		{"likes desc", "reactions", "desc", []int{1, 2, 3}},
		{"title asc is case-insensitive", "title", "asc", []int{1, 2, 3}},
		{"unknown field no-op", "views", "asc", []int{2, 1, 3}},
		{"none no-op", "none", "desc", []int{2, 1, 3}},
		{"empty no-op", "", "asc", []int{2, 1, 3}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := sortPosts(posts, tt.sortBy, tt.order)
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Fatalf("position %d: id %d; want %d", i, got[i].ID, id)
				}
			}
		})
	}

	// Input must not be mutated.
	if posts[0].ID != 2 {
		t.Fatalf("sortPosts mutated its input")
	}
}

func TestFilterConditions(t *testing.T) {
	t.Parallel()

	p := model.Post{Title: "Go Patterns", Body: "Channels and Goroutines", Tags: []string{"tech", "go"}}

	if !matches(p, Conditions{}) {
		t.Fatalf("empty conditions match everything")
	}
	if !matches(p, Conditions{Query: "goroutine"}) {
		t.Fatalf("case-insensitive body match expected")
	}
	if !matches(p, Conditions{Query: "go patterns"}) {
		t.Fatalf("case-insensitive title match expected")
	}
	if matches(p, Conditions{Query: "rust"}) {
		t.Fatalf("non-matching query should exclude")
	}
	if !matches(p, Conditions{Tag: "go"}) {
		t.Fatalf("tag membership expected")
	}
	if !matches(p, Conditions{Tag: "all"}) {
		t.Fatalf("tag=all matches everything")
	}
	if matches(p, Conditions{Tag: "nature"}) {
		t.Fatalf("missing tag should exclude")
	}
	if matches(p, Conditions{Query: "go", Tag: "nature"}) {
		t.Fatalf("all conditions must hold")
	}
}
