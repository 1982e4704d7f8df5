package reconcile

import (
	"strings"

	"postdeck/internal/model"
)

// Conditions is the visibility predicate applied uniformly to server-sourced
// and fabricated posts: a fabricated post obeys the same search and tag
// rules as anything the server returned.
type Conditions struct {
	Query string // substring over title+body, case-insensitive; empty matches all
	Tag   string // tag membership; empty or "all" matches all
}

func matchesQuery(p model.Post, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Body), q)
}

func matchesTag(p model.Post, tag string) bool {
	if tag == "" || tag == "all" {
		return true
	}
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func matches(p model.Post, c Conditions) bool {
	return matchesQuery(p, c.Query) && matchesTag(p, c.Tag)
}

func filterPosts(posts []model.Post, c Conditions) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}
