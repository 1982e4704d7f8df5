package reconcile

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"postdeck/internal/model"
)

// titleCollator gives locale-aware ordering for titles, matching what a
// browser's localeCompare would produce rather than raw byte order.
var titleCollator = collate.New(language.Und)

// sortPosts orders posts by the given field, descending when order is
// "desc". Unknown or empty fields (including "none") leave the input
// untouched. The input slice is not modified.
func sortPosts(posts []model.Post, sortBy, order string) []model.Post {
	var cmp func(a, b model.Post) int
	switch sortBy {
	case "id":
		cmp = func(a, b model.Post) int { return a.ID - b.ID }
	case "title":
		cmp = func(a, b model.Post) int { return titleCollator.CompareString(a.Title, b.Title) }
	case "reactions":
		cmp = func(a, b model.Post) int { return a.Reactions.Likes - b.Reactions.Likes }
	default:
		return posts
	}

	out := append([]model.Post(nil), posts...)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if order == "desc" {
			return c > 0
		}
		return c < 0
	})
	return out
}
