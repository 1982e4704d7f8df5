// Package reconcile merges the three post sources — the raw paginated/tag
// page, the raw search page, and the local overlay of fabricated and edited
// posts — into the single filtered, deduplicated, author-joined list the
// table renders, plus a total that keeps pagination math honest.
package reconcile

import (
	"postdeck/internal/cache"
	"postdeck/internal/model"
	"postdeck/internal/params"
)

type Input struct {
	// List is the raw paginated-or-tag-filtered server page; Search the raw
	// search page. Exactly one is consulted: search mode wins whenever a
	// non-empty term is active. Either may be nil while loading.
	List   *model.PostList
	Search *model.PostList

	Params   params.Params
	Users    []model.User
	Cache    *cache.Store
	Modified map[int]bool // server-known IDs with local edits
}

type Result struct {
	Posts []model.Post
	Total int
}

// Process is pure with respect to its input: identical cache snapshots and
// parameters yield identical output, and nothing is mutated.
//
// Sorting is asymmetric on purpose: in paginated/tag mode the server already
// ordered the page via sortBy/order and re-sorting client-side would fight
// its pagination, so only search mode sorts here. Switching modes with the
// same sort selected can therefore show different orderings; that mirrors
// the observed behavior this engine reproduces.
func Process(in Input) Result {
	searching := in.Params.Searching()

	var raw []model.Post
	rawTotal := 0
	if searching {
		if in.Search != nil {
			raw = in.Search.Posts
			rawTotal = in.Search.Total
		}
	} else if in.List != nil {
		raw = in.List.Posts
		rawTotal = in.List.Total
	}

	cond := Conditions{Tag: in.Params.TagFilter()}
	if searching {
		cond.Query = in.Params.Search
	}

	// Fabricated posts obey the same visibility predicate as the raw source.
	fabricated := filterPosts(cache.FabricatedPosts(in.Cache), cond)

	// Swap in the cached (edited) version of any modified server post, then
	// re-apply the predicate: an edit may have moved the post out of the
	// active filter, and it must drop out rather than show stale.
	replaced := make([]model.Post, len(raw))
	for i, p := range raw {
		if p.ID <= model.MaxRealPostID && in.Modified[p.ID] {
			if cached, ok := cache.FindPost(in.Cache, p.ID); ok {
				p = cached
			}
		}
		replaced[i] = p
	}
	replaced = filterPosts(replaced, cond)

	// Merge with fabricated posts first, dropping raw copies of IDs the
	// overlay already carries (the mock API can start paging fabricated IDs
	// back once enough accumulate).
	merged := mergeUnique(fabricated, replaced)

	merged = joinAuthors(merged, in.Users)

	if searching {
		merged = sortPosts(merged, in.Params.SortBy, in.Params.Order)
	}

	return Result{
		Posts: merged,
		Total: rawTotal + len(fabricated),
	}
}

// mergeUnique keeps every primary post and appends the secondary posts whose
// IDs are not already present.
func mergeUnique(primary, secondary []model.Post) []model.Post {
	seen := make(map[int]bool, len(primary))
	for _, p := range primary {
		seen[p.ID] = true
	}
	out := make([]model.Post, 0, len(primary)+len(secondary))
	out = append(out, primary...)
	for _, p := range secondary {
		if !seen[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func joinAuthors(posts []model.Post, users []model.User) []model.Post {
	out := make([]model.Post, len(posts))
	for i, p := range posts {
		p.Author = model.FindUser(users, p.UserID)
		out[i] = p
	}
	return out
}
