package cache

import (
	"sort"

	"postdeck/internal/model"
)

// Pure queries over a cache snapshot. No hidden state: identical snapshots
// yield identical results, so callers may memoize on the snapshot alone.
// Regions are scanned in stable key order.

// FindPost scans every cached post list page for the target ID and returns
// the first match. An edit applied while viewing one page is therefore
// visible when the same post is opened from another page or a modal.
func FindPost(s *Store, id int) (model.Post, bool) {
	for _, key := range s.sortedListKeys() {
		for _, p := range s.postLists[key].Posts {
			if p.ID == id {
				return p, true
			}
		}
	}
	return model.Post{}, false
}

// FabricatedPosts returns every cached post whose ID exceeds the real-data
// ceiling, deduplicated by ID with the first occurrence winning (the same
// fabricated post may sit in several cached pages after invalidation).
func FabricatedPosts(s *Store) []model.Post {
	var out []model.Post
	seen := map[int]bool{}
	for _, key := range s.sortedListKeys() {
		for _, p := range s.postLists[key].Posts {
			if p.ID > model.MaxRealPostID && !seen[p.ID] {
				out = append(out, p)
				seen[p.ID] = true
			}
		}
	}
	return out
}

// FindComment locates a comment in its post's cached comment page.
func FindComment(s *Store, postID, id int) (model.Comment, bool) {
	cl, ok := s.comments[postID]
	if !ok {
		return model.Comment{}, false
	}
	for _, c := range cl.Comments {
		if c.ID == id {
			return c, true
		}
	}
	return model.Comment{}, false
}

// FabricatedComments returns every cached comment above the real-data
// ceiling, deduplicated by ID, scanning posts in ascending order.
func FabricatedComments(s *Store) []model.Comment {
	postIDs := make([]int, 0, len(s.comments))
	for id := range s.comments {
		postIDs = append(postIDs, id)
	}
	sort.Ints(postIDs)

	var out []model.Comment
	seen := map[int]bool{}
	for _, pid := range postIDs {
		for _, c := range s.comments[pid].Comments {
			if c.ID > model.MaxRealCommentID && !seen[c.ID] {
				out = append(out, c)
				seen[c.ID] = true
			}
		}
	}
	return out
}

// MaxPostID returns the largest post ID present in any cached list page, or
// zero. Used to raise the allocator floor when a prior session left larger
// fabricated IDs in persisted state.
func MaxPostID(s *Store) int {
	max := 0
	for _, pl := range s.postLists {
		for _, p := range pl.Posts {
			if p.ID > max {
				max = p.ID
			}
		}
	}
	return max
}

// MaxCommentID returns the largest comment ID in any cached comment page.
func MaxCommentID(s *Store) int {
	max := 0
	for _, cl := range s.comments {
		for _, c := range cl.Comments {
			if c.ID > max {
				max = c.ID
			}
		}
	}
	return max
}
