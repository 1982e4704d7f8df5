// Package mutate applies create/update/delete/like operations to the query
// cache optimistically, before the network call settles, and defines how
// each operation rolls back on failure.
//
// Every operation follows the same shape: cancel in-flight refetches for the
// regions it will touch, snapshot those regions, write the optimistic state
// in one pass, and hand the caller a result whose Rollback restores the
// snapshot. Rollback only acts when the target ID is server-known; a
// fabricated entity has no server-side truth to reconcile with, so a failed
// network call against it is a no-op.
package mutate

import (
	"postdeck/internal/cache"
	"postdeck/internal/model"
	"postdeck/internal/track"
)

// Engine owns all writes to the cache and to the trackers. Readers
// (reconciler, detail views) never mutate.
type Engine struct {
	Cache      *cache.Store
	PostIDs    *track.Allocator
	CommentIDs *track.Allocator
	Modified   *track.Modified
	Liked      *track.Liked
}

func NewEngine(c *cache.Store) *Engine {
	return &Engine{
		Cache:      c,
		PostIDs:    track.NewAllocator(model.MaxRealPostID),
		CommentIDs: track.NewAllocator(model.MaxRealCommentID),
		Modified:   track.NewModified(),
		Liked:      track.NewLiked(),
	}
}

// SeedFromCache raises the allocator floors to clear any IDs already present
// in the cache (for example fabricated entities restored from a previous
// session).
func (e *Engine) SeedFromCache() {
	e.PostIDs.RaiseFloor(cache.MaxPostID(e.Cache))
	e.CommentIDs.RaiseFloor(cache.MaxCommentID(e.Cache))
}
