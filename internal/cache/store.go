// Package cache is the client-side query cache: a keyed mapping from request
// descriptor to the last result fetched (or optimistically written) for it.
// The mock backend discards writes, so this cache is the source of truth for
// everything the user has created or edited in the session.
//
// The Store is owned by the UI event loop and is not safe for concurrent
// use. The mutation engine is the only writer of entity data; every other
// component reads.
package cache

import (
	"sort"

	"postdeck/internal/model"
	"postdeck/internal/params"
)

type Store struct {
	postLists  map[string]model.PostList
	postSearch map[string]model.PostList
	postDetail map[int]model.Post
	comments   map[int]model.CommentList
	users      []model.User
	tags       []model.Tag

	// Fetch generation per region. A refetch started before an optimistic
	// write must not overwrite it when it lands; bumping the generation
	// invalidates every in-flight fetch for the region.
	gen map[string]int
}

func NewStore() *Store {
	return &Store{
		postLists:  map[string]model.PostList{},
		postSearch: map[string]model.PostList{},
		postDetail: map[int]model.Post{},
		comments:   map[int]model.CommentList{},
		gen:        map[string]int{},
	}
}

// BeginFetch registers an in-flight read for a region and returns its
// generation token.
func (s *Store) BeginFetch(key string) int {
	s.gen[key]++
	return s.gen[key]
}

// Accept reports whether a fetch started with the given token may still
// write its result. A mutation that touched the region in the meantime has
// bumped the generation, and the stale result must be dropped.
func (s *Store) Accept(key string, token int) bool {
	return s.gen[key] == token
}

// Cancel invalidates every in-flight fetch for the region.
func (s *Store) Cancel(key string) {
	s.gen[key]++
}

// CancelPostListFetches invalidates in-flight fetches for every post list
// region, known or not-yet-cached.
func (s *Store) CancelPostListFetches() {
	for key := range s.gen {
		if len(key) >= len("posts/list") && key[:len("posts/list")] == "posts/list" {
			s.gen[key]++
		}
	}
}

func (s *Store) SetPostList(p params.Params, pl model.PostList) {
	s.postLists[PostListKey(p)] = pl
}

func (s *Store) PostList(p params.Params) (model.PostList, bool) {
	pl, ok := s.postLists[PostListKey(p)]
	return pl, ok
}

func (s *Store) SetPostSearch(query string, pl model.PostList) {
	s.postSearch[query] = pl
}

func (s *Store) PostSearch(query string) (model.PostList, bool) {
	pl, ok := s.postSearch[query]
	return pl, ok
}

func (s *Store) SetPostDetail(p model.Post) {
	s.postDetail[p.ID] = p
}

func (s *Store) PostDetail(id int) (model.Post, bool) {
	p, ok := s.postDetail[id]
	return p, ok
}

func (s *Store) SetComments(postID int, cl model.CommentList) {
	s.comments[postID] = cl
}

func (s *Store) Comments(postID int) (model.CommentList, bool) {
	cl, ok := s.comments[postID]
	return cl, ok
}

func (s *Store) SetUsers(users []model.User) { s.users = users }

func (s *Store) Users() []model.User { return s.users }

func (s *Store) SetTags(tags []model.Tag) { s.tags = tags }

func (s *Store) Tags() []model.Tag { return s.tags }

// sortedListKeys returns post list region keys in stable order so scans and
// multi-region writes behave identically for identical cache contents.
func (s *Store) sortedListKeys() []string {
	keys := make([]string, 0, len(s.postLists))
	for k := range s.postLists {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PrependPost inserts a fabricated post at the head of every cached post
// list and bumps each list's total, so the new post is visible without
// pagination.
func (s *Store) PrependPost(p model.Post) {
	for _, key := range s.sortedListKeys() {
		pl := s.postLists[key]
		pl.Posts = append([]model.Post{p}, pl.Posts...)
		pl.Total++
		s.postLists[key] = pl
	}
}

// PatchPost applies u to the post in every cached list page and in the
// detail region, wherever it currently appears.
func (s *Store) PatchPost(id int, u model.UpdatePost) {
	for _, key := range s.sortedListKeys() {
		pl := s.postLists[key]
		for i := range pl.Posts {
			if pl.Posts[i].ID == id {
				u.Apply(&pl.Posts[i])
			}
		}
		s.postLists[key] = pl
	}
	if d, ok := s.postDetail[id]; ok {
		u.Apply(&d)
		s.postDetail[id] = d
	}
}

// RemovePost drops the post from every cached list page and adjusts each
// cached total downward.
func (s *Store) RemovePost(id int) {
	for _, key := range s.sortedListKeys() {
		pl := s.postLists[key]
		kept := pl.Posts[:0:0]
		for _, p := range pl.Posts {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		pl.Posts = kept
		pl.Total--
		s.postLists[key] = pl
	}
}

// AppendComment adds a comment to its post's cached comment page, creating
// the page when none exists yet (the post itself may be fabricated and will
// never have a server-backed comment list).
func (s *Store) AppendComment(c model.Comment) {
	cl, ok := s.comments[c.PostID]
	if !ok {
		s.comments[c.PostID] = model.CommentList{Comments: []model.Comment{c}, Total: 1}
		return
	}
	cl.Comments = append(cl.Comments, c)
	cl.Total++
	s.comments[c.PostID] = cl
}

func (s *Store) PatchComment(postID, id int, apply func(*model.Comment)) {
	cl, ok := s.comments[postID]
	if !ok {
		return
	}
	for i := range cl.Comments {
		if cl.Comments[i].ID == id {
			apply(&cl.Comments[i])
		}
	}
	s.comments[postID] = cl
}

func (s *Store) RemoveComment(postID, id int) {
	cl, ok := s.comments[postID]
	if !ok {
		return
	}
	kept := cl.Comments[:0:0]
	for _, c := range cl.Comments {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	cl.Comments = kept
	cl.Total--
	s.comments[postID] = cl
}

// SnapshotPostLists deep-copies every post list region for rollback.
func (s *Store) SnapshotPostLists() map[string]model.PostList {
	snap := make(map[string]model.PostList, len(s.postLists))
	for k, pl := range s.postLists {
		pl.Posts = model.ClonePosts(pl.Posts)
		snap[k] = pl
	}
	return snap
}

// RestorePostLists writes back every snapshotted region in one pass.
func (s *Store) RestorePostLists(snap map[string]model.PostList) {
	for k, pl := range snap {
		s.postLists[k] = pl
	}
}

func (s *Store) SnapshotPostDetail(id int) (model.Post, bool) {
	p, ok := s.postDetail[id]
	if ok {
		p = model.ClonePost(p)
	}
	return p, ok
}

func (s *Store) RestorePostDetail(p model.Post) {
	s.postDetail[p.ID] = p
}

// SnapshotComments deep-copies a post's comment region; nil means the region
// was absent.
func (s *Store) SnapshotComments(postID int) *model.CommentList {
	cl, ok := s.comments[postID]
	if !ok {
		return nil
	}
	cl.Comments = model.CloneComments(cl.Comments)
	return &cl
}

func (s *Store) RestoreComments(postID int, snap *model.CommentList) {
	if snap == nil {
		delete(s.comments, postID)
		return
	}
	s.comments[postID] = *snap
}
