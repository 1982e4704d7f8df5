package mutate

import (
	"postdeck/internal/cache"
	"postdeck/internal/model"
)

// CreatePostResult carries the fabricated post. Creation is never rolled
// back: the allocated ID is synthetic by construction, so a failed network
// call changes nothing about the local truth.
type CreatePostResult struct {
	Post model.Post
}

// CreatePost allocates a synthetic ID, builds the full post record with
// counters zeroed, and prepends it to every cached list page so it is
// visible without pagination.
func (e *Engine) CreatePost(data model.NewPost) CreatePostResult {
	e.Cache.CancelPostListFetches()

	post := model.Post{
		ID:     e.PostIDs.Next(),
		Title:  data.Title,
		Body:   data.Body,
		UserID: data.UserID,
		Tags:   append([]string(nil), data.Tags...),
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	e.Cache.PrependPost(post)
	e.Modified.MarkNewlyCreated(post.ID)
	return CreatePostResult{Post: post}
}

// UpdatePostResult restores every touched region together on Rollback, but
// only when the target is a server-known post.
type UpdatePostResult struct {
	engine     *Engine
	id         int
	real       bool
	prevLists  map[string]model.PostList
	prevDetail model.Post
	hadDetail  bool
}

// UpdatePost patches the post in every cached list page and in the detail
// region. Server-known posts are marked modified so later raw refetches
// cannot clobber the edit.
func (e *Engine) UpdatePost(id int, u model.UpdatePost) UpdatePostResult {
	e.Cache.CancelPostListFetches()
	e.Cache.Cancel(cache.PostDetailKey(id))

	res := UpdatePostResult{
		engine:    e,
		id:        id,
		real:      model.IsRealPostID(id),
		prevLists: e.Cache.SnapshotPostLists(),
	}
	res.prevDetail, res.hadDetail = e.Cache.SnapshotPostDetail(id)

	e.Cache.PatchPost(id, u)
	if res.real {
		e.Modified.Mark(id)
	}
	return res
}

func (r UpdatePostResult) Rollback() {
	if !r.real {
		return
	}
	r.engine.Cache.RestorePostLists(r.prevLists)
	if r.hadDetail {
		r.engine.Cache.RestorePostDetail(r.prevDetail)
	}
}

type DeletePostResult struct {
	engine    *Engine
	id        int
	real      bool
	prevLists map[string]model.PostList
}

// DeletePost removes the post from every cached list page and adjusts the
// cached totals downward.
func (e *Engine) DeletePost(id int) DeletePostResult {
	e.Cache.CancelPostListFetches()

	res := DeletePostResult{
		engine:    e,
		id:        id,
		real:      model.IsRealPostID(id),
		prevLists: e.Cache.SnapshotPostLists(),
	}
	e.Cache.RemovePost(id)
	return res
}

// Commit finalizes a successful delete, forgetting any modified mark for
// the ID.
func (r DeletePostResult) Commit() {
	r.engine.Modified.Unmark(r.id)
}

func (r DeletePostResult) Rollback() {
	if !r.real {
		return
	}
	r.engine.Cache.RestorePostLists(r.prevLists)
}
