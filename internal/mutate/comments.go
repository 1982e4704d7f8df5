package mutate

import (
	"postdeck/internal/cache"
	"postdeck/internal/model"
	"postdeck/internal/track"
)

const fallbackUsername = "user"

type CreateCommentResult struct {
	Comment model.Comment
}

// CreateComment fabricates a full comment record, joining the author summary
// from the cached user list, and appends it to the post's comment page
// (creating the page when the post has none cached, which is always the case
// for fabricated posts). Never rolled back.
func (e *Engine) CreateComment(data model.NewComment) CreateCommentResult {
	e.Cache.Cancel(cache.CommentListKey(data.PostID))

	summary := model.UserSummary{ID: data.UserID, Username: fallbackUsername}
	if u := model.FindUser(e.Cache.Users(), data.UserID); u != nil {
		summary = u.Summary()
	}

	c := model.Comment{
		ID:     e.CommentIDs.Next(),
		Body:   data.Body,
		PostID: data.PostID,
		UserID: data.UserID,
		User:   summary,
	}
	e.Cache.AppendComment(c)
	return CreateCommentResult{Comment: c}
}

// commentRollback restores one post's comment region for server-known
// comment IDs.
type commentRollback struct {
	engine *Engine
	postID int
	real   bool
	prev   *model.CommentList
}

func (r commentRollback) Rollback() {
	if !r.real {
		return
	}
	r.engine.Cache.RestoreComments(r.postID, r.prev)
}

type UpdateCommentResult struct{ commentRollback }

func (e *Engine) UpdateComment(postID, id int, body string) UpdateCommentResult {
	e.Cache.Cancel(cache.CommentListKey(postID))

	res := UpdateCommentResult{commentRollback{
		engine: e,
		postID: postID,
		real:   model.IsRealCommentID(id),
		prev:   e.Cache.SnapshotComments(postID),
	}}
	e.Cache.PatchComment(postID, id, func(c *model.Comment) {
		c.Body = body
	})
	return res
}

type DeleteCommentResult struct{ commentRollback }

func (e *Engine) DeleteComment(postID, id int) DeleteCommentResult {
	e.Cache.Cancel(cache.CommentListKey(postID))

	res := DeleteCommentResult{commentRollback{
		engine: e,
		postID: postID,
		real:   model.IsRealCommentID(id),
		prev:   e.Cache.SnapshotComments(postID),
	}}
	e.Cache.RemoveComment(postID, id)
	return res
}

// ToggleLikeResult reports the optimistic outcome of a like toggle. Rollback
// restores the counter but deliberately not the liked flag.
type ToggleLikeResult struct {
	commentRollback
	Likes    int
	NowLiked bool
}

// ToggleCommentLike flips the per-user liked state first, computes the new
// counter (clamped at zero), and writes it optimistically.
func (e *Engine) ToggleCommentLike(postID, id int) (ToggleLikeResult, error) {
	current, ok := cache.FindComment(e.Cache, postID, id)
	if !ok {
		return ToggleLikeResult{}, NotFoundError{Kind: "comment", ID: id}
	}

	e.Cache.Cancel(cache.CommentListKey(postID))

	res := ToggleLikeResult{
		commentRollback: commentRollback{
			engine: e,
			postID: postID,
			real:   model.IsRealCommentID(id),
			prev:   e.Cache.SnapshotComments(postID),
		},
	}
	res.NowLiked = e.Liked.Toggle(id)
	res.Likes = track.NewLikes(current.Likes, res.NowLiked)

	e.Cache.PatchComment(postID, id, func(c *model.Comment) {
		c.Likes = res.Likes
	})
	return res, nil
}
