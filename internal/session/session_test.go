package session

import (
	"context"
	"testing"

	"postdeck/internal/model"
	"postdeck/internal/track"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	posts := track.NewAllocator(model.MaxRealPostID)
	comments := track.NewAllocator(model.MaxRealCommentID)
	modified := track.NewModified()
	liked := track.NewLiked()

	_ = posts.Next() // 252
	_ = posts.Next() // 253
	_ = comments.Next()
	modified.Mark(10)
	modified.Mark(42)
	liked.Toggle(5)

	if err := s.Save(ctx, posts, comments, modified, liked); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	st, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	posts2 := track.NewAllocator(model.MaxRealPostID)
	comments2 := track.NewAllocator(model.MaxRealCommentID)
	modified2 := track.NewModified()
	liked2 := track.NewLiked()
	st.Apply(posts2, comments2, modified2, liked2)

	if got := posts2.Next(); got != 254 {
		t.Fatalf("restored post allocator next = %d; want 254", got)
	}
	if got := comments2.Next(); got != 342 {
		t.Fatalf("restored comment allocator next = %d; want 342", got)
	}
	if !modified2.IsModified(10) || !modified2.IsModified(42) {
		t.Fatalf("modified set not restored")
	}
	if !liked2.IsLiked(5) {
		t.Fatalf("liked set not restored")
	}
}

func TestLoadFreshDirIsZeroState(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	st, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if st.NextPostID != 0 || len(st.ModifiedIDs) != 0 || len(st.LikedIDs) != 0 {
		t.Fatalf("fresh state should be zero: %+v", st)
	}

	// Applying zero state leaves fresh trackers untouched.
	posts := track.NewAllocator(model.MaxRealPostID)
	st.Apply(posts, track.NewAllocator(model.MaxRealCommentID), track.NewModified(), track.NewLiked())
	if got := posts.Next(); got != 252 {
		t.Fatalf("zero state must not move the allocator; got %d", got)
	}
}

func TestSaveIsReplaceAll(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	posts := track.NewAllocator(model.MaxRealPostID)
	comments := track.NewAllocator(model.MaxRealCommentID)
	modified := track.NewModified()
	liked := track.NewLiked()

	modified.Mark(10)
	if err := s.Save(ctx, posts, comments, modified, liked); err != nil {
		t.Fatalf("first Save: %v", err)
	}

	modified.Unmark(10)
	modified.Mark(20)
	if err := s.Save(ctx, posts, comments, modified, liked); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	st, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(st.ModifiedIDs) != 1 || st.ModifiedIDs[0] != 20 {
		t.Fatalf("stale rows must be replaced: %+v", st.ModifiedIDs)
	}
}
