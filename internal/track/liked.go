package track

// Liked tracks which comment IDs the current user has toggled "liked". The
// API only stores an aggregate counter, so per-user like state lives purely
// client-side.
type Liked struct {
	ids map[int]bool
}

func NewLiked() *Liked {
	return &Liked{ids: map[int]bool{}}
}

// Toggle flips the liked state for a comment and returns the new state
// (true when the toggle added a like).
func (l *Liked) Toggle(commentID int) bool {
	if l.ids[commentID] {
		delete(l.ids, commentID)
		return false
	}
	l.ids[commentID] = true
	return true
}

func (l *Liked) IsLiked(commentID int) bool { return l.ids[commentID] }

// Set forces the liked state, used when restoring persisted session state.
func (l *Liked) Set(commentID int, liked bool) {
	if liked {
		l.ids[commentID] = true
	} else {
		delete(l.ids, commentID)
	}
}

// IDs returns the liked set as a copy.
func (l *Liked) IDs() map[int]bool {
	out := make(map[int]bool, len(l.ids))
	for id := range l.ids {
		out[id] = true
	}
	return out
}

func (l *Liked) Clear() {
	l.ids = map[int]bool{}
}

// NewLikes computes the counter after a toggle: one more when the comment is
// now liked, one less when unliked, clamped at zero.
func NewLikes(current int, nowLiked bool) int {
	if nowLiked {
		return current + 1
	}
	if current <= 0 {
		return 0
	}
	return current - 1
}
