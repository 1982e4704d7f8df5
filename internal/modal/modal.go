// Package modal is the ordered stack of open dialogs. Dialogs nest (a
// comment editor opens on top of a post detail view); only the top entry can
// be dismissed individually, and the whole stack can be cleared at once. UI
// layers receive the stack as an injected capability, never as a global.
package modal

// Kind identifies a dialog. The set is closed.
type Kind int

const (
	KindNone Kind = iota
	KindPostAdd
	KindPostEdit
	KindPostDetail
	KindCommentAdd
	KindCommentEdit
	KindUserDetail
)

func (k Kind) String() string {
	switch k {
	case KindPostAdd:
		return "post-add"
	case KindPostEdit:
		return "post-edit"
	case KindPostDetail:
		return "post-detail"
	case KindCommentAdd:
		return "comment-add"
	case KindCommentEdit:
		return "comment-edit"
	case KindUserDetail:
		return "user-detail"
	}
	return "none"
}

// Title returns the dialog's default heading.
func (k Kind) Title() string {
	switch k {
	case KindPostAdd:
		return "New Post"
	case KindPostEdit:
		return "Edit Post"
	case KindPostDetail:
		return "Post"
	case KindCommentAdd:
		return "New Comment"
	case KindCommentEdit:
		return "Edit Comment"
	case KindUserDetail:
		return "User"
	}
	return ""
}

// Data is the kind-indexed payload. Unused fields stay zero; CommentEdit
// carries both the comment and its post.
type Data struct {
	PostID    int
	CommentID int
	UserID    int
}

type Entry struct {
	Kind Kind
	Data Data
}

// Stack is ordered oldest-to-newest; the last entry is the top.
type Stack struct {
	entries []Entry
}

func NewStack() *Stack {
	return &Stack{}
}

// Open pushes a dialog onto the stack.
func (s *Stack) Open(kind Kind, data Data) {
	s.entries = append(s.entries, Entry{Kind: kind, Data: data})
}

// Close pops only the top entry. Closing a buried entry is not supported;
// removal is strictly top-down.
func (s *Stack) Close() {
	if len(s.entries) > 0 {
		s.entries = s.entries[:len(s.entries)-1]
	}
}

// CloseAll empties the stack.
func (s *Stack) CloseAll() {
	s.entries = nil
}

// IsOpen reports whether any entry on the stack has the given kind, top or
// buried.
func (s *Stack) IsOpen(kind Kind) bool {
	for _, e := range s.entries {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Top returns the most recent entry.
func (s *Stack) Top() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *Stack) Len() int { return len(s.entries) }

// Snapshot returns the entries oldest-first, as a copy.
func (s *Stack) Snapshot() []Entry {
	return append([]Entry(nil), s.entries...)
}
