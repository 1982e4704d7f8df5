package track

// Modified records which server-known entity IDs carry local edits, plus a
// transient set of just-created IDs for "new" highlighting. A locally edited
// server entity must never be clobbered by a raw refetch; the reconciler
// consults this set to substitute the cached version.
type Modified struct {
	modified     map[int]bool
	newlyCreated map[int]bool
}

func NewModified() *Modified {
	return &Modified{modified: map[int]bool{}, newlyCreated: map[int]bool{}}
}

func (m *Modified) Mark(id int) { m.modified[id] = true }

// Unmark forgets an ID, called when the entity is deleted.
func (m *Modified) Unmark(id int) { delete(m.modified, id) }

func (m *Modified) IsModified(id int) bool { return m.modified[id] }

// IDs returns the modified set as a copy.
func (m *Modified) IDs() map[int]bool {
	out := make(map[int]bool, len(m.modified))
	for id := range m.modified {
		out[id] = true
	}
	return out
}

func (m *Modified) MarkNewlyCreated(id int) { m.newlyCreated[id] = true }

func (m *Modified) IsNewlyCreated(id int) bool { return m.newlyCreated[id] }

// ClearNewlyCreated drops the transient highlight set; called whenever the
// listing parameters change.
func (m *Modified) ClearNewlyCreated() {
	m.newlyCreated = map[int]bool{}
}

func (m *Modified) Clear() {
	m.modified = map[int]bool{}
	m.newlyCreated = map[int]bool{}
}
