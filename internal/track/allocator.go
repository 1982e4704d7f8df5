// Package track holds the client-side bookkeeping that the mock backend
// cannot: synthetic ID allocation, which server-known entities were locally
// edited, and which comments the user has liked. All state objects are
// constructed explicitly (no package globals) so tests and the session layer
// can own fresh instances.
package track

// Allocator issues strictly increasing synthetic IDs for client-created
// entities, seeded above the server data ceiling. IDs are never reused, even
// across delete-then-recreate, so fabricated entities can never collide.
type Allocator struct {
	next int
}

// NewAllocator returns an allocator whose first ID is ceiling+1.
func NewAllocator(ceiling int) *Allocator {
	return &Allocator{next: ceiling + 1}
}

// Next returns the next synthetic ID and advances the counter.
func (a *Allocator) Next() int {
	id := a.next
	a.next++
	return id
}

// Peek returns the ID the next call to Next will produce, without consuming
// it. Used when persisting the counter.
func (a *Allocator) Peek() int { return a.next }

// RaiseFloor advances the counter past candidateMax when a larger ID has
// been observed (a prior session's fabricated entity, for example). It never
// moves the counter backward.
func (a *Allocator) RaiseFloor(candidateMax int) {
	if candidateMax >= a.next {
		a.next = candidateMax + 1
	}
}
