package TreeSet

// entry is one element of the doubly linked ring mirroring the tree's
// in-order traversal. The ring is anchored by a sentinel entry owned by
// the TreeSet: sentinel.nx is the first element, sentinel.pv the last,
// and an empty ring has the sentinel linked to itself.
type entry[T any] struct {
	v      T
	nx, pv *entry[T]
}

// spliceBefore links e immediately before at in at's ring.
// Time: O(1); Space: O(1)
func (e *entry[T]) spliceBefore(at *entry[T]) {
	e.pv = at.pv
	e.nx = at
	at.pv.nx = e
	at.pv = e
}

// unlink removes e from its ring. e's own links are left as is, so a
// Position still holding e must not be navigated afterwards.
// Time: O(1); Space: O(1)
func (e *entry[T]) unlink() {
	e.pv.nx = e.nx
	e.nx.pv = e.pv
}

// Position is a stable cursor into a TreeSet's ascending element
// sequence. Two Positions compare equal with == exactly when they refer
// to the same element of the same set (the end Positions of one set are
// also equal to each other). A Position is invalidated only when the
// element it refers to is removed; inserting or removing elsewhere
// never moves it. The end Position is permanently valid.
type Position[T any] struct {
	e *entry[T]
}

// Next returns the Position after u. Calling it on the end Position
// wraps around to the beginning.
// Time: O(1); Space: O(1)
func (u Position[T]) Next() Position[T] {
	return Position[T]{u.e.nx}
}

// Prev returns the Position before u. Calling it on the beginning wraps
// around to the end Position.
// Time: O(1); Space: O(1)
func (u Position[T]) Prev() Position[T] {
	return Position[T]{u.e.pv}
}

// Value of the element u refers to, by copy. The value at the end
// Position is the zero value of T and carries no meaning.
// Time: O(1); Space: O(1)
func (u Position[T]) Value() T {
	return u.e.v
}
