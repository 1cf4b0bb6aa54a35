package TreeSet

// A node in the TreeSet's balanced tree.
// The zero value is meaningless.
type node[T any] struct {
	v    T
	l, r nodePtr[T]
	pos  *entry[T] //non-owning cursor to the entry mirroring this node in the ring
	h    int8
}

// Pointer to a node.
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in TreeSet. That node has both node.l,
// node.r = itself, and h=0. v is the zero value of T.
type nodePtr[T any] *node[T]

// relax recomputes the height of n from its children. The sentinel keeps
// h=0, so child heights read without branching.
// Time: O(1); Space: O(1)
func relax[T any](n nodePtr[T]) {
	if n.l.h > n.r.h {
		n.h = n.l.h + 1
	} else {
		n.h = n.r.h + 1
	}
}

// diff is the balance factor of n: height(right)-height(left).
// Time: O(1); Space: O(1)
func diff[T any](n nodePtr[T]) int8 {
	return n.r.h - n.l.h
}

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference
// in order to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n *nodePtr[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	relax(r)
	relax(rc)
	*n = rc
}

// rotateRight performs a right rotation on nodePtr n. n is passed by reference
// in order to modify its content.
// Time: O(1); Space: O(1)
func rotateRight[T any](n *nodePtr[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	relax(r)
	relax(lc)
	*n = lc
}

// balance restores the height invariant at *curPtr after a single
// insertion or removal below it. A balance factor of 2 with a
// right-leaning right child is fixed by one left rotation; if the right
// child leans left it is right-rotated first. -2 is the mirror image.
// Factors -1, 0 and 1 need no rotation. curPtr is passed by reference.
// Time: O(1); Space: O(1)
func balance[T any](curPtr *nodePtr[T]) {
	cur := *curPtr
	relax(cur)
	if d := diff(cur); d == 2 {
		if diff(cur.r) < 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(curPtr)
	} else if d == -2 {
		if diff(cur.l) > 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(curPtr)
	}
}
