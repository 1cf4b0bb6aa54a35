package TreeSet

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// TreeSet is a sorted set with no repeated values, backed by an AVL tree
// whose in-order traversal is mirrored by a doubly linked ring of entries.
// The tree carries the ordering logic; the ring is the iteration surface
// handed out through Position values, so walking the whole set costs O(1)
// per step and Positions stay valid across unrelated mutations.
// Equality of two values a, b is derived from the ordering alone: they are
// equal when neither is less than the other. T therefore only needs a
// strict less-than.
// Not safe for concurrent use; callers needing that must wrap every call
// in their own lock.
// This struct holds a root pointer and a corresponding nilPtr used as nil
// described in nodePtr, plus the ring sentinel.
// The worst case height of the tree is 1.44*log2(n+2)-0.328, so every
// single-element operation is O(log n).
type TreeSet[T any] struct {
	root, nilPtr nodePtr[T]
	seq          *entry[T] //ring sentinel; doubles as the end Position
	lt           func(T, T) bool
	sz           uint
}

// New1 returns an empty TreeSet ordered by lessThan, for element types
// whose order isn't the natural <. lessThan must be a strict weak
// ordering; equality is derived from it as described in TreeSet.
// TreeSet shouldn't be created directly using struct literal.
func New1[T any](lessThan func(T, T) bool) *TreeSet[T] {
	z := new(node[T])
	z.l, z.r = z, z
	u := &TreeSet[T]{root: z, nilPtr: z, lt: lessThan}
	u.seq = new(entry[T])
	u.seq.nx, u.seq.pv = u.seq, u.seq
	z.pos = u.seq
	return u
}

// New returns an empty TreeSet ordered by <.
func New[T constraints.Ordered]() *TreeSet[T] {
	return New1[T](func(a, b T) bool { return a < b })
}

// Of returns a TreeSet holding elems, inserted in the given order.
// Duplicates under the ordering are dropped, keeping the first occurrence.
func Of[T constraints.Ordered](elems ...T) *TreeSet[T] {
	u := New[T]()
	for _, e := range elems {
		u.Put(e)
	}
	return u
}

// NewRange returns a TreeSet holding the elements of [first, last),
// inserted in sequence order. The two Positions must belong to the same
// set, with last reachable from first.
func NewRange[T constraints.Ordered](first, last Position[T]) *TreeSet[T] {
	u := New[T]()
	for ; first != last; first = first.Next() {
		u.Put(first.Value())
	}
	return u
}

// InvalidSliceError reports the first adjacent pair of Build's input that
// breaks the strictly ascending precondition.
type InvalidSliceError[T any] struct {
	Prev, Cur T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice not strictly ascending: %v is not less than %v", e.Prev, e.Cur)
}

// Build returns a TreeSet holding sli, constructed recursively. This is
// faster than repeatedly calling Put. The given slice must be sorted in
// ascending order and mustn't contain duplicate elements; Build checks
// this and panics with InvalidSliceError if the condition is broken.
// Time: O(n)
func Build[T constraints.Ordered](sli []T) *TreeSet[T] {
	u := New[T]()
	for i := 1; i < len(sli); i++ {
		if !u.lt(sli[i-1], sli[i]) {
			panic(InvalidSliceError[T]{sli[i-1], sli[i]})
		}
	}
	var build func([]T) nodePtr[T]
	build = func(s []T) nodePtr[T] {
		if len(s) == 0 {
			return u.nilPtr
		}
		mid := len(s) >> 1
		n := &node[T]{v: s[mid], l: build(s[:mid])}
		e := &entry[T]{v: s[mid]}
		e.spliceBefore(u.seq) //entries are appended in in-order, so the ring comes out ascending
		n.pos = e
		n.r = build(s[mid+1:])
		relax(n)
		return n
	}
	u.root = build(sli)
	u.sz = uint(len(sli))
	return u
}

// Size of the set.
// Time: O(1); Space: O(1)
func (u *TreeSet[T]) Size() uint {
	return u.sz
}

// Empty reports whether the set holds no elements.
// Time: O(1); Space: O(1)
func (u *TreeSet[T]) Empty() bool {
	return u.sz == 0
}

// search the subtree rooting at cur for the ring entry mirroring a value
// equal to v, recursively. Returns the ring sentinel when v is absent.
func (u *TreeSet[T]) search(cur nodePtr[T], v T) *entry[T] {
	if cur == u.nilPtr {
		return u.seq
	}
	if u.lt(v, cur.v) {
		return u.search(cur.l, v)
	} else if u.lt(cur.v, v) {
		return u.search(cur.r, v)
	}
	return cur.pos
}

// lowerBound finds the entry of the first element not less than v in the
// subtree rooting at cur, recursively. While descending left, the current
// node is the best candidate so far; it is the answer when its left
// subtree has none. Returns the ring sentinel when every element is less
// than v.
func (u *TreeSet[T]) lowerBound(cur nodePtr[T], v T) *entry[T] {
	if cur == u.nilPtr {
		return u.seq
	}
	if u.lt(v, cur.v) {
		if left := u.lowerBound(cur.l, v); left != u.seq {
			return left
		}
		return cur.pos
	} else if u.lt(cur.v, v) {
		return u.lowerBound(cur.r, v)
	}
	return cur.pos
}

// Find returns the Position of the element equal to v, or End() if there
// is none. Recursive.
// Time: O(log n)
func (u *TreeSet[T]) Find(v T) Position[T] {
	return Position[T]{u.search(u.root, v)}
}

// LowerBound returns the Position of the first element not less than v,
// or End() if there is none. Recursive.
// Time: O(log n)
func (u *TreeSet[T]) LowerBound(v T) Position[T] {
	return Position[T]{u.lowerBound(u.root, v)}
}

// Begin returns the Position of the smallest element; Begin()==End() on
// an empty set.
// Time: O(1); Space: O(1)
func (u *TreeSet[T]) Begin() Position[T] {
	return Position[T]{u.seq.nx}
}

// End returns the one-past-the-last sentinel Position. It never moves
// and is never invalidated.
// Time: O(1); Space: O(1)
func (u *TreeSet[T]) End() Position[T] {
	return Position[T]{u.seq}
}

// Has [Sets.Set.Has].
// Time: O(log n); Space: O(1)
func (u *TreeSet[T]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if u.lt(v, cur.v) {
			cur = cur.l
		} else if u.lt(cur.v, v) {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// put v into the subtree rooting at cur recursively, rebalancing each
// node on the return path. cur is passed by reference. pos is the
// already spliced ring entry mirroring v.
func (u *TreeSet[T]) put(curPtr *nodePtr[T], v T, pos *entry[T]) {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &node[T]{v: v, l: u.nilPtr, r: u.nilPtr, pos: pos, h: 1}
	} else {
		if u.lt(v, cur.v) {
			u.put(&cur.l, v, pos)
		} else {
			u.put(&cur.r, v, pos)
		}
		balance(curPtr)
	}
}

// Put [Sets.Set.Put]. Recursive.
// Putting a value equal to an existing element is a no-op returning
// false. The ring entry is spliced before the lower bound of v while the
// tree is still untouched, then the tree node is linked to it.
// Time: O(log n)
func (u *TreeSet[T]) Put(v T) bool {
	if u.search(u.root, v) != u.seq {
		return false
	}
	e := &entry[T]{v: v}
	e.spliceBefore(u.lowerBound(u.root, v))
	u.put(&u.root, v, e)
	u.sz++
	return true
}

// findMin of the subtree rooting at cur. cur mustn't be nilPtr.
func (u *TreeSet[T]) findMin(cur nodePtr[T]) nodePtr[T] {
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur
}

// removeMin detaches the minimum node of the subtree rooting at cur,
// rebalancing the return path, recursively. cur is passed by reference
// and mustn't be nilPtr.
func (u *TreeSet[T]) removeMin(curPtr *nodePtr[T]) {
	if cur := *curPtr; cur.l == u.nilPtr {
		*curPtr = cur.r
	} else {
		u.removeMin(&cur.l)
		balance(curPtr)
	}
}

// del v from the subtree rooting at cur recursively, rebalancing each
// node on the return path. The matched node's ring entry is unlinked
// through its stored cursor. A node with no right subtree is replaced by
// its left child; otherwise the minimum of its right subtree takes its
// place, adopting the node's left subtree and the remainder of the right
// subtree. cur is passed by reference.
func (u *TreeSet[T]) del(curPtr *nodePtr[T], v T) {
	cur := *curPtr
	if cur == u.nilPtr {
		return
	}
	if u.lt(v, cur.v) {
		u.del(&cur.l, v)
	} else if u.lt(cur.v, v) {
		u.del(&cur.r, v)
	} else {
		cur.pos.unlink()
		if cur.r == u.nilPtr {
			*curPtr = cur.l
			return
		}
		mn := u.findMin(cur.r)
		u.removeMin(&cur.r) //works even when mn is cur.r itself: cur.r becomes mn's right child
		mn.l, mn.r = cur.l, cur.r
		*curPtr = mn
	}
	balance(curPtr)
}

// Remove [Sets.Set.Remove]. Recursive.
// Removing a value with no equal element is a no-op returning false.
// Positions other than the removed element's stay valid.
// Time: O(log n)
func (u *TreeSet[T]) Remove(v T) bool {
	if u.search(u.root, v) == u.seq {
		return false
	}
	u.del(&u.root, v)
	u.sz--
	return true
}

// Minimum [Sets.SortedSet.Minimum].
// Time: O(1); Space: O(1)
func (u *TreeSet[T]) Minimum() (T, bool) {
	return u.seq.nx.v, u.sz > 0
}

// Maximum [Sets.SortedSet.Maximum].
// Time: O(1); Space: O(1)
func (u *TreeSet[T]) Maximum() (T, bool) {
	return u.seq.pv.v, u.sz > 0
}

// Take [Sets.Set.Take]. Returns the minimum, as it is the cheapest to
// reach; the zero value if the set is empty.
// Time: O(1); Space: O(1)
func (u *TreeSet[T]) Take() T {
	return u.seq.nx.v
}

// Range [Sets.Set.Range]. Elements are visited in ascending order.
// Time: O(n)
func (u *TreeSet[T]) Range(f func(T) bool) {
	for e := u.seq.nx; e != u.seq; e = e.nx {
		if !f(e.v) {
			return
		}
	}
}

// InOrder [Sets.SortedSet.InOrder].
// Time: f(): O(1) at each call to the returned function. Space: O(1)
func (u *TreeSet[T]) InOrder() func() (T, bool) {
	cur := u.seq.nx
	return func() (r T, has bool) {
		if cur != u.seq {
			r, has = cur.v, true
			cur = cur.nx
		}
		return
	}
}

// Clear removes every element. Safe on an empty set. Previously handed
// out Positions other than End() are invalidated; nodes and entries are
// reclaimed by the garbage collector, so no cross-references survive.
// Time: O(1); Space: O(1)
func (u *TreeSet[T]) Clear() {
	u.root = u.nilPtr
	u.seq.nx, u.seq.pv = u.seq, u.seq
	u.sz = 0
}

// Clone returns a deep, independent copy of u, built by re-inserting u's
// elements in ascending order into fresh structures. Mutating either set
// afterwards never affects the other.
// Time: O(n log n)
func (u *TreeSet[T]) Clone() *TreeSet[T] {
	c := New1[T](u.lt)
	for e := u.seq.nx; e != u.seq; e = e.nx {
		c.Put(e.v)
	}
	return c
}

// Assign replaces u's contents with a deep copy of o's, clearing u
// first so no residual state leaks into the copy. Assigning a set to
// itself is a no-op.
// Time: O(n log n)
func (u *TreeSet[T]) Assign(o *TreeSet[T]) {
	if u == o {
		return
	}
	u.Clear()
	for e := o.seq.nx; e != o.seq; e = e.nx {
		u.Put(e.v)
	}
}

// Corrupt [Sets.SortedSet.Corrupt]. Recursive.
// Checks that every node's height is one more than its taller child's
// with the two children differing by at most one, that the in-order
// traversal of the tree visits exactly the ring's entries through the
// nodes' cursors, and that the ring is strictly ascending, consistently
// back-linked, and sz entries long.
// Time: O(n)
func (u *TreeSet[T]) Corrupt() bool {
	ok, e := true, u.seq.nx
	var walk func(nodePtr[T])
	walk = func(cur nodePtr[T]) {
		if cur == u.nilPtr || !ok {
			return
		}
		walk(cur.l)
		if d := diff(cur); d < -1 || d > 1 {
			ok = false
			return
		}
		if want := max(cur.l.h, cur.r.h) + 1; cur.h != want {
			ok = false
			return
		}
		if cur.pos != e {
			ok = false
			return
		}
		e = e.nx
		walk(cur.r)
	}
	walk(u.root)
	if !ok || e != u.seq {
		return true
	}
	n := uint(0)
	for x := u.seq.nx; x != u.seq; x = x.nx {
		if x.nx != u.seq && !u.lt(x.v, x.nx.v) {
			return true
		}
		if x.nx.pv != x {
			return true
		}
		n++
	}
	return n != u.sz
}
