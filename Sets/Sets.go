package Sets

// Set holds distinct elements of type E. Receivers returning a bool
// report whether the call changed anything; putting an element that
// already exists and removing one that doesn't are no-ops, not errors.
// Methods implemented recursively should be noted, otherwise functions
// are implemented iteratively.
type Set[E any] interface {
	//Put e into the set. Returning true if e wasn't already present.
	Put(e E) bool
	//Has element e. Note that even though by utilizing the return
	//values of other methods achieves the same functionality as Has,
	//it is encouraged to use Has for the purposes of checking if some
	//value exists, as Has should be optimized for this purpose in
	//implementations.
	Has(e E) bool
	//Remove e from the set. Returning true if e was present.
	Remove(e E) bool
	//Size of the set.
	Size() uint
	//Take an arbitrary element from the set. Returns the zero value
	//if the set is empty. Doesn't guarantee which element it will return.
	Take() E
	//Range over the elements and call f on each until f returns false.
	Range(f func(E) bool)
}

// SortedSet is a Set whose elements are totally ordered; every iteration
// surface (Range, InOrder) visits elements in ascending order.
type SortedSet[E any] interface {
	Set[E]
	//Minimum element of the set.
	Minimum() (E, bool)
	//Maximum element of the set.
	Maximum() (E, bool)
	//InOrder returns A closure function f acting like an iterator. f
	//gives elements in ascending order. Calling f is like calling
	//"Next()" of iterators: val, valid=f(). val is meaningful only if
	//valid is true. When valid==false, then f is exhausted. valid can't
	//turn true after it first became false. The set must not be modified
	//during the iteration of f.
	InOrder() func() (E, bool)
	//Corrupt returns whether the set has corrupt internal structures,
	//when the value at some node violates the properties of that
	//specific implementation. This is to be distinguished from whether
	//the structure is balanced or not.
	Corrupt() bool
}
