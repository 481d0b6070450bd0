package set

type Interface[T any] interface {
	// Adds an item to the set. Returns false if an equal item was already
	// present.
	Insert(T) bool

	// Adds every item to the set and returns how many were new.
	InsertAll(...T) int

	// Returns whether the provided item is in the set.
	Has(T) bool

	// Returns whether all of the provided items are in the set.
	Contains(...T) bool

	// Returns the number of items in the set.
	Len() int

	// Returns the number of nodes on the longest path from the root.
	Height() int

	// Iterates over items in ascending order and executes the provided
	// function against each item. Iteration stops when the function returns
	// true.
	ForEach(func(T) bool)

	// Provides a string representation of the set.
	String() string

	// Returns the set as a slice in ascending order.
	ToSlice() []T

	// Determines if every item in the provided set is in this set.
	IsSuperSet(Interface[T]) bool

	// Determines if every item in this set is in the provided set.
	IsSubSet(Interface[T]) bool

	// Determines if the two sets are equal.
	//
	// Note: Sets are equal when they hold items that compare equal pairwise.
	// Insertion order and tree shape are irrelevant.
	Equal(Interface[T]) bool

	// Returns a new set containing only the items that exist in both sets.
	Intersect(Interface[T]) Interface[T]

	// Returns a new set with items contained in this set that are not present in
	// the provided set.
	Difference(Interface[T]) Interface[T]

	// Returns a new set with all items which are in either set, but not both.
	SymmetricDifference(Interface[T]) Interface[T]
}
