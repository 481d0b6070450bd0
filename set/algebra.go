package set

// The operations below walk both sets in ascending order at once, so they
// assume other is ordered the same way as s. Mixing orders gives undefined
// results, the same as an inconsistent compare function.

// IsSuperSet determines if every item in the provided set is in this set.
func (s *OrderedSet[T]) IsSuperSet(other Interface[T]) bool {
	return s.isSubSet(other.ToSlice(), s.ToSlice())
}

// IsSubSet determines if every item in this set is in the provided set.
func (s *OrderedSet[T]) IsSubSet(other Interface[T]) bool {
	return s.isSubSet(s.ToSlice(), other.ToSlice())
}

// Equal determines if the two sets hold the same items.
func (s *OrderedSet[T]) Equal(other Interface[T]) bool {
	a, b := s.ToSlice(), other.ToSlice()
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if s.tree.compare(a[i], b[i]) != 0 {
			return false
		}
	}

	return true
}

// Intersect returns a new set containing only the items that exist in both
// sets. Items are taken from this set.
func (s *OrderedSet[T]) Intersect(other Interface[T]) Interface[T] {
	a, b := s.ToSlice(), other.ToSlice()
	items := make([]T, 0)

	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch c := s.tree.compare(a[i], b[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			items = append(items, a[i])
			i++
			j++
		}
	}

	return s.derive(items)
}

// Difference returns a new set with items contained in this set that are not
// present in the provided set.
func (s *OrderedSet[T]) Difference(other Interface[T]) Interface[T] {
	a, b := s.ToSlice(), other.ToSlice()
	items := make([]T, 0)

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := s.tree.compare(a[i], b[j]); {
		case c < 0:
			items = append(items, a[i])
			i++
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}

	items = append(items, a[i:]...)

	return s.derive(items)
}

// SymmetricDifference returns a new set with all items which are in either set,
// but not both.
func (s *OrderedSet[T]) SymmetricDifference(other Interface[T]) Interface[T] {
	a, b := s.ToSlice(), other.ToSlice()
	items := make([]T, 0)

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := s.tree.compare(a[i], b[j]); {
		case c < 0:
			items = append(items, a[i])
			i++
		case c > 0:
			items = append(items, b[j])
			j++
		default:
			i++
			j++
		}
	}

	items = append(items, a[i:]...)
	items = append(items, b[j:]...)

	return s.derive(items)
}

// isSubSet reports whether every item of sub is in super. Both must be
// ascending.
func (s *OrderedSet[T]) isSubSet(sub, super []T) bool {
	if len(sub) > len(super) {
		return false
	}

	j := 0
	for _, item := range sub {
		for j < len(super) && s.tree.compare(super[j], item) < 0 {
			j++
		}

		if j == len(super) || s.tree.compare(super[j], item) != 0 {
			return false
		}

		j++
	}

	return true
}

// derive returns a set with s's order and logger holding the ascending items.
func (s *OrderedSet[T]) derive(items []T) *OrderedSet[T] {
	result := &OrderedSet[T]{
		tree:   newTree(s.tree.compare),
		logger: s.logger,
	}

	// Sorted input would otherwise build a chain.
	result.tree.insertSorted(items)

	return result
}
