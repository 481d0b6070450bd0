package set

import (
	"cmp"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// OrderedSet is a set of values kept in an unbalanced binary search tree.
//
// Values that compare equal are the same member, so inserting one twice stores
// it once. Insertion order decides the shape of the tree and nothing ever
// rebalances it; inserting sorted values produces a chain as tall as the set
// is long.
//
// An OrderedSet does no locking. Insert needs exclusive access, while the
// read-only methods may run concurrently with each other.
type OrderedSet[T any] struct {
	tree   *tree[T]
	logger *zap.Logger
}

// Ensure OrderedSet satisfies set.Interface at compile-time.
var _ Interface[string] = (*OrderedSet[string])(nil)

type options struct {
	logger *zap.Logger
}

// Option configures an OrderedSet.
type Option func(*options)

// WithLogger sets the logger used to report inserts at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New returns an empty set ordered by cmp.Compare.
func New[T cmp.Ordered](opts ...Option) *OrderedSet[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewSet returns a set ordered by cmp.Compare holding the provided items.
func NewSet[T cmp.Ordered](items ...T) *OrderedSet[T] {
	s := New[T]()
	s.InsertAll(items...)

	return s
}

// NewFunc returns an empty set ordered by compare, which must return a
// negative number, zero or a positive number when a is less than, equal to or
// greater than b. compare must be a total order; the set does not check it.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *OrderedSet[T] {
	if compare == nil {
		panic("set: NewFunc called with nil compare function")
	}

	o := options{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return &OrderedSet[T]{
		tree:   newTree(compare),
		logger: o.logger,
	}
}

// Insert adds item to the set. It returns false, leaving the set unchanged, if
// an equal item is already present.
func (s *OrderedSet[T]) Insert(item T) bool {
	inserted, depth := s.tree.insert(item)

	if !inserted {
		if ce := s.logger.Check(zapcore.DebugLevel, "ignored duplicate value"); ce != nil {
			ce.Write(zap.Any("value", item), zap.Int("depth", depth))
		}

		return false
	}

	if ce := s.logger.Check(zapcore.DebugLevel, "inserted value"); ce != nil {
		ce.Write(zap.Any("value", item), zap.Int("depth", depth))

		// Only a chain has a node as deep as the set is large.
		if depth > 1 && depth == s.tree.grown {
			s.logger.Debug("tree is degenerate", zap.Int("height", depth))
		}
	}

	return true
}

// InsertAll adds every item to the set and returns how many were new.
func (s *OrderedSet[T]) InsertAll(items ...T) int {
	added := 0

	for _, item := range items {
		if s.Insert(item) {
			added++
		}
	}

	return added
}

// Has determines whether item is in the set.
func (s *OrderedSet[T]) Has(item T) bool {
	return s.tree.has(item)
}

// Contains determines whether all of the provided items are in the set.
func (s *OrderedSet[T]) Contains(items ...T) bool {
	for _, item := range items {
		if !s.tree.has(item) {
			return false
		}
	}

	return true
}

// Len returns the number of items in the set. It counts the nodes of the tree
// on every call.
func (s *OrderedSet[T]) Len() int {
	return s.tree.len()
}

// Height returns the number of nodes on the longest path from the root, or 0
// for an empty set.
func (s *OrderedSet[T]) Height() int {
	return s.tree.height()
}

// ForEach iterates over items in ascending order and executes the provided
// function against each item. Returning true from fn stops the iteration.
func (s *OrderedSet[T]) ForEach(fn func(T) bool) {
	s.tree.ascend(fn)
}

// String provides a string representation of the set.
func (s *OrderedSet[T]) String() string {
	items := make([]string, 0)

	s.tree.ascend(func(item T) bool {
		items = append(items, fmt.Sprint(item))
		return false
	})

	return fmt.Sprintf("OrderedSet{%s}", strings.Join(items, ", "))
}

// ToSlice returns the set as a slice in ascending order.
func (s *OrderedSet[T]) ToSlice() []T {
	items := make([]T, 0)

	s.tree.ascend(func(item T) bool {
		items = append(items, item)
		return false
	})

	return items
}
