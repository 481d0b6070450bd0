package set

import (
	"github.com/rdeusser/treeset/safepool"
)

type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// tree is a binary search tree rooted in a single slot. A slot is a *node[T]
// field that is either nil or holds a node no other slot points to.
//
// Every walk is iterative so sorted input, which degrades the tree into a
// chain, never grows the call stack.
type tree[T any] struct {
	root    *node[T]
	compare func(a, b T) int
	stacks  safepool.Pool[[]*node[T]]

	// grown counts nodes created so far. It only feeds debug logging; len
	// always walks the tree.
	grown int
}

func newTree[T any](compare func(a, b T) int) *tree[T] {
	return &tree[T]{
		compare: compare,
		stacks: safepool.NewPool(func() *[]*node[T] {
			s := make([]*node[T], 0, 32)
			return &s
		}),
	}
}

// insert places value in the first empty slot reached by descending from the
// root. depth is the number of nodes on the path to value's slot, counting
// the new node when one was created.
func (t *tree[T]) insert(value T) (inserted bool, depth int) {
	slot := &t.root

	for *slot != nil {
		n := *slot
		depth++

		switch c := t.compare(value, n.value); {
		case c < 0:
			slot = &n.left
		case c > 0:
			slot = &n.right
		default:
			return false, depth
		}
	}

	*slot = &node[T]{value: value}
	t.grown++

	return true, depth + 1
}

// span is a half-open range of indexes into a sorted slice.
type span struct{ lo, hi int }

// insertSorted inserts strictly ascending items median first, so a tree built
// from an empty one has height ceil(log2(len(items)+1)).
func (t *tree[T]) insertSorted(items []T) {
	queue := []span{{0, len(items)}}

	for len(queue) > 0 {
		sp := queue[0]
		queue = queue[1:]

		if sp.lo >= sp.hi {
			continue
		}

		mid := sp.lo + (sp.hi-sp.lo)/2
		t.insert(items[mid])

		queue = append(queue, span{sp.lo, mid}, span{mid + 1, sp.hi})
	}
}

func (t *tree[T]) has(value T) bool {
	n := t.root

	for n != nil {
		switch c := t.compare(value, n.value); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}

	return false
}

func (t *tree[T]) len() int {
	if t.root == nil {
		return 0
	}

	stack := t.getStack()
	defer t.putStack(stack)

	count := 0
	*stack = append(*stack, t.root)

	for len(*stack) > 0 {
		n := (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]
		count++

		if n.left != nil {
			*stack = append(*stack, n.left)
		}
		if n.right != nil {
			*stack = append(*stack, n.right)
		}
	}

	return count
}

// height walks the tree one level at a time.
func (t *tree[T]) height() int {
	if t.root == nil {
		return 0
	}

	level := t.getStack()
	next := t.getStack()
	defer t.putStack(level)
	defer t.putStack(next)

	height := 0
	*level = append(*level, t.root)

	for len(*level) > 0 {
		height++

		for _, n := range *level {
			if n.left != nil {
				*next = append(*next, n.left)
			}
			if n.right != nil {
				*next = append(*next, n.right)
			}
		}

		*level, *next = *next, (*level)[:0]
	}

	return height
}

// ascend visits values in order until fn returns true.
func (t *tree[T]) ascend(fn func(T) bool) {
	stack := t.getStack()
	defer t.putStack(stack)

	n := t.root

	for n != nil || len(*stack) > 0 {
		for n != nil {
			*stack = append(*stack, n)
			n = n.left
		}

		n = (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]

		if fn(n.value) {
			return
		}

		n = n.right
	}
}

func (t *tree[T]) getStack() *[]*node[T] {
	return t.stacks.Get()
}

func (t *tree[T]) putStack(s *[]*node[T]) {
	// Drop node pointers so a pooled slice never pins a tree.
	*s = (*s)[:0]
	clear((*s)[:cap(*s)])
	t.stacks.Put(s)
}
