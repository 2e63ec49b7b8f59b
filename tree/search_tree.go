package tree

import (
	"cmp"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// node is one position in the tree. An unpopulated node (full == false) only
// ever appears as the root of a tree that has never been inserted into, and it
// never has children.
type node[T any] struct {
	elem  T
	full  bool
	left  *node[T]
	right *node[T]
}

// SearchTree is an unbalanced binary search tree. Elements strictly less than a
// node's element are stored to its left, and elements greater than or equal to
// it (including duplicates) are stored to its right.
//
// A SearchTree is not safe for concurrent use.
type SearchTree[T any] struct {
	root    node[T]
	compare func(a, b T) int
	size    uint64
}

// NewSearchTree returns an empty tree ordered by cmp.Compare.
func NewSearchTree[T cmp.Ordered]() *SearchTree[T] {
	return NewSearchTreeFunc(cmp.Compare[T])
}

// NewSearchTreeFunc returns an empty tree ordered by compare, which returns a
// negative number when a < b, zero when a == b and a positive number when a > b.
//
// compare must be a total order. This is not checked; an inconsistent compare
// silently breaks lookups and iteration order.
func NewSearchTreeFunc[T any](compare func(a, b T) int) *SearchTree[T] {
	return &SearchTree[T]{compare: compare}
}

func (n *node[T]) search(target T, compare func(a, b T) int) bool {
	if !n.full {
		return false
	}
	c := compare(target, n.elem)
	if c == 0 {
		return true
	}
	if c < 0 {
		if n.left == nil {
			return false
		}
		return n.left.search(target, compare)
	}
	if n.right == nil {
		return false
	}
	return n.right.search(target, compare)
}

func (n *node[T]) insert(value T, compare func(a, b T) int) {
	if !n.full {
		n.elem = value
		n.full = true
		return
	}
	var child **node[T]
	if compare(value, n.elem) < 0 {
		child = &n.left
	} else {
		child = &n.right
	}
	if *child != nil {
		(*child).insert(value, compare)
		return
	}
	leaf := new(node[T])
	leaf.insert(value, compare)
	primitive.Assert(leaf.full)
	*child = leaf
}

func (n *node[T]) min() (T, bool) {
	if n.left != nil {
		return n.left.min()
	}
	return n.elem, n.full
}

func (n *node[T]) max() (T, bool) {
	if n.right != nil {
		return n.right.max()
	}
	return n.elem, n.full
}

// Search reports whether some element equal to target is in the tree.
func (t *SearchTree[T]) Search(target T) bool {
	return t.root.search(target, t.compare)
}

// Insert adds value to the tree. Duplicates are kept as separate nodes.
func (t *SearchTree[T]) Insert(value T) {
	t.root.insert(value, t.compare)
	t.size = std.SumAssumeNoOverflow(t.size, 1)
}

// Min returns the smallest element. The boolean is false if the tree is empty.
func (t *SearchTree[T]) Min() (T, bool) {
	return t.root.min()
}

// Max returns the largest element. The boolean is false if the tree is empty.
func (t *SearchTree[T]) Max() (T, bool) {
	return t.root.max()
}

// Len returns the number of elements, counting duplicates.
func (t *SearchTree[T]) Len() uint64 {
	return t.size
}

// Height returns the number of levels in the tree (0 if it is empty).
//
// The tree is walked one level at a time rather than recursively, since sorted
// insertions produce trees as deep as they are large.
func (t *SearchTree[T]) Height() uint64 {
	if !t.root.full {
		return 0
	}
	q := NewQueue[*node[T]]()
	q.Push(&t.root)
	var height = uint64(0)
	var width = uint64(1)
	for width > 0 {
		height++
		var next = uint64(0)
		for i := uint64(0); i < width; i++ {
			n, _ := q.Pop()
			if n.left != nil {
				q.Push(n.left)
				next++
			}
			if n.right != nil {
				q.Push(n.right)
				next++
			}
		}
		width = next
	}
	return height
}
