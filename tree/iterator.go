package tree

import "github.com/goose-lang/primitive"

// Iterator walks a SearchTree in ascending order without modifying it.
//
// The stack holds the path from the root down to the next node to visit, so
// the top of the stack is always the next element in order.
type Iterator[T any] struct {
	stack *Stack[*node[T]]
}

// Iter returns an iterator positioned before the smallest element. Each call
// returns an independent iterator.
//
// The tree must not be modified while the iterator is in use.
func (t *SearchTree[T]) Iter() *Iterator[T] {
	it := &Iterator[T]{stack: NewStack[*node[T]]()}
	it.stack.Push(&t.root)
	it.pushLeft()
	return it
}

// pushLeft descends from the top of the stack along left children.
func (it *Iterator[T]) pushLeft() {
	for {
		top, _ := it.stack.Peek()
		if top.left == nil {
			break
		}
		it.stack.Push(top.left)
	}
}

// Next returns the next element in ascending order. The boolean is false once
// every element has been returned, and stays false on later calls.
func (it *Iterator[T]) Next() (T, bool) {
	n, ok := it.stack.Pop()
	if !ok {
		var zero T
		return zero, false
	}
	// only the root of an empty tree is unpopulated
	primitive.Assert(n.full || it.stack.Len() == 0)
	if n.right != nil {
		it.stack.Push(n.right)
		it.pushLeft()
	}
	return n.elem, n.full
}
