//go:build !goose

package tree

import "iter"

// All returns the elements in ascending order, for use with range:
//
//	for v := range t.All() {
//		...
//	}
func (t *SearchTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := t.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Slice returns a new slice holding the elements in ascending order.
func (t *SearchTree[T]) Slice() []T {
	s := make([]T, 0, t.size)
	for v := range t.All() {
		s = append(s, v)
	}
	return s
}
