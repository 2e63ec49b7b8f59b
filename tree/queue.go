package tree

type Stack[E any] struct {
	elements []E
}

func NewStack[E any]() *Stack[E] {
	return &Stack[E]{
		elements: []E{},
	}
}

func (s *Stack[E]) Push(x E) {
	s.elements = append(s.elements, x)
}

// Pop returns the most recently pushed element. The boolean indicates success,
// which is false if the stack was empty.
func (s *Stack[E]) Pop() (E, bool) {
	if len(s.elements) == 0 {
		var zero E
		return zero, false
	}
	x := s.elements[len(s.elements)-1]
	s.elements = s.elements[:len(s.elements)-1]
	return x, true
}

// Peek is like Pop but leaves the element on the stack.
func (s *Stack[E]) Peek() (E, bool) {
	if len(s.elements) == 0 {
		var zero E
		return zero, false
	}
	return s.elements[len(s.elements)-1], true
}

func (s *Stack[E]) Len() uint64 {
	return uint64(len(s.elements))
}

// Queue is a FIFO queue built from two stacks: elements are pushed onto back
// and popped from front, refilling front from back when it runs out.
type Queue[E any] struct {
	back  *Stack[E]
	front *Stack[E]
}

func NewQueue[E any]() Queue[E] {
	return Queue[E]{
		back:  NewStack[E](),
		front: NewStack[E](),
	}
}

func (q Queue[E]) Push(x E) {
	q.back.Push(x)
}

func (q Queue[E]) emptyBack() {
	for {
		x, ok := q.back.Pop()
		if ok {
			q.front.Push(x)
		} else {
			break
		}
	}
}

func (q Queue[E]) Pop() (E, bool) {
	x, ok := q.front.Pop()
	if ok {
		return x, true
	}
	q.emptyBack()
	x, ok2 := q.front.Pop()
	return x, ok2
}

func (q Queue[E]) Len() uint64 {
	return q.back.Len() + q.front.Len()
}
