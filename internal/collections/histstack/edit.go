package histstack

import (
	"iter"
	"slices"
)

// Edit is a history stack that discards its history on every Push.
//
// The stack and history regions live in separate slices and elements are
// moved between them by Pop and Unpop. This is the behavior of an edit or
// navigation history: after something is undone and a new edit is made, there
// is nothing left to redo.
type Edit[E any] struct {
	stack   []E
	history []E
}

var _ Stack[int] = (*Edit[int])(nil)

// NewEdit creates an empty Edit stack.
func NewEdit[E any]() *Edit[E] {
	return &Edit[E]{}
}

// NewEditWithCapacity creates an empty Edit stack with room for n elements in
// the stack region.
func NewEditWithCapacity[E any](n int) *Edit[E] {
	return &Edit[E]{stack: make([]E, 0, max(n, 0))}
}

// NewEditFrom creates an Edit stack seeded from seq. Elements are pushed in
// iteration order, so the last element yielded becomes the top.
func NewEditFrom[E any](seq iter.Seq[E]) *Edit[E] {
	return &Edit[E]{stack: slices.Collect(seq)}
}

// NewEditFromSlice creates an Edit stack whose stack region is a copy of s,
// bottom to top.
func NewEditFromSlice[E any](s []E) *Edit[E] {
	return &Edit[E]{stack: slices.Clone(s)}
}

// Push adds e to the top of the stack and clears the history.
func (s *Edit[E]) Push(e E) {
	s.stack = append(s.stack, e)
	s.ClearHistory()
}

// Pop moves the top of the stack to the head of the history.
func (s *Edit[E]) Pop() (E, bool) {
	e, ok := popSlice(&s.stack)
	if ok {
		s.history = append(s.history, e)
	}
	return e, ok
}

// Unpop moves the head of the history back to the top of the stack.
func (s *Edit[E]) Unpop() (E, bool) {
	e, ok := popSlice(&s.history)
	if ok {
		s.stack = append(s.stack, e)
	}
	return e, ok
}

// Peek returns the top of the stack.
func (s *Edit[E]) Peek() (E, bool) {
	return peekSlice(s.stack)
}

// PeekHistory returns the head of the history.
func (s *Edit[E]) PeekHistory() (E, bool) {
	return peekSlice(s.history)
}

// PopHistory discards and returns the head of the history.
func (s *Edit[E]) PopHistory() (E, bool) {
	return popSlice(&s.history)
}

// PopNoHistory discards and returns the top of the stack.
func (s *Edit[E]) PopNoHistory() (E, bool) {
	return popSlice(&s.stack)
}

func (s *Edit[E]) Len() int             { return len(s.stack) }
func (s *Edit[E]) HistoryLen() int      { return len(s.history) }
func (s *Edit[E]) IsEmpty() bool        { return len(s.stack) == 0 }
func (s *Edit[E]) IsHistoryEmpty() bool { return len(s.history) == 0 }

// Clear empties both regions.
func (s *Edit[E]) Clear() {
	s.ClearHistory()
	s.ClearRetainHistory()
}

// ClearHistory empties the history region.
func (s *Edit[E]) ClearHistory() {
	clear(s.history)
	s.history = s.history[:0]
}

// ClearRetainHistory empties the stack region.
func (s *Edit[E]) ClearRetainHistory() {
	clear(s.stack)
	s.stack = s.stack[:0]
}

// All yields the stack from top to bottom.
func (s *Edit[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range backward(s.stack) {
			if !yield(e) {
				return
			}
		}
	}
}

// Backward yields the stack from bottom to top.
func (s *Edit[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.stack {
			if !yield(e) {
				return
			}
		}
	}
}

// History yields the history from head to tail.
func (s *Edit[E]) History() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range backward(s.history) {
			if !yield(e) {
				return
			}
		}
	}
}

// HistoryBackward yields the history from tail to head.
func (s *Edit[E]) HistoryBackward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.history {
			if !yield(e) {
				return
			}
		}
	}
}

// Values returns the stack from top to bottom.
func (s *Edit[E]) Values() []E {
	return reversed(s.stack)
}

// HistoryValues returns the history from head to tail.
func (s *Edit[E]) HistoryValues() []E {
	return reversed(s.history)
}

// popSlice removes the last element of *s.
func popSlice[E any](s *[]E) (E, bool) {
	var zero E
	n := len(*s)
	if n == 0 {
		return zero, false
	}
	e := (*s)[n-1]
	(*s)[n-1] = zero
	*s = (*s)[:n-1]
	return e, true
}

func peekSlice[E any](s []E) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	return s[len(s)-1], true
}
