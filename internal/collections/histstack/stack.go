package histstack

import (
	"errors"
	"iter"
	"slices"
)

// Errors returned by history stack operations.
var (
	// ErrUnsupported indicates an operation that would remove or filter
	// elements somewhere other than the top of the stack.
	ErrUnsupported = errors.New("operation not supported by a history stack")

	// ErrEmpty indicates a required element was requested from an empty region.
	ErrEmpty = errors.New("history stack is empty")
)

// Stack is a LIFO stack with a record of popped elements.
//
// Methods that read or remove a single element return the element and true,
// or the zero value and false when the region they address is empty.
type Stack[E any] interface {
	// Push adds e as the new top of the stack region. Whether the history
	// region survives is up to the implementation.
	Push(e E)

	// Pop removes the top of the stack region and makes it the head of the
	// history region.
	Pop() (E, bool)

	// Unpop moves the head of the history region back onto the stack region.
	Unpop() (E, bool)

	// Peek returns the top of the stack region.
	Peek() (E, bool)

	// PeekHistory returns the head of the history region.
	PeekHistory() (E, bool)

	// PopHistory removes and returns the head of the history region without
	// restoring it.
	PopHistory() (E, bool)

	// PopNoHistory removes and returns the top of the stack region without
	// recording it in history.
	PopNoHistory() (E, bool)

	Len() int
	HistoryLen() int
	IsEmpty() bool
	IsHistoryEmpty() bool

	// Clear empties both regions.
	Clear()

	// ClearHistory empties the history region only.
	ClearHistory()

	// ClearRetainHistory empties the stack region only.
	ClearRetainHistory()

	// All yields the stack region from top to bottom.
	All() iter.Seq[E]

	// Backward yields the stack region from bottom to top.
	Backward() iter.Seq[E]

	// History yields the history region from head (most recently popped) to tail.
	History() iter.Seq[E]

	// HistoryBackward yields the history region from tail to head.
	HistoryBackward() iter.Seq[E]

	// Values returns the stack region in the order of All.
	Values() []E

	// HistoryValues returns the history region in the order of History.
	HistoryValues() []E
}

// Contains reports whether e is in the stack region of s.
// The history region is not searched.
func Contains[E comparable](s Stack[E], e E) bool {
	for v := range s.All() {
		if v == e {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every element of es is in the stack region of s.
func ContainsAll[E comparable](s Stack[E], es ...E) bool {
	if len(es) == 0 {
		return true
	}
	values := s.Values()
	for _, e := range es {
		if !slices.Contains(values, e) {
			return false
		}
	}
	return true
}

// PushAll pushes every element of seq onto s in iteration order.
func PushAll[E any](s Stack[E], seq iter.Seq[E]) {
	for e := range seq {
		s.Push(e)
	}
}

// DropOldest returns a stack holding s without the n oldest elements of its
// stack region; the history region is carried over unchanged. Stacks only
// expose their top, so the result is a new stack made by build from a
// bottom-to-top slice. s is returned as is when n is not positive.
func DropOldest[E any](s Stack[E], n int, build func([]E) Stack[E]) Stack[E] {
	if n <= 0 {
		return s
	}
	kept := slices.Collect(s.Backward())
	kept = kept[min(n, len(kept)):]
	return rebuild(kept, s.HistoryValues(), build)
}

// TrimHistory returns a stack holding s with at most keep elements in its
// history region, keeping the most recently popped. The stack region is
// carried over unchanged. s is returned as is when nothing needs dropping.
func TrimHistory[E any](s Stack[E], keep int, build func([]E) Stack[E]) Stack[E] {
	keep = max(keep, 0)
	if s.HistoryLen() <= keep {
		return s
	}
	history := s.HistoryValues()[:keep]
	return rebuild(slices.Collect(s.Backward()), history, build)
}

// rebuild builds a stack from its bottom-to-top stack region and its
// head-first history region.
func rebuild[E any](stack, history []E, build func([]E) Stack[E]) Stack[E] {
	out := build(append(stack, history...))
	for range history {
		out.Pop()
	}
	return out
}

// backward yields a slice from its last element to its first.
func backward[E any](s []E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(s[i]) {
				return
			}
		}
	}
}

// reversed returns a copy of s in reverse order.
func reversed[E any](s []E) []E {
	out := slices.Clone(s)
	slices.Reverse(out)
	return out
}
