package histstack

import "iter"

// Queue presents a Stack through the usual queue and deque vocabulary so it
// can stand in wherever a LIFO-only queue is expected. Every operation maps
// onto Push, Pop or Peek of the wrapped stack; both ends of the "queue" are
// the top of the stack.
//
// Removal from anywhere but the top is not supported.
type Queue[E any] struct {
	Stack[E]
}

// NewQueue wraps s.
func NewQueue[E any](s Stack[E]) Queue[E] {
	return Queue[E]{Stack: s}
}

// Add pushes e and always reports true.
func (q Queue[E]) Add(e E) bool {
	q.Push(e)
	return true
}

func (q Queue[E]) AddFirst(e E) { q.Push(e) }
func (q Queue[E]) AddLast(e E)  { q.Push(e) }

// AddAll pushes every element of seq in iteration order.
func (q Queue[E]) AddAll(seq iter.Seq[E]) bool {
	PushAll(q.Stack, seq)
	return true
}

// Offer pushes e. A history stack has no capacity limit, so it always
// reports true.
func (q Queue[E]) Offer(e E) bool {
	q.Push(e)
	return true
}

func (q Queue[E]) OfferFirst(e E) bool { return q.Offer(e) }
func (q Queue[E]) OfferLast(e E) bool  { return q.Offer(e) }

// Poll pops the top, recording it in history.
func (q Queue[E]) Poll() (E, bool) {
	return q.Pop()
}

func (q Queue[E]) PollFirst() (E, bool) { return q.Poll() }
func (q Queue[E]) PollLast() (E, bool)  { return q.Poll() }

func (q Queue[E]) PeekFirst() (E, bool) { return q.Peek() }
func (q Queue[E]) PeekLast() (E, bool)  { return q.Peek() }

// Element returns the top without removing it, or ErrEmpty.
func (q Queue[E]) Element() (E, error) {
	e, ok := q.Peek()
	if !ok {
		return e, ErrEmpty
	}
	return e, nil
}

func (q Queue[E]) First() (E, error) { return q.Element() }
func (q Queue[E]) Last() (E, error)  { return q.Element() }

// Remove pops the top, or returns ErrEmpty.
func (q Queue[E]) Remove() (E, error) {
	e, ok := q.Pop()
	if !ok {
		return e, ErrEmpty
	}
	return e, nil
}

func (q Queue[E]) RemoveFirst() (E, error) { return q.Remove() }
func (q Queue[E]) RemoveLast() (E, error)  { return q.Remove() }

// RemoveValue always fails with ErrUnsupported.
func (q Queue[E]) RemoveValue(E) error { return ErrUnsupported }

// RemoveAll always fails with ErrUnsupported.
func (q Queue[E]) RemoveAll(...E) error { return ErrUnsupported }

// RetainAll always fails with ErrUnsupported.
func (q Queue[E]) RetainAll(...E) error { return ErrUnsupported }

// RemoveFirstOccurrence never removes anything and reports false.
func (q Queue[E]) RemoveFirstOccurrence(E) bool { return false }

// RemoveLastOccurrence never removes anything and reports false.
func (q Queue[E]) RemoveLastOccurrence(E) bool { return false }
