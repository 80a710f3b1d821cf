package histstack

import (
	"iter"
	"slices"
)

// Log is a history stack that keeps every popped element until it is
// explicitly discarded.
//
// Both regions share one slice. Indices 0 through head hold the stack region,
// bottom to top; everything above head is history, with the most recently
// popped element at head+1. Pop and Unpop only move head. Push inserts just
// above head and shifts the history up by one slot without changing it.
type Log[E any] struct {
	data []E
	head int
}

var _ Stack[int] = (*Log[int])(nil)

// NewLog creates an empty Log stack.
func NewLog[E any]() *Log[E] {
	return &Log[E]{head: -1}
}

// NewLogWithCapacity creates an empty Log stack with room for n elements
// across both regions.
func NewLogWithCapacity[E any](n int) *Log[E] {
	return &Log[E]{data: make([]E, 0, max(n, 0)), head: -1}
}

// NewLogFrom creates a Log stack seeded from seq. The last element yielded
// becomes the top.
func NewLogFrom[E any](seq iter.Seq[E]) *Log[E] {
	data := slices.Collect(seq)
	return &Log[E]{data: data, head: len(data) - 1}
}

// NewLogFromSlice creates a Log stack whose stack region is a copy of s,
// bottom to top.
func NewLogFromSlice[E any](s []E) *Log[E] {
	data := slices.Clone(s)
	return &Log[E]{data: data, head: len(data) - 1}
}

func (l *Log[E]) stackBounds() (int, int)   { return 0, l.head + 1 }
func (l *Log[E]) historyBounds() (int, int) { return l.head + 1, len(l.data) }

// Push inserts e as the new top. The history region keeps its contents.
func (l *Log[E]) Push(e E) {
	l.head++
	l.data = slices.Insert(l.data, l.head, e)
}

// Pop moves the boundary down by one; the old top becomes the history head.
func (l *Log[E]) Pop() (E, bool) {
	if l.IsEmpty() {
		var zero E
		return zero, false
	}
	e := l.data[l.head]
	l.head--
	return e, true
}

// Unpop moves the boundary up by one; the history head becomes the top.
func (l *Log[E]) Unpop() (E, bool) {
	if l.IsHistoryEmpty() {
		var zero E
		return zero, false
	}
	l.head++
	return l.data[l.head], true
}

// Peek returns the top of the stack.
func (l *Log[E]) Peek() (E, bool) {
	if l.IsEmpty() {
		var zero E
		return zero, false
	}
	return l.data[l.head], true
}

// PeekHistory returns the head of the history.
func (l *Log[E]) PeekHistory() (E, bool) {
	if l.IsHistoryEmpty() {
		var zero E
		return zero, false
	}
	return l.data[l.head+1], true
}

// PopHistory removes the history head from storage and returns it.
func (l *Log[E]) PopHistory() (E, bool) {
	if l.IsHistoryEmpty() {
		var zero E
		return zero, false
	}
	return l.removeAt(l.head + 1), true
}

// PopNoHistory removes the top from storage and returns it.
func (l *Log[E]) PopNoHistory() (E, bool) {
	if l.IsEmpty() {
		var zero E
		return zero, false
	}
	l.head--
	return l.removeAt(l.head + 1), true
}

func (l *Log[E]) removeAt(i int) E {
	e := l.data[i]
	l.data = slices.Delete(l.data, i, i+1)
	return e
}

func (l *Log[E]) Len() int             { return l.head + 1 }
func (l *Log[E]) HistoryLen() int      { return len(l.data) - (l.head + 1) }
func (l *Log[E]) IsEmpty() bool        { return l.head < 0 }
func (l *Log[E]) IsHistoryEmpty() bool { return l.head+1 >= len(l.data) }

// Clear empties both regions.
func (l *Log[E]) Clear() {
	clear(l.data)
	l.data = l.data[:0]
	l.head = -1
}

// ClearHistory removes everything above the boundary.
func (l *Log[E]) ClearHistory() {
	clear(l.data[l.head+1:])
	l.data = l.data[:l.head+1]
}

// ClearRetainHistory removes the stack region and leaves the history at the
// start of storage.
func (l *Log[E]) ClearRetainHistory() {
	l.data = slices.Delete(l.data, 0, l.head+1)
	l.head = -1
}

// All yields the stack from top to bottom.
func (l *Log[E]) All() iter.Seq[E] {
	return l.seq(l.stackBounds, true)
}

// Backward yields the stack from bottom to top.
func (l *Log[E]) Backward() iter.Seq[E] {
	return l.seq(l.stackBounds, false)
}

// History yields the history from head to tail.
func (l *Log[E]) History() iter.Seq[E] {
	return l.seq(l.historyBounds, false)
}

// HistoryBackward yields the history from tail to head.
func (l *Log[E]) HistoryBackward() iter.Seq[E] {
	return l.seq(l.historyBounds, true)
}

// Values returns the stack from top to bottom, including the bottom element.
func (l *Log[E]) Values() []E {
	return reversed(l.data[:l.head+1])
}

// HistoryValues returns the history from head to tail, including the last
// stored element.
func (l *Log[E]) HistoryValues() []E {
	return slices.Clone(l.data[l.head+1:])
}
