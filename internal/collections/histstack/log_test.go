package histstack

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPushRetainsHistory(t *testing.T) {
	s := NewLog[int]()
	pushAll(s, 1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(s.Backward()))

	got, _ := s.Pop()
	assert.Equal(t, 3, got)
	got, _ = s.Pop()
	assert.Equal(t, 2, got)

	s.Push(5)
	assert.Equal(t, []int{1, 5}, slices.Collect(s.Backward()))
	assert.Equal(t, 2, s.HistoryLen())
	assert.ElementsMatch(t, []int{2, 3}, s.HistoryValues())
}

func TestLogUnpopAfterPush(t *testing.T) {
	s := NewLog[int]()
	pushAll(s, 1, 2, 3)
	s.Pop()
	before, _ := s.PeekHistory()

	s.Push(7)
	assert.Equal(t, 1, s.HistoryLen())

	got, ok := s.Unpop()
	require.True(t, ok)
	assert.Equal(t, before, got)
	assert.Equal(t, []int{3, 7, 2, 1}, s.Values())
}

func TestLogPopIsBoundaryMove(t *testing.T) {
	s := NewLog[int]()
	pushAll(s, 1, 2, 3)
	s.Pop()
	s.Pop()

	assert.Equal(t, []int{1, 2, 3}, s.data, "popped elements stay in storage")
	assert.Equal(t, 0, s.head)

	s.Unpop()
	assert.Equal(t, 1, s.head)
	assert.Len(t, s.data, 3)
}

func TestLogDiscardsShrinkStorage(t *testing.T) {
	s := NewLog[int]()
	pushAll(s, 1, 2, 3, 4)
	s.Pop()
	s.Pop()

	s.PopHistory()
	assert.Equal(t, []int{1, 2, 4}, s.data)

	s.PopNoHistory()
	assert.Equal(t, []int{1, 4}, s.data)
	assert.Equal(t, 0, s.head)

	s.ClearHistory()
	assert.Equal(t, []int{1}, s.data)

	s.Pop()
	s.ClearRetainHistory()
	assert.Equal(t, []int{1}, s.data)
	assert.Equal(t, -1, s.head)
	assert.Equal(t, 1, s.HistoryLen())
}

func TestLogRegionsIncludeLastIndex(t *testing.T) {
	s := NewLogFromSlice([]int{1, 2, 3})
	assert.Equal(t, []int{3, 2, 1}, s.Values())
	assert.True(t, Contains[int](s, 3))
	assert.True(t, ContainsAll[int](s, 1, 2, 3))

	s.Pop()
	s.Pop()
	assert.Equal(t, []int{2, 3}, s.HistoryValues())
	assert.Equal(t, []int{2, 3}, slices.Collect(s.History()))
	assert.Equal(t, []int{3, 2}, slices.Collect(s.HistoryBackward()))
}

func TestLogCursorClampsToMovedBoundary(t *testing.T) {
	s := NewLogFromSlice([]int{1, 2, 3, 4})
	var seen []int
	for v := range s.All() {
		seen = append(seen, v)
		if v == 3 {
			// Shrink the stack region under the cursor.
			s.Pop()
			s.Pop()
			s.Pop()
		}
	}
	assert.Equal(t, []int{4, 3}, seen)

	c := newCursor(s, s.historyBounds, false)
	s.ClearHistory()
	_, ok := c.next()
	assert.False(t, ok)
}

func TestNewLogFrom(t *testing.T) {
	s := NewLogFrom(slices.Values([]string{"x", "y"}))
	top, _ := s.Peek()
	assert.Equal(t, "y", top)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.IsHistoryEmpty())

	empty := NewLogFrom(slices.Values([]string(nil)))
	assert.True(t, empty.IsEmpty())
	_, ok := empty.Pop()
	assert.False(t, ok)
}

func TestNewLogWithCapacity(t *testing.T) {
	s := NewLogWithCapacity[int](8)
	assert.True(t, s.IsEmpty())
	assert.GreaterOrEqual(t, cap(s.data), 8)
}
