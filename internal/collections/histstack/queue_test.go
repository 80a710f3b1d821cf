package histstack

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDelegatesToStack(t *testing.T) {
	forEachImpl(t, func(t *testing.T, s Stack[int]) {
		q := NewQueue(s)

		assert.True(t, q.Add(1))
		q.AddFirst(2)
		q.AddLast(3)
		assert.True(t, q.Offer(4))
		assert.True(t, q.OfferFirst(5))
		assert.True(t, q.OfferLast(6))
		assert.True(t, q.AddAll(slices.Values([]int{7, 8})))
		assert.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1}, q.Values())

		head, _ := q.PeekFirst()
		tail, _ := q.PeekLast()
		assert.Equal(t, 8, head)
		assert.Equal(t, 8, tail, "both ends are the top")

		v, ok := q.Poll()
		require.True(t, ok)
		assert.Equal(t, 8, v)
		v, _ = q.PollFirst()
		assert.Equal(t, 7, v)
		v, _ = q.PollLast()
		assert.Equal(t, 6, v)
		assert.Equal(t, 3, q.HistoryLen(), "polls are recorded in history")
	})
}

func TestQueueElementAndRemove(t *testing.T) {
	forEachImpl(t, func(t *testing.T, s Stack[int]) {
		q := NewQueue(s)

		_, err := q.Element()
		assert.ErrorIs(t, err, ErrEmpty)
		_, err = q.Remove()
		assert.ErrorIs(t, err, ErrEmpty)

		q.Add(1)
		q.Add(2)

		for _, get := range []func() (int, error){q.Element, q.First, q.Last} {
			v, err := get()
			require.NoError(t, err)
			assert.Equal(t, 2, v)
		}
		assert.Equal(t, 2, q.Len(), "accessors do not remove")

		v, err := q.RemoveFirst()
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		v, err = q.RemoveLast()
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		_, err = q.Remove()
		assert.ErrorIs(t, err, ErrEmpty)
	})
}

func TestQueueRejectsMiddleRemoval(t *testing.T) {
	forEachImpl(t, func(t *testing.T, s Stack[int]) {
		q := NewQueue(s)
		q.Add(1)
		q.Add(2)

		assert.ErrorIs(t, q.RemoveValue(1), ErrUnsupported)
		assert.ErrorIs(t, q.RemoveAll(1, 2), ErrUnsupported)
		assert.ErrorIs(t, q.RetainAll(2), ErrUnsupported)
		assert.False(t, q.RemoveFirstOccurrence(1))
		assert.False(t, q.RemoveLastOccurrence(2))
		assert.Equal(t, 2, q.Len())
	})
}
