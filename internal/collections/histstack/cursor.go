package histstack

import "iter"

// bounds reports a half-open index range [lo, hi) of a region.
type bounds func() (lo, hi int)

// cursor walks a region of a Log's storage one index at a time. The region
// bounds are re-read on every step, so a cursor never reads outside the
// current region even if the boundary has moved since it was created.
type cursor[E any] struct {
	log     *Log[E]
	bounds  bounds
	reverse bool
	pos     int
	started bool
}

func newCursor[E any](l *Log[E], b bounds, reverse bool) *cursor[E] {
	return &cursor[E]{log: l, bounds: b, reverse: reverse}
}

// next advances the cursor and returns the element under it.
func (c *cursor[E]) next() (E, bool) {
	lo, hi := c.bounds()
	switch {
	case !c.started && c.reverse:
		c.pos = hi - 1
	case !c.started:
		c.pos = lo
	case c.reverse:
		c.pos--
	default:
		c.pos++
	}
	c.started = true

	if c.pos < lo || c.pos >= hi {
		var zero E
		return zero, false
	}
	return c.log.data[c.pos], true
}

// seq returns a restartable sequence over a region; each range over it starts
// a fresh cursor.
func (l *Log[E]) seq(b bounds, reverse bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		c := newCursor(l, b, reverse)
		for {
			e, ok := c.next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}
