package history

import (
	"github.com/dshills/edj/internal/engine/buffer"
)

// ExecuteGrouped runs cmds in order and records them as one undo step named
// name. If any command fails the group is dropped and the error returned;
// commands that already ran stay applied.
func (h *History) ExecuteGrouped(name string, buf *buffer.Buffer, cmds ...Command) error {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return h.Execute(cmds[0], buf)
	}

	h.BeginGroup(name)
	for _, cmd := range cmds {
		if err := h.Execute(cmd, buf); err != nil {
			h.CancelGroup()
			return err
		}
	}
	h.EndGroup()
	return nil
}

// Checkpoint is an undo depth recorded by Mark.
type Checkpoint struct {
	depth int
}

// Mark records the current undo depth.
func (h *History) Mark() Checkpoint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Checkpoint{depth: h.entries.Len()}
}

// RevertTo undoes commands until no more than cp's depth remain and returns
// how many were undone. Reverted commands can be redone one at a time.
//
// Entries dropped by the undo limit cannot be reverted; RevertTo stops at
// the oldest one still held.
func (h *History) RevertTo(cp Checkpoint, buf *buffer.Buffer) (int, error) {
	n := 0
	for h.UndoCount() > cp.depth {
		if err := h.Undo(buf); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
