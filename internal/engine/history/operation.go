package history

import (
	"fmt"
	"slices"
	"time"

	"github.com/dshills/edj/internal/engine/buffer"
)

// Operation represents a single undoable line edit.
// It captures all information needed to undo or redo the edit.
type Operation struct {
	// Edit data
	Line     int      // First line affected; new lines are inserted after Line-1
	OldLines []string // Lines that were removed (for undo)
	NewLines []string // Lines that were inserted (for redo)

	// Current line state for restore
	CurrentBefore int
	CurrentAfter  int

	// Metadata
	Timestamp time.Time
}

// NewOperation creates a new operation.
func NewOperation(line int, oldLines, newLines []string) *Operation {
	return &Operation{
		Line:      line,
		OldLines:  oldLines,
		NewLines:  newLines,
		Timestamp: time.Now(),
	}
}

// IsInsert returns true if this operation only adds lines.
func (op *Operation) IsInsert() bool {
	return len(op.OldLines) == 0 && len(op.NewLines) > 0
}

// IsDelete returns true if this operation only removes lines.
func (op *Operation) IsDelete() bool {
	return len(op.OldLines) > 0 && len(op.NewLines) == 0
}

// IsReplace returns true if this operation swaps lines for other lines.
func (op *Operation) IsReplace() bool {
	return len(op.OldLines) > 0 && len(op.NewLines) > 0
}

// IsNoop returns true if this operation makes no changes.
func (op *Operation) IsNoop() bool {
	return len(op.OldLines) == 0 && len(op.NewLines) == 0
}

// LinesDelta returns the change in line count.
func (op *Operation) LinesDelta() int {
	return len(op.NewLines) - len(op.OldLines)
}

// Apply performs the operation on buf: the old lines are removed, the new
// lines are inserted in their place, and the current line is set to
// CurrentAfter.
func (op *Operation) Apply(buf *buffer.Buffer) error {
	if len(op.OldLines) > 0 {
		if _, err := buf.DeleteLines(op.Line, op.Line+len(op.OldLines)-1); err != nil {
			return fmt.Errorf("apply at line %d: %w", op.Line, err)
		}
	}
	if len(op.NewLines) > 0 {
		if err := buf.AddLines(op.Line-1, op.NewLines); err != nil {
			return fmt.Errorf("apply at line %d: %w", op.Line, err)
		}
	}
	return buf.SetCurrent(op.CurrentAfter)
}

// Invert returns an operation that undoes this one.
func (op *Operation) Invert() *Operation {
	return &Operation{
		Line:          op.Line,
		OldLines:      op.NewLines,
		NewLines:      op.OldLines,
		CurrentBefore: op.CurrentAfter,
		CurrentAfter:  op.CurrentBefore,
		Timestamp:     time.Now(),
	}
}

// Clone creates a deep copy of the operation.
func (op *Operation) Clone() *Operation {
	return &Operation{
		Line:          op.Line,
		OldLines:      slices.Clone(op.OldLines),
		NewLines:      slices.Clone(op.NewLines),
		CurrentBefore: op.CurrentBefore,
		CurrentAfter:  op.CurrentAfter,
		Timestamp:     op.Timestamp,
	}
}

// OperationInfo provides read-only info about an undo entry.
// Used for displaying undo/redo history to users.
type OperationInfo struct {
	Description string    // Human-readable description
	Timestamp   time.Time // When the command was recorded
}
