package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/edj/internal/collections/histstack"
	"github.com/dshills/edj/internal/engine/buffer"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is used when a non-positive limit is given.
const DefaultMaxEntries = 1000

// undoEntry wraps a command with metadata.
type undoEntry struct {
	command   Command
	timestamp time.Time
}

func (e *undoEntry) info() OperationInfo {
	return OperationInfo{
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
	}
}

// History manages undo/redo state for a buffer.
//
// Entries live in an edit history stack: undoing pops an entry into the
// stack's history region, redoing unpops it. Recording a new command clears
// everything that could have been redone.
type History struct {
	mu sync.Mutex

	entries histstack.Stack[*undoEntry]

	// Grouping state
	grouping  bool
	groupName string
	groupCmds []Command

	// Configuration
	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		entries:    histstack.NewEdit[*undoEntry](),
		maxEntries: maxEntries,
	}
}

// Execute runs a command and adds it to the undo stack.
func (h *History) Execute(cmd Command, buf *buffer.Buffer) error {
	if err := cmd.Execute(buf); err != nil {
		return err
	}

	h.Push(cmd)
	return nil
}

// Push adds a command to the undo stack.
// Clears the redo stack.
func (h *History) Push(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		h.groupCmds = append(h.groupCmds, cmd)
		return
	}

	h.pushLocked(cmd)
}

// pushLocked adds a command without acquiring the lock.
func (h *History) pushLocked(cmd Command) {
	h.entries.Push(&undoEntry{
		command:   cmd,
		timestamp: time.Now(),
	})
	h.trimLocked()
}

// trimLocked drops the oldest entries beyond maxEntries.
func (h *History) trimLocked() {
	h.entries = histstack.DropOldest(h.entries, h.entries.Len()-h.maxEntries, newEntryStack)
}

func newEntryStack(entries []*undoEntry) histstack.Stack[*undoEntry] {
	return histstack.NewEditFromSlice(entries)
}

// Undo undoes the last command. The entry moves to the redo region; if the
// command fails it is put back.
func (h *History) Undo(buf *buffer.Buffer) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.entries.Pop()
	if !ok {
		return ErrNothingToUndo
	}

	if err := entry.command.Undo(buf); err != nil {
		h.entries.Unpop()
		return err
	}
	return nil
}

// Redo redoes the last undone command.
func (h *History) Redo(buf *buffer.Buffer) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.entries.Unpop()
	if !ok {
		return ErrNothingToRedo
	}

	if err := entry.command.Execute(buf); err != nil {
		h.entries.Pop()
		return err
	}
	return nil
}

// DropLast discards the most recent undo entry without undoing it.
// Returns false if there was nothing to drop.
func (h *History) DropLast() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, ok := h.entries.PopNoHistory()
	return ok
}

// DiscardRedo forgets every undone command.
func (h *History) DiscardRedo() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries.ClearHistory()
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.entries.IsEmpty()
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.entries.IsHistoryEmpty()
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries.Len()
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries.HistoryLen()
}

// BeginGroup starts a command group.
// Commands pushed while grouping will be combined into a single undo unit.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		// Already grouping, ignore nested calls
		return
	}

	h.grouping = true
	h.groupName = name
	h.groupCmds = nil
}

// EndGroup finishes a command group.
// All commands since BeginGroup are combined into a CompoundCommand.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}

	h.grouping = false

	if len(h.groupCmds) == 0 {
		h.groupCmds = nil
		return
	}

	h.pushLocked(NewCompoundCommand(h.groupName, h.groupCmds...))
	h.groupCmds = nil
}

// CancelGroup cancels a command group without adding to history.
// Note: Commands already executed still affect the buffer!
func (h *History) CancelGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.grouping = false
	h.groupCmds = nil
}

// IsGrouping returns true if currently in a command group.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries.Clear()
	h.grouping = false
	h.groupCmds = nil
}

// UndoInfo returns info about available undo operations, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, 0, h.entries.Len())
	for entry := range h.entries.Backward() {
		result = append(result, entry.info())
	}
	return result
}

// RedoInfo returns info about available redo operations, next redo first.
func (h *History) RedoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, 0, h.entries.HistoryLen())
	for entry := range h.entries.History() {
		result = append(result, entry.info())
	}
	return result
}

// PeekUndo returns info about the next undo operation without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.entries.Peek()
	if !ok {
		return OperationInfo{}, false
	}
	return entry.info(), true
}

// PeekRedo returns info about the next redo operation without removing it.
func (h *History) PeekRedo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.entries.PeekHistory()
	if !ok {
		return OperationInfo{}, false
	}
	return entry.info(), true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max
	h.trimLocked()
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
