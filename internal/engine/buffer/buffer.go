package buffer

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
	ErrRangeInvalid   = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer holds text as a slice of lines plus a current line number.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	current    int
	revision   uint64
	lineEnding LineEnding
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{lineEnding: LineEndingLF}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer with initial content. A trailing line
// ending does not start an extra empty line. The current line is the last.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	return NewBufferFromLines(SplitLines(s), opts...)
}

// NewBufferFromLines creates a buffer holding a copy of lines.
func NewBufferFromLines(lines []string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.lines = slices.Clone(lines)
	b.current = len(b.lines)
	return b
}

// SplitLines splits text on any line ending. A trailing line ending does not
// produce an empty final line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// Read Operations

// Text returns the full buffer content, each line terminated by the buffer's
// line ending.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.lines) == 0 {
		return ""
	}
	eol := b.lineEnding.Sequence()
	return strings.Join(b.lines, eol) + eol
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// IsEmpty returns true if the buffer holds no lines.
func (b *Buffer) IsEmpty() bool {
	return b.LineCount() == 0
}

// Current returns the current line number, or 0 for an empty buffer.
func (b *Buffer) Current() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// SetCurrent moves the current line. Line 0 is only valid for an empty buffer.
func (b *Buffer) SetCurrent(line int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkLine(line); err != nil {
		return err
	}
	b.current = line
	return nil
}

// Line returns the text of a single line.
func (b *Buffer) Line(line int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line < 1 || line > len(b.lines) {
		return "", fmt.Errorf("line %d: %w", line, ErrLineOutOfRange)
	}
	return b.lines[line-1], nil
}

// Lines returns a copy of lines start through end inclusive.
func (b *Buffer) Lines(start, end int) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkRange(start, end); err != nil {
		return nil, err
	}
	return slices.Clone(b.lines[start-1 : end]), nil
}

// Revision returns a counter that changes on every modification.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// Write Operations

// AddLines inserts lines after line after; after may be 0 to insert at the
// top. The current line becomes the last inserted line.
func (b *Buffer) AddLines(after int, lines []string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if after < 0 || after > len(b.lines) {
		return fmt.Errorf("add after line %d: %w", after, ErrLineOutOfRange)
	}
	if len(lines) == 0 {
		return nil
	}

	b.lines = slices.Insert(b.lines, after, lines...)
	b.current = after + len(lines)
	b.revision++
	return nil
}

// DeleteLines removes lines start through end inclusive and returns them.
// The current line becomes the line that followed the range, or the new last
// line if the range ran to the end.
func (b *Buffer) DeleteLines(start, end int) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkRange(start, end); err != nil {
		return nil, err
	}

	removed := slices.Clone(b.lines[start-1 : end])
	b.lines = slices.Delete(b.lines, start-1, end)
	b.current = min(start, len(b.lines))
	b.revision++
	return removed, nil
}

// ReplaceLine sets the text of a line and returns the previous text. The
// current line moves to the replaced line.
func (b *Buffer) ReplaceLine(line int, text string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if line < 1 || line > len(b.lines) {
		return "", fmt.Errorf("replace line %d: %w", line, ErrLineOutOfRange)
	}

	old := b.lines[line-1]
	b.lines[line-1] = text
	b.current = line
	b.revision++
	return old, nil
}

// Clear removes every line.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = nil
	b.current = 0
	b.revision++
}

func (b *Buffer) checkLine(line int) error {
	if line < 0 || line > len(b.lines) || (line == 0 && len(b.lines) > 0) {
		return fmt.Errorf("line %d: %w", line, ErrLineOutOfRange)
	}
	return nil
}

func (b *Buffer) checkRange(start, end int) error {
	if start > end {
		return fmt.Errorf("lines %d,%d: %w", start, end, ErrRangeInvalid)
	}
	if start < 1 || end > len(b.lines) {
		return fmt.Errorf("lines %d,%d: %w", start, end, ErrLineOutOfRange)
	}
	return nil
}
