package app

import (
	"path/filepath"

	"github.com/dshills/edj/internal/engine/buffer"
	"github.com/dshills/edj/internal/engine/history"
)

// Document is the text being edited together with its undo history.
type Document struct {
	// Path is the file the document was read from (empty for scratch buffers).
	Path string

	// Name is the display name (file name or "Untitled").
	Name string

	Buffer  *buffer.Buffer
	History *history.History

	// saved is the buffer revision that matches the file on disk.
	saved uint64
	// opened marks the undo depth right after the document was read.
	opened history.Checkpoint
}

// NewDocument creates a document holding lines read from path.
func NewDocument(path string, lines []string, undoLimit int) *Document {
	d := &Document{
		Path:    path,
		Name:    filepath.Base(path),
		Buffer:  buffer.NewBufferFromLines(lines),
		History: history.NewHistory(undoLimit),
	}
	if path == "" {
		d.Name = "Untitled"
	}
	d.saved = d.Buffer.Revision()
	d.opened = d.History.Mark()
	return d
}

// NewScratchDocument creates an empty document with no file.
func NewScratchDocument(undoLimit int) *Document {
	return NewDocument("", nil, undoLimit)
}

// IsModified returns true if the buffer changed since it was read.
func (d *Document) IsModified() bool {
	return d.Buffer.Revision() != d.saved
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// Execute runs cmd against the buffer and records it for undo.
func (d *Document) Execute(cmd history.Command) error {
	return d.History.Execute(cmd, d.Buffer)
}

// Undo reverts the most recent command.
func (d *Document) Undo() error {
	return d.History.Undo(d.Buffer)
}

// Redo reapplies the most recently undone command.
func (d *Document) Redo() error {
	return d.History.Redo(d.Buffer)
}

// Revert undoes every change made since the document was opened, as far as
// the undo limit allows, and returns the number of commands undone.
func (d *Document) Revert() (int, error) {
	return d.History.RevertTo(d.opened, d.Buffer)
}
