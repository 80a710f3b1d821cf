// Package buffer provides a line-oriented text buffer with a current line.
//
// Lines are addressed by 1-based line numbers the way a line editor does it.
// Line 0 is a valid insertion point meaning "before the first line". The
// buffer keeps a current line that follows edits: after adding lines it sits
// on the last line added, after deleting it sits on the line that took the
// place of the deleted range.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("one\ntwo\n")
//
//	// Append after line 2
//	buf.AddLines(2, []string{"three"})
//
//	// Delete lines 1 through 2
//	removed, _ := buf.DeleteLines(1, 2) // ["one", "two"]
//
// Files are read through an fs.FS so tests can supply an in-memory tree:
//
//	lines, stats, err := buffer.ReadLines(os.DirFS("."), "notes.txt")
//
// All methods are thread-safe.
package buffer
