// Package history provides undo/redo functionality for the line editor.
//
// The history system uses the Command pattern to encapsulate edit operations,
// enabling them to be executed, undone, and redone. Key concepts:
//
// # Operations
//
// An Operation represents a single atomic line edit with before/after state:
//   - The first line affected
//   - The lines removed and the lines inserted
//   - The current line before and after
//
// # Commands
//
// Commands implement the Command interface with Execute and Undo methods.
// Built-in commands include:
//   - AddLinesCommand: Insert lines after a line
//   - DeleteLinesCommand: Delete a range of lines
//   - ReplaceLineCommand: Replace the text of one line
//   - CompoundCommand: Group multiple commands as one undo unit
//
// # History Stack
//
// The History type keeps its entries in a histstack.Edit. Undo pops an entry
// into the stack's history region and Redo unpops it, so redo is available
// until the next command is recorded:
//
//	history := NewHistory(1000) // Max 1000 undo entries
//
//	// Execute commands
//	history.Execute(cmd, buf)
//
//	// Undo/redo
//	history.Undo(buf)
//	history.Redo(buf)
//
// Undoing never records a new entry, so undo followed by redo returns the
// buffer to the state after the original command.
//
// # Command Grouping
//
// Multiple commands can be grouped as a single undo unit:
//
//	history.BeginGroup("Read file")
//	// ... multiple edits ...
//	history.EndGroup()
package history
