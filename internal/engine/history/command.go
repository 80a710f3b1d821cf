package history

import (
	"fmt"

	"github.com/dshills/edj/internal/engine/buffer"
)

// Command represents a composable edit action that can be executed and undone.
type Command interface {
	// Execute performs the command and returns an error if it fails.
	Execute(buf *buffer.Buffer) error

	// Undo reverses the command and returns an error if it fails.
	Undo(buf *buffer.Buffer) error

	// Description returns a human-readable description of the command.
	Description() string
}

// revert applies the inverse of op to buf.
func revert(buf *buffer.Buffer, op *Operation, name string) error {
	if op == nil {
		return fmt.Errorf("undo %s: command was not executed", name)
	}
	if err := op.Invert().Apply(buf); err != nil {
		return fmt.Errorf("undo %s: %w", name, err)
	}
	return nil
}

// AddLinesCommand inserts lines after a given line.
type AddLinesCommand struct {
	After int
	Lines []string

	// Label replaces the default description when set.
	Label string

	op *Operation
}

// NewAddLinesCommand creates a command that inserts lines after line after.
func NewAddLinesCommand(after int, lines []string) *AddLinesCommand {
	return &AddLinesCommand{After: after, Lines: lines}
}

// Execute inserts the lines.
func (c *AddLinesCommand) Execute(buf *buffer.Buffer) error {
	before := buf.Current()
	if err := buf.AddLines(c.After, c.Lines); err != nil {
		return fmt.Errorf("add %d lines: %w", len(c.Lines), err)
	}

	c.op = NewOperation(c.After+1, nil, c.Lines)
	c.op.CurrentBefore = before
	c.op.CurrentAfter = buf.Current()
	return nil
}

// Undo removes the inserted lines and restores the current line.
func (c *AddLinesCommand) Undo(buf *buffer.Buffer) error {
	return revert(buf, c.op, "add")
}

// Description returns a human-readable description.
func (c *AddLinesCommand) Description() string {
	if c.Label != "" {
		return c.Label
	}
	return fmt.Sprintf("Add %d lines", len(c.Lines))
}

// DeleteLinesCommand removes an inclusive range of lines.
type DeleteLinesCommand struct {
	Start int
	End   int

	op *Operation
}

// NewDeleteLinesCommand creates a command that deletes lines start through end.
func NewDeleteLinesCommand(start, end int) *DeleteLinesCommand {
	return &DeleteLinesCommand{Start: start, End: end}
}

// Execute deletes the lines, remembering them for undo.
func (c *DeleteLinesCommand) Execute(buf *buffer.Buffer) error {
	before := buf.Current()
	removed, err := buf.DeleteLines(c.Start, c.End)
	if err != nil {
		return fmt.Errorf("delete lines %d to %d: %w", c.Start, c.End, err)
	}

	c.op = NewOperation(c.Start, removed, nil)
	c.op.CurrentBefore = before
	c.op.CurrentAfter = buf.Current()
	return nil
}

// Undo puts the deleted lines back.
func (c *DeleteLinesCommand) Undo(buf *buffer.Buffer) error {
	return revert(buf, c.op, "delete")
}

// Description returns a human-readable description.
func (c *DeleteLinesCommand) Description() string {
	if c.Start == c.End {
		return fmt.Sprintf("Delete line %d", c.Start)
	}
	return fmt.Sprintf("Delete lines %d to %d", c.Start, c.End)
}

// ReplaceLineCommand replaces the text of a single line.
type ReplaceLineCommand struct {
	Line int
	Text string

	op *Operation
}

// NewReplaceLineCommand creates a command that sets line to text.
func NewReplaceLineCommand(line int, text string) *ReplaceLineCommand {
	return &ReplaceLineCommand{Line: line, Text: text}
}

// Execute replaces the line.
func (c *ReplaceLineCommand) Execute(buf *buffer.Buffer) error {
	before := buf.Current()
	old, err := buf.ReplaceLine(c.Line, c.Text)
	if err != nil {
		return fmt.Errorf("replace line %d: %w", c.Line, err)
	}

	c.op = NewOperation(c.Line, []string{old}, []string{c.Text})
	c.op.CurrentBefore = before
	c.op.CurrentAfter = buf.Current()
	return nil
}

// Undo restores the previous text.
func (c *ReplaceLineCommand) Undo(buf *buffer.Buffer) error {
	return revert(buf, c.op, "replace")
}

// Description returns a human-readable description.
func (c *ReplaceLineCommand) Description() string {
	return fmt.Sprintf("Replace line %d", c.Line)
}

// CompoundCommand groups multiple commands as one undo unit.
type CompoundCommand struct {
	Name     string
	Commands []Command
}

// NewCompoundCommand creates a new compound command.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		Name:     name,
		Commands: commands,
	}
}

// Execute runs all commands in order.
func (c *CompoundCommand) Execute(buf *buffer.Buffer) error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(buf); err != nil {
			// On error, try to undo what we've done
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo(buf)
			}
			return fmt.Errorf("compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Undo reverses all commands in reverse order.
func (c *CompoundCommand) Undo(buf *buffer.Buffer) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(buf); err != nil {
			return fmt.Errorf("undo compound command '%s' step %d: %w", c.Name, i, err)
		}
	}
	return nil
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}
