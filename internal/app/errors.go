package app

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	// ErrQuit signals that the session should end normally.
	ErrQuit = errors.New("quit requested")

	// ErrUnknownCommand indicates a command letter the editor does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidAddress indicates a line address outside the buffer.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNoPrevious indicates there is no earlier command or location to return to.
	ErrNoPrevious = errors.New("no previous command")

	// ErrNoJump indicates the jump list has no location in the requested direction.
	ErrNoJump = errors.New("no location to jump to")

	// ErrNoMatch indicates a substitution pattern was not found.
	ErrNoMatch = errors.New("no match")

	// ErrBadSubstitution indicates a malformed s command.
	ErrBadSubstitution = errors.New("malformed substitution")

	// ErrNoFileName indicates a command that needs a file name got none.
	ErrNoFileName = errors.New("no file name")
)

// CommandError reports a failed editor command.
type CommandError struct {
	Command string // Command line as typed
	Err     error  // Underlying error
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{Command: command, Err: err}
}

func (e *CommandError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%q: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
