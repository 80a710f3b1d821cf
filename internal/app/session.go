// Package app runs an edj editing session: a document, its undo history, a
// jump list and a journal of buffer edits, driven by ed-style commands.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/dshills/edj/internal/config"
	"github.com/dshills/edj/internal/engine/buffer"
	"github.com/dshills/edj/internal/engine/history"
	"github.com/dshills/edj/internal/journal"
	"github.com/dshills/edj/internal/log"
	"github.com/dshills/edj/internal/nav"
)

// Options configures a Session.
type Options struct {
	// Config supplies settings. Defaults are used when nil.
	Config *config.Config
	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer
	// FS resolves file names for opening and reading. Required for r.
	FS fs.FS
	// Logger receives diagnostics. Defaults to log.Default().
	Logger *log.Logger
}

// Session is one editing session. It is driven by a single goroutine and is
// not safe for concurrent use.
type Session struct {
	doc     *Document
	jumps   *nav.JumpList
	journal *journal.Journal

	fsys   fs.FS
	out    io.Writer
	logger *log.Logger

	prompt    string
	undoLimit int
}

// NewSession creates a session with an empty scratch document.
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	navCfg := cfg.Navigation()
	policy, err := nav.ParsePolicy(navCfg.Policy)
	if err != nil {
		return nil, err
	}
	editorCfg := cfg.Editor()

	return &Session{
		doc:       NewScratchDocument(editorCfg.UndoLimit),
		jumps:     nav.NewJumpList(policy, navCfg.MaxJumps),
		journal:   journal.New(),
		fsys:      opts.FS,
		out:       opts.Out,
		logger:    opts.Logger.WithComponent("session"),
		prompt:    editorCfg.Prompt,
		undoLimit: editorCfg.UndoLimit,
	}, nil
}

// Document returns the document being edited.
func (s *Session) Document() *Document {
	return s.doc
}

// Jumps returns the session's jump list.
func (s *Session) Jumps() *nav.JumpList {
	return s.jumps
}

// Journal returns the record of buffer edits.
func (s *Session) Journal() *journal.Journal {
	return s.journal
}

// Open replaces the document with the contents of name and resets the
// jump list and journal. A missing file still becomes the document's path,
// with an empty buffer, and the error is returned.
func (s *Session) Open(name string) error {
	lines, stats, err := s.readFile(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	s.doc = NewDocument(name, lines, s.undoLimit)
	s.jumps.Clear()
	s.journal.Reset()
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, stats)
	s.logger.Debug("opened", "path", name, "lines", stats.Lines)
	return nil
}

// Run reads commands from r until EOF or q. Failed commands are reported on
// the output and do not stop the session. Cancelling ctx stops the session
// before the next command.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	input := func() ([]string, error) { return readInput(sc) }

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !sc.Scan() {
			return sc.Err()
		}

		line := sc.Text()
		err := s.Execute(line, input)
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil:
			s.report(line, err)
		}
	}
}

// readInput collects text lines up to a line holding only ".".
func readInput(sc *bufio.Scanner) ([]string, error) {
	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if line == "." {
			return lines, nil
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

func (s *Session) report(line string, err error) {
	fmt.Fprintf(s.out, "? %v\n", err)
	s.logger.Debug("command failed", "error", NewCommandError(line, err))
}

// Execute runs one command line. Commands that take text (a, i) call input
// for it. Buffer edits are recorded in the journal once they succeed.
func (s *Session) Execute(line string, input func() ([]string, error)) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	buf := s.doc.Buffer
	c, err := parseCommand(line, buf.Current(), buf.LineCount())
	if err != nil {
		return err
	}
	s.logger.Debug("execute", "command", line, "current", buf.Current())

	if !c.modifies() {
		return s.run(c, nil)
	}

	var text []string
	if c.name == 'a' || c.name == 'i' {
		if text, err = input(); err != nil {
			return err
		}
	}

	s.journal.SubmitWithInput(line, text)
	entry, ok := s.journal.Next()
	if !ok {
		return ErrNoPrevious
	}
	if err := s.run(c, entry.Input); err != nil {
		s.journal.Forget()
		return err
	}
	return nil
}

func (s *Session) run(c command, text []string) error {
	buf := s.doc.Buffer

	switch c.name {
	case 0:
		return s.jump(c.end)
	case 'a':
		if c.end < 0 || c.end > buf.LineCount() {
			return fmt.Errorf("%d: %w", c.end, ErrInvalidAddress)
		}
		return s.addLines(c.end, text, "")
	case 'i':
		after := 0
		if !buf.IsEmpty() {
			if err := s.checkRange(c.start, c.start); err != nil {
				return err
			}
			after = c.start - 1
		}
		return s.addLines(after, text, "")
	case 'd':
		if err := s.checkRange(c.start, c.end); err != nil {
			return err
		}
		return s.doc.Execute(history.NewDeleteLinesCommand(c.start, c.end))
	case 'p':
		return s.print(c.start, c.end)
	case '=':
		n := buf.LineCount()
		if c.addressed {
			n = c.end
		}
		fmt.Fprintln(s.out, n)
		return nil
	case 's':
		return s.substitute(c)
	case 'r':
		return s.read(c)
	case 'u':
		return s.doc.Undo()
	case 'U':
		return s.doc.Redo()
	case 'E':
		n, err := s.doc.Revert()
		s.logger.Debug("revert", "path", s.doc.Path, "undone", n)
		return err
	case 'b':
		loc, ok := s.jumps.Back()
		if !ok {
			return ErrNoJump
		}
		return s.moveTo(loc.Line)
	case 'f':
		loc, ok := s.jumps.Forward()
		if !ok {
			return ErrNoJump
		}
		return s.moveTo(loc.Line)
	case 'j':
		s.printJournal()
		return nil
	case 'R':
		return s.replay()
	case 'q':
		return ErrQuit
	default:
		return ErrUnknownCommand
	}
}

func (s *Session) checkRange(start, end int) error {
	if start < 1 || end > s.doc.Buffer.LineCount() {
		return fmt.Errorf("%d,%d: %w", start, end, ErrInvalidAddress)
	}
	return nil
}

func (s *Session) addLines(after int, lines []string, label string) error {
	if len(lines) == 0 {
		return nil
	}
	cmd := history.NewAddLinesCommand(after, lines)
	cmd.Label = label
	return s.doc.Execute(cmd)
}

func (s *Session) print(start, end int) error {
	if err := s.checkRange(start, end); err != nil {
		return err
	}
	lines, err := s.doc.Buffer.Lines(start, end)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Fprintln(s.out, l)
	}
	return s.doc.Buffer.SetCurrent(end)
}

// jump goes to line and records both ends of the move in the jump list.
func (s *Session) jump(line int) error {
	if err := s.checkRange(line, line); err != nil {
		return err
	}
	s.jumps.Visit(s.location(s.doc.Buffer.Current()))
	s.jumps.Visit(s.location(line))
	return s.moveTo(line)
}

// moveTo makes line current without touching the jump list. Lines past the
// end of the buffer, left behind by deletions, clamp to the last line.
func (s *Session) moveTo(line int) error {
	buf := s.doc.Buffer
	if buf.IsEmpty() {
		return fmt.Errorf("%d: %w", line, ErrInvalidAddress)
	}
	line = max(1, min(line, buf.LineCount()))
	if err := buf.SetCurrent(line); err != nil {
		return err
	}
	text, err := buf.Line(line)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, text)
	return nil
}

func (s *Session) location(line int) nav.Location {
	return nav.Location{Path: s.doc.Path, Line: line}
}

func (s *Session) substitute(c command) error {
	if err := s.checkRange(c.start, c.end); err != nil {
		return err
	}
	sub, err := parseSubstitution(c.arg)
	if err != nil {
		return err
	}

	lines, err := s.doc.Buffer.Lines(c.start, c.end)
	if err != nil {
		return err
	}
	var cmds []history.Command
	for i, text := range lines {
		replaced, err := sub.apply(text)
		if errors.Is(err, ErrNoMatch) {
			continue
		}
		cmds = append(cmds, history.NewReplaceLineCommand(c.start+i, replaced))
	}
	if len(cmds) == 0 {
		return fmt.Errorf("%q: %w", sub.old, ErrNoMatch)
	}
	return s.doc.History.ExecuteGrouped("Substitute", s.doc.Buffer, cmds...)
}

func (s *Session) read(c command) error {
	if c.arg == "" {
		return ErrNoFileName
	}
	if c.end < 0 || c.end > s.doc.Buffer.LineCount() {
		return fmt.Errorf("%d: %w", c.end, ErrInvalidAddress)
	}

	lines, stats, err := s.readFile(c.arg)
	if err != nil {
		return err
	}
	if err := s.addLines(c.end, lines, "Read "+c.arg); err != nil {
		return err
	}
	fmt.Fprintln(s.out, stats)
	return nil
}

func (s *Session) readFile(name string) ([]string, buffer.FileStats, error) {
	if s.fsys == nil {
		return nil, buffer.FileStats{}, fmt.Errorf("reading %s: %w", name, fs.ErrNotExist)
	}
	return buffer.ReadLines(s.fsys, name)
}

// printJournal lists executed edits, oldest first.
func (s *Session) printJournal() {
	n := 1
	for _, e := range slices.Backward(s.journal.Executed()) {
		if e.Runs > 1 {
			fmt.Fprintf(s.out, "%d\t%s\t(%d runs)\n", n, e.Command, e.Runs)
		} else {
			fmt.Fprintf(s.out, "%d\t%s\n", n, e.Command)
		}
		n++
	}
}

// replay runs the most recent journal entry again with its original input.
func (s *Session) replay() error {
	last, ok := s.journal.Replay()
	if !ok {
		return ErrNoPrevious
	}
	runs, executed := last.Runs, last.Executed
	entry, ok := s.journal.Next()
	if !ok {
		return ErrNoPrevious
	}
	// A failed replay leaves the entry as it was after its last good run.
	restore := func(err error) error {
		entry.Runs, entry.Executed = runs, executed
		return err
	}

	buf := s.doc.Buffer
	c, err := parseCommand(entry.Command, buf.Current(), buf.LineCount())
	if err != nil {
		return restore(err)
	}
	s.logger.Debug("replay", "command", entry.Command, "id", entry.ID, "runs", entry.Runs)
	if err := s.run(c, entry.Input); err != nil {
		return restore(err)
	}
	return nil
}
