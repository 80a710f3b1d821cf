// Package journal records editor commands in a log-retaining history stack.
//
// Submitted commands wait on the stack region; Next pops the one to run and
// the pop leaves it in the history region as the record of what ran. New
// submissions never disturb that record, so the history region is a
// complete log of executed commands, most recent first, until it is
// explicitly trimmed.
package journal

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/edj/internal/collections/histstack"
)

// Entry is one submitted command.
type Entry struct {
	ID uuid.UUID

	// Command is the command line as typed.
	Command string

	// Input holds any text lines the command consumed.
	Input []string

	Submitted time.Time

	// Executed is when the entry was last handed out by Next; zero while
	// the entry is pending.
	Executed time.Time

	// Runs counts how many times the entry has been handed out.
	Runs int
}

// Journal is a queue of pending commands plus the log of executed ones.
// It is not safe for concurrent use.
type Journal struct {
	entries *histstack.Log[*Entry]
	now     func() time.Time
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{
		entries: histstack.NewLog[*Entry](),
		now:     time.Now,
	}
}

// Submit queues commands to run in the order given and returns their
// entries.
func (j *Journal) Submit(commands ...string) []*Entry {
	added := make([]*Entry, len(commands))
	for i, c := range commands {
		added[i] = &Entry{
			ID:        uuid.New(),
			Command:   c,
			Submitted: j.now(),
		}
	}
	// The stack hands out its top first, so push the last command first.
	for _, e := range slices.Backward(added) {
		j.entries.Push(e)
	}
	return added
}

// SubmitWithInput queues a single command that carries text input.
func (j *Journal) SubmitWithInput(command string, input []string) *Entry {
	e := j.Submit(command)[0]
	e.Input = slices.Clone(input)
	return e
}

// Next hands out the next pending entry and logs it as executed.
func (j *Journal) Next() (*Entry, bool) {
	e, ok := j.entries.Pop()
	if !ok {
		return nil, false
	}
	e.Executed = j.now()
	e.Runs++
	return e, true
}

// Cancel drops the next pending entry without logging it.
func (j *Journal) Cancel() (*Entry, bool) {
	return j.entries.PopNoHistory()
}

// Replay puts the most recently executed entry back on the queue so the
// next call to Next returns it again.
func (j *Journal) Replay() (*Entry, bool) {
	return j.entries.Unpop()
}

// Last returns the most recently executed entry.
func (j *Journal) Last() (*Entry, bool) {
	return j.entries.PeekHistory()
}

// Forget removes the most recently executed entry from the log.
func (j *Journal) Forget() (*Entry, bool) {
	return j.entries.PopHistory()
}

// Pending returns the number of entries waiting to run.
func (j *Journal) Pending() int {
	return j.entries.Len()
}

// Executed returns the log of executed entries, most recent first.
func (j *Journal) Executed() []*Entry {
	return j.entries.HistoryValues()
}

// Queue returns the pending entries in the order Next will return them.
func (j *Journal) Queue() []*Entry {
	return j.entries.Values()
}

// Len returns the number of logged entries.
func (j *Journal) Len() int {
	return j.entries.HistoryLen()
}

// DropPending discards every pending entry and keeps the log.
func (j *Journal) DropPending() {
	j.entries.ClearRetainHistory()
}

// Truncate discards the log and keeps pending entries.
func (j *Journal) Truncate() {
	j.entries.ClearHistory()
}

// Reset discards everything.
func (j *Journal) Reset() {
	j.entries.Clear()
}
