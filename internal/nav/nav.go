// Package nav keeps a back/forward jump list of visited line locations.
//
// The jump list is a history stack of locations: the top of the stack is the
// current location, going back pops it into history and going forward
// unpops it. The policy decides what a new visit does to forward entries.
package nav

import (
	"fmt"

	"github.com/dshills/edj/internal/collections/histstack"
)

// Location identifies a line in a file.
type Location struct {
	Path string
	Line int
}

// String formats the location as path:line.
func (l Location) String() string {
	if l.Path == "" {
		return fmt.Sprintf("%d", l.Line)
	}
	return fmt.Sprintf("%s:%d", l.Path, l.Line)
}

// Policy selects what a visit does to forward entries.
type Policy string

const (
	// PolicyEdit drops forward entries on a visit, like a browser.
	PolicyEdit Policy = "edit"
	// PolicyLog keeps forward entries; going forward after a visit returns
	// to where Back was pressed.
	PolicyLog Policy = "log"
)

// ParsePolicy converts a config or flag value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyEdit, PolicyLog:
		return p, nil
	case "":
		return PolicyEdit, nil
	default:
		return "", fmt.Errorf("unknown jump policy %q (want edit or log)", s)
	}
}

// DefaultMaxJumps is used when a non-positive limit is given.
const DefaultMaxJumps = 100

// JumpList records visited locations. It is not safe for concurrent use.
type JumpList struct {
	policy Policy
	max    int
	jumps  histstack.Stack[Location]
}

// NewJumpList creates an empty jump list.
func NewJumpList(policy Policy, maxJumps int) *JumpList {
	if maxJumps <= 0 {
		maxJumps = DefaultMaxJumps
	}
	j := &JumpList{policy: policy, max: maxJumps}
	j.jumps = j.build(nil)
	return j
}

func (j *JumpList) build(locs []Location) histstack.Stack[Location] {
	if j.policy == PolicyLog {
		return histstack.NewLogFromSlice(locs)
	}
	return histstack.NewEditFromSlice(locs)
}

// Policy returns the jump list's policy.
func (j *JumpList) Policy() Policy {
	return j.policy
}

// Visit records loc as the current location. Visiting the current location
// again is a no-op. The list holds at most max locations counting both
// directions; the oldest backward ones go first, then the farthest forward.
func (j *JumpList) Visit(loc Location) {
	if cur, ok := j.jumps.Peek(); ok && cur == loc {
		return
	}
	j.jumps.Push(loc)
	j.jumps = histstack.DropOldest(j.jumps, j.jumps.Len()-j.max, j.build)
	j.jumps = histstack.TrimHistory(j.jumps, j.max-j.jumps.Len(), j.build)
}

// Current returns the current location.
func (j *JumpList) Current() (Location, bool) {
	return j.jumps.Peek()
}

// Back moves to the previous location and returns it. The first location
// visited cannot be left by going back.
func (j *JumpList) Back() (Location, bool) {
	if j.jumps.Len() <= 1 {
		return Location{}, false
	}
	j.jumps.Pop()
	return j.jumps.Peek()
}

// Forward moves to the location Back last left.
func (j *JumpList) Forward() (Location, bool) {
	return j.jumps.Unpop()
}

// CanGoBack returns true if Back would move.
func (j *JumpList) CanGoBack() bool {
	return j.jumps.Len() > 1
}

// CanGoForward returns true if Forward would move.
func (j *JumpList) CanGoForward() bool {
	return !j.jumps.IsHistoryEmpty()
}

// Backlog returns the visited locations, most recent first, starting with
// the current one.
func (j *JumpList) Backlog() []Location {
	return j.jumps.Values()
}

// Ahead returns the locations Forward would visit, in order.
func (j *JumpList) Ahead() []Location {
	return j.jumps.HistoryValues()
}

// Forget drops the location Forward would move to next.
func (j *JumpList) Forget() (Location, bool) {
	return j.jumps.PopHistory()
}

// Clear removes every location.
func (j *JumpList) Clear() {
	j.jumps.Clear()
}
