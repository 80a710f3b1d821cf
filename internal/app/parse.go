package app

import (
	"fmt"
	"strconv"
	"strings"
)

// command is one parsed command line.
type command struct {
	// name is the command letter; 0 means "go to line".
	name byte
	// start and end are the resolved 1-based addresses, inclusive.
	start, end int
	// addressed is true when the line carried an explicit address.
	addressed bool
	// arg is everything after the command letter.
	arg string
}

// modifies reports whether the command changes the buffer. Only these are
// recorded in the journal.
func (c command) modifies() bool {
	switch c.name {
	case 'a', 'i', 'd', 's', 'r':
		return true
	}
	return false
}

// parseCommand parses an ed-style line against a buffer whose current line
// is cur and whose last line is last.
//
//	[addr[,addr]]cmd[arg]
//
// An address is a line number, "." for the current line or "$" for the
// last line.
func parseCommand(line string, cur, last int) (command, error) {
	var c command
	rest := line

	start, rest, ok, err := parseAddress(rest, cur, last)
	if err != nil {
		return c, err
	}
	if ok {
		c.addressed = true
		c.start, c.end = start, start
		if strings.HasPrefix(rest, ",") {
			var end int
			end, rest, ok, err = parseAddress(rest[1:], cur, last)
			if err != nil {
				return c, err
			}
			if !ok {
				return c, fmt.Errorf("missing address after ',': %w", ErrInvalidAddress)
			}
			if end < start {
				return c, fmt.Errorf("%d,%d: %w", start, end, ErrInvalidAddress)
			}
			c.end = end
		}
	} else {
		c.start, c.end = cur, cur
	}

	if rest == "" {
		if !c.addressed {
			return c, ErrUnknownCommand
		}
		return c, nil
	}

	c.name, c.arg = rest[0], rest[1:]
	switch c.name {
	case 'r':
		c.arg = strings.TrimSpace(c.arg)
	case 's':
	case 'a', 'i', 'd', 'p', 'u', 'U', 'E', 'b', 'f', 'j', 'R', 'q', '=':
		if c.arg != "" {
			return c, fmt.Errorf("%q: %w", line, ErrUnknownCommand)
		}
	default:
		return c, fmt.Errorf("%q: %w", string(c.name), ErrUnknownCommand)
	}
	return c, nil
}

// parseAddress reads one address from the front of s.
func parseAddress(s string, cur, last int) (int, string, bool, error) {
	if s == "" {
		return 0, s, false, nil
	}
	switch s[0] {
	case '.':
		return cur, s[1:], true, nil
	case '$':
		return last, s[1:], true, nil
	}

	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, s, false, nil
	}
	v, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0, s, false, fmt.Errorf("%s: %w", s[:n], ErrInvalidAddress)
	}
	return v, s[n:], true, nil
}

// substitution is a parsed s command argument.
type substitution struct {
	old, new string
	global   bool
}

// parseSubstitution parses "/old/new/[g]" where "/" may be any delimiter.
func parseSubstitution(arg string) (substitution, error) {
	if len(arg) < 2 {
		return substitution{}, ErrBadSubstitution
	}
	parts := strings.Split(arg[1:], arg[:1])
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return substitution{}, ErrBadSubstitution
	}

	sub := substitution{old: parts[0], new: parts[1]}
	if len(parts) == 3 {
		switch parts[2] {
		case "":
		case "g":
			sub.global = true
		default:
			return substitution{}, fmt.Errorf("flag %q: %w", parts[2], ErrBadSubstitution)
		}
	}
	return sub, nil
}

// apply performs the substitution on text.
func (s substitution) apply(text string) (string, error) {
	if !strings.Contains(text, s.old) {
		return "", fmt.Errorf("%q: %w", s.old, ErrNoMatch)
	}
	if s.global {
		return strings.ReplaceAll(text, s.old, s.new), nil
	}
	return strings.Replace(text, s.old, s.new, 1), nil
}
