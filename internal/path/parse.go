package path

import (
	"strconv"
	"strings"
)

// Parse splits a path description into commands, in input order.
//
// The result is the raw form: letter case is kept in Command.Relative and
// arguments are exactly as written, so a single command may carry several
// argument groups. Arity is not checked here; use Resolve (or ParseAbsolute)
// to get absolute commands with one argument group each.
//
// A letter starts a command when it stands on its own, with no letter
// directly before or after it; Z/z may be followed by the next command's
// letter. 'e' or 'E' right after a digit or '.' is an exponent. A run of
// several letters is reported whole as a malformed argument.
func Parse(s string) (Sequence, error) {
	var seq Sequence
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && !commandAt(s, i) {
			continue
		}
		if start < 0 {
			if lead := strings.TrimFunc(s[:i], isSep); lead != "" {
				return nil, &Error{Index: 0, Token: lead, Err: ErrMalformedArgument}
			}
		} else {
			c, err := parseCommand(s[start:i], len(seq))
			if err != nil {
				return nil, err
			}
			seq = append(seq, c)
		}
		start = i
	}
	return seq, nil
}

// ParseAbsolute parses s and resolves it to absolute commands.
func ParseAbsolute(s string) (Sequence, error) {
	seq, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return Resolve(seq)
}

func parseCommand(tok string, index int) (Command, error) {
	kind, rel, ok := kindOf(tok[0])
	if !ok {
		return Command{}, &Error{Index: index, Token: tok[:1], Err: ErrUnknownCommand}
	}
	c := Command{Kind: kind, Relative: rel}
	for _, f := range strings.FieldsFunc(tok[1:], isSep) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Command{}, &Error{Index: index, Token: f, Err: ErrMalformedArgument}
		}
		c.Args = append(c.Args, v)
	}
	return c, nil
}

func commandAt(s string, i int) bool {
	c := s[i]
	if !isLetter(c) {
		return false
	}
	if i > 0 {
		prev := s[i-1]
		if (c == 'e' || c == 'E') && (isDigit(prev) || prev == '.') {
			return false
		}
		if isLetter(prev) && !(isClose(prev) && commandAt(s, i-1)) {
			return false
		}
	}
	if isClose(c) || i+1 == len(s) {
		return true
	}
	return !isLetter(s[i+1])
}

func isClose(c byte) bool { return c == 'z' || c == 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isSep(r rune) bool {
	switch r {
	case ' ', ',', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
