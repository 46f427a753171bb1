package path

import (
	"strconv"
	"strings"
)

// Kind identifies a drawing command.
type Kind uint8

const (
	MoveTo Kind = iota
	LineTo
	HorizontalLineTo
	VerticalLineTo
	CubicCurveTo
	ArcTo
	ClosePath
)

var kinds = [...]struct {
	letter byte
	arity  int
	name   string
}{
	MoveTo:           {'M', 2, "MoveTo"},
	LineTo:           {'L', 2, "LineTo"},
	HorizontalLineTo: {'H', 1, "HorizontalLineTo"},
	VerticalLineTo:   {'V', 1, "VerticalLineTo"},
	CubicCurveTo:     {'C', 6, "CubicCurveTo"},
	ArcTo:            {'A', 7, "ArcTo"},
	ClosePath:        {'Z', 0, "ClosePath"},
}

// Arity is the number of arguments one command of this kind takes.
func (k Kind) Arity() int { return kinds[k].arity }

// Letter is the absolute (upper case) command letter.
func (k Kind) Letter() byte { return kinds[k].letter }

func (k Kind) String() string {
	if int(k) >= len(kinds) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// kindOf maps a command letter to its kind and addressing mode.
func kindOf(c byte) (Kind, bool, bool) {
	rel := c >= 'a' && c <= 'z'
	if rel {
		c -= 'a' - 'A'
	}
	for k, info := range kinds {
		if info.letter == c {
			return Kind(k), rel, true
		}
	}
	return 0, false, false
}

// Command is one instruction of a path. Relative is only ever set on
// commands returned by Parse; Resolve produces absolute commands.
type Command struct {
	Kind     Kind
	Relative bool
	Args     []float64
}

// Letter returns the command letter, lower case when relative.
func (c Command) Letter() byte {
	l := c.Kind.Letter()
	if c.Relative {
		l += 'a' - 'A'
	}
	return l
}

func (c Command) String() string {
	var b strings.Builder
	b.WriteByte(c.Letter())
	for _, a := range c.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
	}
	return b.String()
}

// Sequence is an ordered list of commands.
type Sequence []Command

// String serialises the sequence back into path syntax.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Count returns how many commands of each kind the sequence holds.
func (s Sequence) Count() map[Kind]int {
	out := map[Kind]int{}
	for _, c := range s {
		out[c.Kind]++
	}
	return out
}
