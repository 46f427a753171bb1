package path

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMalformedArgument = errors.New("malformed argument")
	ErrArity             = errors.New("wrong argument count")
	ErrDegenerate        = errors.New("degenerate geometry")
)

// Error reports a problem with one command of a path.
// Index is the position of the command in the sequence.
type Error struct {
	Index int
	Token string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("path: command %d: %v: %q", e.Index, e.Err, e.Token)
}

func (e *Error) Unwrap() error { return e.Err }
