package oerror

import "fmt"

// Error is an error raised by the engine itself rather than by the grid it inspects.
type Error struct {
	Err string
}

// New returns an Error with a message formatted like fmt.Sprintf.
func New(format string, args ...any) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
