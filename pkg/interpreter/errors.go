package interpreter

import (
	"fmt"

	"sol/interpreter-go/pkg/scanner"
)

// RuntimeError covers every dynamic failure: undefined identifiers, type
// mismatches, duplicate declarations, out-of-range subscripts, missing main,
// subprocess failures. The position is zero when no source location applies.
type RuntimeError struct {
	Pos     scanner.Position
	Message string
}

func (e *RuntimeError) Error() string {
	if e.Pos.IsKnown() {
		return fmt.Sprintf("runtime error at %s: %s", e.Pos, e.Message)
	}
	return "runtime error: " + e.Message
}

func errAt(pos scanner.Position, format string, args ...any) error {
	return &RuntimeError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// wrapAt attaches a position to a plain error from the runtime layer;
// RuntimeErrors pass through untouched so the innermost position wins.
func wrapAt(pos scanner.Position, err error) error {
	if err == nil {
		return nil
	}
	if rte, ok := err.(*RuntimeError); ok {
		return rte
	}
	return &RuntimeError{Pos: pos, Message: err.Error()}
}
