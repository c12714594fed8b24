package interp

import (
	"fmt"

	"github.com/cwbudde/finch/internal/errors"
	"github.com/cwbudde/finch/internal/lexer"
)

// ErrorKind classifies a runtime diagnostic — the error taxonomy the
// lexer/parser/semantic stages don't already cover.
type ErrorKind string

const (
	BoundsError     ErrorKind = "BoundsError"
	ArithmeticError ErrorKind = "ArithmeticError"
	LinkError       ErrorKind = "LinkError"
	FatalError      ErrorKind = "FatalError"
)

// RuntimeError aborts execution immediately with a single diagnostic
// message. The evaluator raises it as a Go panic and Run recovers it
// at the top level, which keeps the recursive tree walk itself free of
// error plumbing on every call.
type RuntimeError struct {
	Kind    ErrorKind
	Pos     lexer.Position
	Message string
	Trace   errors.StackTrace
}

func (e *RuntimeError) Error() string {
	msg := fmt.Sprintf("%d:%d: %s: %s", e.Pos.Line, e.Pos.Column, e.Kind, e.Message)
	if len(e.Trace) == 0 {
		return msg
	}
	return fmt.Sprintf("%s\nStack trace:\n%s", msg, e.Trace.String())
}

// raise panics with a *RuntimeError carrying in's current call stack, so
// Run's recover can report not just where the error occurred but which
// functions were active at the time — the trace is part of that one
// message, not a second one.
func (in *Interp) raise(kind ErrorKind, pos lexer.Position, format string, args ...any) {
	panic(&RuntimeError{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
		Trace:   append(errors.StackTrace(nil), in.callStack...),
	})
}
