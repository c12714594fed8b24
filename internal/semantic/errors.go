package semantic

import (
	"fmt"

	"github.com/cwbudde/finch/internal/lexer"
)

// Kind classifies a semantic Error into the taxonomy from the
// error-handling design: which rule it enforces shapes how a host
// (CLI, embedding API) might want to group or filter diagnostics.
type Kind string

const (
	NameError Kind = "NameError"
	TypeError Kind = "TypeError"
)

// Error is a single semantic diagnostic, always tied to a source position.
type Error struct {
	Kind    Kind
	Pos     lexer.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Pos.Line, e.Pos.Column, e.Kind, e.Message)
}

func (a *Analyzer) errorf(kind Kind, pos lexer.Position, format string, args ...any) {
	a.errors = append(a.errors, &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)})
}
