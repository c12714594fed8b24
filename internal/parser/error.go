package parser

import (
	"fmt"

	"github.com/cwbudde/finch/internal/lexer"
)

// Error is a syntax error tied to a source position, naming the
// unexpected token that triggered it.
type Error struct {
	Pos     lexer.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}
