package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/finch/internal/errors"
	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/parser"
	"github.com/cwbudde/finch/internal/semantic"
)

// lexErrorsToCompiler, parseErrorsToCompiler, and semanticErrorsToCompiler
// adapt each pipeline stage's own positioned error type to
// errors.CompilerError, so every stage gets the same source-context
// formatting instead of each command re-implementing it.

func lexErrorsToCompiler(errs []*lexer.Error, source, file string) []*errors.CompilerError {
	out := make([]*errors.CompilerError, len(errs))
	for i, e := range errs {
		out[i] = errors.NewCompilerError(e.Pos, e.Message, source, file)
	}
	return out
}

func parseErrorsToCompiler(errs []*parser.Error, source, file string) []*errors.CompilerError {
	out := make([]*errors.CompilerError, len(errs))
	for i, e := range errs {
		out[i] = errors.NewCompilerError(e.Pos, e.Message, source, file)
	}
	return out
}

func semanticErrorsToCompiler(errs []*semantic.Error, source, file string) []*errors.CompilerError {
	out := make([]*errors.CompilerError, len(errs))
	for i, e := range errs {
		out[i] = errors.NewCompilerError(e.Pos, fmt.Sprintf("%s: %s", e.Kind, e.Message), source, file)
	}
	return out
}

func printCompilerErrors(errs []*errors.CompilerError) {
	fmt.Fprint(os.Stderr, errors.FormatErrorsWithContext(errs, 1, true))
	fmt.Fprintln(os.Stderr)
}
