// Package finch embeds Finch's pipeline (lex, parse, analyze,
// interpret) behind a small API, so hosts other than the finch CLI
// can run programs without wiring the stages themselves.
package finch

import (
	"io"

	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/errors"
	"github.com/cwbudde/finch/internal/interp"
	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/parser"
	"github.com/cwbudde/finch/internal/semantic"
)

// Options configures a Run invocation.
type Options struct {
	// Filename labels diagnostics; it does not need to name a real file.
	Filename string
	Stdout   io.Writer
	Stdin    io.Reader
	// RNGSeed seeds random_number; callers that need reproducible
	// output should pass a fixed seed instead of wall-clock time.
	RNGSeed int64
}

// CompileError wraps the lex, parse, or semantic diagnostics that kept
// a program from reaching execution.
type CompileError struct {
	Errors []*errors.CompilerError
}

func (e *CompileError) Error() string {
	return errors.FormatErrors(e.Errors, false)
}

// Tokenize lexes source into tokens.
func Tokenize(source, filename string) ([]lexer.Token, []*errors.CompilerError) {
	tokens, lexErrs := lexer.Tokenize(source)
	if len(lexErrs) == 0 {
		return tokens, nil
	}
	out := make([]*errors.CompilerError, len(lexErrs))
	for i, e := range lexErrs {
		out[i] = errors.NewCompilerError(e.Pos, e.Message, source, filename)
	}
	return tokens, out
}

// Parse lexes and parses source into a Program.
func Parse(source, filename string) (*ast.Program, []*errors.CompilerError) {
	tokens, cerrs := Tokenize(source, filename)
	if len(cerrs) > 0 {
		return nil, cerrs
	}
	program, parseErrs := parser.ParseProgram(tokens)
	if len(parseErrs) == 0 {
		return program, nil
	}
	out := make([]*errors.CompilerError, len(parseErrs))
	for i, e := range parseErrs {
		out[i] = errors.NewCompilerError(e.Pos, e.Message, source, filename)
	}
	return nil, out
}

// Analyze parses source and runs semantic analysis, returning the
// symbol table an interpreter needs to evaluate it.
func Analyze(source, filename string) (*ast.Program, *semantic.SymbolTable, []*errors.CompilerError) {
	program, cerrs := Parse(source, filename)
	if len(cerrs) > 0 {
		return nil, nil, cerrs
	}
	symtab, semErrs := semantic.Analyze(program)
	if len(semErrs) == 0 {
		return program, symtab, nil
	}
	out := make([]*errors.CompilerError, len(semErrs))
	for i, e := range semErrs {
		out[i] = errors.NewCompilerError(e.Pos, string(e.Kind)+": "+e.Message, source, filename)
	}
	return nil, nil, out
}

// Run lexes, parses, analyzes, and executes source end to end. A
// returned *CompileError means the program never started running; a
// returned *interp.RuntimeError means it failed partway through.
func Run(source string, opts Options) error {
	program, symtab, cerrs := Analyze(source, opts.Filename)
	if len(cerrs) > 0 {
		return &CompileError{Errors: cerrs}
	}

	interpreter := interp.New(symtab, opts.Stdout, opts.Stdin, opts.RNGSeed)
	return interpreter.Run(program)
}
