package interp

import (
	"bufio"
	"io"
	"math/rand"

	"github.com/cwbudde/finch/internal/ast"
	ferrors "github.com/cwbudde/finch/internal/errors"
	"github.com/cwbudde/finch/internal/semantic"
)

// Interp is the tree-walking evaluator: a cell store, the symbol
// table produced by semantic analysis, and the I/O the `display*` and
// `input_*` built-ins talk to.
type Interp struct {
	store  *Store
	symtab *semantic.SymbolTable
	global *Frame

	out io.Writer
	in  *bufio.Reader
	rng *rand.Rand

	// callStack mirrors the live function-call frames for error
	// reporting only; it plays no part in scope resolution, which
	// Frame.parent already handles.
	callStack ferrors.StackTrace
}

// New builds an Interp over out/in and symtab. rngSeed seeds
// random_number deterministically; callers that want OS randomness
// should seed from a time- or crypto-derived source before calling.
func New(symtab *semantic.SymbolTable, out io.Writer, in io.Reader, rngSeed int64) *Interp {
	return &Interp{
		store:  NewStore(),
		symtab: symtab,
		global: NewFrame(nil),
		out:    out,
		in:     bufio.NewReader(in),
		rng:    rand.New(rand.NewSource(rngSeed)),
	}
}

// quitPanic is how a `quit` statement unwinds: straight past every
// enclosing loop and call frame to Run's own recover, with none of
// them needing to notice it in transit.
type quitPanic struct{}

// Run executes prog's global variable initializers and then its
// program body. It returns a *RuntimeError if execution aborted, and
// nil on normal completion or an explicit `quit`.
func (in *Interp) Run(prog *ast.Program) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case quitPanic:
				err = nil
			case *RuntimeError:
				err = r.(*RuntimeError)
			default:
				panic(r)
			}
		}
	}()

	if prog.Definitions != nil {
		for _, g := range prog.Definitions.Globals {
			in.declareVarDef(g, in.global)
		}
	}

	// A bare `return` at program scope (outside any function) is
	// rejected by the semantic analyzer, so the only non-normal signal
	// that can reach here is unreachable in practice; Run still treats
	// it as a normal end of program rather than panicking.
	in.execStatements(prog.Statements, in.global)
	return nil
}
