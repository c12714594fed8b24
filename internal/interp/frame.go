package interp

import (
	"strings"

	"github.com/cwbudde/finch/internal/types"
)

// binding is what a Frame actually stores per name: a cell address and
// the type it was declared with, needed to walk index/field accessors
// without re-deriving the type from the semantic analyzer's own scope
// (which no longer exists once the program is running).
type binding struct {
	addr int
	typ  types.Type
}

// Frame is one entry in the evaluator's own scope stack: the global
// frame, one per active function call, and one per active `repeat for
// all` binding. Unlike semantic.Scope, a Frame maps names to cell
// addresses, not just types — address assignment is a runtime fact
// that only exists once a frame is actually pushed.
type Frame struct {
	vars   map[string]binding
	parent *Frame
}

func NewFrame(parent *Frame) *Frame {
	return &Frame{vars: make(map[string]binding), parent: parent}
}

func (f *Frame) Bind(name string, addr int, typ types.Type) {
	f.vars[strings.ToLower(name)] = binding{addr: addr, typ: typ}
}

func (f *Frame) resolve(name string) (binding, bool) {
	key := strings.ToLower(name)
	for fr := f; fr != nil; fr = fr.parent {
		if b, ok := fr.vars[key]; ok {
			return b, true
		}
	}
	return binding{}, false
}
