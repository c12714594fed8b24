package interp

import (
	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/errors"
	"github.com/cwbudde/finch/internal/types"
)

// evalCall implements Finch's call protocol: evaluate arguments left
// to right, bind each by-value parameter to a fresh deep copy and each
// changeable parameter to the argument's own cell address, then run
// the body in a frame parented on the globals.
func (in *Interp) evalCall(c *ast.Call, fr *Frame) Value {
	info, ok := in.symtab.Function(c.Callee)
	if !ok {
		in.raise(FatalError, c.Pos(), "undefined function %q", c.Callee)
	}
	if info.Builtin {
		return in.dispatchBuiltin(c, fr)
	}

	callFrame := NewFrame(in.global)
	for i, p := range info.Params {
		argExpr := c.Args[i]
		if p.Changeable {
			ref := argExpr.(*ast.Ref)
			addr, _ := in.evalRefAddress(ref, fr)
			callFrame.Bind(p.Name, addr, p.Type)
			continue
		}
		v := in.evalExpression(argExpr, fr)
		addr := in.allocZero(p.Type)
		in.assignInto(addr, p.Type, v)
		callFrame.Bind(p.Name, addr, p.Type)
	}

	pos := c.Pos()
	in.callStack = append(in.callStack, errors.NewStackFrame(c.Callee, "", &pos))
	defer func() { in.callStack = in.callStack[:len(in.callStack)-1] }()

	sig := in.execStatements(info.Decl.Body, callFrame)
	if sig.kind == sigReturn && sig.hasValu {
		return sig.value
	}
	return Value{Typ: types.Nothing}
}
