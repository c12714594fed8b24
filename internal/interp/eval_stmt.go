package interp

import "github.com/cwbudde/finch/internal/ast"

// declareVarDef allocates storage for v in fr: a fresh zero-valued
// cell range sized by v's type, then the initializer's value copied in
// if one was given.
func (in *Interp) declareVarDef(v *ast.VarDef, fr *Frame) {
	t := in.resolveType(v.TypeExpr)
	addr := in.allocZero(t)
	if v.Init != nil {
		in.assignInto(addr, t, in.evalExpression(v.Init, fr))
	}
	fr.Bind(v.Name, addr, t)
}

// execStatements runs stmts in order, stopping early and propagating
// whatever signal the first non-normal statement produces.
func (in *Interp) execStatements(stmts []ast.Statement, fr *Frame) signal {
	for _, s := range stmts {
		if sig := in.execStatement(s, fr); sig.kind != sigNormal {
			return sig
		}
	}
	return normal
}

func (in *Interp) execStatement(s ast.Statement, fr *Frame) signal {
	switch n := s.(type) {
	case *ast.VarDef:
		in.declareVarDef(n, fr)
		return normal

	case *ast.Assign:
		addr, typ := in.evalRefAddress(n.Target, fr)
		in.assignInto(addr, typ, in.evalExpression(n.Value, fr))
		return normal

	case *ast.LinkAssign:
		targetAddr, _ := in.evalRefAddress(n.Target, fr)
		valueRef := n.Value.(*ast.Ref)
		valueAddr, _ := in.evalRefAddress(valueRef, fr)
		in.store.Get(targetAddr).LinkTo = valueAddr
		return normal

	case *ast.Unlink:
		addr, _ := in.evalRefAddress(n.Target, fr)
		in.store.Get(addr).LinkTo = -1
		return normal

	case *ast.While:
		return in.execWhile(n, fr)

	case *ast.If:
		return in.execIf(n, fr)

	case *ast.RepeatForever:
		return in.execRepeatForever(n, fr)

	case *ast.RepeatN:
		return in.execRepeatN(n, fr)

	case *ast.RepeatForAll:
		return in.execRepeatForAll(n, fr)

	case *ast.Break:
		return breakSignal()

	case *ast.Continue:
		return continueSignal()

	case *ast.Return:
		if n.Value == nil {
			return returnSignal(Value{}, false)
		}
		return returnSignal(in.evalExpression(n.Value, fr), true)

	case *ast.Quit:
		panic(quitPanic{})

	case *ast.ExpressionStatement:
		in.evalExpression(n.Expr, fr)
		return normal

	default:
		in.raise(FatalError, s.Pos(), "unhandled statement %T", s)
		return normal
	}
}

func (in *Interp) execWhile(n *ast.While, fr *Frame) signal {
	for in.evalExpression(n.Cond, fr).truthy() {
		sig := in.execStatements(n.Body, fr)
		switch sig.kind {
		case sigBreak:
			return normal
		case sigContinue:
			continue
		case sigNormal:
		default:
			return sig
		}
	}
	return normal
}

func (in *Interp) execIf(n *ast.If, fr *Frame) signal {
	if in.evalExpression(n.Cond, fr).truthy() {
		return in.execStatements(n.Then, fr)
	}
	for _, ei := range n.ElseIfs {
		if in.evalExpression(ei.Cond, fr).truthy() {
			return in.execStatements(ei.Body, fr)
		}
	}
	if n.Else != nil {
		return in.execStatements(n.Else, fr)
	}
	return normal
}

func (in *Interp) execRepeatForever(n *ast.RepeatForever, fr *Frame) signal {
	for {
		sig := in.execStatements(n.Body, fr)
		switch sig.kind {
		case sigBreak:
			return normal
		case sigContinue:
			continue
		case sigNormal:
		default:
			return sig
		}
	}
}

// execRepeatN evaluates Count once at entry and runs the body
// max(0, floor(Count)) times.
func (in *Interp) execRepeatN(n *ast.RepeatN, fr *Frame) signal {
	count := int(in.evalExpression(n.Count, fr).Num)
	for i := 0; i < count; i++ {
		sig := in.execStatements(n.Body, fr)
		switch sig.kind {
		case sigBreak:
			return normal
		case sigContinue:
			continue
		case sigNormal:
		default:
			return sig
		}
	}
	return normal
}

// execRepeatForAll binds Var to each element of Array in turn, walking
// the flattened element sequence directly by stride rather than
// through ElementAddress, since Finch iterates in exactly storage
// order.
func (in *Interp) execRepeatForAll(n *ast.RepeatForAll, fr *Frame) signal {
	v := in.evalExpression(n.Array, fr)
	header := in.store.Get(v.Addr).Header
	elemWidth := widthOf(in.symtab, header.Elem)
	loopFrame := NewFrame(fr)
	width := header.Width()
	for i := 0; i < width; i++ {
		loopFrame.Bind(n.Var, header.Base+i*elemWidth, header.Elem)
		sig := in.execStatements(n.Body, loopFrame)
		switch sig.kind {
		case sigBreak:
			return normal
		case sigContinue:
			continue
		case sigNormal:
		default:
			return sig
		}
	}
	return normal
}
