package interp

import (
	"math"

	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/types"
)

// evalExpression evaluates e in the scope chain rooted at fr.
func (in *Interp) evalExpression(e ast.Expression, fr *Frame) Value {
	switch n := e.(type) {
	case *ast.NumberLit:
		return numberValue(n.Value)
	case *ast.TextLit:
		return textValue(n.Value)
	case *ast.BraceLit:
		return in.evalBraceLit(n, fr)
	case *ast.Ref:
		addr, typ := in.evalRefAddress(n, fr)
		return in.loadValue(addr, typ)
	case *ast.Call:
		return in.evalCall(n, fr)
	case *ast.Binary:
		return in.evalBinary(n, fr)
	case *ast.Unary:
		return in.evalUnary(n, fr)
	case *ast.IsLinked:
		addr, _ := in.evalRefAddress(n.Target, fr)
		return numberValue(boolNum(in.store.Get(addr).LinkTo != -1))
	case *ast.IsNotLinked:
		addr, _ := in.evalRefAddress(n.Target, fr)
		return numberValue(boolNum(in.store.Get(addr).LinkTo == -1))
	default:
		in.raise(FatalError, e.Pos(), "unhandled expression %T", e)
		return Value{}
	}
}

// evalRefAddress walks r's accessor chain and returns the cell address
// and type of the storage it finally denotes: a scalar cell, an array
// header, a structure's base, or a link cell. Index accessors read the
// array header already sitting in the store rather than anything
// static, so the linear-offset translation applies uniformly at any
// nesting depth.
func (in *Interp) evalRefAddress(r *ast.Ref, fr *Frame) (int, types.Type) {
	b, ok := fr.resolve(r.Name)
	if !ok {
		in.raise(FatalError, r.Pos(), "undefined variable %q", r.Name)
	}
	addr, typ := b.addr, b.typ
	for _, acc := range r.Accessors {
		switch a := acc.(type) {
		case ast.IndexAccessor:
			header := in.store.Get(addr).Header
			indices := make([]int, len(a.Indices))
			for i, ie := range a.Indices {
				indices[i] = int(in.evalExpression(ie, fr).Num)
			}
			elemWidth := widthOf(in.symtab, header.Elem)
			next, ok := header.ElementAddress(indices, elemWidth)
			if !ok {
				in.raise(BoundsError, r.Pos(), "array index out of bounds for %q", r.Name)
			}
			addr, typ = next, header.Elem
		case ast.FieldAccessor:
			info, ok := in.symtab.Structure(typ.Name)
			if !ok {
				in.raise(FatalError, r.Pos(), "unknown structure %q", typ.Name)
			}
			_, field := info.FieldByName(a.Name)
			if field == nil {
				in.raise(FatalError, r.Pos(), "unknown field %q on %s", a.Name, typ.Name)
			}
			addr, typ = addr+field.Offset, field.Type
		}
	}
	return addr, typ
}

// loadValue reads the value stored at addr. For arrays, structures,
// and links the Value just carries the address onward — the caller
// decides whether it needs to copy.
func (in *Interp) loadValue(addr int, typ types.Type) Value {
	switch {
	case typ.IsNumeric():
		return numberValue(in.store.Get(addr).Num)
	case typ.IsText():
		return textValue(in.store.Get(addr).Text)
	default:
		return Value{Typ: typ, Addr: addr}
	}
}

// assignInto copies v into the storage at addr, deep-copying arrays
// and structures element by element and field by field rather than
// aliasing their address, matching Finch's by-value assignment
// semantics.
func (in *Interp) assignInto(addr int, typ types.Type, v Value) {
	switch {
	case typ.IsNumeric():
		in.store.Get(addr).Num = v.Num
	case typ.IsText():
		c := in.store.Get(addr)
		c.Kind = KindText
		c.Text = v.Text
	case typ.IsLink():
		in.store.Get(addr).LinkTo = in.store.Get(v.Addr).LinkTo
	case typ.IsArray():
		in.copyArray(addr, v.Addr)
	case typ.IsStructure():
		in.copyStructure(addr, v.Addr, typ.Name)
	}
}

func (in *Interp) copyArray(dstHeaderAddr, srcHeaderAddr int) {
	dst := in.store.Get(dstHeaderAddr).Header
	src := in.store.Get(srcHeaderAddr).Header
	elemWidth := widthOf(in.symtab, dst.Elem)
	n := dst.Width()
	for i := 0; i < n; i++ {
		dstAddr := dst.Base + i*elemWidth
		srcAddr := src.Base + i*elemWidth
		in.assignInto(dstAddr, dst.Elem, in.loadValue(srcAddr, src.Elem))
	}
}

func (in *Interp) copyStructure(dstBase, srcBase int, name string) {
	info, ok := in.symtab.Structure(name)
	if !ok {
		return
	}
	for _, f := range info.Fields {
		in.assignInto(dstBase+f.Offset, f.Type, in.loadValue(srcBase+f.Offset, f.Type))
	}
}

// evalBraceLit materializes a `{ ... }` literal as fresh storage,
// filling it positionally as an array or a structure per the IsStruct
// flag the analyzer already resolved.
func (in *Interp) evalBraceLit(b *ast.BraceLit, fr *Frame) Value {
	t := b.Type()
	addr := in.allocZero(t)
	if b.IsStruct {
		info, ok := in.symtab.Structure(t.Name)
		if ok {
			for i, el := range b.Elements {
				if i >= len(info.Fields) {
					break
				}
				f := info.Fields[i]
				in.assignInto(addr+f.Offset, f.Type, in.evalExpression(el, fr))
			}
		}
		return Value{Typ: t, Addr: addr}
	}

	header := in.store.Get(addr).Header
	elemWidth := widthOf(in.symtab, header.Elem)
	for i, el := range b.Elements {
		if i >= header.Width() {
			break
		}
		elemAddr := header.Base + i*elemWidth
		in.assignInto(elemAddr, header.Elem, in.evalExpression(el, fr))
	}
	return Value{Typ: t, Addr: addr}
}

func boolNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (in *Interp) evalUnary(n *ast.Unary, fr *Frame) Value {
	v := in.evalExpression(n.Operand, fr)
	switch n.Op {
	case lexer.MINUS:
		return numberValue(-v.Num)
	case lexer.PLUS:
		return numberValue(math.Abs(v.Num))
	case lexer.KW_BIT_NOT:
		return numberValue(float64(^int64(v.Num)))
	default:
		in.raise(FatalError, n.Pos(), "unhandled unary operator %s", n.Op)
		return Value{}
	}
}
