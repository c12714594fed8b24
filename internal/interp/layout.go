package interp

import (
	"github.com/cwbudde/finch/internal/semantic"
	"github.com/cwbudde/finch/internal/types"
)

// widthOf is the runtime cell width of t, mirroring
// semantic.Analyzer.widthOf but resolved against the interpreter's own
// copy of the symbol table (the two packages share no state across the
// pipeline boundary).
func widthOf(symtab *semantic.SymbolTable, t types.Type) int {
	switch {
	case t.IsStructure():
		if info, ok := symtab.Structure(t.Name); ok {
			return info.Width
		}
		return 0
	case t.IsArray():
		width := 1
		for _, b := range t.Bounds {
			width *= b.Width()
		}
		return width * widthOf(symtab, *t.Elem)
	default:
		return 1
	}
}

// allocZero allocates width cells at the store's current end and
// default-initializes them for type t (0 for numbers, "" for text,
// an empty header for arrays, -1 for links, recursively for
// structures and their fields' own defaults).
func (in *Interp) allocZero(t types.Type) int {
	switch {
	case t.IsNumeric():
		addr := in.store.Alloc(1)
		return addr
	case t.IsText():
		addr := in.store.Alloc(1)
		in.store.Get(addr).Kind = KindText
		return addr
	case t.IsLink():
		addr := in.store.Alloc(1)
		c := in.store.Get(addr)
		c.Kind = KindLink
		c.LinkTo = -1
		return addr
	case t.IsArray():
		return in.allocArray(t)
	case t.IsStructure():
		return in.allocStructure(t.Name)
	default:
		return in.store.Alloc(1)
	}
}

func (in *Interp) allocArray(t types.Type) int {
	width := 1
	for _, b := range t.Bounds {
		width *= b.Width()
	}
	base := in.store.Len()
	for i := 0; i < width; i++ {
		in.allocZero(*t.Elem)
	}
	headerAddr := in.store.Alloc(1)
	h := &ArrayHeader{Elem: *t.Elem, Bounds: append([]types.Bound(nil), t.Bounds...), Base: base}
	c := in.store.Get(headerAddr)
	c.Kind = KindArrayHeader
	c.Header = h
	return headerAddr
}

func (in *Interp) allocStructure(name string) int {
	info, ok := in.symtab.Structure(name)
	if !ok {
		return in.store.Alloc(1)
	}
	base := in.store.Len()
	for _, f := range info.Fields {
		addr := in.allocZero(f.Type)
		if f.Default != nil {
			in.assignInto(addr, f.Type, in.evalExpression(f.Default, in.global))
		}
	}
	return base
}
