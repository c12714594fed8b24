package semantic

import (
	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/types"
)

// resolveTypeExpr turns a parsed type annotation into a resolved
// types.Type, reporting a NameError if it names an undeclared
// structure.
func (a *Analyzer) resolveTypeExpr(te ast.TypeExpr, pos lexer.Position) types.Type {
	switch t := te.(type) {
	case ast.NumberTypeExpr:
		return types.Number
	case ast.TextTypeExpr:
		return types.Text
	case ast.NothingTypeExpr:
		return types.Nothing
	case ast.StructureTypeExpr:
		if _, ok := a.symtab.Structure(t.Name); !ok {
			a.errorf(NameError, pos, "undeclared structure %q", t.Name)
		}
		return types.Structure(t.Name)
	case ast.LinkTypeExpr:
		elem := a.resolveTypeExpr(t.Elem, pos)
		return types.Link(elem)
	case ast.ArrayTypeExpr:
		elem := a.resolveTypeExpr(t.Elem, pos)
		if len(t.Bounds) == 0 {
			return types.Array(elem, nil)
		}
		bounds := make([]types.Bound, len(t.Bounds))
		for i, b := range t.Bounds {
			lo := a.evalConstNumber(b.Lo)
			hi := a.evalConstNumber(b.Hi)
			bounds[i] = types.Bound{Lo: lo, Hi: hi}
		}
		return types.Array(elem, bounds)
	default:
		a.errorf(TypeError, pos, "unknown type annotation")
		return types.Number
	}
}

// evalConstNumber folds an array-bound expression that must be known
// at analysis time: a number literal, or +,-,*,/ combinations of
// number literals (see DESIGN.md for the rationale behind this
// restriction). Anything else reports a TypeError and folds to 0 so
// analysis can continue.
func (a *Analyzer) evalConstNumber(e ast.Expression) int {
	switch n := e.(type) {
	case *ast.NumberLit:
		return int(n.Value)
	case *ast.Unary:
		v := a.evalConstNumber(n.Operand)
		switch n.Op {
		case lexer.MINUS:
			return -v
		case lexer.PLUS:
			return v
		}
	case *ast.Binary:
		l := a.evalConstNumber(n.Left)
		r := a.evalConstNumber(n.Right)
		switch n.Op {
		case lexer.PLUS:
			return l + r
		case lexer.MINUS:
			return l - r
		case lexer.STAR:
			return l * r
		case lexer.SLASH:
			if r != 0 {
				return l / r
			}
			return 0
		}
	}
	a.errorf(TypeError, e.Pos(), "array bound must be a constant numeric expression")
	return 0
}
