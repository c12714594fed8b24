package interp

import (
	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/types"
)

// resolveType mirrors semantic.Analyzer.resolveTypeExpr: a local
// VarDef's type annotation has no ResolvedType field of its own (only
// expressions carry one), so the evaluator re-resolves it once, at the
// point the variable is declared. The program already passed semantic
// analysis, so no error reporting is needed here.
func (in *Interp) resolveType(te ast.TypeExpr) types.Type {
	switch t := te.(type) {
	case ast.NumberTypeExpr:
		return types.Number
	case ast.TextTypeExpr:
		return types.Text
	case ast.NothingTypeExpr:
		return types.Nothing
	case ast.StructureTypeExpr:
		return types.Structure(t.Name)
	case ast.LinkTypeExpr:
		return types.Link(in.resolveType(t.Elem))
	case ast.ArrayTypeExpr:
		elem := in.resolveType(t.Elem)
		if len(t.Bounds) == 0 {
			return types.Array(elem, nil)
		}
		bounds := make([]types.Bound, len(t.Bounds))
		for i, b := range t.Bounds {
			bounds[i] = types.Bound{Lo: constNumber(b.Lo), Hi: constNumber(b.Hi)}
		}
		return types.Array(elem, bounds)
	default:
		return types.Number
	}
}

// constNumber folds the same constant array-bound expressions
// semantic.Analyzer.evalConstNumber accepts. Analysis already rejected
// anything else, so this never needs to report an error.
func constNumber(e ast.Expression) int {
	switch n := e.(type) {
	case *ast.NumberLit:
		return int(n.Value)
	case *ast.Unary:
		v := constNumber(n.Operand)
		if n.Op == lexer.MINUS {
			return -v
		}
		return v
	case *ast.Binary:
		l, r := constNumber(n.Left), constNumber(n.Right)
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
		}
	}
	return 0
}
