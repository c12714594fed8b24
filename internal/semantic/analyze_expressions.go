package semantic

import (
	"strings"

	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/types"
)

// analyzeExpression assigns a type to e with no expected-type context
// (used everywhere except the few sites — var/field initializers,
// assignment, call arguments, return — where the target type is known
// and needed to disambiguate a brace literal).
func (a *Analyzer) analyzeExpression(e ast.Expression, inCondition bool) {
	a.analyzeExpressionExpect(e, nil, inCondition)
}

// analyzeExpressionExpect is the full dispatcher. expect is non-nil
// exactly where a brace literal could otherwise not be resolved.
func (a *Analyzer) analyzeExpressionExpect(e ast.Expression, expect *types.Type, inCondition bool) {
	switch n := e.(type) {
	case *ast.NumberLit:
		n.SetType(types.Number)
	case *ast.TextLit:
		n.SetType(types.Text)
	case *ast.BraceLit:
		a.analyzeBraceLit(n, expect)
	case *ast.Ref:
		a.analyzeRef(n)
	case *ast.Call:
		a.analyzeCall(n)
	case *ast.Binary:
		a.analyzeBinary(n, inCondition)
	case *ast.Unary:
		a.analyzeUnary(n)
	case *ast.IsLinked:
		a.analyzeRef(n.Target)
		if !n.Target.Type().IsLink() {
			a.errorf(TypeError, n.Pos(), "'is linked' requires a link-typed reference")
		}
		n.SetType(types.Number)
	case *ast.IsNotLinked:
		a.analyzeRef(n.Target)
		if !n.Target.Type().IsLink() {
			a.errorf(TypeError, n.Pos(), "'is not linked' requires a link-typed reference")
		}
		n.SetType(types.Number)
	default:
		a.errorf(TypeError, e.Pos(), "unknown expression form")
	}
}

func (a *Analyzer) analyzeBraceLit(b *ast.BraceLit, expect *types.Type) {
	switch {
	case expect == nil:
		a.errorf(TypeError, b.Pos(), "brace literal has no expected type at this position")
		for _, el := range b.Elements {
			a.analyzeExpression(el, false)
		}
		b.SetType(types.Number)
	case expect.IsStructure():
		b.IsStruct = true
		b.SetType(*expect)
		info, ok := a.symtab.Structure(expect.Name)
		if !ok {
			return
		}
		if len(b.Elements) != len(info.Fields) {
			a.errorf(TypeError, b.Pos(), "structure literal for %q expects %d field(s), got %d",
				expect.Name, len(info.Fields), len(b.Elements))
		}
		for i, el := range b.Elements {
			if i >= len(info.Fields) {
				a.analyzeExpression(el, false)
				continue
			}
			ft := info.Fields[i].Type
			a.analyzeExpressionExpect(el, &ft, false)
			if !a.assignCompatible(ft, el.Type()) {
				a.errorf(TypeError, el.Pos(), "field %q: expected %s, got %s", info.Fields[i].Name, ft, el.Type())
			}
		}
	case expect.IsArray():
		b.IsStruct = false
		b.SetType(*expect)
		if expect.Elem == nil {
			return
		}
		elemType := *expect.Elem
		if len(expect.Bounds) > 0 && expect.Width() != len(b.Elements) {
			a.errorf(TypeError, b.Pos(), "array literal expects %d element(s), got %d", expect.Width(), len(b.Elements))
		}
		for _, el := range b.Elements {
			a.analyzeExpressionExpect(el, &elemType, false)
			if !a.assignCompatible(elemType, el.Type()) {
				a.errorf(TypeError, el.Pos(), "array element: expected %s, got %s", elemType, el.Type())
			}
		}
	default:
		a.errorf(TypeError, b.Pos(), "brace literal is not valid where %s is expected", *expect)
		for _, el := range b.Elements {
			a.analyzeExpression(el, false)
		}
		b.SetType(*expect)
	}
}

func (a *Analyzer) analyzeRef(r *ast.Ref) {
	v, ok := a.scope.Resolve(r.Name)
	if !ok {
		a.errorf(NameError, r.Pos(), "undeclared identifier %q", r.Name)
		r.SetType(types.Number)
		return
	}
	current := v.Type
	for _, acc := range r.Accessors {
		switch ac := acc.(type) {
		case ast.IndexAccessor:
			if !current.IsArray() {
				a.errorf(TypeError, r.Pos(), "%q is not an array", r.Name)
				return
			}
			if len(ac.Indices) != current.Dimensions() {
				a.errorf(TypeError, r.Pos(), "%q: expected %d index expression(s), got %d",
					r.Name, current.Dimensions(), len(ac.Indices))
			}
			for _, idx := range ac.Indices {
				a.analyzeExpression(idx, false)
				if !idx.Type().IsNumeric() {
					a.errorf(TypeError, idx.Pos(), "array index must be a number")
				}
			}
			current = *current.Elem
		case ast.FieldAccessor:
			if !current.IsStructure() {
				a.errorf(TypeError, r.Pos(), "%q is not a structure", r.Name)
				return
			}
			info, ok := a.symtab.Structure(current.Name)
			if !ok {
				return
			}
			_, field := info.FieldByName(ac.Name)
			if field == nil {
				a.errorf(NameError, r.Pos(), "structure %q has no field %q", current.Name, ac.Name)
				return
			}
			current = field.Type
		}
	}
	r.SetType(current)
}

var conditionOps = map[lexer.TokenType]bool{
	lexer.KW_AND: true, lexer.KW_OR: true,
	lexer.LT: true, lexer.LE: true, lexer.GT: true, lexer.GE: true,
	lexer.ASSIGN: true, lexer.NEQ: true,
}

func (a *Analyzer) analyzeBinary(n *ast.Binary, inCondition bool) {
	switch n.Op {
	case lexer.KW_AND, lexer.KW_OR:
		if !inCondition {
			a.errorf(TypeError, n.Pos(), "'%s' may only appear in a condition", n.Op)
		}
		a.analyzeExpression(n.Left, true)
		a.analyzeExpression(n.Right, true)
		if !n.Left.Type().IsNumeric() || !n.Right.Type().IsNumeric() {
			a.errorf(TypeError, n.Pos(), "'%s' requires numeric operands", n.Op)
		}
		n.SetType(types.Number)
	case lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		if !inCondition {
			a.errorf(TypeError, n.Pos(), "comparison may only appear in a condition")
		}
		a.analyzeExpression(n.Left, false)
		a.analyzeExpression(n.Right, false)
		if !n.Left.Type().IsNumeric() || !n.Right.Type().IsNumeric() {
			a.errorf(TypeError, n.Pos(), "'%s' requires numeric operands", n.Op)
		}
		n.SetType(types.Number)
	case lexer.ASSIGN, lexer.NEQ:
		if !inCondition {
			a.errorf(TypeError, n.Pos(), "comparison may only appear in a condition")
		}
		a.analyzeExpression(n.Left, false)
		a.analyzeExpression(n.Right, false)
		if n.Left.Type().Kind != n.Right.Type().Kind {
			a.errorf(TypeError, n.Pos(), "cannot compare %s with %s", n.Left.Type(), n.Right.Type())
		}
		n.SetType(types.Number)
	case lexer.PLUS:
		a.analyzeExpression(n.Left, false)
		a.analyzeExpression(n.Right, false)
		if n.Left.Type().IsText() || n.Right.Type().IsText() {
			n.SetType(types.Text)
		} else if n.Left.Type().IsNumeric() && n.Right.Type().IsNumeric() {
			n.SetType(types.Number)
		} else {
			a.errorf(TypeError, n.Pos(), "'+' requires two numbers or a text operand, got %s and %s",
				n.Left.Type(), n.Right.Type())
			n.SetType(types.Number)
		}
	default:
		a.analyzeExpression(n.Left, false)
		a.analyzeExpression(n.Right, false)
		if !n.Left.Type().IsNumeric() || !n.Right.Type().IsNumeric() {
			a.errorf(TypeError, n.Pos(), "'%s' requires numeric operands, got %s and %s",
				n.Op, n.Left.Type(), n.Right.Type())
		}
		n.SetType(types.Number)
	}
}

func (a *Analyzer) analyzeUnary(n *ast.Unary) {
	a.analyzeExpression(n.Operand, false)
	if !n.Operand.Type().IsNumeric() {
		a.errorf(TypeError, n.Pos(), "unary '%s' requires a numeric operand", n.Op)
	}
	n.SetType(types.Number)
}

// assignCompatible is Compatible plus one call-site relaxation: a
// built-in like dimensions(...) statically returns an
// unspecified-bounds "array of number" (its real length is only known
// once the argument is resolved), which must still satisfy an
// assignment or var-init target with concrete bounds.
func (a *Analyzer) assignCompatible(want, got types.Type) bool {
	if want.IsArray() && got.IsArray() && want.Elem != nil && got.Elem != nil &&
		want.Bounds != nil && got.Bounds == nil && types.Compatible(*want.Elem, *got.Elem) {
		return true
	}
	return types.Compatible(want, got)
}

func lowerName(s string) string { return strings.ToLower(s) }
