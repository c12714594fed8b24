package interp

import (
	"math"

	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/lexer"
)

// evalBinary evaluates a two-operand expression, short-circuiting
// `and`/`or` without evaluating the right operand unless needed, and
// formatting the non-text operand of a text-concatenating `+` with the
// same rule `display`/`display_line` use.
func (in *Interp) evalBinary(n *ast.Binary, fr *Frame) Value {
	switch n.Op {
	case lexer.KW_AND:
		l := in.evalExpression(n.Left, fr)
		if !l.truthy() {
			return numberValue(0)
		}
		r := in.evalExpression(n.Right, fr)
		return numberValue(boolNum(r.truthy()))
	case lexer.KW_OR:
		l := in.evalExpression(n.Left, fr)
		if l.truthy() {
			return numberValue(1)
		}
		r := in.evalExpression(n.Right, fr)
		return numberValue(boolNum(r.truthy()))
	}

	l := in.evalExpression(n.Left, fr)
	r := in.evalExpression(n.Right, fr)

	switch n.Op {
	case lexer.LT:
		return numberValue(boolNum(l.Num < r.Num))
	case lexer.LE:
		return numberValue(boolNum(l.Num <= r.Num))
	case lexer.GT:
		return numberValue(boolNum(l.Num > r.Num))
	case lexer.GE:
		return numberValue(boolNum(l.Num >= r.Num))
	case lexer.ASSIGN:
		return numberValue(boolNum(in.valuesEqual(l, r)))
	case lexer.NEQ:
		return numberValue(boolNum(!in.valuesEqual(l, r)))
	case lexer.PLUS:
		if l.Typ.IsText() || r.Typ.IsText() {
			return textValue(in.displayString(l) + in.displayString(r))
		}
		return numberValue(l.Num + r.Num)
	case lexer.MINUS:
		return numberValue(l.Num - r.Num)
	case lexer.STAR:
		return numberValue(l.Num * r.Num)
	case lexer.SLASH:
		if r.Num == 0 {
			in.raise(ArithmeticError, n.Pos(), "division by zero")
		}
		return numberValue(l.Num / r.Num)
	case lexer.KW_MOD:
		if r.Num == 0 {
			in.raise(ArithmeticError, n.Pos(), "mod by zero")
		}
		return numberValue(math.Mod(l.Num, r.Num))
	case lexer.CARET:
		return numberValue(math.Pow(l.Num, r.Num))
	case lexer.KW_BIT_AND:
		return numberValue(float64(int64(l.Num) & int64(r.Num)))
	case lexer.KW_BIT_OR:
		return numberValue(float64(int64(l.Num) | int64(r.Num)))
	case lexer.KW_BIT_XOR:
		return numberValue(float64(int64(l.Num) ^ int64(r.Num)))
	case lexer.KW_BIT_SL:
		return numberValue(float64(int64(l.Num) << uint(int64(r.Num))))
	case lexer.KW_BIT_SR:
		return numberValue(float64(int64(l.Num) >> uint(int64(r.Num))))
	default:
		in.raise(FatalError, n.Pos(), "unhandled binary operator %s", n.Op)
		return Value{}
	}
}

func (in *Interp) valuesEqual(l, r Value) bool {
	if l.Typ.IsText() || r.Typ.IsText() {
		return l.Text == r.Text
	}
	return l.Num == r.Num
}
