package semantic

import (
	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/types"
)

func (a *Analyzer) analyzeCall(c *ast.Call) {
	info, ok := a.symtab.Function(c.Callee)
	if !ok {
		a.errorf(NameError, c.Pos(), "undeclared function %q", c.Callee)
		for _, arg := range c.Args {
			a.analyzeExpression(arg, false)
		}
		c.SetType(types.Number)
		return
	}

	if info.Builtin && variadicOrOverloadedBuiltins[lowerName(c.Callee)] {
		a.analyzeOverloadedBuiltinCall(c, info)
		return
	}

	if len(c.Args) != len(info.Params) {
		a.errorf(TypeError, c.Pos(), "%q expects %d argument(s), got %d", c.Callee, len(info.Params), len(c.Args))
	}
	for i, arg := range c.Args {
		if i >= len(info.Params) {
			a.analyzeExpression(arg, false)
			continue
		}
		p := info.Params[i]
		a.analyzeExpressionExpect(arg, &p.Type, false)
		if p.Changeable {
			ref, isRef := arg.(*ast.Ref)
			if !isRef || !ref.IsLValue() {
				a.errorf(TypeError, arg.Pos(), "argument %d of %q is changeable and requires a reference", i+1, c.Callee)
			}
		}
		if !a.assignCompatible(p.Type, arg.Type()) {
			a.errorf(TypeError, arg.Pos(), "argument %d of %q: expected %s, got %s", i+1, c.Callee, p.Type, arg.Type())
		}
	}
	c.SetType(info.ReturnType)
}

// analyzeOverloadedBuiltinCall handles the built-ins whose arity or
// argument typing isn't a single fixed signature.
func (a *Analyzer) analyzeOverloadedBuiltinCall(c *ast.Call, info *FunctionInfo) {
	switch lowerName(c.Callee) {
	case "display", "display_line":
		for _, arg := range c.Args {
			a.analyzeExpression(arg, false)
			if !arg.Type().IsNumeric() && !arg.Type().IsText() {
				a.errorf(TypeError, arg.Pos(), "%q cannot display a value of type %s", c.Callee, arg.Type())
			}
		}
		c.SetType(types.Nothing)
	case "length":
		if len(c.Args) != 1 {
			a.errorf(TypeError, c.Pos(), "%q expects 1 argument, got %d", c.Callee, len(c.Args))
			c.SetType(types.Number)
			return
		}
		a.analyzeExpression(c.Args[0], false)
		t := c.Args[0].Type()
		if !t.IsArray() && !t.IsText() {
			a.errorf(TypeError, c.Args[0].Pos(), "%q requires an array or text argument, got %s", c.Callee, t)
		}
		c.SetType(types.Number)
	case "random_number":
		switch len(c.Args) {
		case 0:
		case 2:
			for _, arg := range c.Args {
				a.analyzeExpression(arg, false)
				if !arg.Type().IsNumeric() {
					a.errorf(TypeError, arg.Pos(), "%q requires numeric bounds", c.Callee)
				}
			}
		default:
			a.errorf(TypeError, c.Pos(), "%q expects 0 or 2 arguments, got %d", c.Callee, len(c.Args))
		}
		c.SetType(types.Number)
	default:
		c.SetType(info.ReturnType)
	}
}
