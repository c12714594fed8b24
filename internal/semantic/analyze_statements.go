package semantic

import (
	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/types"
)

func (a *Analyzer) analyzeStatements(stmts []ast.Statement) {
	for _, s := range stmts {
		a.analyzeStatement(s)
	}
}

func (a *Analyzer) analyzeStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.VarDef:
		a.analyzeVarDef(n)
	case *ast.Assign:
		a.analyzeAssign(n)
	case *ast.LinkAssign:
		a.analyzeLinkAssign(n)
	case *ast.Unlink:
		a.analyzeUnlink(n)
	case *ast.While:
		a.analyzeCondition(n.Cond)
		a.loopDepth++
		a.analyzeStatements(n.Body)
		a.loopDepth--
	case *ast.If:
		a.analyzeCondition(n.Cond)
		a.analyzeStatements(n.Then)
		for _, ei := range n.ElseIfs {
			a.analyzeCondition(ei.Cond)
			a.analyzeStatements(ei.Body)
		}
		a.analyzeStatements(n.Else)
	case *ast.RepeatForever:
		a.loopDepth++
		a.analyzeStatements(n.Body)
		a.loopDepth--
	case *ast.RepeatN:
		a.analyzeExpression(n.Count, false)
		if !n.Count.Type().IsNumeric() {
			a.errorf(TypeError, n.Count.Pos(), "repeat count must be a number")
		}
		a.loopDepth++
		a.analyzeStatements(n.Body)
		a.loopDepth--
	case *ast.RepeatForAll:
		a.analyzeRepeatForAll(n)
	case *ast.Break:
		if a.loopDepth == 0 {
			a.errorf(TypeError, n.Pos(), "break outside of a loop")
		}
	case *ast.Continue:
		if a.loopDepth == 0 {
			a.errorf(TypeError, n.Pos(), "continue outside of a loop")
		}
	case *ast.Return:
		a.analyzeReturn(n)
	case *ast.Quit:
		// no checks: quit is valid anywhere, including at global scope.
	case *ast.ExpressionStatement:
		a.analyzeExpression(n.Expr, false)
	}
}

func (a *Analyzer) analyzeVarDef(v *ast.VarDef) {
	t := a.resolveTypeExpr(v.TypeExpr, v.Pos())
	if t.IsArray() && len(t.Bounds) == 0 {
		a.errorf(TypeError, v.Pos(), "variable %q: array type must declare concrete bounds", v.Name)
	}
	if v.Init != nil {
		a.analyzeExpressionExpect(v.Init, &t, false)
		if !a.assignCompatible(t, v.Init.Type()) {
			a.errorf(TypeError, v.Init.Pos(), "variable %q: cannot initialize %s with %s", v.Name, t, v.Init.Type())
		}
	}
	if !a.scope.Define(v.Name, t) {
		a.errorf(NameError, v.Pos(), "%q is already declared in this scope", v.Name)
	}
}

func (a *Analyzer) analyzeAssign(asg *ast.Assign) {
	a.analyzeRef(asg.Target)
	t := asg.Target.Type()
	a.analyzeExpressionExpect(asg.Value, &t, false)
	if !a.assignCompatible(t, asg.Value.Type()) {
		a.errorf(TypeError, asg.Value.Pos(), "cannot assign %s to %q of type %s", asg.Value.Type(), asg.Target.Name, t)
	}
}

func (a *Analyzer) analyzeLinkAssign(l *ast.LinkAssign) {
	a.analyzeRef(l.Target)
	if !l.Target.Type().IsLink() {
		a.errorf(TypeError, l.Pos(), "link target %q must be declared as a link", l.Target.Name)
		a.analyzeExpression(l.Value, false)
		return
	}
	pointee := *l.Target.Type().Elem
	a.analyzeExpressionExpect(l.Value, &pointee, false)
	valueRef, ok := l.Value.(*ast.Ref)
	if !ok || !valueRef.IsLValue() {
		a.errorf(TypeError, l.Value.Pos(), "link value must be a reference")
		return
	}
	if !types.Compatible(pointee, valueRef.Type()) {
		a.errorf(TypeError, l.Value.Pos(), "cannot link %q to a value of type %s", l.Target.Name, valueRef.Type())
	}
}

func (a *Analyzer) analyzeUnlink(u *ast.Unlink) {
	a.analyzeRef(u.Target)
	if !u.Target.Type().IsLink() {
		a.errorf(TypeError, u.Pos(), "unlink target %q must be declared as a link", u.Target.Name)
	}
}

func (a *Analyzer) analyzeRepeatForAll(n *ast.RepeatForAll) {
	a.analyzeExpression(n.Array, false)
	arrType := n.Array.Type()
	if !arrType.IsArray() {
		a.errorf(TypeError, n.Array.Pos(), "'repeat for all' requires an array, got %s", arrType)
		a.analyzeStatements(n.Body)
		return
	}
	elemType := *arrType.Elem
	outer := a.scope
	a.scope = NewScope(outer)
	a.scope.Define(n.Var, elemType)
	a.loopDepth++
	a.analyzeStatements(n.Body)
	a.loopDepth--
	a.scope = outer
}

func (a *Analyzer) analyzeReturn(r *ast.Return) {
	if a.fn == nil {
		a.errorf(TypeError, r.Pos(), "return outside of a function")
		if r.Value != nil {
			a.analyzeExpression(r.Value, false)
		}
		return
	}
	if r.Value == nil {
		if !a.fn.returnType.IsNothing() {
			a.errorf(TypeError, r.Pos(), "function %q must return a value of type %s", a.fn.name, a.fn.returnType)
		}
		return
	}
	if a.fn.returnType.IsNothing() {
		a.errorf(TypeError, r.Pos(), "function %q returns nothing and cannot return a value", a.fn.name)
		a.analyzeExpression(r.Value, false)
		return
	}
	a.analyzeExpressionExpect(r.Value, &a.fn.returnType, false)
	if !a.assignCompatible(a.fn.returnType, r.Value.Type()) {
		a.errorf(TypeError, r.Value.Pos(), "function %q: cannot return %s where %s is expected",
			a.fn.name, r.Value.Type(), a.fn.returnType)
	}
}

// analyzeCondition requires if/while conditions to reduce to a
// comparison or logical combination thereof, never a bare value
// expression.
func (a *Analyzer) analyzeCondition(e ast.Expression) {
	switch n := e.(type) {
	case *ast.Binary:
		if !conditionOps[n.Op] {
			a.errorf(TypeError, e.Pos(), "condition must be a comparison or logical combination, not a value expression")
		}
		a.analyzeExpression(e, true)
	case *ast.IsLinked, *ast.IsNotLinked:
		a.analyzeExpression(e, true)
	default:
		a.errorf(TypeError, e.Pos(), "condition must be a comparison or logical combination thereof")
		a.analyzeExpression(e, false)
	}
}
