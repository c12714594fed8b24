package parser

import (
	"testing"

	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lexErrs := lexer.Tokenize(src)
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", lexErrs)
	}
	prog, errs := ParseProgram(toks)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return prog
}

func TestParseHelloProgram(t *testing.T) {
	prog := mustParse(t, `program display_line("hi") end program`)
	if len(prog.Statements) != 1 {
		t.Fatalf("want 1 statement, got %d", len(prog.Statements))
	}
	es, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("want ExpressionStatement, got %T", prog.Statements[0])
	}
	call, ok := es.Expr.(*ast.Call)
	if !ok || call.Callee != "display_line" {
		t.Fatalf("want call to display_line, got %#v", es.Expr)
	}
}

func TestParseFunctionWithRecursion(t *testing.T) {
	src := `
definitions
  function fib(n:number) returns number
    if n <= 2 then return 1 end if
    return fib(n-1)+fib(n-2)
  end function
end definitions
program display_line(fib(10)) end program`
	prog := mustParse(t, src)
	if len(prog.Definitions.Functions) != 1 {
		t.Fatalf("want 1 function, got %d", len(prog.Definitions.Functions))
	}
	fn := prog.Definitions.Functions[0]
	if fn.Name != "fib" || len(fn.Params) != 1 {
		t.Fatalf("got %#v", fn)
	}
	if len(fn.Body) != 2 {
		t.Fatalf("want 2 statements in fib body, got %d", len(fn.Body))
	}
}

func TestParseArrayWithCustomBounds(t *testing.T) {
	src := `
program
  a : array [2 to 4] of number
  a[2]=10 a[3]=20 a[4]=30
  display_line(a[2]+a[4])
end program`
	prog := mustParse(t, src)
	varDef, ok := prog.Statements[0].(*ast.VarDef)
	if !ok {
		t.Fatalf("want VarDef, got %T", prog.Statements[0])
	}
	arrType, ok := varDef.TypeExpr.(ast.ArrayTypeExpr)
	if !ok || len(arrType.Bounds) != 1 {
		t.Fatalf("want 1-dim array type, got %#v", varDef.TypeExpr)
	}
}

func TestParseChangeableParameter(t *testing.T) {
	src := `
definitions
  function bump(x : changeable number) returns nothing x = x + 1 end function
end definitions
program v : number = 5 bump(v) display_line(v) end program`
	prog := mustParse(t, src)
	fn := prog.Definitions.Functions[0]
	if !fn.Params[0].Changeable {
		t.Fatal("want changeable parameter")
	}
}

func TestParseIfElseIfElse(t *testing.T) {
	src := `program
  if 1 = 2 then
    display("a")
  else if 2 = 2 then
    display("b")
  else
    display("c")
  end if
end program`
	prog := mustParse(t, src)
	ifStmt := prog.Statements[0].(*ast.If)
	if len(ifStmt.ElseIfs) != 1 {
		t.Fatalf("want 1 else-if, got %d", len(ifStmt.ElseIfs))
	}
	if len(ifStmt.Else) != 1 {
		t.Fatalf("want else branch, got %d stmts", len(ifStmt.Else))
	}
}

func TestParseRepeatNTimes(t *testing.T) {
	prog := mustParse(t, `program repeat 3 times display("x") end repeat end program`)
	rn, ok := prog.Statements[0].(*ast.RepeatN)
	if !ok {
		t.Fatalf("want RepeatN, got %T", prog.Statements[0])
	}
	if len(rn.Body) != 1 {
		t.Fatalf("want 1 body statement, got %d", len(rn.Body))
	}
}

func TestParseRepeatForever(t *testing.T) {
	prog := mustParse(t, `program repeat display("x") break end repeat end program`)
	rf, ok := prog.Statements[0].(*ast.RepeatForever)
	if !ok {
		t.Fatalf("want RepeatForever, got %T", prog.Statements[0])
	}
	if len(rf.Body) != 2 {
		t.Fatalf("want 2 body statements, got %d", len(rf.Body))
	}
}

func TestParseRepeatForAll(t *testing.T) {
	src := `program
  a : array [1 to 3] of number
  repeat for all x in a display(x) end repeat
end program`
	prog := mustParse(t, src)
	rfa, ok := prog.Statements[1].(*ast.RepeatForAll)
	if !ok {
		t.Fatalf("want RepeatForAll, got %T", prog.Statements[1])
	}
	if rfa.Var != "x" {
		t.Fatalf("got var name %q", rfa.Var)
	}
}

func TestParsePrecedencePowerBeatsUnary(t *testing.T) {
	prog := mustParse(t, `program display(-2^2) end program`)
	call := prog.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.Call)
	unary, ok := call.Args[0].(*ast.Unary)
	if !ok {
		t.Fatalf("want unary at top, got %#v", call.Args[0])
	}
	if _, ok := unary.Operand.(*ast.Binary); !ok {
		t.Fatalf("want ^ nested inside unary, got %#v", unary.Operand)
	}
}

func TestParseIsLinkedPredicate(t *testing.T) {
	src := `
definitions
  structure Node
    value : number
  end structure
end definitions
program
  n : link to Node
  if n is not linked then display("empty") end if
end program`
	prog := mustParse(t, src)
	ifStmt := prog.Statements[1].(*ast.If)
	if _, ok := ifStmt.Cond.(*ast.IsNotLinked); !ok {
		t.Fatalf("want IsNotLinked condition, got %#v", ifStmt.Cond)
	}
}

func TestParseErrorReportsLocationAndRecovers(t *testing.T) {
	src := `program
  a = )
  b = 1
end program`
	toks, _ := lexer.Tokenize(src)
	_, errs := ParseProgram(toks)
	if len(errs) == 0 {
		t.Fatal("want at least one parse error")
	}
	if errs[0].Pos.Line != 2 {
		t.Fatalf("want error on line 2, got %d", errs[0].Pos.Line)
	}
}

func TestParseStructureDefault(t *testing.T) {
	src := `
definitions
  structure Point
    x : number = 0
    y : number = 0
  end structure
end definitions
program p : Point end program`
	prog := mustParse(t, src)
	sd := prog.Definitions.Structures[0]
	if len(sd.Fields) != 2 || sd.Fields[0].Default == nil {
		t.Fatalf("got %#v", sd)
	}
}
