package semantic_test

import (
	"testing"

	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/parser"
	"github.com/cwbudde/finch/internal/semantic"
)

func analyze(t *testing.T, source string) (*semantic.SymbolTable, []*semantic.Error) {
	t.Helper()
	tokens, lexErrs := lexer.Tokenize(source)
	if len(lexErrs) != 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}
	program, parseErrs := parser.ParseProgram(tokens)
	if len(parseErrs) != 0 {
		t.Fatalf("parse errors: %v", parseErrs)
	}
	return semantic.Analyze(program)
}

func TestAnalyzeWellTypedProgram(t *testing.T) {
	_, errs := analyze(t, `program display_line("hi") end program`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestAnalyzeRejectsNumberPlusText(t *testing.T) {
	_, errs := analyze(t, `
program
  a : number = 1
  a = 1 + "x"
end program`)
	if len(errs) == 0 {
		t.Fatal("expected a type error for number + text outside display")
	}
	if errs[0].Kind != semantic.TypeError {
		t.Fatalf("got %s, want TypeError", errs[0].Kind)
	}
}

func TestAnalyzeRejectsUndeclaredIdentifier(t *testing.T) {
	_, errs := analyze(t, `program display_line(missing) end program`)
	if len(errs) == 0 {
		t.Fatal("expected a name error for undeclared identifier")
	}
	if errs[0].Kind != semantic.NameError {
		t.Fatalf("got %s, want NameError", errs[0].Kind)
	}
}

func TestAnalyzeRejectsArityMismatch(t *testing.T) {
	_, errs := analyze(t, `
definitions
  function add(a : number, b : number) returns number return a + b end function
end definitions
program display_line(add(1)) end program`)
	if len(errs) == 0 {
		t.Fatal("expected an arity error")
	}
}

func TestAnalyzeRejectsNonLValueForChangeableParam(t *testing.T) {
	_, errs := analyze(t, `
definitions
  function bump(x : changeable number) returns nothing x = x + 1 end function
end definitions
program bump(1 + 1) end program`)
	if len(errs) == 0 {
		t.Fatal("expected a type error: changeable argument must be an l-value")
	}
}

func TestAnalyzeAllowsMutualRecursion(t *testing.T) {
	_, errs := analyze(t, `
definitions
  function is_even(n : number) returns number
    if n = 0 then return 1 end if
    return is_odd(n-1)
  end function
  function is_odd(n : number) returns number
    if n = 0 then return 0 end if
    return is_even(n-1)
  end function
end definitions
program display_line(is_even(10)) end program`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors for mutually recursive functions: %v", errs)
	}
}

func TestAnalyzeRegistersStructureFields(t *testing.T) {
	symtab, errs := analyze(t, `
definitions
  structure point
    x : number
    y : number = 9
  end structure
end definitions
program
  p : point
  p.x = 1
  display_line(p.x + p.y)
end program`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	info, ok := symtab.Structure("point")
	if !ok {
		t.Fatal("structure point not registered")
	}
	if len(info.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(info.Fields))
	}
}

func TestAnalyzeRejectsIndexingNonArray(t *testing.T) {
	_, errs := analyze(t, `
program
  a : number = 1
  display_line(a[0])
end program`)
	if len(errs) == 0 {
		t.Fatal("expected a type error: cannot index a non-array")
	}
}

func TestAnalyzeRejectsArrayLiteralLengthMismatch(t *testing.T) {
	_, errs := analyze(t, `
program
  a : array [0 to 2] of number
  a = {1, 2}
end program`)
	if len(errs) == 0 {
		t.Fatal("expected a type error: array literal length mismatch")
	}
}
