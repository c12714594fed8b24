package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/finch/internal/interp"
	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/parser"
	"github.com/cwbudde/finch/internal/semantic"
)

// run lexes, parses, analyzes, and evaluates source, returning
// everything written to stdout. It fails the test on any pipeline
// error since every case here is expected to be well-formed.
func run(t *testing.T, source string) string {
	t.Helper()

	tokens, lexErrs := lexer.Tokenize(source)
	if len(lexErrs) != 0 {
		t.Fatalf("lex errors: %v", lexErrs)
	}

	program, parseErrs := parser.ParseProgram(tokens)
	if len(parseErrs) != 0 {
		t.Fatalf("parse errors: %v", parseErrs)
	}

	symtab, semErrs := semantic.Analyze(program)
	if len(semErrs) != 0 {
		t.Fatalf("semantic errors: %v", semErrs)
	}

	var out bytes.Buffer
	in := strings.NewReader("")
	it := interp.New(symtab, &out, in, 1)
	if err := it.Run(program); err != nil {
		t.Fatalf("runtime error: %v", err)
	}
	return out.String()
}

func TestHello(t *testing.T) {
	got := run(t, `program display_line("hi") end program`)
	if got != "hi\n" {
		t.Fatalf("got %q, want %q", got, "hi\n")
	}
}

func TestFibonacci(t *testing.T) {
	src := `
definitions
  function fib(n:number) returns number
    if n <= 2 then return 1 end if
    return fib(n-1)+fib(n-2)
  end function
end definitions
program display_line(fib(10)) end program`
	if got := run(t, src); got != "55\n" {
		t.Fatalf("got %q, want %q", got, "55\n")
	}
}

func TestArrayCustomBounds(t *testing.T) {
	src := `
program
  a : array [2 to 4] of number
  a[2]=10 a[3]=20 a[4]=30
  display_line(a[2]+a[4])
end program`
	if got := run(t, src); got != "40\n" {
		t.Fatalf("got %q, want %q", got, "40\n")
	}
}

func TestChangeableParameter(t *testing.T) {
	src := `
definitions
  function bump(x : changeable number) returns nothing x = x + 1 end function
end definitions
program v : number = 5 bump(v) display_line(v) end program`
	if got := run(t, src); got != "6\n" {
		t.Fatalf("got %q, want %q", got, "6\n")
	}
}

func TestShortCircuit(t *testing.T) {
	src := `
definitions
  function sideeffect() returns number display("X") return 1 end function
end definitions
program
  if 0 and sideeffect() = 1 then display("Y") end if
  display_line("done")
end program`
	if got := run(t, src); got != "done\n" {
		t.Fatalf("got %q, want %q", got, "done\n")
	}
}

func TestNumericFormattingCollapse(t *testing.T) {
	got := run(t, `program display_line(5.0000000001) end program`)
	if got != "5\n" {
		t.Fatalf("got %q, want %q", got, "5\n")
	}
}

func TestCallByValueIndependence(t *testing.T) {
	src := `
definitions
  function inc(x : number) returns nothing x = x + 1 end function
end definitions
program
  v : number = 5
  inc(v)
  display_line(v)
end program`
	if got := run(t, src); got != "5\n" {
		t.Fatalf("call by value mutated caller binding: got %q, want %q", got, "5\n")
	}
}

func TestArrayIndexRoundTrip(t *testing.T) {
	src := `
program
  a : array [0 to 9] of number
  a[7] = 42
  display_line(a[7])
end program`
	if got := run(t, src); got != "42\n" {
		t.Fatalf("got %q, want %q", got, "42\n")
	}
}

func TestScopeDisciplineAcrossLoop(t *testing.T) {
	src := `
program
  total : number = 0
  repeat 3 times
    i : number = 1
    total = total + i
  end repeat
  display_line(total)
end program`
	if got := run(t, src); got != "3\n" {
		t.Fatalf("got %q, want %q", got, "3\n")
	}
}

func TestQuitStopsExecution(t *testing.T) {
	src := `
program
  display_line("before")
  quit
  display_line("after")
end program`
	if got := run(t, src); got != "before\n" {
		t.Fatalf("got %q, want %q", got, "before\n")
	}
}

func TestStructureDeepCopyOnAssign(t *testing.T) {
	src := `
definitions
  structure point
    x : number
    y : number
  end structure
end definitions
program
  a : point
  b : point
  a.x = 1
  a.y = 2
  b = a
  b.x = 99
  display_line(a.x)
  display_line(b.x)
end program`
	if got := run(t, src); got != "1\n99\n" {
		t.Fatalf("got %q, want %q", got, "1\n99\n")
	}
}
