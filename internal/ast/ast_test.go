package ast

import (
	"testing"

	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/types"
)

func tok(typ lexer.TokenType, lit string) lexer.Token {
	return lexer.NewToken(typ, lit, lexer.Position{Line: 1, Column: 1})
}

func TestExpressionTypeRoundTrip(t *testing.T) {
	n := NewNumberLit(tok(lexer.NUMBER, "5"), 5)
	n.SetType(types.Number)
	if n.Type().Kind != types.KindNumber {
		t.Fatalf("want number type, got %v", n.Type())
	}
}

func TestRefString(t *testing.T) {
	r := NewRef(tok(lexer.IDENT, "a"), "a", []Accessor{
		IndexAccessor{Indices: []Expression{NewNumberLit(tok(lexer.NUMBER, "1"), 1)}},
		FieldAccessor{Name: "x"},
	})
	if got, want := r.String(), "a[1].x"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestProgramString(t *testing.T) {
	p := &Program{
		Statements: []Statement{
			NewExpressionStatement(tok(lexer.IDENT, "display_line"), NewCall(tok(lexer.IDENT, "display_line"), "display_line", []Expression{NewTextLit(tok(lexer.TEXT, "hi"), "hi")})),
		},
	}
	s := p.String()
	if s == "" {
		t.Fatal("expected non-empty program rendering")
	}
}
