package lexer

import "testing"

func TestNextTokenBasics(t *testing.T) {
	src := `program
  a : array [2 to 4] of number
  a[2]=10 a[3]=20.5
  display_line("hi\n" + 'x')
end program`

	want := []TokenType{
		KW_PROGRAM,
		IDENT, COLON, KW_ARRAY, LBRACKET, NUMBER, KW_TO, NUMBER, RBRACKET, KW_OF, KW_NUMBER,
		IDENT, LBRACKET, NUMBER, RBRACKET, ASSIGN, NUMBER,
		IDENT, LBRACKET, NUMBER, RBRACKET, ASSIGN, NUMBER,
		IDENT, LPAREN, TEXT, PLUS, TEXT, RPAREN,
		KW_END, KW_PROGRAM,
		EOF,
	}

	toks, errs := Tokenize(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected lexical errors: %v", errs)
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s (lexeme %q)", i, toks[i].Type, tt, toks[i].Lexeme)
		}
	}
}

func TestKeywordsCaseInsensitive(t *testing.T) {
	toks, _ := Tokenize("PROGRAM End Program")
	if toks[0].Type != KW_PROGRAM || toks[0].Lexeme != "PROGRAM" {
		t.Fatalf("want keyword kind with preserved case, got %+v", toks[0])
	}
	if toks[1].Type != KW_END {
		t.Fatalf("want end keyword, got %v", toks[1].Type)
	}
}

func TestIdentifiersPreserveCase(t *testing.T) {
	toks, _ := Tokenize("MyVar")
	if toks[0].Type != IDENT || toks[0].Lexeme != "MyVar" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestNumberLiterals(t *testing.T) {
	toks, errs := Tokenize("42 3.14 .5")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []string{"42", "3.14", ".5"}
	for i, w := range want {
		if toks[i].Lexeme != w {
			t.Errorf("token %d: got %q want %q", i, toks[i].Lexeme, w)
		}
	}
}

func TestTextEscapes(t *testing.T) {
	toks, errs := Tokenize(`"a\tb\nc\\d\"e"`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[0].Lexeme != "a\tb\nc\\d\"e" {
		t.Fatalf("got %q", toks[0].Lexeme)
	}
}

func TestIllegalByteReportsLineAndColumn(t *testing.T) {
	_, errs := Tokenize("a = 1\n\x01b = 2")
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Pos.Line != 2 || errs[0].Pos.Column != 1 {
		t.Fatalf("got position %+v", errs[0].Pos)
	}
}

func TestCommentsIgnored(t *testing.T) {
	toks, _ := Tokenize("a = 1 # comment here\nb = 2 // also a comment\n")
	var kinds []TokenType
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	want := []TokenType{IDENT, ASSIGN, NUMBER, IDENT, ASSIGN, NUMBER, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v want %v", kinds, want)
	}
}

func TestUnterminatedTextLiteral(t *testing.T) {
	_, errs := Tokenize(`"unterminated`)
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %v", errs)
	}
}
