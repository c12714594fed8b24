// Package parser implements the recursive-descent parser that turns a
// token stream into Finch's AST. Lookahead is one token almost
// everywhere; a handful of productions (variable definitions vs. bare
// references, and `repeat`'s three forms) need a second token or a
// speculative parse-and-backtrack.
package parser

import (
	"fmt"

	"github.com/cwbudde/finch/internal/lexer"
)

// Parser holds the full pre-scanned token slice and a read cursor. Using
// a slice instead of streaming from the Lexer makes backtracking (for
// `repeat`'s ambiguous forms) a matter of saving and restoring an int.
type Parser struct {
	tokens      []lexer.Token
	pos         int
	errors      []*Error
	speculative bool // while true, parse failures are not recorded
}

// New builds a Parser over tokens, which must end with an EOF token (as
// produced by lexer.Tokenize).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) peek() lexer.Token { return p.peekAt(1) }

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.cur().Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek().Type == t }

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if tok.Type != lexer.EOF {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches t, else records a
// syntax error naming the unexpected token and returns ok=false without
// advancing, so the caller can decide how to recover.
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, bool) {
	if p.curIs(t) {
		return p.advance(), true
	}
	p.errorf(p.cur().Pos, "expected %s, got %s", t, describeToken(p.cur()))
	return lexer.Token{}, false
}

func describeToken(tok lexer.Token) string {
	if tok.Type == lexer.EOF {
		return "end of file"
	}
	return fmt.Sprintf("%q", tok.Lexeme)
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...any) {
	if p.speculative {
		return
	}
	p.errors = append(p.errors, &Error{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// checkpoint/restore implement the save-and-backtrack speculative parse
// used to disambiguate `repeat N times` from `repeat <statements>`.
type checkpoint struct {
	pos      int
	errCount int
}

func (p *Parser) save() checkpoint {
	return checkpoint{pos: p.pos, errCount: len(p.errors)}
}

func (p *Parser) restore(c checkpoint) {
	p.pos = c.pos
	p.errors = p.errors[:c.errCount]
}

// synchronizers are the tokens that plausibly start a fresh statement or
// close a block; error recovery discards tokens until it sees one.
var synchronizers = map[lexer.TokenType]bool{
	lexer.KW_END:      true,
	lexer.KW_IF:       true,
	lexer.KW_WHILE:    true,
	lexer.KW_REPEAT:   true,
	lexer.KW_BREAK:    true,
	lexer.KW_CONTINUE: true,
	lexer.KW_RETURN:   true,
	lexer.KW_QUIT:     true,
	lexer.KW_LINK:     true,
	lexer.KW_UNLINK:   true,
	lexer.EOF:         true,
}

// synchronize discards tokens until the next synchronizing keyword so
// the parser can keep collecting further errors in one pass.
func (p *Parser) synchronize() {
	for !synchronizers[p.cur().Type] {
		p.advance()
	}
}
