package parser

import (
	"strconv"

	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/lexer"
)

// parseExpression is the entry point into the precedence table, from
// `or` (loosest) down to `^` and primaries (tightest). See the precedence
// comment on each level for the operators it owns.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.curIs(lexer.KW_OR) {
		tok := p.advance()
		right := p.parseAnd()
		left = ast.NewBinary(tok, lexer.KW_OR, left, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.Expression {
	left := p.parseComparison()
	for p.curIs(lexer.KW_AND) {
		tok := p.advance()
		right := p.parseComparison()
		left = ast.NewBinary(tok, lexer.KW_AND, left, right)
	}
	return left
}

var comparisonOps = map[lexer.TokenType]bool{
	lexer.LT: true, lexer.LE: true, lexer.GT: true, lexer.GE: true,
	lexer.ASSIGN: true, lexer.NEQ: true,
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseBitOr()
	for comparisonOps[p.cur().Type] {
		tok := p.advance()
		right := p.parseBitOr()
		left = ast.NewBinary(tok, tok.Type, left, right)
	}
	if p.curIs(lexer.KW_IS) {
		tok := p.advance()
		ref, ok := left.(*ast.Ref)
		if !ok {
			p.errorf(tok.Pos, "'is linked' requires a reference operand")
		}
		if p.curIs(lexer.KW_NOT) {
			p.advance()
			p.expect(lexer.KW_LINKED)
			return ast.NewIsNotLinked(tok, ref)
		}
		p.expect(lexer.KW_LINKED)
		return ast.NewIsLinked(tok, ref)
	}
	return left
}

func (p *Parser) parseBitOr() ast.Expression {
	left := p.parseBitXor()
	for p.curIs(lexer.KW_BIT_OR) {
		tok := p.advance()
		right := p.parseBitXor()
		left = ast.NewBinary(tok, lexer.KW_BIT_OR, left, right)
	}
	return left
}

func (p *Parser) parseBitXor() ast.Expression {
	left := p.parseBitAnd()
	for p.curIs(lexer.KW_BIT_XOR) {
		tok := p.advance()
		right := p.parseBitAnd()
		left = ast.NewBinary(tok, lexer.KW_BIT_XOR, left, right)
	}
	return left
}

func (p *Parser) parseBitAnd() ast.Expression {
	left := p.parseShift()
	for p.curIs(lexer.KW_BIT_AND) {
		tok := p.advance()
		right := p.parseShift()
		left = ast.NewBinary(tok, lexer.KW_BIT_AND, left, right)
	}
	return left
}

func (p *Parser) parseShift() ast.Expression {
	left := p.parseAddSub()
	for p.curIs(lexer.KW_BIT_SL) || p.curIs(lexer.KW_BIT_SR) {
		tok := p.advance()
		right := p.parseAddSub()
		left = ast.NewBinary(tok, tok.Type, left, right)
	}
	return left
}

func (p *Parser) parseAddSub() ast.Expression {
	left := p.parseMulDiv()
	for p.curIs(lexer.PLUS) || p.curIs(lexer.MINUS) {
		tok := p.advance()
		right := p.parseMulDiv()
		left = ast.NewBinary(tok, tok.Type, left, right)
	}
	return left
}

func (p *Parser) parseMulDiv() ast.Expression {
	left := p.parseUnary()
	for p.curIs(lexer.STAR) || p.curIs(lexer.SLASH) || p.curIs(lexer.KW_MOD) {
		tok := p.advance()
		right := p.parseUnary()
		left = ast.NewBinary(tok, tok.Type, left, right)
	}
	return left
}

// parseUnary handles prefix `-`, `+`, and `bit_not`. Because `^` binds
// tighter than unary (per the precedence table), `-x^2` parses as
// `-(x^2)`: parseUnary defers to parsePower for its operand.
func (p *Parser) parseUnary() ast.Expression {
	switch p.cur().Type {
	case lexer.MINUS, lexer.PLUS, lexer.KW_BIT_NOT:
		tok := p.advance()
		operand := p.parseUnary()
		return ast.NewUnary(tok, tok.Type, operand)
	default:
		return p.parsePower()
	}
}

// parsePower parses `^`, right-associative and tighter than unary: the
// exponent is itself parsed at the unary level so `2^-3` is legal and
// `2^3^2` groups as `2^(3^2)`.
func (p *Parser) parsePower() ast.Expression {
	base := p.parsePrimary()
	if p.curIs(lexer.CARET) {
		tok := p.advance()
		exp := p.parseUnary()
		return ast.NewBinary(tok, lexer.CARET, base, exp)
	}
	return base
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur()
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			p.errorf(tok.Pos, "invalid number literal %q", tok.Lexeme)
		}
		return ast.NewNumberLit(tok, v)
	case lexer.TEXT:
		p.advance()
		return ast.NewTextLit(tok, tok.Lexeme)
	case lexer.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(lexer.RPAREN)
		return expr
	case lexer.LBRACE:
		return p.parseBraceLit()
	case lexer.IDENT:
		return p.parseIdentOrCall()
	default:
		p.errorf(tok.Pos, "unexpected token %s in expression", describeToken(tok))
		p.advance()
		return ast.NewNumberLit(tok, 0)
	}
}

func (p *Parser) parseBraceLit() ast.Expression {
	tok := p.advance() // `{`
	var elements []ast.Expression
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		elements = append(elements, p.parseExpression())
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue // a trailing comma before `}` is accepted silently
		}
		break
	}
	p.expect(lexer.RBRACE)
	return ast.NewBraceLit(tok, elements)
}

func (p *Parser) parseIdentOrCall() ast.Expression {
	tok := p.advance()
	if p.curIs(lexer.LPAREN) {
		p.advance()
		var args []ast.Expression
		for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
			args = append(args, p.parseExpression())
			if p.curIs(lexer.COMMA) {
				p.advance()
				continue // dangling comma in argument list is accepted silently
			}
			break
		}
		p.expect(lexer.RPAREN)
		return ast.NewCall(tok, tok.Lexeme, args)
	}
	return p.parseRefTail(tok)
}

// parseRef parses a reference expression: an identifier followed by any
// number of `[..]` index or `.field` accessors.
func (p *Parser) parseRef() *ast.Ref {
	tok, _ := p.expect(lexer.IDENT)
	return p.parseRefTail(tok)
}

func (p *Parser) parseRefTail(tok lexer.Token) *ast.Ref {
	var accessors []ast.Accessor
	for {
		switch p.cur().Type {
		case lexer.LBRACKET:
			p.advance()
			var indices []ast.Expression
			for {
				indices = append(indices, p.parseExpression())
				if p.curIs(lexer.COMMA) {
					p.advance()
					continue
				}
				break
			}
			p.expect(lexer.RBRACKET)
			accessors = append(accessors, ast.IndexAccessor{Indices: indices})
		case lexer.DOT:
			p.advance()
			name, _ := p.expect(lexer.IDENT)
			accessors = append(accessors, ast.FieldAccessor{Name: name.Lexeme})
		default:
			return ast.NewRef(tok, tok.Lexeme, accessors)
		}
	}
}
