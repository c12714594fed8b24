package parser

import (
	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/lexer"
)

// parseStatementList parses statements until it reaches a token that
// cannot start one (in practice, `end`, `else`, or end of file). Each
// statement that fails to parse is resynchronized so the remaining
// statements still get a chance to report their own errors.
func (p *Parser) parseStatementList() []ast.Statement {
	var stmts []ast.Statement
	for !p.curIs(lexer.KW_END) && !p.curIs(lexer.KW_ELSE) && !p.curIs(lexer.EOF) {
		before := p.pos
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			// parseStatement made no progress; force it so we terminate.
			p.synchronize()
			if p.pos == before {
				p.advance()
			}
		}
	}
	return stmts
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Type {
	case lexer.KW_IF:
		return p.parseIf()
	case lexer.KW_WHILE:
		return p.parseWhile()
	case lexer.KW_REPEAT:
		return p.parseRepeat()
	case lexer.KW_BREAK:
		// Loop/function context (break outside a loop, return outside a
		// function) is a semantic-analysis concern, not a syntactic one.
		return ast.NewBreak(p.advance())
	case lexer.KW_CONTINUE:
		return ast.NewContinue(p.advance())
	case lexer.KW_RETURN:
		return p.parseReturn()
	case lexer.KW_QUIT:
		return ast.NewQuit(p.advance())
	case lexer.KW_LINK:
		return p.parseLinkAssign()
	case lexer.KW_UNLINK:
		return p.parseUnlink()
	case lexer.IDENT:
		if p.peekIs(lexer.COLON) {
			return p.parseVarDef()
		}
		return p.parseAssignOrExpressionStatement()
	default:
		p.errorf(p.cur().Pos, "unexpected token %s", describeToken(p.cur()))
		return nil
	}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.advance()
	if p.startsExpression() {
		return ast.NewReturn(tok, p.parseExpression())
	}
	return ast.NewReturn(tok, nil)
}

func (p *Parser) parseLinkAssign() ast.Statement {
	tok := p.advance() // `link`
	target := p.parseRef()
	p.expect(lexer.KW_TO)
	value := p.parseExpression()
	return ast.NewLinkAssign(tok, target, value)
}

func (p *Parser) parseUnlink() ast.Statement {
	tok := p.advance() // `unlink`
	target := p.parseRef()
	return ast.NewUnlink(tok, target)
}

func (p *Parser) parseAssignOrExpressionStatement() ast.Statement {
	tok := p.cur()
	if p.peekIs(lexer.LPAREN) {
		expr := p.parseExpression()
		return ast.NewExpressionStatement(tok, expr)
	}
	ref := p.parseRef()
	if p.curIs(lexer.ASSIGN) {
		p.advance()
		value := p.parseExpression()
		return ast.NewAssign(tok, ref, value)
	}
	return ast.NewExpressionStatement(tok, ref)
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.advance() // `while`
	cond := p.parseExpression()
	body := p.parseStatementList()
	p.expect(lexer.KW_END)
	p.expect(lexer.KW_WHILE)
	return ast.NewWhile(tok, cond, body)
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.advance() // `if`
	cond := p.parseExpression()
	p.expect(lexer.KW_THEN)
	then := p.parseStatementList()

	var elseIfs []ast.ElseIf
	var elseBody []ast.Statement

	for p.curIs(lexer.KW_ELSE) && p.peekIs(lexer.KW_IF) {
		p.advance() // `else`
		p.advance() // `if`
		eiCond := p.parseExpression()
		p.expect(lexer.KW_THEN)
		eiBody := p.parseStatementList()
		elseIfs = append(elseIfs, ast.ElseIf{Cond: eiCond, Body: eiBody})
	}
	if p.curIs(lexer.KW_ELSE) {
		p.advance()
		elseBody = p.parseStatementList()
	}

	p.expect(lexer.KW_END)
	p.expect(lexer.KW_IF)
	return ast.NewIf(tok, cond, then, elseIfs, elseBody)
}

// parseRepeat dispatches on the token(s) following `repeat`:
//   - `for all ID in Resolvable` is an array iteration.
//   - a resolvable expression followed by `times` is a counted loop.
//   - anything else begins the body of an infinite loop.
// The count-vs-body case needs a speculative parse-and-backtrack because
// an infinite loop's first statement can itself start with an expression
// (e.g. a bare call), which is syntactically identical to a count.
func (p *Parser) parseRepeat() ast.Statement {
	tok := p.advance() // `repeat`

	if p.curIs(lexer.KW_FOR) {
		p.advance()
		p.expect(lexer.KW_ALL)
		name := p.advance().Lexeme
		p.expect(lexer.KW_IN)
		arr := p.parseExpression()
		body := p.parseStatementList()
		p.expect(lexer.KW_END)
		p.expect(lexer.KW_REPEAT)
		return ast.NewRepeatForAll(tok, name, arr, body)
	}

	cp := p.save()
	if count, ok := p.trySpeculative(func() ast.Expression { return p.parseExpression() }); ok {
		if p.curIs(lexer.KW_TIMES) {
			p.advance()
			body := p.parseStatementList()
			p.expect(lexer.KW_END)
			p.expect(lexer.KW_REPEAT)
			return ast.NewRepeatN(tok, count, body)
		}
		p.restore(cp) // not a count: re-read those tokens as the loop body
	}

	body := p.parseStatementList()
	p.expect(lexer.KW_END)
	p.expect(lexer.KW_REPEAT)
	return ast.NewRepeatForever(tok, body)
}

// trySpeculative runs parse under a checkpoint; on failure (no progress,
// or a recorded error) it restores the cursor and reports ok=false.
// Errors are recorded during the attempt so a failure can be seen;
// restore discards them again.
func (p *Parser) trySpeculative(parse func() ast.Expression) (ast.Expression, bool) {
	cp := p.save()
	expr := parse()
	if len(p.errors) > cp.errCount || p.pos == cp.pos || expr == nil {
		p.restore(cp)
		return nil, false
	}
	return expr, true
}

// startsExpression reports whether the current token can begin an
// expression, used to tell a bare `return` from `return <value>`.
func (p *Parser) startsExpression() bool {
	switch p.cur().Type {
	case lexer.NUMBER, lexer.TEXT, lexer.IDENT, lexer.LPAREN, lexer.LBRACE,
		lexer.MINUS, lexer.PLUS, lexer.KW_BIT_NOT:
		return true
	default:
		return false
	}
}
