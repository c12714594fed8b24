package parser

import (
	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/lexer"
)

// ParseProgram parses the full token stream into a Program, collecting
// every syntax error it can via synchronizing recovery rather than
// stopping at the first one.
func ParseProgram(tokens []lexer.Token) (*ast.Program, []*Error) {
	p := New(tokens)
	prog := p.parseProgram()
	return prog, p.errors
}

func (p *Parser) parseProgram() *ast.Program {
	var defs *ast.Definitions
	if p.curIs(lexer.KW_DEFINITIONS) {
		defs = p.parseDefinitions()
	}

	progTok, _ := p.expect(lexer.KW_PROGRAM)
	_ = progTok
	stmts := p.parseStatementList()
	p.expect(lexer.KW_END)
	p.expect(lexer.KW_PROGRAM)

	return &ast.Program{Definitions: defs, Statements: stmts}
}

func (p *Parser) parseDefinitions() *ast.Definitions {
	p.advance() // `definitions`
	defs := &ast.Definitions{}

	for p.curIs(lexer.KW_STRUCTURE) {
		defs.Structures = append(defs.Structures, p.parseStructureDef())
	}
	for p.curIs(lexer.IDENT) && p.peekIs(lexer.COLON) {
		defs.Globals = append(defs.Globals, p.parseVarDef())
	}
	for p.curIs(lexer.KW_FUNCTION) {
		defs.Functions = append(defs.Functions, p.parseFunctionDef())
	}

	p.expect(lexer.KW_END)
	p.expect(lexer.KW_DEFINITIONS)
	return defs
}

func (p *Parser) parseStructureDef() *ast.StructureDef {
	tok := p.advance() // `structure`
	nameTok, _ := p.expect(lexer.IDENT)

	def := &ast.StructureDef{Token: tok, Name: nameTok.Lexeme}
	for p.curIs(lexer.IDENT) {
		fieldName := p.advance().Lexeme
		p.expect(lexer.COLON)
		typeExpr := p.parseTypeExpr()
		var dflt ast.Expression
		if p.curIs(lexer.ASSIGN) {
			p.advance()
			dflt = p.parseExpression()
		}
		def.Fields = append(def.Fields, ast.StructureField{Name: fieldName, TypeExpr: typeExpr, Default: dflt})
	}

	p.expect(lexer.KW_END)
	p.expect(lexer.KW_STRUCTURE)
	return def
}

func (p *Parser) parseFunctionDef() *ast.FunctionDef {
	tok := p.advance() // `function`
	nameTok, _ := p.expect(lexer.IDENT)
	def := &ast.FunctionDef{Token: tok, Name: nameTok.Lexeme}

	p.expect(lexer.LPAREN)
	for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
		paramName := p.advance().Lexeme
		p.expect(lexer.COLON)
		changeable := false
		if p.curIs(lexer.KW_CHANGEABLE) {
			changeable = true
			p.advance()
		}
		typeExpr := p.parseTypeExpr()
		def.Params = append(def.Params, ast.Param{Name: paramName, Changeable: changeable, TypeExpr: typeExpr})
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.RPAREN)

	p.expect(lexer.KW_RETURNS)
	if p.curIs(lexer.KW_NOTHING) {
		p.advance()
		def.ReturnType = ast.NothingTypeExpr{}
	} else {
		def.ReturnType = p.parseTypeExpr()
	}

	def.Body = p.parseStatementList()

	p.expect(lexer.KW_END)
	p.expect(lexer.KW_FUNCTION)
	return def
}

func (p *Parser) parseVarDef() *ast.VarDef {
	tok := p.cur()
	name := p.advance().Lexeme
	p.expect(lexer.COLON)
	typeExpr := p.parseTypeExpr()
	var init ast.Expression
	if p.curIs(lexer.ASSIGN) {
		p.advance()
		init = p.parseExpression()
	}
	return ast.NewVarDef(tok, name, typeExpr, init)
}

// parseTypeExpr parses a type annotation: number, text, a structure name,
// `array [..] of T` / `array of T`, or `link to T`.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	switch p.cur().Type {
	case lexer.KW_NUMBER:
		p.advance()
		return ast.NumberTypeExpr{}
	case lexer.KW_TEXT:
		p.advance()
		return ast.TextTypeExpr{}
	case lexer.KW_NOTHING:
		p.advance()
		return ast.NothingTypeExpr{}
	case lexer.KW_ARRAY:
		return p.parseArrayTypeExpr()
	case lexer.KW_LINK:
		p.advance()
		p.expect(lexer.KW_TO)
		return ast.LinkTypeExpr{Elem: p.parseTypeExpr()}
	case lexer.IDENT:
		name := p.advance().Lexeme
		return ast.StructureTypeExpr{Name: name}
	default:
		p.errorf(p.cur().Pos, "expected a type, got %s", describeToken(p.cur()))
		p.advance()
		return ast.NumberTypeExpr{}
	}
}

func (p *Parser) parseArrayTypeExpr() ast.TypeExpr {
	p.advance() // `array`
	var bounds []ast.BoundExpr
	if p.curIs(lexer.LBRACKET) {
		p.advance()
		for {
			bounds = append(bounds, p.parseBoundExpr())
			if p.curIs(lexer.COMMA) {
				p.advance()
				continue
			}
			break
		}
		p.expect(lexer.RBRACKET)
	}
	p.expect(lexer.KW_OF)
	elem := p.parseTypeExpr()
	return ast.ArrayTypeExpr{Bounds: bounds, Elem: elem}
}

func (p *Parser) parseBoundExpr() ast.BoundExpr {
	first := p.parseExpression()
	if p.curIs(lexer.KW_TO) {
		p.advance()
		hi := p.parseExpression()
		return ast.BoundExpr{Lo: first, Hi: hi}
	}
	// Bare bound: default lower bound is 1 (see the Array bounds glossary entry).
	one := ast.NewNumberLit(p.cur(), 1)
	return ast.BoundExpr{Lo: one, Hi: first}
}
