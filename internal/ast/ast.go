// Package ast defines the tagged-variant abstract syntax tree produced by
// the parser and annotated in place by the semantic analyzer.
package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/finch/internal/lexer"
	"github.com/cwbudde/finch/internal/types"
)

// Node is implemented by every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() lexer.Position
}

// Expression is a node that produces a value. The semantic analyzer
// assigns every expression a resolved Type before the evaluator runs.
type Expression interface {
	Node
	expressionNode()
	Type() types.Type
	SetType(types.Type)
}

// Statement is a node that performs an action but does not itself
// produce a value.
type Statement interface {
	Node
	statementNode()
}

// baseExpr factors the token/type bookkeeping shared by every expression
// node so individual node types only declare their own fields.
type baseExpr struct {
	Token        lexer.Token
	ResolvedType types.Type
}

func (b *baseExpr) TokenLiteral() string     { return b.Token.Lexeme }
func (b *baseExpr) Pos() lexer.Position      { return b.Token.Pos }
func (b *baseExpr) Type() types.Type         { return b.ResolvedType }
func (b *baseExpr) SetType(t types.Type)     { b.ResolvedType = t }
func (b *baseExpr) expressionNode()          {}

type baseStmt struct {
	Token lexer.Token
}

func (b *baseStmt) TokenLiteral() string { return b.Token.Lexeme }
func (b *baseStmt) Pos() lexer.Position  { return b.Token.Pos }
func (b *baseStmt) statementNode()       {}

// Program is the root of the tree: an optional definitions block followed
// by the statements of the `program ... end program` body.
type Program struct {
	Definitions *Definitions // nil if the source had no `definitions` block
	Statements  []Statement
}

func (p *Program) TokenLiteral() string { return "program" }
func (p *Program) Pos() lexer.Position  { return lexer.Position{Line: 1, Column: 1} }
func (p *Program) String() string {
	var sb bytes.Buffer
	if p.Definitions != nil {
		sb.WriteString(p.Definitions.String())
	}
	sb.WriteString("program\n")
	for _, s := range p.Statements {
		sb.WriteString("  " + s.String() + "\n")
	}
	sb.WriteString("end program")
	return sb.String()
}

// Definitions groups the declarations that may precede the program body:
// structures, then globals, then functions, in source order.
type Definitions struct {
	Structures []*StructureDef
	Globals    []*VarDef
	Functions  []*FunctionDef
}

func (d *Definitions) String() string {
	var sb bytes.Buffer
	sb.WriteString("definitions\n")
	for _, s := range d.Structures {
		sb.WriteString("  " + s.String() + "\n")
	}
	for _, g := range d.Globals {
		sb.WriteString("  " + g.String() + "\n")
	}
	for _, f := range d.Functions {
		sb.WriteString("  " + f.String() + "\n")
	}
	sb.WriteString("end definitions\n")
	return sb.String()
}

// StructureField is one (name, type, optional default) entry of a
// StructureDef, in declaration order.
type StructureField struct {
	Name     string
	TypeExpr TypeExpr
	Default  Expression // nil if the field has no default
}

// StructureDef declares a named record type.
type StructureDef struct {
	Token  lexer.Token
	Name   string
	Fields []StructureField
}

func (s *StructureDef) TokenLiteral() string { return s.Token.Lexeme }
func (s *StructureDef) Pos() lexer.Position  { return s.Token.Pos }
func (s *StructureDef) String() string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name + " : " + f.TypeExpr.String()
	}
	return "structure " + s.Name + " { " + strings.Join(names, ", ") + " } end structure"
}

// Param is one formal parameter of a FunctionDef.
type Param struct {
	Name       string
	Changeable bool
	TypeExpr   TypeExpr
}

// FunctionDef declares a named function or procedure.
type FunctionDef struct {
	Token      lexer.Token
	Name       string
	Params     []Param
	ReturnType TypeExpr // NothingTypeExpr for `returns nothing`; nil is treated the same
	Body       []Statement
}

func (f *FunctionDef) TokenLiteral() string { return f.Token.Lexeme }
func (f *FunctionDef) Pos() lexer.Position  { return f.Token.Pos }
func (f *FunctionDef) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		prefix := ""
		if p.Changeable {
			prefix = "changeable "
		}
		params[i] = p.Name + " : " + prefix + p.TypeExpr.String()
	}
	ret := "nothing"
	if f.ReturnType != nil {
		ret = f.ReturnType.String()
	}
	return "function " + f.Name + "(" + strings.Join(params, ", ") + ") returns " + ret
}
