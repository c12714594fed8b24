package ast

import "github.com/cwbudde/finch/internal/lexer"

// Constructors. Expression and statement fields that carry a baseExpr or
// baseStmt are unexported, so nodes are built through these functions
// rather than composite literals from other packages.

func NewNumberLit(tok lexer.Token, value float64) *NumberLit {
	return &NumberLit{baseExpr: baseExpr{Token: tok}, Value: value}
}

func NewTextLit(tok lexer.Token, value string) *TextLit {
	return &TextLit{baseExpr: baseExpr{Token: tok}, Value: value}
}

func NewBraceLit(tok lexer.Token, elements []Expression) *BraceLit {
	return &BraceLit{baseExpr: baseExpr{Token: tok}, Elements: elements}
}

func NewRef(tok lexer.Token, name string, accessors []Accessor) *Ref {
	return &Ref{baseExpr: baseExpr{Token: tok}, Name: name, Accessors: accessors}
}

func NewCall(tok lexer.Token, callee string, args []Expression) *Call {
	return &Call{baseExpr: baseExpr{Token: tok}, Callee: callee, Args: args}
}

func NewBinary(tok lexer.Token, op lexer.TokenType, left, right Expression) *Binary {
	return &Binary{baseExpr: baseExpr{Token: tok}, Op: op, Left: left, Right: right}
}

func NewUnary(tok lexer.Token, op lexer.TokenType, operand Expression) *Unary {
	return &Unary{baseExpr: baseExpr{Token: tok}, Op: op, Operand: operand}
}

func NewIsLinked(tok lexer.Token, target *Ref) *IsLinked {
	return &IsLinked{baseExpr: baseExpr{Token: tok}, Target: target}
}

func NewIsNotLinked(tok lexer.Token, target *Ref) *IsNotLinked {
	return &IsNotLinked{baseExpr: baseExpr{Token: tok}, Target: target}
}

func newStmt(tok lexer.Token) baseStmt { return baseStmt{Token: tok} }
