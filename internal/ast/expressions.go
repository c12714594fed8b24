package ast

import (
	"strings"

	"github.com/cwbudde/finch/internal/lexer"
)

// NumberLit is a numeric literal.
type NumberLit struct {
	baseExpr
	Value float64
}

func (n *NumberLit) String() string { return n.Token.Lexeme }

// TextLit is a text literal, already escape-processed by the lexer.
type TextLit struct {
	baseExpr
	Value string
}

func (t *TextLit) String() string { return `"` + t.Value + `"` }

// BraceLit is an `{ ... }` literal. Whether it denotes an array literal
// (positional elements) or a structure literal (positional field values)
// is not decidable from syntax alone — it depends on the expected type at
// the literal's use site — so the semantic analyzer resolves it and
// records the answer in IsStruct once that context is known.
type BraceLit struct {
	baseExpr
	Elements []Expression
	IsStruct bool
}

func (b *BraceLit) String() string {
	parts := make([]string, len(b.Elements))
	for i, e := range b.Elements {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Accessor is one link in a Ref's chain: either an index expression list
// (array access) or a field name (structure access).
type Accessor interface {
	accessorNode()
	String() string
}

// IndexAccessor is `[i1, i2, ...]`.
type IndexAccessor struct {
	Indices []Expression
}

func (IndexAccessor) accessorNode() {}
func (ix IndexAccessor) String() string {
	parts := make([]string, len(ix.Indices))
	for i, e := range ix.Indices {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FieldAccessor is `.name`.
type FieldAccessor struct {
	Name string
}

func (FieldAccessor) accessorNode()    {}
func (f FieldAccessor) String() string { return "." + f.Name }

// Ref is an identifier with zero or more chained accessors. A bare Ref
// (no accessors) or one built entirely of accessors is an l-value:
// eligible as an assignment target or a changeable call argument.
type Ref struct {
	baseExpr
	Name      string
	Accessors []Accessor
}

func (r *Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	for _, a := range r.Accessors {
		sb.WriteString(a.String())
	}
	return sb.String()
}

// IsLValue reports whether r denotes an addressable storage location
// rather than a computed value — true for every Ref, by construction.
func (r *Ref) IsLValue() bool { return true }

// Call is a function invocation (also used for built-in calls).
type Call struct {
	baseExpr
	Callee string
	Args   []Expression
}

func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee + "(" + strings.Join(parts, ", ") + ")"
}

// Binary is a two-operand operator expression. Op is the lexer token
// type of the operator (PLUS, KW_AND, LT, KW_BIT_XOR, ...).
type Binary struct {
	baseExpr
	Op    lexer.TokenType
	Left  Expression
	Right Expression
}

func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

// Unary is a one-operand prefix operator expression (`-`, `+`, `bit_not`).
type Unary struct {
	baseExpr
	Op      lexer.TokenType
	Operand Expression
}

func (u *Unary) String() string {
	return "(" + u.Op.String() + u.Operand.String() + ")"
}

// IsLinked is the `X is linked` predicate.
type IsLinked struct {
	baseExpr
	Target *Ref
}

func (i *IsLinked) String() string { return i.Target.String() + " is linked" }

// IsNotLinked is the `X is not linked` predicate.
type IsNotLinked struct {
	baseExpr
	Target *Ref
}

func (i *IsNotLinked) String() string { return i.Target.String() + " is not linked" }
