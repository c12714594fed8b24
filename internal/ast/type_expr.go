package ast

import "strings"

// TypeExpr is the small parsed-syntax sibling of types.Type: it captures
// a type annotation as written (including bound expressions, which may
// need evaluation) before the semantic analyzer resolves it to a
// types.Type descriptor.
type TypeExpr interface {
	typeExprNode()
	String() string
}

// NumberTypeExpr is the `number` annotation.
type NumberTypeExpr struct{}

func (NumberTypeExpr) typeExprNode() {}
func (NumberTypeExpr) String() string { return "number" }

// TextTypeExpr is the `text` annotation.
type TextTypeExpr struct{}

func (TextTypeExpr) typeExprNode() {}
func (TextTypeExpr) String() string { return "text" }

// NothingTypeExpr is the `nothing` annotation, legal only as a return type.
type NothingTypeExpr struct{}

func (NothingTypeExpr) typeExprNode() {}
func (NothingTypeExpr) String() string { return "nothing" }

// StructureTypeExpr names a previously (or mutually) declared structure.
type StructureTypeExpr struct {
	Name string
}

func (StructureTypeExpr) typeExprNode()     {}
func (s StructureTypeExpr) String() string { return s.Name }

// BoundExpr is one `Lo to Hi` dimension of an array type annotation. An
// annotation that leaves bounds unspecified (legal only as a parameter
// type) has no BoundExpr at all; see ArrayTypeExpr.Bounds.
type BoundExpr struct {
	Lo, Hi Expression
}

// ArrayTypeExpr is an `array [..] of Elem` annotation.
type ArrayTypeExpr struct {
	Bounds []BoundExpr // nil means unspecified bounds
	Elem   TypeExpr
}

func (ArrayTypeExpr) typeExprNode() {}
func (a ArrayTypeExpr) String() string {
	if len(a.Bounds) == 0 {
		return "array of " + a.Elem.String()
	}
	parts := make([]string, len(a.Bounds))
	for i := range a.Bounds {
		parts[i] = "bound"
	}
	return "array [" + strings.Join(parts, ", ") + "] of " + a.Elem.String()
}

// LinkTypeExpr is a `link to Elem` annotation.
type LinkTypeExpr struct {
	Elem TypeExpr
}

func (LinkTypeExpr) typeExprNode() {}
func (l LinkTypeExpr) String() string { return "link to " + l.Elem.String() }
