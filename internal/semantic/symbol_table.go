// Package semantic walks the parser's AST, registers structures and
// functions, resolves every name, and assigns a type to every
// expression — or rejects the program as ill-typed.
package semantic

import (
	"strings"

	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/types"
)

// FieldInfo is one field of a registered structure, in declaration order.
// Offset is the field's cell offset within the structure's contiguous
// storage range, in cells (sum of the widths of the preceding fields).
type FieldInfo struct {
	Name    string
	Type    types.Type
	Default ast.Expression // nil if the field has no default
	Offset  int
}

// StructureInfo is a fully registered structure type: its fields and
// their total cell width.
type StructureInfo struct {
	Name   string
	Fields []FieldInfo
	Width  int
}

// FieldByName looks up a field case-insensitively.
func (s *StructureInfo) FieldByName(name string) (int, *FieldInfo) {
	lower := strings.ToLower(name)
	for i := range s.Fields {
		if strings.ToLower(s.Fields[i].Name) == lower {
			return i, &s.Fields[i]
		}
	}
	return -1, nil
}

// ParamInfo is one formal parameter of a registered function.
type ParamInfo struct {
	Name       string
	Changeable bool
	Type       types.Type
}

// FunctionInfo is a fully registered function signature. Decl is nil for
// built-ins, which have no user-visible body to walk.
type FunctionInfo struct {
	Name       string
	Params     []ParamInfo
	ReturnType types.Type
	Decl       *ast.FunctionDef
	Builtin    bool
}

// VarInfo is a resolved variable binding: its declared type. Address
// assignment is a runtime concern owned by the evaluator's own scope
// stack, not the analyzer (see DESIGN.md).
type VarInfo struct {
	Name string
	Type types.Type
}

// Scope is one entry in the analyzer's lexical scope stack: the global
// frame, one per active function call, and one per `repeat for all`
// binding. Resolution walks innermost-first.
type Scope struct {
	vars   map[string]VarInfo
	parent *Scope
}

func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]VarInfo), parent: parent}
}

// Define binds name in this scope. It reports false if name is already
// bound in this exact scope (redeclaration); shadowing an outer scope is
// allowed and reports true.
func (s *Scope) Define(name string, typ types.Type) bool {
	key := strings.ToLower(name)
	if _, exists := s.vars[key]; exists {
		return false
	}
	s.vars[key] = VarInfo{Name: name, Type: typ}
	return true
}

// Resolve looks up name starting in this scope and walking outward.
func (s *Scope) Resolve(name string) (VarInfo, bool) {
	key := strings.ToLower(name)
	for scope := s; scope != nil; scope = scope.parent {
		if v, ok := scope.vars[key]; ok {
			return v, true
		}
	}
	return VarInfo{}, false
}

// SymbolTable bundles the structure and function registries that persist
// for the whole program (see the registration policy in the analyzer).
type SymbolTable struct {
	Structures map[string]*StructureInfo
	Functions  map[string]*FunctionInfo
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Structures: make(map[string]*StructureInfo),
		Functions:  make(map[string]*FunctionInfo),
	}
}

func (t *SymbolTable) Structure(name string) (*StructureInfo, bool) {
	s, ok := t.Structures[strings.ToLower(name)]
	return s, ok
}

func (t *SymbolTable) Function(name string) (*FunctionInfo, bool) {
	f, ok := t.Functions[strings.ToLower(name)]
	return f, ok
}
