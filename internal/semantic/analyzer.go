package semantic

import (
	"strings"

	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/types"
)

// funcCtx tracks the function currently being analyzed, so return
// statements can be checked against its declared return type.
type funcCtx struct {
	name       string
	returnType types.Type
}

// Analyzer walks a Program once, registering structures, globals, and
// functions in that order, and assigning a type to every expression it
// visits.
type Analyzer struct {
	symtab    *SymbolTable
	errors    []*Error
	global    *Scope
	scope     *Scope
	fn        *funcCtx // nil at global scope
	loopDepth int
}

// NewAnalyzer builds an Analyzer with built-ins already registered, so
// no user definition can shadow one.
func NewAnalyzer() *Analyzer {
	global := NewScope(nil)
	a := &Analyzer{
		symtab: NewSymbolTable(),
		global: global,
		scope:  global,
	}
	registerBuiltins(a.symtab)
	return a
}

// Analyze runs the full registration-then-body-check pass over prog
// and returns the populated symbol table and every diagnostic found.
// A non-empty error slice means prog must not be passed to the
// evaluator.
func Analyze(prog *ast.Program) (*SymbolTable, []*Error) {
	a := NewAnalyzer()
	a.analyzeProgram(prog)
	return a.symtab, a.errors
}

func (a *Analyzer) analyzeProgram(prog *ast.Program) {
	if prog.Definitions != nil {
		for _, s := range prog.Definitions.Structures {
			a.registerStructure(s)
		}
		for _, g := range prog.Definitions.Globals {
			a.analyzeVarDef(g)
		}
		for _, f := range prog.Definitions.Functions {
			a.registerFunctionSignature(f)
		}
		for _, f := range prog.Definitions.Functions {
			a.analyzeFunctionBody(f)
		}
	}
	a.analyzeStatements(prog.Statements)
}

func (a *Analyzer) registerStructure(def *ast.StructureDef) {
	key := strings.ToLower(def.Name)
	if _, exists := a.symtab.Structures[key]; exists {
		a.errorf(NameError, def.Pos(), "structure %q already defined", def.Name)
		return
	}
	info := &StructureInfo{Name: def.Name}
	offset := 0
	seen := make(map[string]bool)
	for _, f := range def.Fields {
		fkey := strings.ToLower(f.Name)
		if seen[fkey] {
			a.errorf(NameError, def.Pos(), "structure %q: duplicate field %q", def.Name, f.Name)
			continue
		}
		seen[fkey] = true
		ft := a.resolveTypeExpr(f.TypeExpr, def.Pos())
		if f.Default != nil {
			a.analyzeExpression(f.Default, false)
			if !types.Compatible(ft, f.Default.Type()) {
				a.errorf(TypeError, f.Default.Pos(), "field %q: default value of type %s is not compatible with declared type %s",
					f.Name, f.Default.Type(), ft)
			}
		}
		info.Fields = append(info.Fields, FieldInfo{Name: f.Name, Type: ft, Default: f.Default, Offset: offset})
		offset += a.widthOf(ft)
	}
	info.Width = offset
	a.symtab.Structures[key] = info
}

// widthOf is the static cell width of t: 1 for scalars and links, the
// registered width for structures, and boundsWidth*elemWidth for
// arrays with concrete bounds (0 for unspecified-bounds array types,
// which never occupy storage directly).
func (a *Analyzer) widthOf(t types.Type) int {
	switch {
	case t.IsStructure():
		if info, ok := a.symtab.Structure(t.Name); ok {
			return info.Width
		}
		return 0
	case t.IsArray():
		if len(t.Bounds) == 0 {
			return 0
		}
		width := 1
		for _, b := range t.Bounds {
			width *= b.Width()
		}
		return width * a.widthOf(*t.Elem)
	default:
		return 1
	}
}

func (a *Analyzer) registerFunctionSignature(def *ast.FunctionDef) {
	key := strings.ToLower(def.Name)
	if _, exists := a.symtab.Functions[key]; exists {
		a.errorf(NameError, def.Pos(), "function %q already defined", def.Name)
		return
	}
	info := &FunctionInfo{Name: def.Name, Decl: def}
	seen := make(map[string]bool)
	for _, p := range def.Params {
		pkey := strings.ToLower(p.Name)
		if seen[pkey] {
			a.errorf(NameError, def.Pos(), "function %q: duplicate parameter %q", def.Name, p.Name)
			continue
		}
		seen[pkey] = true
		pt := a.resolveTypeExpr(p.TypeExpr, def.Pos())
		info.Params = append(info.Params, ParamInfo{Name: p.Name, Changeable: p.Changeable, Type: pt})
	}
	if def.ReturnType == nil {
		info.ReturnType = types.Nothing
	} else {
		info.ReturnType = a.resolveTypeExpr(def.ReturnType, def.Pos())
	}
	a.symtab.Functions[key] = info
}

// analyzeFunctionBody walks a function's body in its own scope, parented
// on the global scope so functions may read and assign global variables
// but never see the caller's locals.
func (a *Analyzer) analyzeFunctionBody(def *ast.FunctionDef) {
	info, ok := a.symtab.Function(def.Name)
	if !ok {
		return
	}
	outer := a.scope
	a.scope = NewScope(a.global)
	for _, p := range info.Params {
		a.scope.Define(p.Name, p.Type)
	}
	prevFn := a.fn
	a.fn = &funcCtx{name: def.Name, returnType: info.ReturnType}
	a.analyzeStatements(def.Body)
	a.fn = prevFn
	a.scope = outer
}
