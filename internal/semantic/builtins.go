package semantic

import (
	"strings"

	"github.com/cwbudde/finch/internal/types"
)

// registerBuiltins populates symtab's function registry with Finch's
// built-in functions before any user function can be registered.
// Builtin FunctionInfo entries carry Decl == nil; the evaluator
// dispatches them by name instead of walking a body.
func registerBuiltins(symtab *SymbolTable) {
	def := func(name string, params []ParamInfo, ret types.Type) {
		symtab.Functions[strings.ToLower(name)] = &FunctionInfo{
			Name: name, Params: params, ReturnType: ret, Builtin: true,
		}
	}

	// display/display_line accept any number of arguments, each a number or text;
	// arity and argument-type leniency are enforced specially in
	// analyze_calls.go rather than through ParamInfo, since neither
	// number nor text alone describes "anything displayable".
	def("display", nil, types.Nothing)
	def("display_line", nil, types.Nothing)

	def("input_number", nil, types.Number)
	def("input_text", nil, types.Text)

	// length accepts an array or text; handled specially like display.
	def("length", nil, types.Number)

	def("dimensions", []ParamInfo{{Name: "a", Type: types.AnyArray}}, types.Array(types.Number, nil))
	def("lower_bound", []ParamInfo{{Name: "a", Type: types.AnyArray}}, types.Number)
	def("upper_bound", []ParamInfo{{Name: "a", Type: types.AnyArray}}, types.Number)

	def("round", []ParamInfo{{Name: "x", Type: types.Number}}, types.Number)
	def("floor", []ParamInfo{{Name: "x", Type: types.Number}}, types.Number)
	def("ceil", []ParamInfo{{Name: "x", Type: types.Number}}, types.Number)

	// random_number is registered twice over in spirit (0-arg and
	// 2-arg); arity is checked specially since FunctionInfo models one
	// fixed signature.
	def("random_number", nil, types.Number)
}

// variadicOrOverloadedBuiltins names built-ins whose arity/argument
// typing isn't a single fixed signature, so analyze_calls.go must
// special-case them instead of checking against Params.
var variadicOrOverloadedBuiltins = map[string]bool{
	"display":       true,
	"display_line":  true,
	"length":        true,
	"random_number": true,
}
