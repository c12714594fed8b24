package interp

import "github.com/cwbudde/finch/internal/types"

// Value is the result of evaluating an expression: a number or text
// held directly, or — for arrays, structures, and links — the cell
// address where the value actually lives.
type Value struct {
	Typ  types.Type
	Num  float64
	Text string
	Addr int // meaningful when Typ is an array, structure, or link
}

func numberValue(n float64) Value { return Value{Typ: types.Number, Num: n} }
func textValue(s string) Value    { return Value{Typ: types.Text, Text: s} }

// truthy is Finch's boolean convention: zero is false, any other
// number is true.
func (v Value) truthy() bool { return v.Num != 0 }
