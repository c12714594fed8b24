package interp

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/finch/internal/ast"
	"github.com/cwbudde/finch/internal/types"
)

// dispatchBuiltin runs one of the built-ins registered in
// semantic.registerBuiltins, matched by name rather than by walking a
// Decl (built-ins have none).
func (in *Interp) dispatchBuiltin(c *ast.Call, fr *Frame) Value {
	switch strings.ToLower(c.Callee) {
	case "display":
		for _, a := range c.Args {
			in.writeOut(in.displayString(in.evalExpression(a, fr)))
		}
		return Value{Typ: types.Nothing}

	case "display_line":
		var sb strings.Builder
		for _, a := range c.Args {
			sb.WriteString(in.displayString(in.evalExpression(a, fr)))
		}
		sb.WriteByte('\n')
		in.writeOut(sb.String())
		return Value{Typ: types.Nothing}

	case "input_number":
		line := in.readLine()
		f, _ := strconv.ParseFloat(strings.TrimSpace(line), 64)
		return numberValue(f)

	case "input_text":
		return textValue(in.readLine())

	case "length":
		v := in.evalExpression(c.Args[0], fr)
		if v.Typ.IsText() {
			return numberValue(float64(len(v.Text)))
		}
		return numberValue(float64(in.store.Get(v.Addr).Header.Width()))

	case "dimensions":
		v := in.evalExpression(c.Args[0], fr)
		header := in.store.Get(v.Addr).Header
		resultType := types.Array(types.Number, []types.Bound{{Lo: 1, Hi: len(header.Bounds)}})
		resultAddr := in.allocZero(resultType)
		resultHeader := in.store.Get(resultAddr).Header
		for i, b := range header.Bounds {
			in.store.Get(resultHeader.Base + i).Num = float64(b.Width())
		}
		return Value{Typ: resultType, Addr: resultAddr}

	case "lower_bound":
		v := in.evalExpression(c.Args[0], fr)
		header := in.store.Get(v.Addr).Header
		return numberValue(float64(header.Bounds[0].Lo))

	case "upper_bound":
		v := in.evalExpression(c.Args[0], fr)
		header := in.store.Get(v.Addr).Header
		return numberValue(float64(header.Bounds[0].Hi))

	case "round":
		return numberValue(math.Round(in.evalExpression(c.Args[0], fr).Num))

	case "floor":
		return numberValue(math.Floor(in.evalExpression(c.Args[0], fr).Num))

	case "ceil":
		return numberValue(math.Ceil(in.evalExpression(c.Args[0], fr).Num))

	case "random_number":
		if len(c.Args) == 0 {
			return numberValue(in.rng.Float64())
		}
		lo := in.evalExpression(c.Args[0], fr).Num
		hi := in.evalExpression(c.Args[1], fr).Num
		return numberValue(lo + in.rng.Float64()*(hi-lo))

	default:
		in.raise(FatalError, c.Pos(), "unimplemented built-in %q", c.Callee)
		return Value{}
	}
}

func (in *Interp) writeOut(s string) {
	_, _ = in.out.Write([]byte(s))
}

func (in *Interp) readLine() string {
	line, _ := in.in.ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}
