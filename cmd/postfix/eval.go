package main

import (
	"fmt"
	"math"

	"github.com/Julian-Alberts/gyard"
)

// Postfix evaluation is also the caller's job; this stack machine covers the
// command's vocabulary. Comparisons and logic operators work on 1 and 0.

var builtins = map[string]struct {
	arity int
	fn    func(args []float64) float64
}{
	"sin":  {1, func(a []float64) float64 { return math.Sin(a[0]) }},
	"cos":  {1, func(a []float64) float64 { return math.Cos(a[0]) }},
	"sqrt": {1, func(a []float64) float64 { return math.Sqrt(a[0]) }},
	"abs":  {1, func(a []float64) float64 { return math.Abs(a[0]) }},
	"max":  {2, func(a []float64) float64 { return math.Max(a[0], a[1]) }},
	"min":  {2, func(a []float64) float64 { return math.Min(a[0], a[1]) }},
}

func evaluate(postfix []outputToken) (float64, error) {
	var stack []float64

	for _, tok := range postfix {
		switch tok.Kind {
		case gyard.KindValue:
			stack = append(stack, tok.Value)

		case gyard.KindOperator:
			if len(stack) < 2 {
				return 0, fmt.Errorf("missing operand for '%v'", tok.Op)
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = append(stack[:len(stack)-2], applyOperator(tok.Op, a, b))

		case gyard.KindFunction:
			builtin, ok := builtins[tok.Func]
			if !ok {
				return 0, fmt.Errorf("unknown function %q", tok.Func)
			}
			if len(stack) < builtin.arity {
				return 0, fmt.Errorf("missing argument for %q", tok.Func)
			}
			args := stack[len(stack)-builtin.arity:]
			stack = append(stack[:len(stack)-builtin.arity], builtin.fn(args))
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("expression left %d values instead of one", len(stack))
	}
	return stack[0], nil
}

func applyOperator(op gyard.DefaultOperator, a, b float64) float64 {
	switch op {
	case gyard.OpAdd:
		return a + b
	case gyard.OpSub:
		return a - b
	case gyard.OpMul:
		return a * b
	case gyard.OpDiv:
		return a / b
	case gyard.OpPow:
		return math.Pow(a, b)
	case gyard.OpLess:
		return boolValue(a < b)
	case gyard.OpLessEq:
		return boolValue(a <= b)
	case gyard.OpGreater:
		return boolValue(a > b)
	case gyard.OpGreaterEq:
		return boolValue(a >= b)
	case gyard.OpEq:
		return boolValue(a == b)
	case gyard.OpNotEq:
		return boolValue(a != b)
	case gyard.OpAnd:
		return boolValue(a != 0 && b != 0)
	case gyard.OpOr:
		return boolValue(a != 0 || b != 0)
	case gyard.OpXor:
		return boolValue((a != 0) != (b != 0))
	default:
		panic("unknown operator")
	}
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
