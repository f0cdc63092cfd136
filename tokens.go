package gyard

import "fmt"

// Kind identifies the variant held by a token.
type Kind int

const (
	KindValue Kind = iota
	KindOperator
	KindFunction
	KindLeftParen
	KindRightParen
	KindArgSeparator
)

func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindOperator:
		return "operator"
	case KindFunction:
		return "function"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindArgSeparator:
		return ","
	default:
		return "?"
	}
}

// InputToken is one element of an infix expression, in left-to-right written
// order. V is the caller's value type, F the function-name type and O the
// operator type. Kind selects which of Value, Func and Op is meaningful;
// parenthesis and argument-separator tokens carry no payload.
//
// Values are opaque to the conversion and pass through unexamined.
type InputToken[V, F, O any] struct {
	Kind  Kind
	Value V
	Func  F
	Op    O
}

// Constructor helpers, one per kind. Go cannot infer F and O from a value
// argument alone, so callers typically instantiate them once per token
// vocabulary and reuse the resulting func values:
//
//	val := gyard.Value[float64, string, gyard.DefaultOperator]
//	op := gyard.Op[float64, string, gyard.DefaultOperator]

func Value[V, F, O any](v V) InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: KindValue, Value: v}
}

func Op[V, F, O any](o O) InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: KindOperator, Op: o}
}

func Function[V, F, O any](fn F) InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: KindFunction, Func: fn}
}

func LeftParen[V, F, O any]() InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: KindLeftParen}
}

func RightParen[V, F, O any]() InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: KindRightParen}
}

func ArgSeparator[V, F, O any]() InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: KindArgSeparator}
}

func (t InputToken[V, F, O]) String() string {
	switch t.Kind {
	case KindValue:
		return fmt.Sprintf("value: %v", t.Value)
	case KindOperator:
		return fmt.Sprintf("operator: %v", t.Op)
	case KindFunction:
		return fmt.Sprintf("function: %v", t.Func)
	default:
		return t.Kind.String()
	}
}

// OutputToken is one element of a postfix expression. Only KindValue,
// KindOperator and KindFunction occur; parentheses do not survive conversion.
type OutputToken[V, F, O any] struct {
	Kind  Kind
	Value V
	Func  F
	Op    O
}

func (t OutputToken[V, F, O]) String() string {
	switch t.Kind {
	case KindValue:
		return fmt.Sprintf("value: %v", t.Value)
	case KindOperator:
		return fmt.Sprintf("operator: %v", t.Op)
	case KindFunction:
		return fmt.Sprintf("function: %v", t.Func)
	default:
		return t.Kind.String()
	}
}
