package gyard

// DefaultOperator is a ready-made operator set covering common arithmetic,
// comparison and logical operators. Precedence ranks follow the JavaScript
// operator precedence table:
// https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_precedence
//
// It is purely a convenience; any type implementing Operator can replace it.
type DefaultOperator int

const (
	OpAdd DefaultOperator = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpEq
	OpNotEq
	OpXor
	OpAnd
	OpOr
)

func (o DefaultOperator) Precedence() uint {
	switch o {
	case OpOr:
		return 3
	case OpAnd:
		return 4
	case OpXor:
		return 6
	case OpEq, OpNotEq:
		return 8
	case OpLess, OpLessEq, OpGreater, OpGreaterEq:
		return 9
	case OpAdd, OpSub:
		return 11
	case OpMul, OpDiv:
		return 12
	case OpPow:
		return 13
	default:
		// Out-of-range values get the loosest rank instead of a panic.
		return 0
	}
}

// IsLeftAssociative reports true for every default operator except
// exponentiation, which groups right-to-left.
func (o DefaultOperator) IsLeftAssociative() bool {
	return o != OpPow
}

func (o DefaultOperator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpEq:
		return "=="
	case OpNotEq:
		return "!="
	case OpXor:
		return "xor"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "?"
	}
}
