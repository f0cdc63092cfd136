package gyard

import (
	"errors"
	"fmt"
)

// The two structural defects ToPostfix detects. Returned errors match these
// with errors.Is; anything else about the input is taken on trust.
var (
	ErrUnmatchedLeftParen  = errors.New("unmatched '('")
	ErrUnmatchedRightParen = errors.New("unmatched ')'")
)

type stackKind int

const (
	stackOperator stackKind = iota
	stackLeftParen
	stackFunction
)

// stackToken is one entry of the converter's working stack. Keeping
// operators, parenthesis markers and function markers in a single tagged
// stack preserves their relative order, which is what the right-paren and
// end-of-input rules depend on.
type stackToken[F, O any] struct {
	kind stackKind
	fn   F
	op   O
}

// ToPostfix converts an infix token sequence into the equivalent postfix
// (reverse Polish) sequence using the shunting-yard algorithm, extended with
// function-call grouping and argument separators.
//
// Operand/operator adjacency is not validated; the only defects detected are
// unbalanced parentheses, reported as ErrUnmatchedLeftParen or
// ErrUnmatchedRightParen. On error no partial output is returned.
//
// The conversion is a pure function of its input. It allocates all working
// state per call and is safe to invoke from concurrent goroutines as long as
// the operator implementation is.
func ToPostfix[V, F any, O Operator](infix []InputToken[V, F, O]) ([]OutputToken[V, F, O], error) {
	out := make([]OutputToken[V, F, O], 0, len(infix))
	var stack []stackToken[F, O]

	for i, tok := range infix {
		switch tok.Kind {
		case KindValue:
			out = append(out, OutputToken[V, F, O]{Kind: KindValue, Value: tok.Value})

		case KindFunction:
			stack = append(stack, stackToken[F, O]{kind: stackFunction, fn: tok.Func})

		case KindLeftParen:
			stack = append(stack, stackToken[F, O]{kind: stackLeftParen})

		case KindOperator:
			// Pop operators that bind at least as tight, without ever
			// crossing a parenthesis or function marker.
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != stackOperator {
					break
				}
				if top.op.Precedence() < tok.Op.Precedence() ||
					(top.op.Precedence() == tok.Op.Precedence() && !tok.Op.IsLeftAssociative()) {
					break
				}
				out = append(out, OutputToken[V, F, O]{Kind: KindOperator, Op: top.op})
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, stackToken[F, O]{kind: stackOperator, op: tok.Op})

		case KindArgSeparator:
			// Flush the finished argument's operators up to the enclosing
			// paren. The paren and function markers stay put.
			for len(stack) > 0 && stack[len(stack)-1].kind == stackOperator {
				top := stack[len(stack)-1]
				out = append(out, OutputToken[V, F, O]{Kind: KindOperator, Op: top.op})
				stack = stack[:len(stack)-1]
			}

		case KindRightParen:
			for len(stack) > 0 && stack[len(stack)-1].kind == stackOperator {
				top := stack[len(stack)-1]
				out = append(out, OutputToken[V, F, O]{Kind: KindOperator, Op: top.op})
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 || stack[len(stack)-1].kind != stackLeftParen {
				return nil, fmt.Errorf("token %d: %w", i, ErrUnmatchedRightParen)
			}
			stack = stack[:len(stack)-1]
			// A parenthesized group directly after a function marker is
			// that function's argument list, so the call completes here.
			if len(stack) > 0 && stack[len(stack)-1].kind == stackFunction {
				top := stack[len(stack)-1]
				out = append(out, OutputToken[V, F, O]{Kind: KindFunction, Func: top.fn})
				stack = stack[:len(stack)-1]
			}
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		switch stack[i].kind {
		case stackLeftParen:
			return nil, ErrUnmatchedLeftParen
		case stackFunction:
			out = append(out, OutputToken[V, F, O]{Kind: KindFunction, Func: stack[i].fn})
		case stackOperator:
			out = append(out, OutputToken[V, F, O]{Kind: KindOperator, Op: stack[i].op})
		}
	}
	return out, nil
}
