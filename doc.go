// Package gyard converts infix expressions to postfix (reverse Polish)
// notation with the shunting-yard algorithm.
//
// The package works on tokens, not text: the caller tokenizes its expression
// into an []InputToken, calls ToPostfix, and consumes the resulting
// []OutputToken, typically with a stack-based evaluator. The value,
// function-name and operator types are all chosen by the caller; operators
// only have to implement the two-method Operator interface. DefaultOperator
// is a ready-made operator set for callers without their own vocabulary.
//
//	val := gyard.Value[int, string, gyard.DefaultOperator]
//	op := gyard.Op[int, string, gyard.DefaultOperator]
//	fn := gyard.Function[int, string, gyard.DefaultOperator]
//	lp := gyard.LeftParen[int, string, gyard.DefaultOperator]
//	rp := gyard.RightParen[int, string, gyard.DefaultOperator]
//
//	// 5 + sin(123)
//	postfix, err := gyard.ToPostfix([]gyard.InputToken[int, string, gyard.DefaultOperator]{
//		val(5), op(gyard.OpAdd), fn("sin"), lp(), val(123), rp(),
//	})
//
// Conversion allocates all working state per call and shares nothing, so
// concurrent calls are safe.
package gyard
