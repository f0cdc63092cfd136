package gyard

// Operator describes the two parsing properties the converter needs from an
// operator. Callers implement it on their own operator vocabulary; the
// converter never inspects an operator beyond these two queries, so any
// enum-like or struct type works. Implementations must be side-effect free
// and safe to query concurrently.
type Operator interface {
	// Precedence returns the binding rank of the operator.
	// A larger rank binds tighter.
	Precedence() uint

	// IsLeftAssociative reports how operators of equal precedence group:
	// true groups left-to-right, false right-to-left.
	IsLeftAssociative() bool
}
