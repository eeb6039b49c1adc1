package graph

import "errors"

// Evaluation errors.
//
// All of these surface at evaluation time (Value, Backward, Derivative),
// never at graph-construction time. Construction only records structure;
// a malformed composition is remembered and reported when the subgraph
// containing it is first evaluated.
var (
	// ErrUnassignedVariable is returned when evaluation reaches a leaf
	// that was never given a value with Assign.
	ErrUnassignedVariable = errors.New("unassigned variable")

	// ErrDivisionByZero is returned when a division node evaluates with
	// a zero denominator.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnsupportedOperand is returned when a composition involved an
	// operand that is not a usable node: the zero Node value, a node
	// from a different graph, or a nil Operand.
	ErrUnsupportedOperand = errors.New("unsupported operand")
)
