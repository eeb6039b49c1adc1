package graph

import "fmt"

// opCode tags an operation node with its arithmetic rule.
type opCode uint8

const (
	opAdd opCode = iota
	opSub
	opMul
	opDiv
	opPow
	opNeg
)

func (op opCode) symbol() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opPow:
		return "**"
	case opNeg:
		return "neg"
	default:
		return "?"
	}
}

// Operand is anything usable as the right-hand side of a composition:
// an existing Node of the same graph, or a bare Scalar that is wrapped
// as a constant node before composition.
type Operand interface {
	bind(g *Graph) (int32, error)
}

func (n Node) bind(g *Graph) (int32, error) {
	switch {
	case n.g == nil:
		return none, fmt.Errorf("zero-value node: %w", ErrUnsupportedOperand)
	case n.g != g:
		return none, fmt.Errorf("node belongs to a different graph: %w", ErrUnsupportedOperand)
	}
	return n.id, nil
}

// Scalar is a bare number appearing in an expression. It becomes a
// constant node of the other operand's graph at composition time.
type Scalar float64

func (s Scalar) bind(g *Graph) (int32, error) {
	return g.Const(float64(s)).id, nil
}

// Add returns a node computing n + v.
func (n Node) Add(v Operand) Node { return n.binary(opAdd, v) }

// Sub returns a node computing n - v.
func (n Node) Sub(v Operand) Node { return n.binary(opSub, v) }

// Mul returns a node computing n * v.
func (n Node) Mul(v Operand) Node { return n.binary(opMul, v) }

// Div returns a node computing n / v. Evaluation fails with
// ErrDivisionByZero when v evaluates to zero.
func (n Node) Div(v Operand) Node { return n.binary(opDiv, v) }

// Pow returns a node computing n ** v. The exponent is treated as a
// fixed number: Backward and Derivative push no derivative into it.
func (n Node) Pow(v Operand) Node { return n.binary(opPow, v) }

// Neg returns a node computing -n.
func (n Node) Neg() Node {
	if n.g == nil {
		return Node{}
	}
	return n.g.push(kindOp, opNeg, "", n.id, none)
}

// binary records an operation node. A malformed operand poisons the
// result instead of failing here: errors surface at evaluation time.
func (n Node) binary(op opCode, v Operand) Node {
	g := n.g
	if g == nil {
		return Node{}
	}
	if v == nil {
		return g.poison(op, fmt.Errorf("nil operand: %w", ErrUnsupportedOperand))
	}
	rhs, err := v.bind(g)
	if err != nil {
		return g.poison(op, err)
	}
	return g.push(kindOp, op, "", n.id, rhs)
}

func (g *Graph) poison(op opCode, err error) Node {
	n := g.push(kindInvalid, op, "", none, none)
	g.faults[n.id] = err
	return n
}
