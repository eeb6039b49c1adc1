package graph

import (
	"fmt"
	"math"
)

// Value evaluates the subgraph rooted at n and returns its scalar
// result. Operands are resolved before their parents (post-order);
// evaluation is pure with respect to gradients and repeated calls
// without reassigning a leaf return identical results.
func (n Node) Value() (float64, error) {
	if n.g == nil {
		return 0, fmt.Errorf("zero-value node: %w", ErrUnsupportedOperand)
	}
	g := n.g
	seen := g.reachable(n.id)
	// Operands always carry lower ids than their parents, so ascending
	// id order over the reachable set is a post-order evaluation.
	for id := int32(0); id <= n.id; id++ {
		if !seen[id] {
			continue
		}
		if err := g.eval(id); err != nil {
			return 0, err
		}
	}
	return g.value[n.id], nil
}

// eval computes one node's value from its already-evaluated operands.
func (g *Graph) eval(id int32) error {
	switch g.kinds[id] {
	case kindLeaf:
		if !g.assigned[id] {
			return fmt.Errorf("leaf %q: %w", g.label(id), ErrUnassignedVariable)
		}
	case kindConst:
		// Fixed at construction.
	case kindInvalid:
		return g.faults[id]
	case kindOp:
		a := g.value[g.lhs[id]]
		var b float64
		if g.rhs[id] != none {
			b = g.value[g.rhs[id]]
		}
		switch g.ops[id] {
		case opAdd:
			g.value[id] = a + b
		case opSub:
			g.value[id] = a - b
		case opMul:
			g.value[id] = a * b
		case opDiv:
			if b == 0 {
				return fmt.Errorf("%g / 0: %w", a, ErrDivisionByZero)
			}
			g.value[id] = a / b
		case opPow:
			g.value[id] = math.Pow(a, b)
		case opNeg:
			g.value[id] = -a
		}
	}
	return nil
}
