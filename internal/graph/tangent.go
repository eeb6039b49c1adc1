package graph

import (
	"fmt"
	"math"
)

// Derivative computes d(n)/d(wrt) using forward-mode automatic
// differentiation: tangents propagate leaves-to-root in a single pass,
// with wrt seeded at 1.0 and every other input at 0.0.
//
// Forward mode costs one pass per input, where Backward yields every
// input's gradient in one pass; it is kept because one pass per
// parameter is the cheaper shape when a loop only ever asks for one or
// two derivatives. wrt should be a leaf (or constant) of the same
// graph.
//
// The per-node tangent of the most recent Derivative call is the
// "forward" field shown by Render.
func (n Node) Derivative(wrt Node) (float64, error) {
	if n.g == nil {
		return 0, fmt.Errorf("zero-value node: %w", ErrUnsupportedOperand)
	}
	if wrt.g != n.g {
		return 0, fmt.Errorf("wrt node belongs to a different graph: %w", ErrUnsupportedOperand)
	}
	if _, err := n.Value(); err != nil {
		return 0, err
	}
	g := n.g
	seen := g.reachable(n.id)
	for id := int32(0); id <= n.id; id++ {
		if !seen[id] {
			continue
		}
		switch g.kinds[id] {
		case kindLeaf, kindConst:
			if id == wrt.id {
				g.tangent[id] = 1.0
			} else {
				g.tangent[id] = 0.0
			}
		case kindOp:
			l, r := g.lhs[id], g.rhs[id]
			ta := g.tangent[l]
			a := g.value[l]
			var tb, b float64
			if r != none {
				tb = g.tangent[r]
				b = g.value[r]
			}
			switch g.ops[id] {
			case opAdd:
				g.tangent[id] = ta + tb
			case opSub:
				g.tangent[id] = ta - tb
			case opMul:
				g.tangent[id] = ta*b + a*tb
			case opDiv:
				// b != 0: the forward pass above would have failed.
				g.tangent[id] = (ta*b - a*tb) / (b * b)
			case opPow:
				// Exponent is treated as a fixed number.
				g.tangent[id] = ta * b * math.Pow(a, b-1)
			case opNeg:
				g.tangent[id] = -ta
			}
		}
	}
	return g.tangent[n.id], nil
}
