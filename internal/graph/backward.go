package graph

import (
	"fmt"
	"math"
)

// Backward computes the derivative of n with respect to every node
// reachable from it, using reverse-mode automatic differentiation.
//
// Algorithm:
//  1. Run the forward pass so every reachable node's value is current
//     (local gradient rules read operand values, e.g. d(a*b)/da = b).
//  2. Zero the grad of every reachable node; seed n's grad with 1.0.
//  3. Walk the reachable set in descending id order. Ids are assigned
//     at construction and operands always precede parents, so this is
//     a topological root-to-leaves order: a node's grad has received
//     every parent's contribution before the node pushes its own
//     contribution down to its operands.
//  4. For each operation, add (never overwrite) the chain-rule partial
//     into each operand's grad. Accumulation is what makes gradients
//     correct when a node is shared by several parents.
//
// Grads from a previous Backward call do not carry over: every pass
// starts from zero, so calling Backward twice in a row yields the same
// gradients twice.
func (n Node) Backward() error {
	if n.g == nil {
		return fmt.Errorf("zero-value node: %w", ErrUnsupportedOperand)
	}
	if _, err := n.Value(); err != nil {
		return err
	}
	g := n.g
	seen := g.reachable(n.id)
	for id := int32(0); id <= n.id; id++ {
		if seen[id] {
			g.grad[id] = 0
		}
	}
	g.grad[n.id] = 1.0

	for id := n.id; id >= 0; id-- {
		if !seen[id] || g.kinds[id] != kindOp {
			continue
		}
		up := g.grad[id]
		l, r := g.lhs[id], g.rhs[id]
		a := g.value[l]
		var b float64
		if r != none {
			b = g.value[r]
		}
		switch g.ops[id] {
		case opAdd:
			g.grad[l] += up
			g.grad[r] += up
		case opSub:
			g.grad[l] += up
			g.grad[r] -= up
		case opMul:
			g.grad[l] += up * b
			g.grad[r] += up * a
		case opDiv:
			g.grad[l] += up / b
			g.grad[r] -= up * a / (b * b)
		case opPow:
			// Exponent is treated as a fixed number.
			g.grad[l] += up * b * math.Pow(a, b-1)
		case opNeg:
			g.grad[l] -= up
		}
	}
	return nil
}
