// Package graph implements scalar expression graphs with forward
// evaluation and both reverse-mode and forward-mode automatic
// differentiation.
//
// Architecture:
//   - Arena storage: a Graph owns every node; node state (kind, operands,
//     value, grad, tangent) lives in parallel slices indexed by node id
//   - Node: a cheap handle {graph, id} returned to callers; sharing a
//     Node between two expressions shares the underlying subgraph
//   - Construction is append-only, so an operation's operands always have
//     lower ids than the operation itself. Ascending id order over a
//     reachable set is therefore a valid evaluation order, and descending
//     id order a valid root-to-leaves order for backpropagation.
//
// Usage:
//
//	g := graph.New()
//	x := g.Leaf("x")
//	y := g.Leaf("y")
//	f := x.Mul(y).Add(y.Mul(graph.Scalar(2.0)))
//
//	x.Assign(3.0)
//	y.Assign(5.0)
//	v, err := f.Value()  // 25.0
//	err = f.Backward()
//	dx := x.Grad()       // 5.0
package graph

import (
	"math"
	"strconv"
)

type nodeKind uint8

const (
	kindLeaf nodeKind = iota
	kindConst
	kindOp
	kindInvalid
)

// none marks an absent operand slot (unary ops, non-op nodes).
const none int32 = -1

// Graph is an arena of expression nodes. All nodes created through a
// Graph belong to it for the Graph's whole lifetime; nodes are never
// removed individually.
//
// A Graph is not safe for concurrent use. Forward and backward passes
// mutate per-node state in place and must run one at a time.
type Graph struct {
	kinds []nodeKind
	ops   []opCode
	names []string // leaf names, "" elsewhere
	lhs   []int32
	rhs   []int32

	value    []float64 // last computed (or assigned) value, NaN until known
	grad     []float64 // adjoint of the last Backward root, NaN until a pass runs
	tangent  []float64 // forward-mode derivative of the last Derivative call
	assigned []bool    // leaves: value has been set; constants: always true

	faults map[int32]error // poisoned nodes from malformed compositions
}

// New creates an empty expression graph.
func New() *Graph {
	return &Graph{faults: make(map[int32]error)}
}

// Node is a handle to one node of a Graph. The zero Node is invalid;
// composing with it or evaluating it fails with ErrUnsupportedOperand.
type Node struct {
	g  *Graph
	id int32
}

func (g *Graph) push(k nodeKind, op opCode, name string, lhs, rhs int32) Node {
	id := int32(len(g.kinds))
	g.kinds = append(g.kinds, k)
	g.ops = append(g.ops, op)
	g.names = append(g.names, name)
	g.lhs = append(g.lhs, lhs)
	g.rhs = append(g.rhs, rhs)
	g.value = append(g.value, math.NaN())
	g.grad = append(g.grad, math.NaN())
	g.tangent = append(g.tangent, math.NaN())
	g.assigned = append(g.assigned, k == kindConst)
	return Node{g: g, id: id}
}

// Leaf creates a named input node. The node has no value until Assign
// is called; evaluating a subgraph containing an unassigned leaf fails
// with ErrUnassignedVariable. The name is used only for display.
func (g *Graph) Leaf(name string) Node {
	return g.push(kindLeaf, 0, name, none, none)
}

// Const creates an immutable scalar node. Bare numbers used as operands
// (see Scalar) are wrapped this way before composition.
func (g *Graph) Const(v float64) Node {
	n := g.push(kindConst, 0, "", none, none)
	g.value[n.id] = v
	return n
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.kinds) }

// Assign sets the leaf's value, overwriting any previous one. A leaf
// may be reassigned freely between passes; this is how a training loop
// feeds new data through a fixed graph.
//
// Assign panics when called on anything but a leaf.
func (n Node) Assign(v float64) {
	if n.g == nil || n.g.kinds[n.id] != kindLeaf {
		panic("graph: Assign on non-leaf node")
	}
	n.g.value[n.id] = v
	n.g.assigned[n.id] = true
}

// Name returns the leaf's name, or "" for any other node kind.
func (n Node) Name() string {
	if n.g == nil {
		return ""
	}
	return n.g.names[n.id]
}

// Grad returns the derivative of the most recent Backward root with
// respect to this node. It is NaN until a backward pass has run, and is
// only meaningful relative to that pass's root.
func (n Node) Grad() float64 {
	if n.g == nil {
		return math.NaN()
	}
	return n.g.grad[n.id]
}

// label returns the display name of a node: the leaf name (or #id when
// unnamed), the constant's value, or the operator symbol.
func (g *Graph) label(id int32) string {
	switch g.kinds[id] {
	case kindLeaf:
		if g.names[id] == "" {
			return "#" + strconv.Itoa(int(id))
		}
		return g.names[id]
	case kindConst:
		return strconv.FormatFloat(g.value[id], 'g', -1, 64)
	case kindOp:
		return g.ops[id].symbol()
	default:
		return "!"
	}
}

// reachable marks every node in the subgraph rooted at root, using an
// explicit stack so that graph depth never translates into call-stack
// depth.
func (g *Graph) reachable(root int32) []bool {
	seen := make([]bool, len(g.kinds))
	seen[root] = true
	stack := []int32{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if g.kinds[id] != kindOp {
			continue
		}
		for _, c := range []int32{g.lhs[id], g.rhs[id]} {
			if c != none && !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}
	return seen
}
