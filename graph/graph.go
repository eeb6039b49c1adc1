// Copyright 2026 The Autodiff Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph builds scalar expressions as computation graphs and
// differentiates them automatically.
//
// An expression is defined once, as a directed acyclic graph of named
// leaves, constants, and arithmetic operations. Leaves are then
// assigned values any number of times; the same fixed graph evaluates
// forward (Value) and differentiates in reverse mode (Backward, exact
// gradients for every input in one pass) or forward mode (Derivative,
// one input per pass).
//
// Example:
//
//	import "github.com/rizTaak/autodiff/graph"
//
//	func main() {
//	    g := graph.New()
//	    x := g.Leaf("x")
//	    y := g.Leaf("y")
//	    z := g.Leaf("z")
//	    f := x.Mul(y).Add(y.Mul(z))
//
//	    x.Assign(3.0)
//	    y.Assign(5.0)
//	    z.Assign(11.0)
//
//	    v, _ := f.Value()  // 70.0
//	    _ = f.Backward()
//	    fmt.Println(x.Grad(), y.Grad(), z.Grad()) // 5 14 5
//	}
//
// Bare numbers enter an expression as graph.Scalar:
//
//	loss := y.Sub(f).Pow(graph.Scalar(2.0))
//
// Graphs are not safe for concurrent use: run one forward or backward
// pass at a time per graph.
package graph

import "github.com/rizTaak/autodiff/internal/graph"

// Graph is an arena owning every node of one expression DAG.
type Graph = graph.Graph

// Node is a handle to one node of a Graph.
type Node = graph.Node

// Operand is either a Node or a bare Scalar.
type Operand = graph.Operand

// Scalar is a plain number used as an operand; it is wrapped as a
// constant node at composition time.
type Scalar = graph.Scalar

// New creates an empty expression graph.
func New() *Graph {
	return graph.New()
}

// Evaluation errors.
var (
	ErrUnassignedVariable = graph.ErrUnassignedVariable
	ErrDivisionByZero     = graph.ErrDivisionByZero
	ErrUnsupportedOperand = graph.ErrUnsupportedOperand
)
