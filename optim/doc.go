// Copyright 2026 The Autodiff Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for scalar expression
// graphs.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/rizTaak/autodiff/graph"
//	    "github.com/rizTaak/autodiff/optim"
//	)
//
//	func main() {
//	    g := graph.New()
//	    w := g.Leaf("w")
//	    b := g.Leaf("b")
//	    x := g.Leaf("x")
//	    y := g.Leaf("y")
//
//	    pred := w.Mul(x).Add(b)
//	    loss := y.Sub(pred).Pow(graph.Scalar(2.0))
//
//	    optimizer := optim.NewSGD([]graph.Node{w, b}, optim.SGDConfig{
//	        LR: 0.005,
//	    })
//
//	    w.Assign(0.1)
//	    b.Assign(0.0)
//	    for _, sample := range data {
//	        x.Assign(sample.X)
//	        y.Assign(sample.Y)
//	        if err := loss.Backward(); err != nil {
//	            log.Fatal(err)
//	        }
//	        if err := optimizer.Step(); err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Training Loop Pattern
//
// The graph is built once; each iteration reassigns the data leaves,
// runs Backward on the loss, and calls Step. Backward resets gradients
// at the start of every pass, so no ZeroGrad call exists or is needed.
package optim
