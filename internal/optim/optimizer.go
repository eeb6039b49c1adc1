// Package optim implements optimization algorithms over scalar graph
// leaves.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// An optimizer holds the leaf nodes being trained. The caller runs the
// backward pass; Step then reads each leaf's gradient and reassigns the
// leaf in place:
//
//	optimizer := optim.NewSGD([]graph.Node{w, b}, optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    x.Assign(sample.x)
//	    y.Assign(sample.y)
//	    if err := loss.Backward(); err != nil {
//	        return err
//	    }
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	}
//
// There is no ZeroGrad: every Backward call resets gradients before
// accumulating, so stale grads cannot leak across iterations.
package optim

import (
	"fmt"
	"math"

	"github.com/rizTaak/autodiff/internal/graph"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to all parameters, reading each
	// leaf's grad from the most recent backward pass. It fails when a
	// parameter has no gradient yet.
	Step() error

	// GetLR returns the current learning rate, for monitoring and
	// scheduling.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// gradient reads a parameter's gradient, rejecting leaves that never
// saw a backward pass.
func gradient(param graph.Node) (float64, error) {
	g := param.Grad()
	if math.IsNaN(g) {
		return 0, fmt.Errorf("parameter %q has no gradient (run Backward first)", param.Name())
	}
	return g, nil
}
