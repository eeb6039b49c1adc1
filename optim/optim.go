// Copyright 2026 The Autodiff Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/rizTaak/autodiff/graph"
	"github.com/rizTaak/autodiff/internal/optim"
)

// Optimizer is the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config is the base configuration for optimizers.
type Config = optim.Config

// SGD (Stochastic Gradient Descent)

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given leaf nodes.
//
// Example:
//
//	optimizer := optim.NewSGD(
//	    []graph.Node{w, b},
//	    optim.SGDConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD(params []graph.Node, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer over the given leaf nodes.
//
// Example:
//
//	optimizer := optim.NewAdam(
//	    []graph.Node{w, b},
//	    optim.AdamConfig{
//	        LR:    0.001,
//	        Betas: [2]float64{0.9, 0.999},
//	    },
//	)
func NewAdam(params []graph.Node, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
