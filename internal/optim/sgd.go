package optim

import "github.com/rizTaak/autodiff/internal/graph"

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum helps accelerate SGD in relevant directions and dampens
// oscillations.
type SGD struct {
	params     []graph.Node
	lr         float64
	momentum   float64
	velocities []float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given leaf parameters.
func NewSGD(params []graph.Node, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make([]float64, len(params)),
	}
}

// Step performs a single optimization step:
//   - Without momentum: param -= lr * grad
//   - With momentum: velocity = momentum*velocity + grad, param -= lr * velocity
func (s *SGD) Step() error {
	for i, param := range s.params {
		grad, err := gradient(param)
		if err != nil {
			return err
		}
		if s.momentum != 0 {
			s.velocities[i] = s.momentum*s.velocities[i] + grad
			grad = s.velocities[i]
		}
		v, err := param.Value()
		if err != nil {
			return err
		}
		param.Assign(v - s.lr*grad)
	}
	return nil
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}
