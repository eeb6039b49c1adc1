package optim

import (
	"math"

	"github.com/rizTaak/autodiff/internal/graph"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines ideas from RMSprop and momentum:
//   - Maintains exponential moving averages of gradients (first moment)
//   - Maintains exponential moving averages of squared gradients (second moment)
//   - Applies bias correction to compensate for initialization at zero
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)   // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []graph.Node
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int // Timestep for bias correction
	m      []float64
	v      []float64
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Moment decay rates (default: {0.9, 0.999})
	Eps   float64    // Numerical stability term (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the given leaf parameters.
func NewAdam(params []graph.Node, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas == [2]float64{} {
		config.Betas = [2]float64{0.9, 0.999}
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make([]float64, len(params)),
		v:      make([]float64, len(params)),
	}
}

// Step performs a single Adam optimization step with bias correction.
func (a *Adam) Step() error {
	a.t++
	mCorr := 1 - math.Pow(a.beta1, float64(a.t))
	vCorr := 1 - math.Pow(a.beta2, float64(a.t))

	for i, param := range a.params {
		grad, err := gradient(param)
		if err != nil {
			return err
		}
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*grad
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*grad*grad

		mHat := a.m[i] / mCorr
		vHat := a.v[i] / vCorr

		val, err := param.Value()
		if err != nil {
			return err
		}
		param.Assign(val - a.lr*mHat/(math.Sqrt(vHat)+a.eps))
	}
	return nil
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}
