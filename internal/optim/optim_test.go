package optim_test

import (
	"math"
	"testing"

	"github.com/rizTaak/autodiff/internal/graph"
	"github.com/rizTaak/autodiff/internal/optim"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	g := graph.New()
	x := g.Leaf("x")
	f := x.Mul(x)
	x.Assign(2.0)

	optimizer := optim.NewSGD([]graph.Node{x}, optim.SGDConfig{LR: 0.1})

	if err := f.Backward(); err != nil {
		t.Fatalf("Backward() failed: %v", err)
	}
	if err := optimizer.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	// grad = 2x = 4; x_new = 2.0 - 0.1*4 = 1.6
	v, err := x.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}
	if !floatEqual(v, 1.6, 1e-12) {
		t.Errorf("SGD update: got %g, want 1.6", v)
	}
}

// TestSGD_WithMomentum tests the velocity accumulation across steps.
func TestSGD_WithMomentum(t *testing.T) {
	g := graph.New()
	x := g.Leaf("x")
	f := x.Mul(graph.Scalar(1.0)) // constant gradient of 1
	x.Assign(2.0)

	optimizer := optim.NewSGD([]graph.Node{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step 1: v = 1, x = 2.0 - 0.1*1 = 1.9
	if err := f.Backward(); err != nil {
		t.Fatalf("Backward() failed: %v", err)
	}
	if err := optimizer.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	v, _ := x.Value()
	if !floatEqual(v, 1.9, 1e-12) {
		t.Errorf("after step 1: got %g, want 1.9", v)
	}

	// Step 2: v = 0.9*1 + 1 = 1.9, x = 1.9 - 0.19 = 1.71
	if err := f.Backward(); err != nil {
		t.Fatalf("Backward() failed: %v", err)
	}
	if err := optimizer.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	v, _ = x.Value()
	if !floatEqual(v, 1.71, 1e-12) {
		t.Errorf("after step 2: got %g, want 1.71", v)
	}
}

// TestSGD_DefaultLR tests the default learning rate.
func TestSGD_DefaultLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	if optimizer.GetLR() != 0.01 {
		t.Errorf("default LR = %g, want 0.01", optimizer.GetLR())
	}
}

// TestSGD_NoGradient tests Step before any backward pass.
func TestSGD_NoGradient(t *testing.T) {
	g := graph.New()
	x := g.Leaf("x")
	x.Assign(1.0)

	optimizer := optim.NewSGD([]graph.Node{x}, optim.SGDConfig{LR: 0.1})
	if err := optimizer.Step(); err == nil {
		t.Error("Step() without a backward pass should fail")
	}
}

// TestSGD_Converges minimizes f = (x-3)² to its optimum.
func TestSGD_Converges(t *testing.T) {
	g := graph.New()
	x := g.Leaf("x")
	f := x.Sub(graph.Scalar(3.0)).Pow(graph.Scalar(2.0))
	x.Assign(-4.0)

	optimizer := optim.NewSGD([]graph.Node{x}, optim.SGDConfig{LR: 0.1})
	for i := 0; i < 100; i++ {
		if err := f.Backward(); err != nil {
			t.Fatalf("Backward() failed: %v", err)
		}
		if err := optimizer.Step(); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
	}

	v, _ := x.Value()
	if !floatEqual(v, 3.0, 1e-6) {
		t.Errorf("converged to %g, want 3.0", v)
	}
}

// TestAdam_FirstStep tests the bias-corrected first update.
func TestAdam_FirstStep(t *testing.T) {
	g := graph.New()
	x := g.Leaf("x")
	f := x.Mul(x)
	x.Assign(2.0)

	optimizer := optim.NewAdam([]graph.Node{x}, optim.AdamConfig{LR: 0.5})

	if err := f.Backward(); err != nil {
		t.Fatalf("Backward() failed: %v", err)
	}
	if err := optimizer.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	// With bias correction the first step is lr * g/(|g|+eps) ≈ lr.
	v, _ := x.Value()
	if !floatEqual(v, 1.5, 1e-6) {
		t.Errorf("Adam first step: got %g, want 1.5", v)
	}
}

// TestAdam_Defaults tests the default hyperparameters.
func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(nil, optim.AdamConfig{})
	if optimizer.GetLR() != 0.001 {
		t.Errorf("default LR = %g, want 0.001", optimizer.GetLR())
	}
}

// TestAdam_Converges minimizes f = x² from a distance.
func TestAdam_Converges(t *testing.T) {
	g := graph.New()
	x := g.Leaf("x")
	f := x.Mul(x)
	x.Assign(5.0)

	optimizer := optim.NewAdam([]graph.Node{x}, optim.AdamConfig{LR: 0.1})
	for i := 0; i < 500; i++ {
		if err := f.Backward(); err != nil {
			t.Fatalf("Backward() failed: %v", err)
		}
		if err := optimizer.Step(); err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
	}

	v, _ := x.Value()
	if math.Abs(v) > 1e-2 {
		t.Errorf("converged to %g, want ~0", v)
	}
}

// TestOptimizerInterface ensures both optimizers satisfy Optimizer.
func TestOptimizerInterface(t *testing.T) {
	var _ optim.Optimizer = optim.NewSGD(nil, optim.SGDConfig{})
	var _ optim.Optimizer = optim.NewAdam(nil, optim.AdamConfig{})
}
