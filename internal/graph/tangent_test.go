package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizTaak/autodiff/internal/graph"
)

// TestDerivative_SharedLeaf checks forward mode on f = x*y + y*z,
// one pass per input.
func TestDerivative_SharedLeaf(t *testing.T) {
	g := graph.New()
	x := g.Leaf("x")
	y := g.Leaf("y")
	z := g.Leaf("z")
	f := x.Mul(y).Add(y.Mul(z))

	x.Assign(3.0)
	y.Assign(5.0)
	z.Assign(11.0)

	dx, err := f.Derivative(x)
	require.NoError(t, err)
	dy, err := f.Derivative(y)
	require.NoError(t, err)
	dz, err := f.Derivative(z)
	require.NoError(t, err)

	assert.Equal(t, 5.0, dx)
	assert.Equal(t, 14.0, dy)
	assert.Equal(t, 5.0, dz)
}

// TestDerivative_MatchesBackward cross-checks both modes on a mixed
// expression.
func TestDerivative_MatchesBackward(t *testing.T) {
	g := graph.New()
	x := g.Leaf("x")
	y := g.Leaf("y")
	f := x.Mul(y).Sub(x.Div(y)).Add(x.Pow(graph.Scalar(3.0)))

	x.Assign(1.5)
	y.Assign(-2.0)

	require.NoError(t, f.Backward())

	dx, err := f.Derivative(x)
	require.NoError(t, err)
	dy, err := f.Derivative(y)
	require.NoError(t, err)

	assert.InDelta(t, x.Grad(), dx, 1e-12)
	assert.InDelta(t, y.Grad(), dy, 1e-12)
}

// TestDerivative_WrtUninvolvedLeaf returns zero for an input the root
// does not depend on.
func TestDerivative_WrtUninvolvedLeaf(t *testing.T) {
	g := graph.New()
	x := g.Leaf("x")
	y := g.Leaf("y")
	f := x.Mul(x)

	x.Assign(2.0)
	y.Assign(9.0)

	dy, err := f.Derivative(y)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dy)
}

// TestDerivative_Errors covers the shared failure modes with Value.
func TestDerivative_Errors(t *testing.T) {
	g := graph.New()
	x := g.Leaf("x")
	f := x.Div(graph.Scalar(0.0))
	x.Assign(1.0)

	_, err := f.Derivative(x)
	require.ErrorIs(t, err, graph.ErrDivisionByZero)

	g2 := graph.New()
	w := g2.Leaf("w")
	_, err = f.Derivative(w)
	require.ErrorIs(t, err, graph.ErrUnsupportedOperand)

	var zero graph.Node
	_, err = zero.Derivative(x)
	require.ErrorIs(t, err, graph.ErrUnsupportedOperand)
}
