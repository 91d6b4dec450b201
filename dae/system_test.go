package dae_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/daestruct/dae"
)

func TestNewSystem(t *testing.T) {
	_, err := dae.NewSystem(-1, 0)
	require.ErrorIs(t, err, dae.ErrBadShape)
	_, err = dae.NewSystem(0, -1)
	require.ErrorIs(t, err, dae.ErrBadShape)

	s, err := dae.NewSystem(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, s.NumEquations())
	require.Equal(t, 3, s.NumVariables())
	require.False(t, s.HasIndependentVariable())
	require.Equal(t, 2, s.Graph().NumEquations())
	require.Equal(t, 3, s.Graph().NumVariables())

	s, err = dae.NewSystem(0, 0, dae.WithIndependentVariable())
	require.NoError(t, err)
	require.True(t, s.HasIndependentVariable())
}

func TestSetDerivative(t *testing.T) {
	s, err := dae.NewSystem(0, 4)
	require.NoError(t, err)

	require.NoError(t, s.SetDerivative(0, 1))
	// identical re-recording is a no-op
	require.NoError(t, s.SetDerivative(0, 1))

	// a second successor for 0 is rejected
	require.ErrorIs(t, s.SetDerivative(0, 2), dae.ErrDerivativeExists)
	// a second predecessor for 1 is rejected
	require.ErrorIs(t, s.SetDerivative(3, 1), dae.ErrDerivativeClaimed)

	// range checks
	require.ErrorIs(t, s.SetDerivative(-1, 0), dae.ErrVarRange)
	require.ErrorIs(t, s.SetDerivative(0, 4), dae.ErrVarRange)

	dv, ok := s.Derivative(0)
	require.True(t, ok)
	require.Equal(t, 1, dv)
	lv, ok := s.Lower(1)
	require.True(t, ok)
	require.Equal(t, 0, lv)

	_, ok = s.Derivative(1)
	require.False(t, ok)
	_, ok = s.Lower(0)
	require.False(t, ok)
	_, ok = s.Derivative(-5)
	require.False(t, ok)
}

func TestRelinkDerivative(t *testing.T) {
	s, err := dae.NewSystem(0, 4)
	require.NoError(t, err)
	// chain 0→1 plus an unrelated claim 2→3
	require.NoError(t, s.SetDerivative(0, 1))
	require.NoError(t, s.SetDerivative(2, 3))

	// re-anchor 3 under 1: the old predecessor 2 must be detached
	require.NoError(t, s.RelinkDerivative(1, 3))

	dv, ok := s.Derivative(1)
	require.True(t, ok)
	require.Equal(t, 3, dv)
	lv, ok := s.Lower(3)
	require.True(t, ok)
	require.Equal(t, 1, lv)
	_, ok = s.Derivative(2)
	require.False(t, ok, "previous predecessor must be detached")

	// identical re-recording is a no-op
	require.NoError(t, s.RelinkDerivative(1, 3))
	// the target may not already have a different successor
	require.ErrorIs(t, s.RelinkDerivative(0, 3), dae.ErrDerivativeExists)
	require.ErrorIs(t, s.RelinkDerivative(0, 9), dae.ErrVarRange)
}

func TestDerivativeCycleRejected(t *testing.T) {
	s, err := dae.NewSystem(0, 3)
	require.NoError(t, err)

	// a variable may not be its own derivative
	require.ErrorIs(t, s.SetDerivative(0, 0), dae.ErrDerivativeCycle)

	// nor may the chain close back onto one of its predecessors
	require.NoError(t, s.SetDerivative(0, 1))
	require.ErrorIs(t, s.SetDerivative(1, 0), dae.ErrDerivativeCycle)

	require.NoError(t, s.SetDerivative(1, 2))
	require.ErrorIs(t, s.RelinkDerivative(2, 0), dae.ErrDerivativeCycle)
	require.ErrorIs(t, s.RelinkDerivative(2, 2), dae.ErrDerivativeCycle)

	// the rejected attempts must leave the forest untouched: the walk
	// below would not terminate otherwise
	require.Equal(t, 2, s.Level(2))
	_, ok := s.Derivative(2)
	require.False(t, ok)
	lv, ok := s.Lower(0)
	require.False(t, ok)
	require.Equal(t, dae.NoDerivative, lv)
}

func TestLevel(t *testing.T) {
	s, err := dae.NewSystem(0, 4)
	require.NoError(t, err)
	// 0 → 1 → 2, 3 isolated
	require.NoError(t, s.SetDerivative(0, 1))
	require.NoError(t, s.SetDerivative(1, 2))

	require.Equal(t, 0, s.Level(0))
	require.Equal(t, 1, s.Level(1))
	require.Equal(t, 2, s.Level(2))
	require.Equal(t, 0, s.Level(3))
}

func TestSetLinearEquation(t *testing.T) {
	s, err := dae.NewSystem(2, 4)
	require.NoError(t, err)

	// duplicate variables are merged: 2·v1 + 3·v1 = 5·v1
	err = s.SetLinearEquation(0, []dae.Term{
		{Var: 0, Coeff: 1},
		{Var: 1, Coeff: 2},
		{Var: 1, Coeff: 3},
	})
	require.NoError(t, err)
	require.True(t, s.IsLinear(0))

	c, ok := s.Coefficient(0, 1)
	require.True(t, ok)
	require.Equal(t, int64(5), c)
	c, ok = s.Coefficient(0, 0)
	require.True(t, ok)
	require.Equal(t, int64(1), c)
	_, ok = s.Coefficient(0, 2)
	require.False(t, ok)

	// incidence edges track exactly the term variables
	ns, err := s.Graph().EquationNeighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, ns)

	// terms summing to zero are dropped from both maps
	err = s.SetLinearEquation(0, []dae.Term{
		{Var: 0, Coeff: 2},
		{Var: 1, Coeff: 4},
		{Var: 1, Coeff: -4},
	})
	require.NoError(t, err)
	_, ok = s.Coefficient(0, 1)
	require.False(t, ok)
	ns, _ = s.Graph().EquationNeighbors(0)
	require.Equal(t, []int{0}, ns)

	// an all-cancelling equation ends up with no incidence at all
	require.NoError(t, s.SetLinearEquation(0, []dae.Term{
		{Var: 2, Coeff: 7},
		{Var: 2, Coeff: -7},
	}))
	ns, _ = s.Graph().EquationNeighbors(0)
	require.Empty(t, ns)
	require.True(t, s.IsLinear(0))

	require.ErrorIs(t, s.SetLinearEquation(5, nil), dae.ErrEqRange)
	require.ErrorIs(t, s.SetLinearEquation(0, []dae.Term{{Var: 9, Coeff: 1}}), dae.ErrVarRange)
}

func TestSetIncidence(t *testing.T) {
	s, err := dae.NewSystem(1, 3)
	require.NoError(t, err)

	// start linear, then demote to structural-only
	require.NoError(t, s.SetLinearEquation(0, []dae.Term{{Var: 0, Coeff: 2}}))
	require.NoError(t, s.SetIncidence(0, []int{1, 2}))

	require.False(t, s.IsLinear(0))
	_, ok := s.Coefficient(0, 0)
	require.False(t, ok, "coefficients must be cleared on demotion")
	ns, _ := s.Graph().EquationNeighbors(0)
	require.Equal(t, []int{1, 2}, ns)

	require.ErrorIs(t, s.SetIncidence(1, nil), dae.ErrEqRange)
	require.ErrorIs(t, s.SetIncidence(0, []int{-1}), dae.ErrVarRange)
}

func TestIrreducible(t *testing.T) {
	s, err := dae.NewSystem(0, 2)
	require.NoError(t, err)

	require.False(t, s.IsIrreducible(0))
	s.MarkIrreducible(0)
	require.True(t, s.IsIrreducible(0))
	require.False(t, s.IsIrreducible(1))

	// out-of-range handles are silently ignored
	s.MarkIrreducible(17)
	require.False(t, s.IsIrreducible(17))
}
