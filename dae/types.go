// Package dae: sentinel errors, option plumbing and small value types.
package dae

import "errors"

// Sentinel errors for System construction and mutation.
var (
	// ErrBadShape is returned when a System is constructed with a
	// negative equation or variable count.
	ErrBadShape = errors.New("dae: invalid shape")

	// ErrEqRange is returned for an equation handle outside the
	// System's universe.
	ErrEqRange = errors.New("dae: equation out of range")

	// ErrVarRange is returned for a variable handle outside the
	// System's universe.
	ErrVarRange = errors.New("dae: variable out of range")

	// ErrDerivativeExists is returned when SetDerivative would give a
	// variable a second derivative-successor.
	ErrDerivativeExists = errors.New("dae: variable already has a derivative")

	// ErrDerivativeClaimed is returned when SetDerivative would make a
	// variable the derivative of two different variables.
	ErrDerivativeClaimed = errors.New("dae: variable is already a derivative")

	// ErrDerivativeCycle is returned when recording a successor would
	// make a variable a derivative of itself, directly or through the
	// chain. The forest must stay acyclic; Level and every chain walk
	// depend on it.
	ErrDerivativeCycle = errors.New("dae: derivative chain would form a cycle")
)

// NoDerivative marks the absence of a derivative-successor (or
// predecessor) in the forest maps.
const NoDerivative = -1

// Term is one integer-coefficient summand of a linear-algebraic
// equation: Coeff·(variable Var).
type Term struct {
	Var   int
	Coeff int64
}

// Option configures System construction.
type Option func(*systemOptions)

type systemOptions struct {
	hasIndependent bool
}

// WithIndependentVariable records that the model has an independent
// (time) variable. Differentiation-chain extension requires one; a
// System without it fails such extensions with
// elim.ErrNoIndependentVariable.
func WithIndependentVariable() Option {
	return func(o *systemOptions) { o.hasIndependent = true }
}
