// Package elim: sentinel errors, options and the Result type.
package elim

import (
	"errors"

	"github.com/katalvlaran/daestruct/alias"
)

// Sentinel errors for elimination.
var (
	// ErrNoIndependentVariable is returned when differentiation-chain
	// extension needs to record a new derivative-successor but the
	// System declared no independent (time) variable. This is a caller
	// construction error, not a runtime condition to recover from.
	ErrNoIndependentVariable = errors.New("elim: no independent variable for differentiation-chain extension")

	// ErrSystemNil is returned if a nil System is passed.
	ErrSystemNil = errors.New("elim: system is nil")
)

// NoPivot marks a matrix row that produced no pivot.
const NoPivot = -1

// Option configures Eliminate via functional arguments.
type Option func(*options)

type options struct {
	restricted bool
}

func defaultOptions() options {
	return options{}
}

// WithRestrictedPivoting constrains pivot selection to
// linear-algebraic-only mode: the fallback that accepts a pivot from a
// row with arbitrarily many candidate columns is disabled, and the
// second (any-column) elimination phase is skipped. Fewer aliases may
// be found, but every one comes from a degree-1 or degree-2 row.
func WithRestrictedPivoting(on bool) Option {
	return func(o *options) { o.restricted = on }
}

// Result is the outcome of one Eliminate call.
type Result struct {
	// Aliases maps each eliminated variable to the constant zero or to
	// ±1 times a surviving representative.
	Aliases *alias.Graph

	// UpdatedDiffVars lists, in ascending order, the variables whose
	// derivative-successor was newly assigned during chain resolution.
	// The caller must materialize the corresponding symbolic
	// derivative expressions.
	UpdatedDiffVars []int

	// Rank1 is the rank of the purely-linear-variable block; Rank2 the
	// overall rank of the linear subsystem.
	Rank1, Rank2 int

	// Pivots records, per matrix row in final row order, the variable
	// that row eliminated (NoPivot if none).
	Pivots []int

	// RowEquations maps each matrix row, in final row order, to its
	// originating equation handle.
	RowEquations []int
}
