// Package dae: the System container and its accessors.
package dae

import (
	"fmt"

	"github.com/katalvlaran/daestruct/bipartite"
)

// System is the caller-owned description of a DAE's structure. All
// mutation is in place; a System is not safe for concurrent use (the
// elimination call owns it exclusively for its duration).
type System struct {
	graph *bipartite.Graph

	varToDiff []int // derivative-successor per variable, NoDerivative if none
	diffToVar []int // inverse of varToDiff

	linear      []bool            // per equation: purely linear-algebraic?
	coeffs      []map[int]int64   // per linear equation: variable → coefficient
	irreducible []bool            // per variable: excluded from elimination?

	hasIndependent bool
}

// NewSystem creates a System over nEqs equations and nVars variables
// with an empty incidence graph and derivative forest.
// Returns ErrBadShape for negative counts.
// Complexity: O(nEqs + nVars).
func NewSystem(nEqs, nVars int, opts ...Option) (*System, error) {
	if nEqs < 0 || nVars < 0 {
		return nil, fmt.Errorf("dae: NewSystem(%d,%d): %w", nEqs, nVars, ErrBadShape)
	}
	var o systemOptions
	for _, opt := range opts {
		opt(&o)
	}

	g, err := bipartite.NewGraph(nEqs, nVars)
	if err != nil {
		return nil, err
	}
	s := &System{
		graph:          g,
		varToDiff:      make([]int, nVars),
		diffToVar:      make([]int, nVars),
		linear:         make([]bool, nEqs),
		coeffs:         make([]map[int]int64, nEqs),
		irreducible:    make([]bool, nVars),
		hasIndependent: o.hasIndependent,
	}
	for v := 0; v < nVars; v++ {
		s.varToDiff[v] = NoDerivative
		s.diffToVar[v] = NoDerivative
	}

	return s, nil
}

// NumEquations returns the equation count. Complexity: O(1).
func (s *System) NumEquations() int { return len(s.linear) }

// NumVariables returns the variable count. Complexity: O(1).
func (s *System) NumVariables() int { return len(s.varToDiff) }

// Graph exposes the borrowed incidence graph. Elimination mutates it
// in place; it reflects final state when Eliminate returns.
func (s *System) Graph() *bipartite.Graph { return s.graph }

// HasIndependentVariable reports whether the model declared an
// independent (time) variable.
func (s *System) HasIndependentVariable() bool { return s.hasIndependent }

func (s *System) checkEq(e int) error {
	if e < 0 || e >= len(s.linear) {
		return fmt.Errorf("dae: equation %d: %w", e, ErrEqRange)
	}

	return nil
}

func (s *System) checkVar(v int) error {
	if v < 0 || v >= len(s.varToDiff) {
		return fmt.Errorf("dae: variable %d: %w", v, ErrVarRange)
	}

	return nil
}

// SetDerivative records dv as the derivative-successor of v. The
// forest stays injective in both directions — a variable has at most
// one successor (ErrDerivativeExists) and at most one predecessor
// (ErrDerivativeClaimed) — and acyclic: a pair that would make a
// variable a derivative of itself, directly or through the chain, is
// rejected with ErrDerivativeCycle. Re-recording the identical pair
// is a no-op.
// Complexity: O(level of v).
func (s *System) SetDerivative(v, dv int) error {
	if err := s.checkVar(v); err != nil {
		return err
	}
	if err := s.checkVar(dv); err != nil {
		return err
	}
	if s.varToDiff[v] == dv {
		return nil
	}
	if s.varToDiff[v] != NoDerivative {
		return fmt.Errorf("dae: SetDerivative(%d,%d): %w", v, dv, ErrDerivativeExists)
	}
	if s.diffToVar[dv] != NoDerivative {
		return fmt.Errorf("dae: SetDerivative(%d,%d): %w", v, dv, ErrDerivativeClaimed)
	}
	if err := s.checkAcyclic(v, dv); err != nil {
		return fmt.Errorf("dae: SetDerivative(%d,%d): %w", v, dv, err)
	}
	s.varToDiff[v] = dv
	s.diffToVar[dv] = v

	return nil
}

// checkAcyclic reports whether linking v → dv would close a cycle:
// that happens exactly when dv is v itself or a predecessor of v.
func (s *System) checkAcyclic(v, dv int) error {
	for cur := v; cur != NoDerivative; cur = s.diffToVar[cur] {
		if cur == dv {
			return ErrDerivativeCycle
		}
	}

	return nil
}

// RelinkDerivative records dv as the derivative-successor of v,
// detaching dv from any previous predecessor first. Chain unification
// uses this when a higher derivative discovered through an aliased
// member gets re-anchored to the canonical chain; the forest stays
// injective in both directions throughout.
// v must not already have a successor (ErrDerivativeExists), and the
// link may not close a cycle (ErrDerivativeCycle).
// Complexity: O(level of v).
func (s *System) RelinkDerivative(v, dv int) error {
	if err := s.checkVar(v); err != nil {
		return err
	}
	if err := s.checkVar(dv); err != nil {
		return err
	}
	if s.varToDiff[v] == dv {
		return nil
	}
	if s.varToDiff[v] != NoDerivative {
		return fmt.Errorf("dae: RelinkDerivative(%d,%d): %w", v, dv, ErrDerivativeExists)
	}
	if err := s.checkAcyclic(v, dv); err != nil {
		return fmt.Errorf("dae: RelinkDerivative(%d,%d): %w", v, dv, err)
	}
	if old := s.diffToVar[dv]; old != NoDerivative {
		s.varToDiff[old] = NoDerivative
	}
	s.varToDiff[v] = dv
	s.diffToVar[dv] = v

	return nil
}

// Derivative returns the derivative-successor of v, if any.
// Complexity: O(1).
func (s *System) Derivative(v int) (int, bool) {
	if s.checkVar(v) != nil || s.varToDiff[v] == NoDerivative {
		return NoDerivative, false
	}

	return s.varToDiff[v], true
}

// Lower returns the variable v is the derivative of, if any.
// Complexity: O(1).
func (s *System) Lower(v int) (int, bool) {
	if s.checkVar(v) != nil || s.diffToVar[v] == NoDerivative {
		return NoDerivative, false
	}

	return s.diffToVar[v], true
}

// Level returns v's differentiation level: the number of
// predecessor steps down to its forest base. Base variables are at
// level 0.
// Complexity: O(level).
func (s *System) Level(v int) int {
	lvl := 0
	for cur := v; s.diffToVar[cur] != NoDerivative; cur = s.diffToVar[cur] {
		lvl++
	}

	return lvl
}

// SetLinearEquation declares equation eq purely linear-algebraic with
// the given integer terms, replacing any previous declaration.
// Incidence edges are synced to exactly the term variables; duplicate
// variables in terms have their coefficients summed, and terms that
// sum to zero are dropped.
// Complexity: O(dOld + t·log t) for t terms.
func (s *System) SetLinearEquation(eq int, terms []Term) error {
	if err := s.checkEq(eq); err != nil {
		return err
	}
	acc := make(map[int]int64, len(terms))
	for _, t := range terms {
		if err := s.checkVar(t.Var); err != nil {
			return err
		}
		acc[t.Var] += t.Coeff
	}
	vars := make([]int, 0, len(acc))
	for v, c := range acc {
		if c == 0 {
			delete(acc, v)

			continue
		}
		vars = append(vars, v)
	}
	if err := s.graph.SetEquationNeighbors(eq, vars); err != nil {
		return err
	}
	s.linear[eq] = true
	s.coeffs[eq] = acc

	return nil
}

// SetIncidence declares the structural incidence of a non-linear
// equation: which variables it touches, with no coefficient
// information. Clears any previous linear declaration.
// Complexity: O(dOld + t·log t).
func (s *System) SetIncidence(eq int, vars []int) error {
	if err := s.checkEq(eq); err != nil {
		return err
	}
	for _, v := range vars {
		if err := s.checkVar(v); err != nil {
			return err
		}
	}
	if err := s.graph.SetEquationNeighbors(eq, vars); err != nil {
		return err
	}
	s.linear[eq] = false
	s.coeffs[eq] = nil

	return nil
}

// IsLinear reports whether eq was declared linear-algebraic.
// Complexity: O(1).
func (s *System) IsLinear(eq int) bool {
	return s.checkEq(eq) == nil && s.linear[eq]
}

// Coefficient returns the exact integer coefficient of v in linear
// equation eq. ok is false when eq is not linear or v does not occur.
// Complexity: O(1).
func (s *System) Coefficient(eq, v int) (int64, bool) {
	if s.checkEq(eq) != nil || !s.linear[eq] {
		return 0, false
	}
	c, ok := s.coeffs[eq][v]

	return c, ok
}

// MarkIrreducible excludes v from future alias elimination. Canonical
// differentiation-chain representatives are marked this way.
// Out-of-range handles are ignored.
// Complexity: O(1).
func (s *System) MarkIrreducible(v int) {
	if s.checkVar(v) == nil {
		s.irreducible[v] = true
	}
}

// IsIrreducible reports whether v is excluded from elimination.
// Complexity: O(1).
func (s *System) IsIrreducible(v int) bool {
	return s.checkVar(v) == nil && s.irreducible[v]
}
