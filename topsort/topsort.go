// Package topsort: Kahn's algorithm over observed-equation
// definitions.
package topsort

import (
	"errors"
	"fmt"
)

// Sentinel errors for Sort.
var (
	// ErrCycleDetected is returned (with checking enabled) when the
	// definitions are mutually recursive: no sequential evaluation
	// order exists.
	ErrCycleDetected = errors.New("topsort: cycle detected among observed equations")

	// ErrDuplicateDefinition is returned when two equations define the
	// same variable.
	ErrDuplicateDefinition = errors.New("topsort: variable defined twice")
)

// Equation is one observed equation: its left-hand side defines
// Defines, its right-hand side references DependsOn.
type Equation struct {
	Defines   int
	DependsOn []int
}

// Option configures Sort via functional arguments.
type Option func(*sortOptions)

type sortOptions struct {
	check bool
}

func defaultOptions() sortOptions {
	return sortOptions{check: true}
}

// WithCheck toggles cycle checking. Checking is on by default;
// disabling it makes Sort return whatever partial order the queue
// produced, silently omitting equations stuck on a cycle. That mode
// is unsafe for evaluation and exists for diagnostic tooling.
func WithCheck(check bool) Option {
	return func(o *sortOptions) { o.check = check }
}

// Sort returns indices into eqs in an order where every equation
// appears after all equations defining the variables it references.
// Ties resolve to original input order (FIFO queue, fixed seeding).
// Returns ErrDuplicateDefinition for two equations defining one
// variable, and ErrCycleDetected when checking is enabled and no
// complete order exists.
// Complexity: O(E + D) where D is the total dependency count.
func Sort(eqs []Equation, opts ...Option) ([]int, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// definer[v] = index of the equation defining v.
	definer := make(map[int]int, len(eqs))
	for i, eq := range eqs {
		if j, dup := definer[eq.Defines]; dup {
			return nil, fmt.Errorf("topsort: equations %d and %d both define variable %d: %w",
				j, i, eq.Defines, ErrDuplicateDefinition)
		}
		definer[eq.Defines] = i
	}

	// Dependency edges j→i (j must run before i) and in-degrees.
	dependents := make([][]int, len(eqs))
	indegree := make([]int, len(eqs))
	for i, eq := range eqs {
		for _, v := range eq.DependsOn {
			j, defined := definer[v]
			if !defined || j == i {
				// External input, or a self-reference the caller kept
				// deliberately (x = f(x) solved iteratively): no edge.
				continue
			}
			dependents[j] = append(dependents[j], i)
			indegree[i]++
		}
	}

	// Kahn with a FIFO queue seeded in input order.
	queue := make([]int, 0, len(eqs))
	for i := range eqs {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}
	order := make([]int, 0, len(eqs))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, k := range dependents[i] {
			indegree[k]--
			if indegree[k] == 0 {
				queue = append(queue, k)
			}
		}
	}

	if o.check && len(order) != len(eqs) {
		return nil, fmt.Errorf("topsort: %d of %d equations unordered: %w",
			len(eqs)-len(order), len(eqs), ErrCycleDetected)
	}

	return order, nil
}
