// Package alias: graph storage, lookup with path compression, cycle
// resolution.
package alias

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for alias-graph operations.
var (
	// ErrBadCoefficient is returned by SetAlias for a coefficient
	// other than +1 or -1 (zero aliases go through SetZero).
	ErrBadCoefficient = errors.New("alias: coefficient must be +1 or -1")

	// ErrSelfAlias is returned when a variable is aliased to itself.
	ErrSelfAlias = errors.New("alias: variable aliased to itself")
)

// NoVariable is the representative reported for variables aliased to
// the constant zero.
const NoVariable = -1

// entry is one alias record. zero marks v ≡ 0; otherwise v = coeff·repr.
type entry struct {
	zero  bool
	coeff int // +1 or -1 when !zero
	repr  int
}

// Graph is a mutable alias graph. The zero value is not usable;
// construct with NewGraph.
type Graph struct {
	entries map[int]entry
}

// NewGraph returns an empty alias graph.
func NewGraph() *Graph {
	return &Graph{entries: make(map[int]entry)}
}

// Len returns the number of eliminated variables.
// Complexity: O(1).
func (g *Graph) Len() int { return len(g.entries) }

// Has reports whether v carries an alias entry (without compressing).
// Complexity: O(1).
func (g *Graph) Has(v int) bool {
	_, ok := g.entries[v]

	return ok
}

// SetZero records v ≡ 0, overwriting any previous entry.
// Complexity: O(1).
func (g *Graph) SetZero(v int) {
	g.entries[v] = entry{zero: true, repr: NoVariable}
}

// SetAlias records v = coeff·repr, overwriting any previous entry.
// Returns ErrBadCoefficient unless coeff is ±1, ErrSelfAlias if
// repr == v.
// Complexity: O(1).
func (g *Graph) SetAlias(v, coeff, repr int) error {
	if coeff != 1 && coeff != -1 {
		return fmt.Errorf("alias: SetAlias(%d, %d, %d): %w", v, coeff, repr, ErrBadCoefficient)
	}
	if repr == v {
		return fmt.Errorf("alias: SetAlias(%d, %d, %d): %w", v, coeff, repr, ErrSelfAlias)
	}
	g.entries[v] = entry{coeff: coeff, repr: repr}

	return nil
}

// Remove deletes the entry for v, if any.
// Complexity: O(1).
func (g *Graph) Remove(v int) {
	delete(g.entries, v)
}

// Get resolves v. It returns (0, NoVariable, true) when v ≡ 0,
// (coeff, repr, true) when v = coeff·repr with repr not itself
// eliminated, and ok == false when v carries no entry.
//
// Get compresses lazily: every node on the traversed chain is
// rewritten to point directly at the ultimate representative. Cycles
// are resolved in place (see the package documentation); resolving a
// +1 cycle may turn v itself into the representative, in which case
// Get reports ok == false on that call and thereafter.
// Complexity: amortized near O(1); a single lookup is O(chain²) in the
// worst case, and chains are bounded by the variable count.
func (g *Graph) Get(v int) (coeff, repr int, ok bool) {
	if _, present := g.entries[v]; !present {
		return 0, 0, false
	}

	// Walk the chain. nodes holds traversed keys; cum[i] is the
	// coefficient of nodes[i] relative to the current cursor.
	nodes := []int{v}
	cum := []int{1}
	pos := map[int]int{v: 0}
	cursor := v

	for {
		ent, present := g.entries[cursor]
		if !present {
			// cursor is the true representative: compress everything.
			for i, n := range nodes {
				if n == cursor {
					continue
				}
				g.entries[n] = entry{coeff: cum[i], repr: cursor}
			}

			return cum[0], cursor, true
		}
		if ent.zero {
			// The chain bottoms out at zero; so does every node on it.
			for _, n := range nodes {
				g.entries[n] = entry{zero: true, repr: NoVariable}
			}

			return 0, NoVariable, true
		}

		// Advance: nodes[i] = cum[i]·cursor = (cum[i]·ent.coeff)·ent.repr.
		for i := range cum {
			cum[i] *= ent.coeff
		}
		next := ent.repr

		if k, seen := pos[next]; seen {
			return g.resolveCycle(v, nodes, cum, k, next)
		}

		nodes = append(nodes, next)
		cum = append(cum, 1)
		pos[next] = len(nodes) - 1
		cursor = next
	}
}

// resolveCycle handles a lookup that walked back into its own chain.
// nodes[k] == next closes the cycle and every nodes[i] equals
// cum[i]·next at this point.
func (g *Graph) resolveCycle(v int, nodes, cum []int, k, next int) (int, int, bool) {
	if cum[k] == -1 {
		// next = -next, so the whole chain is pinned to zero.
		for _, n := range nodes {
			g.entries[n] = entry{zero: true, repr: NoVariable}
		}

		return 0, NoVariable, true
	}

	// Consistent (+1) cycle: break it at the smallest-index member.
	rmin, j := nodes[k], k
	for i := k + 1; i < len(nodes); i++ {
		if nodes[i] < rmin {
			rmin, j = nodes[i], i
		}
	}
	// nodes[i] = cum[i]·next and rmin = cum[j]·next, hence
	// next = cum[j]·rmin and nodes[i] = (cum[i]·cum[j])·rmin.
	delete(g.entries, rmin)
	for i, n := range nodes {
		if n == rmin {
			continue
		}
		g.entries[n] = entry{coeff: cum[i] * cum[j], repr: rmin}
	}
	if v == rmin {
		return 0, 0, false
	}

	return cum[0] * cum[j], rmin, true
}

// Variables returns the eliminated variables in ascending order.
// Complexity: O(n log n).
func (g *Graph) Variables() []int {
	out := make([]int, 0, len(g.entries))
	for v := range g.entries {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// ForEach enumerates every eliminated variable with its fully resolved
// (coeff, repr) in ascending variable order; zero aliases are reported
// as (0, NoVariable). f returning false stops early. Resolution
// during enumeration may drop entries (cycle breaking); dropped
// variables are skipped.
// Complexity: O(n log n) plus resolution cost.
func (g *Graph) ForEach(f func(v, coeff, repr int) bool) {
	for _, v := range g.Variables() {
		coeff, repr, ok := g.Get(v)
		if !ok {
			continue
		}
		if !f(v, coeff, repr) {
			return
		}
	}
}

// String renders resolved entries for diagnostics.
func (g *Graph) String() string {
	var b strings.Builder
	g.ForEach(func(v, coeff, repr int) bool {
		switch {
		case repr == NoVariable:
			b.WriteString(fmt.Sprintf("v%d = 0\n", v))
		case coeff == 1:
			b.WriteString(fmt.Sprintf("v%d = v%d\n", v, repr))
		default:
			b.WriteString(fmt.Sprintf("v%d = -v%d\n", v, repr))
		}

		return true
	})

	return b.String()
}

// Clone returns an independent deep copy of the graph.
// Complexity: O(n).
func (g *Graph) Clone() *Graph {
	cp := NewGraph()
	for v, e := range g.entries {
		cp.entries[v] = e
	}

	return cp
}
