// Package elim: differentiation-chain root resolution.
//
// Aliasing interacts with differentiation: if x aliases to y then D(x)
// must end up identified with D(y), and chains of different lengths
// that were aliased at some level must collapse to a single canonical
// chain. This pass walks the induced alias graph — inverted alias
// edges combined with the derivative-successor forest — one
// equivalence class at a time, picks the least-differentiated member
// as the canonical root, lays out the canonical chain level by level,
// re-expresses every other member as an alias into that chain, and
// extends the derivative-successor map where the traversal discovered
// a higher derivative the forest did not know about.
package elim

import (
	"sort"

	"github.com/katalvlaran/daestruct/alias"
	"github.com/katalvlaran/daestruct/dae"
)

// aliasLink is one resolved alias edge: the owning variable equals
// coeff times repr.
type aliasLink struct {
	coeff int
	repr  int
}

// chainItem is one worklist entry of the rooted traversal: variable v
// carries coefficient coeff relative to the root's chain entry at
// relative differentiation level level.
type chainItem struct {
	v     int
	coeff int
	level int
}

// classState is the per-equivalence-class traversal state.
type classState struct {
	visited    map[int]bool
	coeffRel   map[int]int // coefficient of each member relative to the root chain
	levelToVar []int       // canonical chain, index = level relative to root
}

// chainResolver holds the state of one resolution pass.
type chainResolver struct {
	sys *dae.System

	aliasTo  map[int]aliasLink // resolved non-zero aliases, v → (coeff, repr)
	children map[int][]int     // repr → sorted vars aliasing to it

	out       *alias.Graph // seed alias graph for the next round
	processed []bool
	updated   []int // vars whose derivative-successor was newly assigned
}

// resolveChains consumes the round-one alias graph and produces the
// seed graph for round two, the list of updated differentiation
// variables, and any invalid-system error. Canonical chain variables
// are marked irreducible on the System as a side effect.
func resolveChains(sys *dae.System, in *alias.Graph) (*alias.Graph, []int, error) {
	r := &chainResolver{
		sys:       sys,
		aliasTo:   make(map[int]aliasLink),
		children:  make(map[int][]int),
		out:       alias.NewGraph(),
		processed: make([]bool, sys.NumVariables()),
	}

	// Snapshot the resolved round-one aliases. Zero-pinned variables
	// leave the chain world entirely: a zero variable zeroes its whole
	// derivative chain upward.
	in.ForEach(func(v, coeff, repr int) bool {
		if repr == alias.NoVariable {
			r.propagateZero(v)

			return true
		}
		r.aliasTo[v] = aliasLink{coeff: coeff, repr: repr}
		r.children[repr] = append(r.children[repr], v)

		return true
	})

	for v := 0; v < sys.NumVariables(); v++ {
		if r.processed[v] || !r.participates(v) {
			continue
		}
		if err := r.resolveClass(v); err != nil {
			return nil, nil, err
		}
	}
	sort.Ints(r.updated)

	return r.out, r.updated, nil
}

// propagateZero pins v and every derivative-successor above it to
// zero: D(0) = 0.
func (r *chainResolver) propagateZero(v int) {
	for cur := v; ; {
		r.out.SetZero(cur)
		r.processed[cur] = true
		next, ok := r.sys.Derivative(cur)
		if !ok || r.processed[next] {
			return
		}
		cur = next
	}
}

// participates reports whether v has any edge in the induced alias
// graph. Isolated variables need no chain treatment and stay eligible
// for ordinary elimination.
func (r *chainResolver) participates(v int) bool {
	if _, ok := r.aliasTo[v]; ok {
		return true
	}
	if len(r.children[v]) > 0 {
		return true
	}
	if _, ok := r.sys.Derivative(v); ok {
		return true
	}
	if _, ok := r.sys.Lower(v); ok {
		return true
	}

	return false
}

// findRoot gathers the equivalence class reachable from v over alias
// edges (both directions) and derivative edges (both directions) and
// returns the member at the minimum differentiation level relative to
// the traversal, ties broken toward the smallest index.
//
// Levels must be tracked relative to the walk — alias edges shift by
// zero, derivative edges by ±1 — because an alias between
// level-shifted chains (x_t = D(x)) makes the absolute forest levels
// of the two trees incomparable: x_t and x both sit at forest level
// zero, yet x is one differentiation below x_t.
func (r *chainResolver) findRoot(v int) int {
	type member struct {
		v     int
		level int
	}
	seen := map[int]bool{v: true}
	stack := []member{{v: v}}
	root, rootLevel := v, 0

	push := func(w, level int) {
		if !seen[w] {
			seen[w] = true
			stack = append(stack, member{v: w, level: level})
		}
	}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if u.level < rootLevel || (u.level == rootLevel && u.v < root) {
			root, rootLevel = u.v, u.level
		}
		if link, ok := r.aliasTo[u.v]; ok {
			push(link.repr, u.level)
		}
		for _, w := range r.children[u.v] {
			push(w, u.level)
		}
		if w, ok := r.sys.Derivative(u.v); ok {
			push(w, u.level+1)
		}
		if w, ok := r.sys.Lower(u.v); ok {
			push(w, u.level-1)
		}
	}

	return root
}

// resolveClass canonicalizes the equivalence class containing v: a
// breadth-first traversal from the class root assigns every member a
// (coefficient, level) relative to the root, builds the canonical
// levelToVar chain, aliases mismatching members into it, and extends
// the derivative forest when the chain outgrew it.
func (r *chainResolver) resolveClass(v int) error {
	root := r.findRoot(v)

	cs := &classState{
		visited:  make(map[int]bool),
		coeffRel: make(map[int]int),
	}

	queue := []chainItem{{v: root, coeff: 1, level: 0}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		// The visited set is consulted on every expansion: cyclic
		// derivative/alias interactions like D(x) = x re-enqueue
		// already-seen variables and must terminate here. The root
		// minimizes the relative level, so a negative level is itself
		// an artifact of such a cycle, never a chain member proper.
		if cs.visited[it.v] || it.level < 0 {
			continue
		}
		cs.visited[it.v] = true
		r.processed[it.v] = true
		cs.coeffRel[it.v] = it.coeff

		if !r.visit(it, cs) {
			return ErrNoIndependentVariable
		}

		// Expand: derivative edges shift the relative level, alias
		// edges stay on it.
		if w, ok := r.sys.Derivative(it.v); ok {
			queue = append(queue, chainItem{v: w, coeff: it.coeff, level: it.level + 1})
		}
		if w, ok := r.sys.Lower(it.v); ok {
			queue = append(queue, chainItem{v: w, coeff: it.coeff, level: it.level - 1})
		}
		if link, ok := r.aliasTo[it.v]; ok {
			queue = append(queue, chainItem{v: link.repr, coeff: it.coeff * link.coeff, level: it.level})
		}
		for _, w := range r.children[it.v] {
			if link, ok := r.aliasTo[w]; ok {
				queue = append(queue, chainItem{v: w, coeff: it.coeff * link.coeff, level: it.level})
			}
		}
	}

	// Canonical chain variables are the class representatives from now
	// on: hold them out of further elimination.
	for _, u := range cs.levelToVar {
		r.sys.MarkIrreducible(u)
		r.out.Remove(u)
	}

	return nil
}

// visit places item it into the canonical chain, either as the chain
// entry for its level or as a new alias to the existing entry.
// Returns false only when the chain needed a forest extension and the
// System has no independent variable to differentiate against.
func (r *chainResolver) visit(it chainItem, cs *classState) bool {
	if it.level < len(cs.levelToVar) {
		canon := cs.levelToVar[it.level]
		if it.v != canon {
			// it.v = coeff·root⁽ˡ⁾ and canon = coeffRel[canon]·root⁽ˡ⁾,
			// so it.v = (coeff·coeffRel[canon])·canon.
			_ = r.out.SetAlias(it.v, it.coeff*cs.coeffRel[canon], canon)
		}

		return true
	}

	if it.level == 0 {
		cs.levelToVar = append(cs.levelToVar, it.v) // the root opens the chain

		return true
	}
	if it.level > len(cs.levelToVar) {
		// Levels fill contiguously from the root; an item past the
		// frontier can only come from a cycle artifact and is skipped.
		return true
	}

	prev := cs.levelToVar[it.level-1]
	if w, hasDiff := r.sys.Derivative(prev); hasDiff {
		// The forest already names a canonical variable for this
		// level; adopt it even when we arrived through another member.
		if _, known := cs.coeffRel[w]; !known {
			cs.coeffRel[w] = cs.coeffRel[prev]
		}
		cs.levelToVar = append(cs.levelToVar, w)
		if it.v != w {
			_ = r.out.SetAlias(it.v, it.coeff*cs.coeffRel[w], w)
		}

		return true
	}

	// No forest entry for this level: it.v becomes canonical and the
	// derivative-successor map is extended — re-anchoring it.v away
	// from an aliased predecessor if it had one. Extension needs an
	// independent variable to differentiate against.
	if !r.sys.HasIndependentVariable() {
		return false
	}
	if err := r.sys.RelinkDerivative(prev, it.v); err == nil {
		r.updated = append(r.updated, prev)
	}
	cs.levelToVar = append(cs.levelToVar, it.v)

	return true
}
