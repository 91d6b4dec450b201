package bipartite_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/daestruct/bipartite"
)

// TestNewGraph_Errors verifies that negative shapes are rejected.
func TestNewGraph_Errors(t *testing.T) {
	if _, err := bipartite.NewGraph(-1, 3); !errors.Is(err, bipartite.ErrBadShape) {
		t.Errorf("negative equations: want ErrBadShape, got %v", err)
	}
	if _, err := bipartite.NewGraph(3, -1); !errors.Is(err, bipartite.ErrBadShape) {
		t.Errorf("negative variables: want ErrBadShape, got %v", err)
	}
	// zero-sized universes are legal
	if _, err := bipartite.NewGraph(0, 0); err != nil {
		t.Errorf("empty graph: unexpected error %v", err)
	}
}

// TestGraph_AddRemoveHasEdge covers the basic edge lifecycle and the
// idempotence of repeated insertion and removal.
func TestGraph_AddRemoveHasEdge(t *testing.T) {
	g, err := bipartite.NewGraph(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.AddEdge(0, 2); err != nil {
		t.Fatalf("AddEdge(0,2): %v", err)
	}
	if err := g.AddEdge(0, 0); err != nil {
		t.Fatalf("AddEdge(0,0): %v", err)
	}
	// duplicate insert is a no-op
	if err := g.AddEdge(0, 2); err != nil {
		t.Fatalf("duplicate AddEdge: %v", err)
	}

	if !g.HasEdge(0, 2) || !g.HasEdge(0, 0) {
		t.Error("inserted edges not reported by HasEdge")
	}
	if g.HasEdge(1, 0) {
		t.Error("absent edge reported present")
	}
	if g.HasEdge(-1, 0) || g.HasEdge(0, 99) {
		t.Error("out-of-range HasEdge must report false")
	}

	ns, err := g.EquationNeighbors(0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 2}; !reflect.DeepEqual(ns, want) {
		t.Errorf("EquationNeighbors(0) = %v; want %v", ns, want)
	}

	if err := g.RemoveEdge(0, 2); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}
	if g.HasEdge(0, 2) {
		t.Error("edge still present after RemoveEdge")
	}
	// removing the absent edge again is a no-op
	if err := g.RemoveEdge(0, 2); err != nil {
		t.Fatalf("second RemoveEdge: %v", err)
	}

	// range errors on mutation
	if err := g.AddEdge(5, 0); !errors.Is(err, bipartite.ErrVertexRange) {
		t.Errorf("AddEdge out of range: want ErrVertexRange, got %v", err)
	}
	if err := g.RemoveEdge(0, -3); !errors.Is(err, bipartite.ErrVertexRange) {
		t.Errorf("RemoveEdge out of range: want ErrVertexRange, got %v", err)
	}
}

// TestGraph_MutualConsistency checks that both adjacency directions
// agree after a mixed sequence of mutations.
func TestGraph_MutualConsistency(t *testing.T) {
	g, _ := bipartite.NewGraph(3, 3)
	edges := [][2]int{{0, 0}, {0, 1}, {1, 1}, {2, 0}, {2, 2}}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	_ = g.RemoveEdge(0, 1)

	for e := 0; e < g.NumEquations(); e++ {
		ns, _ := g.EquationNeighbors(e)
		for _, v := range ns {
			back, _ := g.VariableNeighbors(v)
			found := false
			for _, ee := range back {
				if ee == e {
					found = true
				}
			}
			if !found {
				t.Errorf("edge (%d,%d) present forward but missing in reverse", e, v)
			}
		}
	}
	for v := 0; v < g.NumVariables(); v++ {
		ns, _ := g.VariableNeighbors(v)
		for _, e := range ns {
			if !g.HasEdge(e, v) {
				t.Errorf("edge (%d,%d) present in reverse but missing forward", e, v)
			}
		}
	}
}

// TestGraph_NeighborsAreCopies ensures callers cannot corrupt internal
// adjacency by mutating returned slices.
func TestGraph_NeighborsAreCopies(t *testing.T) {
	g, _ := bipartite.NewGraph(1, 2)
	_ = g.AddEdge(0, 0)
	_ = g.AddEdge(0, 1)

	ns, _ := g.EquationNeighbors(0)
	ns[0] = 99

	fresh, _ := g.EquationNeighbors(0)
	if want := []int{0, 1}; !reflect.DeepEqual(fresh, want) {
		t.Errorf("internal adjacency corrupted through returned slice: %v", fresh)
	}
}

// TestGraph_SetEquationNeighbors covers atomic replacement: dedup,
// reverse-adjacency sync, and the unchanged-on-error guarantee.
func TestGraph_SetEquationNeighbors(t *testing.T) {
	g, _ := bipartite.NewGraph(2, 4)
	_ = g.AddEdge(0, 0)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 1)

	// replace {0,1} with {1,3,3} (duplicate coalesced)
	if err := g.SetEquationNeighbors(0, []int{3, 1, 3}); err != nil {
		t.Fatalf("SetEquationNeighbors: %v", err)
	}
	ns, _ := g.EquationNeighbors(0)
	if want := []int{1, 3}; !reflect.DeepEqual(ns, want) {
		t.Errorf("neighbors after replace = %v; want %v", ns, want)
	}
	// v0 lost its only edge, v3 gained one, v1 keeps both equations
	if vs, _ := g.VariableNeighbors(0); len(vs) != 0 {
		t.Errorf("variable 0 still has equations: %v", vs)
	}
	if vs, _ := g.VariableNeighbors(3); !reflect.DeepEqual(vs, []int{0}) {
		t.Errorf("variable 3 equations = %v; want [0]", vs)
	}
	if vs, _ := g.VariableNeighbors(1); !reflect.DeepEqual(vs, []int{0, 1}) {
		t.Errorf("variable 1 equations = %v; want [0 1]", vs)
	}

	// invalid entry leaves the graph untouched
	if err := g.SetEquationNeighbors(0, []int{2, 7}); !errors.Is(err, bipartite.ErrVertexRange) {
		t.Fatalf("invalid replacement: want ErrVertexRange, got %v", err)
	}
	ns, _ = g.EquationNeighbors(0)
	if want := []int{1, 3}; !reflect.DeepEqual(ns, want) {
		t.Errorf("graph mutated by failed replacement: %v", ns)
	}

	// empty replacement clears the equation
	if err := g.SetEquationNeighbors(0, nil); err != nil {
		t.Fatalf("clearing replacement: %v", err)
	}
	if ns, _ := g.EquationNeighbors(0); len(ns) != 0 {
		t.Errorf("equation 0 not cleared: %v", ns)
	}
}

// TestGraph_Clone verifies deep-copy independence.
func TestGraph_Clone(t *testing.T) {
	g, _ := bipartite.NewGraph(2, 2)
	_ = g.AddEdge(0, 0)
	_ = g.AddEdge(1, 1)

	cp := g.Clone()
	_ = cp.AddEdge(0, 1)
	_ = cp.RemoveEdge(1, 1)

	if g.HasEdge(0, 1) {
		t.Error("mutating the clone added an edge to the original")
	}
	if !g.HasEdge(1, 1) {
		t.Error("mutating the clone removed an edge from the original")
	}
	if !cp.HasEdge(0, 1) || cp.HasEdge(1, 1) {
		t.Error("clone did not record its own mutations")
	}
}
