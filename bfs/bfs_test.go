package bfs_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/digraph/bfs"
	"github.com/katalvlaran/digraph/core"
)

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	// nil digraph
	if _, err := bfs.Search[int, struct{}](nil, 1); !errors.Is(err, bfs.ErrNilDigraph) {
		t.Errorf("nil digraph: want ErrNilDigraph, got %v", err)
	}
	// source vertex not found
	g := core.NewListDigraph[int, struct{}]()
	if _, err := bfs.Search[int, struct{}](g, 42); !errors.Is(err, bfs.ErrSourceNotFound) {
		t.Errorf("missing source: want ErrSourceNotFound, got %v", err)
	}
	// negative MaxDepth is a violation
	g.AddVertex(1)
	if _, err := bfs.Search[int, struct{}](g, 1, bfs.WithMaxDepth[int](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestSearch_Order covers discovery order and depth levels on a known graph.
func TestSearch_Order(t *testing.T) {
	//      1
	//     / \
	//    2   3
	//    |   |
	//    4   5
	g := core.NewListDigraph[int, struct{}]()
	g.AddArc(1, 2)
	g.AddArc(1, 3)
	g.AddArc(2, 4)
	g.AddArc(3, 5)

	res, err := bfs.Search[int, struct{}](g, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 2, 3, 4, 5}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v (successor order, level by level)", res.Order, want)
	}
	for v, want := range map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 2} {
		if d := res.Depth[v]; d != want {
			t.Errorf("Depth[%d] = %d; want %d", v, d, want)
		}
	}
	if _, ok := res.Parent[1]; ok {
		t.Error("source must have no parent entry")
	}
}

// TestSearch_Hooks covers the visit hook, its abort semantics, filtering,
// and depth limiting.
func TestSearch_Hooks(t *testing.T) {
	g := core.NewListDigraph[int, struct{}]()
	g.AddArc(1, 2)
	g.AddArc(2, 3)
	g.AddArc(3, 4)

	var visited []int
	_, err := bfs.Search[int, struct{}](g, 1,
		bfs.WithOnVisit[int](func(v, _ int) error { visited = append(visited, v); return nil }),
		bfs.WithMaxDepth[int](2),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(visited, want) {
		t.Errorf("visited = %v; want %v (depth capped at 2)", visited, want)
	}

	// Filter severs 2→3, making the tail unreachable.
	res, err := bfs.Search[int, struct{}](g, 1,
		bfs.WithFilterNeighbor[int](func(curr, next int) bool { return !(curr == 2 && next == 3) }),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Reached(3) || res.Reached(4) {
		t.Errorf("filter ignored: reached %v", res.Order)
	}

	// Hook errors abort and propagate wrapped.
	boom := fmt.Errorf("boom")
	_, err = bfs.Search[int, struct{}](g, 1,
		bfs.WithOnVisit[int](func(v, _ int) error {
			if v == 2 {
				return boom
			}
			return nil
		}),
	)
	if !errors.Is(err, boom) {
		t.Errorf("hook abort: want wrapped boom, got %v", err)
	}
}

// TestShortestPath_Basics covers endpoints, inclusivity, and the
// single-vertex path.
func TestShortestPath_Basics(t *testing.T) {
	g := core.NewListDigraph[string, struct{}]()
	g.AddArc("A", "B")
	g.AddArc("B", "C")
	g.AddArc("C", "D")

	path, ok := bfs.ShortestPath[string, struct{}](g, "A", "D")
	if !ok {
		t.Fatal("ShortestPath(A,D) not found")
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
	// Same-vertex path is the single-vertex sequence.
	path, ok = bfs.ShortestPath[string, struct{}](g, "B", "B")
	if !ok || !reflect.DeepEqual(path, []string{"B"}) {
		t.Errorf("ShortestPath(B,B) = %v, %v; want [B], true", path, ok)
	}
	// Absent endpoints and nil graphs report absence, never an error.
	if _, ok = bfs.ShortestPath[string, struct{}](g, "missing", "A"); ok {
		t.Error("ShortestPath from absent vertex: want not found")
	}
	if _, ok = bfs.ShortestPath[string, struct{}](g, "A", "missing"); ok {
		t.Error("ShortestPath to absent vertex: want not found")
	}
	if _, ok = bfs.ShortestPath[string, struct{}](nil, "A", "B"); ok {
		t.Error("ShortestPath on nil digraph: want not found")
	}
}

// TestShortestPath_TieBreak pins the documented BFS-discovery-order
// tie-break on a diamond with two equal-length routes.
func TestShortestPath_TieBreak(t *testing.T) {
	g := core.NewListDigraph[int, struct{}]()
	g.AddArc(1, 2)
	g.AddArc(1, 3)
	g.AddArc(2, 4)
	g.AddArc(3, 4)

	path, ok := bfs.ShortestPath[int, struct{}](g, 1, 4)
	if !ok {
		t.Fatal("ShortestPath(1,4) not found")
	}
	// Successors(1) yields [2 3], so the route through 2 is discovered first.
	if want := []int{1, 2, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v (discovery order)", path, want)
	}
}

// TestDistance_CoherenceAndAsymmetry verifies len(path)-1 == distance and
// the directedness of the measure.
func TestDistance_CoherenceAndAsymmetry(t *testing.T) {
	g := core.NewListDigraph[int, struct{}]()
	g.AddArc(1, 2)

	d, ok := bfs.Distance[int, struct{}](g, 1, 2)
	if !ok || d != 1 {
		t.Errorf("Distance(1,2) = %d, %v; want 1, true", d, ok)
	}
	if _, ok = bfs.Distance[int, struct{}](g, 2, 1); ok {
		t.Error("Distance(2,1) found; want absent (only arc is 1→2)")
	}

	// Coherence on a larger graph: path length minus one equals distance,
	// and both are absent together.
	h := core.NewListDigraph[int, struct{}]()
	h.AddArc(1, 2)
	h.AddArc(2, 3)
	h.AddArc(3, 4)
	h.AddArc(1, 4) // shortcut
	h.AddVertex(9) // unreachable

	for _, to := range []int{2, 3, 4, 9} {
		path, pok := bfs.ShortestPath[int, struct{}](h, 1, to)
		dist, dok := bfs.Distance[int, struct{}](h, 1, to)
		if pok != dok {
			t.Fatalf("to %d: path ok %v, distance ok %v; must agree", to, pok, dok)
		}
		if pok && len(path)-1 != dist {
			t.Errorf("to %d: len(path)-1 = %d, distance = %d", to, len(path)-1, dist)
		}
	}
	if d, _ := bfs.Distance[int, struct{}](h, 1, 4); d != 1 {
		t.Errorf("Distance(1,4) = %d; want 1 via the shortcut", d)
	}
}

// TestSearch_MatrixRepresentation runs the walker over the dense store to
// keep the contract-only dependency honest.
func TestSearch_MatrixRepresentation(t *testing.T) {
	g := core.NewMatrixDigraph[int, struct{}]()
	g.AddArc(1, 2)
	g.AddArc(2, 3)

	d, ok := bfs.Distance[int, struct{}](g, 1, 3)
	if !ok || d != 2 {
		t.Errorf("Distance over MatrixDigraph = %d, %v; want 2, true", d, ok)
	}
}
