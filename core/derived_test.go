package core_test

import (
	"testing"

	"github.com/katalvlaran/digraph/core"
)

func triangle() *core.ListDigraph[int, struct{}] {
	g := core.NewListDigraph[int, struct{}]()
	g.AddArc(1, 2)
	g.AddArc(2, 3)
	g.AddArc(3, 1)
	return g
}

// TestDegrees checks InDegree/OutDegree including the absent-vertex case.
func TestDegrees(t *testing.T) {
	g := core.NewListDigraph[int, struct{}]()
	g.AddArc(1, 2)
	g.AddArc(1, 3)
	g.AddArc(2, 3)

	if d := core.OutDegree[int, struct{}](g, 1); d != 2 {
		t.Errorf("OutDegree(1) = %d; want 2", d)
	}
	if d := core.InDegree[int, struct{}](g, 3); d != 2 {
		t.Errorf("InDegree(3) = %d; want 2", d)
	}
	if d := core.InDegree[int, struct{}](g, 99); d != 0 {
		t.Errorf("InDegree(absent) = %d; want 0", d)
	}
}

// TestPredecessorSuccessorPredicates pins the direction conventions.
func TestPredecessorSuccessorPredicates(t *testing.T) {
	g := core.NewListDigraph[int, struct{}]()
	g.AddArc(1, 2)

	if !core.IsPredecessor[int, struct{}](g, 1, 2) {
		t.Error("IsPredecessor(1,2) = false; 1 precedes 2 via (1,2)")
	}
	if !core.IsSuccessor[int, struct{}](g, 2, 1) {
		t.Error("IsSuccessor(2,1) = false; 2 succeeds 1 via (1,2)")
	}
	if core.IsPredecessor[int, struct{}](g, 2, 1) {
		t.Error("IsPredecessor(2,1) = true; want false")
	}
}

// TestIsPath covers the vacuous, positive, and broken cases.
func TestIsPath(t *testing.T) {
	g := triangle()

	cases := []struct {
		name string
		seq  []int
		want bool
	}{
		{"empty is vacuously a path", nil, true},
		{"single vertex is vacuously a path", []int{1}, true},
		{"single absent vertex still vacuous", []int{42}, true},
		{"registered chain", []int{1, 2, 3}, true},
		{"full cycle walk", []int{1, 2, 3, 1, 2}, true},
		{"missing arc breaks it", []int{1, 3}, false},
		{"reversed arc breaks it", []int{2, 1}, false},
	}
	for _, tc := range cases {
		if got := core.IsPath[int, struct{}](g, tc.seq); got != tc.want {
			t.Errorf("%s: IsPath(%v) = %v; want %v", tc.name, tc.seq, got, tc.want)
		}
	}
}

// TestIsCircuit pins the closed-walk fixtures.
func TestIsCircuit(t *testing.T) {
	g := triangle()

	if !core.IsCircuit[int, struct{}](g, nil) {
		t.Error("IsCircuit(empty) = false; want true")
	}
	if !core.IsCircuit[int, struct{}](g, []int{1, 2, 3, 1}) {
		t.Error("IsCircuit([1,2,3,1]) = false; want true (all arcs registered)")
	}
	if core.IsCircuit[int, struct{}](g, []int{1, 3, 2, 1}) {
		t.Error("IsCircuit([1,3,2,1]) = true; want false (arc (1,3) absent)")
	}
	if core.IsCircuit[int, struct{}](g, []int{1, 2, 3}) {
		t.Error("IsCircuit(open path) = true; want false (ends differ)")
	}
}
