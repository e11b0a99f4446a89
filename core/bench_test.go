package core_test

import (
	"testing"

	"github.com/katalvlaran/digraph/core"
)

// denseFixture wires every ordered pair of n vertices.
func denseFixture(g core.MutableDigraph[int, struct{}], n int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.AddArc(i, j)
		}
	}
}

// The pair below motivates the representation choice: HasArc is a linear
// scan on the list store and a matrix access on the dense store.

func BenchmarkHasArc_List_Dense100(b *testing.B) {
	g := core.NewListDigraph[int, struct{}]()
	denseFixture(g, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.HasArc(i%100, 99)
	}
}

func BenchmarkHasArc_Matrix_Dense100(b *testing.B) {
	g := core.NewMatrixDigraph[int, struct{}]()
	denseFixture(g, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.HasArc(i%100, 99)
	}
}

func BenchmarkAddRemoveVertex_Matrix(b *testing.B) {
	g := core.NewMatrixDigraph[int, struct{}]()
	denseFixture(g, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddVertex(1_000_000)
		g.RemoveVertex(1_000_000)
	}
}
