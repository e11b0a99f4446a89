package components

import (
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dsu"
)

// Weak computes the weakly-connected components of g: the partition of the
// vertex set obtained by unioning the two endpoints of every arc, treating
// arcs as undirected edges for this purpose only.
//
// Isolated vertices form singleton subsets. The returned DisjointSet is a
// fresh snapshot; later mutations of g do not update it.
//
// Complexity: O(V + A·α(V)) time, O(V) memory.
func Weak[V comparable, L any](g core.Digraph[V, L]) (*dsu.DisjointSet[V], error) {
	if g == nil {
		return nil, ErrNilDigraph
	}
	d := dsu.New[V]()
	d.AddAll(g.Vertices()...)
	for _, a := range g.Arcs() {
		d.Union(a.Source, a.Target)
	}
	return d, nil
}
