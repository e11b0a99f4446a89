// SPDX-License-Identifier: MIT
package core

// ListDigraph is the adjacency-list representation of a digraph.
//
// Internal state is two mappings, vertex → outgoing arcs and
// vertex → incoming arcs, plus an insertion-order vertex slice that is the
// authoritative enumeration surface (the key set of the outgoing map always
// equals the vertex set). Per-vertex arc collections are plain slices in
// append order, so arc-existence checks and arc removal are linear in the
// degree of the queried vertex. That is a deliberate simplicity trade-off
// for sparse graphs; use MatrixDigraph when arc checks dominate.
//
// Complexity summary (d = degree of the touched vertex):
//
//	AddVertex, HasVertex            O(1)
//	AddArc, HasArc, RemoveArc       O(d)
//	RemoveVertex                    O(deg(v) + V)
//	Predecessors, Successors        O(d)
//	Vertices                        O(V); Arcs O(V + A)
type ListDigraph[V comparable, L any] struct {
	out  map[V][]Arc[V, L] // vertex → outgoing arcs, append order
	in   map[V][]Arc[V, L] // vertex → incoming arcs, append order
	ord  []V               // vertices in insertion order
	arcs int
}

// NewListDigraph creates an empty adjacency-list digraph.
// Complexity: O(1)
func NewListDigraph[V comparable, L any]() *ListDigraph[V, L] {
	return &ListDigraph[V, L]{
		out: make(map[V][]Arc[V, L]),
		in:  make(map[V][]Arc[V, L]),
	}
}

// NumVertices returns the number of vertices. O(1).
func (d *ListDigraph[V, L]) NumVertices() int { return len(d.ord) }

// NumArcs returns the number of distinct (source, target) pairs. O(1).
func (d *ListDigraph[V, L]) NumArcs() int { return d.arcs }

// HasVertex reports whether v is present. O(1).
func (d *ListDigraph[V, L]) HasVertex(v V) bool {
	_, ok := d.out[v]
	return ok
}

// HasArc reports whether the arc (u, v) is present. O(out-degree of u).
func (d *ListDigraph[V, L]) HasArc(u, v V) bool {
	_, ok := indexOfArc(d.out[u], u, v)
	return ok
}

// Vertices returns every vertex in insertion order.
func (d *ListDigraph[V, L]) Vertices() []V {
	vs := make([]V, len(d.ord))
	copy(vs, d.ord)
	return vs
}

// Arcs returns every arc, grouped by source in vertex insertion order,
// each group in arc append order.
func (d *ListDigraph[V, L]) Arcs() []Arc[V, L] {
	all := make([]Arc[V, L], 0, d.arcs)
	for _, v := range d.ord {
		all = append(all, d.out[v]...)
	}
	return all
}

// Predecessors returns the sources of all arcs ending at v, in arc append
// order. Empty when v is absent.
func (d *ListDigraph[V, L]) Predecessors(v V) []V {
	arcs := d.in[v]
	preds := make([]V, len(arcs))
	for i, a := range arcs {
		preds[i] = a.Source
	}
	return preds
}

// Successors returns the targets of all arcs starting at v, in arc append
// order. Empty when v is absent.
func (d *ListDigraph[V, L]) Successors(v V) []V {
	arcs := d.out[v]
	succs := make([]V, len(arcs))
	for i, a := range arcs {
		succs[i] = a.Target
	}
	return succs
}

// IncomingArcs returns a copy of the arcs ending at v.
func (d *ListDigraph[V, L]) IncomingArcs(v V) []Arc[V, L] {
	return append([]Arc[V, L](nil), d.in[v]...)
}

// OutgoingArcs returns a copy of the arcs starting at v.
func (d *ListDigraph[V, L]) OutgoingArcs(v V) []Arc[V, L] {
	return append([]Arc[V, L](nil), d.out[v]...)
}

// ArcBetween returns the arc (u, v) and true when present.
func (d *ListDigraph[V, L]) ArcBetween(u, v V) (Arc[V, L], bool) {
	arcs := d.out[u]
	if i, ok := indexOfArc(arcs, u, v); ok {
		return arcs[i], true
	}
	var zero Arc[V, L]
	return zero, false
}

// AddVertex inserts v if absent (idempotent). Reports whether inserted.
// Complexity: O(1)
func (d *ListDigraph[V, L]) AddVertex(v V) bool {
	if _, exists := d.out[v]; exists {
		return false
	}
	// Key presence in both maps is the membership record; the nil slices
	// grow on first arc insertion.
	d.out[v] = nil
	d.in[v] = nil
	d.ord = append(d.ord, v)
	return true
}

// AddArc inserts the arc (u, v) with the zero label.
// Missing endpoints are auto-inserted. No-op when (u, v) exists.
func (d *ListDigraph[V, L]) AddArc(u, v V) bool {
	var zero L
	return d.AddLabeledArc(u, v, zero)
}

// AddLabeledArc inserts the arc (u, v) carrying label.
// Missing endpoints are auto-inserted. When (u, v) already exists this is a
// no-op and the existing label is kept, even if label differs.
func (d *ListDigraph[V, L]) AddLabeledArc(u, v V, label L) bool {
	d.AddVertex(u)
	d.AddVertex(v)
	// Guard on the real (u, v) pair: no parallel arcs, ever.
	if _, ok := indexOfArc(d.out[u], u, v); ok {
		return false
	}
	a := Arc[V, L]{Source: u, Target: v, Label: label}
	d.out[u] = append(d.out[u], a)
	d.in[v] = append(d.in[v], a)
	d.arcs++
	return true
}

// RemoveArc deletes the arc (u, v) from both adjacency sides.
// Reports whether it was present.
func (d *ListDigraph[V, L]) RemoveArc(u, v V) bool {
	i, ok := indexOfArc(d.out[u], u, v)
	if !ok {
		return false
	}
	d.out[u] = append(d.out[u][:i], d.out[u][i+1:]...)
	j, _ := indexOfArc(d.in[v], u, v)
	d.in[v] = append(d.in[v][:j], d.in[v][j+1:]...)
	d.arcs--
	return true
}

// RemoveVertex deletes v and every arc touching it (both directions),
// then its map entries. Reports whether v was present.
// Complexity: O(deg(v) + V) for the insertion-order cleanup.
func (d *ListDigraph[V, L]) RemoveVertex(v V) bool {
	if _, exists := d.out[v]; !exists {
		return false
	}
	// Detach v's outgoing arcs from their targets' incoming lists.
	removed := 0
	for _, a := range d.out[v] {
		removed++
		if a.Target == v {
			continue // self-loop lives only in v's own lists
		}
		if j, ok := indexOfArc(d.in[a.Target], v, a.Target); ok {
			d.in[a.Target] = append(d.in[a.Target][:j], d.in[a.Target][j+1:]...)
		}
	}
	// Detach v's incoming arcs from their sources' outgoing lists.
	for _, a := range d.in[v] {
		if a.Source == v {
			continue // self-loop already counted above
		}
		removed++
		if j, ok := indexOfArc(d.out[a.Source], a.Source, v); ok {
			d.out[a.Source] = append(d.out[a.Source][:j], d.out[a.Source][j+1:]...)
		}
	}
	d.arcs -= removed
	delete(d.out, v)
	delete(d.in, v)
	for i, w := range d.ord {
		if w == v {
			d.ord = append(d.ord[:i], d.ord[i+1:]...)
			break
		}
	}
	return true
}

// SetArcLabel replaces the label of the existing arc (u, v) on both
// adjacency sides. Returns ErrArcNotFound when the arc is absent.
func (d *ListDigraph[V, L]) SetArcLabel(u, v V, label L) error {
	i, ok := indexOfArc(d.out[u], u, v)
	if !ok {
		return ErrArcNotFound
	}
	d.out[u][i].Label = label
	j, _ := indexOfArc(d.in[v], u, v)
	d.in[v][j].Label = label
	return nil
}

// indexOfArc scans arcs for the (src, dst) pair and returns its position.
func indexOfArc[V comparable, L any](arcs []Arc[V, L], src, dst V) (int, bool) {
	for i, a := range arcs {
		if a.Source == src && a.Target == dst {
			return i, true
		}
	}
	return 0, false
}
