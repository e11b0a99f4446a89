// SPDX-License-Identifier: MIT
package core

// matrixCell is one adjacency-matrix entry: arc presence plus its label.
type matrixCell[L any] struct {
	present bool
	label   L
}

// MatrixDigraph is the dense-matrix representation of a digraph.
//
// Internal state is a bijection between vertices and the dense index range
// [0, n) (map vertex → index plus index → vertex slice) and an n×n cell
// matrix where cell (i, j) records the presence and label of the arc
// (vertex_i, vertex_j).
//
// Use this representation when the graph is dense or when arc existence is
// checked far more often than neighbors are enumerated: HasArc, AddArc and
// RemoveArc are O(1) after the index lookup, while Predecessors and
// Successors are O(V) column/row scans.
//
// RemoveVertex keeps indices dense by swapping the removed row/column with
// the last one and shrinking the matrix, so it reindexes the formerly-last
// vertex. Any externally cached index (from VertexIndex) is invalidated by
// a removal.
type MatrixDigraph[V comparable, L any] struct {
	idx   map[V]int         // vertex → row/col index
	verts []V               // index → vertex (the inverse bijection)
	cells [][]matrixCell[L] // cells[i][j]: arc (verts[i], verts[j])
	arcs  int
}

// NewMatrixDigraph creates an empty dense-matrix digraph.
// Complexity: O(1)
func NewMatrixDigraph[V comparable, L any]() *MatrixDigraph[V, L] {
	return &MatrixDigraph[V, L]{idx: make(map[V]int)}
}

// NumVertices returns the number of vertices. O(1).
func (d *MatrixDigraph[V, L]) NumVertices() int { return len(d.verts) }

// NumArcs returns the number of distinct (source, target) pairs. O(1).
func (d *MatrixDigraph[V, L]) NumArcs() int { return d.arcs }

// HasVertex reports whether v is present. O(1).
func (d *MatrixDigraph[V, L]) HasVertex(v V) bool {
	_, ok := d.idx[v]
	return ok
}

// VertexIndex returns the current matrix index of v, or ErrVertexNotFound.
//
// The index is stable only until the next RemoveVertex: removal compacts
// the index range by swapping in the last row/column, which reassigns the
// formerly-last vertex's index.
func (d *MatrixDigraph[V, L]) VertexIndex(v V) (int, error) {
	i, ok := d.idx[v]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return i, nil
}

// HasArc reports whether the arc (u, v) is present. O(1).
func (d *MatrixDigraph[V, L]) HasArc(u, v V) bool {
	i, ok1 := d.idx[u]
	j, ok2 := d.idx[v]
	return ok1 && ok2 && d.cells[i][j].present
}

// Vertices returns every vertex in current index order.
func (d *MatrixDigraph[V, L]) Vertices() []V {
	vs := make([]V, len(d.verts))
	copy(vs, d.verts)
	return vs
}

// Arcs returns every arc in row-major matrix order.
func (d *MatrixDigraph[V, L]) Arcs() []Arc[V, L] {
	all := make([]Arc[V, L], 0, d.arcs)
	for i, row := range d.cells {
		for j, c := range row {
			if c.present {
				all = append(all, Arc[V, L]{Source: d.verts[i], Target: d.verts[j], Label: c.label})
			}
		}
	}
	return all
}

// Predecessors scans v's column and returns the sources in index order.
// Empty when v is absent. O(V).
func (d *MatrixDigraph[V, L]) Predecessors(v V) []V {
	j, ok := d.idx[v]
	if !ok {
		return nil
	}
	preds := make([]V, 0)
	for i := range d.cells {
		if d.cells[i][j].present {
			preds = append(preds, d.verts[i])
		}
	}
	return preds
}

// Successors scans v's row and returns the targets in index order.
// Empty when v is absent. O(V).
func (d *MatrixDigraph[V, L]) Successors(v V) []V {
	i, ok := d.idx[v]
	if !ok {
		return nil
	}
	succs := make([]V, 0)
	for j, c := range d.cells[i] {
		if c.present {
			succs = append(succs, d.verts[j])
		}
	}
	return succs
}

// IncomingArcs returns all arcs ending at v, in index order of the source.
func (d *MatrixDigraph[V, L]) IncomingArcs(v V) []Arc[V, L] {
	j, ok := d.idx[v]
	if !ok {
		return nil
	}
	arcs := make([]Arc[V, L], 0)
	for i := range d.cells {
		if c := d.cells[i][j]; c.present {
			arcs = append(arcs, Arc[V, L]{Source: d.verts[i], Target: v, Label: c.label})
		}
	}
	return arcs
}

// OutgoingArcs returns all arcs starting at v, in index order of the target.
func (d *MatrixDigraph[V, L]) OutgoingArcs(v V) []Arc[V, L] {
	i, ok := d.idx[v]
	if !ok {
		return nil
	}
	arcs := make([]Arc[V, L], 0)
	for j, c := range d.cells[i] {
		if c.present {
			arcs = append(arcs, Arc[V, L]{Source: v, Target: d.verts[j], Label: c.label})
		}
	}
	return arcs
}

// ArcBetween returns the arc (u, v) and true when present. O(1).
func (d *MatrixDigraph[V, L]) ArcBetween(u, v V) (Arc[V, L], bool) {
	var zero Arc[V, L]
	i, ok1 := d.idx[u]
	j, ok2 := d.idx[v]
	if !ok1 || !ok2 || !d.cells[i][j].present {
		return zero, false
	}
	return Arc[V, L]{Source: u, Target: v, Label: d.cells[i][j].label}, true
}

// AddVertex assigns v the next free index and grows the matrix by one row
// and one column (new cells empty). No-op when v is present.
// Complexity: O(V) for the column growth.
func (d *MatrixDigraph[V, L]) AddVertex(v V) bool {
	if _, exists := d.idx[v]; exists {
		return false
	}
	n := len(d.verts)
	d.idx[v] = n
	d.verts = append(d.verts, v)
	for i := range d.cells {
		d.cells[i] = append(d.cells[i], matrixCell[L]{})
	}
	d.cells = append(d.cells, make([]matrixCell[L], n+1))
	return true
}

// AddArc inserts the arc (u, v) with the zero label.
// Missing endpoints are auto-inserted. No-op when (u, v) exists.
func (d *MatrixDigraph[V, L]) AddArc(u, v V) bool {
	var zero L
	return d.AddLabeledArc(u, v, zero)
}

// AddLabeledArc inserts the arc (u, v) carrying label.
// Missing endpoints are auto-inserted. When (u, v) already exists this is a
// no-op and the existing label is kept. O(1) after endpoint insertion.
func (d *MatrixDigraph[V, L]) AddLabeledArc(u, v V, label L) bool {
	d.AddVertex(u)
	d.AddVertex(v)
	i, j := d.idx[u], d.idx[v]
	if d.cells[i][j].present {
		return false
	}
	d.cells[i][j] = matrixCell[L]{present: true, label: label}
	d.arcs++
	return true
}

// RemoveArc clears cell (u, v). Reports whether the arc was present. O(1).
func (d *MatrixDigraph[V, L]) RemoveArc(u, v V) bool {
	i, ok1 := d.idx[u]
	j, ok2 := d.idx[v]
	if !ok1 || !ok2 || !d.cells[i][j].present {
		return false
	}
	d.cells[i][j] = matrixCell[L]{}
	d.arcs--
	return true
}

// RemoveVertex deletes v and every incident arc, then compacts the index
// range: v's row and column are overwritten with the last row and column,
// the matrix shrinks by one, and the formerly-last vertex takes v's index.
// This reindexing invalidates any externally cached vertex index.
// Reports whether v was present. Complexity: O(V).
func (d *MatrixDigraph[V, L]) RemoveVertex(v V) bool {
	i, ok := d.idx[v]
	if !ok {
		return false
	}
	n := len(d.verts)
	last := n - 1

	// Account for the arcs about to disappear: v's row (out) plus v's
	// column (in), counting a self-loop once.
	for j := 0; j < n; j++ {
		if d.cells[i][j].present {
			d.arcs--
		}
		if j != i && d.cells[j][i].present {
			d.arcs--
		}
	}

	if i != last {
		// Swap v's row and column with the last row and column, leaving
		// all of v's cells in the last row/column, then rebind the
		// displaced vertex to index i. The diagonal crossing is handled
		// by the two swaps composing.
		d.cells[i], d.cells[last] = d.cells[last], d.cells[i]
		for r := 0; r < n; r++ {
			d.cells[r][i], d.cells[r][last] = d.cells[r][last], d.cells[r][i]
		}
		moved := d.verts[last]
		d.verts[i] = moved
		d.idx[moved] = i
	}

	// Shrink by one row and one column.
	d.cells = d.cells[:last]
	for r := range d.cells {
		d.cells[r] = d.cells[r][:last]
	}
	d.verts = d.verts[:last]
	delete(d.idx, v)
	return true
}

// SetArcLabel replaces the label of the existing arc (u, v).
// Returns ErrArcNotFound when the arc is absent. O(1).
func (d *MatrixDigraph[V, L]) SetArcLabel(u, v V, label L) error {
	i, ok1 := d.idx[u]
	j, ok2 := d.idx[v]
	if !ok1 || !ok2 || !d.cells[i][j].present {
		return ErrArcNotFound
	}
	d.cells[i][j].label = label
	return nil
}
