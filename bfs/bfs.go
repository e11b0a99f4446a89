package bfs

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state for one run.
type walker[V comparable, L any] struct {
	graph core.Digraph[V, L]
	opts  Options[V]
	queue []queueItem[V]
	stop  *V // when non-nil, the run ends once this vertex is visited
	res   *Result[V]
}

// Search runs breadth-first search on g starting from source, applying any
// number of functional Options. Vertices are marked discovered on enqueue,
// so each is visited at most once, in discovery order.
// Returns ErrNilDigraph or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func Search[V comparable, L any](g core.Digraph[V, L], source V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrNilDigraph
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	w := newWalker(g, o)
	w.enqueueRoot(source)
	return w.res, w.loop()
}

// ShortestPath returns the vertex sequence of some minimum-arc-count path
// from u to v, inclusive of both endpoints, discovered by BFS expanding
// successors in g.Successors() order. Reports false when g is nil, either
// endpoint is absent, or v is unreachable from u.
// ShortestPath(g, u, u) for a present u yields the single-vertex path [u].
func ShortestPath[V comparable, L any](g core.Digraph[V, L], u, v V) ([]V, bool) {
	w, ok := shortestWalk(g, u, v)
	if !ok {
		return nil, false
	}
	return w.res.PathTo(v)
}

// Distance returns the BFS level of v from u: the number of arcs on a
// shortest path. Reports false exactly when ShortestPath does.
// Not symmetric: Distance(g, u, v) says nothing about Distance(g, v, u).
func Distance[V comparable, L any](g core.Digraph[V, L], u, v V) (int, bool) {
	w, ok := shortestWalk(g, u, v)
	if !ok {
		return 0, false
	}
	d, reached := w.res.Depth[v]
	return d, reached
}

// shortestWalk runs a plain BFS from u that stops as soon as v is visited.
// Reports false when the walk could not start at all.
func shortestWalk[V comparable, L any](g core.Digraph[V, L], u, v V) (*walker[V, L], bool) {
	if g == nil || !g.HasVertex(u) {
		return nil, false
	}
	w := newWalker(g, DefaultOptions[V]())
	w.stop = &v
	w.enqueueRoot(u)
	// No hooks are installed, so the loop cannot fail.
	_ = w.loop()
	return w, true
}

func newWalker[V comparable, L any](g core.Digraph[V, L], o Options[V]) *walker[V, L] {
	n := g.NumVertices()
	return &walker[V, L]{
		graph: g,
		opts:  o,
		queue: make([]queueItem[V], 0, n),
		res: &Result[V]{
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}
}

// enqueueRoot seeds the queue with the source at depth 0 (no parent).
func (w *walker[V, L]) enqueueRoot(v V) {
	w.res.Depth[v] = 0
	w.queue = append(w.queue, queueItem[V]{v: v, depth: 0})
}

// enqueue marks v discovered at depth d with the given parent and adds it
// to the queue.
func (w *walker[V, L]) enqueue(v V, d int, parent V) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem[V]{v: v, depth: d})
}

// loop processes the queue until empty, the stop vertex is visited, or a
// hook aborts.
func (w *walker[V, L]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(item.v, item.depth); err != nil {
				return fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
			}
		}
		if w.stop != nil && item.v == *w.stop {
			return nil
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.graph.Successors(item.v) {
			if !w.opts.FilterNeighbor(item.v, nbr) {
				continue
			}
			// first time seen?
			if _, seen := w.res.Depth[nbr]; !seen {
				w.enqueue(nbr, next, item.v)
			}
		}
	}
	return nil
}
