// Package bfs: tunable options, sentinel errors, and the Result record
// for breadth-first search over a core.Digraph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilDigraph is returned if a nil digraph is passed to Search.
	ErrNilDigraph = errors.New("bfs: digraph is nil")

	// ErrSourceNotFound is returned when the source vertex is absent.
	ErrSourceNotFound = errors.New("bfs: source vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures Search behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when Search is invoked.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks customizing a Search run.
type Options[V comparable] struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(v V, depth int) error

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr→next considered for expansion.
	FilterNeighbor func(curr, next V) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no visit hook.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		OnVisit:        nil,
		FilterNeighbor: func(_, _ V) bool { return true },
		MaxDepth:       0,
		err:            nil,
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from the callback stops the traversal.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips arcs for which fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, next V) bool) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMaxDepth stops expanding beyond the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *Options[V]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a Search traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in arcs) from the source.
//   - Parent: map from vertex to its predecessor in the BFS tree;
//     the source has no entry.
type Result[V comparable] struct {
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// Reached reports whether v was discovered by the traversal.
func (r *Result[V]) Reached(v V) bool {
	_, ok := r.Depth[v]
	return ok
}

// PathTo reconstructs the source→dest path along parent links.
// Returns false if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, bool) {
	if !r.Reached(dest) {
		return nil, false
	}
	// build reversed path, then flip in place
	path := []V{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
