// SPDX-License-Identifier: MIT
// Package core declares Arc, the Digraph and MutableDigraph contracts,
// and the sentinel errors shared by every representation.
package core

import "errors"

// Sentinel errors for core digraph operations.
var (
	// ErrVertexNotFound indicates an index-level operation referenced a
	// vertex that is not present. Public contract queries (HasVertex,
	// Predecessors, ...) never return it; they report absence with empty
	// results instead.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrArcNotFound indicates a label update referenced an arc that is
	// not present.
	ErrArcNotFound = errors.New("core: arc not found")
)

// Arc is a directed edge from Source to Target, optionally carrying a Label.
//
// Arc identity is the (Source, Target) pair; the Label is payload and does
// not participate in identity. Use L = struct{} for unlabeled graphs.
type Arc[V comparable, L any] struct {
	// Source is the tail vertex of the arc.
	Source V

	// Target is the head vertex of the arc.
	Target V

	// Label is arbitrary user data attached to the arc. It can be updated
	// in place via MutableDigraph.SetArcLabel without affecting identity.
	Label L
}

// Digraph is the read-only contract every representation satisfies.
//
// Vertices are opaque comparable values; two equal values denote the same
// vertex. All queries about absent vertices return zero values or empty
// slices, never errors.
//
// Enumeration order (Vertices, Arcs, Predecessors, Successors) is
// representation-defined, but deterministic for a fixed representation and
// mutation history, and stable within an unmutated snapshot.
type Digraph[V comparable, L any] interface {
	// NumVertices returns the count of distinct vertices. O(1).
	NumVertices() int

	// NumArcs returns the count of distinct (source, target) pairs. O(1).
	NumArcs() int

	// HasVertex reports whether v is present.
	HasVertex(v V) bool

	// HasArc reports whether the arc (u, v) is present.
	// False when either endpoint is absent.
	HasArc(u, v V) bool

	// Vertices enumerates every vertex.
	Vertices() []V

	// Arcs enumerates every arc.
	Arcs() []Arc[V, L]

	// Predecessors returns the sources of all arcs ending at v.
	// Empty when v is absent.
	Predecessors(v V) []V

	// Successors returns the targets of all arcs starting at v.
	// Empty when v is absent.
	Successors(v V) []V

	// IncomingArcs returns all arcs ending at v. Empty when v is absent.
	IncomingArcs(v V) []Arc[V, L]

	// OutgoingArcs returns all arcs starting at v. Empty when v is absent.
	OutgoingArcs(v V) []Arc[V, L]

	// ArcBetween returns the arc (u, v) and true when present,
	// or the zero Arc and false otherwise.
	ArcBetween(u, v V) (Arc[V, L], bool)
}

// MutableDigraph extends Digraph with in-place topology mutation.
//
// All mutations are idempotent at the topology level: adding an existing
// vertex or arc is a no-op, removal of a missing vertex or arc is a no-op.
// The boolean results report whether the topology actually changed.
type MutableDigraph[V comparable, L any] interface {
	Digraph[V, L]

	// AddVertex inserts v if absent. Reports whether v was inserted.
	AddVertex(v V) bool

	// AddArc inserts the arc (u, v) with the zero Label, auto-inserting
	// missing endpoints first. A no-op when (u, v) already exists.
	// Reports whether the arc was inserted.
	AddArc(u, v V) bool

	// AddLabeledArc behaves like AddArc but attaches label to a newly
	// created arc. When (u, v) already exists this is a no-op and the
	// existing label is kept; use SetArcLabel to change it.
	AddLabeledArc(u, v V, label L) bool

	// RemoveVertex deletes v and every arc where v is a source or a
	// target. Reports whether v was present.
	RemoveVertex(v V) bool

	// RemoveArc deletes the arc (u, v). Reports whether it was present.
	RemoveArc(u, v V) bool

	// SetArcLabel replaces the label of the existing arc (u, v).
	// Returns ErrArcNotFound when the arc is absent.
	SetArcLabel(u, v V, label L) error
}

// compile-time conformance checks for both representations.
var (
	_ MutableDigraph[int, struct{}] = (*ListDigraph[int, struct{}])(nil)
	_ MutableDigraph[int, struct{}] = (*MatrixDigraph[int, struct{}])(nil)
)
