// Package core provides the fundamental generic digraph types: the Arc
// record, the Digraph and MutableDigraph contracts, and two interchangeable
// backing stores implementing them.
//
// What
//
//   - Arc[V, L]: a directed (Source, Target) pair with an optional label.
//   - Digraph[V, L]: the read-only contract — counts, membership, neighbor
//     and arc queries, full enumeration.
//   - MutableDigraph[V, L]: the contract extended with vertex/arc insertion,
//     removal, and label updates.
//   - ListDigraph: adjacency-list store, optimal for sparse graphs.
//   - MatrixDigraph: dense-matrix store, optimal for dense graphs with
//     frequent arc-existence checks.
//   - Derived helpers: degrees, path/circuit predicates, DOT export.
//
// Why
//
//	Algorithms (BFS, Tarjan, component analysis) depend only on Digraph,
//	never on a concrete store, so representations can be swapped freely:
//	for any identical mutation history the two stores answer every contract
//	query identically (modulo enumeration order).
//
// Semantics
//
//   - Vertices are compared by value (V is comparable); two equal values
//     denote the same vertex.
//   - At most one arc per ordered (u, v) pair; re-adding is a no-op even
//     with a different label. Self-loops are permitted.
//   - AddArc auto-inserts missing endpoints; RemoveVertex removes every
//     incident arc first, so no dangling arcs can exist.
//   - Queries about absent vertices return empty results, never errors.
//
// Determinism
//
//	Vertices() and Arcs() are deterministic for a fixed representation and
//	mutation history: ListDigraph enumerates in insertion order;
//	MatrixDigraph enumerates in current index order (stable until a removal
//	compacts the index range).
//
// Concurrency
//
//	None. The structures are single-threaded by design; callers must
//	serialize access externally if sharing across goroutines.
//
// Errors
//
//   - ErrVertexNotFound — index-level lookup on a missing vertex
//     (MatrixDigraph.VertexIndex only; contract queries never return it).
//   - ErrArcNotFound    — SetArcLabel on a missing arc.
package core
