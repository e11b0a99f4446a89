// Package components computes connectivity partitions of a core.Digraph:
// weakly-connected components via union-find and strongly-connected
// components via Tarjan's algorithm.
//
// What
//
//   - Weak(g): union-find over all vertices, unioning the endpoints of
//     every arc — arcs are treated as undirected edges for this purpose
//     only. Two vertices land in the same subset iff they are connected
//     ignoring direction.
//   - Strong(g): Tarjan's strongly-connected-components algorithm. Two
//     vertices land in the same subset iff each is reachable from the
//     other along directed arcs.
//
// Both return a fresh *dsu.DisjointSet partitioning exactly the graph's
// vertex set. The result is a derived, disposable artifact: it reflects
// the topology at call time and is never stored on the graph, so a graph
// can be analyzed repeatedly (or shared read-only across analyses) without
// state leaking between runs.
//
// The Tarjan engine simulates the classic recursion with an explicit
// frame stack, so arbitrarily deep graphs cannot exhaust the goroutine
// call stack; see tarjan.go for the bookkeeping.
//
// Complexity: O(V + A) time and O(V) extra memory for either analysis.
// Both consume only the read-only Digraph contract (vertex enumeration and
// successor queries), never a concrete representation.
package components
