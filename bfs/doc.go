// Package bfs provides breadth-first search over a core.Digraph,
// returning minimum-arc-count shortest paths, level distances, parent
// links, and visit order.
//
// What
//
//   - Search(g, source, opts...): full reachable traversal from a source,
//     producing a Result with:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (arcs) from the source
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - ShortestPath(g, u, v): some minimum-arc-count path u…v inclusive.
//   - Distance(g, u, v): the BFS level of v from u. Not symmetric.
//   - Optional hooks (WithOnVisit), neighbor filtering
//     (WithFilterNeighbor), and depth limiting (WithMaxDepth).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + A) time.
//   - Discover reachable subgraphs and level layering.
//   - Foundation for the connectivity analyses in components/.
//
// Tie-break policy
//
//	Among equal-length paths, ShortestPath returns the one discovered
//	first by BFS expanding successors in the order returned by
//	g.Successors(). This is BFS-discovery order, not a canonical global
//	minimum; swapping the representation may change which equal-length
//	path is reported, never its length.
//
// Absence policy
//
//	ShortestPath and Distance report absence (ok == false) when either
//	endpoint is missing or no path exists — never an error. Search keeps
//	the sentinel-error surface (ErrNilDigraph, ErrSourceNotFound,
//	ErrOptionViolation) for callers that want the full traversal record.
//
// Complexity (V = |vertices|, A = |arcs|)
//
//   - Time:   O(V + A)   (each vertex and arc seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map)
//
// Traversals run to completion; there is no cancellation surface.
package bfs
