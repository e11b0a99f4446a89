// Package digraph is a generic, in-memory toolkit for directed graphs —
// mutable topology, neighbor queries, unweighted shortest paths, and
// connectivity analysis behind one representation-agnostic contract.
//
// 🚀 What is digraph?
//
//	A small, single-threaded, zero-dependency library that brings together:
//		• Core primitives: generic Arc + Digraph/MutableDigraph contracts
//		• Two backing stores: adjacency-list (sparse) & dense-matrix (dense)
//		• Traversal: BFS with shortest paths and level distances
//		• Connectivity: weak components (union-find), strong components (Tarjan)
//		• Disjoint-set: a standalone generic union-find structure
//
// ✨ Why choose digraph?
//
//   - One contract, many stores – algorithms see core.Digraph, never the
//     representation, so list- and matrix-backed graphs are interchangeable
//   - Generic – vertices are any comparable type, arc labels any type
//   - Deterministic – enumeration is fixed for a given representation and
//     mutation history, so results are reproducible
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	core/       — Arc, Digraph contracts, ListDigraph & MatrixDigraph,
//	              derived predicates, DOT export
//	bfs/        — breadth-first search: Search, ShortestPath, Distance
//	dsu/        — generic disjoint-set (union-find)
//	components/ — weakly- & strongly-connected components
//
// Quick ASCII example:
//
//	    1 ──▶ 2
//	    ▲     │
//	    │     ▼
//	    └──── 3 ──▶ 4
//
//	vertices {1,2,3} form one strongly-connected component; 4 is its own.
//
//	go get github.com/katalvlaran/digraph
package digraph
