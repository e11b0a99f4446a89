// SPDX-License-Identifier: MIT
// File: derived.go
// Role: representation-agnostic queries derived from the Digraph contract.
// Every helper here consumes only contract operations, so it behaves
// identically over ListDigraph and MatrixDigraph.
package core

// InDegree returns |Predecessors(v)|; zero when v is absent.
func InDegree[V comparable, L any](g Digraph[V, L], v V) int {
	return len(g.Predecessors(v))
}

// OutDegree returns |Successors(v)|; zero when v is absent.
func OutDegree[V comparable, L any](g Digraph[V, L], v V) int {
	return len(g.Successors(v))
}

// IsPredecessor reports whether u directly precedes v, i.e. HasArc(u, v).
func IsPredecessor[V comparable, L any](g Digraph[V, L], u, v V) bool {
	return g.HasArc(u, v)
}

// IsSuccessor reports whether u directly succeeds v, i.e. HasArc(v, u).
func IsSuccessor[V comparable, L any](g Digraph[V, L], u, v V) bool {
	return g.HasArc(v, u)
}

// IsPath reports whether every consecutive pair of seq is a registered arc.
// An empty or single-vertex sequence is trivially a path (the single vertex
// need not even be present — no pair exists to check).
// Complexity: O(len(seq) · arc-check).
func IsPath[V comparable, L any](g Digraph[V, L], seq []V) bool {
	for i := 1; i < len(seq); i++ {
		if !g.HasArc(seq[i-1], seq[i]) {
			return false
		}
	}
	return true
}

// IsCircuit reports whether seq is empty, or is a path whose first element
// equals its last.
func IsCircuit[V comparable, L any](g Digraph[V, L], seq []V) bool {
	if len(seq) == 0 {
		return true
	}
	return seq[0] == seq[len(seq)-1] && IsPath(g, seq)
}
