// Package dsu implements a generic disjoint-set (union-find) structure:
// a partition of comparable elements into disjoint subsets under merge
// and same-subset queries.
//
// What
//
//   - Add / AddAll: register elements as singleton subsets.
//   - Union: merge the subsets containing two elements (auto-adding them).
//   - Find / SameSubset: representative lookup and partition membership.
//   - Subsets / Size: partition count and element count.
//   - Partitions: enumerate the current subsets deterministically.
//
// Strategy
//
//	Find applies iterative path compression (each visited element is
//	pointed at its grandparent, halving the path), and Union attaches the
//	smaller subset under the larger (union by size). Together they make
//	each operation near-O(1) amortized — O(α(n)), the inverse Ackermann
//	function. Only correctness is contractual; the strategy is documented
//	so benchmarks stay interpretable.
//
// Determinism
//
//	Partitions() lists subsets in order of their earliest-added member,
//	and members of each subset in insertion order, so output is
//	reproducible for a fixed operation history.
//
// A DisjointSet is a cheap, disposable artifact: the components package
// builds a fresh one per connectivity query and never stores it on a
// graph. Single-threaded, like everything else in this module.
package dsu
