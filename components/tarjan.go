package components

import (
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/dsu"
)

// Strong computes the strongly-connected components of g using Tarjan's
// algorithm: two vertices share a subset iff each is reachable from the
// other along directed arcs.
//
// All traversal state lives in a per-call engine, never on the graph, so
// g may be shared read-only across concurrent analyses and Strong is
// safely re-entrant. The depth-first exploration is driven by an explicit
// frame stack rather than native recursion, so deep graphs cannot
// overflow the call stack; the index/low-link update order is exactly
// that of the recursive formulation.
//
// Complexity: O(V + A) time, O(V) memory.
func Strong[V comparable, L any](g core.Digraph[V, L]) (*dsu.DisjointSet[V], error) {
	if g == nil {
		return nil, ErrNilDigraph
	}
	t := &tarjan[V]{
		succ:    g.Successors,
		indices: make(map[V]int, g.NumVertices()),
		lowlink: make(map[V]int, g.NumVertices()),
		onStack: make(map[V]struct{}, g.NumVertices()),
		out:     dsu.New[V](),
	}
	for _, v := range g.Vertices() {
		if _, seen := t.indices[v]; !seen {
			t.strongconnect(v)
		}
	}
	return t.out, nil
}

// tarjan holds the per-run state machine: the discovery-index counter, the
// vertex stack of the current exploration path with its membership set,
// and the discovery-index / lowest-reachable-ancestor maps.
type tarjan[V comparable] struct {
	succ    func(V) []V
	index   int
	indices map[V]int // vertex → discovery index
	lowlink map[V]int // vertex → lowest index reachable via subtree + back-arcs
	stack   []V       // vertices on the current exploration path
	onStack map[V]struct{}
	out     *dsu.DisjointSet[V]
}

// frame is one simulated recursion record: the vertex being explored and
// the cursor into its successor list.
type frame[V comparable] struct {
	v     V
	succs []V
	next  int
}

// visit assigns v its discovery index and low-link, advances the counter,
// and pushes v onto the exploration stack.
func (t *tarjan[V]) visit(v V) {
	t.indices[v] = t.index
	t.lowlink[v] = t.index
	t.index++
	t.stack = append(t.stack, v)
	t.onStack[v] = struct{}{}
}

// strongconnect explores the DFS tree rooted at root, closing each SCC as
// its root frame completes.
//
// Per successor w of the frame vertex v:
//   - w undiscovered      → push a child frame (the simulated recursion);
//     v's low-link is folded with w's low-link when the child frame pops.
//   - w on the stack      → back-arc: fold w's discovery index into
//     lowlink(v).
//   - w discovered, off-stack → w belongs to an already-closed SCC: ignore.
//
// When a frame finishes with indices[v] == lowlink[v], v is the root of a
// completed SCC: the stack is popped and unioned with v down to and
// including v itself.
func (t *tarjan[V]) strongconnect(root V) {
	t.visit(root)
	frames := []frame[V]{{v: root, succs: t.succ(root)}}

	for len(frames) > 0 {
		f := &frames[len(frames)-1]

		if f.next < len(f.succs) {
			w := f.succs[f.next]
			f.next++
			if _, seen := t.indices[w]; !seen {
				t.visit(w)
				frames = append(frames, frame[V]{v: w, succs: t.succ(w)})
			} else if _, on := t.onStack[w]; on {
				if t.indices[w] < t.lowlink[f.v] {
					t.lowlink[f.v] = t.indices[w]
				}
			}
			continue
		}

		// All successors of f.v processed: close the frame.
		if t.lowlink[f.v] == t.indices[f.v] {
			// f.v is the root of a completed SCC: pop down to f.v.
			for {
				w := t.stack[len(t.stack)-1]
				t.stack = t.stack[:len(t.stack)-1]
				delete(t.onStack, w)
				t.out.Union(f.v, w)
				if w == f.v {
					break
				}
			}
		}
		child := f.v
		frames = frames[:len(frames)-1]
		if len(frames) > 0 {
			// Fold the child's low-link into its parent, as the return
			// from the recursive call would.
			p := &frames[len(frames)-1]
			if t.lowlink[child] < t.lowlink[p.v] {
				t.lowlink[p.v] = t.lowlink[child]
			}
		}
	}
}
