package dsu

// DisjointSet partitions a universe of comparable elements into disjoint
// subsets, each identified by a representative element. The zero value is
// not usable; create instances with New.
type DisjointSet[V comparable] struct {
	parent  map[V]V   // element → parent; roots point at themselves
	size    map[V]int // root → subset size (meaningful for roots only)
	ord     []V       // elements in insertion order, for Partitions
	subsets int
}

// New creates an empty DisjointSet.
// Complexity: O(1)
func New[V comparable]() *DisjointSet[V] {
	return &DisjointSet[V]{
		parent: make(map[V]V),
		size:   make(map[V]int),
	}
}

// Add registers v as a new singleton subset. No-op when v is already
// present. Reports whether v was inserted.
func (d *DisjointSet[V]) Add(v V) bool {
	if _, ok := d.parent[v]; ok {
		return false
	}
	d.parent[v] = v
	d.size[v] = 1
	d.ord = append(d.ord, v)
	d.subsets++
	return true
}

// AddAll registers every element of vs, skipping those already present.
func (d *DisjointSet[V]) AddAll(vs ...V) {
	for _, v := range vs {
		d.Add(v)
	}
}

// Contains reports whether v has been added.
func (d *DisjointSet[V]) Contains(v V) bool {
	_, ok := d.parent[v]
	return ok
}

// Size returns the number of registered elements.
func (d *DisjointSet[V]) Size() int { return len(d.ord) }

// Subsets returns the current number of disjoint subsets.
func (d *DisjointSet[V]) Subsets() int { return d.subsets }

// Find returns the representative of the subset containing v.
// Reports false when v has not been added.
func (d *DisjointSet[V]) Find(v V) (V, bool) {
	if _, ok := d.parent[v]; !ok {
		var zero V
		return zero, false
	}
	return d.find(v), true
}

// SameSubset reports whether u and v share a representative.
// False when either element is absent.
func (d *DisjointSet[V]) SameSubset(u, v V) bool {
	if !d.Contains(u) || !d.Contains(v) {
		return false
	}
	return d.find(u) == d.find(v)
}

// Union merges the subsets containing u and v, auto-adding either element
// if absent. No-op when they already share a subset.
func (d *DisjointSet[V]) Union(u, v V) {
	d.Add(u)
	d.Add(v)
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	// Attach the smaller subset under the larger root.
	if d.size[ru] < d.size[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	d.size[ru] += d.size[rv]
	delete(d.size, rv)
	d.subsets--
}

// Partitions enumerates all current subsets. Subsets appear in order of
// their earliest-added member; members appear in insertion order.
// Complexity: O(n α(n)).
func (d *DisjointSet[V]) Partitions() [][]V {
	groups := make(map[V]int, d.subsets) // root → position in out
	out := make([][]V, 0, d.subsets)
	for _, v := range d.ord {
		root := d.find(v)
		i, ok := groups[root]
		if !ok {
			i = len(out)
			groups[root] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], v)
	}
	return out
}

// find walks to the root with iterative path compression: every visited
// element is re-pointed at its grandparent, halving the path length.
// Caller guarantees v is present.
func (d *DisjointSet[V]) find(v V) V {
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}
	return v
}
