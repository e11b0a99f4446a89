// SPDX-License-Identifier: MIT
package core

import (
	"fmt"
	"strings"
)

// DOT renders g in GraphViz digraph form: every vertex once (quoted,
// labeled by its string form), then every arc as source -> target.
//
// The output is a diagnostics aid, not a wire format: it is structurally
// stable (each vertex and arc listed exactly once, in the representation's
// enumeration order) but not guaranteed byte-for-byte stable across
// versions. Vertex names are rendered with %v and quoted, so any vertex
// type is safe to export.
//
// Complexity: O(V + A) string construction, no I/O.
func DOT[V comparable, L any](g Digraph[V, L]) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	for _, v := range g.Vertices() {
		name := fmt.Sprintf("%v", v)
		fmt.Fprintf(&b, "   %q [label=%q];\n", name, name)
	}
	for _, a := range g.Arcs() {
		fmt.Fprintf(&b, "   %q -> %q;\n", fmt.Sprintf("%v", a.Source), fmt.Sprintf("%v", a.Target))
	}
	b.WriteString("}\n")
	return b.String()
}
