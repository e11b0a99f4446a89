// Package components: sentinel errors for connectivity analysis.
package components

import "errors"

// ErrNilDigraph is returned when a nil digraph is passed to Weak or Strong.
var ErrNilDigraph = errors.New("components: digraph is nil")
