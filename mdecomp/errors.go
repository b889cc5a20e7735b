package mdecomp

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph is returned by Decompose when the input graph has no
// vertices; there is no modular decomposition tree for the empty graph.
var ErrEmptyGraph = errors.New("mdecomp: graph has no vertices")

// InvariantError reports an internal algorithm invariant that should be
// unreachable in correct operation. It carries enough context (which
// operation, which slice, what was observed) to diagnose a real bug rather
// than leaving the caller with a bare "something went wrong". Decompose
// returns these directly; it never panics.
type InvariantError struct {
	Op         string // e.g. "divide.popFirst", "spine.primeExpand"
	SliceIndex int
	Detail     string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("mdecomp: internal invariant violated in %s (slice %d): %s", e.Op, e.SliceIndex, e.Detail)
}
