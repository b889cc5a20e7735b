package mdecomp

import (
	"github.com/habib-tchp/modtree/core"
	"github.com/habib-tchp/modtree/modtree"
	"github.com/habib-tchp/modtree/orderedpart"
)

// Decompose computes the modular decomposition tree of g, following the
// divide-and-conquer scheme of Tedder-Corneil-Habib-Paul: a recursive
// partition-refinement driver (divide) produces a maximal-slice tree
// partition via a LexBFS-style pivot scan, which tree refinement and
// factorization reduce to a factorizing permutation, from which the spine
// builder recovers the chain of strong modules containing each pivot.
//
// Decompose never mutates g and allocates its own per-call state, so
// multiple goroutines may call it concurrently on independent graphs, or on
// the same graph, without synchronization (§5).
//
// It returns ErrEmptyGraph if g has no vertices, or an *InvariantError if an
// internal algorithm invariant — one that should be unreachable in correct
// operation — is violated; otherwise a complete tree and a nil error. There
// are no partial results.
func Decompose(g *core.Graph) (*modtree.Tree, error) {
	if g.VertexCount() == 0 {
		return nil, ErrEmptyGraph
	}

	ids := g.Vertices()
	states := make(map[string]*vertexState, len(ids))
	for _, id := range ids {
		states[id] = newVertexState()
	}

	d := &decomposer{g: g, states: states}

	s := setOf(ids...)
	root, _, err := d.divide(s, orderedpart.New())
	if err != nil {
		return nil, err
	}

	return modtree.FromNode(root), nil
}
