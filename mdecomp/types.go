package mdecomp

import "github.com/habib-tchp/modtree/modtree"

// vertexState is the per-vertex scratch state the algorithm threads through
// one Decompose call, keyed by vertex ID in decomposer.states (§3 of the
// design: a side table, not a field on core.Vertex, since this state is
// meaningless outside a single run of the algorithm).
type vertexState struct {
	// alpha holds neighbor IDs known to lie in partition classes not yet
	// descended into; grows as divide's outer recursion progresses and
	// shrinks only when consumed into activeAlpha for the slice currently
	// being refined.
	alpha map[string]struct{}
	// activeAlpha holds neighbor IDs confined to the maximal-slice tree
	// partition currently being refined; computed from alpha when refine
	// processes this vertex's leaf and cleared once that leaf is done.
	activeAlpha map[string]struct{}
	// container is a non-owning back-reference to the tree leaf currently
	// holding this vertex; updated the moment the vertex is first placed
	// into a leaf by divide.
	container *modtree.Node
}

func newVertexState() *vertexState {
	return &vertexState{alpha: make(map[string]struct{})}
}

// decomposer carries the graph and per-vertex state for one Decompose call.
// Every exported entry point constructs a fresh decomposer; nothing here
// survives across calls, so concurrent calls to Decompose never interfere
// with each other (§5).
type decomposer struct {
	g      graphReader
	states map[string]*vertexState
}

// graphReader is the subset of *core.Graph the algorithm needs. Declaring it
// as an interface keeps mdecomp's dependency on core to the handful of
// read-only queries it actually uses.
type graphReader interface {
	Neighbors(id string) ([]string, error)
	HasEdge(u, v string) bool
	Vertices() []string
	VertexCount() int
}
