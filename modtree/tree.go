package modtree

import "sort"

// Tree is the exported, read-only modular decomposition tree. Unlike Node,
// it carries none of the algorithm's scratch fields.
type Tree struct {
	Type     NodeType
	VertexID string // only meaningful when Type == Leaf
	Children []*Tree
}

// FromNode converts a finished internal *Node (as produced by mdecomp once
// the algorithm has completed) into the exported, read-only *Tree view.
// Child order is preserved verbatim: it is part of the factorizing
// permutation for Prime nodes and a don't-care for Series/Parallel nodes
// that callers normalize with Canonicalize if they need to compare trees.
func FromNode(n *Node) *Tree {
	t := &Tree{Type: n.Type, VertexID: n.VertexID}
	for _, c := range n.Children {
		t.Children = append(t.Children, FromNode(c))
	}

	return t
}

// Leaves returns the leaf descendants of t, left to right.
func (t *Tree) Leaves() []*Tree {
	var out []*Tree
	var walk func(*Tree)
	walk = func(n *Tree) {
		if n.Type == Leaf {
			out = append(out, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t)

	return out
}

// minLeafID returns the lexicographically smallest VertexID among t's leaves.
func (t *Tree) minLeafID() string {
	leaves := t.Leaves()
	min := leaves[0].VertexID
	for _, l := range leaves[1:] {
		if l.VertexID < min {
			min = l.VertexID
		}
	}

	return min
}

// Canonicalize returns a copy of t with Series and Parallel children sorted
// by their minimum contained leaf ID, recursively. Prime children are never
// reordered, since their order carries algorithmic meaning. This exists
// purely to make test assertions order-independent where the module type
// itself does not prescribe an order; Decompose's own output is never
// auto-canonicalized.
func (t *Tree) Canonicalize() *Tree {
	out := &Tree{Type: t.Type, VertexID: t.VertexID}
	for _, c := range t.Children {
		out.Children = append(out.Children, c.Canonicalize())
	}
	if t.Type == Series || t.Type == Parallel {
		sort.Slice(out.Children, func(i, j int) bool {
			return out.Children[i].minLeafID() < out.Children[j].minLeafID()
		})
	}

	return out
}

// Equal reports whether t and o have identical shape, types, leaf IDs, and
// child order (no canonicalization is performed; callers wanting an
// order-insensitive comparison for Series/Parallel should Canonicalize both
// trees first).
func (t *Tree) Equal(o *Tree) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Type != o.Type || t.VertexID != o.VertexID || len(t.Children) != len(o.Children) {
		return false
	}
	for i := range t.Children {
		if !t.Children[i].Equal(o.Children[i]) {
			return false
		}
	}

	return true
}
