package mdecomp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/habib-tchp/modtree/core"
	"github.com/habib-tchp/modtree/modtree"
)

// assertModuleProperty checks testable property 1: every internal node's
// leaf set is a module of g — every vertex outside it is adjacent to all of
// it or none of it.
func assertModuleProperty(t *testing.T, g *core.Graph, tree *modtree.Tree) {
	t.Helper()

	all := make(map[string]struct{})
	for _, id := range g.Vertices() {
		all[id] = struct{}{}
	}

	var walk func(n *modtree.Tree)
	walk = func(n *modtree.Tree) {
		if n.Type == modtree.Leaf {
			return
		}
		members := make(map[string]struct{})
		for _, l := range n.Leaves() {
			members[l.VertexID] = struct{}{}
		}
		for outside := range all {
			if _, in := members[outside]; in {
				continue
			}
			adjToAll, adjToNone := true, true
			for member := range members {
				if g.HasEdge(outside, member) {
					adjToNone = false
				} else {
					adjToAll = false
				}
			}
			assert.True(t, adjToAll || adjToNone, "vertex %s is neither fully adjacent nor fully non-adjacent to module %v", outside, members)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree)
}

// assertLeafSetEquals checks testable property 2.
func assertLeafSetEquals(t *testing.T, g *core.Graph, tree *modtree.Tree) {
	t.Helper()

	want := g.Vertices()
	leaves := tree.Leaves()
	got := make([]string, len(leaves))
	seen := make(map[string]struct{}, len(leaves))
	for i, l := range leaves {
		got[i] = l.VertexID
		_, dup := seen[l.VertexID]
		assert.False(t, dup, "duplicate leaf %s", l.VertexID)
		seen[l.VertexID] = struct{}{}
	}
	assert.Len(t, got, len(want))
	for _, id := range want {
		_, ok := seen[id]
		assert.True(t, ok, "vertex %s missing from MDT leaves", id)
	}
}

// assertNoSameTypeParent checks testable property 3.
func assertNoSameTypeParent(t *testing.T, tree *modtree.Tree) {
	t.Helper()

	var walk func(n *modtree.Tree)
	walk = func(n *modtree.Tree) {
		for _, c := range n.Children {
			if c.Type == n.Type && (c.Type == modtree.Series || c.Type == modtree.Parallel) {
				t.Errorf("node of type %s has a child of the same type", n.Type)
			}
			walk(c)
		}
	}
	walk(tree)
}

// assertMinTwoChildren checks testable property 4.
func assertMinTwoChildren(t *testing.T, tree *modtree.Tree) {
	t.Helper()

	var walk func(n *modtree.Tree)
	walk = func(n *modtree.Tree) {
		if n.Type != modtree.Leaf {
			assert.GreaterOrEqual(t, len(n.Children), 2, "internal node of type %s has fewer than 2 children", n.Type)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tree)
}

func assertAllInvariants(t *testing.T, g *core.Graph, tree *modtree.Tree) {
	t.Helper()
	assertLeafSetEquals(t, g, tree)
	assertModuleProperty(t, g, tree)
	assertNoSameTypeParent(t, tree)
	assertMinTwoChildren(t, tree)
}
