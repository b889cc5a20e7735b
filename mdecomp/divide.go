package mdecomp

import (
	"github.com/habib-tchp/modtree/modtree"
	"github.com/habib-tchp/modtree/orderedpart"
)

// divide produces an ordered maximal-slice tree partition of s by
// LexBFS-style refinement around a pivot, then conquers it into the MDT of
// G[s]. p is an ordered partition of vertex IDs disjoint from s, inherited
// from the caller's own, not-yet-descended-into slices; divide refines it in
// place around the chosen pivot and returns the (possibly further
// restructured) partition alongside the resulting tree, per §4.2.
func (d *decomposer) divide(s map[string]struct{}, p *orderedpart.List) (*modtree.Node, *orderedpart.List, error) {
	x := minID(s)

	nx, err := d.neighborSet(x)
	if err != nil {
		return nil, nil, err
	}

	universe := setUnion(s, p.Flatten())
	for y := range nx {
		if _, ok := universe[y]; ok {
			d.states[y].alpha[x] = struct{}{}
		}
	}

	for _, c := range p.Classes() {
		a := setIntersect(c.IDs, nx)
		b := setMinus(c.IDs, a)
		if len(a) > 0 && len(b) > 0 {
			p.Replace(c, a, b)
		}
	}

	if len(s) == 1 {
		leaf := modtree.NewLeaf(x)
		d.states[x].container = leaf

		return leaf, p, nil
	}

	closedNx := setUnion(nx, setOf(x))
	nonNeighborsInS := setMinus(s, closedNx)
	neighborsInS := setIntersect(s, nx)
	if len(nonNeighborsInS) > 0 {
		p.Prepend(nonNeighborsInS)
	}
	if len(neighborsInS) > 0 {
		p.Prepend(neighborsInS)
	}

	pivotLeaf := modtree.NewLeaf(x)
	d.states[x].container = pivotLeaf
	sliceTrees := []*modtree.Node{pivotLeaf}

	for !p.IsEmpty() && isSubsetOf(p.First().IDs, s) {
		q := p.PopFirst()
		if q == nil {
			return nil, nil, &InvariantError{Op: "divide.popFirst", Detail: "partition reported non-empty but PopFirst returned nil"}
		}

		tree, newP, err := d.divide(q.IDs, p)
		if err != nil {
			return nil, nil, err
		}
		p = newP
		sliceTrees = append(sliceTrees, tree)
	}

	root, err := d.conquer(sliceTrees)
	if err != nil {
		return nil, nil, err
	}

	return root, p, nil
}

func (d *decomposer) neighborSet(x string) (map[string]struct{}, error) {
	ns, err := d.g.Neighbors(x)
	if err != nil {
		return nil, err
	}

	return setOf(ns...), nil
}

func isSubsetOf(a, universe map[string]struct{}) bool {
	for k := range a {
		if _, ok := universe[k]; !ok {
			return false
		}
	}

	return true
}
