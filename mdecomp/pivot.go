package mdecomp

import "github.com/habib-tchp/modtree/modtree"

// coComponentInfo is one co-component of G[L1], grouped left-to-right in
// ascending index (coComponentInfo[i] is C'_{i+1} in the source spec's
// 1-indexed notation) together with its aggregated μ-value.
type coComponentInfo struct {
	leaves []*modtree.Node
	mu     int
}

// componentInfo is one component of G[Li], i ≥ 2, analogous to
// coComponentInfo but additionally carrying its aggregated ρ-value.
type componentInfo struct {
	leaves []*modtree.Node
	mu     int
	rho    int
}

// sigma is the pivot factorizing permutation σ = C'a, ..., C'1, x, C1, ..., Cb
// produced by pivotPermutation and consumed by buildSpine.
type sigma struct {
	pivot        *modtree.Node
	coComponents []coComponentInfo
	components   []componentInfo
}

// pivotPermutation computes, for the factorized slice trees T0 (pivot), T1,
// ..., Tk', the (co-)component grouping and μ/ρ boundary functions that
// buildSpine needs to recover the chain of strong modules containing the
// pivot, per §4.5. Every leaf of Ti, i ≥ 1, must already carry a
// Connectivity tag identifying its (co-)component (assigned by
// labelByComponent before refine/factorize run).
func (d *decomposer) pivotPermutation(sliceTrees []*modtree.Node) *sigma {
	var coComponentLeaves, componentLeaves []*modtree.Node
	for i := 1; i < len(sliceTrees); i++ {
		if i == 1 {
			coComponentLeaves = sliceTrees[i].Leaves()
		} else {
			componentLeaves = append(componentLeaves, sliceTrees[i].Leaves()...)
		}
	}

	coGroups := groupConsecutiveByConnectivity(coComponentLeaves)
	for l, r := 0, len(coGroups)-1; l < r; l, r = l+1, r-1 {
		coGroups[l], coGroups[r] = coGroups[r], coGroups[l]
	}
	compGroups := groupConsecutiveByConnectivity(componentLeaves)

	a, b := len(coGroups), len(compGroups)

	for _, y := range coComponentLeaves {
		j := b
		for j > 0 && !d.adjacentToAny(y, compGroups[j-1]) {
			j--
		}
		y.Mu = j
	}

	for _, y := range componentLeaves {
		j := a
		for j > 0 && d.adjacentToAll(y, coGroups[j-1]) {
			j--
		}
		y.Mu = j
	}

	for i := 1; i <= b; i++ {
		for _, y := range compGroups[i-1] {
			y.Rho = 0
			for j := b; j > i; j-- {
				if d.adjacentToAny(y, compGroups[j-1]) {
					y.Rho = j
					break
				}
			}
		}
	}

	s := &sigma{pivot: sliceTrees[0]}
	for _, g := range coGroups {
		s.coComponents = append(s.coComponents, coComponentInfo{leaves: g, mu: maxMu(g)})
	}
	for _, g := range compGroups {
		mu, rho := 0, 0
		for _, y := range g {
			if y.Mu > mu {
				mu = y.Mu
			}
			if y.Rho > rho {
				rho = y.Rho
			}
		}
		s.components = append(s.components, componentInfo{leaves: g, mu: mu, rho: rho})
	}

	return s
}

func maxMu(leaves []*modtree.Node) int {
	m := 0
	for _, y := range leaves {
		if y.Mu > m {
			m = y.Mu
		}
	}

	return m
}

// groupConsecutiveByConnectivity partitions leaves (already left-to-right
// ordered) into maximal runs sharing the same Connectivity tag. Runs of one
// (co-)component are always contiguous by construction (labelByComponent
// assigns one tag per whole subtree before any reordering that would
// interleave them), so a single linear scan suffices.
func groupConsecutiveByConnectivity(leaves []*modtree.Node) [][]*modtree.Node {
	var groups [][]*modtree.Node
	for _, leaf := range leaves {
		if n := len(groups); n > 0 && groups[n-1][0].Connectivity == leaf.Connectivity {
			groups[n-1] = append(groups[n-1], leaf)
			continue
		}
		groups = append(groups, []*modtree.Node{leaf})
	}

	return groups
}

func (d *decomposer) adjacentToAll(y *modtree.Node, group []*modtree.Node) bool {
	for _, z := range group {
		if !d.g.HasEdge(y.VertexID, z.VertexID) {
			return false
		}
	}

	return true
}

func (d *decomposer) adjacentToAny(y *modtree.Node, group []*modtree.Node) bool {
	for _, z := range group {
		if d.g.HasEdge(y.VertexID, z.VertexID) {
			return true
		}
	}

	return false
}
