package mdecomp

import "github.com/habib-tchp/modtree/modtree"

// conquer builds the MDT of G[⋃ leaves(sliceTrees)] from the maximal slice
// tree partition sliceTrees = T0, ..., Tk produced by divide, per §4.7. T0 is
// the pivot leaf.
func (d *decomposer) conquer(sliceTrees []*modtree.Node) (*modtree.Node, error) {
	if len(sliceTrees) == 1 {
		return sliceTrees[0], nil
	}

	k := len(sliceTrees) - 1
	kPrime := k - 1

	leavesExceptLast := make(map[string]struct{})
	for _, t := range sliceTrees[:k] {
		for _, leaf := range t.Leaves() {
			leavesExceptLast[leaf.VertexID] = struct{}{}
		}
	}

	sampleID := sliceTrees[k].Leaves()[0].VertexID
	for w := range d.states[sampleID].alpha {
		if _, ok := leavesExceptLast[w]; ok {
			kPrime = k

			break
		}
	}

	workingTrees := sliceTrees[:kPrime+1]

	bCount := 0
	for i := 1; i < len(workingTrees); i++ {
		if i == 1 {
			labelByComponent(workingTrees[i], modtree.CoComponentConn, 0)
		} else {
			bCount = labelByComponent(workingTrees[i], modtree.ComponentConn, bCount)
		}
	}

	if err := d.refine(workingTrees); err != nil {
		return nil, err
	}
	factorize(workingTrees)

	sig := d.pivotPermutation(workingTrees)
	tree, placeholders, err := buildSpine(sig)
	if err != nil {
		return nil, err
	}

	replaced := make(map[*modtree.Node]struct{})
	for _, leaf := range tree.Leaves() {
		group, isPlaceholder := placeholders[leaf]
		if !isPlaceholder {
			continue
		}

		notReplaced := make(map[*modtree.Node]struct{}, len(group))
		for _, n := range group {
			notReplaced[n] = struct{}{}
		}
		for _, n := range group {
			if _, done := replaced[n]; done {
				continue
			}
			if _, pending := notReplaced[n]; !pending {
				continue
			}

			root := n.GetRoot()
			leaf.Parent.Insert(root)
			for _, l := range root.Leaves() {
				delete(notReplaced, l)
				replaced[l] = struct{}{}
			}
		}
	}

	for _, leaf := range tree.Leaves() {
		if _, isPlaceholder := placeholders[leaf]; isPlaceholder {
			leaf.Parent.RemoveChild(leaf)
		}
	}

	if kPrime == k-1 {
		if sliceTrees[k].Type == modtree.Parallel {
			sliceTrees[k].Insert(tree)
			tree = sliceTrees[k]
		} else {
			newRoot := modtree.NewInternal(modtree.Parallel)
			newRoot.Insert(tree)
			newRoot.Insert(sliceTrees[k])
			tree = newRoot
		}
	}

	collapseSameTypeChain(tree)

	return tree, nil
}

// labelByComponent assigns each leaf of root a Connectivity tag identifying
// the (co-)component it belongs to, starting the index counter at
// startIndex, and returns the counter after the last assignment. Multiple
// (co-)components are defined by root's children precisely when root is
// PARALLEL and kind is ComponentConn, or root is SERIES and kind is
// CoComponentConn (a PARALLEL root's children are its connected components;
// a SERIES root's children are its co-graph's connected components); in
// every other case root's own leaf set is a single (co-)component.
func labelByComponent(root *modtree.Node, kind modtree.ConnKind, startIndex int) int {
	multipleGroups := (root.Type == modtree.Parallel && kind == modtree.ComponentConn) ||
		(root.Type == modtree.Series && kind == modtree.CoComponentConn)

	count := startIndex
	if multipleGroups {
		for _, child := range root.Children {
			for _, leaf := range child.Leaves() {
				leaf.Connectivity = modtree.Connectivity{Index: count, Kind: kind}
			}
			count++
		}

		return count
	}

	for _, leaf := range root.Leaves() {
		leaf.Connectivity = modtree.Connectivity{Index: count, Kind: kind}
	}

	return count + 1
}

// collapseSameTypeChain merges every degenerate node into a same-type parent
// (§4.7 step 7). It walks root once before making any change, so mutating
// Children while processing later entries never disturbs the traversal —
// and since traversal is parent-before-child, a node's Parent is always
// up to date by the time the node itself is visited, letting multi-level
// chains collapse correctly in one pass.
func collapseSameTypeChain(root *modtree.Node) {
	var all []*modtree.Node
	root.Walk(func(n *modtree.Node) { all = append(all, n) })

	for _, u := range all {
		if u.Parent == nil || u.Parent.Type != u.Type || !u.IsDegenerate() {
			continue
		}

		parent := u.Parent
		parent.RemoveChild(u)
		for _, c := range u.Children {
			parent.Insert(c)
		}
	}
}
