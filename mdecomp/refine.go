package mdecomp

import "github.com/habib-tchp/modtree/modtree"

// refine marks every node of sliceTrees that is not a module of G[⋃leaves]
// against the active-alpha edge set, splits degenerate nodes into their
// marked/unmarked parts, and labels the split point DEAD, per §4.3.
// sliceTrees[0] is the pivot leaf; sliceTrees[i], i ≥ 1, are T1, ..., Tk.
func (d *decomposer) refine(sliceTrees []*modtree.Node) error {
	allLeaves := make(map[string]struct{})
	for _, t := range sliceTrees {
		for _, leaf := range t.Leaves() {
			allLeaves[leaf.VertexID] = struct{}{}
		}
	}

	for i, t := range sliceTrees {
		idx := i
		t.Walk(func(n *modtree.Node) { n.TreeIndex = idx })
	}

	for i, t := range sliceTrees {
		for _, y := range t.Leaves() {
			if err := d.refineLeaf(i, y, allLeaves); err != nil {
				return err
			}
		}
	}

	return nil
}

func (d *decomposer) refineLeaf(treeIdx int, y *modtree.Node, allLeaves map[string]struct{}) error {
	st := d.states[y.VertexID]

	active := make(map[string]struct{})
	remaining := make(map[string]struct{})
	for w := range st.alpha {
		if _, ok := allLeaves[w]; ok {
			active[w] = struct{}{}
		} else {
			remaining[w] = struct{}{}
		}
	}
	st.activeAlpha = active
	st.alpha = remaining

	markedLeaves := make(map[*modtree.Node]struct{})
	markedNodes := make(map[*modtree.Node]struct{})
	unmarkedWithMarkedChild := make(map[*modtree.Node]struct{})

	for w := range active {
		target := d.states[w].container
		if target == nil {
			return &InvariantError{Op: "refine.activeAlpha", SliceIndex: treeIdx, Detail: "active-alpha target vertex has no container leaf"}
		}
		target.IsMarked = true
		markedLeaves[target] = struct{}{}
		if target.Parent != nil {
			target.Parent.MarkCount++
			unmarkedWithMarkedChild[target.Parent] = struct{}{}
		}
	}

	for leaf := range markedLeaves {
		parent := leaf.Parent
		for parent != nil {
			if parent.IsMarked {
				// Already fully marked and propagated upward by an earlier
				// leaf's walk this call; the chain above it was handled then.
				break
			}
			if parent.MarkCount > len(parent.Children) {
				return &InvariantError{Op: "refine.markAncestors", SliceIndex: treeIdx, Detail: "mark count exceeds child count"}
			}
			if parent.MarkCount == len(parent.Children) {
				if parent.Parent != nil && !parent.IsMarked {
					parent.Parent.MarkCount++
					unmarkedWithMarkedChild[parent.Parent] = struct{}{}
				}
				parent.IsMarked = true
				markedNodes[parent] = struct{}{}
				delete(unmarkedWithMarkedChild, parent)
				parent = parent.Parent
				continue
			}

			anyMarked := false
			for _, c := range parent.Children {
				if c.IsMarked {
					anyMarked = true
					break
				}
			}
			if anyMarked {
				unmarkedWithMarkedChild[parent] = struct{}{}
			}
			break
		}
	}

	for u := range unmarkedWithMarkedChild {
		splitDegenerateNode(u)
	}

	for leaf := range markedLeaves {
		leaf.IsMarked = false
		leaf.MarkCount = 0
	}
	for n := range markedNodes {
		n.IsMarked = false
		n.MarkCount = 0
	}
	for n := range unmarkedWithMarkedChild {
		n.IsMarked = false
		n.MarkCount = 0
		// Clears the nodes splitDegenerateNode created marked under n.
		for _, c := range n.Children {
			c.IsMarked = false
		}
	}
	st.activeAlpha = nil

	return nil
}

// splitDegenerateNode implements refine's splitting pass (§4.3.c) for one
// node u that has at least one marked child and is not itself fully marked.
func splitDegenerateNode(u *modtree.Node) {
	marked, unmarked := u.GroupChildren(func(n *modtree.Node) bool { return n.IsMarked })

	if len(marked) > 1 && u.IsDegenerate() {
		rep := u.ReplaceChildren(marked)
		rep.IsMarked = true
	}
	if len(unmarked) > 1 && u.IsDegenerate() {
		rep := u.ReplaceChildren(unmarked)
		rep.IsMarked = false
	}

	if u.Label == modtree.Dead {
		return
	}
	u.Label = modtree.Dead

	marked, unmarked = u.GroupChildren(func(n *modtree.Node) bool { return n.IsMarked })
	if u.TreeIndex == 1 {
		u.Children = append(append([]*modtree.Node(nil), marked...), unmarked...)
	} else {
		u.Children = append(append([]*modtree.Node(nil), unmarked...), marked...)
	}
}
