package mdecomp

import "github.com/habib-tchp/modtree/modtree"

// factorize propagates DEAD labels upward as ZOMBIE, reorders each ZOMBIE
// node's children so the ZOMBIE/DEAD descendants cluster to one side, and
// detaches the children of every DEAD/ZOMBIE node (Parent = nil, children
// slice left intact) so Node.GetRoot called from any leaf reaches a subtree
// that is once again in full harmony with the module property, per §4.4.
func factorize(sliceTrees []*modtree.Node) {
	for i, tree := range sliceTrees {
		var all []*modtree.Node
		tree.Walk(func(n *modtree.Node) { all = append(all, n) })

		for _, u := range all {
			if u.Label != modtree.Dead {
				continue
			}
			for _, anc := range u.Ancestors() {
				if anc.Label == modtree.Zombie {
					break
				}
				if anc.Label != modtree.Dead {
					anc.Label = modtree.Zombie
				}
			}
		}

		for _, u := range all {
			if u.Label != modtree.Zombie {
				continue
			}
			reorderZombieChildren(u, i)
		}

		for _, u := range all {
			if u.Label == modtree.Dead || u.Label == modtree.Zombie {
				u.Label = modtree.NoLabel
				for _, c := range u.Children {
					c.Parent = nil
				}
			}
		}
	}
}

func isDeadOrZombie(n *modtree.Node) bool {
	return n.Label == modtree.Dead || n.Label == modtree.Zombie
}

func reorderZombieChildren(u *modtree.Node, treeIdx int) {
	_, b := u.GroupChildren(isDeadOrZombie)
	if len(b) > 1 && u.IsDegenerate() {
		u.ReplaceChildren(b)
	}

	a, b := u.GroupChildren(isDeadOrZombie)
	if treeIdx == 1 {
		u.Children = append(append([]*modtree.Node(nil), a...), b...)
	} else {
		u.Children = append(append([]*modtree.Node(nil), b...), a...)
	}
}
