package mdecomp

import "github.com/habib-tchp/modtree/modtree"

// buildSpine reads sigma's μ/ρ boundary functions to assemble the chain of
// strong modules containing the pivot, per §4.6. It returns the resulting
// tree together with a map from each placeholder leaf it inserted to the
// (co-)component's member leaves; conquer resolves those placeholders into
// real subtrees and the map is discarded once conquer returns.
func buildSpine(s *sigma) (*modtree.Node, map[*modtree.Node][]*modtree.Node, error) {
	placeholders := make(map[*modtree.Node][]*modtree.Node)
	newPlaceholder := func(leaves []*modtree.Node) *modtree.Node {
		ph := modtree.NewLeaf("")
		placeholders[ph] = leaves

		return ph
	}

	tree := s.pivot
	a, b := len(s.coComponents), len(s.components)
	l, r := 0, 0

	for l != a || r != b {
		var module []*modtree.Node
		containsCoComponent, containsComponent := false, false

		// SERIES attempt.
		l++
		for l <= a && s.coComponents[l-1].mu == r {
			module = append(module, newPlaceholder(s.coComponents[l-1].leaves))
			containsCoComponent = true
			l++
		}
		l--

		// PARALLEL attempt.
		if len(module) == 0 {
			r++
			for r <= b && s.components[r-1].mu == l && s.components[r-1].rho == 0 {
				module = append(module, newPlaceholder(s.components[r-1].leaves))
				containsComponent = true
				r++
			}
			r--
		}

		// PRIME attempt.
		if len(module) == 0 {
			l++
			r++
			lPrime, rPrime := l, r

			t := max(s.components[r-1].mu, l)
			m := max(s.coComponents[l-1].mu, s.components[r-1].rho, r)

			for {
				tPrev, mPrev := t, m

				maxCompMu := 0
				for i := rPrime; i <= m; i++ {
					if s.components[i-1].mu > maxCompMu {
						maxCompMu = s.components[i-1].mu
					}
				}
				t = max(maxCompMu, t)

				if lPrime < 1 {
					return nil, nil, &InvariantError{Op: "spine.primeExpand", Detail: "l' fell below 1 before the μ(C'_i) range read"}
				}
				maxCoMu := 0
				for i := lPrime; i <= t; i++ {
					if s.coComponents[i-1].mu > maxCoMu {
						maxCoMu = s.coComponents[i-1].mu
					}
				}
				maxRho := 0
				for i := rPrime; i <= m; i++ {
					if s.components[i-1].rho > maxRho {
						maxRho = s.components[i-1].rho
					}
				}
				m = max(maxCoMu, maxRho, m)

				lPrime, rPrime = tPrev, mPrev
				if tPrev == t && mPrev == m {
					break
				}
			}

			for i := l; i <= t; i++ {
				module = append(module, newPlaceholder(s.coComponents[i-1].leaves))
				containsCoComponent = true
			}
			for i := r; i <= m; i++ {
				module = append(module, newPlaceholder(s.components[i-1].leaves))
				containsComponent = true
			}
			l, r = t, m
		}

		u := modtree.NewInternal(modtree.Prime)
		for _, elem := range module {
			u.Insert(elem)
		}
		u.Insert(tree)

		switch {
		case !containsComponent:
			u.Type = modtree.Series
		case !containsCoComponent:
			u.Type = modtree.Parallel
		default:
			u.Type = modtree.Prime
		}

		tree = u
	}

	return tree, placeholders, nil
}
