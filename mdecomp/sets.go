package mdecomp

import "sort"

// Small helpers over map[string]struct{} as the vertex-ID-set representation
// used throughout divide/refine/factorize, mirroring the source
// specification's set-theoretic operations directly rather than introducing
// a dedicated set type — these are used in only a handful of call sites.

func setOf(ids ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}

	return out
}

func sortedIDs(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

func setUnion(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}

	return out
}

func setIntersect(a, b map[string]struct{}) map[string]struct{} {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	out := make(map[string]struct{})
	for k := range small {
		if _, ok := big[k]; ok {
			out[k] = struct{}{}
		}
	}

	return out
}

func setMinus(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; !ok {
			out[k] = struct{}{}
		}
	}

	return out
}

func minID(s map[string]struct{}) string {
	min := ""
	first := true
	for id := range s {
		if first || id < min {
			min = id
			first = false
		}
	}

	return min
}
