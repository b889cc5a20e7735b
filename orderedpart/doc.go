// Package orderedpart implements an ordered partition of vertex-ID sets: a
// doubly-linked list of disjoint, nonempty classes supporting O(1) Prepend,
// PopFirst, and Replace.
//
// This is the one data structure mdecomp's divider needs and nothing more:
// refining a class by a pivot's adjacency is a linear scan performed by the
// caller (mdecomp), not a method here, matching the source algorithm's own
// minimal "replace(P, A, B)" primitive rather than a general splay/union-find
// style partition-refinement structure (grounded on the retrieved
// Jaxan-partition package's class/list shape, adapted from integer-interval
// blocks to vertex-ID sets since mdecomp partitions named vertices, not a
// dense integer range).
package orderedpart
