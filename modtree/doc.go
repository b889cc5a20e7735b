// Package modtree defines the tree data structure modular decomposition is
// built from and read back out of: an internal, mutable Node used by
// mdecomp while the algorithm runs, and an exported, read-only Tree
// presenting the finished modular decomposition tree.
//
// Node carries the scratch fields the algorithm needs during a single
// Decompose call (label, mark, mark-count, tree-index, connectivity, μ, ρ).
// These are ordinary struct fields, not a side table, because every Node is
// allocated fresh for one Decompose call and never reused across calls —
// there is nothing to reset between runs, only within one.
//
// Tree strips all of that away: NodeType, an optional leaf VertexID, and
// ordered Children. Child order is significant only for Prime nodes; see
// Tree.Canonicalize for a test-only normalization helper.
package modtree
