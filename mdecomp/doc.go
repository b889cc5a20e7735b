// Package mdecomp computes the modular decomposition tree (MDT) of a finite
// simple undirected graph using the divide-and-conquer algorithm of Tedder,
// Corneil, Habib, and Paul.
//
// A module of a graph G is a vertex subset M such that every vertex outside
// M is either adjacent to all of M or to none of it. The MDT is a rooted
// tree whose leaves are V(G) and whose internal nodes — labeled SERIES,
// PARALLEL, or PRIME — enumerate the strong modules of G.
//
// The algorithm is a single recursive pass with three cooperating phases
// per recursion level:
//
//   - divide picks a pivot, computes a LexBFS-style maximal-slice partition
//     of the remaining vertices, and recurses into each slice.
//   - refine and factorize mark, split, and relabel the resulting slice
//     trees so that their leaves, read left to right, form a factorizing
//     permutation of the pivot's neighborhood.
//   - pivotPermutation, buildSpine, and conquer read the μ/ρ boundary
//     functions off that permutation to assemble the chain of strong
//     modules containing the pivot, then glue the slices back together.
//
// Running time is not linear: every divide call flattens and scans the whole
// outer partition (see the orderedpart package), so even an edgeless graph
// costs time quadratic in |V|.
//
// Decompose is the package's only exported entry point; every other
// identifier here is an implementation detail of one Decompose call.
//
// Errors: ErrEmptyGraph for an empty input graph; *InvariantError for an
// internal invariant violation, checked with errors.As.
package mdecomp
