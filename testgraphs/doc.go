// Package testgraphs builds small named graphs and randomized generators
// used exclusively by _test.go files in this module, to exercise mdecomp's
// boundary scenarios and property-based tests against known topologies.
//
// Adapted from the teacher's builder package: every constructor here
// returns a fully built *core.Graph directly rather than a composable
// Constructor closure, since fixtures in this package are never assembled
// incrementally the way builder's graphs are — one call, one fixture.
// Randomized generators take an explicit seed for determinism, the same
// contract builder.WithSeed documents.
//
// mdecomp, core, modtree, and orderedpart never import this package.
package testgraphs
