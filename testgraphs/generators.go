package testgraphs

import (
	"fmt"
	"math/rand"

	"github.com/habib-tchp/modtree/core"
)

// VertexID returns the zero-padded vertex ID generators in this package use,
// so that lexicographic and numeric vertex order coincide up to n = 99.
func VertexID(i int) string {
	return fmt.Sprintf("v%02d", i)
}

func newGraphWithVertices(n int) (*core.Graph, []string) {
	g := core.NewGraph()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = VertexID(i)
		_ = g.AddVertex(ids[i])
	}

	return g, ids
}

// SingleVertex builds a one-vertex, edgeless graph (boundary scenario B1).
func SingleVertex() *core.Graph {
	g, _ := newGraphWithVertices(1)

	return g
}

// TwoIsolated builds two vertices with no edge between them (B2).
func TwoIsolated() *core.Graph {
	g, _ := newGraphWithVertices(2)

	return g
}

// TwoAdjacent builds two vertices joined by an edge (B3).
func TwoAdjacent() *core.Graph {
	g, ids := newGraphWithVertices(2)
	_ = g.AddEdge(ids[0], ids[1])

	return g
}

// Path builds the simple path P_n (n ≥ 1): v00 - v01 - ... - v(n-1).
func Path(n int) *core.Graph {
	g, ids := newGraphWithVertices(n)
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(ids[i], ids[i+1])
	}

	return g
}

// Cycle builds the simple cycle C_n (n ≥ 3).
func Cycle(n int) *core.Graph {
	g, ids := newGraphWithVertices(n)
	for i := 0; i < n; i++ {
		_ = g.AddEdge(ids[i], ids[(i+1)%n])
	}

	return g
}

// Complete builds the complete simple graph K_n (n ≥ 1).
func Complete(n int) *core.Graph {
	g, ids := newGraphWithVertices(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(ids[i], ids[j])
		}
	}

	return g
}

// Empty builds n isolated vertices and no edges (the complement of Complete).
func Empty(n int) *core.Graph {
	g, _ := newGraphWithVertices(n)

	return g
}

// CompleteBipartite builds K_{n1,n2}: n1 left vertices v00..v(n1-1), n2 right
// vertices v(n1)..v(n1+n2-1), every left-right pair joined, no edges within
// a side.
func CompleteBipartite(n1, n2 int) *core.Graph {
	g, ids := newGraphWithVertices(n1 + n2)
	for i := 0; i < n1; i++ {
		for j := n1; j < n1+n2; j++ {
			_ = g.AddEdge(ids[i], ids[j])
		}
	}

	return g
}

// TriangleAndIsolated builds a 3-cycle plus one vertex with no incident
// edges (boundary scenario B6).
func TriangleAndIsolated() *core.Graph {
	g, ids := newGraphWithVertices(4)
	_ = g.AddEdge(ids[0], ids[1])
	_ = g.AddEdge(ids[1], ids[2])
	_ = g.AddEdge(ids[2], ids[0])

	return g
}

// Petersen builds the Petersen graph: an outer 5-cycle, an inner 5-cycle
// connected as a pentagram, and spokes joining each outer vertex to its
// corresponding inner vertex.
func Petersen() *core.Graph {
	g, ids := newGraphWithVertices(10)
	outer := ids[:5]
	inner := ids[5:]
	for i := 0; i < 5; i++ {
		_ = g.AddEdge(outer[i], outer[(i+1)%5])
		_ = g.AddEdge(outer[i], inner[i])
		_ = g.AddEdge(inner[i], inner[(i+2)%5])
	}

	return g
}

// RandomSparse builds an Erdős-Rényi-like simple graph on n vertices where
// each of the n(n-1)/2 possible edges is included independently with
// probability p. Deterministic for a fixed seed.
func RandomSparse(n int, p float64, seed int64) *core.Graph {
	g, ids := newGraphWithVertices(n)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_ = g.AddEdge(ids[i], ids[j])
			}
		}
	}

	return g
}
