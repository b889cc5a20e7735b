package core

import "sort"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty. Idempotent if the vertex already
// exists. Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muAdj.Lock()
	g.ensureAdjRow(id)
	g.muAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// AddEdge adds the undirected edge {u,v}, creating either endpoint that does
// not yet exist. Returns ErrEmptyVertexID, ErrLoopNotAllowed (u == v), or
// ErrMultiEdgeNotAllowed if the edge already exists. Complexity: O(1).
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if _, exists := g.adjacency[u][v]; exists {
		return ErrMultiEdgeNotAllowed
	}

	g.ensureAdjRow(u)
	g.ensureAdjRow(v)
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the edge {u,v} exists. Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	_, exists := g.adjacency[u][v]

	return exists
}

// Neighbors returns the sorted IDs of vertices adjacent to id.
// Returns ErrVertexNotFound if id is not in the graph. Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	out := make([]string, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex IDs in sorted order. Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edgeCount
}

// GraphStats is a read-only summary of a Graph's size.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
}

// Stats produces a snapshot of the graph's current size. Complexity: O(1).
func (g *Graph) Stats() *GraphStats {
	return &GraphStats{VertexCount: g.VertexCount(), EdgeCount: g.EdgeCount()}
}

// CloneEmpty returns a new Graph with the same vertices but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := NewGraph()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		out.adjacency[id] = make(map[string]struct{})
	}

	return out
}

// Clone returns a deep copy of the Graph: vertices, edges, and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := g.CloneEmpty()

	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	for u, row := range g.adjacency {
		for v := range row {
			out.adjacency[u][v] = struct{}{}
		}
	}
	out.edgeCount = g.edgeCount

	return out
}

// Complement returns the complement graph Ḡ over the same vertex set: an
// edge {u,v} (u != v) is present in Ḡ iff it is absent in G. Complexity:
// O(V^2).
func (g *Graph) Complement() *Graph {
	ids := g.Vertices()
	out := g.CloneEmpty()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			u, v := ids[i], ids[j]
			if !g.HasEdge(u, v) {
				// AddEdge cannot fail here: both vertices already exist,
				// u != v, and the pair has not been added before.
				_ = out.AddEdge(u, v)
			}
		}
	}

	return out
}

// ensureAdjRow makes adjacency[id] non-nil. Caller must hold muAdj.
func (g *Graph) ensureAdjRow(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}
