// File: methods_adjacent.go
// Role: Neighborhood API (Neighbors) and adjacency helpers.
// Determinism:
//   - Neighbors() returns edges in insertion order.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks.
//   - ensureAdjacency is called only under muEdgeAdj write lock.

package core

// Neighbors returns all edges incident to the given vertex id.
//
// Neighborhood policy:
//   - Directed graphs: only edges with e.From == id (outgoing edges).
//   - Undirected graphs: every incident edge once; self-loops appear once.
//
// Returns pointers to live catalog edges; treat them as read-only.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []*Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid := range edgeSet {
			out = append(out, g.edges[eid])
		}
	}
	sortBySeq(out)

	return out, nil
}

// ensureAdjacency makes adjacencyList[from][to] non-nil.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
