// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters and snapshots.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	AllowsMulti bool
	AllowsLoops bool

	VertexCount        int
	PositionedVertices int
	EdgeCount          int
	LoopCount          int
}

// Directed reports whether edges of this graph are one-way.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, AddEdge(from,to,...) rejects duplicates with ErrMultiEdgeNotAllowed.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic, read-only snapshot of configuration flags and
// catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex counters, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge counters, then release.
//
// Avoids holding both locks simultaneously.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	for _, v := range g.vertices {
		if v.HasPosition {
			stats.PositionedVertices++
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return stats
}

// TotalWeight sums attribute key over all edges that carry it.
// Edges without the attribute contribute nothing.
//
// Complexity: O(E log E) (sums in insertion order so results are reproducible
// bit for bit).
func (g *Graph) TotalWeight(key string) float64 {
	var total float64
	for _, e := range g.Edges() {
		if w, ok := e.Weight(key); ok {
			total += w
		}
	}

	return total
}
