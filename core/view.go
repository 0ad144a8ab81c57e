// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// Determinism:
//   - Preserves vertex records, edge IDs, sequences and attributes.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// UndirectedView returns a new undirected multigraph with the same vertices and
// one undirected edge per source edge (IDs, sequences and attributes kept).
// Opposite directed edges therefore appear as two parallel edges; collapsing
// them is left to the caller. The input graph is not mutated.
//
// Complexity: O(V + E).
func UndirectedView(g *Graph) *Graph {
	opts := []GraphOption{WithDirected(false), WithMultiEdges()}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}

	return copyInto(NewGraph(opts...), g, nil, false)
}

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both in keep. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	opts := g.options()
	g.muVert.RUnlock()

	return copyInto(NewGraph(opts...), g, keep, true)
}

// copyInto copies vertices and edges of src into dst, restricted to keep when
// non-nil. When preserveDirection is false every copied edge is undirected.
func copyInto(dst, src *Graph, keep map[string]bool, preserveDirection bool) *Graph {
	kept := func(id string) bool { return keep == nil || keep[id] }

	src.muVert.RLock()
	for id, v := range src.vertices {
		if kept(id) {
			nv := *v
			dst.vertices[id] = &nv
			dst.adjacencyList[id] = make(map[string]map[string]struct{})
		}
	}
	src.muVert.RUnlock()

	src.muEdgeAdj.RLock()
	// Carry the counter forward so future AddEdge() calls cannot collide with copied IDs.
	srcNextEdgeID := atomic.LoadUint64(&src.nextEdgeID)
	for eid, e := range src.edges {
		if !kept(e.From) || !kept(e.To) {
			continue
		}
		ne := e.clone()
		if !preserveDirection {
			ne.Directed = false
		}
		dst.edges[eid] = ne
		ensureAdjacency(dst, ne.From, ne.To)
		dst.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			ensureAdjacency(dst, ne.To, ne.From)
			dst.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}
	src.muEdgeAdj.RUnlock()
	atomic.StoreUint64(&dst.nextEdgeID, srcNextEdgeID)

	return dst
}
