// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID so edge IDs stay monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// options reconstructs the GraphOption list equivalent to g's flags.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	clone := NewGraph(g.options()...)
	for id, v := range g.vertices {
		nv := *v
		clone.vertices[id] = &nv
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges
// (including weight maps), and adjacency. Edge IDs and sequences are preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		ne := e.clone()
		clone.edges[eid] = ne
		ensureAdjacency(clone, ne.From, ne.To)
		clone.adjacencyList[ne.From][ne.To][eid] = struct{}{}
		if !ne.Directed && ne.From != ne.To {
			ensureAdjacency(clone, ne.To, ne.From)
			clone.adjacencyList[ne.To][ne.From][eid] = struct{}{}
		}
	}

	return clone
}
