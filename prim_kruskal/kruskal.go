// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It assumes an undirected, positively weighted *core.Graph and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/wasteroute/core"
)

// DisjointSet is a union-find structure over string IDs with path compression
// and union by rank.
type DisjointSet struct {
	parent map[string]string
	rank   map[string]int
	sets   int
}

// NewDisjointSet returns a DisjointSet where every id is its own singleton set.
func NewDisjointSet(ids []string) *DisjointSet {
	ds := &DisjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		if _, ok := ds.parent[id]; ok {
			continue
		}
		ds.parent[id] = id
		ds.sets++
	}

	return ds
}

// Find returns the representative of id's set. Unknown IDs are added as
// singletons on first use.
func (ds *DisjointSet) Find(id string) string {
	if _, ok := ds.parent[id]; !ok {
		ds.parent[id] = id
		ds.sets++

		return id
	}
	// Iterative find with path halving.
	for ds.parent[id] != id {
		ds.parent[id] = ds.parent[ds.parent[id]]
		id = ds.parent[id]
	}

	return id
}

// Union merges the sets of u and v. It reports false when they already share a set.
func (ds *DisjointSet) Union(u, v string) bool {
	ru, rv := ds.Find(u), ds.Find(v)
	if ru == rv {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
	ds.sets--

	return true
}

// Connected reports whether u and v belong to the same set.
func (ds *DisjointSet) Connected(u, v string) bool { return ds.Find(u) == ds.Find(v) }

// Sets returns the current number of disjoint sets.
func (ds *DisjointSet) Sets() int { return ds.sets }

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected, weighted graph.
// It uses a DisjointSet with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph      : graph is nil or directed.
//   - ErrDisconnected      : |V| == 0, or |V| > 1 but the graph is not fully connected.
//   - ErrMissingWeight     : a non-loop edge lacks the weight key.
//   - ErrNonPositiveWeight : a non-loop edge weight is <= 0, NaN or infinite.
//
// Steps:
//  1. Validate graph and weights; retrieve sorted vertex IDs.
//     If len(vertices)==1 → trivial MST (empty, weight=0).
//  2. Collect edges in insertion order, skip self-loops.
//  3. Stable-sort by ascending weight so ties keep insertion order.
//  4. Scan: for each edge (u,v) in different sets, union and keep it.
//  5. Stop at |V|-1 edges; fewer after the scan → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := NewOptions(opts...)
	vertices, err := validate(graph, o.WeightKey)
	if err != nil {
		return nil, 0, err
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	all := graph.Edges()
	edges := make([]*core.Edge, 0, len(all))
	weights := make(map[string]float64, len(all))
	for _, e := range all {
		if e.From == e.To {
			continue
		}
		w, _ := e.Weight(o.WeightKey)
		weights[e.ID] = w
		edges = append(edges, e)
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return weights[edges[i].ID] < weights[edges[j].ID]
	})

	ds := NewDisjointSet(vertices)
	var (
		mst         = make([]core.Edge, 0, len(vertices)-1)
		totalWeight float64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		if !ds.Union(e.From, e.To) {
			continue
		}
		mst = append(mst, *e)
		totalWeight += weights[e.ID]
		if len(mst) == numVerts-1 {
			break
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
