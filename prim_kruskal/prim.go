// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, positively weighted *core.Graph and grows the MST from a root vertex using a min-heap.
package prim_kruskal

import (
	"container/heap"

	"github.com/katalvlaran/wasteroute/core"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected, weighted graph
// by growing outwards from a root vertex using a min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil or directed.
//   - ErrEmptyRoot          : WithRoot("") was passed explicitly.
//   - core.ErrVertexNotFound: the root vertex does not exist in the graph.
//   - ErrDisconnected       : |V| == 0, or |V| > 1 but the graph is not fully connected.
//   - ErrMissingWeight, ErrNonPositiveWeight: invalid weight on a non-loop edge.
//
// Steps:
//  1. Validate graph and weights; retrieve sorted vertex IDs.
//  2. Resolve root (default: smallest vertex ID) and check it exists.
//  3. Mark root visited, push its incident edges into the frontier heap.
//  4. Pop the lightest frontier edge (ties: lower insertion sequence).
//     Skip it if its far end is already visited, otherwise keep it and push
//     the new vertex's edges to unvisited neighbors.
//  5. Fewer than |V|-1 edges after the heap drains → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := NewOptions(opts...)
	vertices, err := validate(graph, o.WeightKey)
	if err != nil {
		return nil, 0, err
	}

	root := o.Root
	if root == "" {
		if o.rootSet {
			return nil, 0, ErrEmptyRoot
		}
		root = vertices[0]
	}
	if !graph.HasVertex(root) {
		return nil, 0, core.ErrVertexNotFound
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	n := len(vertices)
	visited := make(map[string]bool, n)
	mst := make([]core.Edge, 0, n-1)
	var totalWeight float64

	pq := &edgePQ{}
	heap.Init(pq)

	push := func(from string) error {
		neighbors, err := graph.Neighbors(from)
		if err != nil {
			return err
		}
		for _, e := range neighbors {
			to := e.Other(from)
			if visited[to] {
				continue
			}
			w, _ := e.Weight(o.WeightKey)
			heap.Push(pq, frontierItem{edge: e, to: to, weight: w})
		}

		return nil
	}

	visited[root] = true
	if err = push(root); err != nil {
		return nil, 0, err
	}

	for pq.Len() > 0 && len(mst) < n-1 {
		it := heap.Pop(pq).(frontierItem)
		if visited[it.to] {
			continue
		}
		visited[it.to] = true
		mst = append(mst, *it.edge)
		totalWeight += it.weight

		if err = push(it.to); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// frontierItem is a candidate edge leading to the unvisited vertex to.
type frontierItem struct {
	edge   *core.Edge
	to     string
	weight float64
}

// edgePQ implements heap.Interface for a min-heap of frontier edges ordered by
// (weight, insertion sequence).
type edgePQ []frontierItem

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].edge.Seq() < pq[j].edge.Seq()
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new frontierItem. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes the last element after heap adjustments. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
