// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// on an undirected, positively weighted *core.Graph: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why it matters here:
//     A collection crew that must reach every intersection of a neighborhood only needs the
//     streets of a spanning tree; the MST is the cheapest such set of streets by length.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph, opts ...Option) ([]core.Edge, float64, error)
//
//   - Strategy: stable-sort all edges by weight, then merge components with a DisjointSet,
//     skipping edges whose endpoints are already connected. Stop at |V|−1 edges.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g *core.Graph, opts ...Option) ([]core.Edge, float64, error)
//
//   - Strategy: grow one tree from a root (default: smallest vertex ID), always taking the
//     lightest frontier edge from a min-heap.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Weights
//
// Edge weights are read from the attribute selected by WithWeightKey (core.WeightLength by
// default). Every non-loop edge must carry a finite value > 0; self-loops are skipped.
//
// Determinism
//
//   - Vertices are enumerated in sorted ID order; edges in insertion order.
//   - Kruskal breaks weight ties by insertion order (stable sort).
//   - Prim breaks weight ties by edge insertion sequence inside the heap.
//
// Error Conditions
//
//	- ErrInvalidGraph       graph is nil or directed.
//	- ErrEmptyRoot          WithRoot("") passed to Prim.
//	- core.ErrVertexNotFound the Prim root does not exist.
//	- ErrDisconnected       |V| == 0, or |V| > 1 and no spanning tree exists.
//	- ErrMissingWeight      a non-loop edge lacks the weight key.
//	- ErrNonPositiveWeight  a non-loop edge weight is <= 0, NaN or infinite.
//	- ErrUnknownMethod      Compute was asked for an unknown method.
//
// For examples of usage, see example_test.go in this package.
package prim_kruskal
