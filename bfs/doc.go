// Package bfs provides breadth-first search over a street core.Graph.
//
// What
//
//   - Explore intersections in non-decreasing hop distance from a start vertex.
//   - Result carries Order, Depth and ParentEdge (the segment used to
//     discover each vertex), enough to rebuild the BFS tree.
//   - WithFilterEdge prunes individual segments, e.g. to walk only the
//     segments selected for a spanning tree.
//
// Why
//
//   - Connected-component discovery during graph preparation.
//   - Reachability checks of computed spanning trees.
//
// Determinism
//
//	core.Graph.Neighbors returns segments in insertion order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d)
//   - Memory: O(V)
package bfs
