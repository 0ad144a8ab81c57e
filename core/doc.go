// Package core provides a thread-safe in-memory street graph with a minimal,
// composable API surface.
//
// The Graph G = (V,E) models intersections (vertices) and street segments
// (edges):
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges): distinct segments that
//     join the same two intersections
//   - Self-loops (WithLoops)
//   - Typed segment attributes: Name, RoadClass, SourceID
//   - Numeric weights keyed by attribute name (WeightLength = "length", meters)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Monotonic Edge.ID generation ("e1", "e2", …) that also fixes the
//     insertion order returned by Edges()
//
// Determinism:
//
//	Vertices()    sorted by vertex ID
//	Edges()       insertion order
//	Neighbors()   insertion order
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, opts ...VertexOption) error  // O(1)
//	HasVertex(id string) bool                         // O(1)
//	Vertex(id string) (Vertex, error)                 // O(1)
//
//	// Edges
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)
//	Vertices() []string
//	Edges() []*Edge
//	TotalWeight(key string) float64
//	Stats() GraphStats
//
//	// Cloning & views
//	CloneEmpty() *Graph
//	Clone() *Graph
//	InducedSubgraph(g, keep) *Graph
//	UndirectedView(g) *Graph
//
// Edge attributes default to RoadClass = DefaultRoadClass and
// SourceID = DefaultSourceID when left empty; weights have no default, an
// absent weight is reported by Edge.Weight as ok == false.
package core
