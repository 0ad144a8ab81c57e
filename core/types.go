// Package core defines the central Graph, Vertex, and Edge types of the street
// network, and provides thread-safe primitives for building, querying, and
// cloning graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs may be read across goroutines
// while the pipeline that owns them mutates nothing.
//
// This file declares Vertex, Edge, Graph, GraphOption, VertexOption,
// EdgeOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add parallel edge when multi-edges disabled.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Attribute defaults applied by AddEdge when the caller leaves them empty.
const (
	// WeightLength is the default weight attribute: segment length in meters.
	WeightLength = "length"

	// DefaultRoadClass is used when a segment carries no road classification.
	DefaultRoadClass = "unknown"

	// DefaultSourceID is used when a segment has no external identifier.
	DefaultSourceID = "N/A"
)

// Vertex represents an intersection in the street network.
//
// ID uniquely identifies this Vertex within its Graph. Lat/Lon are geometry only
// and never influence graph logic.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Lat is the latitude in decimal degrees.
	Lat float64

	// Lon is the longitude in decimal degrees.
	Lon float64

	// HasPosition reports whether Lat/Lon were supplied.
	HasPosition bool
}

// Edge represents a street segment between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, typed display attributes and a
// set of numeric weights keyed by attribute name (WeightLength by default).
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// Name is the street display name.
	Name string

	// RoadClass is the street category, e.g. "residential" or "primary".
	RoadClass string

	// SourceID is the opaque identifier of the segment in the source data.
	SourceID string

	// Weights holds numeric attributes keyed by name. Use Weight/SetWeight.
	Weights map[string]float64

	// seq is the insertion sequence number; it orders Edges() and breaks ties.
	seq uint64
}

// Weight returns the value of the numeric attribute key and whether it is set.
func (e *Edge) Weight(key string) (float64, bool) {
	if e.Weights == nil {
		return 0, false
	}
	w, ok := e.Weights[key]

	return w, ok
}

// SetWeight sets the numeric attribute key to w.
func (e *Edge) SetWeight(key string, w float64) {
	if e.Weights == nil {
		e.Weights = make(map[string]float64, 1)
	}
	e.Weights[key] = w
}

// HasPositiveWeight reports whether key is set to a finite value > 0.
func (e *Edge) HasPositiveWeight(key string) bool {
	w, ok := e.Weight(key)

	return ok && w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}

// Seq returns the insertion sequence of the edge within its graph.
// Lower values were inserted earlier.
func (e *Edge) Seq() uint64 { return e.seq }

// Other returns the endpoint opposite to id. For self-loops it returns id.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// clone returns a deep copy of e; the Weights map is not shared.
func (e *Edge) clone() *Edge {
	ne := *e
	if e.Weights != nil {
		ne.Weights = make(map[string]float64, len(e.Weights))
		for k, w := range e.Weights {
			ne.Weights[k] = w
		}
	}

	return &ne
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of all edges in the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures a vertex when it is added.
type VertexOption func(*Vertex)

// WithPosition sets the geographic position of a vertex.
func WithPosition(lat, lon float64) VertexOption {
	return func(v *Vertex) {
		v.Lat, v.Lon = lat, lon
		v.HasPosition = true
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithLength sets the WeightLength attribute (meters).
func WithLength(meters float64) EdgeOption {
	return WithWeight(WeightLength, meters)
}

// WithWeight sets an arbitrary numeric attribute.
func WithWeight(key string, w float64) EdgeOption {
	return func(e *Edge) { e.SetWeight(key, w) }
}

// WithName sets the street display name.
func WithName(name string) EdgeOption {
	return func(e *Edge) { e.Name = name }
}

// WithRoadClass sets the road category.
func WithRoadClass(class string) EdgeOption {
	return func(e *Edge) { e.RoadClass = class }
}

// WithSourceID sets the external identifier.
func WithSourceID(id string) EdgeOption {
	return func(e *Edge) { e.SourceID = id }
}

// WithAttributesOf copies name, road class, source ID and all weights of src.
func WithAttributesOf(src *Edge) EdgeOption {
	return func(e *Edge) {
		e.Name = src.Name
		e.RoadClass = src.RoadClass
		e.SourceID = src.SourceID
		for k, w := range src.Weights {
			e.SetWeight(k, w)
		}
	}
}

// Graph is the core in-memory street graph.
//
// It supports directed vs. undirected edges, parallel edges (multi-edges) and
// self-loops. muVert protects vertices; muEdgeAdj protects edges and
// adjacencyList. nextEdgeID is an atomic counter for Edge.ID and Edge.seq.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool // edge directedness
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
