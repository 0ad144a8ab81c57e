// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wasteroute/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or directed.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected graph")

// ErrEmptyRoot indicates that an explicitly empty start vertex was given to Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| == 0 or
// |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrMissingWeight indicates an edge carries no value for the selected weight key.
var ErrMissingWeight = errors.New("prim_kruskal: edge weight missing")

// ErrNonPositiveWeight indicates an edge weight is zero, negative, NaN or infinite.
var ErrNonPositiveWeight = errors.New("prim_kruskal: edge weight must be positive and finite")

// ErrUnknownMethod indicates MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, the weight attribute it
// minimizes, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal over core.WeightLength).
//
// Fields:
//
//	Method    string - one of MethodPrim or MethodKruskal.
//	Root      string - start vertex ID for Prim; "" selects the smallest vertex ID.
//	WeightKey string - edge weight attribute; "" means core.WeightLength.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string

	// WeightKey is the edge attribute to minimize.
	WeightKey string

	// rootSet records an explicit WithRoot call, so WithRoot("") is rejected
	// instead of silently picking the default root.
	rootSet bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
		opts.rootSet = true
	}
}

// WithWeightKey returns an Option that selects the edge weight attribute.
func WithWeightKey(key string) Option {
	return func(opts *MSTOptions) {
		opts.WeightKey = key
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	- Method    = MethodKruskal
//	- Root      = "" (smallest vertex ID for Prim)
//	- WeightKey = core.WeightLength
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:    MethodKruskal,
		WeightKey: core.WeightLength,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.WeightKey == "" {
		o.WeightKey = core.WeightLength
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//   - MethodKruskal: Kruskal(graph, ...).
//   - MethodPrim:    Prim(graph, ...).
//   - otherwise:     ErrUnknownMethod.
//
// Returns:
//
//	[]core.Edge - edges of the MST (empty if the graph has a single vertex).
//	float64     - total weight of the MST.
//	error       - non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	fwd := []Option{WithWeightKey(opts.WeightKey)}
	if opts.rootSet || opts.Root != "" {
		fwd = append(fwd, WithRoot(opts.Root))
	}

	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, fwd...)
	case MethodPrim:
		return Prim(graph, fwd...)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validate checks the shared preconditions of Prim and Kruskal and returns the
// sorted vertex IDs. Self-loops are ignored during weight validation.
func validate(graph *core.Graph, key string) ([]string, error) {
	if graph == nil || graph.Directed() {
		return nil, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return nil, ErrDisconnected
	}
	for _, e := range graph.Edges() {
		if e.From == e.To {
			continue
		}
		w, ok := e.Weight(key)
		if !ok {
			return nil, fmt.Errorf("%w: edge %s key %q", ErrMissingWeight, e.ID, key)
		}
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: edge %s has %v", ErrNonPositiveWeight, e.ID, w)
		}
	}

	return vertices, nil
}
