// Package bfs provides tunable options and error definitions
// for breadth-first search over a street core.Graph.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize BFS execution.
type Options struct {
	// FilterEdge can skip street segments by returning false.
	// Called for each segment leaving the current vertex.
	FilterEdge func(curr string, edgeID string) bool
}

// DefaultOptions returns Options that follow every segment.
func DefaultOptions() Options {
	return Options{
		FilterEdge: func(string, string) bool { return true },
	}
}

// WithFilterEdge skips segments when fn returns false.
func WithFilterEdge(fn func(curr string, edgeID string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: hop distance of every reached vertex from the start.
//   - ParentEdge: ID of the segment used to reach every vertex except the start.
type Result struct {
	Order      []string
	Depth      map[string]int
	ParentEdge map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}
