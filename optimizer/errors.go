package optimizer

import (
	"errors"
	"fmt"
)

// Failure kinds returned by ComputeOptimizedRoute. Match them with errors.Is.
var (
	// ErrEmptyInput indicates the graph has no vertices or no edges.
	ErrEmptyInput = errors.New("optimizer: empty input graph")

	// ErrDisconnectedResidual indicates the graph still has several components,
	// so no spanning tree exists. Run the preparer first.
	ErrDisconnectedResidual = errors.New("optimizer: graph is disconnected")

	// ErrUnsupportedAlgorithm indicates an algorithm name other than prim or kruskal.
	ErrUnsupportedAlgorithm = errors.New("optimizer: unsupported algorithm")

	// ErrInvalidWeight indicates an edge lacks a positive weight for the weight key.
	ErrInvalidWeight = errors.New("optimizer: invalid edge weight")
)

// Error is the structured failure of an optimization run.
//
// errors.Is(err, Kind) matches the failure kind; errors.Unwrap returns the
// underlying cause, which may be nil.
type Error struct {
	Kind      error
	Algorithm string
	Cause     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%v (algorithm %s)", e.Kind, e.Algorithm)
	}

	return fmt.Sprintf("%v (algorithm %s): %v", e.Kind, e.Algorithm, e.Cause)
}

// Is reports whether target is the failure kind.
func (e *Error) Is(target error) bool { return target == e.Kind }

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// kindLabel is the short telemetry label for a failure kind.
func kindLabel(kind error) string {
	switch kind {
	case ErrEmptyInput:
		return "empty_input"
	case ErrDisconnectedResidual:
		return "disconnected"
	case ErrUnsupportedAlgorithm:
		return "unsupported_algorithm"
	case ErrInvalidWeight:
		return "invalid_weight"
	default:
		return "error"
	}
}
