// Package optimizer computes the minimum spanning tree of a prepared street
// graph and the savings it represents against the full network.
//
// The tree is the set of streets a collection crew must cover so that every
// intersection stays reachable; Metrics compares its length with the length
// of every street in the input.
package optimizer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/wasteroute/bfs"
	"github.com/katalvlaran/wasteroute/config"
	"github.com/katalvlaran/wasteroute/core"
	"github.com/katalvlaran/wasteroute/prim_kruskal"
)

// Recorder observes finished optimization runs. *telemetry.Recorder satisfies it.
type Recorder interface {
	ObserveOptimization(algorithm, result string, elapsed time.Duration, savingsPercent float64)
}

// Metrics summarizes one optimization run. It is a plain value.
type Metrics struct {
	RunID     uuid.UUID
	Algorithm string
	WeightKey string

	TotalOriginalWeight float64
	TotalTreeWeight     float64
	// Savings is the weight of the segments left out of the tree, so it is
	// never negative and exactly 0 for tree inputs.
	// TotalTreeWeight is TotalOriginalWeight - Savings.
	Savings        float64
	SavingsPercent float64

	// Elapsed covers the spanning tree computation only.
	Elapsed time.Duration

	OriginalNodes int
	OriginalEdges int
	TreeNodes     int
	TreeEdges     int
	EdgeReduction int
}

// Result is a successful optimization: the spanning tree and its metrics.
type Result struct {
	// Tree is a new undirected graph with every input vertex and |V|-1 edges.
	Tree    *core.Graph
	Metrics Metrics
}

// Optimizer runs Prim or Kruskal over prepared graphs.
type Optimizer struct {
	algorithm string
	weightKey string
	logger    *slog.Logger
	recorder  Recorder
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the logger for run summaries.
func WithLogger(l *slog.Logger) Option {
	return func(o *Optimizer) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder attaches a Recorder notified after every run.
func WithRecorder(r Recorder) Option {
	return func(o *Optimizer) { o.recorder = r }
}

// New returns an Optimizer for cfg.Algorithm and cfg.WeightKey. Empty values
// default to prim and core.WeightLength; any other unsupported algorithm is
// reported with ErrUnsupportedAlgorithm.
func New(cfg config.Config, opts ...Option) (*Optimizer, error) {
	o := &Optimizer{
		algorithm: cfg.Algorithm,
		weightKey: cfg.WeightKey,
		logger:    slog.Default(),
	}
	if o.algorithm == "" {
		o.algorithm = config.AlgorithmPrim
	}
	if o.weightKey == "" {
		o.weightKey = core.WeightLength
	}
	for _, opt := range opts {
		opt(o)
	}
	if !supported(o.algorithm) {
		return nil, &Error{Kind: ErrUnsupportedAlgorithm, Algorithm: o.algorithm}
	}

	return o, nil
}

// Algorithm returns the configured algorithm name.
func (o *Optimizer) Algorithm() string { return o.algorithm }

func supported(algorithm string) bool {
	return algorithm == config.AlgorithmPrim || algorithm == config.AlgorithmKruskal
}

// ComputeOptimizedRoute computes the minimum spanning tree of g.
//
// g should come from the preparer: undirected, connected and positively
// weighted. Failures are returned as *Error:
//
//   - ErrEmptyInput           g has no vertices or no edges.
//   - ErrUnsupportedAlgorithm the algorithm is neither prim nor kruskal.
//   - ErrDisconnectedResidual g is disconnected.
//   - ErrInvalidWeight        an edge has no positive weight, or g is directed.
//
// g is not modified.
func (o *Optimizer) ComputeOptimizedRoute(g *core.Graph) (*Result, error) {
	if g == nil || g.VertexCount() == 0 || g.EdgeCount() == 0 {
		return nil, o.fail(&Error{Kind: ErrEmptyInput, Algorithm: o.algorithm})
	}
	if !supported(o.algorithm) {
		return nil, o.fail(&Error{Kind: ErrUnsupportedAlgorithm, Algorithm: o.algorithm})
	}

	opts := prim_kruskal.NewOptions(
		prim_kruskal.WithMethod(o.algorithm),
		prim_kruskal.WithWeightKey(o.weightKey),
	)
	start := time.Now()
	edges, treeWeight, err := prim_kruskal.Compute(g, opts)
	elapsed := time.Since(start)
	if err != nil {
		return nil, o.fail(&Error{Kind: classify(err), Algorithm: o.algorithm, Cause: err})
	}
	inTree := make(map[string]bool, len(edges))
	for i := range edges {
		inTree[edges[i].ID] = true
	}
	if err = checkSpanning(g, inTree); err != nil {
		return nil, o.fail(&Error{Kind: ErrDisconnectedResidual, Algorithm: o.algorithm, Cause: err})
	}

	tree := buildTree(g, edges)
	m := Metrics{
		RunID:               uuid.New(),
		Algorithm:           o.algorithm,
		WeightKey:           o.weightKey,
		TotalOriginalWeight: g.TotalWeight(o.weightKey),
		Elapsed:             elapsed,
		OriginalNodes:       g.VertexCount(),
		OriginalEdges:       g.EdgeCount(),
		TreeNodes:           tree.VertexCount(),
		TreeEdges:           tree.EdgeCount(),
	}
	m.Savings = droppedWeight(g, inTree, o.weightKey, m.TotalOriginalWeight)
	m.TotalTreeWeight = m.TotalOriginalWeight - m.Savings
	if m.TotalOriginalWeight > 0 {
		m.SavingsPercent = m.Savings / m.TotalOriginalWeight * 100
	}
	m.EdgeReduction = m.OriginalEdges - m.TreeEdges

	o.logger.Info("spanning tree computed",
		"run_id", m.RunID.String(),
		"algorithm", m.Algorithm,
		"elapsed", m.Elapsed,
		"original_weight", m.TotalOriginalWeight,
		"tree_weight", m.TotalTreeWeight,
		"mst_weight", treeWeight,
		"savings_percent", m.SavingsPercent,
		"edges_before", m.OriginalEdges,
		"edges_after", m.TreeEdges,
	)
	if o.recorder != nil {
		o.recorder.ObserveOptimization(o.algorithm, "success", m.Elapsed, m.SavingsPercent)
	}

	return &Result{Tree: tree, Metrics: m}, nil
}

// fail logs and records a failed run, then returns err.
func (o *Optimizer) fail(err *Error) error {
	o.logger.Error("spanning tree failed", "algorithm", o.algorithm, "error", err)
	if o.recorder != nil {
		o.recorder.ObserveOptimization(o.algorithm, kindLabel(err.Kind), 0, 0)
	}

	return err
}

// classify maps prim_kruskal errors to failure kinds.
func classify(err error) error {
	switch {
	case errors.Is(err, prim_kruskal.ErrDisconnected):
		return ErrDisconnectedResidual
	case errors.Is(err, prim_kruskal.ErrUnknownMethod):
		return ErrUnsupportedAlgorithm
	default:
		// missing or non-positive weights, and directed graphs
		return ErrInvalidWeight
	}
}

// checkSpanning walks g along the selected segments only and verifies they
// reach every vertex with exactly one discovery segment each.
func checkSpanning(g *core.Graph, inTree map[string]bool) error {
	res, err := bfs.BFS(g, g.Vertices()[0], bfs.WithFilterEdge(func(_ string, eid string) bool {
		return inTree[eid]
	}))
	if err != nil {
		return err
	}
	if len(res.Order) != g.VertexCount() || len(res.ParentEdge) != len(inTree) {
		return fmt.Errorf("optimizer: tree of %d segments reaches %d of %d vertices",
			len(inTree), len(res.Order), g.VertexCount())
	}

	return nil
}

// droppedWeight sums the weight of the segments left out of the tree, in
// insertion order, capped at total. It is exactly 0 when nothing was dropped.
func droppedWeight(g *core.Graph, inTree map[string]bool, key string, total float64) float64 {
	var dropped float64
	for _, e := range g.Edges() {
		if inTree[e.ID] {
			continue
		}
		if w, ok := e.Weight(key); ok {
			dropped += w
		}
	}
	if dropped > total {
		dropped = total
	}

	return dropped
}

// buildTree copies every vertex of g and the selected edges into a new
// undirected graph.
func buildTree(g *core.Graph, edges []core.Edge) *core.Graph {
	tree := core.NewGraph()
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			continue
		}
		var vopts []core.VertexOption
		if v.HasPosition {
			vopts = append(vopts, core.WithPosition(v.Lat, v.Lon))
		}
		_ = tree.AddVertex(id, vopts...)
	}
	for i := range edges {
		e := &edges[i]
		_, _ = tree.AddEdge(e.From, e.To, core.WithAttributesOf(e))
	}

	return tree
}
