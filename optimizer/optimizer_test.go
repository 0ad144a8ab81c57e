package optimizer_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/wasteroute/bfs"
	"github.com/katalvlaran/wasteroute/config"
	"github.com/katalvlaran/wasteroute/core"
	"github.com/katalvlaran/wasteroute/optimizer"
	"github.com/katalvlaran/wasteroute/prepare"
	"github.com/katalvlaran/wasteroute/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeRecorder remembers the result label of every observed run.
type fakeRecorder struct {
	results []string
}

func (f *fakeRecorder) ObserveOptimization(_, result string, _ time.Duration, _ float64) {
	f.results = append(f.results, result)
}

func newOptimizer(t *testing.T, algorithm string, opts ...optimizer.Option) *optimizer.Optimizer {
	t.Helper()
	cfg := config.Default()
	cfg.Algorithm = algorithm
	o, err := optimizer.New(cfg, append([]optimizer.Option{optimizer.WithLogger(quiet)}, opts...)...)
	require.NoError(t, err)

	return o
}

func buildTriangle() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithLength(10), core.WithName("Rua A"))
	_, _ = g.AddEdge("B", "C", core.WithLength(10), core.WithName("Rua B"))
	_, _ = g.AddEdge("A", "C", core.WithLength(25), core.WithName("Avenida C"))

	return g
}

// randomStreets builds a random, possibly messy street graph.
func randomStreets(seed int64, n, m int) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < m; i++ {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		_, _ = g.AddEdge(fmt.Sprintf("n%d", u), fmt.Sprintf("n%d", v), core.WithLength(float64(1+r.Intn(500))))
	}

	return g
}

func TestComputeOptimizedRoute_Triangle(t *testing.T) {
	for _, alg := range []string{config.AlgorithmPrim, config.AlgorithmKruskal} {
		t.Run(alg, func(t *testing.T) {
			res, err := newOptimizer(t, alg).ComputeOptimizedRoute(buildTriangle())
			require.NoError(t, err)

			m := res.Metrics
			assert.Equal(t, alg, m.Algorithm)
			assert.Equal(t, core.WeightLength, m.WeightKey)
			assert.InDelta(t, 45.0, m.TotalOriginalWeight, 1e-9)
			assert.InDelta(t, 20.0, m.TotalTreeWeight, 1e-9)
			assert.InDelta(t, 25.0, m.Savings, 1e-9)
			assert.InDelta(t, 55.555, m.SavingsPercent, 1e-2)
			assert.Equal(t, 3, m.OriginalNodes)
			assert.Equal(t, 3, m.OriginalEdges)
			assert.Equal(t, 3, m.TreeNodes)
			assert.Equal(t, 2, m.TreeEdges)
			assert.Equal(t, 1, m.EdgeReduction)
			assert.NotEqual(t, uuid.Nil, m.RunID)

			assert.False(t, res.Tree.Directed())
			assert.True(t, hasSegment(res.Tree, "A", "B"))
			assert.True(t, hasSegment(res.Tree, "B", "C"))
			assert.False(t, hasSegment(res.Tree, "A", "C"))
		})
	}
}

func TestComputeOptimizedRoute_EmptyInput(t *testing.T) {
	rec := &fakeRecorder{}
	o := newOptimizer(t, config.AlgorithmPrim, optimizer.WithRecorder(rec))

	isolated := core.NewGraph()
	_ = isolated.AddVertex("A")

	for name, g := range map[string]*core.Graph{"nil": nil, "no vertices": core.NewGraph(), "no edges": isolated} {
		res, err := o.ComputeOptimizedRoute(g)
		assert.Nil(t, res, name)
		assert.ErrorIs(t, err, optimizer.ErrEmptyInput, name)
	}
	assert.Equal(t, []string{"empty_input", "empty_input", "empty_input"}, rec.results)
}

func TestNew_UnsupportedAlgorithm(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = "boruvka"

	o, err := optimizer.New(cfg)
	assert.Nil(t, o)
	assert.ErrorIs(t, err, optimizer.ErrUnsupportedAlgorithm)
}

func TestComputeOptimizedRoute_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithLength(1))
	_, _ = g.AddEdge("C", "D", core.WithLength(1))

	_, err := newOptimizer(t, config.AlgorithmKruskal).ComputeOptimizedRoute(g)
	require.ErrorIs(t, err, optimizer.ErrDisconnectedResidual)

	var oerr *optimizer.Error
	require.True(t, errors.As(err, &oerr))
	assert.Equal(t, config.AlgorithmKruskal, oerr.Algorithm)
	assert.ErrorIs(t, errors.Unwrap(err), prim_kruskal.ErrDisconnected)
}

func TestComputeOptimizedRoute_InvalidWeight(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")

	rec := &fakeRecorder{}
	_, err := newOptimizer(t, config.AlgorithmPrim, optimizer.WithRecorder(rec)).ComputeOptimizedRoute(g)
	assert.ErrorIs(t, err, optimizer.ErrInvalidWeight)
	assert.ErrorIs(t, err, prim_kruskal.ErrMissingWeight)
	assert.Equal(t, []string{"invalid_weight"}, rec.results)
}

func TestComputeOptimizedRoute_SpanningAndReachable(t *testing.T) {
	p := prepare.New(config.Default(), prepare.WithLogger(quiet))
	for seed := int64(1); seed <= 5; seed++ {
		prepared, _ := p.Prepare(randomStreets(seed, 60, 150))

		res, err := newOptimizer(t, config.AlgorithmPrim).ComputeOptimizedRoute(prepared)
		require.NoError(t, err)

		tree := res.Tree
		assert.Equal(t, prepared.VertexCount(), tree.VertexCount())
		assert.Equal(t, tree.VertexCount()-1, tree.EdgeCount())

		seen, err := bfs.Reachable(tree, tree.Vertices()[0])
		require.NoError(t, err)
		assert.Len(t, seen, tree.VertexCount())

		assert.GreaterOrEqual(t, res.Metrics.SavingsPercent, 0.0)
		assert.LessOrEqual(t, res.Metrics.SavingsPercent, 100.0)
		assert.LessOrEqual(t, res.Metrics.TotalTreeWeight, res.Metrics.TotalOriginalWeight)
	}
}

func TestComputeOptimizedRoute_PrimMatchesKruskal(t *testing.T) {
	p := prepare.New(config.Default(), prepare.WithLogger(quiet))
	prepared, _ := p.Prepare(randomStreets(99, 80, 240))

	primRes, err := newOptimizer(t, config.AlgorithmPrim).ComputeOptimizedRoute(prepared)
	require.NoError(t, err)
	kruskalRes, err := newOptimizer(t, config.AlgorithmKruskal).ComputeOptimizedRoute(prepared)
	require.NoError(t, err)

	assert.InDelta(t, primRes.Metrics.TotalTreeWeight, kruskalRes.Metrics.TotalTreeWeight, 1e-9)
}

func TestComputeOptimizedRoute_Deterministic(t *testing.T) {
	p := prepare.New(config.Default(), prepare.WithLogger(quiet))
	prepared, _ := p.Prepare(randomStreets(7, 50, 120))
	o := newOptimizer(t, config.AlgorithmPrim)

	first, err := o.ComputeOptimizedRoute(prepared)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := o.ComputeOptimizedRoute(prepared)
		require.NoError(t, err)
		assert.Equal(t, first.Tree.Edges(), again.Tree.Edges())
		assert.Equal(t, first.Metrics.TotalTreeWeight, again.Metrics.TotalTreeWeight)
		assert.NotEqual(t, first.Metrics.RunID, again.Metrics.RunID)
	}
}

func TestComputeOptimizedRoute_RecordsSuccess(t *testing.T) {
	rec := &fakeRecorder{}
	_, err := newOptimizer(t, config.AlgorithmKruskal, optimizer.WithRecorder(rec)).ComputeOptimizedRoute(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, []string{"success"}, rec.results)
}

func TestComputeOptimizedRoute_KeepsAttributes(t *testing.T) {
	g := buildTriangle()
	require.NoError(t, g.AddVertex("A", core.WithPosition(-16.7, -43.8)))

	res, err := newOptimizer(t, config.AlgorithmPrim).ComputeOptimizedRoute(g)
	require.NoError(t, err)

	names := map[string]bool{}
	for _, e := range res.Tree.Edges() {
		names[e.Name] = true
	}
	assert.Equal(t, map[string]bool{"Rua A": true, "Rua B": true}, names)

	v, err := res.Tree.Vertex("A")
	require.NoError(t, err)
	assert.True(t, v.HasPosition)
	assert.Equal(t, 3, g.EdgeCount(), "input graph is not modified")
}

// randomTree builds a random tree over n vertices with fractional lengths and
// inserts its segments in shuffled order.
func randomTree(seed int64, n int) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	type seg struct {
		u, v int
		w    float64
	}
	segs := make([]seg, 0, n-1)
	for v := 1; v < n; v++ {
		segs = append(segs, seg{u: r.Intn(v), v: v, w: 0.5 + r.Float64()*1000})
	}
	r.Shuffle(len(segs), func(i, j int) { segs[i], segs[j] = segs[j], segs[i] })

	g := core.NewGraph()
	for _, s := range segs {
		_, _ = g.AddEdge(fmt.Sprintf("n%d", s.u), fmt.Sprintf("n%d", s.v), core.WithLength(s.w))
	}

	return g
}

func TestComputeOptimizedRoute_TreeInputHasNoSavings(t *testing.T) {
	for _, alg := range []string{config.AlgorithmPrim, config.AlgorithmKruskal} {
		o := newOptimizer(t, alg)
		for seed := int64(1); seed <= 300; seed++ {
			g := randomTree(seed, 2+int(seed%40))

			res, err := o.ComputeOptimizedRoute(g)
			require.NoError(t, err)

			m := res.Metrics
			require.Zero(t, m.Savings, "%s seed %d", alg, seed)
			require.Zero(t, m.SavingsPercent, "%s seed %d", alg, seed)
			require.Equal(t, m.TotalOriginalWeight, m.TotalTreeWeight, "%s seed %d", alg, seed)
			require.Zero(t, m.EdgeReduction)
		}
	}
}

func TestComputeOptimizedRoute_SavingsWithinBounds(t *testing.T) {
	p := prepare.New(config.Default(), prepare.WithLogger(quiet))
	for seed := int64(1); seed <= 20; seed++ {
		prepared, _ := p.Prepare(randomStreets(seed, 30, 90))
		for _, alg := range []string{config.AlgorithmPrim, config.AlgorithmKruskal} {
			res, err := newOptimizer(t, alg).ComputeOptimizedRoute(prepared)
			require.NoError(t, err)

			m := res.Metrics
			assert.GreaterOrEqual(t, m.Savings, 0.0)
			assert.GreaterOrEqual(t, m.SavingsPercent, 0.0)
			assert.LessOrEqual(t, m.SavingsPercent, 100.0)
			if m.EdgeReduction > 0 {
				assert.Greater(t, m.Savings, 0.0)
			}
		}
	}
}

func TestNew_DefaultsEmptyAlgorithm(t *testing.T) {
	cfg := config.Default()
	cfg.Algorithm = ""
	cfg.WeightKey = ""

	o, err := optimizer.New(cfg, optimizer.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, config.AlgorithmPrim, o.Algorithm())

	res, err := o.ComputeOptimizedRoute(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, config.AlgorithmPrim, res.Metrics.Algorithm)
	assert.Equal(t, core.WeightLength, res.Metrics.WeightKey)
}

// hasSegment reports whether some segment leaves from and reaches to.
func hasSegment(g *core.Graph, from, to string) bool {
	nbs, err := g.Neighbors(from)
	if err != nil {
		return false
	}
	for _, e := range nbs {
		if e.Other(from) == to {
			return true
		}
	}

	return false
}
