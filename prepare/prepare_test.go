package prepare_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/wasteroute/components"
	"github.com/katalvlaran/wasteroute/config"
	"github.com/katalvlaran/wasteroute/core"
	"github.com/katalvlaran/wasteroute/prepare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPreparer(cfg config.Config) *prepare.Preparer {
	return prepare.New(cfg, prepare.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

// segment is a comparable view of a prepared edge.
type segment struct {
	From, To string
	Name     string
	Length   float64
}

func segments(g *core.Graph) []segment {
	var out []segment
	for _, e := range g.Edges() {
		w, _ := e.Weight(core.WeightLength)
		out = append(out, segment{From: e.From, To: e.To, Name: e.Name, Length: w})
	}

	return out
}

func TestPrepare_DirectedPairCollapses(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", core.WithLength(10), core.WithName("Rua Ida"))
	_, _ = g.AddEdge("B", "A", core.WithLength(12), core.WithName("Rua Volta"))

	out, rep := newPreparer(config.Default()).Prepare(g)

	assert.False(t, out.Directed())
	assert.True(t, rep.ConvertedDirected)
	assert.Equal(t, 1, rep.CollapsedEdges)
	assert.Equal(t, []segment{{"A", "B", "Rua Ida", 10}}, segments(out))
}

func TestPrepare_ParallelKeepsLightest(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", core.WithLength(25), core.WithName("Longa"))
	_, _ = g.AddEdge("B", "A", core.WithLength(10), core.WithName("Curta"))
	_, _ = g.AddEdge("A", "B", core.WithLength(10), core.WithName("Curta Bis"))

	out, rep := newPreparer(config.Default()).Prepare(g)

	assert.Equal(t, 2, rep.CollapsedEdges)
	assert.Equal(t, []segment{{"B", "A", "Curta", 10}}, segments(out))
}

func TestPrepare_DirectedParallelSameDirection(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", core.WithLength(30), core.WithName("Lenta"))
	_, _ = g.AddEdge("A", "B", core.WithLength(15), core.WithName("Rapida"))

	out, _ := newPreparer(config.Default()).Prepare(g)
	assert.Equal(t, []segment{{"A", "B", "Rapida", 15}}, segments(out))
}

func TestPrepare_WeightsArePositive(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C", core.WithLength(0))
	_, _ = g.AddEdge("C", "D", core.WithLength(-5))
	_, _ = g.AddEdge("D", "E", core.WithLength(math.NaN()))
	_, _ = g.AddEdge("E", "F", core.WithLength(42))

	out, rep := newPreparer(config.Default()).Prepare(g)

	assert.Equal(t, 4, rep.DefaultedWeights)
	for _, e := range out.Edges() {
		assert.True(t, e.HasPositiveWeight(core.WeightLength), "edge %s", e.ID)
	}
	assert.InDelta(t, 442.0, out.TotalWeight(core.WeightLength), 1e-9)
}

func TestPrepare_CustomFallbackAndKey(t *testing.T) {
	cfg := config.Default()
	cfg.WeightKey = "time"
	cfg.DefaultWeightFallback = 7

	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithLength(10))

	out, rep := newPreparer(cfg).Prepare(g)
	require.Equal(t, 1, out.EdgeCount())
	w, ok := out.Edges()[0].Weight("time")
	assert.True(t, ok)
	assert.Equal(t, 7.0, w)
	assert.Equal(t, 1, rep.DefaultedWeights)

	length, _ := out.Edges()[0].Weight(core.WeightLength)
	assert.Equal(t, 10.0, length, "other attributes are copied")
}

func TestPrepare_DropsLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A", core.WithLength(3))
	_, _ = g.AddEdge("A", "B", core.WithLength(4))

	out, rep := newPreparer(config.Default()).Prepare(g)
	assert.Equal(t, 1, rep.DroppedLoops)
	assert.Equal(t, 1, out.EdgeCount())
	assert.Zero(t, out.Stats().LoopCount)
}

func TestPrepare_KeepsLargestComponent(t *testing.T) {
	g := core.NewGraph()
	for _, p := range [][2]string{{"A1", "A2"}, {"A2", "A3"}, {"A3", "A4"}, {"A4", "A5"}, {"B1", "B2"}, {"B2", "B3"}} {
		_, _ = g.AddEdge(p[0], p[1], core.WithLength(10))
	}

	out, rep := newPreparer(config.Default()).Prepare(g)

	assert.Equal(t, []string{"A1", "A2", "A3", "A4", "A5"}, out.Vertices())
	assert.Equal(t, 4, out.EdgeCount())
	assert.Equal(t, 2, rep.Components)
	assert.Equal(t, 3, rep.DroppedNodes)
	assert.Equal(t, 2, rep.DroppedEdges)
	assert.True(t, components.IsConnected(out))
}

func TestPrepare_Empty(t *testing.T) {
	p := newPreparer(config.Default())

	out, rep := p.Prepare(core.NewGraph())
	assert.Zero(t, out.VertexCount())
	assert.Equal(t, prepare.Report{}, rep)

	out, _ = p.Prepare(nil)
	assert.Zero(t, out.VertexCount())
}

func TestPrepare_Idempotent(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	_, _ = g.AddEdge("A", "B", core.WithLength(10))
	_, _ = g.AddEdge("B", "A", core.WithLength(10))
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "C", core.WithLength(1))
	_, _ = g.AddEdge("C", "A", core.WithLength(25))
	_, _ = g.AddEdge("X", "Y", core.WithLength(5))

	p := newPreparer(config.Default())
	once, _ := p.Prepare(g)
	twice, rep := p.Prepare(once)

	assert.Equal(t, once.Vertices(), twice.Vertices())
	assert.Equal(t, segments(once), segments(twice))
	assert.Equal(t, prepare.Report{Components: 1}, rep)
}

func TestPrepare_InputUntouchedAndPositionsKept(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A", core.WithPosition(-16.7, -43.8)))
	_, _ = g.AddEdge("A", "B")

	out, _ := newPreparer(config.Default()).Prepare(g)

	e := g.Edges()[0]
	_, ok := e.Weight(core.WeightLength)
	assert.False(t, ok, "input edge must not be repaired in place")
	assert.True(t, g.Directed())

	v, err := out.Vertex("A")
	require.NoError(t, err)
	assert.True(t, v.HasPosition)
	assert.InDelta(t, -16.7, v.Lat, 1e-9)
}

func TestPrepare_AlreadyPreparedIsCopied(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", core.WithPosition(-16.7, -43.8)))
	_, _ = g.AddEdge("A", "B", core.WithLength(10), core.WithName("Rua A"))
	_, _ = g.AddEdge("B", "C", core.WithLength(15))

	out, rep := newPreparer(config.Default()).Prepare(g)

	assert.Equal(t, prepare.Report{Components: 1}, rep)
	require.NotSame(t, g, out)
	assert.Equal(t, []string{"e1", "e2"}, []string{out.Edges()[0].ID, out.Edges()[1].ID})
	assert.Equal(t, segments(g), segments(out))
	v, err := out.Vertex("A")
	require.NoError(t, err)
	assert.True(t, v.HasPosition)

	out.Edges()[0].SetWeight(core.WeightLength, 99)
	w, _ := g.Edges()[0].Weight(core.WeightLength)
	assert.Equal(t, 10.0, w, "copy must not share weights with the input")
}

func TestPrepare_MultigraphInputIsRebuilt(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", core.WithLength(10))

	out, rep := newPreparer(config.Default()).Prepare(g)

	assert.Equal(t, prepare.Report{Components: 1}, rep)
	assert.False(t, out.Multigraph())
	assert.Equal(t, 1, out.EdgeCount())
}
