// Package prepare normalizes an arbitrary street graph into the form the
// spanning tree optimizer requires: undirected, simple, positively weighted
// and connected.
//
// Preparation runs three steps over a fresh output graph, leaving the input
// untouched:
//
//	A. collapse direction and duplicates: one undirected edge per endpoint
//	   pair; self-loops dropped.
//	B. repair weights: absent, NaN, infinite or non-positive values become
//	   the fallback.
//	C. keep the largest connected component.
//
// B is applied while A compares candidates, so parallel segments are always
// compared on repaired, positive weights.
//
// An input that already satisfies every step is returned as a deep copy with
// its edge IDs intact.
package prepare

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/wasteroute/components"
	"github.com/katalvlaran/wasteroute/config"
	"github.com/katalvlaran/wasteroute/core"
)

// Report describes what Prepare changed.
type Report struct {
	// ConvertedDirected is true when the input graph was directed.
	ConvertedDirected bool

	// CollapsedEdges counts duplicate segments merged into an existing pair.
	CollapsedEdges int

	// DroppedLoops counts self-loops removed.
	DroppedLoops int

	// DefaultedWeights counts segments whose weight was replaced by the fallback.
	DefaultedWeights int

	// Components is the number of connected components before step C.
	Components int

	// DroppedNodes and DroppedEdges count what step C discarded.
	DroppedNodes int
	DroppedEdges int
}

// Preparer runs graph preparation with a fixed weight key and fallback.
type Preparer struct {
	weightKey string
	fallback  float64
	logger    *slog.Logger
}

// Option configures a Preparer.
type Option func(*Preparer)

// WithLogger sets the logger used for the preparation summary.
func WithLogger(l *slog.Logger) Option {
	return func(p *Preparer) {
		if l != nil {
			p.logger = l
		}
	}
}

// New returns a Preparer reading WeightKey and DefaultWeightFallback from cfg.
// Empty or invalid values fall back to config.Default().
func New(cfg config.Config, opts ...Option) *Preparer {
	def := config.Default()
	p := &Preparer{
		weightKey: cfg.WeightKey,
		fallback:  cfg.DefaultWeightFallback,
		logger:    slog.Default(),
	}
	if p.weightKey == "" {
		p.weightKey = def.WeightKey
	}
	if !(p.fallback > 0) || math.IsInf(p.fallback, 0) {
		p.fallback = def.DefaultWeightFallback
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// candidate is the edge currently kept for one endpoint pair.
type candidate struct {
	src    *core.Edge
	weight float64
}

// pairKey identifies an unordered endpoint pair.
type pairKey struct{ lo, hi string }

func newPairKey(u, v string) pairKey {
	if v < u {
		u, v = v, u
	}

	return pairKey{lo: u, hi: v}
}

// Prepare returns a new undirected, simple, positively weighted, connected
// graph derived from g, plus a Report of the changes. It never fails: a nil or
// empty input yields an empty graph.
//
// Determinism: edges are scanned in insertion order and vertices in sorted ID
// order, so identical inputs yield identical outputs, including edge IDs.
func (p *Preparer) Prepare(g *core.Graph) (*core.Graph, Report) {
	var rep Report
	out := core.NewGraph()
	if g == nil || g.VertexCount() == 0 {
		p.logger.Info("graph prepared", "nodes", 0, "edges", 0)
		return out, rep
	}
	rep.ConvertedDirected = g.Directed()

	kept := p.collapse(g, &rep)
	if p.alreadyPrepared(g, &rep) {
		p.logger.Info("graph already prepared", "nodes", g.VertexCount(), "edges", g.EdgeCount())
		return g.Clone(), rep
	}

	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			continue
		}
		var vopts []core.VertexOption
		if v.HasPosition {
			vopts = append(vopts, core.WithPosition(v.Lat, v.Lon))
		}
		_ = out.AddVertex(id, vopts...)
	}
	for _, c := range kept {
		// pairs are unique and loops are gone, so AddEdge cannot fail here
		_, _ = out.AddEdge(c.src.From, c.src.To,
			core.WithAttributesOf(c.src),
			core.WithWeight(p.weightKey, c.weight),
		)
	}

	out = p.keepLargest(out, &rep)

	p.logger.Info("graph prepared",
		"directed_input", rep.ConvertedDirected,
		"collapsed_edges", rep.CollapsedEdges,
		"dropped_loops", rep.DroppedLoops,
		"defaulted_weights", rep.DefaultedWeights,
		"components", rep.Components,
		"dropped_nodes", rep.DroppedNodes,
		"dropped_edges", rep.DroppedEdges,
		"nodes", out.VertexCount(),
		"edges", out.EdgeCount(),
	)

	return out, rep
}

// collapse performs steps A and B, returning kept candidates in first-seen
// pair order.
//
// Two-way streets of a directed input (the reverse of a kept edge) keep the
// first-seen edge. Any other duplicate keeps the lighter edge, first seen on ties.
func (p *Preparer) collapse(g *core.Graph, rep *Report) []*candidate {
	edges := g.Edges()
	kept := make([]*candidate, 0, len(edges))
	index := make(map[pairKey]int, len(edges))

	for _, e := range edges {
		if e.From == e.To {
			rep.DroppedLoops++
			continue
		}
		w, _ := e.Weight(p.weightKey)
		if !e.HasPositiveWeight(p.weightKey) {
			w = p.fallback
			rep.DefaultedWeights++
		}

		key := newPairKey(e.From, e.To)
		i, seen := index[key]
		if !seen {
			index[key] = len(kept)
			kept = append(kept, &candidate{src: e, weight: w})
			continue
		}

		rep.CollapsedEdges++
		cur := kept[i]
		if e.Directed && cur.src.From == e.To && cur.src.To == e.From {
			continue
		}
		if w < cur.weight {
			cur.src, cur.weight = e, w
		}
	}

	return kept
}

// alreadyPrepared reports whether steps A and B found nothing to change and
// g is a connected simple graph. It sets rep.Components when true.
func (p *Preparer) alreadyPrepared(g *core.Graph, rep *Report) bool {
	if g.Directed() || g.Multigraph() || g.Looped() {
		return false
	}
	if rep.CollapsedEdges+rep.DroppedLoops+rep.DefaultedWeights > 0 {
		return false
	}
	if !components.IsConnected(g) {
		return false
	}
	rep.Components = 1

	return true
}

// keepLargest performs step C.
func (p *Preparer) keepLargest(g *core.Graph, rep *Report) *core.Graph {
	comps := components.Connected(g)
	rep.Components = len(comps)
	if len(comps) <= 1 {
		return g
	}

	largest := components.LargestOf(comps)
	keep := make(map[string]bool, len(largest))
	for _, id := range largest {
		keep[id] = true
	}

	sub := core.InducedSubgraph(g, keep)
	rep.DroppedNodes = g.VertexCount() - sub.VertexCount()
	rep.DroppedEdges = g.EdgeCount() - sub.EdgeCount()
	p.logger.Debug("kept largest component",
		"components", len(comps),
		"kept_nodes", sub.VertexCount(),
		"dropped_nodes", rep.DroppedNodes,
	)

	return sub
}
