// Package components finds connected components ("islands") of a street graph.
//
// Direction is ignored: a one-way street still joins its two intersections,
// so components of directed graphs are the weakly connected ones.
//
// Components are discovered by scanning vertices in sorted ID order and
// flooding each unseen vertex with BFS, so both the list of components and the
// vertex order inside each one are deterministic.
package components

import (
	"github.com/katalvlaran/wasteroute/bfs"
	"github.com/katalvlaran/wasteroute/core"
)

// Connected returns all connected components of g. Each component lists its
// vertex IDs in BFS discovery order; components appear in discovery order.
//
// Time:   O(V + E log d)
// Memory: O(V)
func Connected(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}
	src := g
	if g.Directed() {
		src = core.UndirectedView(g)
	}

	seen := make(map[string]bool, src.VertexCount())
	var comps [][]string
	for _, id := range src.Vertices() {
		if seen[id] {
			continue
		}
		res, err := bfs.BFS(src, id)
		if err != nil {
			// id comes from src.Vertices(); a failure means a concurrent mutation
			// removed it, so it no longer belongs to any component.
			continue
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// Largest returns the component with the most vertices. Ties keep the first
// discovered one. Returns nil for an empty graph.
func Largest(g *core.Graph) []string {
	return LargestOf(Connected(g))
}

// LargestOf picks the largest of already computed components with the same
// tie rule as Largest.
func LargestOf(comps [][]string) []string {
	var best []string
	for _, c := range comps {
		if len(c) > len(best) {
			best = c
		}
	}

	return best
}

// Count returns the number of connected components.
func Count(g *core.Graph) int {
	return len(Connected(g))
}

// IsConnected reports whether g forms exactly one component.
// An empty graph is not connected.
func IsConnected(g *core.Graph) bool {
	if g == nil || g.VertexCount() == 0 {
		return false
	}
	start := g.Vertices()[0]
	src := g
	if g.Directed() {
		src = core.UndirectedView(g)
	}
	seen, err := bfs.Reachable(src, start)
	if err != nil {
		return false
	}

	return len(seen) == src.VertexCount()
}

// Sizes returns the vertex count of every component in discovery order.
func Sizes(comps [][]string) []int {
	out := make([]int, len(comps))
	for i, c := range comps {
		out[i] = len(c)
	}

	return out
}
