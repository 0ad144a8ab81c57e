// Package bfs provides breadth-first search over a street core.Graph,
// returning hop distances, discovery segments and visit order.
//
// Weights are ignored: BFS answers reachability questions (is the spanning
// tree connected, which intersections share a component).
package bfs

import (
	"fmt"

	"github.com/katalvlaran/wasteroute/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input, or a
// wrapped neighbor lookup error.
//
// Directed graphs are followed along edge direction only.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:      make([]string, 0, n),
			Depth:      make(map[string]int, n),
			ParentEdge: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Reachable returns the set of vertices reachable from startID.
func Reachable(g *core.Graph, startID string) (map[string]bool, error) {
	res, err := BFS(g, startID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(res.Order))
	for _, id := range res.Order {
		seen[id] = true
	}

	return seen, nil
}

// enqueue records depth and the discovery segment, then adds id to the queue.
func (w *walker) enqueue(id string, d int, viaEdge string) {
	w.res.Depth[id] = d
	if viaEdge != "" {
		w.res.ParentEdge[id] = viaEdge
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors walks the incident segments of item in insertion order,
// applies filtering, and enqueues each unseen endpoint.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(item.id, e.ID) {
			continue
		}
		nbr := e.Other(item.id)
		if _, seen := w.res.Depth[nbr]; !seen {
			w.enqueue(nbr, item.depth+1, e.ID)
		}
	}

	return nil
}
