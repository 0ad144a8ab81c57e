// Package streetnet builds raw street graphs from OpenStreetMap data.
//
// Input is an Overpass API JSON document (or an already decoded *osm.OSM).
// Every way whose highway class passes the collection filter becomes one edge
// per consecutive node pair; segment length is the geodesic distance in meters.
// The result is an undirected multigraph by default: ways sharing segments and
// two-way streets are left for the preparer to collapse.
package streetnet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"

	"github.com/katalvlaran/wasteroute/core"
)

// ErrNilData indicates Build was given no OSM data.
var ErrNilData = errors.New("streetnet: nil OSM data")

// DefaultRoadClasses are the highway classes a collection truck can drive on.
var DefaultRoadClasses = []string{
	"primary", "primary_link",
	"secondary", "secondary_link",
	"tertiary", "tertiary_link",
	"residential", "unclassified", "living_street",
	"service",
}

// Service ways with these tags are not driveable for collection.
var (
	excludedService = map[string]bool{"parking_aisle": true, "driveway": true, "alley": true, "emergency_access": true}
	excludedAccess  = map[string]bool{"private": true, "no": true, "destination": true}
)

// BuildStats summarizes what Build read and produced.
type BuildStats struct {
	Nodes        int
	Ways         int
	SkippedWays  int
	Segments     int
	MissingNodes int
	RoadClasses  map[string]int
}

// Option configures Build.
type Option func(*builder)

type builder struct {
	directed bool
	classes  map[string]bool
}

// WithDirected emits directed edges following way direction. Two-way ways
// produce one edge per direction; oneway=-1 ways are reversed.
func WithDirected(directed bool) Option {
	return func(b *builder) { b.directed = directed }
}

// WithRoadClasses replaces the highway class filter.
func WithRoadClasses(classes ...string) Option {
	return func(b *builder) {
		b.classes = make(map[string]bool, len(classes))
		for _, c := range classes {
			b.classes[c] = true
		}
	}
}

// Decode reads an Overpass JSON document.
func Decode(r io.Reader) (*osm.OSM, error) {
	o := &osm.OSM{}
	if err := json.NewDecoder(r).Decode(o); err != nil {
		return nil, fmt.Errorf("streetnet: decode overpass json: %w", err)
	}

	return o, nil
}

// Build converts OSM data into a street graph.
//
// Vertices are OSM node IDs in decimal with their positions. Ways without
// tags or outside the class filter are skipped; segments whose endpoints are
// missing from the data are skipped and counted in MissingNodes.
func Build(o *osm.OSM, opts ...Option) (*core.Graph, BuildStats, error) {
	stats := BuildStats{RoadClasses: make(map[string]int)}
	if o == nil {
		return nil, stats, ErrNilData
	}

	b := &builder{}
	WithRoadClasses(DefaultRoadClasses...)(b)
	for _, opt := range opts {
		opt(b)
	}

	g := core.NewGraph(core.WithDirected(b.directed), core.WithMultiEdges())

	nodes := make(map[osm.NodeID]orb.Point, len(o.Nodes))
	for _, n := range o.Nodes {
		nodes[n.ID] = orb.Point{n.Lon, n.Lat}
	}
	stats.Nodes = len(nodes)

	ways := append([]*osm.Way(nil), o.Ways...)
	sort.SliceStable(ways, func(i, j int) bool { return ways[i].ID < ways[j].ID })

	for _, w := range ways {
		stats.Ways++
		if !b.accepts(w) {
			stats.SkippedWays++
			continue
		}
		class := w.Tags.Find("highway")
		stats.RoadClasses[class]++

		sourceID := strconv.FormatInt(int64(w.ID), 10)
		name := w.Tags.Find("name")
		if name == "" {
			name = "Via_" + sourceID
		}
		forward, backward := b.directions(w)

		for i := 0; i+1 < len(w.Nodes); i++ {
			a, c := w.Nodes[i].ID, w.Nodes[i+1].ID
			pa, okA := nodes[a]
			pc, okC := nodes[c]
			if !okA || !okC {
				stats.MissingNodes++
				continue
			}
			from, to := nodeID(a), nodeID(c)
			_ = g.AddVertex(from, core.WithPosition(pa.Lat(), pa.Lon()))
			_ = g.AddVertex(to, core.WithPosition(pc.Lat(), pc.Lon()))
			if from == to {
				continue
			}

			attrs := []core.EdgeOption{
				core.WithLength(geo.Distance(pa, pc)),
				core.WithName(name),
				core.WithRoadClass(class),
				core.WithSourceID(sourceID),
			}
			if forward {
				if _, err := g.AddEdge(from, to, attrs...); err == nil {
					stats.Segments++
				}
			}
			if backward {
				if _, err := g.AddEdge(to, from, attrs...); err == nil {
					stats.Segments++
				}
			}
		}
	}

	return g, stats, nil
}

// accepts applies the highway class filter and the service/access exclusions.
func (b *builder) accepts(w *osm.Way) bool {
	if len(w.Tags) == 0 {
		return false
	}
	class := w.Tags.Find("highway")
	if !b.classes[class] {
		return false
	}
	if class != "service" {
		return true
	}

	return !excludedService[w.Tags.Find("service")] && !excludedAccess[w.Tags.Find("access")]
}

// directions reports which directions of w become edges.
func (b *builder) directions(w *osm.Way) (forward, backward bool) {
	if !b.directed {
		return true, false
	}
	switch w.Tags.Find("oneway") {
	case "yes", "true", "1":
		return true, false
	case "-1", "reverse":
		return false, true
	default:
		return true, true
	}
}

func nodeID(id osm.NodeID) string {
	return strconv.FormatInt(int64(id), 10)
}
