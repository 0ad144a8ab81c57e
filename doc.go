// Package wasteroute finds the smallest set of streets a waste collection
// crew must cover so that every intersection of a neighborhood stays
// reachable.
//
// The street network is a weighted graph: intersections are vertices and
// street segments are edges weighted by length in meters. The minimum
// spanning tree of that graph is the cheapest street set that still connects
// every intersection; the rest of the network is the savings.
//
// Pipeline:
//
//	streetnet/    - OpenStreetMap (Overpass JSON) → raw street graph
//	prepare/      - undirected, simple, positively weighted, largest component
//	optimizer/    - Prim or Kruskal → spanning tree + Metrics
//	report/       - street listing (CSV) and execution summary
//
// Supporting packages:
//
//	core/         - thread-safe Graph, Vertex and Edge primitives
//	bfs/          - breadth-first traversal with segment filtering
//	components/   - connected components ("islands")
//	prim_kruskal/ - MST algorithms and DisjointSet
//	config/       - YAML configuration with validation
//	telemetry/    - Prometheus collectors for optimization runs
//	cmd/wasteroute - the command line entry point
//
// Quick ASCII example:
//
//	    A──10──B
//	     \     │
//	      25   10
//	        \  │
//	          C
//
// The tree keeps A–B and B–C (20 m) and drops A–C: 25 of 45 meters, 55.6%.
//
//	go run github.com/katalvlaran/wasteroute/cmd/wasteroute -input streets.json
package wasteroute
