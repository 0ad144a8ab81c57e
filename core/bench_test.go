// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/wasteroute/core"
)

// BenchmarkAddEdge measures adding edges to a star-shaped street graph.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("Root", fmt.Sprintf("N%d", i), core.WithLength(float64(i+1)))
	}
}

// BenchmarkEdges measures the ordered edge snapshot on a 10k-edge path.
func BenchmarkEdges(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 10000; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1), core.WithLength(1))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Edges()
	}
}

// BenchmarkClone measures deep copies of a 10k-edge path.
func BenchmarkClone(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 10000; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1), core.WithLength(1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
