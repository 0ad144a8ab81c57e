// Package core_test contains fixtures shared by the core tests.
package core_test

import (
	"testing"

	"github.com/katalvlaran/wasteroute/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common segment lengths in meters.
const (
	Length10 = 10.0
	Length25 = 25.0
	Length40 = 40.0
)

// buildStreetTriangle builds A–B(10) B–C(10) A–C(25) with names and classes.
func buildStreetTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge(VertexA, VertexB, core.WithLength(Length10), core.WithName("Rua A"), core.WithRoadClass("residential"))
	require.NoError(t, err)
	_, err = g.AddEdge(VertexB, VertexC, core.WithLength(Length10), core.WithName("Rua B"))
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexC, core.WithLength(Length25), core.WithName("Avenida C"), core.WithSourceID("77"))
	require.NoError(t, err)

	return g
}

// edgeIDs extracts IDs in slice order.
func edgeIDs(edges []*core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}

	return out
}

// edgeByID finds a live edge of g by ID.
func edgeByID(t *testing.T, g *core.Graph, id string) *core.Edge {
	t.Helper()
	for _, e := range g.Edges() {
		if e.ID == id {
			return e
		}
	}
	require.FailNow(t, "edge not found", id)

	return nil
}

// joined reports whether some edge leaves from and reaches to.
func joined(t *testing.T, g *core.Graph, from, to string) bool {
	t.Helper()
	nbs, err := g.Neighbors(from)
	require.NoError(t, err)
	for _, e := range nbs {
		if e.Other(from) == to {
			return true
		}
	}

	return false
}
