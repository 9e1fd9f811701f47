// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/internal/testgraph"
	"github.com/stdgraph/graph-v2-sub000/graph/simple"
)

func TestBellmanFordGermanyRoutesMatchesDijkstra(t *testing.T) {
	g := testgraph.Germany()
	n := g.NumVertices()
	dist := make([]float64, n)
	pred := make([]int, n)
	graph.InitShortestPaths(dist, pred)

	witness, hasCycle, err := BellmanFord(g, []graph.VertexId{0}, dist, pred, edgeWeight, nil, nil, nil)
	require.NoError(t, err)
	require.Falsef(t, hasCycle, "hasCycle = true, want false (witness %d)", witness)

	want := []float64{0, 85, 165, 415, 217, 320, 173, 403, 487, 503}
	require.Equal(t, want, dist)
	require.Equal(t, 5, pred[8])
	require.Equal(t, 4, pred[5])
	require.Equal(t, 0, pred[4])
}

func TestBellmanFordDetectsNegativeCycle(t *testing.T) {
	g := simple.NewDirectedGraph(3)
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(1, 2, -5.0)
	g.AddEdge(2, 1, 1.0)

	dist := make([]float64, 3)
	pred := make([]int, 3)
	graph.InitShortestPaths(dist, pred)

	_, hasCycle, err := BellmanFord(g, []graph.VertexId{0}, dist, pred, edgeWeight, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, hasCycle)
}

func TestBellmanFordNoNegativeCycleWithNegativeWeightsAllowed(t *testing.T) {
	// A negative edge that is not part of a cycle is fine for
	// Bellman-Ford, unlike Dijkstra.
	g := simple.NewDirectedGraph(3)
	g.AddEdge(0, 1, 4.0)
	g.AddEdge(0, 2, 5.0)
	g.AddEdge(2, 1, -3.0)

	dist := make([]float64, 3)
	pred := make([]int, 3)
	graph.InitShortestPaths(dist, pred)

	_, hasCycle, err := BellmanFord(g, []graph.VertexId{0}, dist, pred, edgeWeight, nil, nil, nil)
	require.NoError(t, err)
	require.False(t, hasCycle)
	require.Equal(t, 2.0, dist[1])
}

func TestBellmanFordSourceOutOfRange(t *testing.T) {
	g := simple.NewDirectedGraph(2)
	dist := make([]float64, 2)
	pred := make([]int, 2)
	graph.InitShortestPaths(dist, pred)

	_, _, err := BellmanFord(g, []graph.VertexId{9}, dist, pred, edgeWeight, nil, nil, nil)
	ge, ok := err.(*graph.GraphError)
	require.True(t, ok)
	require.Equal(t, graph.SourceOutOfRange, ge.Kind)
}

func TestBellmanFordBufferTooSmall(t *testing.T) {
	g := simple.NewDirectedGraph(3)
	dist := make([]float64, 1)
	pred := make([]int, 1)

	_, _, err := BellmanFord(g, []graph.VertexId{0}, dist, pred, edgeWeight, nil, nil, nil)
	ge, ok := err.(*graph.GraphError)
	require.True(t, ok)
	require.Equal(t, graph.BufferTooSmall, ge.Kind)
}

func TestBellmanFordEmptyGraph(t *testing.T) {
	g := simple.NewDirectedGraph(0)
	_, hasCycle, err := BellmanFord(g, nil, nil, nil, edgeWeight, nil, nil, nil)
	require.NoError(t, err)
	require.False(t, hasCycle)
}
