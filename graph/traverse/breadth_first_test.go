// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse_test

import (
	"reflect"
	"testing"

	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/simple"
	"github.com/stdgraph/graph-v2-sub000/graph/traverse"
)

func TestBreadthFirstVisitsInNonDecreasingDepthOrder(t *testing.T) {
	g := chain()
	var got []graph.VertexId
	bfs := traverse.NewBreadthFirst(g, 0)
	for bfs.Next() {
		got = append(got, bfs.VertexInfo().Id)
	}
	want := []graph.VertexId{0, 1, 4, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visit order = %v, want %v", got, want)
	}
}

func TestBreadthFirstSeedWithNoEdges(t *testing.T) {
	g := simple.NewDirectedGraph(1)
	bfs := traverse.NewBreadthFirst(g, 0)
	if !bfs.Next() {
		t.Fatal("first Next() must yield the seed")
	}
	if bfs.Next() {
		t.Error("second Next() on a seed with no edges returned true")
	}
}

func TestBreadthFirstDoesNotRevisit(t *testing.T) {
	g := simple.NewDirectedGraph(3)
	g.AddEdge(0, 1, nil)
	g.AddEdge(1, 2, nil)
	g.AddEdge(2, 0, nil)

	n := 0
	bfs := traverse.NewBreadthFirst(g, 0)
	for bfs.Next() {
		n++
	}
	if n != 3 {
		t.Errorf("visited %d vertices, want 3", n)
	}
}

func TestBreadthFirstEdgesYieldsDiscoveringEdge(t *testing.T) {
	g := chain()
	var got []graph.EdgeInfo
	bfs := traverse.NewBreadthFirstEdges(g, 0)
	for bfs.Next() {
		got = append(got, bfs.EdgeInfo())
	}
	want := []graph.EdgeInfo{
		{SourceId: 0, TargetId: 1},
		{SourceId: 0, TargetId: 4},
		{SourceId: 1, TargetId: 2},
		{SourceId: 2, TargetId: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("edges = %+v, want %+v", got, want)
	}
}
