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

// chain builds 0 -> 1 -> 2 -> 3, plus a branch 0 -> 4, so the walk from
// 0 has two top-level branches to exercise cancellation independently.
func chain() *simple.DirectedGraph {
	g := simple.NewDirectedGraph(5)
	g.AddEdge(0, 1, nil)
	g.AddEdge(1, 2, nil)
	g.AddEdge(2, 3, nil)
	g.AddEdge(0, 4, nil)
	return g
}

func TestDepthFirstVisitsPreorder(t *testing.T) {
	g := chain()
	var got []graph.VertexId
	dfs := traverse.NewDepthFirst(g, 0)
	for dfs.Next() {
		got = append(got, dfs.VertexInfo().Id)
	}
	want := []graph.VertexId{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visit order = %v, want %v", got, want)
	}
}

func TestDepthFirstSeedWithNoEdges(t *testing.T) {
	g := simple.NewDirectedGraph(1)
	dfs := traverse.NewDepthFirst(g, 0)
	if !dfs.Next() {
		t.Fatal("first Next() must yield the seed")
	}
	if got, want := dfs.VertexInfo().Id, graph.VertexId(0); got != want {
		t.Errorf("seed id = %d, want %d", got, want)
	}
	if dfs.Next() {
		t.Error("second Next() on a seed with no edges returned true")
	}
}

func TestDepthFirstCancelBranchSkipsSubtreeNotSiblings(t *testing.T) {
	g := chain()
	var got []graph.VertexId
	dfs := traverse.NewDepthFirst(g, 0)
	for dfs.Next() {
		id := dfs.VertexInfo().Id
		got = append(got, id)
		if id == 1 {
			// Cancel 1's subtree (vertices 2, 3); 0's other branch, 4,
			// must still be visited.
			dfs.Cancel(traverse.CancelBranch)
		}
	}
	want := []graph.VertexId{0, 1, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visit order = %v, want %v", got, want)
	}
}

func TestDepthFirstCancelAllStopsImmediately(t *testing.T) {
	g := chain()
	var got []graph.VertexId
	dfs := traverse.NewDepthFirst(g, 0)
	for dfs.Next() {
		id := dfs.VertexInfo().Id
		got = append(got, id)
		if id == 1 {
			dfs.Cancel(traverse.CancelAll)
		}
	}
	want := []graph.VertexId{0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visit order = %v, want %v", got, want)
	}
	if dfs.Next() {
		t.Error("Next() after CancelAll returned true")
	}
}

func TestDepthFirstEdgesYieldsDiscoveringEdge(t *testing.T) {
	g := chain()
	var got []graph.EdgeInfo
	dfs := traverse.NewDepthFirstEdges(g, 0)
	for dfs.Next() {
		got = append(got, dfs.EdgeInfo())
	}
	want := []graph.EdgeInfo{
		{SourceId: 0, TargetId: 1},
		{SourceId: 1, TargetId: 2},
		{SourceId: 2, TargetId: 3},
		{SourceId: 0, TargetId: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("edges = %+v, want %+v", got, want)
	}
}

func TestDepthFirstDoesNotRevisit(t *testing.T) {
	g := simple.NewDirectedGraph(3)
	g.AddEdge(0, 1, nil)
	g.AddEdge(1, 2, nil)
	g.AddEdge(2, 0, nil) // cycle back to the seed

	var got []graph.VertexId
	dfs := traverse.NewDepthFirst(g, 0)
	for dfs.Next() {
		got = append(got, dfs.VertexInfo().Id)
	}
	want := []graph.VertexId{0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visit order = %v, want %v", got, want)
	}
}
