// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views_test

import (
	"reflect"
	"testing"

	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/simple"
	"github.com/stdgraph/graph-v2-sub000/graph/views"
)

func TestIncidenceOverDirectedGraph(t *testing.T) {
	g := simple.NewDirectedGraph(3)
	g.AddEdge(0, 1, 1.0)
	g.AddEdge(0, 2, 2.0)

	var got []graph.EdgeInfo
	inc := views.NewIncidenceFunc(g, 0, views.EdgeValueFunc)
	for inc.Next() {
		got = append(got, inc.EdgeInfo())
	}

	want := []graph.EdgeInfo{
		{SourceId: 0, TargetId: 1, Value: 1.0},
		{SourceId: 0, TargetId: 2, Value: 2.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("edges = %+v, want %+v", got, want)
	}
}

func TestIncidenceNoProjectionLeavesValueNil(t *testing.T) {
	g := simple.NewDirectedGraph(2)
	g.AddEdge(0, 1, 5.0)

	inc := views.NewIncidence(g, 0)
	if !inc.Next() {
		t.Fatal("Next() returned false")
	}
	if got := inc.EdgeInfo().Value; got != nil {
		t.Errorf("Value = %v, want nil", got)
	}
}

func TestIncidencePicksOtherEndpointForUnorderedEdges(t *testing.T) {
	// g's single AddEdge call records 0 as source and 1 as target:
	// from vertex 1's perspective, TargetId() returns 1 (== uid), so
	// Incidence must swap to the source, 0.
	g := simple.NewUndirectedGraph(2)
	g.AddEdge(0, 1, nil)

	inc := views.NewIncidence(g, 0)
	inc.Next()
	if got, want := inc.EdgeInfo().TargetId, graph.VertexId(1); got != want {
		t.Errorf("from 0: TargetId = %d, want %d", got, want)
	}

	inc = views.NewIncidence(g, 1)
	inc.Next()
	if got, want := inc.EdgeInfo().TargetId, graph.VertexId(0); got != want {
		t.Errorf("from 1: TargetId = %d, want %d", got, want)
	}
}

func TestIncidenceEmptyVertex(t *testing.T) {
	g := simple.NewDirectedGraph(1)
	inc := views.NewIncidence(g, 0)
	if inc.Next() {
		t.Error("Next() on a vertex with no edges returned true")
	}
}
