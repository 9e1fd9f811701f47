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

func TestNeighborsYieldsTargetsOnly(t *testing.T) {
	g := simple.NewDirectedGraph(4)
	g.AddEdge(0, 1, nil)
	g.AddEdge(0, 2, nil)
	g.AddEdge(0, 3, nil)

	var got []graph.VertexId
	n := views.NewNeighbors(g, 0)
	for n.Next() {
		got = append(got, n.VertexInfo().Id)
	}

	want := []graph.VertexId{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("neighbors = %v, want %v", got, want)
	}
}

func TestNeighborsProjection(t *testing.T) {
	g := simple.NewDirectedGraph(2)
	g.AddEdge(0, 1, nil)

	n := views.NewNeighborsFunc(g, 0, func(vid graph.VertexId) interface{} { return vid * 10 })
	n.Next()
	if got, want := n.VertexInfo().Value, 10; got != want {
		t.Errorf("Value = %v, want %v", got, want)
	}
}
