// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algorithm

import (
	"reflect"
	"testing"

	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/simple"
)

func TestMaximalIndependentSetPath(t *testing.T) {
	// 0-1-2-3-4 path: seeding at 0 excludes 1, then 2 is free and
	// excludes 1 and 3, then 4 is free.
	g := simple.NewUndirectedGraph(5)
	g.AddEdge(0, 1, nil)
	g.AddEdge(1, 2, nil)
	g.AddEdge(2, 3, nil)
	g.AddEdge(3, 4, nil)

	var got []graph.VertexId
	MaximalIndependentSet(g, 0, func(id graph.VertexId) { got = append(got, id) })
	want := []graph.VertexId{0, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got = %v, want %v", got, want)
	}
}

func TestMaximalIndependentSetIsolatedVertices(t *testing.T) {
	g := simple.NewUndirectedGraph(3)
	var got []graph.VertexId
	MaximalIndependentSet(g, 0, func(id graph.VertexId) { got = append(got, id) })
	want := []graph.VertexId{0, 1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got = %v, want %v (no edges means every vertex is independent)", got, want)
	}
}

func TestMaximalIndependentSetNoNeighboringVerticesCoexist(t *testing.T) {
	g := simple.NewUndirectedGraph(4)
	g.AddEdge(0, 1, nil)
	g.AddEdge(2, 3, nil)

	set := make(map[graph.VertexId]bool)
	MaximalIndependentSet(g, 0, func(id graph.VertexId) { set[id] = true })

	adjacent := [][2]graph.VertexId{{0, 1}, {2, 3}}
	for _, p := range adjacent {
		if set[p[0]] && set[p[1]] {
			t.Errorf("both endpoints of edge %v are in the set", p)
		}
	}
}
