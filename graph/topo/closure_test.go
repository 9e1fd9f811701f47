// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/stdgraph/graph-v2-sub000/graph/simple"
	"github.com/stdgraph/graph-v2-sub000/graph/topo"
)

func pairs(g *simple.DirectedGraph) [][2]int {
	var got [][2]int
	topo.TransitiveClosure(g, func(u, v int) { got = append(got, [2]int{u, v}) })
	return got
}

func TestTransitiveClosureChain(t *testing.T) {
	g := simple.NewDirectedGraph(3)
	g.AddEdge(0, 1, nil)
	g.AddEdge(1, 2, nil)

	got := pairs(g)
	want := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	sort.Slice(got, func(i, j int) bool {
		if got[i][0] != got[j][0] {
			return got[i][0] < got[j][0]
		}
		return got[i][1] < got[j][1]
	})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("closure = %v, want %v", got, want)
	}
}

func TestTransitiveClosureNoEdgesIsEmpty(t *testing.T) {
	g := simple.NewDirectedGraph(3)
	got := pairs(g)
	if len(got) != 0 {
		t.Errorf("closure = %v, want none", got)
	}
}

func TestTransitiveClosureCycleReachesSelf(t *testing.T) {
	g := simple.NewDirectedGraph(2)
	g.AddEdge(0, 1, nil)
	g.AddEdge(1, 0, nil)

	got := pairs(g)
	want := map[[2]int]bool{{0, 0}: true, {0, 1}: true, {1, 0}: true, {1, 1}: true}
	if len(got) != len(want) {
		t.Fatalf("closure = %v, want %d pairs", got, len(want))
	}
	for _, p := range got {
		if !want[p] {
			t.Errorf("unexpected pair %v in closure", p)
		}
	}
}
