// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/traverse"
)

// ConnectedComponents labels every vertex of g with a weakly connected
// component id into the caller-owned component buffer and returns the
// number of components found. g is treated as undirected: callers
// wanting weak connectivity on a directed graph should pass a view that
// exposes both directions of every edge.
//
// component must have length at least g.NumVertices(). component[u] ==
// component[v] iff u and v lie in the same component; the returned
// count equals 1 + the maximum assigned id.
func ConnectedComponents(g graph.IncidenceGraph, component []int) (int, error) {
	const op = "topo.ConnectedComponents"
	n := g.NumVertices()
	if len(component) < n {
		return 0, graph.NewError(op, graph.BufferTooSmall, "")
	}
	for i := range component[:n] {
		component[i] = -1
	}

	next := 0
	vit := g.Vertices()
	for vit.Next() {
		seed := vit.Id()
		if component[seed] != -1 {
			continue
		}
		id := next
		next++
		dfs := traverse.NewDepthFirst(g, seed)
		for dfs.Next() {
			component[dfs.VertexInfo().Id] = id
		}
	}
	return next, nil
}
