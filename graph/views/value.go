// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import "github.com/stdgraph/graph-v2-sub000/graph"

// EdgeValueFunc is an EdgeFunc that projects an edge's EdgeValue when
// its iterator implements graph.EdgeValuer, and nil otherwise.
//
// Algorithms that need a view's descriptors to carry the underlying
// edge's payload — so that a caller-supplied weight function can read
// it back off EdgeInfo.Value — but that build their own internal views
// rather than accepting one from the caller (path.Dijkstra,
// path.BellmanFord, algorithm.KruskalMST), pass this as their default
// edge_fn instead of leaving descriptors valueless.
func EdgeValueFunc(it graph.EdgeIterator) interface{} {
	if ev, ok := it.(graph.EdgeValuer); ok {
		return ev.EdgeValue()
	}
	return nil
}

// VertexValueFunc is a VertexFunc that projects a vertex's VertexValue
// when g implements graph.VertexValuer, and nil otherwise.
func VertexValueFunc(g graph.VertexListGraph) VertexFunc {
	vv, ok := g.(graph.VertexValuer)
	if !ok {
		return nil
	}
	return func(uid graph.VertexId) interface{} { return vv.VertexValue(uid) }
}
