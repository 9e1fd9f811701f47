// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algorithm

import (
	"sort"

	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/internal/disjointset"
	"github.com/stdgraph/graph-v2-sub000/graph/views"
)

// EdgeWeightFunc projects a weight out of an edge descriptor for
// comparison purposes; it need not be the same function used by the
// shortest-path package.
type EdgeWeightFunc func(e graph.EdgeInfo) float64

// KruskalMST builds an edgelist projection over every edge of g, sorts
// it by weight(e) ascending, and emits to sink every edge whose
// endpoints are still in different components of a disjoint-set
// forest, merging those components as it goes. The emitted edges form
// a minimum spanning forest: acyclic, spanning exactly the vertices
// touched by an emitted edge, with minimum total weight among spanning
// subgraphs of the same connectivity class.
//
// Passing a weight function that reverses the comparison (e.g.
// func(e) float64 { return -weight(e) }) yields the maximum spanning
// forest instead.
func KruskalMST(g graph.IncidenceGraph, weight EdgeWeightFunc, sink func(e graph.EdgeInfo)) {
	el := views.NewEdgelistFunc(g, views.EdgeValueFunc)
	var edges []graph.EdgeInfo
	for el.Next() {
		edges = append(edges, el.EdgeInfo())
	}

	sort.Slice(edges, func(i, j int) bool {
		return weight(edges[i]) < weight(edges[j])
	})

	forest := disjointset.New(g.NumVertices())
	for _, e := range edges {
		if forest.UnionFind(e.SourceId, e.TargetId) {
			sink(e)
		}
	}
}
