// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algorithm

import (
	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/views"
)

// TriangleCount counts unordered 3-cliques in g by a merge-style walk
// over sorted adjacency lists: for every edge (u, v) with v > u, it
// merges the tail of u's neighbour list starting at v against the whole
// of v's neighbour list, counting a match whenever the two lists agree
// on a target id and otherwise advancing whichever side is smaller.
//
// The v > u restriction is mandatory, not an optimisation: g's
// adjacency lists are symmetric (every edge of an undirected container
// such as simple.UndirectedGraph appears in both endpoints' lists), so
// without it every triangle would be discovered once per ordered pair
// of its vertices instead of once.
//
// g's incidence lists must already be sorted by target id; TriangleCount
// does not sort them itself. Its complexity, O(Σ min(deg(u), deg(v)))
// over edges (u, v) with v > u, only holds under that precondition.
// Neighbour lists are materialised once per vertex since the views
// package's iterators are single-pass and this algorithm needs to
// re-walk a suffix of u's list once per outgoing edge.
func TriangleCount(g graph.IncidenceGraph) int {
	n := g.NumVertices()
	adj := make([][]graph.VertexId, n)
	vit := g.Vertices()
	for vit.Next() {
		u := vit.Id()
		inc := views.NewIncidence(g, u)
		for inc.Next() {
			adj[u] = append(adj[u], inc.EdgeInfo().TargetId)
		}
	}

	count := 0
	for u := 0; u < n; u++ {
		for k, v := range adj[u] {
			if v <= u {
				continue
			}
			i, j := k, 0
			iu, jv := adj[u], adj[v]
			for i < len(iu) && j < len(jv) {
				switch {
				case iu[i] == jv[j]:
					count++
					i++
					j++
				case iu[i] < jv[j]:
					i++
				default:
					j++
				}
			}
		}
	}
	return count
}
