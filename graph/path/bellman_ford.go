// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/views"
)

// BellmanFord computes single- or multi-source shortest paths on g from
// sources into the caller-owned dist and pred buffers, tolerating
// negative edge weights. Buffers must already be initialised by
// graph.InitShortestPaths.
//
// BellmanFord runs the classic relax-every-edge-n-minus-1-times
// algorithm over an edgelist view of g, exiting early once a full pass
// relaxes nothing. A final verification pass then walks the edgelist
// once more and stops at the first edge that would still relax: g
// contains a negative cycle reachable from sources, and BellmanFord
// returns that edge's source vertex as a witness instead of an error,
// since a negative cycle is an expected outcome for this entry point
// rather than a usage mistake. Call FindNegativeCycle on the witness to
// recover the cycle itself.
//
// The time complexity of BellmanFord is O(|V|·|E|).
func BellmanFord(g graph.IncidenceGraph, sources []graph.VertexId, dist []float64, pred []int, weight WeightFunc, visitor Visitor, combine CombineFunc, compare CompareFunc) (negativeCycleWitness int, hasNegativeCycle bool, err error) {
	const op = "path.BellmanFord"
	n := g.NumVertices()
	if len(dist) < n || (pred != nil && len(pred) < n) {
		return 0, false, graph.NewError(op, graph.BufferTooSmall, "")
	}
	for _, s := range sources {
		if !graph.FindVertex(g, s) {
			return 0, false, graph.NewError(op, graph.SourceOutOfRange, "")
		}
	}
	combine = combineOrDefault(combine)
	compare = compareOrDefault(compare)

	for uid := 0; uid < n; uid++ {
		visitInitializeVertex(visitor, uid)
	}
	for _, s := range sources {
		dist[s] = graph.ShortestPathZero
		visitDiscoverVertex(visitor, s)
	}

	relax := func() (relaxedAny bool) {
		el := views.NewEdgelistFunc(g, views.EdgeValueFunc)
		for el.Next() {
			e := el.EdgeInfo()
			visitExamineEdge(visitor, e)
			if dist[e.SourceId] == graph.ShortestPathInvalidDistance {
				continue
			}
			w := weight(e)
			nd := combine(dist[e.SourceId], w)
			if compare(nd, dist[e.TargetId]) {
				wasUndiscovered := dist[e.TargetId] == graph.ShortestPathInvalidDistance
				dist[e.TargetId] = nd
				if pred != nil {
					pred[e.TargetId] = e.SourceId
				}
				visitEdgeRelaxed(visitor, e)
				if wasUndiscovered {
					visitDiscoverVertex(visitor, e.TargetId)
				}
				relaxedAny = true
			} else {
				visitEdgeNotRelaxed(visitor, e)
			}
		}
		return relaxedAny
	}

	for i := 0; i < n-1; i++ {
		if !relax() {
			return 0, false, nil
		}
	}

	el := views.NewEdgelistFunc(g, views.EdgeValueFunc)
	for el.Next() {
		e := el.EdgeInfo()
		if dist[e.SourceId] == graph.ShortestPathInvalidDistance {
			continue
		}
		nd := combine(dist[e.SourceId], weight(e))
		if compare(nd, dist[e.TargetId]) {
			if pred != nil {
				pred[e.TargetId] = e.SourceId
			}
			visitEdgeNotMinimized(visitor, e)
			return e.SourceId, true, nil
		}
		visitEdgeMinimized(visitor, e)
	}
	return 0, false, nil
}
