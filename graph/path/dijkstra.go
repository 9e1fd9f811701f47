// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"container/heap"

	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/views"
)

// Dijkstra computes single- or multi-source shortest paths on g from
// sources into the caller-owned dist and pred buffers. Buffers must
// already be initialised by graph.InitShortestPaths, weight must be
// non-negative for every g-reachable edge, and visitor (which may be
// nil) is driven through its implemented hooks in this order per vertex
// popped from the priority queue: OnExamineVertex, then
// OnExamineEdge/OnEdgeRelaxed/OnEdgeNotRelaxed per outgoing edge, then
// OnFinishVertex.
//
// combine and compare may be nil, in which case Add and Less are used;
// this lets callers generalise beyond plain addition of edge weights,
// for example to a bottleneck (min-max) shortest path.
//
// The time complexity of Dijkstra is O((|V|+|E|)·log|V|).
func Dijkstra(g graph.IncidenceGraph, sources []graph.VertexId, dist []float64, pred []int, weight WeightFunc, visitor Visitor, combine CombineFunc, compare CompareFunc) error {
	return dijkstra(g, sources, dist, pred, weight, visitor, combine, compare)
}

// DijkstraDistancesOnly runs the same algorithm as Dijkstra but without
// writing predecessors, sharing Dijkstra's body by passing a nil
// predecessor buffer so callers who only need distances avoid owning a
// pred slice at all.
func DijkstraDistancesOnly(g graph.IncidenceGraph, sources []graph.VertexId, dist []float64, weight WeightFunc, visitor Visitor, combine CombineFunc, compare CompareFunc) error {
	return dijkstra(g, sources, dist, nil, weight, visitor, combine, compare)
}

func dijkstra(g graph.IncidenceGraph, sources []graph.VertexId, dist []float64, pred []int, weight WeightFunc, visitor Visitor, combine CombineFunc, compare CompareFunc) error {
	const op = "path.Dijkstra"
	n := g.NumVertices()
	if len(dist) < n || (pred != nil && len(pred) < n) {
		return graph.NewError(op, graph.BufferTooSmall, "")
	}
	for _, s := range sources {
		if !graph.FindVertex(g, s) {
			return graph.NewError(op, graph.SourceOutOfRange, "")
		}
	}
	combine = combineOrDefault(combine)
	compare = compareOrDefault(compare)

	for uid := 0; uid < n; uid++ {
		visitInitializeVertex(visitor, uid)
	}

	q := priorityQueue{compare: compare}
	for _, s := range sources {
		dist[s] = graph.ShortestPathZero
		heap.Push(&q, distanceVertex{uid: s, dist: dist[s]})
		visitDiscoverVertex(visitor, s)
	}

	for q.Len() != 0 {
		top := heap.Pop(&q).(distanceVertex)
		u := top.uid
		if compare(dist[u], top.dist) {
			continue // stale entry; a better one was already popped.
		}
		visitExamineVertex(visitor, u)

		inc := views.NewIncidenceFunc(g, u, views.EdgeValueFunc)
		for inc.Next() {
			e := inc.EdgeInfo()
			visitExamineEdge(visitor, e)

			w := weight(e)
			if w < 0 {
				return graph.NewError(op, graph.NegativeWeight, "")
			}

			v := e.TargetId
			wasUndiscovered := dist[v] == graph.ShortestPathInvalidDistance
			nd := combine(dist[u], w)
			if compare(nd, dist[v]) {
				dist[v] = nd
				if pred != nil {
					pred[v] = u
				}
				if wasUndiscovered {
					visitEdgeRelaxed(visitor, e)
					visitDiscoverVertex(visitor, v)
				} else {
					visitEdgeRelaxed(visitor, e)
				}
				heap.Push(&q, distanceVertex{uid: v, dist: nd})
			} else {
				if wasUndiscovered {
					return graph.NewError(op, graph.InternalInvariant,
						"edge to an undiscovered vertex did not relax")
				}
				visitEdgeNotRelaxed(visitor, e)
			}
		}

		visitFinishVertex(visitor, u)
	}

	return nil
}
