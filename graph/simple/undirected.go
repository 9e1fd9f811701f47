// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"sort"

	"github.com/stdgraph/graph-v2-sub000/graph"
)

// unorderedEdge is shared, by pointer, between both endpoints' adjacency
// lists: sourceId/targetId record the order AddEdge was called with,
// regardless of which endpoint's list it is currently being iterated
// from.
type unorderedEdge struct {
	sourceId, targetId graph.VertexId
	value              interface{}
}

// UndirectedGraph is a dense, indexed adjacency list whose edges are
// declared unordered via graph.UnorderedEdges: each added edge is
// sourced (carries both endpoint ids as originally added) but appears
// in both endpoints' outgoing-edge sequence, leaving views.Incidence
// to pick the endpoint that is not the current vertex.
type UndirectedGraph struct {
	adj [][]*unorderedEdge
}

// NewUndirectedGraph returns an UndirectedGraph with n vertices and no
// edges.
func NewUndirectedGraph(n int) *UndirectedGraph {
	return &UndirectedGraph{adj: make([][]*unorderedEdge, n)}
}

// AddEdge records an edge between u and v carrying value, visible from
// both u's and v's Edges iterator.
func (g *UndirectedGraph) AddEdge(u, v graph.VertexId, value interface{}) {
	e := &unorderedEdge{sourceId: u, targetId: v, value: value}
	g.adj[u] = append(g.adj[u], e)
	if u != v {
		g.adj[v] = append(g.adj[v], e)
	}
}

// NumVertices returns the number of vertices g was constructed with.
func (g *UndirectedGraph) NumVertices() int { return len(g.adj) }

// Vertices returns a fresh VertexIterator over [0, NumVertices()).
func (g *UndirectedGraph) Vertices() graph.VertexIterator {
	return &denseVertexIter{n: len(g.adj), cur: -1}
}

// Edges returns a fresh EdgeIterator over every edge touching uid.
func (g *UndirectedGraph) Edges(uid graph.VertexId) graph.EdgeIterator {
	return &unorderedEdgeIter{edges: g.adj[uid], idx: -1}
}

// IsUnorderedEdge always returns true: every edge yielded by g is
// undirected.
func (g *UndirectedGraph) IsUnorderedEdge() bool { return true }

// SortEdges sorts every vertex's incident edge list by ascending id of
// the endpoint that is not that vertex, the precondition
// algorithm.TriangleCount requires of its input.
func (g *UndirectedGraph) SortEdges() {
	for uid := range g.adj {
		edges := g.adj[uid]
		other := func(e *unorderedEdge) graph.VertexId {
			if e.targetId == graph.VertexId(uid) {
				return e.sourceId
			}
			return e.targetId
		}
		sort.Slice(edges, func(i, j int) bool { return other(edges[i]) < other(edges[j]) })
	}
}

type unorderedEdgeIter struct {
	edges []*unorderedEdge
	idx   int
}

func (it *unorderedEdgeIter) Next() bool {
	it.idx++
	return it.idx < len(it.edges)
}

func (it *unorderedEdgeIter) TargetId() graph.VertexId { return it.edges[it.idx].targetId }

func (it *unorderedEdgeIter) SourceId() graph.VertexId { return it.edges[it.idx].sourceId }

func (it *unorderedEdgeIter) EdgeValue() interface{} { return it.edges[it.idx].value }
