// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

import (
	"sort"

	"github.com/stdgraph/graph-v2-sub000/graph"
)

type weightedEdge struct {
	target graph.VertexId
	value  interface{}
}

// DirectedGraph is a dense, indexed adjacency list: NumVertices is fixed
// at construction and every graph.VertexId in [0, NumVertices()) names a
// vertex, whether or not it has any outgoing edges. It implements
// graph.IncidenceGraph, and its edge iterator additionally implements
// graph.Sourced and graph.EdgeValuer.
type DirectedGraph struct {
	out       [][]weightedEdge
	vertexVal []interface{}
	graphVal  interface{}
}

// NewDirectedGraph returns a DirectedGraph with n vertices and no edges.
func NewDirectedGraph(n int) *DirectedGraph {
	return &DirectedGraph{
		out:       make([][]weightedEdge, n),
		vertexVal: make([]interface{}, n),
	}
}

// NumVertices returns the number of vertices g was constructed with.
func (g *DirectedGraph) NumVertices() int { return len(g.out) }

// Vertices returns a fresh VertexIterator over [0, NumVertices()).
func (g *DirectedGraph) Vertices() graph.VertexIterator {
	return &denseVertexIter{n: len(g.out), cur: -1}
}

// Edges returns a fresh EdgeIterator over uid's outgoing edges, in the
// order they were added (or, after SortEdges, in ascending target id
// order).
func (g *DirectedGraph) Edges(uid graph.VertexId) graph.EdgeIterator {
	return &directedEdgeIter{source: uid, edges: g.out[uid], idx: -1}
}

// Degree returns the number of outgoing edges of uid.
func (g *DirectedGraph) Degree(uid graph.VertexId) int { return len(g.out[uid]) }

// VertexValue returns the payload set for uid by SetVertexValue, or nil
// if none was set.
func (g *DirectedGraph) VertexValue(uid graph.VertexId) interface{} { return g.vertexVal[uid] }

// GraphValue returns the whole-graph payload set by SetGraphValue, or
// nil if none was set.
func (g *DirectedGraph) GraphValue() interface{} { return g.graphVal }

// SetVertexValue assigns uid's payload.
func (g *DirectedGraph) SetVertexValue(uid graph.VertexId, v interface{}) { g.vertexVal[uid] = v }

// SetGraphValue assigns the whole-graph payload.
func (g *DirectedGraph) SetGraphValue(v interface{}) { g.graphVal = v }

// AddEdge appends a directed edge uid -> vid carrying value to g.
func (g *DirectedGraph) AddEdge(uid, vid graph.VertexId, value interface{}) {
	g.out[uid] = append(g.out[uid], weightedEdge{target: vid, value: value})
}

// SortEdges sorts every vertex's outgoing edge list by ascending target
// id, the precondition algorithm.TriangleCount requires of its input.
func (g *DirectedGraph) SortEdges() {
	for uid := range g.out {
		edges := g.out[uid]
		sort.Slice(edges, func(i, j int) bool { return edges[i].target < edges[j].target })
	}
}

// Transpose returns a new DirectedGraph with the same vertex count as g
// and every edge reversed, the gT argument topo.KosarajuSCC requires.
func (g *DirectedGraph) Transpose() *DirectedGraph {
	t := NewDirectedGraph(len(g.out))
	for uid, edges := range g.out {
		for _, e := range edges {
			t.AddEdge(e.target, graph.VertexId(uid), e.value)
		}
	}
	return t
}

type denseVertexIter struct {
	n, cur int
}

func (it *denseVertexIter) Next() bool {
	it.cur++
	return it.cur < it.n
}

func (it *denseVertexIter) Id() graph.VertexId { return it.cur }

type directedEdgeIter struct {
	source graph.VertexId
	edges  []weightedEdge
	idx    int
}

func (it *directedEdgeIter) Next() bool {
	it.idx++
	return it.idx < len(it.edges)
}

func (it *directedEdgeIter) TargetId() graph.VertexId { return it.edges[it.idx].target }

func (it *directedEdgeIter) SourceId() graph.VertexId { return it.source }

func (it *directedEdgeIter) EdgeValue() interface{} { return it.edges[it.idx].value }
