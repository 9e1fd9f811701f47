// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import "github.com/stdgraph/graph-v2-sub000/graph"

// Edgelist is a lazy, forward sequence flattening every vertex's
// outgoing-edge sequence into one, in graph.Vertices order and, within
// a vertex, in graph.IncidenceGraph.Edges order. After construction and
// after every advance, Edgelist skips forward past vertices with empty
// edge sequences, so a successful Next always leaves the view
// dereferenceable.
type Edgelist struct {
	g   graph.IncidenceGraph
	uid graph.VertexId
	vit graph.VertexIterator
	eit graph.EdgeIterator
	fn  EdgeFunc
	cur graph.EdgeInfo
}

// NewEdgelist returns an Edgelist view flattening every outgoing edge of
// every vertex of g.
func NewEdgelist(g graph.IncidenceGraph) *Edgelist {
	return NewEdgelistFunc(g, nil)
}

// NewEdgelistFunc returns an Edgelist view flattening every outgoing
// edge of every vertex of g, projecting fn(it) into each descriptor's
// Value field. fn may be nil.
func NewEdgelistFunc(g graph.IncidenceGraph, fn EdgeFunc) *Edgelist {
	return &Edgelist{g: g, vit: g.Vertices(), fn: fn}
}

// NewEdgelistRange returns an Edgelist view restricted to the vertices
// with ids in [ubegin, uend).
func NewEdgelistRange(g graph.IncidenceGraph, ubegin, uend graph.VertexId) *Edgelist {
	return &Edgelist{g: g, vit: &rangeVertices{next: ubegin, end: uend}}
}

// rangeVertices is a VertexIterator over a contiguous id range, used by
// NewEdgelistRange; it assumes the dense-id property of indexed
// adjacency lists.
type rangeVertices struct {
	cur, next, end graph.VertexId
}

func (r *rangeVertices) Next() bool {
	if r.next >= r.end {
		return false
	}
	r.cur = r.next
	r.next++
	return true
}

func (r *rangeVertices) Id() graph.VertexId { return r.cur }

// Next advances the view, skipping forward past any vertex whose
// outgoing-edge sequence is empty, and reports whether an edge is
// available.
func (v *Edgelist) Next() bool {
	for {
		if v.eit != nil && v.eit.Next() {
			v.cur.SourceId = v.uid
			v.cur.TargetId = v.eit.TargetId()
			if v.fn != nil {
				v.cur.Value = v.fn(v.eit)
			} else {
				v.cur.Value = nil
			}
			return true
		}
		if !v.vit.Next() {
			return false
		}
		v.uid = v.vit.Id()
		v.eit = v.g.Edges(v.uid)
	}
}

// EdgeInfo returns the descriptor for the current edge. It is only
// valid until the next call to Next.
func (v *Edgelist) EdgeInfo() graph.EdgeInfo {
	return v.cur
}
