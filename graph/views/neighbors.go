// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import "github.com/stdgraph/graph-v2-sub000/graph"

// Neighbors is a lazy, forward sequence of graph.VertexInfo descriptors
// naming the target vertex of each outgoing edge of a single vertex,
// built directly on top of Incidence: it differs from Incidence only in
// yielding the neighboring vertex rather than the edge.
type Neighbors struct {
	inc *Incidence
	fn  VertexFunc
	cur graph.VertexInfo
}

// NewNeighbors returns a Neighbors view over the outgoing-edge targets
// of uid in g.
func NewNeighbors(g graph.IncidenceGraph, uid graph.VertexId) *Neighbors {
	return NewNeighborsFunc(g, uid, nil)
}

// NewNeighborsFunc returns a Neighbors view over the outgoing-edge
// targets of uid in g, projecting fn(vid) into each descriptor's Value
// field. fn may be nil.
func NewNeighborsFunc(g graph.IncidenceGraph, uid graph.VertexId, fn VertexFunc) *Neighbors {
	return &Neighbors{inc: NewIncidence(g, uid), fn: fn}
}

// Next advances the view and reports whether a neighbor is available.
func (v *Neighbors) Next() bool {
	if !v.inc.Next() {
		return false
	}
	info := v.inc.EdgeInfo()
	v.cur.Id = info.TargetId
	if v.fn != nil {
		v.cur.Value = v.fn(v.cur.Id)
	} else {
		v.cur.Value = nil
	}
	return true
}

// VertexInfo returns the descriptor for the current neighbor. It is
// only valid until the next call to Next.
func (v *Neighbors) VertexInfo() graph.VertexInfo {
	return v.cur
}
