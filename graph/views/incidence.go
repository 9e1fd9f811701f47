// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import "github.com/stdgraph/graph-v2-sub000/graph"

// EdgeFunc projects a value from an edge iterator positioned at the
// current edge, for use with NewIncidenceFunc.
type EdgeFunc func(it graph.EdgeIterator) interface{}

// Incidence is a lazy, forward sequence of graph.EdgeInfo descriptors
// over the outgoing edges of a single vertex.
//
// When the underlying graph declares its edges undirected via
// graph.UnorderedEdges and the edge iterator is sourced, Incidence
// swaps endpoints so that TargetId always names the endpoint that is
// not uid, regardless of which way the edge happened to be stored; see
// the graph contract's unordered-edge trait.
type Incidence struct {
	uid       graph.VertexId
	it        graph.EdgeIterator
	fn        EdgeFunc
	unordered bool
	cur       graph.EdgeInfo
}

// NewIncidence returns an Incidence view over the outgoing edges of uid
// in g.
func NewIncidence(g graph.IncidenceGraph, uid graph.VertexId) *Incidence {
	return NewIncidenceFunc(g, uid, nil)
}

// NewIncidenceFunc returns an Incidence view over the outgoing edges of
// uid in g, projecting fn(it) into each descriptor's Value field. fn may
// be nil.
func NewIncidenceFunc(g graph.IncidenceGraph, uid graph.VertexId, fn EdgeFunc) *Incidence {
	return &Incidence{
		uid:       uid,
		it:        g.Edges(uid),
		fn:        fn,
		unordered: graph.IsUnorderedEdge(g),
	}
}

// Next advances the view and reports whether an edge is available.
func (v *Incidence) Next() bool {
	if !v.it.Next() {
		return false
	}
	v.cur.SourceId = v.uid
	target := v.it.TargetId()
	if v.unordered {
		if s, ok := v.it.(graph.Sourced); ok {
			if target != v.uid {
				// target is already the "other" endpoint.
			} else {
				target = s.SourceId()
			}
		}
	}
	v.cur.TargetId = target
	if v.fn != nil {
		v.cur.Value = v.fn(v.it)
	} else {
		v.cur.Value = nil
	}
	return true
}

// EdgeInfo returns the descriptor for the current edge. It is only
// valid until the next call to Next.
func (v *Incidence) EdgeInfo() graph.EdgeInfo {
	return v.cur
}
