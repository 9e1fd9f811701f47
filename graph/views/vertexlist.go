// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package views

import "github.com/stdgraph/graph-v2-sub000/graph"

// VertexFunc projects a value from a vertex id, for use with
// NewVertexlistFunc.
type VertexFunc func(uid graph.VertexId) interface{}

// Vertexlist is a lazy, forward sequence of graph.VertexInfo descriptors
// over a graph's vertex range, in the graph's native order. Next must be
// called before the first call to VertexInfo.
type Vertexlist struct {
	it  graph.VertexIterator
	fn  VertexFunc
	cur graph.VertexInfo
}

// NewVertexlist returns a Vertexlist view over every vertex of g.
func NewVertexlist(g graph.VertexListGraph) *Vertexlist {
	return NewVertexlistFunc(g, nil)
}

// NewVertexlistFunc returns a Vertexlist view over every vertex of g,
// projecting fn(uid) into each descriptor's Value field. fn may be nil,
// in which case Value is left nil.
func NewVertexlistFunc(g graph.VertexListGraph, fn VertexFunc) *Vertexlist {
	return &Vertexlist{it: g.Vertices(), fn: fn}
}

// NewVertexlistRange returns a Vertexlist view restricted to the
// vertices with ids in [ubegin, uend), assuming the dense-id property
// of indexed adjacency lists. fn may be nil.
func NewVertexlistRange(g graph.VertexListGraph, ubegin, uend graph.VertexId, fn VertexFunc) *Vertexlist {
	return &Vertexlist{it: &rangeVertices{next: ubegin, end: uend}, fn: fn}
}

// Next advances the view and reports whether a vertex is available.
func (v *Vertexlist) Next() bool {
	if !v.it.Next() {
		return false
	}
	v.cur.Id = v.it.Id()
	if v.fn != nil {
		v.cur.Value = v.fn(v.cur.Id)
	} else {
		v.cur.Value = nil
	}
	return true
}

// VertexInfo returns the descriptor for the current vertex. It is only
// valid until the next call to Next.
func (v *Vertexlist) VertexInfo() graph.VertexInfo {
	return v.cur
}
