// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simple

// VertexRecord is the projection a caller's proj function produces for
// one element of a loader's vertex sequence.
type VertexRecord struct {
	Id    int
	Value interface{}
}

// EdgeRecord is the projection a caller's proj function produces for
// one element of a loader's edge sequence.
type EdgeRecord struct {
	SourceId int
	TargetId int
	Value    interface{}
}

// LoadVertices assigns vertex values on g from seq, projecting each
// element through proj. g must already have more vertices than the
// highest id proj produces, which callers arrange by sizing g with
// NewDirectedGraph up front.
func LoadVertices[T any](g *DirectedGraph, seq []T, proj func(T) VertexRecord) {
	for _, elem := range seq {
		r := proj(elem)
		g.SetVertexValue(r.Id, r.Value)
	}
}

// LoadEdges appends to g one edge per element of seq, projecting each
// element through proj. seq must already be grouped by non-decreasing
// SourceId, a precondition LoadEdges relies on but does not check.
// LoadVertices and LoadEdges may be called in either order.
func LoadEdges[T any](g *DirectedGraph, seq []T, proj func(T) EdgeRecord) {
	for _, elem := range seq {
		r := proj(elem)
		g.AddEdge(r.SourceId, r.TargetId, r.Value)
	}
}
