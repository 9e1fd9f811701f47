// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// VertexInfo is the descriptor yielded by the vertexlist view for each
// vertex it visits. Value is nil unless a projection function was
// supplied to the view that produced this descriptor.
//
// VertexInfo is ephemeral: a view reuses and overwrites the same
// VertexInfo across advances, so callers that need to retain one must
// copy it.
type VertexInfo struct {
	Id    VertexId
	Value interface{}
}

// EdgeInfo is the descriptor yielded by the incidence and edgelist
// views, and by the edge variants of the traversal views, for each edge
// they visit. All of these populate SourceId; for the incidence view it
// is the vertex whose edges are being walked. Value is nil unless a
// projection function was supplied to the view.
type EdgeInfo struct {
	SourceId VertexId
	TargetId VertexId
	Value    interface{}
}
