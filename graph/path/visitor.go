// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/stdgraph/graph-v2-sub000/graph"

// Visitor is the marker type accepted by the shortest-path engines. A
// caller implements any non-empty subset of the optional interfaces
// below on a single concrete type and passes it as a Visitor; the
// engine discovers which hooks it implements with a type assertion and
// calls only those, the same way the graph package discovers optional
// graph capabilities (Sourced, Degreer, and so on) rather than forcing
// every implementation to provide every method.
//
// A nil Visitor is valid and equivalent to one that implements none of
// the hooks.
type Visitor interface{}

// InitializeVertexVisitor is called once per vertex before a
// shortest-path search begins relaxing any edges.
type InitializeVertexVisitor interface {
	OnInitializeVertex(uid graph.VertexId)
}

// DiscoverVertexVisitor is called the first time a vertex's distance
// is set to a finite value.
type DiscoverVertexVisitor interface {
	OnDiscoverVertex(uid graph.VertexId)
}

// ExamineVertexVisitor is called when a vertex is popped from the
// priority queue for relaxation of its outgoing edges.
type ExamineVertexVisitor interface {
	OnExamineVertex(uid graph.VertexId)
}

// FinishVertexVisitor is called after all of a vertex's outgoing edges
// have been examined.
type FinishVertexVisitor interface {
	OnFinishVertex(uid graph.VertexId)
}

// ExamineEdgeVisitor is called for every edge considered for
// relaxation, whether or not it relaxes.
type ExamineEdgeVisitor interface {
	OnExamineEdge(e graph.EdgeInfo)
}

// EdgeRelaxedVisitor is called when an edge improves its target's
// distance.
type EdgeRelaxedVisitor interface {
	OnEdgeRelaxed(e graph.EdgeInfo)
}

// EdgeNotRelaxedVisitor is called when an edge does not improve its
// target's distance.
type EdgeNotRelaxedVisitor interface {
	OnEdgeNotRelaxed(e graph.EdgeInfo)
}

// EdgeMinimizedVisitor is called by Bellman–Ford's verification pass
// for every edge confirmed not to relax further.
type EdgeMinimizedVisitor interface {
	OnEdgeMinimized(e graph.EdgeInfo)
}

// EdgeNotMinimizedVisitor is called by Bellman–Ford's verification pass
// for the edge that proves a negative cycle exists.
type EdgeNotMinimizedVisitor interface {
	OnEdgeNotMinimized(e graph.EdgeInfo)
}

func visitInitializeVertex(v Visitor, uid graph.VertexId) {
	if h, ok := v.(InitializeVertexVisitor); ok {
		h.OnInitializeVertex(uid)
	}
}

func visitDiscoverVertex(v Visitor, uid graph.VertexId) {
	if h, ok := v.(DiscoverVertexVisitor); ok {
		h.OnDiscoverVertex(uid)
	}
}

func visitExamineVertex(v Visitor, uid graph.VertexId) {
	if h, ok := v.(ExamineVertexVisitor); ok {
		h.OnExamineVertex(uid)
	}
}

func visitFinishVertex(v Visitor, uid graph.VertexId) {
	if h, ok := v.(FinishVertexVisitor); ok {
		h.OnFinishVertex(uid)
	}
}

func visitExamineEdge(v Visitor, e graph.EdgeInfo) {
	if h, ok := v.(ExamineEdgeVisitor); ok {
		h.OnExamineEdge(e)
	}
}

func visitEdgeRelaxed(v Visitor, e graph.EdgeInfo) {
	if h, ok := v.(EdgeRelaxedVisitor); ok {
		h.OnEdgeRelaxed(e)
	}
}

func visitEdgeNotRelaxed(v Visitor, e graph.EdgeInfo) {
	if h, ok := v.(EdgeNotRelaxedVisitor); ok {
		h.OnEdgeNotRelaxed(e)
	}
}

func visitEdgeMinimized(v Visitor, e graph.EdgeInfo) {
	if h, ok := v.(EdgeMinimizedVisitor); ok {
		h.OnEdgeMinimized(e)
	}
}

func visitEdgeNotMinimized(v Visitor, e graph.EdgeInfo) {
	if h, ok := v.(EdgeNotMinimizedVisitor); ok {
		h.OnEdgeNotMinimized(e)
	}
}
