// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// VertexId identifies a vertex within a graph. Indexed adjacency lists
// use dense, zero-based VertexId values that double as slice offsets;
// keyed graphs may use any value with a strict weak order.
type VertexId = int

// VertexListGraph is the minimal contract required of a graph: a
// countable, iterable set of vertices. Every other capability in this
// package and its subpackages is additive on top of this one.
type VertexListGraph interface {
	// NumVertices returns the number of vertices in the graph. It must
	// equal the number of elements produced by Vertices.
	NumVertices() int

	// Vertices returns a fresh VertexIterator over the graph's
	// vertices, in the graph's native order, starting at id 0 for an
	// indexed adjacency list.
	Vertices() VertexIterator
}

// IncidenceGraph extends VertexListGraph with outgoing-edge lookup by
// vertex id. A graph satisfying IncidenceGraph is an "indexed adjacency
// list" in the terms of the graph contract: VertexId is usable directly
// as an array offset.
type IncidenceGraph interface {
	VertexListGraph

	// Edges returns a fresh EdgeIterator over the outgoing edges of
	// the vertex identified by uid.
	Edges(uid VertexId) EdgeIterator
}

// VertexIterator walks a graph's vertex sequence. Next must be called
// before the first call to Id, and again before every subsequent one.
type VertexIterator interface {
	// Next advances the iterator and reports whether a vertex is
	// available.
	Next() bool

	// Id returns the id of the current vertex.
	Id() VertexId
}

// EdgeIterator walks a vertex's outgoing-edge sequence. Next must be
// called before the first call to TargetId, and again before every
// subsequent accessor call.
type EdgeIterator interface {
	// Next advances the iterator and reports whether an edge is
	// available.
	Next() bool

	// TargetId returns the id of the current edge's target endpoint.
	TargetId() VertexId
}

// Sourced is implemented by an EdgeIterator whose edges carry their
// source endpoint, making the edge a "sourced edge" per the graph
// contract: both endpoints are derivable from the edge alone.
type Sourced interface {
	// SourceId returns the id of the current edge's source endpoint.
	SourceId() VertexId
}

// VertexValuer is implemented by a graph that projects a payload value
// for a given vertex id. Its absence is a property of the graph type,
// not a runtime condition: algorithms that need vertex values require
// this interface with a type assertion and treat its absence as "no
// such capability", never as a zero value.
type VertexValuer interface {
	// VertexValue returns the payload associated with uid.
	VertexValue(uid VertexId) interface{}
}

// EdgeValuer is implemented by an EdgeIterator that projects a payload
// value for its current edge.
type EdgeValuer interface {
	// EdgeValue returns the payload associated with the current edge.
	EdgeValue() interface{}
}

// GraphValuer is implemented by a graph that carries a single
// whole-graph payload.
type GraphValuer interface {
	// GraphValue returns the graph's payload.
	GraphValue() interface{}
}

// Degreer is implemented by a graph that can report a vertex's
// out-degree without counting its Edges iterator. Algorithms fall back
// to counting when a graph does not implement Degreer.
type Degreer interface {
	// Degree returns the number of outgoing edges of uid.
	Degree(uid VertexId) int
}

// Partitioner is implemented by a graph that assigns vertices to
// partitions. Algorithms that are partition-aware fall back to treating
// every vertex as partition zero when a graph does not implement
// Partitioner.
type Partitioner interface {
	// PartitionId returns the partition id of uid.
	PartitionId(uid VertexId) int
}

// UnorderedEdges is implemented by a graph whose edges are undirected:
// the (source, target) pair recorded on an edge may appear in either
// order, and views must pick the endpoint that is not the traversal's
// current vertex as the "other" endpoint.
//
// A graph reports this capability by implementing the interface and
// returning true; algorithms and views never infer it structurally.
type UnorderedEdges interface {
	// IsUnorderedEdge reports whether the graph's edges are
	// undirected.
	IsUnorderedEdge() bool
}

// Degree returns the out-degree of uid in g. If g implements Degreer,
// that method is used directly; otherwise the outgoing edges of uid are
// counted.
func Degree(g IncidenceGraph, uid VertexId) int {
	if d, ok := g.(Degreer); ok {
		return d.Degree(uid)
	}
	n := 0
	it := g.Edges(uid)
	for it.Next() {
		n++
	}
	return n
}

// PartitionId returns the partition id of uid in g, defaulting to zero
// when g does not implement Partitioner.
func PartitionId(g VertexListGraph, uid VertexId) int {
	if p, ok := g.(Partitioner); ok {
		return p.PartitionId(uid)
	}
	return 0
}

// IsUnorderedEdge reports whether g declares its edges undirected,
// defaulting to false when g does not implement UnorderedEdges.
func IsUnorderedEdge(g VertexListGraph) bool {
	if u, ok := g.(UnorderedEdges); ok {
		return u.IsUnorderedEdge()
	}
	return false
}

// IsSourced reports whether it yields sourced edges.
func IsSourced(it EdgeIterator) bool {
	_, ok := it.(Sourced)
	return ok
}

// NumVertices returns g.NumVertices(). It exists so algorithms that are
// handed a VertexListGraph through an interface variable read uniformly
// whether or not they also hold a more specific capability.
func NumVertices(g VertexListGraph) int {
	return g.NumVertices()
}

// FindVertex reports whether uid names a vertex of g. It is an O(1)
// bounds check against [0, NumVertices()) that relies on the dense ids
// of an indexed adjacency list; it never scans Vertices.
func FindVertex(g VertexListGraph, uid VertexId) bool {
	return uid >= 0 && uid < g.NumVertices()
}

// FindVertexEdge returns an EdgeIterator positioned at the first
// outgoing edge of uid whose target is vid; ok reports whether such an
// edge exists. On ok the iterator's accessors are valid immediately,
// and calling Next resumes the scan over uid's remaining edges, so
// multi-edges can be enumerated by repeating the target check.
func FindVertexEdge(g IncidenceGraph, uid, vid VertexId) (it EdgeIterator, ok bool) {
	it = g.Edges(uid)
	for it.Next() {
		if it.TargetId() == vid {
			return it, true
		}
	}
	return nil, false
}

// ContainsEdge reports whether g has an edge from uid to vid.
func ContainsEdge(g IncidenceGraph, uid, vid VertexId) bool {
	_, ok := FindVertexEdge(g, uid, vid)
	return ok
}
