// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import "github.com/stdgraph/graph-v2-sub000/graph"

type bfsFrame struct {
	uid graph.VertexId
	it  graph.EdgeIterator
}

// BreadthFirst is a lazy, forward sequence of graph.VertexInfo
// descriptors produced by a breadth-first walk from a seed vertex. The
// first call to Next yields the seed itself; every subsequent call
// yields the next vertex discovered, in non-decreasing distance order
// from the seed.
//
// Shaped identically to DepthFirst (see depth_first.go) but draining a
// FIFO queue of frames instead of popping a LIFO stack.
type BreadthFirst struct {
	g       graph.IncidenceGraph
	seed    graph.VertexId
	started bool
	visited []bool
	queue   []bfsFrame
	head    int
	cur     graph.VertexInfo
	srcId   graph.VertexId
}

// NewBreadthFirst returns a BreadthFirst view rooted at seed in g.
func NewBreadthFirst(g graph.IncidenceGraph, seed graph.VertexId) *BreadthFirst {
	b := &BreadthFirst{
		g:       g,
		seed:    seed,
		visited: make([]bool, g.NumVertices()),
	}
	b.visited[seed] = true
	b.queue = append(b.queue, bfsFrame{uid: seed, it: g.Edges(seed)})
	return b
}

// next advances the underlying state machine and reports whether it
// discovered a new vertex.
func (b *BreadthFirst) next() bool {
	for b.head < len(b.queue) {
		front := &b.queue[b.head]
		for front.it.Next() {
			vid := front.it.TargetId()
			if vid == front.uid && graph.IsUnorderedEdge(b.g) {
				if s, ok := front.it.(graph.Sourced); ok {
					vid = s.SourceId()
				}
			}
			if b.visited[vid] {
				continue
			}
			b.visited[vid] = true
			b.srcId = front.uid
			b.queue = append(b.queue, bfsFrame{uid: vid, it: b.g.Edges(vid)})
			return true
		}
		b.head++
	}
	return false
}

// Next advances the view and reports whether a vertex was discovered.
func (b *BreadthFirst) Next() bool {
	if !b.started {
		b.started = true
		b.cur = graph.VertexInfo{Id: b.seed}
		return true
	}
	if !b.next() {
		return false
	}
	b.cur = graph.VertexInfo{Id: b.queue[len(b.queue)-1].uid}
	return true
}

// VertexInfo returns the descriptor for the vertex discovered by the
// most recent call to Next.
func (b *BreadthFirst) VertexInfo() graph.VertexInfo {
	return b.cur
}

// BreadthFirstEdges is the edge-variant of BreadthFirst: each successful
// Next yields the edge that discovered the new vertex rather than the
// vertex alone.
type BreadthFirstEdges struct {
	b   *BreadthFirst
	cur graph.EdgeInfo
}

// NewBreadthFirstEdges returns the edge-variant BreadthFirst view rooted
// at seed in g.
func NewBreadthFirstEdges(g graph.IncidenceGraph, seed graph.VertexId) *BreadthFirstEdges {
	return &BreadthFirstEdges{b: NewBreadthFirst(g, seed)}
}

// Next advances the view and reports whether an edge was discovered.
func (b *BreadthFirstEdges) Next() bool {
	if !b.b.started {
		b.b.started = true
		return b.b.next() && b.setCur()
	}
	if !b.b.next() {
		return false
	}
	return b.setCur()
}

func (b *BreadthFirstEdges) setCur() bool {
	top := b.b.queue[len(b.b.queue)-1]
	b.cur = graph.EdgeInfo{SourceId: b.b.srcId, TargetId: top.uid}
	return true
}

// EdgeInfo returns the descriptor for the edge discovered by the most
// recent call to Next.
func (b *BreadthFirstEdges) EdgeInfo() graph.EdgeInfo {
	return b.cur
}
