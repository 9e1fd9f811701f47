// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import "github.com/stdgraph/graph-v2-sub000/graph"

// color is a per-vertex DFS marker: white (unvisited), grey (on the
// active frontier) or black (finished).
type color byte

const (
	white color = iota
	grey
	black
)

// CancelMode selects how DepthFirst.Cancel affects the remainder of the
// walk.
type CancelMode int

const (
	// CancelBranch skips the rest of the current vertex's subtree (its
	// not yet explored outgoing edges) — equivalent to an immediate pop —
	// but leaves the rest of the walk (including the parent frame's
	// other children) untouched.
	CancelBranch CancelMode = iota
	// CancelAll causes the view to report exhaustion on every
	// subsequent Next call.
	CancelAll
)

type frame struct {
	uid graph.VertexId
	it  graph.EdgeIterator
}

// DepthFirst is a lazy, forward sequence of graph.VertexInfo
// descriptors produced by an iterative depth-first walk from a seed
// vertex. Each successful Next corresponds to discovering (greying) one
// new vertex; VertexInfo names it.
type DepthFirst struct {
	g        graph.IncidenceGraph
	seed     graph.VertexId
	started  bool
	color    []color
	stack    []frame
	canceled bool
	cur      graph.VertexInfo
	srcId    graph.VertexId
}

// NewDepthFirst returns a DepthFirst view rooted at seed in g.
func NewDepthFirst(g graph.IncidenceGraph, seed graph.VertexId) *DepthFirst {
	d := &DepthFirst{
		g:     g,
		seed:  seed,
		color: make([]color, g.NumVertices()),
	}
	d.color[seed] = grey
	d.stack = append(d.stack, frame{uid: seed, it: g.Edges(seed)})
	return d
}

// Cancel affects the walk as described by mode; see CancelBranch and
// CancelAll. Cancellation is observable starting with the next call to
// Next.
func (d *DepthFirst) Cancel(mode CancelMode) {
	switch mode {
	case CancelBranch:
		if len(d.stack) > 0 {
			d.finishTop()
		}
	case CancelAll:
		d.canceled = true
	}
}

func (d *DepthFirst) finishTop() {
	top := d.stack[len(d.stack)-1]
	d.color[top.uid] = black
	d.stack = d.stack[:len(d.stack)-1]
}

// next advances the underlying state machine and reports whether it
// discovered a new vertex, recording both the new vertex's id and the
// id of the frame it was discovered from.
func (d *DepthFirst) next() bool {
	if d.canceled {
		return false
	}
	for len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]
		found := false
		for top.it.Next() {
			vid := top.it.TargetId()
			if vid == top.uid && graph.IsUnorderedEdge(d.g) {
				if s, ok := top.it.(graph.Sourced); ok {
					vid = s.SourceId()
				}
			}
			if d.color[vid] == white {
				d.color[vid] = grey
				d.srcId = top.uid
				d.stack = append(d.stack, frame{uid: vid, it: d.g.Edges(vid)})
				found = true
				break
			}
		}
		if found {
			return true
		}
		d.finishTop()
	}
	return false
}

// Next advances the view and reports whether a vertex was discovered.
// The first call yields the seed vertex itself; every subsequent call
// yields the next vertex discovered by the walk.
func (d *DepthFirst) Next() bool {
	if !d.started {
		d.started = true
		if d.canceled {
			return false
		}
		d.cur = graph.VertexInfo{Id: d.seed}
		return true
	}
	if !d.next() {
		return false
	}
	top := d.stack[len(d.stack)-1]
	d.cur = graph.VertexInfo{Id: top.uid}
	return true
}

// VertexInfo returns the descriptor for the vertex discovered by the
// most recent call to Next.
func (d *DepthFirst) VertexInfo() graph.VertexInfo {
	return d.cur
}

// DepthFirstEdges is the edge-variant of DepthFirst: each successful
// Next yields the edge that discovered the new vertex rather than the
// vertex alone.
type DepthFirstEdges struct {
	d   *DepthFirst
	cur graph.EdgeInfo
}

// NewDepthFirstEdges returns the edge-variant DepthFirst view rooted at
// seed in g.
func NewDepthFirstEdges(g graph.IncidenceGraph, seed graph.VertexId) *DepthFirstEdges {
	return &DepthFirstEdges{d: NewDepthFirst(g, seed)}
}

// Cancel affects the walk as described by mode; see CancelBranch and
// CancelAll.
func (d *DepthFirstEdges) Cancel(mode CancelMode) { d.d.Cancel(mode) }

// Next advances the view and reports whether an edge was discovered.
func (d *DepthFirstEdges) Next() bool {
	if !d.d.next() {
		return false
	}
	top := d.d.stack[len(d.d.stack)-1]
	d.cur = graph.EdgeInfo{SourceId: d.d.srcId, TargetId: top.uid}
	return true
}

// EdgeInfo returns the descriptor for the edge discovered by the most
// recent call to Next.
func (d *DepthFirstEdges) EdgeInfo() graph.EdgeInfo {
	return d.cur
}
