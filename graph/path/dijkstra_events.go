// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"container/heap"

	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/views"
)

// DijkstraEvent is one element of the lazy sequence produced by
// DijkstraEvents: a discriminated union of which vertex- or edge-kind
// event fired, carrying whichever of VertexId/Edge is relevant to Kind.
type DijkstraEvent struct {
	Kind     EventKind
	VertexId graph.VertexId
	Edge     graph.EdgeInfo
}

// DijkstraEvents is the coroutine/event variant of Dijkstra: it runs the
// same state machine as Dijkstra but, instead of invoking visitor
// callbacks, produces a pull-based sequence of events the caller filters
// by a bitmask given at construction. Disabled events are never
// constructed: the mask is checked at the point of production.
//
// DijkstraEvents resumes the underlying state machine one incidence-view
// step at a time by keeping the heap and the current vertex's
// views.Incidence iterator alive as struct fields; this package never
// starts a goroutine or otherwise introduces concurrency to get
// resumability.
//
// Call Err after Next returns false to discover whether iteration
// stopped because of an error (SourceOutOfRange, NegativeWeight or
// InternalInvariant) or
// because the sequence was exhausted, mirroring the bufio.Scanner idiom.
type DijkstraEvents struct {
	g       graph.IncidenceGraph
	dist    []float64
	weight  WeightFunc
	combine CombineFunc
	compare CompareFunc
	mask    EventMask

	n       int
	initIdx int
	srcIdx  int
	sources []graph.VertexId
	q       priorityQueue

	u   graph.VertexId
	inc *views.Incidence

	// pending holds an edge whose ExamineEdge event has been surfaced
	// but whose relaxation has not yet run; queued holds a second event
	// produced by a single relaxation (a tree edge fires EdgeRelaxed
	// then DiscoverVertex).
	pending    graph.EdgeInfo
	hasPending bool
	queued     DijkstraEvent
	hasQueued  bool

	cur  DijkstraEvent
	err  error
	done bool
}

// NewDijkstraEvents returns a DijkstraEvents sequence over g from
// sources, producing only the events selected by mask. dist must already
// be initialised by graph.InitShortestPaths.
func NewDijkstraEvents(g graph.IncidenceGraph, sources []graph.VertexId, dist []float64, weight WeightFunc, combine CombineFunc, compare CompareFunc, mask EventMask) *DijkstraEvents {
	d := &DijkstraEvents{
		g:       g,
		dist:    dist,
		weight:  weight,
		combine: combineOrDefault(combine),
		compare: compareOrDefault(compare),
		mask:    mask,
		n:       g.NumVertices(),
		sources: sources,
	}
	d.q.compare = d.compare
	for _, s := range sources {
		if !graph.FindVertex(g, s) {
			d.err = graph.NewError("path.DijkstraEvents", graph.SourceOutOfRange, "")
			d.done = true
			break
		}
	}
	return d
}

// Err returns the error that stopped iteration, or nil if the sequence
// was simply exhausted.
func (d *DijkstraEvents) Err() error { return d.err }

// Event returns the descriptor for the most recent call to Next.
func (d *DijkstraEvents) Event() DijkstraEvent { return d.cur }

// Next advances the sequence and reports whether an enabled event is
// available. It returns false once the sequence is exhausted or an
// error has occurred; check Err to distinguish the two.
func (d *DijkstraEvents) Next() bool {
	if d.done {
		return false
	}
	for {
		if d.hasQueued {
			d.hasQueued = false
			d.cur = d.queued
			return true
		}

		if d.hasPending {
			e := d.pending
			d.hasPending = false
			if d.relax(e) {
				return true
			}
			if d.done {
				return false
			}
			continue
		}

		if d.initIdx < d.n {
			uid := d.initIdx
			d.initIdx++
			if d.mask.has(InitializeVertex) {
				d.cur = DijkstraEvent{Kind: InitializeVertex, VertexId: uid}
				return true
			}
			continue
		}

		if d.srcIdx < len(d.sources) {
			s := d.sources[d.srcIdx]
			d.srcIdx++
			d.dist[s] = graph.ShortestPathZero
			heap.Push(&d.q, distanceVertex{uid: s, dist: d.dist[s]})
			if d.mask.has(DiscoverVertex) {
				d.cur = DijkstraEvent{Kind: DiscoverVertex, VertexId: s}
				return true
			}
			continue
		}

		if d.inc == nil {
			if d.q.Len() == 0 {
				d.done = true
				return false
			}
			top := heap.Pop(&d.q).(distanceVertex)
			if d.compare(d.dist[top.uid], top.dist) {
				continue // stale entry; a better one was already popped.
			}
			d.u = top.uid
			d.inc = views.NewIncidenceFunc(d.g, d.u, views.EdgeValueFunc)
			if d.mask.has(ExamineVertex) {
				d.cur = DijkstraEvent{Kind: ExamineVertex, VertexId: d.u}
				return true
			}
			continue
		}

		if d.inc.Next() {
			e := d.inc.EdgeInfo()
			if d.mask.has(ExamineEdge) {
				d.pending = e
				d.hasPending = true
				d.cur = DijkstraEvent{Kind: ExamineEdge, Edge: e}
				return true
			}
			if d.relax(e) {
				return true
			}
			if d.done {
				return false
			}
			continue
		}

		finished := d.u
		d.inc = nil
		if d.mask.has(FinishVertex) {
			d.cur = DijkstraEvent{Kind: FinishVertex, VertexId: finished}
			return true
		}
	}
}

// relax performs the relaxation step for edge e, producing an
// EdgeRelaxed/EdgeNotRelaxed event into d.cur and reporting whether one
// was produced. A tree edge (one whose target was previously
// undiscovered) fires EdgeRelaxed then DiscoverVertex; when the mask
// selects both, the DiscoverVertex event is queued and surfaced by the
// following advance. relax sets d.err and stops iteration on a negative
// weight or on a relaxation invariant violation.
func (d *DijkstraEvents) relax(e graph.EdgeInfo) bool {
	w := d.weight(e)
	if w < 0 {
		d.err = graph.NewError("path.DijkstraEvents", graph.NegativeWeight, "")
		d.done = true
		return false
	}
	v := e.TargetId
	wasUndiscovered := d.dist[v] == graph.ShortestPathInvalidDistance
	nd := d.combine(d.dist[d.u], w)
	if d.compare(nd, d.dist[v]) {
		d.dist[v] = nd
		heap.Push(&d.q, distanceVertex{uid: v, dist: nd})
		if wasUndiscovered && d.mask.has(DiscoverVertex) {
			discover := DijkstraEvent{Kind: DiscoverVertex, VertexId: v}
			if d.mask.has(EdgeRelaxed) {
				d.queued = discover
				d.hasQueued = true
				d.cur = DijkstraEvent{Kind: EdgeRelaxed, Edge: e}
				return true
			}
			d.cur = discover
			return true
		}
		if d.mask.has(EdgeRelaxed) {
			d.cur = DijkstraEvent{Kind: EdgeRelaxed, Edge: e}
			return true
		}
		return false
	}
	if wasUndiscovered {
		d.err = graph.NewError("path.DijkstraEvents", graph.InternalInvariant,
			"edge to an undiscovered vertex did not relax")
		d.done = true
		return false
	}
	if d.mask.has(EdgeNotRelaxed) {
		d.cur = DijkstraEvent{Kind: EdgeNotRelaxed, Edge: e}
		return true
	}
	return false
}
