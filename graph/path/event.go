// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

//go:generate stringer -type=EventKind -linecomment

// EventKind discriminates the events produced by DijkstraEvents.
type EventKind int

const (
	InitializeVertex EventKind = iota // initialize_vertex
	DiscoverVertex                    // discover_vertex
	ExamineVertex                     // examine_vertex
	ExamineEdge                       // examine_edge
	EdgeRelaxed                       // edge_relaxed
	EdgeNotRelaxed                    // edge_not_relaxed
	FinishVertex                      // finish_vertex
)

// EventMask selects which DijkstraEvents events are produced. Disabled
// events are never constructed or dispatched; they are filtered at the
// point of production, not discarded after the fact.
type EventMask uint

const (
	EventInitializeVertex EventMask = 1 << iota
	EventDiscoverVertex
	EventExamineVertex
	EventExamineEdge
	EventEdgeRelaxed
	EventEdgeNotRelaxed
	EventFinishVertex

	EventAll = EventInitializeVertex | EventDiscoverVertex | EventExamineVertex |
		EventExamineEdge | EventEdgeRelaxed | EventEdgeNotRelaxed | EventFinishVertex
)

func (m EventMask) has(k EventKind) bool {
	switch k {
	case InitializeVertex:
		return m&EventInitializeVertex != 0
	case DiscoverVertex:
		return m&EventDiscoverVertex != 0
	case ExamineVertex:
		return m&EventExamineVertex != 0
	case ExamineEdge:
		return m&EventExamineEdge != 0
	case EdgeRelaxed:
		return m&EventEdgeRelaxed != 0
	case EdgeNotRelaxed:
		return m&EventEdgeNotRelaxed != 0
	case FinishVertex:
		return m&EventFinishVertex != 0
	}
	return false
}
