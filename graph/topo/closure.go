// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/views"
)

// bitrow is one row of an N-bit reachability matrix, packed into
// 64-bit words.
type bitrow []uint64

func newBitrow(n int) bitrow {
	return make(bitrow, (n+63)/64)
}

func (r bitrow) set(v int)      { r[v/64] |= 1 << uint(v%64) }
func (r bitrow) get(v int) bool { return r[v/64]&(1<<uint(v%64)) != 0 }

// orInto sets r |= other and reports whether any bit changed.
func (r bitrow) orInto(other bitrow) bool {
	changed := false
	for i, w := range other {
		if w&^r[i] != 0 {
			changed = true
		}
		r[i] |= w
	}
	return changed
}

// TransitiveClosure computes R* = {(u, v) : v is reachable from u} over
// g using Warshall's algorithm on a dense N×N bit matrix, and reports
// every pair via emit. emit is called once per (u, v) with M[u][v] set,
// in increasing u then increasing v order.
//
// The time complexity is O(N³) (each row OR handles 64 columns per
// word) and the space complexity O(N²), both independent of edge
// count; this is the appropriate regime for Warshall's algorithm and
// the reason it is offered alongside the sparse incidence-based
// algorithms rather than in place of them.
func TransitiveClosure(g graph.IncidenceGraph, emit func(u, v graph.VertexId)) {
	n := g.NumVertices()
	m := make([]bitrow, n)
	for i := range m {
		m[i] = newBitrow(n)
	}

	el := views.NewEdgelist(g)
	for el.Next() {
		e := el.EdgeInfo()
		m[e.SourceId].set(e.TargetId)
	}

	for k := 0; k < n; k++ {
		for u := 0; u < n; u++ {
			if !m[u].get(k) {
				continue
			}
			m[u].orInto(m[k])
		}
	}

	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if m[u].get(v) {
				emit(u, v)
			}
		}
	}
}
