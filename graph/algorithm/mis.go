// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algorithm

import (
	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/views"
)

// MaximalIndependentSet builds a greedy maximal (not maximum)
// independent set seeded at seed: seed is added to the set and its
// neighbours are excluded; then every remaining vertex is visited in id
// order, added to the set if not yet excluded, excluding its neighbours
// in turn. The set is emitted to sink in the order ids were added.
func MaximalIndependentSet(g graph.IncidenceGraph, seed graph.VertexId, sink func(id graph.VertexId)) {
	n := g.NumVertices()
	excluded := make([]bool, n)

	exclude := func(u graph.VertexId) {
		inc := views.NewIncidence(g, u)
		for inc.Next() {
			excluded[inc.EdgeInfo().TargetId] = true
		}
	}

	sink(seed)
	excluded[seed] = true
	exclude(seed)

	vit := g.Vertices()
	for vit.Next() {
		u := vit.Id()
		if excluded[u] {
			continue
		}
		sink(u)
		excluded[u] = true
		exclude(u)
	}
}
