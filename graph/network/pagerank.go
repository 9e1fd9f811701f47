// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package network

import (
	"math"

	"github.com/stdgraph/graph-v2-sub000/graph"
	"github.com/stdgraph/graph-v2-sub000/graph/views"
)

// PageRank computes the PageRank score of every vertex of g into the
// caller-owned rank buffer, iterating at most maxIters times or until
// the L1 change across a full update falls below tol, whichever comes
// first. It returns the number of iterations actually performed.
//
// g is interpreted with its edges already carrying in-link direction:
// edges(g, u) must enumerate the vertices that link to u, not the
// vertices u links to, since the update rule at each vertex u sums
// contributions arriving over u's incidence list. Callers holding an
// out-link graph should pass its transpose.
//
// rank must have length at least g.NumVertices() and is overwritten;
// its initial contents are ignored.
func PageRank(g graph.IncidenceGraph, rank []float64, damping, tol float64, maxIters int) (int, error) {
	const op = "network.PageRank"
	n := g.NumVertices()
	if len(rank) < n {
		return 0, graph.NewError(op, graph.BufferTooSmall, "")
	}
	if n == 0 {
		return 0, nil
	}

	degree := make([]int, n)
	vit := g.Vertices()
	for vit.Next() {
		degree[vit.Id()] = graph.Degree(g, vit.Id())
	}

	base := (1 - damping) / float64(n)
	for i := range rank[:n] {
		rank[i] = 1 / float64(n)
	}

	contrib := make([]float64, n)
	next := make([]float64, n)

	performed := 0
	for performed < maxIters {
		performed++
		for i := 0; i < n; i++ {
			if degree[i] > 0 {
				contrib[i] = rank[i] / float64(degree[i])
			} else {
				contrib[i] = 0
			}
		}
		for i := range next {
			next[i] = base
		}

		vit := g.Vertices()
		for vit.Next() {
			u := vit.Id()
			inc := views.NewIncidence(g, u)
			for inc.Next() {
				v := inc.EdgeInfo().TargetId
				next[u] += damping * contrib[v]
			}
		}

		var change float64
		for i := 0; i < n; i++ {
			change += math.Abs(next[i] - rank[i])
		}
		copy(rank, next)
		if change < tol {
			break
		}
	}
	return performed, nil
}
