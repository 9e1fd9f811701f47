// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import "github.com/stdgraph/graph-v2-sub000/graph"

// KosarajuSCC labels every vertex of g with a strongly connected
// component id into the caller-owned component buffer and returns the
// number of components found.
//
// KosarajuSCC runs the classic two-pass algorithm: first an iterative
// DFS over g accumulates vertices onto a stack in reverse-postorder
// (each vertex is pushed once its incidence list is exhausted); then the
// stack is drained from the top, and for every not-yet-labelled vertex
// popped, an iterative DFS over gT (the transpose of g, supplied
// separately since this contract has no implicit reverse view) labels
// every vertex it reaches with the current component id.
//
// gT must have the same vertex set as g with every edge reversed.
func KosarajuSCC(g, gT graph.IncidenceGraph, component []int) (int, error) {
	const op = "topo.KosarajuSCC"
	n := g.NumVertices()
	if len(component) < n || gT.NumVertices() != n {
		return 0, graph.NewError(op, graph.BufferTooSmall, "")
	}
	for i := range component[:n] {
		component[i] = -1
	}

	order := make([]graph.VertexId, 0, n)
	visited := make([]bool, n)

	type frame struct {
		uid graph.VertexId
		it  graph.EdgeIterator
	}
	var active []frame

	vit := g.Vertices()
	for vit.Next() {
		root := vit.Id()
		if visited[root] {
			continue
		}
		visited[root] = true
		active = append(active, frame{uid: root, it: g.Edges(root)})
		for len(active) > 0 {
			top := &active[len(active)-1]
			advanced := false
			for top.it.Next() {
				w := top.it.TargetId()
				if !visited[w] {
					visited[w] = true
					active = append(active, frame{uid: w, it: g.Edges(w)})
					advanced = true
					break
				}
			}
			if advanced {
				continue
			}
			order = append(order, top.uid)
			active = active[:len(active)-1]
		}
	}

	next := 0
	for i := len(order) - 1; i >= 0; i-- {
		seed := order[i]
		if component[seed] != -1 {
			continue
		}
		id := next
		next++
		component[seed] = id
		active = active[:0]
		active = append(active, frame{uid: seed, it: gT.Edges(seed)})
		for len(active) > 0 {
			top := &active[len(active)-1]
			advanced := false
			for top.it.Next() {
				w := top.it.TargetId()
				if component[w] == -1 {
					component[w] = id
					active = append(active, frame{uid: w, it: gT.Edges(w)})
					advanced = true
					break
				}
			}
			if advanced {
				continue
			}
			active = active[:len(active)-1]
		}
	}

	return next, nil
}
