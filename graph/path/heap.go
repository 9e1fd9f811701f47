// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/stdgraph/graph-v2-sub000/graph"

// distanceVertex pairs a vertex id with the distance it was enqueued
// with, so stale entries (superseded by a later, smaller distance) can
// be recognised and skipped on pop by comparing against the caller's
// distance array. seq records push order; the queue assigns it.
type distanceVertex struct {
	uid  graph.VertexId
	dist float64
	seq  int
}

// priorityQueue is a no-decrease-key binary heap of distanceVertex: the
// same vertex may appear more than once, with push-a-duplicate standing
// in for decrease-key (reinsert, then check the popped distance against
// the caller's current best). Entries are ordered by the caller's
// CompareFunc on distance; candidates the compare function cannot
// distinguish pop in insertion order.
type priorityQueue struct {
	items   []distanceVertex
	next    int
	compare CompareFunc
}

func (q *priorityQueue) Len() int { return len(q.items) }

func (q *priorityQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if q.compare(a.dist, b.dist) {
		return true
	}
	if q.compare(b.dist, a.dist) {
		return false
	}
	return a.seq < b.seq
}

func (q *priorityQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *priorityQueue) Push(x interface{}) {
	v := x.(distanceVertex)
	v.seq = q.next
	q.next++
	q.items = append(q.items, v)
}

func (q *priorityQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	v := old[n-1]
	q.items = old[:n-1]
	return v
}
