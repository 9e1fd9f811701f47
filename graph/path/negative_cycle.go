// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/stdgraph/graph-v2-sub000/graph"

// FindNegativeCycle walks pred backward from witness — a vertex
// BellmanFord reported as still relaxable after its final pass — until
// it revisits a vertex, and returns the cycle found in traversal order
// starting at the repeated vertex.
//
// Because witness may be several hops downstream of the cycle itself,
// FindNegativeCycle first walks back n steps (n = len(pred)) to
// guarantee landing strictly inside the cycle before it starts
// recording, where n bounds the longest possible simple path. If no
// repeat is found within a further n steps the predecessor chain does
// not close, which the caller's BellmanFord invariants should make
// unreachable; FindNegativeCycle reports that case as an
// InternalInvariant error rather than looping forever.
func FindNegativeCycle(pred []int, witness int) (cycle []int, err error) {
	const op = "path.FindNegativeCycle"
	n := len(pred)

	v := witness
	for i := 0; i < n; i++ {
		v = pred[v]
	}

	onCycle := make(map[int]int, n)
	for {
		if idx, seen := onCycle[v]; seen {
			return append([]int(nil), cycle[idx:]...), nil
		}
		onCycle[v] = len(cycle)
		cycle = append(cycle, v)
		v = pred[v]
		if len(cycle) > n {
			return nil, graph.NewError(op, graph.InternalInvariant,
				"predecessor chain from witness did not close into a cycle")
		}
	}
}
