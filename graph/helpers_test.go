// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/stdgraph/graph-v2-sub000/graph"
)

func TestInitShortestPaths(t *testing.T) {
	dist := make([]float64, 5)
	pred := make([]int, 5)
	// seed with non-sentinel values to ensure InitShortestPaths overwrites.
	for i := range dist {
		dist[i] = 42
		pred[i] = -7
	}

	graph.InitShortestPaths(dist, pred)

	for i, d := range dist {
		if d != graph.ShortestPathInvalidDistance {
			t.Errorf("dist[%d] = %v, want ShortestPathInvalidDistance", i, d)
		}
	}
	for i, p := range pred {
		if p != i {
			t.Errorf("pred[%d] = %d, want %d", i, p, i)
		}
	}
}
