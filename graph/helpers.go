// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "math"

// ShortestPathInvalidDistance is the sentinel distance assigned to every
// vertex before a shortest-path algorithm relaxes it, and left in place
// for vertices that remain unreachable.
const ShortestPathInvalidDistance = math.MaxFloat64

// ShortestPathZero is the neutral element of path-weight combination:
// the distance assigned to a source vertex.
const ShortestPathZero = 0.0

// InitShortestPaths fills dist with ShortestPathInvalidDistance and pred
// with the identity permutation (pred[i] = i), the precondition every
// shortest-path algorithm in the path subpackage requires of its
// caller-supplied buffers.
//
// Both slices must have length >= the vertex count of the graph the
// caller intends to run a shortest-path algorithm against; InitShortestPaths
// itself places no requirement on their lengths, and pred may be nil
// when only distances are needed.
func InitShortestPaths(dist []float64, pred []int) {
	for i := range dist {
		dist[i] = ShortestPathInvalidDistance
	}
	for i := range pred {
		pred[i] = i
	}
}
