// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import "github.com/stdgraph/graph-v2-sub000/graph"

// WeightFunc returns the weight of the edge e currently pointed to by
// an edge iterator, for combination with a path distance via a
// CombineFunc.
type WeightFunc func(e graph.EdgeInfo) float64

// UniformCost is a WeightFunc that assigns every edge a weight of 1,
// turning Dijkstra into a breadth-first shortest-path-by-hop-count
// search; TestDijkstraGermanyRoutesByHopCount uses it for hop counts on
// the germany-routes graph.
func UniformCost(graph.EdgeInfo) float64 { return 1 }

// CombineFunc combines a path distance with an edge weight to produce
// the distance of the extended path. The default, Add, is ordinary
// floating point addition.
type CombineFunc func(dist, weight float64) float64

// CompareFunc reports whether distance a should replace distance b as
// the best known distance to a vertex. The default, Less, is ordinary
// floating point less-than.
type CompareFunc func(a, b float64) bool

// Add is the default CombineFunc.
func Add(dist, weight float64) float64 { return dist + weight }

// Less is the default CompareFunc.
func Less(a, b float64) bool { return a < b }

func combineOrDefault(c CombineFunc) CombineFunc {
	if c == nil {
		return Add
	}
	return c
}

func compareOrDefault(c CompareFunc) CompareFunc {
	if c == nil {
		return Less
	}
	return c
}
