// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simple provides minimal, dense-id graph containers satisfying
// this module's graph contract (package graph), for use by loaders and
// by this module's own tests. It is not a general-purpose container
// library; production-grade containers (CSR, compressed formats) live
// outside this module.
//
// Both containers use slice-of-slice adjacency keyed by the dense,
// zero-based graph.VertexId an indexed adjacency list requires, since
// every algorithm in this module's other packages assumes VertexId
// doubles as an array offset. DirectedGraph additionally implements the
// loader-facing builder surface (LoadVertices / LoadEdges, edges
// grouped by non-decreasing source id).
package simple
