// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph defines the contract a type must satisfy to be treated
// as an adjacency list by the algorithms and views in this module's
// subpackages, along with the descriptor types those views yield and
// the single error type the algorithms return.
//
// The contract is intentionally minimal: a graph need only answer
// Vertices, NumVertices and Edges to be usable by the vertexlist,
// incidence and edgelist views in the views subpackage. Optional
// capabilities — a sourced edge, vertex/edge/graph values, an
// unordered-edge policy, an explicit degree or partition function — are
// expressed as additional interfaces that algorithms discover with a
// type assertion, not as a monolithic interface every graph must
// implement in full.
package graph
