// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package views implements the lazy, forward, non-owning adaptor
// sequences that project a conforming graph into uniform descriptor
// tuples: Vertexlist, Incidence, Neighbors and Edgelist.
//
// Every view follows the same pull shape: Next advances and reports
// availability, and an accessor returns the current descriptor
// (graph.VertexInfo or graph.EdgeInfo), valid until the next advance.
// Construction is O(1); advancing is amortised O(1); none of these
// views takes ownership of the graph it reads from.
package views
