// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package algorithm implements Kruskal's minimum spanning tree, a
// greedy maximal independent set, and a sorted-adjacency triangle
// count, each a short, mechanical consumer of the views and the
// disjoint-set forest defined elsewhere in this module.
//
// Output goes to a caller-provided sink function rather than an
// intermediate owned graph type, so callers choose their own
// representation for the result.
package algorithm
