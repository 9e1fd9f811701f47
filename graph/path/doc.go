// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package path implements the shortest-path engines: Dijkstra (a
// visitor-driven variant, a distances-only variant sharing its body,
// and an event/iterator variant) and Bellman–Ford with negative-cycle
// extraction.
//
// Both engines relax into caller-owned distance and predecessor
// buffers initialised by graph.InitShortestPaths, and report progress
// through an optional nine-hook visitor protocol whose unimplemented
// hooks cost a failed type assertion and nothing more. Dijkstra's
// priority queue admits duplicate entries in place of a decrease-key
// operation, discarding stale pops by re-checking the distance array.
package path
