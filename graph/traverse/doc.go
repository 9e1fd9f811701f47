// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traverse implements the depth-first and breadth-first search
// views: lazy forward sequences that walk a graph from a seed vertex,
// yielding a descriptor each time they discover a new vertex (or, in
// the edge-variant form, the edge that discovered it).
//
// Both walkers are stateful structs holding a stack or queue of frames
// and a per-vertex visited marker, advanced by Next rather than driven
// by callbacks. The depth-first view additionally supports mid-walk
// cancellation of the current branch or of the whole walk.
package traverse
