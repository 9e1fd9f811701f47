// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topo implements connectivity algorithms over the incidence
// contract: undirected connected components, Kosaraju strongly
// connected components, and Warshall transitive closure.
//
// The component-labelling algorithms write dense component ids into a
// caller-owned buffer and return the component count rather than
// building per-component vertex slices, keeping allocation in the
// caller's hands.
package topo
