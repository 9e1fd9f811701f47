// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package network implements PageRank, an iterative vertex-scoring
// algorithm over the incidence contract: a per-vertex score vector is
// updated in full passes until the L1 change across a pass falls below
// the caller's tolerance or the iteration cap is reached.
package network
