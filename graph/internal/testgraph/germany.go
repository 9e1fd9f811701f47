// Copyright ©2022 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testgraph builds the ten-city "Germany routes" fixture shared
// by this module's path, topo and algorithm test suites.
package testgraph

import "github.com/stdgraph/graph-v2-sub000/graph/simple"

// GermanyRoute is one arc of the Germany routes fixture: a
// (source, target, weight) triple with distances in kilometres.
type GermanyRoute struct {
	From, To int
	Weight   float64
}

// GermanyRoutes are the eleven arcs of the fixture, over the city ids
// 0..9.
var GermanyRoutes = []GermanyRoute{
	{0, 1, 85},
	{0, 4, 217},
	{0, 6, 173},
	{1, 2, 80},
	{2, 3, 250},
	{3, 8, 84},
	{4, 5, 103},
	{4, 7, 186},
	{5, 8, 167},
	{5, 9, 183},
	{6, 8, 502},
}

// NumGermanyCities is the number of distinct vertices in GermanyRoutes.
const NumGermanyCities = 10

// Germany returns a fresh simple.DirectedGraph built from GermanyRoutes,
// with each edge's Value carrying its float64 weight.
func Germany() *simple.DirectedGraph {
	g := simple.NewDirectedGraph(NumGermanyCities)
	for _, r := range GermanyRoutes {
		g.AddEdge(r.From, r.To, r.Weight)
	}
	return g
}

// GermanyUndirectedClosure returns a simple.DirectedGraph with both
// directions of every GermanyRoutes arc, the form
// topo.ConnectedComponents expects for weak connectivity.
func GermanyUndirectedClosure() *simple.DirectedGraph {
	g := simple.NewDirectedGraph(NumGermanyCities)
	for _, r := range GermanyRoutes {
		g.AddEdge(r.From, r.To, r.Weight)
		g.AddEdge(r.To, r.From, r.Weight)
	}
	return g
}
