// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disjointset

import "testing"

func TestForestStartsAllSingletons(t *testing.T) {
	f := New(4)
	for i := 0; i < 4; i++ {
		if f.Find(i) != i {
			t.Errorf("Find(%d) = %d, want %d", i, f.Find(i), i)
		}
	}
}

func TestUnionFindMergesOnce(t *testing.T) {
	f := New(3)
	if !f.UnionFind(0, 1) {
		t.Fatal("UnionFind(0, 1) = false on first call, want true")
	}
	if f.Find(0) != f.Find(1) {
		t.Errorf("Find(0) = %d, Find(1) = %d, want equal after union", f.Find(0), f.Find(1))
	}
	if f.UnionFind(0, 1) {
		t.Error("UnionFind(0, 1) = true on second call, want false (already merged)")
	}
}

func TestUnionFindTransitiveChain(t *testing.T) {
	f := New(4)
	f.UnionFind(0, 1)
	f.UnionFind(1, 2)
	f.UnionFind(2, 3)

	root := f.Find(0)
	for i := 1; i < 4; i++ {
		if f.Find(i) != root {
			t.Errorf("Find(%d) = %d, want %d (all merged transitively)", i, f.Find(i), root)
		}
	}
}

func TestUnionNoOpWhenAlreadyMerged(t *testing.T) {
	f := New(2)
	f.Union(0, 1)
	rootBefore := f.Find(0)
	f.Union(0, 1)
	if f.Find(0) != rootBefore || f.Find(1) != rootBefore {
		t.Errorf("Union on an already-merged pair changed the root")
	}
}

func TestDisjointSetsStayDisjoint(t *testing.T) {
	f := New(4)
	f.UnionFind(0, 1)
	f.UnionFind(2, 3)
	if f.Find(0) == f.Find(2) {
		t.Errorf("Find(0) = Find(2) = %d, want distinct roots for unmerged sets", f.Find(0))
	}
}
