// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
	"sort"
	"testing"
)

func TestEdgeBuilderWinding(t *testing.T) {
	eb := NewEdgeBuilder(image.Rect(0, 0, 10, 10))

	eb.AddLine(Point{2, 1}, Point{3, 5}) // downward
	eb.AddLine(Point{7, 5}, Point{6, 1}) // upward

	edges := eb.Finish()
	if len(edges) != 2 {
		t.Fatalf("edge count = %d, want 2", len(edges))
	}
	down, up := edges[0], edges[1]
	if down.Winding != 1 {
		t.Errorf("downward edge winding = %d, want +1", down.Winding)
	}
	if up.Winding != -1 {
		t.Errorf("upward edge winding = %d, want -1", up.Winding)
	}
	// Both stored top-down regardless of traversal direction.
	if up.Top != 1 || up.Bot != 5 || up.X != 6 {
		t.Errorf("upward edge normalized as %+v, want Top=1 Bot=5 X=6", up)
	}
}

func TestEdgeBuilderSkipsHorizontal(t *testing.T) {
	eb := NewEdgeBuilder(image.Rect(0, 0, 10, 10))
	eb.AddLine(Point{1, 3}, Point{8, 3})
	if !eb.IsEmpty() {
		t.Error("horizontal segment produced an edge")
	}
}

func TestEdgeBuilderDropsNonFinite(t *testing.T) {
	eb := NewEdgeBuilder(image.Rect(0, 0, 10, 10))
	eb.AddLine(Point{math.NaN(), 0}, Point{5, 5})
	eb.AddLine(Point{0, 0}, Point{math.Inf(1), 5})
	eb.AddLine(Point{0, 0}, Point{5, 5})

	if got := eb.Dropped(); got != 2 {
		t.Errorf("Dropped = %d, want 2", got)
	}
	if len(eb.Finish()) != 1 {
		t.Errorf("edge count = %d, want only the finite segment", len(eb.Finish()))
	}
}

func TestEdgeBuilderClipsY(t *testing.T) {
	eb := NewEdgeBuilder(image.Rect(0, 4, 10, 8))

	eb.AddLine(Point{0, 0}, Point{10, 10}) // crosses the clip band
	eb.AddLine(Point{0, 0}, Point{5, 2})   // entirely above
	eb.AddLine(Point{0, 9}, Point{5, 12})  // entirely below

	edges := eb.Finish()
	if len(edges) != 1 {
		t.Fatalf("edge count = %d, want 1", len(edges))
	}
	e := edges[0]
	if e.Top != 4 || e.Bot != 8 {
		t.Errorf("clipped extent = [%g, %g], want [4, 8]", e.Top, e.Bot)
	}
	// X is advanced along the slope to the clipped top.
	if e.X != 4 {
		t.Errorf("clipped top x = %g, want 4", e.X)
	}
	if got := e.xAt(8); got != 8 {
		t.Errorf("xAt(8) = %g, want 8", got)
	}

	yMin, yMax := eb.YBounds()
	if yMin != 4 || yMax != 8 {
		t.Errorf("YBounds = [%d, %d], want [4, 8]", yMin, yMax)
	}
}

func TestEdgeBuilderFinishSorts(t *testing.T) {
	eb := NewEdgeBuilder(image.Rect(0, 0, 100, 100))
	eb.AddLine(Point{0, 50}, Point{1, 60})
	eb.AddLine(Point{0, 10}, Point{1, 20})
	eb.AddLine(Point{0, 30}, Point{1, 40})

	edges := eb.Finish()
	if !sort.SliceIsSorted(edges, func(i, j int) bool { return edges[i].Top < edges[j].Top }) {
		t.Errorf("edges not sorted by Top: %+v", edges)
	}

	// Finish is idempotent.
	again := eb.Finish()
	if &again[0] != &edges[0] || len(again) != len(edges) {
		t.Error("second Finish returned a different table")
	}
}

func TestEdgeBuilderPolyline(t *testing.T) {
	eb := NewEdgeBuilder(image.Rect(0, 0, 20, 20))
	// Closed triangle: three points plus the repeated start.
	eb.AddPolyline([]Point{{2, 2}, {10, 2}, {6, 9}, {2, 2}})
	// The top edge is horizontal and skipped.
	if got := len(eb.Finish()); got != 2 {
		t.Errorf("triangle edge count = %d, want 2", got)
	}
}
