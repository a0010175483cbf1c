// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts edge lists into per-pixel coverage using analytic
// scanline integration.
package raster

import (
	"image"
	"math"
	"sort"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Edge is a y-monotonic line segment with a signed winding direction.
// Top < Bot always holds; Winding records the original traversal direction
// (+1 downward, -1 upward) for the fill rule.
type Edge struct {
	Top, Bot float64 // y extent, Top < Bot
	X        float64 // x at Top
	DXDY     float64 // slope dx/dy
	Winding  int8
}

// xAt returns the edge's x coordinate at the given y.
func (e *Edge) xAt(y float64) float64 {
	return e.X + e.DXDY*(y-e.Top)
}

// EdgeBuilder accumulates clipped, y-monotonic edges from flattened path
// contours. Building the edge table is a pure function of the immutable
// input path, so a finished table may be shared read-only across scanline
// bands (see FillBands).
type EdgeBuilder struct {
	edges    []Edge
	clipTop  float64
	clipBot  float64
	yMin     float64
	yMax     float64
	dropped  int // segments discarded for non-finite coordinates
	finished bool
}

// NewEdgeBuilder creates an edge builder clipped to the given device rows.
func NewEdgeBuilder(clip image.Rectangle) *EdgeBuilder {
	return &EdgeBuilder{
		clipTop: float64(clip.Min.Y),
		clipBot: float64(clip.Max.Y),
		yMin:    math.Inf(1),
		yMax:    math.Inf(-1),
	}
}

// AddLine appends the edge for one line segment. Horizontal segments carry
// no winding information and are skipped; segments with non-finite
// coordinates are dropped rather than poisoning the table.
func (eb *EdgeBuilder) AddLine(p0, p1 Point) {
	if !isFinite(p0.X) || !isFinite(p0.Y) || !isFinite(p1.X) || !isFinite(p1.Y) {
		eb.dropped++
		return
	}
	if p0.Y == p1.Y {
		return
	}

	winding := int8(1)
	if p0.Y > p1.Y {
		winding = -1
		p0, p1 = p1, p0
	}

	top, bot := p0.Y, p1.Y
	if bot <= eb.clipTop || top >= eb.clipBot {
		return
	}
	dxdy := (p1.X - p0.X) / (bot - top)
	x := p0.X
	if top < eb.clipTop {
		x += dxdy * (eb.clipTop - top)
		top = eb.clipTop
	}
	if bot > eb.clipBot {
		bot = eb.clipBot
	}

	eb.edges = append(eb.edges, Edge{Top: top, Bot: bot, X: x, DXDY: dxdy, Winding: winding})
	eb.yMin = math.Min(eb.yMin, top)
	eb.yMax = math.Max(eb.yMax, bot)
}

// AddPolyline appends edges for consecutive point pairs of a single closed
// contour. The caller is responsible for appending the closing point.
func (eb *EdgeBuilder) AddPolyline(pts []Point) {
	for i := 1; i < len(pts); i++ {
		eb.AddLine(pts[i-1], pts[i])
	}
}

// IsEmpty reports whether no edges survived clipping.
func (eb *EdgeBuilder) IsEmpty() bool {
	return len(eb.edges) == 0
}

// Dropped returns the number of segments discarded for non-finite input.
func (eb *EdgeBuilder) Dropped() int {
	return eb.dropped
}

// YBounds returns the vertical extent of the accumulated edges as whole
// scanline indices, already clamped to the clip.
func (eb *EdgeBuilder) YBounds() (yMin, yMax int) {
	if eb.IsEmpty() {
		return 0, 0
	}
	return int(math.Floor(eb.yMin)), int(math.Ceil(eb.yMax))
}

// Finish sorts the table by top y and returns it. The returned slice is
// owned by the builder and must be treated as read-only.
func (eb *EdgeBuilder) Finish() []Edge {
	if !eb.finished {
		sort.Slice(eb.edges, func(i, j int) bool {
			return eb.edges[i].Top < eb.edges[j].Top
		})
		eb.finished = true
	}
	return eb.edges
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
