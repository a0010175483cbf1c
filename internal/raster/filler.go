// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
	"sort"
)

// FillRule selects how accumulated winding becomes coverage.
type FillRule uint8

const (
	// FillRuleNonZero fills where the summed signed crossings are non-zero.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills where the summed crossings are odd.
	FillRuleEvenOdd
)

// SpanFunc receives one horizontal run of pixels with uniform coverage.
// x is absolute device space; coverage is in [0, 1].
type SpanFunc func(y, x, n int, coverage float64)

// Filler sweeps an edge table scanline by scanline and computes per-pixel
// coverage.
//
// Anti-aliased coverage is analytic: for each edge crossing a pixel row the
// trapezoid enclosed between the edge and the pixel's right boundary is
// integrated exactly, and winding accumulates left to right so pixels right
// of the edge receive its full contribution. No supersampling is involved,
// so boundary pixels get exact fractional coverage, and two edges with
// identical geometry and opposite windings cancel exactly — abutting shapes
// composite seam-free.
//
// A Filler holds per-scanline buffers and is not safe for concurrent use;
// create one per goroutine (see FillBands in the parent package).
type Filler struct {
	clip     image.Rectangle
	winding  []float64
	coverage []float64

	active    []Edge
	crossings []crossing
}

type crossing struct {
	x       float64
	winding int8
}

// NewFiller creates a filler for the given device clip.
func NewFiller(clip image.Rectangle) *Filler {
	w := clip.Dx()
	if w < 0 {
		w = 0
	}
	return &Filler{
		clip:     clip,
		winding:  make([]float64, w),
		coverage: make([]float64, w),
	}
}

// Fill sweeps the scanlines [y0, y1) over a finished edge table sorted by
// top y. The table is read-only; multiple Fillers may sweep disjoint ranges
// of the same table concurrently.
func (f *Filler) Fill(edges []Edge, rule FillRule, antialias bool, y0, y1 int, fn SpanFunc) {
	if y0 < f.clip.Min.Y {
		y0 = f.clip.Min.Y
	}
	if y1 > f.clip.Max.Y {
		y1 = f.clip.Max.Y
	}
	if y0 >= y1 || f.clip.Dx() <= 0 || len(edges) == 0 {
		return
	}

	f.active = f.active[:0]
	idx := 0
	for y := y0; y < y1; y++ {
		rowTop := float64(y)
		rowBot := rowTop + 1

		// Retire edges that ended above this row.
		keep := f.active[:0]
		for _, e := range f.active {
			if e.Bot > rowTop {
				keep = append(keep, e)
			}
		}
		f.active = keep

		// Admit edges starting before the row's bottom. The table is sorted
		// by Top, so a single forward pointer suffices.
		for idx < len(edges) && edges[idx].Top < rowBot {
			if edges[idx].Bot > rowTop {
				f.active = append(f.active, edges[idx])
			}
			idx++
		}
		if len(f.active) == 0 {
			continue
		}

		if antialias {
			f.scanAA(rowTop, rowBot, rule, y, fn)
		} else {
			f.scanCenter(rowTop, rule, y, fn)
		}
	}
}

// scanAA computes analytic coverage for one pixel row.
func (f *Filler) scanAA(rowTop, rowBot float64, rule FillRule, y int, fn SpanFunc) {
	for i := range f.winding {
		f.winding[i] = 0
	}
	for i := range f.active {
		f.accumulate(&f.active[i], rowTop, rowBot)
	}
	f.applyFillRule(rule)
	f.emitRuns(y, fn)
}

// accumulate integrates one edge's contribution to the winding buffer over
// the pixel row [rowTop, rowBot).
func (f *Filler) accumulate(e *Edge, rowTop, rowBot float64) {
	yTop := math.Max(rowTop, e.Top)
	yBot := math.Min(rowBot, e.Bot)
	dy := yBot - yTop
	if dy <= 0 {
		return
	}
	sign := float64(e.Winding)
	width := len(f.winding)
	clipX := float64(f.clip.Min.X)

	// Work in clip-relative x so buffer index i is the pixel [i, i+1).
	xTop := e.xAt(yTop) - clipX
	xBot := e.xAt(yBot) - clipX

	lineDX := xBot - xTop
	if lineDX == 0 {
		// Vertical within this row: the covered fraction of the crossed
		// pixel is exact, pixels to the right get the full winding.
		f.accumulateVertical(xTop, dy, sign)
		return
	}
	ySlope := dy / lineDX
	xSlope := 1 / ySlope

	minX, maxX := xTop, xBot
	if minX > maxX {
		minX, maxX = maxX, minX
	}

	// Entirely right of the clip: contributes to no visible pixel.
	if minX >= float64(width) {
		return
	}
	// Entirely left of the clip: every visible pixel is to the edge's right
	// and receives the full winding for this row.
	if maxX < 0 {
		for i := 0; i < width; i++ {
			f.winding[i] += dy * sign
		}
		return
	}

	// Pre-accumulate the winding of the portion hanging past the left clip
	// boundary; visible pixels sit to its right.
	acc := f.offscreenLeft(xTop, xBot, yTop, yBot, ySlope, sign)

	xStart := int(minX)
	if xStart < 0 {
		xStart = 0
	}
	xEnd := int(maxX) + 2 // +2 covers the partial pixel at the boundary
	if xEnd > width {
		xEnd = width
	}

	for i := 0; i < xStart; i++ {
		f.winding[i] += acc
	}
	for i := xStart; i < xEnd; i++ {
		pxL := float64(i)
		pxR := pxL + 1

		// Y where the edge crosses the pixel's left and right boundaries,
		// clamped to the edge's extent within this row.
		yL := clampF(yTop+(pxL-xTop)*ySlope, yTop, yBot)
		yR := clampF(yTop+(pxR-xTop)*ySlope, yTop, yBot)

		// X at those clamped heights.
		xL := xTop + (yL-yTop)*xSlope
		xR := xTop + (yR-yTop)*xSlope

		h := yR - yL
		if h < 0 {
			h = -h
		}

		// Trapezoid between the edge and the pixel's right boundary.
		// Values outside [0, 1] are intentional; the fill rule clamps.
		area := 0.5 * h * (2*pxR - xR - xL)
		f.winding[i] += area*sign + acc
		acc += h * sign
	}
	for i := xEnd; i < width; i++ {
		f.winding[i] += acc
	}
}

// accumulateVertical handles an edge segment with constant x over the row.
func (f *Filler) accumulateVertical(x, dy, sign float64) {
	width := len(f.winding)
	if x >= float64(width) {
		return
	}
	if x < 0 {
		for i := 0; i < width; i++ {
			f.winding[i] += dy * sign
		}
		return
	}
	i := int(x)
	f.winding[i] += dy * (float64(i+1) - x) * sign
	for j := i + 1; j < width; j++ {
		f.winding[j] += dy * sign
	}
}

// offscreenLeft returns the winding contributed by the part of the edge at
// x < 0 (left of the clip), which all visible pixels sit to the right of.
func (f *Filler) offscreenLeft(xTop, xBot, yTop, yBot, ySlope, sign float64) float64 {
	if xTop >= 0 && xBot >= 0 {
		return 0
	}
	// Y where the edge crosses x = 0.
	y0 := clampF(yTop-xTop*ySlope, yTop, yBot)
	var h float64
	if xTop < 0 {
		h = y0 - yTop
	} else {
		h = yBot - y0
	}
	if h < 0 {
		h = -h
	}
	return h * sign
}

// applyFillRule converts accumulated winding values to coverage.
func (f *Filler) applyFillRule(rule FillRule) {
	switch rule {
	case FillRuleNonZero:
		for i, w := range f.winding {
			if w < 0 {
				w = -w
			}
			f.coverage[i] = clampF(w, 0, 1)
		}
	case FillRuleEvenOdd:
		// Triangle wave: winding 0..1 maps up, 1..2 maps back down.
		for i, w := range f.winding {
			w = math.Abs(w)
			w = math.Mod(w, 2)
			if w > 1 {
				w = 2 - w
			}
			f.coverage[i] = w
		}
	}
}

// coverageEpsilon is the threshold below which coverage is treated as
// empty; it sits under half of one 8-bit alpha step.
const coverageEpsilon = 1.0 / 1024

// emitRuns run-length-encodes the coverage buffer into spans. Runs are
// grouped on exact coverage equality: quantizing here would let two
// abutting shapes sum to slightly more or less than full coverage at
// their shared edge.
func (f *Filler) emitRuns(y int, fn SpanFunc) {
	width := len(f.coverage)
	runStart := 0
	runC := f.coverage[0]
	for i := 1; i < width; i++ {
		c := f.coverage[i]
		if c != runC {
			if runC > coverageEpsilon {
				fn(y, f.clip.Min.X+runStart, i-runStart, runC)
			}
			runStart = i
			runC = c
		}
	}
	if runC > coverageEpsilon {
		fn(y, f.clip.Min.X+runStart, width-runStart, runC)
	}
}

// scanCenter computes aliased spans by sampling winding at pixel centers.
func (f *Filler) scanCenter(rowTop float64, rule FillRule, y int, fn SpanFunc) {
	yc := rowTop + 0.5
	f.crossings = f.crossings[:0]
	for i := range f.active {
		e := &f.active[i]
		if e.Top <= yc && yc < e.Bot {
			f.crossings = append(f.crossings, crossing{x: e.xAt(yc), winding: e.Winding})
		}
	}
	if len(f.crossings) == 0 {
		return
	}
	sort.Slice(f.crossings, func(i, j int) bool {
		return f.crossings[i].x < f.crossings[j].x
	})

	winding := 0
	var spanL float64
	inside := false
	for _, c := range f.crossings {
		wasInside := inside
		winding += int(c.winding)
		if rule == FillRuleNonZero {
			inside = winding != 0
		} else {
			inside = winding%2 != 0
		}
		if !wasInside && inside {
			spanL = c.x
		} else if wasInside && !inside {
			f.emitCenterSpan(y, spanL, c.x, fn)
		}
	}
}

// emitCenterSpan emits the pixels whose centers fall in [xL, xR).
func (f *Filler) emitCenterSpan(y int, xL, xR float64, fn SpanFunc) {
	start := int(math.Ceil(xL - 0.5))
	end := int(math.Ceil(xR - 0.5))
	if start < f.clip.Min.X {
		start = f.clip.Min.X
	}
	if end > f.clip.Max.X {
		end = f.clip.Max.X
	}
	if start < end {
		fn(y, start, end-start, 1)
	}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
