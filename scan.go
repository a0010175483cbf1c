package vg

import (
	"image"
	"runtime"
	"sync"

	"github.com/gogpu/vg/internal/flatten"
	"github.com/gogpu/vg/internal/raster"
)

// Span is one horizontal run of pixels with uniform coverage, emitted in
// device coordinates. Coverage is in [0, 1]; aliased fills emit only 1.
type Span struct {
	Y, X, Len int
	Coverage  float64
}

// SpanFunc consumes the spans produced by a fill, in increasing y and,
// within a scanline, increasing x.
type SpanFunc func(Span)

// ScanConverter rasterizes filled paths into coverage spans.
//
// Coverage is computed analytically per pixel, not by supersampling: each
// boundary pixel receives the exact area fraction the path covers, so two
// paths sharing an edge with opposite windings composite without a seam.
// Open contours are implicitly closed before filling.
//
// A ScanConverter is safe for concurrent use by multiple goroutines; all
// per-fill state lives on the stack of each Fill call.
type ScanConverter struct {
	clip      image.Rectangle
	antialias bool
	tolerance float64
	workers   int
}

// FillOption configures a ScanConverter.
type FillOption func(*ScanConverter)

// WithoutAntialias selects hard-edged fills: each pixel is in or out by
// its center sample, and all spans carry coverage 1.
func WithoutAntialias() FillOption {
	return func(sc *ScanConverter) { sc.antialias = false }
}

// WithTolerance sets the curve flattening tolerance in pixels.
// Non-positive values keep the default.
func WithTolerance(t float64) FillOption {
	return func(sc *ScanConverter) {
		if t > 0 {
			sc.tolerance = t
		}
	}
}

// WithFillWorkers sets the number of goroutines a Fill may fan out to.
// 1 disables parallelism; 0 or negative selects GOMAXPROCS.
func WithFillWorkers(n int) FillOption {
	return func(sc *ScanConverter) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		sc.workers = n
	}
}

// NewScanConverter creates a scan converter clipped to the given device
// rectangle. Spans never extend outside the clip.
func NewScanConverter(clip image.Rectangle, opts ...FillOption) *ScanConverter {
	sc := &ScanConverter{
		clip:      clip,
		antialias: true,
		tolerance: flatten.DefaultTolerance,
		workers:   1,
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Clip returns the device clip rectangle.
func (sc *ScanConverter) Clip() image.Rectangle {
	return sc.clip
}

// Fill rasterizes the path's interior, under its fill type, and streams
// coverage spans to fn. Spans arrive in increasing y, left to right within
// a scanline, regardless of how many workers run.
func (sc *ScanConverter) Fill(path *Path, fn SpanFunc) {
	if path.IsEmpty() || sc.clip.Empty() {
		return
	}

	eb := raster.NewEdgeBuilder(sc.clip)
	for pts, closed := range path.contours(sc.tolerance) {
		if len(pts) < 2 {
			continue
		}
		for i := 1; i < len(pts); i++ {
			eb.AddLine(raster.Point(pts[i-1]), raster.Point(pts[i]))
		}
		// Filling treats every contour as closed.
		if !closed && pts[len(pts)-1] != pts[0] {
			eb.AddLine(raster.Point(pts[len(pts)-1]), raster.Point(pts[0]))
		}
	}
	if n := eb.Dropped(); n > 0 {
		Logger().Debug("scan: dropped non-finite segments", "count", n)
	}
	if eb.IsEmpty() {
		return
	}

	edges := eb.Finish()
	y0, y1 := eb.YBounds()
	rule := raster.FillRuleNonZero
	if path.FillType() == FillEvenOdd {
		rule = raster.FillRuleEvenOdd
	}

	emit := func(y, x, n int, coverage float64) {
		fn(Span{Y: y, X: x, Len: n, Coverage: coverage})
	}

	height := y1 - y0
	workers := sc.workers
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		raster.NewFiller(sc.clip).Fill(edges, rule, sc.antialias, y0, y1, emit)
		return
	}
	sc.fillBands(edges, rule, y0, y1, workers, fn)
}

// fillBands partitions the scanline range into horizontal bands, fills
// them concurrently over the shared read-only edge table, and replays the
// buffered spans in band order so the caller still observes y-sorted
// output.
func (sc *ScanConverter) fillBands(edges []raster.Edge, rule raster.FillRule, y0, y1, workers int, fn SpanFunc) {
	bands := make([][]Span, workers)
	bandH := (y1 - y0 + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		by0 := y0 + w*bandH
		by1 := by0 + bandH
		if by1 > y1 {
			by1 = y1
		}
		if by0 >= by1 {
			continue
		}
		wg.Add(1)
		go func(w, by0, by1 int) {
			defer wg.Done()
			var buf []Span
			f := raster.NewFiller(sc.clip)
			f.Fill(edges, rule, sc.antialias, by0, by1, func(y, x, n int, coverage float64) {
				buf = append(buf, Span{Y: y, X: x, Len: n, Coverage: coverage})
			})
			bands[w] = buf
		}(w, by0, by1)
	}
	wg.Wait()

	for _, band := range bands {
		for _, s := range band {
			fn(s)
		}
	}
}
