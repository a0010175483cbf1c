package vg

import (
	"sort"

	"github.com/gogpu/vg/internal/flatten"
)

// PathMeasure computes arc lengths and positions along a path.
//
// A measure walks one contour at a time: Length, PosTan, and Segment
// operate on the current contour, and [PathMeasure.NextContour] advances
// forward. The walk is forward-only; create a new measure to start over.
//
// The path is flattened once at construction, so a PathMeasure is cheap to
// query repeatedly. It holds no reference to shared mutable state, but its
// own cursor makes it single-goroutine.
type PathMeasure struct {
	contours []contourMeasure
	current  int
}

// contourMeasure is the flattened form of one contour: the polyline and a
// parallel cumulative-length table for binary search.
type contourMeasure struct {
	pts    []flatten.Point
	cum    []float64 // cum[i] is the length up to pts[i]; cum[0] = 0
	length float64
	closed bool
}

// NewPathMeasure creates a measure over the path's contours.
//
// When forceClosed is true every contour is measured as if closed, with a
// final segment back to its start point. resScale tightens the flattening
// tolerance the same way it does for [StrokePath]; non-positive values fall
// back to 1.
func NewPathMeasure(path *Path, forceClosed bool, resScale float64) *PathMeasure {
	if !(resScale > 0) {
		resScale = 1
	}
	tolerance := flatten.DefaultTolerance / resScale

	m := &PathMeasure{}
	for pts, closed := range path.contours(tolerance) {
		cm := contourMeasure{closed: closed || forceClosed}
		cm.pts = append(cm.pts, pts...)
		if forceClosed && !closed && len(cm.pts) > 1 && cm.pts[0] != cm.pts[len(cm.pts)-1] {
			cm.pts = append(cm.pts, cm.pts[0])
		}
		cm.cum = make([]float64, len(cm.pts))
		for i := 1; i < len(cm.pts); i++ {
			cm.cum[i] = cm.cum[i-1] + cm.pts[i-1].Distance(cm.pts[i])
		}
		if n := len(cm.cum); n > 0 {
			cm.length = cm.cum[n-1]
		}
		m.contours = append(m.contours, cm)
	}
	return m
}

// Length returns the arc length of the current contour, or 0 when the
// measure is exhausted.
func (m *PathMeasure) Length() float64 {
	if m.current >= len(m.contours) {
		return 0
	}
	return m.contours[m.current].length
}

// NumContours returns the total number of contours in the measured path.
func (m *PathMeasure) NumContours() int {
	return len(m.contours)
}

// ContourLength returns the arc length of contour i, independent of the
// cursor. Out-of-range indices return 0.
func (m *PathMeasure) ContourLength(i int) float64 {
	if i < 0 || i >= len(m.contours) {
		return 0
	}
	return m.contours[i].length
}

// IsClosed reports whether the current contour is closed (explicitly, or
// by the forceClosed option).
func (m *PathMeasure) IsClosed() bool {
	if m.current >= len(m.contours) {
		return false
	}
	return m.contours[m.current].closed
}

// NextContour advances to the next contour and reports whether one exists.
// The walk is forward-only.
func (m *PathMeasure) NextContour() bool {
	if m.current >= len(m.contours) {
		return false
	}
	m.current++
	return m.current < len(m.contours)
}

// PosTan returns the position and unit tangent at the given arc-length
// distance along the current contour. It returns ok=false when the measure
// is exhausted, the current contour has zero length, or the distance is
// outside [0, Length] (NaN included).
func (m *PathMeasure) PosTan(distance float64) (pos Point, tan Vec2, ok bool) {
	if m.current >= len(m.contours) {
		return Point{}, Vec2{}, false
	}
	c := &m.contours[m.current]
	if c.length <= 0 || len(c.pts) < 2 {
		return Point{}, Vec2{}, false
	}
	if !(distance >= 0) || distance > c.length {
		return Point{}, Vec2{}, false
	}

	// First point whose cumulative length reaches the distance; its
	// predecessor starts the containing segment.
	i := sort.SearchFloat64s(c.cum, distance)
	if i == 0 {
		i = 1
	}
	// Skip over zero-length segments so the tangent is well defined.
	for i < len(c.pts)-1 && c.cum[i] == c.cum[i-1] {
		i++
	}

	p0, p1 := c.pts[i-1], c.pts[i]
	segLen := c.cum[i] - c.cum[i-1]
	t := 0.0
	if segLen > 0 {
		t = (distance - c.cum[i-1]) / segLen
	}
	at := p0.Lerp(p1, t)
	dir := Vec2{X: p1.X - p0.X, Y: p1.Y - p0.Y}.Normalize()
	return Point{X: at.X, Y: at.Y}, dir, true
}

// Segment appends the portion of the current contour between the two
// arc-length distances to the builder, optionally starting it with a
// MoveTo. Distances are clamped and swapped into order; an empty range
// appends nothing. It reports whether anything was appended.
func (m *PathMeasure) Segment(b *PathBuilder, startD, stopD float64, startWithMove bool) bool {
	if m.current >= len(m.contours) {
		return false
	}
	c := &m.contours[m.current]
	if c.length <= 0 {
		return false
	}
	if startD > stopD {
		startD, stopD = stopD, startD
	}
	startD = clamp(startD, 0, c.length)
	stopD = clamp(stopD, 0, c.length)
	if startD == stopD {
		return false
	}

	p, _, _ := m.PosTan(startD)
	if startWithMove {
		b.MoveTo(p.X, p.Y)
	} else {
		b.LineTo(p.X, p.Y)
	}
	// Interior polyline points strictly inside the range.
	for i := 1; i < len(c.pts)-1; i++ {
		if c.cum[i] > startD && c.cum[i] < stopD {
			b.LineTo(c.pts[i].X, c.pts[i].Y)
		}
	}
	q, _, _ := m.PosTan(stopD)
	b.LineTo(q.X, q.Y)
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
