package vg

import "math"

// Elliptical arcs are represented as conic segments: a conic with weight
// cos(θ/2) traces an exact arc of half-angle θ. A single conic cannot span
// more than 90 degrees with a bounded weight, so larger sweeps are split
// into quadrant-or-less pieces.

// nearFullSweepDeg is the clamp applied to sweeps of 360 degrees or more.
// Keeping the endpoints a hair apart leaves the end tangents well defined
// and avoids a coincident-point closing segment.
const nearFullSweepDeg = 360 - 1.0/64

// conicSeg is one arc piece: a rational quadratic with endpoints on the
// ellipse and the control point at the chord's tangent intersection.
type conicSeg struct {
	p0, p1, p2 Point
	weight     float64
}

// arcToConics converts an elliptical arc into conic segments.
//
// The arc lies on the ellipse inscribed in oval, runs from startDeg
// (0° = +x axis) through sweepDeg (positive = clockwise on screen, y-down).
// A zero sweep yields no segments. Sweeps of 360° or more are clamped to
// just under a full turn.
//
// The returned start point is always valid for a non-zero sweep, even when
// no segments are produced.
//
// This is a pure function of its inputs; it never touches shared state.
func arcToConics(oval Rect, startDeg, sweepDeg float64) (start Point, segs []conicSeg) {
	c := oval.Center()
	rx, ry := oval.Width()/2, oval.Height()/2

	if sweepDeg > nearFullSweepDeg {
		sweepDeg = nearFullSweepDeg
	} else if sweepDeg < -nearFullSweepDeg {
		sweepDeg = -nearFullSweepDeg
	}

	// Point on the ellipse at the given angle, computed from the center and
	// radii directly. Deriving it from differences of absolute positions
	// would cancel catastrophically for huge radii and tiny sweeps.
	at := func(rad float64) Point {
		return Point{
			X: c.X + rx*math.Cos(rad),
			Y: c.Y + ry*math.Sin(rad),
		}
	}

	startRad := startDeg * math.Pi / 180
	start = at(startRad)
	if sweepDeg == 0 {
		return start, nil
	}

	n := int(math.Ceil(math.Abs(sweepDeg) / 90))
	stepRad := (sweepDeg * math.Pi / 180) / float64(n)
	halfStep := stepRad / 2
	weight := math.Cos(math.Abs(halfStep))

	segs = make([]conicSeg, 0, n)
	a0 := startRad
	p0 := start
	for i := 0; i < n; i++ {
		a1 := startRad + float64(i+1)*stepRad
		mid := (a0 + a1) / 2
		// The control point sits where the endpoint tangents meet: on the
		// mid-angle ray, pushed out by 1/cos(θ/2) per axis.
		ctrl := Point{
			X: c.X + rx/weight*math.Cos(mid),
			Y: c.Y + ry/weight*math.Sin(mid),
		}
		p2 := at(a1)
		segs = append(segs, conicSeg{p0: p0, p1: ctrl, p2: p2, weight: weight})
		a0 = a1
		p0 = p2
	}
	return start, segs
}

// AddArc appends an arc of the ellipse inscribed in oval, swept from
// startDeg (0° = +x axis) through sweepDeg (positive = clockwise on
// screen), as a new contour.
//
// A zero sweep appends nothing. Sweeps of 360° or more are clamped to just
// under a full turn, so the first and last points stay distinct.
func (b *PathBuilder) AddArc(oval Rect, startDeg, sweepDeg float64) *PathBuilder {
	if sweepDeg == 0 {
		return b
	}
	return b.arc(oval, startDeg, sweepDeg, true)
}

// ArcTo appends the same arc as [PathBuilder.AddArc], but if forceMoveTo is
// false and a contour is already open, the arc is reached by a line from the
// current point instead of starting a new contour.
func (b *PathBuilder) ArcTo(oval Rect, startDeg, sweepDeg float64, forceMoveTo bool) *PathBuilder {
	if sweepDeg == 0 {
		return b
	}
	return b.arc(oval, startDeg, sweepDeg, forceMoveTo)
}

func (b *PathBuilder) arc(oval Rect, startDeg, sweepDeg float64, forceMoveTo bool) *PathBuilder {
	start, segs := arcToConics(oval, startDeg, sweepDeg)

	if forceMoveTo || !b.started || b.needMove {
		b.MoveTo(start.X, start.Y)
	} else if b.lastPoint != start {
		b.LineTo(start.X, start.Y)
	}
	for _, s := range segs {
		b.ConicTo(s.p1.X, s.p1.Y, s.p2.X, s.p2.Y, s.weight)
	}
	return b
}
