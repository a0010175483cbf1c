package vg

import (
	"math"

	"github.com/gogpu/vg/internal/flatten"
)

// Geometric queries on paths: signed area, winding number, containment,
// and tight bounds. These treat every contour as closed, matching the fill
// semantics.

// windingTolerance bounds the flattening error for winding and area
// queries on curved segments.
const windingTolerance = 0.1

// Area returns the signed area enclosed by the path, by Green's theorem.
// In y-down device space a clockwise contour has positive area. Open
// contours contribute as if closed.
func (p *Path) Area() float64 {
	var area float64
	var buf []flatten.Point
	var cur, start Point
	open := false

	for seg := range p.Segments() {
		switch seg.Verb {
		case VerbMove:
			if open && cur != start {
				area += lineArea(cur, start)
			}
			start = seg.Pts[1]
			cur = start
			open = true
		case VerbLine:
			area += lineArea(seg.Pts[0], seg.Pts[1])
			cur = seg.Pts[1]
		case VerbQuad:
			area += quadArea(seg.Pts[0], seg.Pts[1], seg.Pts[2])
			cur = seg.Pts[2]
		case VerbCubic:
			area += cubicArea(seg.Pts[0], seg.Pts[1], seg.Pts[2], seg.Pts[3])
			cur = seg.Pts[3]
		case VerbConic:
			// No compact closed form for the rational quadratic; flatten
			// finely and sum the shoelace terms.
			buf = flatten.Conic(buf[:0],
				flatten.Point(seg.Pts[0]), flatten.Point(seg.Pts[1]), flatten.Point(seg.Pts[2]),
				seg.Weight, 1e-3)
			prev := seg.Pts[0]
			for _, q := range buf {
				area += lineArea(prev, Point(q))
				prev = Point(q)
			}
			cur = seg.Pts[2]
		case VerbClose:
			area += lineArea(seg.Pts[0], seg.Pts[1])
			cur = start
			open = false
		}
	}
	if open && cur != start {
		area += lineArea(cur, start)
	}
	return area
}

// lineArea is the shoelace term of one segment: 0.5 * (x0*y1 - x1*y0).
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// quadArea integrates x dy over a quadratic Bezier.
func quadArea(p0, p1, p2 Point) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + 2*p1.X*(p2.Y-p0.Y) + p2.X*(-2*p1.Y-p0.Y)) / 6
}

// cubicArea integrates x dy over a cubic Bezier.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20
}

// Winding returns the winding number of pt relative to the path: the sum
// of signed crossings of a horizontal ray. Zero means outside under the
// non-zero rule. Open contours are treated as closed.
func (p *Path) Winding(pt Point) int {
	winding := 0
	var buf []flatten.Point

	var cur, start Point
	open := false
	for seg := range p.Segments() {
		switch seg.Verb {
		case VerbMove:
			if open {
				winding += lineWinding(cur, start, pt)
			}
			start = seg.Pts[1]
			cur = start
			open = true
		case VerbLine:
			winding += lineWinding(seg.Pts[0], seg.Pts[1], pt)
			cur = seg.Pts[1]
		case VerbQuad:
			buf = flatten.Quad(buf[:0],
				flatten.Point(seg.Pts[0]), flatten.Point(seg.Pts[1]), flatten.Point(seg.Pts[2]),
				windingTolerance)
			winding += polylineWinding(seg.Pts[0], buf, pt)
			cur = seg.Pts[2]
		case VerbConic:
			buf = flatten.Conic(buf[:0],
				flatten.Point(seg.Pts[0]), flatten.Point(seg.Pts[1]), flatten.Point(seg.Pts[2]),
				seg.Weight, windingTolerance)
			winding += polylineWinding(seg.Pts[0], buf, pt)
			cur = seg.Pts[2]
		case VerbCubic:
			buf = flatten.Cubic(buf[:0],
				flatten.Point(seg.Pts[0]), flatten.Point(seg.Pts[1]), flatten.Point(seg.Pts[2]), flatten.Point(seg.Pts[3]),
				windingTolerance)
			winding += polylineWinding(seg.Pts[0], buf, pt)
			cur = seg.Pts[3]
		case VerbClose:
			winding += lineWinding(seg.Pts[0], seg.Pts[1], pt)
			cur = start
			open = false
		}
	}
	if open {
		winding += lineWinding(cur, start, pt)
	}
	return winding
}

// Contains reports whether pt lies inside the path under its fill type.
func (p *Path) Contains(pt Point) bool {
	w := p.Winding(pt)
	if p.fillType == FillEvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// lineWinding is the signed horizontal-ray crossing of one segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft is positive when pt is left of the directed line p0->p1.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

func polylineWinding(start Point, pts []flatten.Point, pt Point) int {
	winding := 0
	prev := start
	for _, q := range pts {
		winding += lineWinding(prev, Point(q), pt)
		prev = Point(q)
	}
	return winding
}

// TightBounds returns the exact bounding box of the path's geometry,
// accounting for curve extrema. Unlike [Path.Bounds], control points that
// pull a curve without being reached do not inflate the result.
func (p *Path) TightBounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
	var buf []flatten.Point

	for seg := range p.Segments() {
		switch seg.Verb {
		case VerbMove:
			bbox = bbox.expand(seg.Pts[1])
		case VerbLine:
			bbox = bbox.expand(seg.Pts[1])
		case VerbQuad:
			bbox = bbox.expand(seg.Pts[2])
			for _, t := range quadExtrema(seg.Pts[0], seg.Pts[1], seg.Pts[2]) {
				bbox = bbox.expand(quadAt(seg.Pts[0], seg.Pts[1], seg.Pts[2], t))
			}
		case VerbCubic:
			bbox = bbox.expand(seg.Pts[3])
			for _, t := range cubicExtrema(seg.Pts[0], seg.Pts[1], seg.Pts[2], seg.Pts[3]) {
				bbox = bbox.expand(cubicAt(seg.Pts[0], seg.Pts[1], seg.Pts[2], seg.Pts[3], t))
			}
		case VerbConic:
			// Rational extrema are roots of a messy quadratic; a fine
			// flattening is accurate well past pixel precision.
			bbox = bbox.expand(seg.Pts[2])
			buf = flatten.Conic(buf[:0],
				flatten.Point(seg.Pts[0]), flatten.Point(seg.Pts[1]), flatten.Point(seg.Pts[2]),
				seg.Weight, 1e-4)
			for _, q := range buf {
				bbox = bbox.expand(Point(q))
			}
		}
	}

	if bbox.Min.X == math.MaxFloat64 {
		return Rect{}
	}
	return bbox
}

// quadExtrema returns the interior parameters where the quadratic's
// derivative vanishes on either axis.
func quadExtrema(p0, p1, p2 Point) []float64 {
	var ts []float64
	for _, axis := range [2][3]float64{
		{p0.X, p1.X, p2.X},
		{p0.Y, p1.Y, p2.Y},
	} {
		denom := axis[0] - 2*axis[1] + axis[2]
		if denom != 0 {
			t := (axis[0] - axis[1]) / denom
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// cubicExtrema returns the interior parameters where the cubic's
// derivative vanishes on either axis.
func cubicExtrema(p0, p1, p2, p3 Point) []float64 {
	var ts []float64
	for _, axis := range [2][4]float64{
		{p0.X, p1.X, p2.X, p3.X},
		{p0.Y, p1.Y, p2.Y, p3.Y},
	} {
		// Derivative coefficients: at^2 + bt + c.
		a := -axis[0] + 3*axis[1] - 3*axis[2] + axis[3]
		b := 2 * (axis[0] - 2*axis[1] + axis[2])
		c := axis[1] - axis[0]
		if a == 0 {
			if b != 0 {
				if t := -c / b; t > 0 && t < 1 {
					ts = append(ts, t)
				}
			}
			continue
		}
		disc := b*b - 4*a*c
		if disc < 0 {
			continue
		}
		sq := math.Sqrt(disc)
		for _, t := range [2]float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)} {
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
		Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
	}
}
