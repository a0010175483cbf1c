// Package stroke converts stroked paths into filled outlines.
//
// The expansion follows the kurbo/tiny-skia structure: the outer offset
// path runs forward, the inner offset path is accumulated separately and
// appended in reverse, caps close the ends and joins bridge the segments.
// Round joins and caps are emitted as rational quadratics (conics) with
// weight cos(θ/2), so circular features stay exact rather than
// cubic-approximated.
package stroke

import (
	"math"

	"github.com/gogpu/vg/internal/flatten"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Vec2 returns the point as a vector from the origin.
func (p Point) Vec2() Vec2 {
	return Vec2(p)
}

// Add returns the point displaced by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of the 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared returns the squared length of the vector.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the angle of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// LineCap specifies the shape of open contour endpoints.
type LineCap int

const (
	// LineCapButt cuts the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound extends the stroke with a semicircle.
	LineCapRound
	// LineCapSquare extends the stroke with a half-width square.
	LineCapSquare
)

// LineJoin specifies the shape bridging adjacent segments.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges to a sharp point, falling back
	// to bevel past the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound bridges with a circular arc.
	LineJoinRound
	// LineJoinBevel bridges with a single line.
	LineJoinBevel
)

// Style carries the stroke parameters that shape the expansion.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// PathElement is one step of an element-list path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new contour.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// ConicTo draws a rational quadratic with the given weight.
type ConicTo struct {
	Control, Point Point
	Weight         float64
}

func (ConicTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the contour.
type Close struct{}

func (Close) isPathElement() {}

// Expander converts a stroked element list into a filled outline.
// An Expander is single-use per call to Expand; it is not safe for
// concurrent use.
type Expander struct {
	style     Style
	tolerance float64

	forward  *elemBuilder
	backward *elemBuilder
	output   *elemBuilder

	startPt   Point
	startNorm Vec2
	startTan  Vec2
	lastPt    Point
	lastTan   Vec2
	lastNorm  Vec2

	// Joins with a turn below this threshold collapse to plain lineTos.
	joinThresh float64

	flat []flatten.Point // reusable flattening buffer
}

// NewExpander creates an expander for the given style and flattening
// tolerance. A non-positive tolerance falls back to the default.
func NewExpander(style Style, tolerance float64) *Expander {
	if !(tolerance > 0) {
		tolerance = flatten.DefaultTolerance
	}
	return &Expander{style: style, tolerance: tolerance}
}

// Expand returns the filled outline of the stroked input. Contours of the
// result wind so that a non-zero fill reproduces the stroke coverage.
func (e *Expander) Expand(elements []PathElement) []PathElement {
	e.reset()

	for _, el := range elements {
		switch elem := el.(type) {
		case MoveTo:
			e.finishOpen()
			e.startPt = elem.Point
			e.lastPt = elem.Point
		case LineTo:
			if elem.Point != e.lastPt {
				tangent := elem.Point.Sub(e.lastPt)
				e.doJoin(tangent)
				e.lastTan = tangent
				e.doLine(tangent, elem.Point)
			}
		case QuadTo:
			if elem.Control != e.lastPt || elem.Point != e.lastPt {
				e.flat = flatten.Quad(e.flat[:0], fp(e.lastPt), fp(elem.Control), fp(elem.Point), e.tolerance)
				e.doFlattened()
			}
		case ConicTo:
			if elem.Control != e.lastPt || elem.Point != e.lastPt {
				e.flat = flatten.Conic(e.flat[:0], fp(e.lastPt), fp(elem.Control), fp(elem.Point), elem.Weight, e.tolerance)
				e.doFlattened()
			}
		case CubicTo:
			if elem.Control1 != e.lastPt || elem.Control2 != e.lastPt || elem.Point != e.lastPt {
				e.flat = flatten.Cubic(e.flat[:0], fp(e.lastPt), fp(elem.Control1), fp(elem.Control2), fp(elem.Point), e.tolerance)
				e.doFlattened()
			}
		case Close:
			if e.lastPt != e.startPt {
				tangent := e.startPt.Sub(e.lastPt)
				e.doJoin(tangent)
				e.lastTan = tangent
				e.doLine(tangent, e.startPt)
			}
			e.finishClosed()
		}
	}

	e.finishOpen()
	return e.output.elements
}

func fp(p Point) flatten.Point { return flatten.Point(p) }

func (e *Expander) reset() {
	e.forward = newElemBuilder()
	e.backward = newElemBuilder()
	e.output = newElemBuilder()
	e.startPt = Point{}
	e.startNorm = Vec2{}
	e.startTan = Vec2{}
	e.lastPt = Point{}
	e.lastTan = Vec2{}
	e.lastNorm = Vec2{}
	e.joinThresh = 2 * e.tolerance / e.style.Width
}

// doFlattened walks the flattening buffer as a chain of line segments.
// The buffer excludes the start point.
func (e *Expander) doFlattened() {
	for _, q := range e.flat {
		p := Point(q)
		tangent := p.Sub(e.lastPt)
		if tangent.LengthSquared() > 1e-20 {
			e.doJoin(tangent)
			e.lastTan = tangent
			e.doLine(tangent, p)
		}
	}
}

// doJoin bridges the previous segment to one whose tangent is tan0.
func (e *Expander) doJoin(tan0 Vec2) {
	scale := 0.5 * e.style.Width / tan0.Length()
	norm := tan0.Perp().Scale(scale)
	p0 := e.lastPt

	if e.forward.isEmpty() {
		e.forward.moveTo(p0.Add(norm.Neg()))
		e.backward.moveTo(p0.Add(norm))
		e.startTan = tan0
		e.startNorm = norm
		return
	}

	ab := e.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// A near-straight continuation needs no join geometry, but both offset
	// paths still need connecting; skipping the lineTos leaves gaps where
	// consecutive tangents coincide.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
		return
	}

	switch e.style.Join {
	case LineJoinBevel:
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.backward.lineTo(p0.Add(norm))
	case LineJoinMiter:
		e.miterJoin(p0, norm, ab, cd, cross, dot, hypot)
	case LineJoinRound:
		e.roundJoinAt(p0, norm, cross, dot)
	}
}

// miterJoin extends the outer edges to their intersection when the miter
// ratio passes the limit, otherwise it degenerates to a bevel.
func (e *Expander) miterJoin(p0 Point, norm, ab, cd Vec2, cross, dot, hypot float64) {
	// Equivalent to 1/sin(θ/2) <= limit without computing the angle.
	miterLimitSq := e.style.MiterLimit * e.style.MiterLimit
	if 2*hypot < (hypot+dot)*miterLimitSq {
		lastScale := 0.5 * e.style.Width / ab.Length()
		lastNorm := ab.Perp().Scale(lastScale)

		if cross > 0 {
			fpLast := p0.Add(lastNorm.Neg())
			fpThis := p0.Add(norm.Neg())
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			miterPt := fpThis.Add(cd.Scale(-h))
			e.forward.lineTo(miterPt)
			e.backward.lineTo(p0)
		} else if cross < 0 {
			fpLast := p0.Add(lastNorm)
			fpThis := p0.Add(norm)
			h := ab.Cross(fpThis.Sub(fpLast)) / cross
			miterPt := fpThis.Add(cd.Scale(-h))
			e.backward.lineTo(miterPt)
			e.forward.lineTo(p0)
		}
	}
	e.forward.lineTo(p0.Add(norm.Neg()))
	e.backward.lineTo(p0.Add(norm))
}

// roundJoinAt arcs the outer offset path around the join point. The arc
// spans from the previous segment's normal to the new one, on whichever
// side the turn opens.
func (e *Expander) roundJoinAt(p0 Point, norm Vec2, cross, dot float64) {
	lastScale := 0.5 * e.style.Width / e.lastTan.Length()
	lastNorm := e.lastTan.Perp().Scale(lastScale)

	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward.lineTo(p0.Add(norm))
		e.conicArc(e.forward, p0, lastNorm.Neg(), angle)
	} else {
		e.forward.lineTo(p0.Add(norm.Neg()))
		e.conicArc(e.backward, p0, lastNorm, angle)
	}
}

// doLine extends both offset paths along a line segment.
func (e *Expander) doLine(tangent Vec2, p1 Point) {
	scale := 0.5 * e.style.Width / tangent.Length()
	norm := tangent.Perp().Scale(scale)

	e.forward.lineTo(p1.Add(norm.Neg()))
	e.backward.lineTo(p1.Add(norm))
	e.lastPt = p1
	e.lastNorm = norm
}

// finishOpen closes out an open contour with end caps.
func (e *Expander) finishOpen() {
	if e.forward.isEmpty() {
		return
	}

	e.output.append(e.forward)

	// End cap. lastNorm points toward the backward path; the cap sweeps
	// from the forward side, so it is negated.
	if len(e.backward.elements) > 0 {
		e.applyCap(e.lastPt, e.lastNorm.Neg(), false)
	}

	e.appendReversed(e.backward)
	e.applyCap(e.startPt, e.startNorm, true)

	e.forward = newElemBuilder()
	e.backward = newElemBuilder()
}

// finishClosed closes out a closed contour: the outer offset closes on
// itself, the inner offset becomes a separate reversed contour.
func (e *Expander) finishClosed() {
	if e.forward.isEmpty() {
		return
	}

	e.doJoin(e.startTan)

	e.output.append(e.forward)
	e.output.close()

	if last, ok := e.backward.endPoint(); ok {
		e.output.moveTo(last)
	}
	e.appendReversed(e.backward)
	e.output.close()

	e.forward = newElemBuilder()
	e.backward = newElemBuilder()
}

// applyCap draws one end cap into the output. closePath marks the start
// cap, which finishes the outline contour.
func (e *Expander) applyCap(center Point, norm Vec2, closePath bool) {
	switch e.style.Cap {
	case LineCapButt:
		if closePath {
			e.output.close()
		} else {
			e.output.lineTo(center.Add(norm.Neg()))
		}
	case LineCapRound:
		e.conicArc(e.output, center, norm, math.Pi)
		if closePath {
			e.output.close()
		}
	case LineCapSquare:
		e.squareCap(center, norm, closePath)
	}
}

// conicArc appends a circular arc of the given signed sweep around center,
// starting at center+norm, as conic segments of at most a quarter turn
// each. Weight cos(θ/2) makes each segment an exact circular arc.
func (e *Expander) conicArc(out *elemBuilder, center Point, norm Vec2, sweep float64) {
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	weight := math.Cos(math.Abs(step) / 2)
	radius := norm.Length()
	a0 := norm.Angle()

	for i := 0; i < n; i++ {
		a1 := a0 + step
		mid := a0 + step/2
		ctrl := Point{
			X: center.X + radius/weight*math.Cos(mid),
			Y: center.Y + radius/weight*math.Sin(mid),
		}
		end := Point{
			X: center.X + radius*math.Cos(a1),
			Y: center.Y + radius*math.Sin(a1),
		}
		out.conicTo(ctrl, end, weight)
		a0 = a1
	}
}

// squareCap extends the stroke by half a width past the endpoint.
func (e *Expander) squareCap(center Point, norm Vec2, closePath bool) {
	// Affine frame [norm.x, norm.y; -norm.y, norm.x] + center, applied to
	// the unit square corners.
	p1 := e.framePoint(center, norm, 1, 1)
	p2 := e.framePoint(center, norm, -1, 1)

	e.output.lineTo(p1)
	e.output.lineTo(p2)

	if closePath {
		e.output.close()
	} else {
		e.output.lineTo(e.framePoint(center, norm, -1, 0))
	}
}

func (e *Expander) framePoint(center Point, norm Vec2, x, y float64) Point {
	return Point{
		X: norm.X*x - norm.Y*y + center.X,
		Y: norm.Y*x + norm.X*y + center.Y,
	}
}

// appendReversed walks the backward path tail-to-head so its geometry runs
// opposite to the forward path. A reversed conic keeps its control point
// and weight with the endpoints swapped.
func (e *Expander) appendReversed(pb *elemBuilder) {
	elems := pb.elements
	for i := len(elems) - 1; i >= 1; i-- {
		endPt := elemEndPoint(elems[i-1])
		switch el := elems[i].(type) {
		case LineTo:
			e.output.lineTo(endPt)
		case QuadTo:
			e.output.quadTo(el.Control, endPt)
		case ConicTo:
			e.output.conicTo(el.Control, endPt, el.Weight)
		case CubicTo:
			e.output.cubicTo(el.Control2, el.Control1, endPt)
		}
	}
}

func elemEndPoint(el PathElement) Point {
	switch e := el.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case QuadTo:
		return e.Point
	case ConicTo:
		return e.Point
	case CubicTo:
		return e.Point
	default:
		return Point{}
	}
}

// elemBuilder accumulates path elements.
type elemBuilder struct {
	elements []PathElement
}

func newElemBuilder() *elemBuilder {
	return &elemBuilder{elements: make([]PathElement, 0, 64)}
}

func (b *elemBuilder) isEmpty() bool {
	return len(b.elements) == 0
}

func (b *elemBuilder) moveTo(p Point) {
	b.elements = append(b.elements, MoveTo{Point: p})
}

func (b *elemBuilder) lineTo(p Point) {
	b.elements = append(b.elements, LineTo{Point: p})
}

func (b *elemBuilder) quadTo(c, p Point) {
	b.elements = append(b.elements, QuadTo{Control: c, Point: p})
}

func (b *elemBuilder) conicTo(c, p Point, w float64) {
	b.elements = append(b.elements, ConicTo{Control: c, Point: p, Weight: w})
}

func (b *elemBuilder) cubicTo(c1, c2, p Point) {
	b.elements = append(b.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
}

func (b *elemBuilder) close() {
	b.elements = append(b.elements, Close{})
}

func (b *elemBuilder) endPoint() (Point, bool) {
	if len(b.elements) == 0 {
		return Point{}, false
	}
	return elemEndPoint(b.elements[len(b.elements)-1]), true
}

func (b *elemBuilder) append(other *elemBuilder) {
	b.elements = append(b.elements, other.elements...)
}
