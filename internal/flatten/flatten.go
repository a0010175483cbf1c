// Package flatten subdivides Bezier curves into polylines with a bounded
// deviation from the true curve.
package flatten

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// DefaultTolerance is the maximum distance from the curve for flattening
// when the caller does not supply one.
const DefaultTolerance = 0.25

// maxDepth bounds recursive subdivision so that astronomically large
// coordinates still terminate; non-finite control points skip subdivision
// entirely and degrade to the chord.
const maxDepth = 24

func isFiniteF(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Sub returns the component-wise difference.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the component-wise sum.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	d := p.X - p.X + p.Y - p.Y
	return !math.IsNaN(d)
}

// Quad appends the polyline for the quadratic Bezier (p0, p1, p2) to dst,
// excluding p0, and returns the extended slice.
func Quad(dst []Point, p0, p1, p2 Point, tolerance float64) []Point {
	if !p0.IsFinite() || !p1.IsFinite() || !p2.IsFinite() {
		return append(dst, p2)
	}
	return quadRec(dst, p0, p1, p2, tolerance, 0)
}

func quadRec(dst []Point, p0, p1, p2 Point, tolerance float64, depth int) []Point {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)
	dst = quadRec(dst, p0, q0, q2, tolerance, depth+1)
	return quadRec(dst, q2, q1, p2, tolerance, depth+1)
}

// Cubic appends the polyline for the cubic Bezier (p0, p1, p2, p3) to dst,
// excluding p0, and returns the extended slice.
func Cubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	if !p0.IsFinite() || !p1.IsFinite() || !p2.IsFinite() || !p3.IsFinite() {
		return append(dst, p3)
	}
	return cubicRec(dst, p0, p1, p2, p3, tolerance, 0)
}

func cubicRec(dst []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if depth >= maxDepth || math.Max(d1, d2) < tolerance {
		return append(dst, p3)
	}
	// de Casteljau split at t = 1/2
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	dst = cubicRec(dst, p0, q0, r0, s, tolerance, depth+1)
	return cubicRec(dst, s, r1, q2, p3, tolerance, depth+1)
}

// Conic appends the polyline for the rational quadratic (p0, p1, p2) with
// the given weight to dst, excluding p0, and returns the extended slice.
// Weight 1 is an ordinary quadratic; weights in (0, 1) trace elliptical
// arcs.
func Conic(dst []Point, p0, p1, p2 Point, weight, tolerance float64) []Point {
	if !(weight > 0) || weight == 1 {
		return Quad(dst, p0, p1, p2, tolerance)
	}
	if !p0.IsFinite() || !p1.IsFinite() || !p2.IsFinite() || !isFiniteF(weight) {
		return append(dst, p2)
	}
	return conicRec(dst, p0, p1, p2, weight, tolerance, 0)
}

func conicRec(dst []Point, p0, p1, p2 Point, w, tolerance float64, depth int) []Point {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		return append(dst, p2)
	}
	// Split the conic at t = 1/2 in homogeneous space. Both halves share the
	// subdivided weight sqrt((1+w)/2); the midpoint lies on the curve.
	q1 := Point{
		X: (p0.X + w*p1.X) / (1 + w),
		Y: (p0.Y + w*p1.Y) / (1 + w),
	}
	r1 := Point{
		X: (p2.X + w*p1.X) / (1 + w),
		Y: (p2.Y + w*p1.Y) / (1 + w),
	}
	mid := Point{
		X: (p0.X + 2*w*p1.X + p2.X) / (2 * (1 + w)),
		Y: (p0.Y + 2*w*p1.Y + p2.Y) / (2 * (1 + w)),
	}
	halfW := math.Sqrt((1 + w) / 2)
	dst = conicRec(dst, p0, q1, mid, halfW, tolerance, depth+1)
	return conicRec(dst, mid, r1, p2, halfW, tolerance, depth+1)
}

// ConicPoint evaluates the rational quadratic at parameter t in [0, 1].
func ConicPoint(p0, p1, p2 Point, w, t float64) Point {
	u := 1 - t
	num := p0.Mul(u * u).Add(p1.Mul(2 * w * u * t)).Add(p2.Mul(t * t))
	den := u*u + 2*w*u*t + t*t
	return num.Mul(1 / den)
}

// distanceToLine calculates the perpendicular distance from point p to the
// line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
