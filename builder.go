package vg

import "math"

// PathBuilder accumulates verbs and points into a [Path].
//
// The zero value is ready to use. Builder state is mutable and owned
// exclusively by its creator; methods must not be called concurrently on the
// same builder. [PathBuilder.Detach] snapshots the accumulated geometry into
// an immutable Path and resets the builder, which may then be reused.
//
// Drawing methods return the builder for chaining:
//
//	path := new(vg.PathBuilder).
//		MoveTo(0, 0).
//		LineTo(100, 0).
//		LineTo(100, 100).
//		Close().
//		Detach()
type PathBuilder struct {
	verbs   []Verb
	points  []Point
	weights []float64

	fillType FillType
	volatile bool

	bounds     Rect
	haveBounds bool

	contourStart Point
	lastPoint    Point
	needMove     bool
	started      bool
}

// MoveTo starts a new contour at (x, y).
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	p := Pt(x, y)
	b.verbs = append(b.verbs, VerbMove)
	b.appendPoint(p)
	b.contourStart = p
	b.lastPoint = p
	b.needMove = false
	b.started = true
	return b
}

// LineTo draws a line from the current point to (x, y).
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.ensureMove()
	b.verbs = append(b.verbs, VerbLine)
	b.appendPoint(Pt(x, y))
	b.lastPoint = Pt(x, y)
	return b
}

// QuadTo draws a quadratic Bezier through control point (cx, cy) to (x, y).
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.ensureMove()
	b.verbs = append(b.verbs, VerbQuad)
	b.appendPoint(Pt(cx, cy))
	b.appendPoint(Pt(x, y))
	b.lastPoint = Pt(x, y)
	return b
}

// ConicTo draws a rational quadratic Bezier through control point (cx, cy)
// to (x, y) with the given weight.
//
// Degenerate weights reduce to simpler verbs: a non-positive or NaN weight
// draws a line to (x, y); weight 1 is stored as an ordinary quadratic; an
// infinite weight degenerates to two lines through the control point.
func (b *PathBuilder) ConicTo(cx, cy, x, y, weight float64) *PathBuilder {
	switch {
	case !(weight > 0): // catches w <= 0 and NaN
		return b.LineTo(x, y)
	case math.IsInf(weight, 1):
		return b.LineTo(cx, cy).LineTo(x, y)
	case weight == 1:
		return b.QuadTo(cx, cy, x, y)
	}
	b.ensureMove()
	b.verbs = append(b.verbs, VerbConic)
	b.appendPoint(Pt(cx, cy))
	b.appendPoint(Pt(x, y))
	b.weights = append(b.weights, weight)
	b.lastPoint = Pt(x, y)
	return b
}

// CubicTo draws a cubic Bezier through control points (c1x, c1y) and
// (c2x, c2y) to (x, y).
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.ensureMove()
	b.verbs = append(b.verbs, VerbCubic)
	b.appendPoint(Pt(c1x, c1y))
	b.appendPoint(Pt(c2x, c2y))
	b.appendPoint(Pt(x, y))
	b.lastPoint = Pt(x, y)
	return b
}

// Close closes the current contour back to its Move point.
// A Close with no open contour is a no-op.
func (b *PathBuilder) Close() *PathBuilder {
	if b.needMove || !b.started {
		return b
	}
	b.verbs = append(b.verbs, VerbClose)
	b.lastPoint = b.contourStart
	// The next draw verb re-opens a contour at the close point.
	b.needMove = true
	return b
}

// SetFillType sets the fill rule stored on the detached path.
func (b *PathBuilder) SetFillType(ft FillType) *PathBuilder {
	b.fillType = ft
	return b
}

// SetIsVolatile stores the advisory "do not cache" hint on the detached
// path. It has no geometric effect.
func (b *PathBuilder) SetIsVolatile(v bool) *PathBuilder {
	b.volatile = v
	return b
}

// CurrentPoint returns the current point and whether the builder has one.
func (b *PathBuilder) CurrentPoint() (Point, bool) {
	return b.lastPoint, b.started
}

// IsEmpty reports whether no verbs have been accumulated.
func (b *PathBuilder) IsEmpty() bool {
	return len(b.verbs) == 0
}

// Detach returns an immutable Path snapshot of everything accumulated and
// resets the builder to empty for reuse.
func (b *PathBuilder) Detach() *Path {
	p := &Path{
		verbs:    b.verbs,
		points:   b.points,
		weights:  b.weights,
		fillType: b.fillType,
		bounds:   b.bounds,
		volatile: b.volatile,
	}
	*b = PathBuilder{}
	return p
}

// ensureMove inserts an implicit MoveTo when a draw verb arrives with no
// open contour: at the previous contour's close point, or the origin for a
// fresh builder.
func (b *PathBuilder) ensureMove() {
	if b.started && !b.needMove {
		return
	}
	if b.started {
		b.MoveTo(b.contourStart.X, b.contourStart.Y)
	} else {
		b.MoveTo(0, 0)
	}
}

// appendPoint records a control point and folds it into the running bounds.
func (b *PathBuilder) appendPoint(p Point) {
	b.points = append(b.points, p)
	if !b.haveBounds {
		b.bounds = Rect{Min: p, Max: p}
		b.haveBounds = true
		return
	}
	b.bounds = b.bounds.expand(p)
}

// ---------------------------------------------------------------------------
// Shape helpers

// Rect adds a closed rectangle contour.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	return b.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Oval adds a closed ellipse inscribed in the given bounds, built from four
// 90-degree conic segments (weight cos 45°), so the outline is exact.
func (b *PathBuilder) Oval(oval Rect) *PathBuilder {
	const w = math.Sqrt2 / 2
	c := oval.Center()
	rx, ry := oval.Width()/2, oval.Height()/2

	b.MoveTo(c.X+rx, c.Y)
	b.ConicTo(c.X+rx, c.Y+ry, c.X, c.Y+ry, w)
	b.ConicTo(c.X-rx, c.Y+ry, c.X-rx, c.Y, w)
	b.ConicTo(c.X-rx, c.Y-ry, c.X, c.Y-ry, w)
	b.ConicTo(c.X+rx, c.Y-ry, c.X+rx, c.Y, w)
	return b.Close()
}

// Circle adds a closed circle contour centered at (cx, cy).
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	if r <= 0 {
		return b
	}
	return b.Oval(RectWH(cx-r, cy-r, 2*r, 2*r))
}

// RoundRect adds a rectangle with rounded corners. The radius is clamped to
// half of the smaller dimension. Corners use the conic arc representation.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return b.Rect(x, y, w, h)
	}
	const cw = math.Sqrt2 / 2

	b.MoveTo(x+r, y)
	b.LineTo(x+w-r, y)
	b.ConicTo(x+w, y, x+w, y+r, cw)
	b.LineTo(x+w, y+h-r)
	b.ConicTo(x+w, y+h, x+w-r, y+h, cw)
	b.LineTo(x+r, y+h)
	b.ConicTo(x, y+h, x, y+h-r, cw)
	b.LineTo(x, y+r)
	b.ConicTo(x, y, x+r, y, cw)
	return b.Close()
}

// Polygon adds a closed regular polygon with the given number of sides.
// Fewer than 3 sides adds nothing.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}
	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2 // start at top
	for i := 0; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	return b.Close()
}
