package stroke

import (
	"math"
	"testing"
)

// polyArea returns the signed area of the flattened outline, split per
// contour, using the shoelace formula.
func polyArea(t *testing.T, elems []PathElement) float64 {
	t.Helper()
	var total float64
	var start, prev Point
	add := func(p Point) {
		total += 0.5 * (prev.X*p.Y - p.X*prev.Y)
		prev = p
	}
	for _, el := range elems {
		switch e := el.(type) {
		case MoveTo:
			start, prev = e.Point, e.Point
		case LineTo:
			add(e.Point)
		case QuadTo:
			t.Fatal("unexpected quad in butt/miter outline")
		case ConicTo:
			// Flatten finely enough for area comparison.
			pts := flattenConic(prev, e.Control, e.Point, e.Weight)
			for _, p := range pts {
				add(p)
			}
		case Close:
			add(start)
		}
	}
	return total
}

func flattenConic(p0, p1, p2 Point, w float64) []Point {
	const n = 256
	pts := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / n
		u := 1 - t
		den := u*u + 2*w*u*t + t*t
		pts = append(pts, Point{
			X: (u*u*p0.X + 2*w*u*t*p1.X + t*t*p2.X) / den,
			Y: (u*u*p0.Y + 2*w*u*t*p1.Y + t*t*p2.Y) / den,
		})
	}
	return pts
}

func countContours(elems []PathElement) int {
	n := 0
	for _, el := range elems {
		if _, ok := el.(MoveTo); ok {
			n++
		}
	}
	return n
}

func TestExpandButtLine(t *testing.T) {
	exp := NewExpander(Style{Width: 4, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4}, 0.1)
	out := exp.Expand([]PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
	})

	if len(out) == 0 {
		t.Fatal("no outline produced")
	}
	if countContours(out) != 1 {
		t.Fatalf("contours = %d, want 1", countContours(out))
	}
	if _, ok := out[len(out)-1].(Close); !ok {
		t.Error("outline does not end with Close")
	}

	// A butt stroke of a straight segment is the 10x4 rectangle.
	if got := math.Abs(polyArea(t, out)); math.Abs(got-40) > 1e-9 {
		t.Errorf("outline area = %g, want 40", got)
	}
	for _, el := range out {
		if p, ok := el.(LineTo); ok {
			if math.Abs(p.Point.Y) != 2 {
				t.Errorf("offset point %v not at distance 2 from the axis", p.Point)
			}
		}
	}
}

func TestExpandRoundCapEmitsConics(t *testing.T) {
	exp := NewExpander(Style{Width: 4, Cap: LineCapRound, Join: LineJoinRound, MiterLimit: 4}, 0.1)
	out := exp.Expand([]PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
	})

	conics := 0
	for _, el := range out {
		if c, ok := el.(ConicTo); ok {
			conics++
			if !(c.Weight > 0 && c.Weight < 1) {
				t.Errorf("cap conic weight = %g, want in (0,1)", c.Weight)
			}
		}
	}
	// Each semicircular cap needs at least two arc segments.
	if conics < 4 {
		t.Errorf("round caps emitted %d conics, want >= 4", conics)
	}

	want := 10*4 + math.Pi*4 // rect plus full circle r=2
	if got := math.Abs(polyArea(t, out)); math.Abs(got-want)/want > 1e-3 {
		t.Errorf("outline area = %g, want %g", got, want)
	}
}

func TestExpandClosedContourTwoRings(t *testing.T) {
	exp := NewExpander(Style{Width: 2, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: 4}, 0.1)
	out := exp.Expand([]PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 0}},
		LineTo{Point{10, 10}},
		LineTo{Point{0, 10}},
		Close{},
	})

	if got := countContours(out); got != 2 {
		t.Fatalf("contours = %d, want outer and inner ring", got)
	}
	closes := 0
	for _, el := range out {
		if _, ok := el.(Close); ok {
			closes++
		}
	}
	if closes != 2 {
		t.Errorf("closes = %d, want both rings closed", closes)
	}

	// Opposite orientations: net signed area is outer minus inner,
	// the width-2 band around the 10x10 square.
	want := 11*11 - 9*9.0
	if got := math.Abs(polyArea(t, out)); math.Abs(got-want) > 1e-9 {
		t.Errorf("net area = %g, want %g", got, want)
	}
}

func TestExpandMiterVersusBevel(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point{0, 0}},
		LineTo{Point{10, 10}},
		LineTo{Point{20, 0}},
	}
	maxY := func(out []PathElement) float64 {
		m := math.Inf(-1)
		for _, el := range out {
			if p, ok := el.(LineTo); ok && p.Point.Y > m {
				m = p.Point.Y
			}
		}
		return m
	}

	const w = 4.0
	miter := NewExpander(Style{Width: w, Join: LineJoinMiter, MiterLimit: 4}, 0.1).Expand(elems)
	if got := maxY(miter); got < 10+math.Sqrt2*w/2-1e-9 {
		t.Errorf("miter tip at y=%g, want %g", got, 10+math.Sqrt2*w/2)
	}

	bevel := NewExpander(Style{Width: w, Join: LineJoinBevel, MiterLimit: 4}, 0.1).Expand(elems)
	if got := maxY(bevel); got > 10+w/2+1e-9 {
		t.Errorf("bevel extends to y=%g, beyond the offset distance", got)
	}

	// A miter limit of 1 forces the bevel fallback at this 90-degree turn.
	limited := NewExpander(Style{Width: w, Join: LineJoinMiter, MiterLimit: 1}, 0.1).Expand(elems)
	if got := maxY(limited); got > 10+w/2+1e-9 {
		t.Errorf("limited miter extends to y=%g, want bevel fallback", got)
	}
}

func TestExpandCurveInput(t *testing.T) {
	exp := NewExpander(Style{Width: 2, Cap: LineCapButt, Join: LineJoinRound, MiterLimit: 4}, 0.01)
	out := exp.Expand([]PathElement{
		MoveTo{Point{0, 0}},
		QuadTo{Control: Point{10, 20}, Point: Point{20, 0}},
	})

	if len(out) == 0 {
		t.Fatal("no outline for curved input")
	}
	for _, el := range out {
		for _, p := range elementPoints(el) {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("NaN point in outline element %#v", el)
			}
		}
	}
}

func elementPoints(el PathElement) []Point {
	switch e := el.(type) {
	case MoveTo:
		return []Point{e.Point}
	case LineTo:
		return []Point{e.Point}
	case QuadTo:
		return []Point{e.Control, e.Point}
	case ConicTo:
		return []Point{e.Control, e.Point}
	case CubicTo:
		return []Point{e.Control1, e.Control2, e.Point}
	}
	return nil
}
