package vg

import (
	"math"
	"testing"
)

func TestStrokePathDegenerateStyle(t *testing.T) {
	line := new(PathBuilder).MoveTo(0, 0).LineTo(10, 0).Detach()

	tests := []struct {
		name  string
		style Stroke
	}{
		{"zero width", DefaultStroke().WithWidth(0)},
		{"negative width", DefaultStroke().WithWidth(-2)},
		{"NaN width", DefaultStroke().WithWidth(math.NaN())},
		{"infinite width", DefaultStroke().WithWidth(math.Inf(1))},
		{"miter limit below one", DefaultStroke().WithMiterLimit(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrokePath(line, tt.style, 1); !got.IsEmpty() {
				t.Errorf("stroke produced %d verbs, want empty", got.NumVerbs())
			}
		})
	}

	if got := StrokePath(new(PathBuilder).Detach(), DefaultStroke(), 1); !got.IsEmpty() {
		t.Error("stroking an empty path produced geometry")
	}
}

func TestStrokeLineOutlineArea(t *testing.T) {
	// A butt-capped straight stroke is a rectangle: length * width.
	line := new(PathBuilder).MoveTo(0, 0).LineTo(20, 0).Detach()
	outline := StrokePath(line, DefaultStroke().WithWidth(4), 1)

	if outline.IsEmpty() {
		t.Fatal("outline is empty")
	}
	if got, want := math.Abs(outline.Area()), 80.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("outline area = %g, want %g", got, want)
	}

	b := outline.TightBounds()
	want := Rect{Min: Pt(0, -2), Max: Pt(20, 2)}
	if b.Min.Distance(want.Min) > 1e-9 || b.Max.Distance(want.Max) > 1e-9 {
		t.Errorf("outline bounds = %v, want %v", b, want)
	}
}

func TestStrokeCapExtents(t *testing.T) {
	line := new(PathBuilder).MoveTo(0, 0).LineTo(10, 0).Detach()
	const w = 4.0

	tests := []struct {
		name     string
		cap      LineCap
		wantMinX float64
		wantMaxX float64
	}{
		{"butt stops at endpoints", LineCapButt, 0, 10},
		{"square extends half width", LineCapSquare, -2, 12},
		{"round extends half width", LineCapRound, -2, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outline := StrokePath(line, DefaultStroke().WithWidth(w).WithCap(tt.cap), 1)
			b := outline.TightBounds()
			if math.Abs(b.Min.X-tt.wantMinX) > 0.01 || math.Abs(b.Max.X-tt.wantMaxX) > 0.01 {
				t.Errorf("x extent = [%g, %g], want [%g, %g]",
					b.Min.X, b.Max.X, tt.wantMinX, tt.wantMaxX)
			}
		})
	}
}

func TestStrokeRoundCapArea(t *testing.T) {
	// Round caps add a full circle's area across the two ends.
	line := new(PathBuilder).MoveTo(0, 0).LineTo(20, 0).Detach()
	const w = 4.0
	outline := StrokePath(line, DefaultStroke().WithWidth(w).WithCap(LineCapRound), 4)

	want := 20*w + math.Pi*(w/2)*(w/2)
	if got := math.Abs(outline.Area()); math.Abs(got-want)/want > 1e-3 {
		t.Errorf("area = %g, want %g", got, want)
	}
}

func TestStrokeClosedContourTwoRings(t *testing.T) {
	rect := new(PathBuilder).Rect(10, 10, 20, 20).Detach()
	outline := StrokePath(rect, DefaultStroke().WithWidth(2), 1)

	if n := outline.NumContours(); n != 2 {
		t.Fatalf("NumContours = %d, want outer and inner ring", n)
	}

	// The ring covers the boundary band but not the middle.
	if !outline.Contains(Pt(20, 10)) {
		t.Error("mid-edge point not covered by stroke")
	}
	if outline.Contains(Pt(20, 20)) {
		t.Error("center covered; inner ring winding wrong")
	}
	if outline.Contains(Pt(20, 14)) {
		t.Error("point inside the hole covered")
	}

	// Net signed area of outer minus inner ring is the band area: the
	// 22x22 mitered outer square minus the 18x18 inner one.
	if got := math.Abs(outline.Area()); math.Abs(got-160)/160 > 1e-6 {
		t.Errorf("band area = %g, want 160", got)
	}
}

func TestStrokeMiterLimitFallback(t *testing.T) {
	// Right-angle peak at (10,10): the miter tip reaches sqrt(2) * w/2
	// past the corner, a bevel only w/2 per offset point.
	peak := new(PathBuilder).MoveTo(0, 0).LineTo(10, 10).LineTo(20, 0).Detach()
	const w = 4.0

	miter := StrokePath(peak, DefaultStroke().WithWidth(w).WithMiterLimit(4), 1)
	if maxY := miter.TightBounds().Max.Y; maxY < 10+math.Sqrt2*w/2-0.01 {
		t.Errorf("miter tip missing: max y = %g, want ~%g", maxY, 10+math.Sqrt2*w/2)
	}

	// Limit 1 can never satisfy 1/sin(θ/2) <= 1, so every join bevels.
	bevel := StrokePath(peak, DefaultStroke().WithWidth(w).WithMiterLimit(1), 1)
	if maxY := bevel.TightBounds().Max.Y; maxY > 10+w/2+0.01 {
		t.Errorf("bevel extends to y = %g, beyond the offset distance", maxY)
	}
}

func TestStrokeSharpAngleMiter(t *testing.T) {
	// A 179-degree turnback produces an extreme miter ratio; the default
	// limit must fall back to bevel rather than emit a spike.
	const w = 2.0
	turn := new(PathBuilder).
		MoveTo(0, 0).
		LineTo(100, 0).
		LineTo(0, 1.75). // ~179 degrees back
		Detach()
	outline := StrokePath(turn, DefaultStroke().WithWidth(w).WithMiterLimit(4), 1)

	b := outline.TightBounds()
	// A runaway miter would push far past x=100+limit*w/2.
	if b.Max.X > 100+4*w/2+1e-6 {
		t.Errorf("miter spike escaped the limit: max x = %g", b.Max.X)
	}
	for _, pt := range outline.Points() {
		if !pt.IsFinite() {
			t.Fatal("non-finite point in outline")
		}
	}
}

func TestStrokePointContourCaps(t *testing.T) {
	point := new(PathBuilder).MoveTo(5, 5).Close().Detach()
	const w = 6.0

	t.Run("round cap draws a dot", func(t *testing.T) {
		outline := StrokePath(point, DefaultStroke().WithWidth(w).WithCap(LineCapRound), 1)
		if outline.IsEmpty() {
			t.Fatal("round cap dot missing")
		}
		want := math.Pi * (w / 2) * (w / 2)
		if got := math.Abs(outline.Area()); math.Abs(got-want)/want > 1e-3 {
			t.Errorf("dot area = %g, want %g", got, want)
		}
	})

	t.Run("square cap draws a square", func(t *testing.T) {
		outline := StrokePath(point, DefaultStroke().WithWidth(w).WithCap(LineCapSquare), 1)
		b := outline.TightBounds()
		want := Rect{Min: Pt(2, 2), Max: Pt(8, 8)}
		if b != want {
			t.Errorf("square dot bounds = %v, want %v", b, want)
		}
	})

	t.Run("butt cap draws nothing", func(t *testing.T) {
		outline := StrokePath(point, DefaultStroke().WithWidth(w), 1)
		if !outline.IsEmpty() {
			t.Errorf("butt cap on point contour produced %d verbs", outline.NumVerbs())
		}
	})
}

func TestStrokeDropsNonFiniteSegments(t *testing.T) {
	p := new(PathBuilder).
		MoveTo(0, 0).
		LineTo(10, 0).
		LineTo(math.NaN(), 5).
		LineTo(10, 10).
		Detach()
	outline := StrokePath(p, DefaultStroke().WithWidth(2), 1)

	if outline.IsEmpty() {
		t.Fatal("finite segments were lost with the bad one")
	}
	for _, pt := range outline.Points() {
		if !pt.IsFinite() {
			t.Fatalf("non-finite point %v leaked into outline", pt)
		}
	}
}

func TestStrokeDashed(t *testing.T) {
	line := new(PathBuilder).MoveTo(0, 0).LineTo(20, 0).Detach()
	style := DefaultStroke().WithWidth(2).WithDashPattern(4, 6)
	outline := StrokePath(line, style, 1)

	// Dashes at [0,4] and [10,14]: two separate outline contours.
	if n := outline.NumContours(); n != 2 {
		t.Fatalf("NumContours = %d, want 2 dashes", n)
	}
	if got, want := math.Abs(outline.Area()), 2*4*2.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("dashed area = %g, want %g", got, want)
	}
}

func TestStrokeDashOffset(t *testing.T) {
	line := new(PathBuilder).MoveTo(0, 0).LineTo(20, 0).Detach()
	style := DefaultStroke().WithWidth(2).WithDashPattern(4, 6).WithDashOffset(2)
	outline := StrokePath(line, style, 1)

	// Offset 2 starts mid-dash: on [0,2], [8,12], [18,20].
	if n := outline.NumContours(); n != 3 {
		t.Fatalf("NumContours = %d, want 3", n)
	}
	if got, want := math.Abs(outline.Area()), (2+4+2)*2.0; math.Abs(got-want) > 1e-6 {
		t.Errorf("area = %g, want %g", got, want)
	}
}

func TestStrokeResultIsWindingFill(t *testing.T) {
	src := new(PathBuilder).SetFillType(FillEvenOdd).Rect(0, 0, 10, 10).Detach()
	outline := StrokePath(src, DefaultStroke(), 1)
	if outline.FillType() != FillWinding {
		t.Errorf("outline fill type = %v, want Winding", outline.FillType())
	}
}
