package vg

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		wantNil bool
	}{
		{"no lengths", nil, true},
		{"all zero", []float64{0, 0}, true},
		{"all negative treated by magnitude", []float64{-5, -3}, false},
		{"ordinary pattern", []float64{5, 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if (d == nil) != tt.wantNil {
				t.Errorf("NewDash(%v) = %v, wantNil=%v", tt.lengths, d, tt.wantNil)
			}
		})
	}

	d := NewDash(-5, 3)
	if d.Array[0] != 5 {
		t.Errorf("negative length not normalized: %v", d.Array)
	}
}

func TestDashPatternLength(t *testing.T) {
	if got := NewDash(5, 3).PatternLength(); got != 8 {
		t.Errorf("even pattern length = %g, want 8", got)
	}
	// Odd-length arrays duplicate: [5] acts as [5,5].
	if got := NewDash(5).PatternLength(); got != 10 {
		t.Errorf("odd pattern length = %g, want 10", got)
	}
	var nilDash *Dash
	if got := nilDash.PatternLength(); got != 0 {
		t.Errorf("nil pattern length = %g, want 0", got)
	}
}

func TestDashIsDashedAndClone(t *testing.T) {
	var nilDash *Dash
	if nilDash.IsDashed() {
		t.Error("nil dash reports dashed")
	}
	if nilDash.Clone() != nil {
		t.Error("nil clone not nil")
	}

	d := NewDash(4, 2)
	c := d.Clone()
	c.Array[0] = 99
	if d.Array[0] != 4 {
		t.Error("clone shares backing array")
	}
}

func TestDashNormalizedOffset(t *testing.T) {
	d := NewDash(4, 2) // cycle 6
	tests := []struct{ offset, want float64 }{
		{0, 0},
		{5, 5},
		{6, 0},
		{13, 1},
		{-1, 5},
	}
	for _, tt := range tests {
		got := d.WithOffset(tt.offset).NormalizedOffset()
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("offset %g normalized = %g, want %g", tt.offset, got, tt.want)
		}
	}
}

func TestDashScale(t *testing.T) {
	d := NewDash(4, 2).WithOffset(3).Scale(2)
	if d.Array[0] != 8 || d.Array[1] != 4 || d.Offset != 6 {
		t.Errorf("scaled dash = %+v", d)
	}
	// Non-positive factors leave the dash unchanged.
	same := d.Scale(0)
	if same != d {
		t.Error("zero scale allocated a new dash")
	}
}

func TestApplyDashSegments(t *testing.T) {
	line := new(PathBuilder).MoveTo(0, 0).LineTo(10, 0).Detach()

	// [2,3] over length 10: on [0,2], [5,7], and starting at exactly 10
	// there is nothing left to draw.
	dashed := applyDash(line, NewDash(2, 3), 0.25)
	if n := dashed.NumContours(); n != 2 {
		t.Fatalf("NumContours = %d, want 2", n)
	}

	m := NewPathMeasure(dashed, false, 1)
	if got := m.Length(); math.Abs(got-2) > 1e-12 {
		t.Errorf("first dash length = %g, want 2", got)
	}
	m.NextContour()
	if got := m.Length(); math.Abs(got-2) > 1e-12 {
		t.Errorf("second dash length = %g, want 2", got)
	}
}

func TestApplyDashOddPattern(t *testing.T) {
	line := new(PathBuilder).MoveTo(0, 0).LineTo(20, 0).Detach()

	// [5] dashes as [5,5]: on [0,5], [10,15], then the cycle ends at 20.
	dashed := applyDash(line, NewDash(5), 0.25)
	if n := dashed.NumContours(); n != 2 {
		t.Fatalf("NumContours = %d, want 2", n)
	}
}

func TestApplyDashAcrossSegments(t *testing.T) {
	// The pattern phase carries across polyline corners: an L of total
	// length 20 with dash [6,4] gives on [0,6], [10,16].
	l := new(PathBuilder).MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Detach()
	dashed := applyDash(l, NewDash(6, 4), 0.25)

	if n := dashed.NumContours(); n != 2 {
		t.Fatalf("NumContours = %d, want 2", n)
	}
	// Second dash starts at arc length 10, the corner itself.
	m := NewPathMeasure(dashed, false, 1)
	m.NextContour()
	pos, _, _ := m.PosTan(0)
	if pos.Distance(Pt(10, 0)) > 1e-9 {
		t.Errorf("second dash starts at %v, want the corner (10,0)", pos)
	}
	if got := m.Length(); math.Abs(got-6) > 1e-9 {
		t.Errorf("second dash length = %g, want 6", got)
	}
}

func TestApplyDashContourRestart(t *testing.T) {
	// Each contour restarts the pattern at the offset.
	p := new(PathBuilder).
		MoveTo(0, 0).LineTo(10, 0).
		MoveTo(0, 5).LineTo(10, 5).
		Detach()
	dashed := applyDash(p, NewDash(2, 3), 0.25)
	if n := dashed.NumContours(); n != 4 {
		t.Errorf("NumContours = %d, want 2 per source contour", n)
	}
}
