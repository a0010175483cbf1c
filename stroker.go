package vg

import (
	"github.com/gogpu/vg/internal/flatten"
	"github.com/gogpu/vg/internal/stroke"
)

// StrokePath converts a stroked path into a filled outline covering exactly
// the pixels the stroke would touch. The result uses the non-zero winding
// rule: the outer offset contour runs forward and the inner offset contour
// is reversed, so filling it reproduces the stroke.
//
// resScale communicates the scale at which the result will be rendered;
// values above 1 tighten the flattening tolerance so magnified output stays
// smooth. Non-positive values fall back to 1.
//
// Degenerate styles produce an empty path: a non-positive, NaN, or infinite
// width, or a miter limit below 1 (no angle can satisfy it). Segments with
// non-finite coordinates are dropped from the input rather than propagated
// into the outline.
func StrokePath(src *Path, style Stroke, resScale float64) *Path {
	if src.IsEmpty() {
		return emptyPath
	}
	if !(style.Width > 0) || !isFinite(style.Width) {
		return emptyPath
	}
	if style.MiterLimit < 1 {
		return emptyPath
	}
	if !(resScale > 0) {
		resScale = 1
	}
	tolerance := flatten.DefaultTolerance / resScale

	if style.IsDashed() {
		src = applyDash(src, style.Dash, tolerance)
		if src.IsEmpty() {
			return emptyPath
		}
	}

	exp := stroke.NewExpander(stroke.Style{
		Width:      style.Width,
		Cap:        stroke.LineCap(style.Cap),
		Join:       stroke.LineJoin(style.Join),
		MiterLimit: style.MiterLimit,
	}, tolerance)

	var b PathBuilder
	b.SetFillType(FillWinding)

	var elems []stroke.PathElement
	var contourStart Point
	degenerate := false // contour seen only coincident points so far
	open := false

	flush := func() {
		if !open {
			return
		}
		if degenerate {
			appendCapDot(&b, contourStart, style)
		} else {
			appendElements(&b, exp.Expand(elems))
		}
		elems = elems[:0]
		open = false
	}

	for seg := range src.Segments() {
		if !segmentFinite(seg) {
			Logger().Debug("stroke: dropping non-finite segment", "verb", seg.Verb.String())
			continue
		}
		switch seg.Verb {
		case VerbMove:
			flush()
			contourStart = seg.Pts[1]
			degenerate = true
			open = true
			elems = append(elems, stroke.MoveTo{Point: sp(seg.Pts[1])})
		case VerbLine:
			if !open {
				continue
			}
			if seg.Pts[1] != contourStart {
				degenerate = false
			}
			elems = append(elems, stroke.LineTo{Point: sp(seg.Pts[1])})
		case VerbQuad:
			if !open {
				continue
			}
			if seg.Pts[1] != contourStart || seg.Pts[2] != contourStart {
				degenerate = false
			}
			elems = append(elems, stroke.QuadTo{Control: sp(seg.Pts[1]), Point: sp(seg.Pts[2])})
		case VerbConic:
			if !open {
				continue
			}
			if seg.Pts[1] != contourStart || seg.Pts[2] != contourStart {
				degenerate = false
			}
			elems = append(elems, stroke.ConicTo{Control: sp(seg.Pts[1]), Point: sp(seg.Pts[2]), Weight: seg.Weight})
		case VerbCubic:
			if !open {
				continue
			}
			if seg.Pts[1] != contourStart || seg.Pts[2] != contourStart || seg.Pts[3] != contourStart {
				degenerate = false
			}
			elems = append(elems, stroke.CubicTo{Control1: sp(seg.Pts[1]), Control2: sp(seg.Pts[2]), Point: sp(seg.Pts[3])})
		case VerbClose:
			if !open {
				continue
			}
			elems = append(elems, stroke.Close{})
		}
	}
	flush()

	return b.Detach()
}

func sp(p Point) stroke.Point { return stroke.Point(p) }

// segmentFinite reports whether every point the segment carries is finite.
func segmentFinite(seg Segment) bool {
	i := 0
	if seg.Verb == VerbMove {
		i = 1 // a Move starts fresh; the previous current point is irrelevant
	}
	for n := seg.Verb.PointCount(); i <= n; i++ {
		if !seg.Pts[i].IsFinite() {
			return false
		}
	}
	return true
}

// appendCapDot renders the cap shape for a contour that never leaves its
// starting point: round caps draw a filled circle of the stroke radius,
// square caps a width-sized square, butt caps nothing.
func appendCapDot(b *PathBuilder, center Point, style Stroke) {
	r := style.Width / 2
	switch style.Cap {
	case LineCapRound:
		b.Circle(center.X, center.Y, r)
	case LineCapSquare:
		b.Rect(center.X-r, center.Y-r, style.Width, style.Width)
	}
}

// appendElements replays an expanded element list into the builder.
func appendElements(b *PathBuilder, elems []stroke.PathElement) {
	for _, el := range elems {
		switch e := el.(type) {
		case stroke.MoveTo:
			b.MoveTo(e.Point.X, e.Point.Y)
		case stroke.LineTo:
			b.LineTo(e.Point.X, e.Point.Y)
		case stroke.QuadTo:
			b.QuadTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case stroke.ConicTo:
			b.ConicTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y, e.Weight)
		case stroke.CubicTo:
			b.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case stroke.Close:
			b.Close()
		}
	}
}
