package vg

import (
	"iter"

	"github.com/gogpu/vg/internal/flatten"
)

// contours flattens the path contour by contour into polylines within the
// given tolerance. Each yield delivers the contour's points, starting at
// its Move point, and whether the contour was explicitly closed; a closed
// contour's polyline ends back at the Move point.
//
// The yielded slice is reused between iterations; callers that retain it
// must copy.
func (p *Path) contours(tolerance float64) iter.Seq2[[]flatten.Point, bool] {
	if !(tolerance > 0) {
		tolerance = flatten.DefaultTolerance
	}
	return func(yield func([]flatten.Point, bool) bool) {
		var pts []flatten.Point
		closed := false
		flush := func() bool {
			if len(pts) == 0 {
				return true
			}
			ok := yield(pts, closed)
			pts = pts[:0]
			closed = false
			return ok
		}

		for seg := range p.Segments() {
			switch seg.Verb {
			case VerbMove:
				if !flush() {
					return
				}
				pts = append(pts, flatten.Point(seg.Pts[1]))
			case VerbLine:
				pts = append(pts, flatten.Point(seg.Pts[1]))
			case VerbQuad:
				pts = flatten.Quad(pts,
					flatten.Point(seg.Pts[0]), flatten.Point(seg.Pts[1]), flatten.Point(seg.Pts[2]),
					tolerance)
			case VerbConic:
				pts = flatten.Conic(pts,
					flatten.Point(seg.Pts[0]), flatten.Point(seg.Pts[1]), flatten.Point(seg.Pts[2]),
					seg.Weight, tolerance)
			case VerbCubic:
				pts = flatten.Cubic(pts,
					flatten.Point(seg.Pts[0]), flatten.Point(seg.Pts[1]), flatten.Point(seg.Pts[2]), flatten.Point(seg.Pts[3]),
					tolerance)
			case VerbClose:
				if len(pts) > 0 && pts[len(pts)-1] != flatten.Point(seg.Pts[1]) {
					pts = append(pts, flatten.Point(seg.Pts[1]))
				}
				closed = true
			}
		}
		flush()
	}
}
