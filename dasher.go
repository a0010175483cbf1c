package vg

import (
	"github.com/gogpu/vg/internal/flatten"
)

// applyDash replaces each contour of src with the open sub-contours left
// after walking the dash pattern along its arc length. Curves are
// flattened first; the pattern phase carries across segments within a
// contour and restarts at the dash offset on each new contour.
func applyDash(src *Path, dash *Dash, tolerance float64) *Path {
	pattern := dash.effectiveArray()
	if len(pattern) == 0 {
		return src
	}

	var b PathBuilder
	b.SetFillType(src.FillType())

	for pts := range src.contours(tolerance) {
		dashPolyline(&b, pts, pattern, dash.NormalizedOffset())
	}
	return b.Detach()
}

// dashPolyline walks one flattened contour and emits the "on" stretches of
// the pattern as open contours.
func dashPolyline(b *PathBuilder, pts []flatten.Point, pattern []float64, startOffset float64) {
	if len(pts) < 2 {
		return
	}

	// Position the pattern cursor at the starting offset.
	idx := 0
	remain := pattern[idx]
	for startOffset > 0 {
		if startOffset < remain {
			remain -= startOffset
			break
		}
		startOffset -= remain
		idx = (idx + 1) % len(pattern)
		remain = pattern[idx]
	}
	on := idx%2 == 0
	penDown := false

	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		segLen := p0.Distance(p1)
		if segLen == 0 {
			continue
		}
		pos := 0.0
		for pos < segLen {
			step := segLen - pos
			if remain < step {
				step = remain
			}
			if on {
				a := p0.Lerp(p1, pos/segLen)
				z := p0.Lerp(p1, (pos+step)/segLen)
				if !penDown {
					b.MoveTo(a.X, a.Y)
					penDown = true
				}
				b.LineTo(z.X, z.Y)
			} else {
				penDown = false
			}
			pos += step
			remain -= step
			if remain <= 0 {
				idx = (idx + 1) % len(pattern)
				remain = pattern[idx]
				on = !on
				penDown = penDown && on
			}
		}
	}
}
