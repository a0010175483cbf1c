package vg

import "iter"

// Path is an immutable ordered sequence of verbs and points describing one
// or more contours, plus a fill type, conservative bounds, and advisory
// metadata.
//
// Paths are created by [PathBuilder.Detach] and never mutated afterwards.
// A Path may be shared freely across goroutines without synchronization.
//
// Storage is a flat tag-discriminated sequence: parallel arrays of verbs and
// points, with conic weights in a separate sparse array. This avoids
// per-segment allocation and matches the read-mostly, bulk-iteration access
// pattern of every downstream consumer.
type Path struct {
	verbs   []Verb
	points  []Point
	weights []float64 // one entry per VerbConic, in verb order

	fillType FillType
	bounds   Rect
	volatile bool
}

// emptyPath is returned wherever a degenerate input resolves to "no geometry".
var emptyPath = &Path{}

// IsEmpty reports whether the path contains no verbs.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// NumVerbs returns the number of verbs in the path.
func (p *Path) NumVerbs() int {
	return len(p.verbs)
}

// Verbs returns the verb array. The slice is shared with the Path and must
// not be modified.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the point array. The slice is shared with the Path and must
// not be modified.
func (p *Path) Points() []Point {
	return p.points
}

// ConicWeights returns the conic weight array, one entry per VerbConic in
// verb order. The slice is shared with the Path and must not be modified.
func (p *Path) ConicWeights() []float64 {
	return p.weights
}

// FillType returns the fill rule used when the path is rasterized.
func (p *Path) FillType() FillType {
	return p.fillType
}

// Bounds returns the conservative bounding rectangle of the path: the union
// of all control points. For curved segments this is not tight — the true
// curve lies inside the control polygon, so consumers must treat Bounds as
// an over-estimate. An empty path has zero bounds.
func (p *Path) Bounds() Rect {
	return p.bounds
}

// IsVolatile reports the advisory hint that the path will not be reused and
// is not worth caching downstream. It has no geometric effect.
func (p *Path) IsVolatile() bool {
	return p.volatile
}

// NumContours returns the number of contours (runs of verbs starting at a
// Move) in the path.
func (p *Path) NumContours() int {
	n := 0
	for _, v := range p.verbs {
		if v == VerbMove {
			n++
		}
	}
	return n
}

// Segment is one path segment produced by [Path.Segments].
//
// Pts[0] is always the current point where the segment starts. For VerbMove,
// Pts[1] is the new contour start. For VerbClose, Pts[1] is the contour's
// Move point the segment returns to. Line/Quad/Conic/Cubic fill Pts[1:] with
// their control and end points. Weight is meaningful only for VerbConic.
type Segment struct {
	Verb   Verb
	Pts    [4]Point
	Weight float64
}

// Segments iterates over the path's segments in order.
//
// Example:
//
//	for seg := range path.Segments() {
//		switch seg.Verb {
//		case vg.VerbLine:
//			// seg.Pts[0] -> seg.Pts[1]
//		}
//	}
func (p *Path) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		var cur, start Point
		pi := 0 // index into points
		wi := 0 // index into weights
		for _, v := range p.verbs {
			var seg Segment
			seg.Verb = v
			seg.Pts[0] = cur
			switch v {
			case VerbMove:
				seg.Pts[1] = p.points[pi]
				start = seg.Pts[1]
				cur = seg.Pts[1]
			case VerbLine:
				seg.Pts[1] = p.points[pi]
				cur = seg.Pts[1]
			case VerbQuad:
				seg.Pts[1] = p.points[pi]
				seg.Pts[2] = p.points[pi+1]
				cur = seg.Pts[2]
			case VerbConic:
				seg.Pts[1] = p.points[pi]
				seg.Pts[2] = p.points[pi+1]
				seg.Weight = p.weights[wi]
				wi++
				cur = seg.Pts[2]
			case VerbCubic:
				seg.Pts[1] = p.points[pi]
				seg.Pts[2] = p.points[pi+1]
				seg.Pts[3] = p.points[pi+2]
				cur = seg.Pts[3]
			case VerbClose:
				seg.Pts[1] = start
				cur = start
			}
			pi += v.PointCount()
			if !yield(seg) {
				return
			}
		}
	}
}

// LastPoint returns the final point of the path and true, or the zero point
// and false for an empty path.
func (p *Path) LastPoint() (Point, bool) {
	if len(p.points) == 0 {
		return Point{}, false
	}
	return p.points[len(p.points)-1], true
}
