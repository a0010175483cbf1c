package vg

// Verb discriminates the segment types stored in a Path.
// Each verb is followed in the point array by a fixed number of points;
// conic verbs additionally carry one weight in the weight array.
type Verb uint8

const (
	// VerbMove starts a new contour at its point.
	VerbMove Verb = iota
	// VerbLine draws a line to its point.
	VerbLine
	// VerbQuad draws a quadratic Bezier: control point, then end point.
	VerbQuad
	// VerbConic draws a rational quadratic Bezier (control, end) with a
	// weight. Weight 1 is an ordinary quadratic; weight cos(θ/2) traces an
	// exact circular or elliptical arc of half-angle θ.
	VerbConic
	// VerbCubic draws a cubic Bezier: two control points, then end point.
	VerbCubic
	// VerbClose closes the contour back to its Move point. No points follow.
	VerbClose
)

// PointCount returns the number of points the verb consumes from the
// path's point array.
func (v Verb) PointCount() int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbQuad, VerbConic:
		return 2
	case VerbCubic:
		return 3
	default:
		return 0
	}
}

// String returns the verb name.
func (v Verb) String() string {
	switch v {
	case VerbMove:
		return "Move"
	case VerbLine:
		return "Line"
	case VerbQuad:
		return "Quad"
	case VerbConic:
		return "Conic"
	case VerbCubic:
		return "Cubic"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// FillType selects the rule deciding which regions of a path are inside.
type FillType uint8

const (
	// FillWinding treats a point as inside when the summed signed edge
	// crossings are non-zero.
	FillWinding FillType = iota
	// FillEvenOdd treats a point as inside when the summed edge crossings
	// are odd.
	FillEvenOdd
)

// String returns the fill type name.
func (f FillType) String() string {
	switch f {
	case FillWinding:
		return "Winding"
	case FillEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}
