package vg

// LineCap specifies the shape drawn at the endpoints of open contours.
type LineCap int

const (
	// LineCapButt cuts the stroke flat exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound extends the stroke with a half-width semicircle.
	LineCapRound
	// LineCapSquare extends the stroke with a half-width square.
	LineCapSquare
)

// String returns the name of the line cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapRound:
		return "Round"
	case LineCapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// LineJoin specifies the shape drawn where two stroke segments meet.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges to a sharp point, falling back
	// to bevel when the point would exceed the miter limit.
	LineJoinMiter LineJoin = iota
	// LineJoinRound bridges the segments with a circular arc.
	LineJoinRound
	// LineJoinBevel bridges the segments with a single straight edge.
	LineJoinBevel
)

// String returns the name of the line join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "Miter"
	case LineJoinRound:
		return "Round"
	case LineJoinBevel:
		return "Bevel"
	default:
		return "Unknown"
	}
}

// Stroke defines the style for stroking paths. It gathers the stroke
// properties in one value, following the tiny-skia/kurbo pattern.
type Stroke struct {
	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the ratio past which miter joins become bevels.
	// Default: 4.0 (matches SVG)
	MiterLimit float64

	// Dash is the dash pattern for the stroke. nil means solid.
	Dash *Dash
}

// DefaultStroke returns a solid 1-pixel stroke with butt caps and miter
// joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern.
// Pass nil to return to solid lines.
func (s Stroke) WithDash(dash *Dash) Stroke {
	s.Dash = dash.Clone()
	return s
}

// WithDashPattern returns a copy of the Stroke with a dash pattern created
// from the given lengths.
//
//	stroke.WithDashPattern(5, 3) // 5 units dash, 3 units gap
func (s Stroke) WithDashPattern(lengths ...float64) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// WithDashOffset returns a copy of the Stroke with the dash offset set.
// Without a dash pattern this has no effect.
func (s Stroke) WithDashOffset(offset float64) Stroke {
	if s.Dash != nil {
		s.Dash = s.Dash.WithOffset(offset)
	}
	return s
}

// IsDashed reports whether this stroke has an effective dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash.IsDashed()
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	result := s
	result.Dash = s.Dash.Clone()
	return result
}

// RoundStroke returns a stroke with round caps and joins.
func RoundStroke() Stroke {
	return DefaultStroke().WithCap(LineCapRound).WithJoin(LineJoinRound)
}

// DashedStroke returns a dashed stroke with the given pattern.
func DashedStroke(lengths ...float64) Stroke {
	return DefaultStroke().WithDashPattern(lengths...)
}
