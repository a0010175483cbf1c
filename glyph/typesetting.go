package glyph

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/vg"
)

// FromFace converts a glyph from a typesetting face into a path rendered
// at the given pixel size.
//
// Typesetting outlines are in font units with y up; the conversion scales
// by size/upem and flips y into device space. A glyph without vector data
// (bitmap or color strikes) yields an empty path and no error.
func FromFace(face *font.Face, gid font.GID, size float64) (*vg.Path, error) {
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return new(vg.PathBuilder).Detach(), nil
	}
	scale := size / float64(face.Upem())
	return FromOutline(outline, scale), nil
}

// FromOutline converts a raw typesetting outline with the given
// font-unit-to-pixel scale, flipping y into y-down device space.
func FromOutline(outline font.GlyphOutline, scale float64) *vg.Path {
	var b vg.PathBuilder
	for _, s := range outline.Segments {
		x0, y0 := pt(s.Args[0], scale)
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			if !b.IsEmpty() {
				b.Close()
			}
			b.MoveTo(x0, y0)
		case opentype.SegmentOpLineTo:
			b.LineTo(x0, y0)
		case opentype.SegmentOpQuadTo:
			x1, y1 := pt(s.Args[1], scale)
			b.QuadTo(x0, y0, x1, y1)
		case opentype.SegmentOpCubeTo:
			x1, y1 := pt(s.Args[1], scale)
			x2, y2 := pt(s.Args[2], scale)
			b.CubicTo(x0, y0, x1, y1, x2, y2)
		}
	}
	if !b.IsEmpty() {
		b.Close()
	}
	return b.Detach()
}

func pt(p opentype.SegmentPoint, scale float64) (x, y float64) {
	return float64(p.X) * scale, -float64(p.Y) * scale
}
