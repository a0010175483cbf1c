package glyph

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/vg"
)

// FromSFNT loads a glyph outline from an sfnt font at the given pixel size
// and converts it to a path.
//
// The segments come back from sfnt already scaled to the size and y-down,
// in 26.6 fixed point; conversion is a divide by 64. buf may be nil; pass
// a reused buffer to avoid per-glyph allocation. Colored (COLR/sbix)
// glyphs and missing glyph indices surface sfnt's errors unchanged.
func FromSFNT(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, size float64) (*vg.Path, error) {
	if buf == nil {
		buf = &sfnt.Buffer{}
	}
	ppem := fixed.Int26_6(size * 64)
	segments, err := f.LoadGlyph(buf, gid, ppem, nil)
	if err != nil {
		return nil, err
	}

	// Glyph contours are implicitly closed; each MoveTo ends the previous
	// contour.
	var b vg.PathBuilder
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if !b.IsEmpty() {
				b.Close()
			}
			b.MoveTo(f26_6(seg.Args[0].X), f26_6(seg.Args[0].Y))
		case sfnt.SegmentOpLineTo:
			b.LineTo(f26_6(seg.Args[0].X), f26_6(seg.Args[0].Y))
		case sfnt.SegmentOpQuadTo:
			b.QuadTo(
				f26_6(seg.Args[0].X), f26_6(seg.Args[0].Y),
				f26_6(seg.Args[1].X), f26_6(seg.Args[1].Y))
		case sfnt.SegmentOpCubeTo:
			b.CubicTo(
				f26_6(seg.Args[0].X), f26_6(seg.Args[0].Y),
				f26_6(seg.Args[1].X), f26_6(seg.Args[1].Y),
				f26_6(seg.Args[2].X), f26_6(seg.Args[2].Y))
		}
	}
	if !b.IsEmpty() {
		b.Close()
	}
	return b.Detach(), nil
}

func f26_6(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
