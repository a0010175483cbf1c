package glyph

import (
	"testing"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/vg"
)

func seg(op opentype.SegmentOp, args ...opentype.SegmentPoint) opentype.Segment {
	s := opentype.Segment{Op: op}
	copy(s.Args[:], args)
	return s
}

func sp(x, y float32) opentype.SegmentPoint {
	return opentype.SegmentPoint{X: x, Y: y}
}

func TestFromOutlineScalesAndFlips(t *testing.T) {
	// Font-unit triangle with y up; at scale 0.1 and the y flip it becomes
	// (0,0) (10,0) (10,-10) in device space.
	outline := font.GlyphOutline{Segments: []opentype.Segment{
		seg(opentype.SegmentOpMoveTo, sp(0, 0)),
		seg(opentype.SegmentOpLineTo, sp(100, 0)),
		seg(opentype.SegmentOpLineTo, sp(100, 100)),
	}}

	p := FromOutline(outline, 0.1)
	require.False(t, p.IsEmpty())

	pts := p.Points()
	require.Len(t, pts, 3)
	assert.Equal(t, vg.Pt(0, 0), pts[0])
	assert.Equal(t, vg.Pt(10, 0), pts[1])
	assert.Equal(t, vg.Pt(10, -10), pts[2])

	// The contour is implicitly closed.
	verbs := p.Verbs()
	require.NotEmpty(t, verbs)
	assert.Equal(t, vg.VerbClose, verbs[len(verbs)-1])
	assert.Equal(t, 1, p.NumContours())
}

func TestFromOutlineMultipleContours(t *testing.T) {
	outline := font.GlyphOutline{Segments: []opentype.Segment{
		seg(opentype.SegmentOpMoveTo, sp(0, 0)),
		seg(opentype.SegmentOpLineTo, sp(500, 0)),
		seg(opentype.SegmentOpLineTo, sp(250, 700)),
		seg(opentype.SegmentOpMoveTo, sp(200, 200)),
		seg(opentype.SegmentOpLineTo, sp(300, 200)),
		seg(opentype.SegmentOpLineTo, sp(250, 400)),
	}}

	p := FromOutline(outline, 0.01)
	assert.Equal(t, 2, p.NumContours())

	closes := 0
	for _, v := range p.Verbs() {
		if v == vg.VerbClose {
			closes++
		}
	}
	assert.Equal(t, 2, closes, "every glyph contour must close")
}

func TestFromOutlineCurves(t *testing.T) {
	outline := font.GlyphOutline{Segments: []opentype.Segment{
		seg(opentype.SegmentOpMoveTo, sp(0, 0)),
		seg(opentype.SegmentOpQuadTo, sp(50, 100), sp(100, 0)),
		seg(opentype.SegmentOpCubeTo, sp(150, -100), sp(200, 100), sp(250, 0)),
	}}

	p := FromOutline(outline, 1)
	verbs := p.Verbs()
	require.GreaterOrEqual(t, len(verbs), 4)
	assert.Equal(t, vg.VerbMove, verbs[0])
	assert.Equal(t, vg.VerbQuad, verbs[1])
	assert.Equal(t, vg.VerbCubic, verbs[2])

	// Control points flip with the rest.
	pts := p.Points()
	assert.Equal(t, vg.Pt(50, -100), pts[1])
	assert.Equal(t, vg.Pt(150, 100), pts[3])
}

func TestFromOutlineEmpty(t *testing.T) {
	p := FromOutline(font.GlyphOutline{}, 0.1)
	assert.True(t, p.IsEmpty())
}
