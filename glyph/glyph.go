// Package glyph converts font glyph outlines into vg paths.
//
// Two font stacks are supported: golang.org/x/image/font/sfnt (stdlib-style
// TrueType/OpenType parsing) and github.com/go-text/typesetting (the
// shaping-oriented stack). Both produce device-space, y-down paths ready
// for filling or stroking.
package glyph
