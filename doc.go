// Package vg implements the path geometry and rasterization core of a 2D
// vector-graphics pipeline.
//
// # Overview
//
// vg turns abstract path geometry (arcs, lines, Bezier curves, glyph
// outlines) into exact pixel coverage for compositing. It provides:
//
//   - PathBuilder: accumulates verbs and points into an immutable Path
//   - AddArc/ArcTo: elliptical arcs represented exactly as conic segments
//   - StrokePath: stroke-to-fill outline generation
//   - PathMeasure: arc-length parameterization with position/tangent queries
//   - ScanConverter: analytic anti-aliased scan conversion into coverage spans
//
// The library performs no color work. ScanConverter emits coverage spans
// (fractional pixel occupancy in [0, 1]) to a caller-supplied function;
// combining coverage with paint is the compositor's job.
//
// # Quick Start
//
//	var b vg.PathBuilder
//	b.MoveTo(10, 10)
//	b.LineTo(90, 10)
//	b.LineTo(50, 80)
//	b.Close()
//	path := b.Detach()
//
//	sc := vg.NewScanConverter(image.Rect(0, 0, 100, 100))
//	sc.Fill(path, func(s vg.Span) {
//		// blend s.Coverage into row s.Y, pixels [s.X, s.X+s.Len)
//	})
//
// # Architecture
//
// The library is organized into:
//   - Public API: Path, PathBuilder, Stroke, PathMeasure, ScanConverter
//   - Internal: raster (edge table, analytic coverage), stroke (outline
//     expansion), flatten (curve subdivision)
//   - glyph: adapters turning font-engine outlines into Path values
//
// # Coordinate System
//
// Device space, post-transform:
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Arc angles in degrees, 0 at +x, positive sweep clockwise on screen
//
// # Concurrency
//
// A Path is immutable once detached from its builder and may be shared
// freely across goroutines. Builders and measures are single-owner.
package vg

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
