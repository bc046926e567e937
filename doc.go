// Package toothgeom draws the surfaces of teeth for dental charts. Given a
// tooth number, a view and the name of a surface, it produces the outline of
// that surface as a 2D path for a drawing target of any size, ready to be
// filled, stroked or hit-tested.
//
// # Teeth, views and surfaces
//
// Teeth are identified by their ISO 3950 number ([ToothNumber]). Only the
// last digit matters for drawing: [Classify] sorts every number into one of
// three categories, [Anterior], [Premolar] or [Molar].
//
// Views are free-form strings. [NormalizeView] maps "topview", "occlusal",
// "incisal" and "top" to [ViewTop] and everything else to [ViewFrontal].
//
// Surfaces ([Surface]) are an open vocabulary. Each combination of category
// and view supports its own set; asking for anything else draws nothing and
// is not an error. [ParseSurface] translates chart notation such as letter codes
// or "Mesio Buccal Cusp" labels into that vocabulary.
//
// # Drawing
//
// [DrawToothSurface] adds an outline to the current path of a [Target], which
// is a small subset of a 2D canvas API that *gg.Context from
// github.com/gogpu/gg satisfies. [SurfacePath] returns the same outline as a
// [BezPath] instead, for export with [BezPath.SVG] or hit testing with
// [HitTest].
//
// Outlines are authored as [Recipe] tables in fixed reference frames
// ([FrameTop], [FrameFrontal], [FrameMolarTop]) and stretched onto the target
// with independent horizontal and vertical factors. The result is then shrunk
// by an [Inset] so that it stays clear of the target's edges.
//
// # Geometry
//
// The package carries the small set of 2D primitives the recipes are built
// from: [Point], [Vec2], [Size], [Affine], [Rect], [RoundedRect], [Circle],
// [Ellipse] and [Arc]. All of them can express themselves as path elements
// via the [Shape] interface. Circles and ellipses are approximated by cubic
// Béziers, so targets need no arc primitive.
//
// [ParsePath] reads SVG path data, which is how the larger outlines are
// stored, and [Flatten] approximates paths with lines for hit testing.
//
// # Concurrency
//
// Nothing in this package holds mutable state apart from the logger set with
// [SetLogger]. All functions may be called concurrently, for example one
// goroutine per tooth of a chart.
package toothgeom
