package toothgeom

import (
	"log/slog"
)

// Target is a drawing surface with a current path and a transform stack, as
// provided by 2D canvas APIs such as *gg.Context.
//
// Points passed to the path methods are mapped through the current transform.
// Push saves the transform and Pop restores it.
type Target interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	Push()
	Pop()
	Translate(x, y float64)
	Scale(x, y float64)
}

// Sizer is implemented by targets that know their pixel size.
type Sizer interface {
	Width() int
	Height() int
}

// PathClearer is implemented by targets whose current path can be discarded
// before a new one is started.
type PathClearer interface {
	ClearPath()
}

// Issue replays the path elements of p on t, without touching t's transform.
func Issue(t Target, p BezPath) {
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			t.MoveTo(el.P0.X, el.P0.Y)
		case LineToKind:
			t.LineTo(el.P0.X, el.P0.Y)
		case QuadToKind:
			t.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case CubicToKind:
			t.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case ClosePathKind:
			t.ClosePath()
		}
	}
}

// Options configure an Engine.
type Options struct {
	// Inset shrinks every drawing about the center of the target. A zero
	// Scale selects DefaultInset.
	Inset Inset
	// Tolerance is the accuracy used when circles and ellipses are turned
	// into cubic curves. Zero selects DefaultTolerance.
	Tolerance float64
}

// Engine draws tooth surfaces. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	opts Options
}

// NewEngine returns an engine using opts, with zero fields replaced by their
// defaults.
func NewEngine(opts Options) *Engine {
	if !(opts.Inset.Scale > 0) {
		opts.Inset = DefaultInset
	}
	if !(opts.Tolerance > 0) {
		opts.Tolerance = DefaultTolerance
	}
	return &Engine{opts: opts}
}

// DefaultEngine is the engine used by the package-level functions.
var DefaultEngine = NewEngine(Options{})

func (e *Engine) Options() Options { return e.opts }

// ResolveSize returns the size a drawing on t should fill. Positive
// dimensions in size win, even when t reports a different size: callers
// that scale the target for high-density displays pass the logical size
// explicitly. Missing dimensions come from t if it implements Sizer, else
// from DefaultSize.
func (e *Engine) ResolveSize(t Target, size Size) Size {
	if !size.IsEmpty() {
		return size
	}
	fallback := DefaultSize
	if s, ok := t.(Sizer); ok && s.Width() > 0 && s.Height() > 0 {
		fallback = Sz(float64(s.Width()), float64(s.Height()))
	} else {
		Logger().Debug("toothgeom: target size unknown, using default",
			slog.String("size", DefaultSize.String()))
	}
	if !(size.Width > 0) {
		size.Width = fallback.Width
	}
	if !(size.Height > 0) {
		size.Height = fallback.Height
	}
	return size
}

// Outline returns the geometry of a surface in the coordinates issued to the
// target, before the inset transform. The result is nil if the surface is not
// drawn for the tooth's category and view.
func (e *Engine) Outline(tooth ToothNumber, view string, surface Surface, size Size) BezPath {
	g := GeneratorFor(Classify(tooth), NormalizeView(view))
	return g.Generate(surface, size, e.opts.Tolerance)
}

// SurfacePath returns the geometry of a surface in target space, with the
// inset applied. It is what DrawToothSurface would leave on a target of the
// given size and is suitable for hit testing and export.
func (e *Engine) SurfacePath(tooth ToothNumber, view string, surface Surface, size Size) BezPath {
	return e.Outline(tooth, view, surface, size).Transform(e.opts.Inset.Transform(size))
}

// DrawToothSurface adds the outline of surface to t's current path. It does
// not fill or stroke.
//
// The tooth is classified by its last digit and the view is normalized with
// NormalizeView, so unknown views draw the frontal outline. An unsupported
// surface leaves t untouched. Otherwise the current path is cleared if t
// implements PathClearer and the outline is issued inside a Push/Pop pair
// that applies the inset; t's transform is the same afterwards.
//
// Zero dimensions in size are resolved with ResolveSize.
func (e *Engine) DrawToothSurface(t Target, tooth ToothNumber, view string, surface Surface, size Size) {
	size = e.ResolveSize(t, size)
	p := e.Outline(tooth, view, surface, size)
	if p.IsEmpty() {
		return
	}
	if c, ok := t.(PathClearer); ok {
		c.ClearPath()
	}
	tr := e.opts.Inset.Translation(size)
	s := e.opts.Inset.Scale
	t.Push()
	t.Translate(tr.X, tr.Y)
	t.Scale(s, s)
	Issue(t, p)
	t.Pop()
}

// DrawToothSurface calls DefaultEngine.DrawToothSurface.
func DrawToothSurface(t Target, tooth ToothNumber, view string, surface Surface, size Size) {
	DefaultEngine.DrawToothSurface(t, tooth, view, surface, size)
}

// SurfacePath calls DefaultEngine.SurfacePath.
func SurfacePath(tooth ToothNumber, view string, surface Surface, size Size) BezPath {
	return DefaultEngine.SurfacePath(tooth, view, surface, size)
}
