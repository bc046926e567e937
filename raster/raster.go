// Package raster renders tooth surfaces into coverage masks with
// golang.org/x/image/vector. Masks serve pixel lookups, such as mapping a
// click on a chart image back to the surface under it.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/dentchart/toothgeom"
)

// ErrEmptySize is returned when a mask of zero width or height is requested.
var ErrEmptySize = errors.New("empty mask size")

// Target is a toothgeom.Target that rasterizes the path it is given. The
// zero value is not usable; create one with NewTarget.
type Target struct {
	ras   *vector.Rasterizer
	aff   toothgeom.Affine
	stack []toothgeom.Affine
	w, h  int
}

var (
	_ toothgeom.Target      = (*Target)(nil)
	_ toothgeom.Sizer       = (*Target)(nil)
	_ toothgeom.PathClearer = (*Target)(nil)
)

// NewTarget returns a target covering w×h pixels.
func NewTarget(w, h int) *Target {
	return &Target{
		ras: vector.NewRasterizer(w, h),
		aff: toothgeom.Identity,
		w:   w,
		h:   h,
	}
}

func (t *Target) Width() int  { return t.w }
func (t *Target) Height() int { return t.h }

func (t *Target) pt(x, y float64) (float32, float32) {
	p := toothgeom.Pt(x, y).Transform(t.aff)
	return float32(p.X), float32(p.Y)
}

func (t *Target) MoveTo(x, y float64) {
	t.ras.MoveTo(t.pt(x, y))
}

func (t *Target) LineTo(x, y float64) {
	t.ras.LineTo(t.pt(x, y))
}

func (t *Target) QuadraticTo(cx, cy, x, y float64) {
	bx, by := t.pt(cx, cy)
	ax, ay := t.pt(x, y)
	t.ras.QuadTo(bx, by, ax, ay)
}

func (t *Target) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	bx, by := t.pt(c1x, c1y)
	cx, cy := t.pt(c2x, c2y)
	dx, dy := t.pt(x, y)
	t.ras.CubeTo(bx, by, cx, cy, dx, dy)
}

func (t *Target) ClosePath() {
	t.ras.ClosePath()
}

// ClearPath discards everything rasterized so far.
func (t *Target) ClearPath() {
	t.ras.Reset(t.w, t.h)
}

func (t *Target) Push() {
	t.stack = append(t.stack, t.aff)
}

// Pop restores the transform saved by the matching Push. Unbalanced calls
// are ignored.
func (t *Target) Pop() {
	if len(t.stack) == 0 {
		return
	}
	t.aff = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
}

func (t *Target) Translate(x, y float64) {
	t.aff = t.aff.PreTranslate(toothgeom.Vec(x, y))
}

func (t *Target) Scale(x, y float64) {
	t.aff = t.aff.PreScale(x, y)
}

// Transform post-multiplies the current transform by aff, like Translate
// and Scale do.
func (t *Target) Transform(aff toothgeom.Affine) {
	t.aff = t.aff.Mul(aff)
}

// Mask returns the coverage of the rasterized path.
func (t *Target) Mask() *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, t.w, t.h))
	t.ras.DrawOp = draw.Src
	t.ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Mask renders one surface of a tooth as a w×h coverage mask using e. A
// surface that is not drawn for the tooth and view yields a blank mask.
func Mask(e *toothgeom.Engine, tooth toothgeom.ToothNumber, view string, surface toothgeom.Surface, w, h int) (*image.Alpha, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySize, w, h)
	}
	t := NewTarget(w, h)
	e.DrawToothSurface(t, tooth, view, surface, toothgeom.Sz(float64(w), float64(h)))
	return t.Mask(), nil
}
