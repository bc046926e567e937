package chart

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"

	"github.com/dentchart/toothgeom"
	"github.com/dentchart/toothgeom/config"
)

var _ toothgeom.Target = (*gg.Context)(nil)

// OutlineColor is the stroke color of the tooth outline.
const OutlineColor = "#9CA3AF"

// Renderer paints conditions into tooth cells of a gg context. A Renderer is
// not tied to a context and may be shared between goroutines that each draw
// into their own context.
type Renderer struct {
	Engine      *toothgeom.Engine
	Orientation toothgeom.OrientationTable
	// Cell is the size of one tooth cell.
	Cell toothgeom.Size
	// Gap separates neighbouring cells of a row.
	Gap float64
	// Outline strokes the whole tooth after the conditions are painted.
	Outline bool
}

// NewRenderer returns a renderer for cells of the given size, configured by
// cfg. A nil cfg selects the defaults.
func NewRenderer(cfg *config.Config, cell toothgeom.Size) *Renderer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Renderer{
		Engine:      cfg.Engine(),
		Orientation: cfg.OrientationTable(),
		Cell:        cell,
		Outline:     true,
	}
}

// matrix converts aff to the row-major layout gg uses.
func matrix(aff toothgeom.Affine) gg.Matrix {
	c := aff.Coefficients()
	return gg.Matrix{
		A: c[0], B: c[2], C: c[4],
		D: c[1], E: c[3], F: c[5],
	}
}

// DrawTooth paints conds into the cell whose top-left corner is origin.
// The artwork is oriented for tooth and view with r.Orientation.
func (r *Renderer) DrawTooth(dc *gg.Context, origin toothgeom.Point, tooth toothgeom.ToothNumber, view string, conds []Condition) error {
	orient := r.Orientation.Lookup(tooth, view)

	dc.Push()
	defer dc.Pop()
	dc.Translate(origin.X, origin.Y)
	if !orient.IsIdentity() {
		dc.Transform(matrix(orient.Transform(r.Cell)))
	}

	for _, c := range conds {
		if !r.supports(tooth, view, c.Surface) {
			toothgeom.Logger().Debug("toothgeom: condition not drawn",
				slog.Int("tooth", int(tooth)),
				slog.String("view", view),
				slog.String("surface", string(c.Surface)))
			continue
		}
		r.Engine.DrawToothSurface(dc, tooth, view, c.Surface, r.Cell)
		col := gg.Hex(c.Color)
		opacity := c.Opacity
		if !(opacity > 0) {
			opacity = DefaultOpacity
		}
		dc.SetRGBA(col.R, col.G, col.B, opacity)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("failed to fill %s of tooth %s: %w", c.Surface, tooth, err)
		}
	}

	if r.Outline && r.supports(tooth, view, toothgeom.SurfaceWhole) {
		r.Engine.DrawToothSurface(dc, tooth, view, toothgeom.SurfaceWhole, r.Cell)
		dc.SetHexColor(OutlineColor)
		dc.SetLineWidth(1)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("failed to outline tooth %s: %w", tooth, err)
		}
	}
	return nil
}

func (r *Renderer) supports(tooth toothgeom.ToothNumber, view string, s toothgeom.Surface) bool {
	return toothgeom.GeneratorFor(tooth.Category(), toothgeom.NormalizeView(view)).Supports(s)
}

// RowSize returns the size of a row of n cells.
func (r *Renderer) RowSize(n int) toothgeom.Size {
	if n <= 0 {
		return toothgeom.Size{}
	}
	return toothgeom.Sz(float64(n)*r.Cell.Width+float64(n-1)*r.Gap, r.Cell.Height)
}

// CellOrigin returns the top-left corner of cell i of a row starting at
// origin.
func (r *Renderer) CellOrigin(origin toothgeom.Point, i int) toothgeom.Point {
	return origin.Translate(toothgeom.Vec(float64(i)*(r.Cell.Width+r.Gap), 0))
}

// RenderRow draws teeth side by side, starting at origin. conds holds the
// conditions of each tooth; teeth without an entry only get their outline.
func (r *Renderer) RenderRow(dc *gg.Context, origin toothgeom.Point, teeth []toothgeom.ToothNumber, view string, conds map[toothgeom.ToothNumber][]Condition) error {
	for i, tooth := range teeth {
		if err := r.DrawTooth(dc, r.CellOrigin(origin, i), tooth, view, conds[tooth]); err != nil {
			return err
		}
	}
	return nil
}

// HitTest returns the surface of tooth under pt, given in the coordinates of
// the context a cell at origin was drawn into. It undoes the orientation of
// the cell, so it agrees with what DrawTooth painted.
func (r *Renderer) HitTest(origin toothgeom.Point, tooth toothgeom.ToothNumber, view string, pt toothgeom.Point, surfaces ...toothgeom.Surface) (toothgeom.Surface, bool) {
	orient := r.Orientation.Lookup(tooth, view)
	local := pt.Translate(toothgeom.Point{}.Sub(origin))
	local = local.Transform(orient.Transform(r.Cell).Invert())
	return r.Engine.HitTest(tooth, view, r.Cell, local, surfaces...)
}
