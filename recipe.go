package toothgeom

import (
	"fmt"
	"math"
)

// CommandKind identifies a recipe command.
type CommandKind int

const (
	CmdMoveTo CommandKind = iota + 1
	CmdLineTo
	CmdQuadTo
	CmdCubicTo
	CmdClose
	CmdRect
	CmdRoundedRect
	CmdCircle
	CmdEllipse
	CmdPath
)

func (k CommandKind) String() string {
	switch k {
	case CmdMoveTo:
		return "move"
	case CmdLineTo:
		return "line"
	case CmdQuadTo:
		return "quad"
	case CmdCubicTo:
		return "cubic"
	case CmdClose:
		return "close"
	case CmdRect:
		return "rect"
	case CmdRoundedRect:
		return "rounded-rect"
	case CmdCircle:
		return "circle"
	case CmdEllipse:
		return "ellipse"
	case CmdPath:
		return "path"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is one step of a recipe, in reference-frame units.
//
// Which fields matter depends on Kind:
//   - CmdMoveTo, CmdLineTo: Pts[0]
//   - CmdQuadTo: Pts[0] control, Pts[1] end
//   - CmdCubicTo: Pts[0], Pts[1] controls, Pts[2] end
//   - CmdRect: Rect
//   - CmdRoundedRect: Rect and Radius
//   - CmdCircle: Pts[0] center and Radius
//   - CmdEllipse: Pts[0] center, Radii and Rotation in degrees
//   - CmdPath: Path
//
// Radius scales with the horizontal factor only. Ellipse radii scale per
// axis and the rotation is applied after scaling, about the scaled center.
type Command struct {
	Kind     CommandKind
	Pts      [3]Point
	Rect     Rect
	Radius   float64
	Radii    Vec2
	Rotation float64
	Path     BezPath
}

// Recipe is the declarative outline of one surface.
type Recipe []Command

// Build stretches the recipe by the per-axis factors s and returns it as a
// path. A non-empty result ends with exactly one ClosePath.
func (r Recipe) Build(s Vec2, tolerance float64) BezPath {
	var p BezPath
	for _, c := range r {
		switch c.Kind {
		case CmdMoveTo:
			p.MoveTo(c.Pts[0].Scale(s))
		case CmdLineTo:
			p.LineTo(c.Pts[0].Scale(s))
		case CmdQuadTo:
			p.QuadTo(c.Pts[0].Scale(s), c.Pts[1].Scale(s))
		case CmdCubicTo:
			p.CubicTo(c.Pts[0].Scale(s), c.Pts[1].Scale(s), c.Pts[2].Scale(s))
		case CmdClose:
			p.ClosePath()
		case CmdRect:
			p.Extend(c.Rect.Scale(s).PathElements(tolerance))
		case CmdRoundedRect:
			rr := RoundedRect{Rect: c.Rect.Scale(s), Radius: c.Radius * s.X}
			p.Extend(rr.PathElements(tolerance))
		case CmdCircle:
			circ := Circle{Center: c.Pts[0].Scale(s), Radius: c.Radius * s.X}
			p.Extend(circ.PathElements(tolerance))
		case CmdEllipse:
			e := NewEllipse(
				c.Pts[0].Scale(s),
				Vec(c.Radii.X*s.X, c.Radii.Y*s.Y),
				c.Rotation*math.Pi/180,
			)
			p.Extend(e.PathElements(tolerance))
		case CmdPath:
			p = append(p, c.Path.Transform(Scale(s.X, s.Y))...)
		default:
			panic(fmt.Sprintf("unhandled recipe command %v", c.Kind))
		}
	}
	if len(p) > 0 && !p.IsClosed() {
		p.ClosePath()
	}
	return p
}

func moveTo(x, y float64) Command {
	return Command{Kind: CmdMoveTo, Pts: [3]Point{{x, y}}}
}

func lineTo(x, y float64) Command {
	return Command{Kind: CmdLineTo, Pts: [3]Point{{x, y}}}
}

func cubicTo(x1, y1, x2, y2, x, y float64) Command {
	return Command{Kind: CmdCubicTo, Pts: [3]Point{{x1, y1}, {x2, y2}, {x, y}}}
}

func rect(x, y, w, h float64) Command {
	return Command{Kind: CmdRect, Rect: NewRect(x, y, w, h)}
}

func roundedRect(x, y, w, h, radius float64) Command {
	return Command{Kind: CmdRoundedRect, Rect: NewRect(x, y, w, h), Radius: radius}
}

func circle(cx, cy, r float64) Command {
	return Command{Kind: CmdCircle, Pts: [3]Point{{cx, cy}}, Radius: r}
}

func ellipse(cx, cy, rx, ry, degrees float64) Command {
	return Command{Kind: CmdEllipse, Pts: [3]Point{{cx, cy}}, Radii: Vec(rx, ry), Rotation: degrees}
}

// pathData compiles SVG path data authored in the reference frame.
func pathData(d string) Command {
	return Command{Kind: CmdPath, Path: MustParsePath(d)}
}
