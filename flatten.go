package toothgeom

import (
	"iter"
	"math"
	"slices"
)

// DefaultTolerance is the flattening tolerance used where callers don't pick
// one, in output units.
const DefaultTolerance = 0.1

// Flatten approximates the path elements in seq with lines.
//
// The tolerance bounds the distance between a curve and its polyline; a
// non-positive value selects DefaultTolerance. The number of segments grows
// with the inverse square root of the tolerance.
//
// Quadratics are subdivided as in [Flattening quadratic Béziers]. Cubics are
// first split into quadratics, and the subdivision points are spread over
// all of them, without including their endpoints.
//
// A curve following a ClosePath starts at the start of the closed subpath.
//
// [Flattening quadratic Béziers]: https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
func Flatten(seq iter.Seq[PathElement], tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		// Share of the tolerance spent on turning cubics into quadratics.
		const toQuadTol = 0.1

		if !(tolerance > 0) {
			tolerance = DefaultTolerance
		}
		sqrtTol := math.Sqrt(tolerance)
		type subdivided struct {
			q      QuadBez
			params flattenParams
		}
		var (
			last, start Point
			quads       []subdivided
		)
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				last, start = el.P0, el.P0
				if !yield(el) {
					return
				}
			case LineToKind:
				last = el.P0
				if !yield(el) {
					return
				}
			case QuadToKind:
				q := QuadBez{last, el.P0, el.P1}
				params := q.estimateSubdiv(sqrtTol)
				n := max(int(math.Ceil(0.5*params.val/sqrtTol)), 1)
				step := 1.0 / float64(n)
				for i := 1; i < n; i++ {
					t := q.determineSubdivT(&params, float64(i)*step)
					if !yield(LineTo(q.Eval(t))) {
						return
					}
				}
				last = el.P1
				if !yield(LineTo(last)) {
					return
				}
			case CubicToKind:
				c := CubicBez{last, el.P0, el.P1, el.P2}
				quads = quads[:0]
				sqrtRemainTol := sqrtTol * math.Sqrt(1.0-toQuadTol)
				sum := 0.0
				for q := range c.Quadratics(tolerance * toQuadTol) {
					params := q.estimateSubdiv(sqrtRemainTol)
					sum += params.val
					quads = append(quads, subdivided{q, params})
				}
				n := max(int(math.Ceil(0.5*sum/sqrtRemainTol)), 1)

				step := sum / float64(n)
				i := 1
				valSum := 0.0
				for _, s := range quads {
					// Emit the interior points that fall within this quadratic.
					for i < n {
						target := float64(i) * step
						if target >= valSum+s.params.val {
							break
						}
						u := (target - valSum) / s.params.val
						t := s.q.determineSubdivT(&s.params, u)
						if !yield(LineTo(s.q.Eval(t))) {
							return
						}
						i++
					}
					valSum += s.params.val
				}
				last = el.P2
				if !yield(LineTo(last)) {
					return
				}
			case ClosePathKind:
				last = start
				if !yield(el) {
					return
				}
			}
		}
	}
}

// Flatten approximates the path with lines.
func (p BezPath) Flatten(tolerance float64) iter.Seq[PathElement] {
	return Flatten(p.Elements(), tolerance)
}

// Winding returns the winding number of pt with respect to the path. Every
// subpath is treated as closed, whether or not it ends with a ClosePath.
func (p BezPath) Winding(pt Point) int {
	var (
		n           int
		start, last Point
		open        bool
	)
	edge := func(a, b Point) {
		switch {
		case a.Y <= pt.Y && b.Y > pt.Y:
			if isLeft(a, b, pt) > 0 {
				n++
			}
		case a.Y > pt.Y && b.Y <= pt.Y:
			if isLeft(a, b, pt) < 0 {
				n--
			}
		}
	}
	for el := range p.Flatten(DefaultTolerance) {
		switch el.Kind {
		case MoveToKind:
			if open {
				edge(last, start)
			}
			start, last, open = el.P0, el.P0, true
		case LineToKind:
			edge(last, el.P0)
			last = el.P0
		case ClosePathKind:
			if open {
				edge(last, start)
			}
			last, open = start, false
		}
	}
	if open {
		edge(last, start)
	}
	return n
}

func isLeft(a, b, pt Point) float64 {
	return b.Sub(a).Cross(pt.Sub(a))
}

// Contains implements ClosedShape using the nonzero fill rule, which is the
// rule a canvas fill uses.
func (p BezPath) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// Lines returns the flattened path as a slice.
func (p BezPath) Lines(tolerance float64) BezPath {
	return slices.Collect(p.Flatten(tolerance))
}
