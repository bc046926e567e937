package toothgeom

import (
	"math"
	"strings"
)

// Orient describes how artwork drawn for one side of the mouth is turned to
// show a particular tooth.
type Orient struct {
	// Flip mirrors the drawing horizontally.
	Flip bool `yaml:"flip"`
	// Rotate turns the drawing by 180 degrees about its center.
	Rotate bool `yaml:"rotate"`
	// FlipVertical mirrors the drawing vertically. It is set for the lingual
	// view of upper teeth and is not part of the table.
	FlipVertical bool `yaml:"-"`
}

// Transform returns the map from artwork to target space for a target of the
// given size. Rotation is applied last: a point is first mirrored, then
// rotated.
func (o Orient) Transform(size Size) Affine {
	aff := Identity
	if o.Rotate {
		aff = RotateAbout(math.Pi, Point{size.Width / 2, size.Height / 2})
	}
	if o.Flip {
		aff = aff.Mul(Translate(Vec(size.Width, 0))).Mul(FlipX)
	}
	if o.FlipVertical {
		aff = aff.Mul(Translate(Vec(0, size.Height))).Mul(FlipY)
	}
	return aff
}

// IsIdentity reports whether o leaves the drawing as it is.
func (o Orient) IsIdentity() bool {
	return !o.Flip && !o.Rotate && !o.FlipVertical
}

// OrientGroup holds the orientation of one quadrant for each side it can be
// seen from.
type OrientGroup struct {
	// Inside is the lingual view.
	Inside Orient `yaml:"inside"`
	// Topview is the occlusal view.
	Topview Orient `yaml:"topview"`
	// Outside is the frontal view.
	Outside Orient `yaml:"outside"`
}

// OrientationTable maps permanent quadrants 1 to 4 to their orientation.
type OrientationTable map[int]OrientGroup

// FallbackOrient is used for teeth outside the table.
var FallbackOrient = Orient{Flip: true}

// DefaultOrientation is the table the chart renderer uses unless configured
// otherwise.
var DefaultOrientation = OrientationTable{
	1: {
		Inside:  Orient{Flip: true},
		Topview: Orient{Flip: true},
		Outside: Orient{Flip: true},
	},
	2: {
		Inside:  Orient{Flip: true},
		Topview: Orient{},
		Outside: Orient{Flip: true},
	},
	3: {
		Inside:  Orient{},
		Topview: Orient{},
		Outside: Orient{Flip: true, Rotate: true},
	},
	4: {
		Inside:  Orient{},
		Topview: Orient{},
		Outside: Orient{Flip: true, Rotate: true},
	},
}

// Lookup returns the orientation of tooth in the given view. "frontal" uses
// the outside entry, "lingual" the inside entry and every other view the
// topview entry. Teeth outside quadrants 1 to 4, or outside positions 1 to 8,
// get FallbackOrient.
func (tab OrientationTable) Lookup(tooth ToothNumber, view string) Orient {
	view = strings.ToLower(view)
	var o Orient
	g, ok := tab[tooth.Quadrant()]
	if p := tooth.Position(); !ok || p < 1 || p > 8 {
		o = FallbackOrient
	} else {
		switch view {
		case "frontal":
			o = g.Outside
		case "lingual":
			o = g.Inside
		default:
			o = g.Topview
		}
	}
	if tooth.IsUpperJaw() && view == "lingual" {
		o.FlipVertical = true
	}
	return o
}

// Orientation looks tooth up in DefaultOrientation.
func Orientation(tooth ToothNumber, view string) Orient {
	return DefaultOrientation.Lookup(tooth, view)
}
