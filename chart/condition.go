// Package chart paints findings onto tooth surfaces with github.com/gogpu/gg.
package chart

import (
	"github.com/dentchart/toothgeom"
)

// Material is a restoration material.
type Material string

const (
	Composite   Material = "composite"
	Ceramic     Material = "ceramic"
	Gold        Material = "gold"
	NonPrecious Material = "non-precious"
)

var materialColors = map[Material]string{
	Composite:   "#3B82F6",
	Ceramic:     "#E5E7EB",
	Gold:        "#F59E0B",
	NonPrecious: "#4B5563",
}

const (
	// DecayColor marks carious surfaces.
	DecayColor = "#EF4444"
	// DefaultOpacity is used for conditions that do not set one.
	DefaultOpacity = 0.8
)

// MaterialColor returns the fill color of a material. Unknown materials are
// drawn like composite.
func MaterialColor(m Material) string {
	if c, ok := materialColors[m]; ok {
		return c
	}
	return materialColors[Composite]
}

// Condition is one colored surface of a tooth.
type Condition struct {
	Surface toothgeom.Surface
	// Color is a hex color such as "#EF4444".
	Color string
	// Opacity in [0, 1]. Zero selects DefaultOpacity.
	Opacity float64
}

// Filling is a restoration covering one or more zones of a tooth.
type Filling struct {
	Material Material
	Zones    []toothgeom.Surface
}

// Decay is a carious lesion covering one or more zones of a tooth.
type Decay struct {
	Zones []toothgeom.Surface
}

// Findings are the recorded restorations and pathologies of one tooth.
type Findings struct {
	Fillings []Filling
	Decay    []Decay
}

// zoneCodes maps the zones of a chart entry onto the letter code of the
// surface that is painted for it. Cervical zones fall onto their side and
// cusps onto the occlusal surface.
var zoneCodes = map[toothgeom.Surface]string{
	toothgeom.SurfaceOcclusal:         "O",
	toothgeom.SurfaceMesial:           "M",
	toothgeom.SurfaceDistal:           "D",
	toothgeom.SurfaceBuccal:           "B",
	toothgeom.SurfacePalatal:          "L",
	toothgeom.SurfaceCervicalBuccal:   "B",
	toothgeom.SurfaceCervicalPalatal:  "L",
	toothgeom.SurfaceMesioBuccalCusp:  "O",
	toothgeom.SurfaceDistoBuccalCusp:  "O",
	toothgeom.SurfaceMesioPalatalCusp: "O",
	toothgeom.SurfaceDistoPalatalCusp: "O",
}

// Conditions turns findings into the conditions to paint, fillings first.
// Zones without a paintable surface are dropped.
func Conditions(f Findings) []Condition {
	var conds []Condition
	add := func(zones []toothgeom.Surface, color string) {
		for _, z := range zones {
			code, ok := zoneCodes[z]
			if !ok {
				continue
			}
			conds = append(conds, Condition{
				Surface: toothgeom.ParseSurface(code),
				Color:   color,
				Opacity: DefaultOpacity,
			})
		}
	}
	for _, fl := range f.Fillings {
		add(fl.Zones, MaterialColor(fl.Material))
	}
	for _, d := range f.Decay {
		add(d.Zones, DecayColor)
	}
	return conds
}
