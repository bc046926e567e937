package toothgeom

import (
	"log/slog"
	"maps"
	"slices"
)

// Generator draws the surfaces of one tooth category in one view. Recipes
// are authored in Frame and stretched onto the requested size.
type Generator struct {
	Name    string
	Frame   Size
	Recipes map[Surface]Recipe
	// Order lists each distinct outline once, broad surfaces first, in the
	// order a chart paints them.
	Order []Surface
}

// Generate returns the outline of surface for a target of the given size,
// before any inset is applied. Surfaces without a recipe yield a nil path.
func (g *Generator) Generate(surface Surface, size Size, tolerance float64) BezPath {
	r, ok := g.Recipes[surface]
	if !ok {
		Logger().Debug("toothgeom: no recipe for surface",
			slog.String("generator", g.Name),
			slog.String("surface", string(surface)))
		return nil
	}
	return r.Build(g.Frame.ScaleTo(size), tolerance)
}

// Supports reports whether the generator has a recipe for surface.
func (g *Generator) Supports(surface Surface) bool {
	_, ok := g.Recipes[surface]
	return ok
}

// Surfaces returns the supported surfaces in lexical order.
func (g *Generator) Surfaces() []Surface {
	return slices.Sorted(maps.Keys(g.Recipes))
}

// PaintOrder returns a copy of Order. Where outlines overlap, later
// surfaces cover earlier ones, so the body of the tooth comes first and
// small markers last.
func (g *Generator) PaintOrder() []Surface {
	return slices.Clone(g.Order)
}

// alias registers the recipe of surface under each of the other names.
func (g *Generator) alias(surface Surface, names ...Surface) {
	for _, n := range names {
		g.Recipes[n] = g.Recipes[surface]
	}
}

// GeneratorFor returns the generator used for a category and view. Unknown
// categories are drawn as molars.
func GeneratorFor(c Category, v View) *Generator {
	switch c {
	case Anterior:
		if v == ViewTop {
			return anteriorTop
		}
		return anteriorFrontal
	case Premolar:
		if v == ViewTop {
			return premolarTop()
		}
		return premolarFrontal()
	default:
		if v == ViewTop {
			return molarTop
		}
		return molarFrontal
	}
}
