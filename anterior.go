package toothgeom

// Incisors and canines. The crown body is a rectangle whose incisal side is
// a shallow double curve; class 4 markers are ellipses over the corners.

var anteriorTop = func() *Generator {
	g := &Generator{
		Name:  "anterior/top",
		Frame: FrameTop,
		Recipes: map[Surface]Recipe{
			SurfaceBuccal: {
				moveTo(0, 0),
				lineTo(54, 0),
				lineTo(54, 47),
				cubicTo(54, 47, 38.78, 37.65, 27.5, 37.5),
				cubicTo(15.86, 37.35, 0, 47, 0, 47),
				lineTo(0, 0),
			},
			SurfaceClass4Mesial: {ellipse(6, 46.5, 15, 9.5, 0)},
			SurfaceClass4Distal: {ellipse(51, 46.5, 15, 9.5, 0)},
			SurfaceIncisal:      {rect(0, 37, 54, 19)},
			// Strips along the sides; there is no contact point to mark from
			// above.
			SurfaceMesial: {roundedRect(0, 20, 14, 60, 4)},
			SurfaceDistal: {roundedRect(38, 20, 14, 60, 4)},
		},
	}
	g.alias(SurfaceBuccal, SurfacePalatal, SurfaceWhole)
	g.alias(SurfaceClass4Mesial, SurfaceMidMesial)
	g.alias(SurfaceClass4Distal, SurfaceMidDistal)
	g.alias(SurfaceIncisal, SurfaceOcclusal)
	g.Order = []Surface{
		SurfaceWhole,
		SurfaceIncisal,
		SurfaceMesial,
		SurfaceDistal,
		SurfaceClass4Mesial,
		SurfaceClass4Distal,
	}
	return g
}()

var anteriorFrontal = func() *Generator {
	g := &Generator{
		Name:  "anterior/frontal",
		Frame: FrameFrontal,
		Recipes: map[Surface]Recipe{
			SurfaceBuccal: {
				moveTo(54, 172),
				lineTo(0, 172),
				lineTo(0, 106),
				cubicTo(0, 106, 16.22, 87.79, 27.5, 88),
				cubicTo(39.14, 88.22, 54, 106, 54, 106),
				lineTo(54, 172),
			},
			SurfaceClass4Mesial: {ellipse(5.881, 147.201, 18, 29.5, -10.39)},
			SurfaceClass4Distal: {ellipse(46.655, 148.031, 16.84, 29.5, 8.77)},
			SurfaceIncisal:      {rect(0, 172-13, 54, 13)},
			// Contact points.
			SurfaceMesial:   {circle(0, 142, 11)},
			SurfaceDistal:   {circle(53.5, 141.5, 11.5)},
			SurfaceCervical: cervicalBand,
		},
	}
	g.alias(SurfaceBuccal, SurfacePalatal, SurfaceWhole)
	g.alias(SurfaceClass4Mesial, SurfaceMidMesial)
	g.alias(SurfaceClass4Distal, SurfaceMidDistal)
	g.alias(SurfaceIncisal, SurfaceOcclusal)
	g.alias(SurfaceCervical, SurfaceCervicalBuccal, SurfaceCervicalPalatal)
	g.Order = []Surface{
		SurfaceWhole,
		SurfaceCervical,
		SurfaceIncisal,
		SurfaceClass4Mesial,
		SurfaceClass4Distal,
		SurfaceMesial,
		SurfaceDistal,
	}
	return g
}()

// cervicalBand is the lens-shaped strip along the gum line of a frontal view.
// It hangs from an anchor 70 units above the bottom of the frame.
var cervicalBand = func() Recipe {
	const (
		y      = 172 - 70
		top    = y + 1.9
		bottom = y + 8
		inner  = y + 6.1
	)
	return Recipe{
		moveTo(0, top),
		cubicTo(0, top, 16.4, y, 27, y),
		cubicTo(37.5, y, 54, top, 54, top),
		lineTo(54, bottom),
		cubicTo(54, bottom, 37.5, inner, 27, inner),
		cubicTo(16.4, inner, 0, bottom, 0, bottom),
		lineTo(0, top),
	}
}()
