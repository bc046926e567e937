package raster

import (
	"fmt"
	"image"

	"github.com/dentchart/toothgeom"
)

// HitMap labels each pixel of a tooth cell with the topmost surface covering
// it.
type HitMap struct {
	// Surfaces in paint order. Label i+1 stands for Surfaces[i], 0 for none.
	Surfaces []toothgeom.Surface
	Labels   *image.Gray
}

// coverageThreshold is the minimum alpha for a pixel to count as covered.
const coverageThreshold = 0x80

// NewHitMap rasterizes surfaces in paint order; later surfaces win where
// they overlap earlier ones. With no surfaces the generator's paint order
// is used.
func NewHitMap(e *toothgeom.Engine, tooth toothgeom.ToothNumber, view string, w, h int, surfaces ...toothgeom.Surface) (*HitMap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptySize, w, h)
	}
	if len(surfaces) == 0 {
		g := toothgeom.GeneratorFor(toothgeom.Classify(tooth), toothgeom.NormalizeView(view))
		surfaces = g.PaintOrder()
	}
	if len(surfaces) > 255 {
		return nil, fmt.Errorf("too many surfaces for a hit map: %d", len(surfaces))
	}

	hm := &HitMap{
		Surfaces: surfaces,
		Labels:   image.NewGray(image.Rect(0, 0, w, h)),
	}
	for i, s := range surfaces {
		m, err := Mask(e, tooth, view, s, w, h)
		if err != nil {
			return nil, err
		}
		for j, a := range m.Pix {
			if a >= coverageThreshold {
				hm.Labels.Pix[j] = uint8(i + 1)
			}
		}
	}
	return hm, nil
}

// At returns the surface at pixel (x, y).
func (hm *HitMap) At(x, y int) (toothgeom.Surface, bool) {
	if !(image.Point{x, y}.In(hm.Labels.Rect)) {
		return "", false
	}
	l := hm.Labels.GrayAt(x, y).Y
	if l == 0 {
		return "", false
	}
	return hm.Surfaces[l-1], true
}
