package toothgeom

// HitTest reports which surface of a tooth drawn at the given size lies
// under pt, in target space. Surfaces are considered in paint order, so when
// outlines overlap the one painted last wins. With no surfaces given, the
// generator's PaintOrder is used, so a point inside a cusp or band reports
// that surface rather than the tooth body around it.
func (e *Engine) HitTest(tooth ToothNumber, view string, size Size, pt Point, surfaces ...Surface) (Surface, bool) {
	if len(surfaces) == 0 {
		surfaces = GeneratorFor(Classify(tooth), NormalizeView(view)).PaintOrder()
	}
	for i := len(surfaces) - 1; i >= 0; i-- {
		p := e.SurfacePath(tooth, view, surfaces[i], size)
		if p.IsEmpty() {
			continue
		}
		if !p.BoundingBox().Inflate(1, 1).Contains(pt) {
			continue
		}
		if p.Contains(pt) {
			return surfaces[i], true
		}
	}
	return "", false
}

// HitTest calls DefaultEngine.HitTest.
func HitTest(tooth ToothNumber, view string, size Size, pt Point, surfaces ...Surface) (Surface, bool) {
	return DefaultEngine.HitTest(tooth, view, size, pt, surfaces...)
}
