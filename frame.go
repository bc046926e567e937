package toothgeom

// Reference frames in which the surface recipes are authored. A recipe is
// stretched onto the target with independent horizontal and vertical factors,
// so the aspect ratio of the frame is not preserved.
var (
	// FrameTop is the occlusal view of anterior teeth.
	FrameTop = Sz(54, 94)
	// FrameFrontal is the side view shared by all categories.
	FrameFrontal = Sz(54, 172)
	// FrameMolarTop is the occlusal view of molars and premolars.
	FrameMolarTop = Sz(670, 708)
)

// DefaultSize is used when neither the caller nor the target provides one.
var DefaultSize = Sz(100, 100)

// Inset shrinks a drawing about the center of its target so that outlines
// stay clear of the edges.
type Inset struct {
	// Scale is the uniform shrink factor.
	Scale float64
	// OffsetX and OffsetY move the shrunk drawing, in target units.
	OffsetX, OffsetY float64
}

// DefaultInset is the inset all generators use unless configured otherwise.
var DefaultInset = Inset{Scale: 0.96}

// Translation returns the offset applied before scaling, which re-centers the
// shrunk drawing inside a target of the given size.
func (in Inset) Translation(size Size) Vec2 {
	return Vec2{
		X: size.Width*(1-in.Scale)/2 + in.OffsetX,
		Y: size.Height*(1-in.Scale)/2 + in.OffsetY,
	}
}

// Transform returns the affine map from recipe output to target space: a
// translation followed by the uniform scale, in canvas order.
func (in Inset) Transform(size Size) Affine {
	return Translate(in.Translation(size)).PreScale(in.Scale, in.Scale)
}
