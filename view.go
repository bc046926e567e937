package toothgeom

import "strings"

// View is the angle a tooth is drawn from. Every view string a caller may use
// collapses into one of two buckets.
type View int

const (
	// ViewFrontal looks at the side of the crown. It is the default for
	// unrecognized view strings.
	ViewFrontal View = iota
	// ViewTop looks down on the chewing or incisal surface.
	ViewTop
)

func (v View) String() string {
	if v == ViewTop {
		return "top"
	}
	return "frontal"
}

// NormalizeView maps a caller's view name onto a View. "topview",
// "occlusal", "incisal" and "top" in any letter case select ViewTop; every
// other string, including "buccal", "lingual" and the empty string, selects
// ViewFrontal.
func NormalizeView(s string) View {
	switch strings.ToLower(s) {
	case "topview", "occlusal", "incisal", "top":
		return ViewTop
	default:
		return ViewFrontal
	}
}
