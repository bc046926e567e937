package toothgeom

import "strings"

// Surface names an anatomical area of a tooth. The vocabulary is open: each
// generator supports its own subset and any other name draws nothing.
type Surface string

const (
	SurfaceBuccal           Surface = "buccal"
	SurfacePalatal          Surface = "palatal"
	SurfaceWhole            Surface = "surface"
	SurfaceMidMesial        Surface = "mid_mesial"
	SurfaceClass4Mesial     Surface = "class4_mesial"
	SurfaceMidDistal        Surface = "mid_distal"
	SurfaceClass4Distal     Surface = "class4_distal"
	SurfaceIncisal          Surface = "incisal"
	SurfaceOcclusal         Surface = "occlusal"
	SurfaceMesial           Surface = "mesial"
	SurfaceDistal           Surface = "distal"
	SurfaceCervical         Surface = "cervical"
	SurfaceCervicalBuccal   Surface = "cervical buccal"
	SurfaceCervicalPalatal  Surface = "cervical palatal"
	SurfaceMesioBuccalCusp  Surface = "mesio-buccal cusp"
	SurfaceBuccalCusp       Surface = "buccal cusp"
	SurfaceMesioPalatalCusp Surface = "mesio-palatal cusp"
	SurfacePalatalCusp      Surface = "palatal cusp"
	SurfaceDistoBuccalCusp  Surface = "disto-buccal cusp"
	SurfaceDistoPalatalCusp Surface = "disto-palatal cusp"
	SurfaceBuccalPoint      Surface = "buccal point"
)

// surfaceCodes are the single-letter codes used by restoration notation.
var surfaceCodes = map[string]Surface{
	"o": SurfaceOcclusal,
	"i": SurfaceIncisal,
	"m": SurfaceMesial,
	"d": SurfaceDistal,
	"b": SurfaceBuccal,
	"l": SurfacePalatal,
	"p": SurfacePalatal,
}

var surfaceReplacer = strings.NewReplacer(
	"mesio ", "mesio-",
	"disto ", "disto-",
	"lingual", "palatal",
	"-cusp", " cusp",
	"class 4", "class4",
)

// ParseSurface turns the names used around a dental chart into the
// vocabulary the generators understand. It accepts letter codes such as "O"
// or "M", zone labels such as "Mesio Buccal Cusp" or "Cervical Palatal", and
// ids such as "mesio-buccal-cusp". "Lingual" is read as palatal.
//
// Names it does not know are returned lower-cased and trimmed, so the result
// can always be passed on; unsupported surfaces draw nothing.
func ParseSurface(s string) Surface {
	s = strings.ToLower(strings.TrimSpace(s))
	if sf, ok := surfaceCodes[s]; ok {
		return sf
	}
	s = strings.Join(strings.Fields(s), " ")
	s = surfaceReplacer.Replace(s)
	switch s {
	case "mid mesial", "class4 mesial":
		return SurfaceClass4Mesial
	case "mid distal", "class4 distal":
		return SurfaceClass4Distal
	}
	return Surface(s)
}

// String implements fmt.Stringer.
func (s Surface) String() string { return string(s) }
