package toothgeom

// Premolars are drawn with the molar generators until they get outlines of
// their own.

func premolarTop() *Generator { return molarTop }

func premolarFrontal() *Generator { return molarFrontal }
