package toothgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeView(t *testing.T) {
	tests := map[string]View{
		"topview":         ViewTop,
		"TopView":         ViewTop,
		"occlusal":        ViewTop,
		"Occlusal":        ViewTop,
		"incisal":         ViewTop,
		"TOP":             ViewTop,
		"frontal":         ViewFrontal,
		"BUCCAL":          ViewFrontal,
		"lingual":         ViewFrontal,
		"outside":         ViewFrontal,
		"":                ViewFrontal,
		"unknown-garbage": ViewFrontal,
		" top":            ViewFrontal,
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeView(in), "NormalizeView(%q)", in)
	}
	assert.Equal(t, "top", ViewTop.String())
	assert.Equal(t, "frontal", ViewFrontal.String())
}
