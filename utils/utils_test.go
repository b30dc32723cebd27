package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOW(t *testing.T) {
	for p := -10; p <= 10; p++ {
		assert.InEpsilon(t, math.Pow(1.7, float64(p)), POW(1.7, p), 1e-14)
	}
	assert.Equal(t, 1., POW(0.3, 0))
}

func TestSpans(t *testing.T) {
	v := Linspace(0, 1, 5)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, v)
	g := Geomspace(1, 1000, 4)
	assert.Len(t, g, 4)
	assert.InEpsilon(t, 10., g[1], 1e-12)
	assert.InEpsilon(t, 1000., g[3], 1e-12)
	assert.Panics(t, func() { Linspace(0, 1, 1) })
	assert.Panics(t, func() { Geomspace(0, 1, 3) })
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite([]float64{0, -1, 1e300}))
	assert.False(t, IsFinite([]float64{0, math.NaN()}))
	assert.False(t, IsFinite([]float64{math.Inf(-1)}))
	assert.Contains(t, GetMemUsage(), "Alloc")
}
