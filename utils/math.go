package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns N evenly spaced points covering [l, u], both ends included
func Linspace(l, u float64, N int) (v []float64) {
	if N < 2 {
		panic("Linspace requires at least two points")
	}
	v = floats.Span(make([]float64, N), l, u)
	return
}

// Geomspace returns N points evenly spaced in log between l and u, both positive
func Geomspace(l, u float64, N int) (v []float64) {
	if N < 2 {
		panic("Geomspace requires at least two points")
	}
	if l <= 0 || u <= 0 {
		panic("Geomspace requires positive limits")
	}
	v = floats.LogSpan(make([]float64, N), l, u)
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}
