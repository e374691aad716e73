package render

import (
	"math"

	"github.com/opd-ai/moviegl/gfx"
)

// BT.601-style conversion constants, full-range-adjusted. The biases
// shift studio-swing plane samples to signed values before the matrix.
const (
	lumaBias   = 16.0 / 256.0
	chromaBias = 128.0 / 256.0
)

// colorMatrix holds the row-major YUV to RGB coefficients.
var colorMatrix = [3][3]float64{
	{1.164, 0.000, 1.596},
	{1.164, -0.391, -0.813},
	{1.164, 2.018, 0.000},
}

// ConvertPixel applies the full color-conversion law to one pixel:
// bias, matrix, the -0.5/+0.5 contrast pivot, and per-channel gamma.
// Inputs are plane samples normalized to [0,1]; outputs are clamped
// RGB in [0,1].
func ConvertPixel(y, u, v float64, uniforms gfx.Uniforms) (r, g, b float64) {
	r, g, b = fragment(y, u, v, uniforms)
	return clampUnit(r), clampUnit(g), clampUnit(b)
}

// fragment is the unclamped conversion, in the exact form handed to
// the graphics backend as the fragment program.
func fragment(y, u, v float64, uniforms gfx.Uniforms) (r, g, b float64) {
	yb := y - lumaBias + uniforms.Brightness
	ub := u - chromaBias
	vb := v - chromaBias

	r = colorMatrix[0][0]*yb + colorMatrix[0][1]*ub + colorMatrix[0][2]*vb - 0.5
	g = colorMatrix[1][0]*yb + colorMatrix[1][1]*ub + colorMatrix[1][2]*vb - 0.5
	b = colorMatrix[2][0]*yb + colorMatrix[2][1]*ub + colorMatrix[2][2]*vb - 0.5

	r = r*uniforms.Contrast + 0.5
	g = g*uniforms.Contrast + 0.5
	b = b*uniforms.Contrast + 0.5

	r = math.Pow(clampUnit(r), uniforms.Gamma[0])
	g = math.Pow(clampUnit(g), uniforms.Gamma[1])
	b = math.Pow(clampUnit(b), uniforms.Gamma[2])
	return r, g, b
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
