// Package space implements the cylindrical and perceptual color space
// formulas: HSL over gamma-encoded sRGB, and OKLab/OKLCH over linear light.
//
// All functions are generic over the precision and work on unit-scaled
// channels; byte quantization and alpha handling belong to the caller.
//
// References:
//   - HSL: https://www.w3.org/TR/css-color-3/#hsl-color
//   - OKLab: https://bottosson.github.io/posts/oklab/
package space

import "github.com/gogpu/color/internal/num"

// deltaEpsilon snaps near-zero chroma spans to exactly zero so saturation
// does not pick up sign noise from floating error.
const deltaEpsilon = 1e-8

// HSLToRGB converts hue (degrees, any value), saturation and lightness
// (fractions in [0,1]) to unit sRGB channels.
//
// Hue is wrapped to [0,360) and matched against six half-open 60° sectors.
func HSLToRGB[F num.Float](h, s, l F) (r, g, b F) {
	h = num.RemEuclid(h, 360)

	c := (1 - num.Abs(2*l-1)) * s
	x := c * (1 - num.Abs(num.Mod(h/60, 2)-1))
	m := l - c/2

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}

// RGBToHSL converts unit sRGB channels to hue in [0,360), saturation and
// lightness. Hue is 0 for achromatic input.
func RGBToHSL[F num.Float](r, g, b F) (h, s, l F) {
	cmax := max(r, g, b)
	cmin := min(r, g, b)

	delta := cmax - cmin
	if num.Abs(delta) < deltaEpsilon {
		delta = 0
	}

	if delta != 0 {
		switch cmax {
		case r:
			h = 60 * num.RemEuclid((g-b)/delta, 6)
		case g:
			h = 60 * ((b-r)/delta + 2)
		default:
			h = 60 * ((r-g)/delta + 4)
		}
	}

	l = (cmax + cmin) / 2

	if delta != 0 {
		s = delta / (1 - num.Abs(2*l-1))
	}
	return h, s, l
}
