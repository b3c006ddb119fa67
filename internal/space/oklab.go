package space

import "github.com/gogpu/color/internal/num"

// GamutSearchIterations is the number of chroma bisection steps used by
// OKLCHToLinearInGamut. 24 halvings give ~1e-7 relative precision.
const GamutSearchIterations = 24

// LinearToOKLab converts linear sRGB to OKLab (L, a, b).
//
// M1 maps linear RGB to an LMS-like cone response, the cube root applies the
// perceptual nonlinearity, and M2 maps the result to Lab.
func LinearToOKLab[F num.Float](r, g, b F) (L, A, B F) {
	// M1: linear RGB → LMS
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := num.Cbrt(l)
	mp := num.Cbrt(m)
	sp := num.Cbrt(s)

	// M2: LMS' → Lab
	L = 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp
	A = 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp
	B = 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp
	return L, A, B
}

// OKLabToLinear converts OKLab to linear sRGB. The result is not clamped
// and may fall outside [0,1] for colors outside the sRGB gamut.
func OKLabToLinear[F num.Float](L, A, B F) (r, g, b F) {
	// Inverse M2: Lab → LMS'
	lp := L + 0.3963377774*A + 0.2158037573*B
	mp := L - 0.1055613458*A - 0.0638541728*B
	sp := L - 0.0894841775*A - 1.2914855480*B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	// Inverse M1: LMS → linear RGB
	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, b
}

// OKLabToOKLCH converts OKLab to its cylindrical form. Hue is in [0,360).
func OKLabToOKLCH[F num.Float](L, A, B F) (l, c, h F) {
	c = num.Sqrt(A*A + B*B)
	h = num.Degrees(num.Atan2(B, A))
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return L, c, h
}

// OKLCHToOKLab converts OKLCH (hue in degrees) to OKLab.
func OKLCHToOKLab[F num.Float](l, c, h F) (L, A, B F) {
	sin, cos := num.Sincos(num.Radians(h))
	return l, c * cos, c * sin
}

// InGamut reports whether linear RGB lies inside the [0,1]³ cube, allowing
// num.Epsilon of rounding slack on every face. Callers clamp the result.
func InGamut[F num.Float](r, g, b F) bool {
	lo, hi := -num.Epsilon[F](), 1+num.Epsilon[F]()
	return r >= lo && r <= hi && g >= lo && g <= hi && b >= lo && b <= hi
}

// OKLCHToLinear converts OKLCH to unclamped linear sRGB.
func OKLCHToLinear[F num.Float](l, c, h F) (r, g, b F) {
	L, A, B := OKLCHToOKLab(l, c, h)
	return OKLabToLinear(L, A, B)
}

// OKLCHToLinearInGamut converts OKLCH to linear sRGB, reducing chroma at
// fixed L and H until the result lies inside the sRGB cube.
//
// The search bisects chroma in [0, c]; the lower bound is always in gamut
// for L in [0,1], so the accepted chroma only ever grows. Returns the linear
// color and the chroma that produced it. Negative chroma is treated as 0.
func OKLCHToLinearInGamut[F num.Float](l, c, h F) (r, g, b, chroma F) {
	c = max(c, 0)
	r, g, b = OKLCHToLinear(l, c, h)
	if InGamut(r, g, b) {
		return r, g, b, c
	}

	var lo F
	hi := c
	for range GamutSearchIterations {
		mid := 0.5 * (lo + hi)
		tr, tg, tb := OKLCHToLinear(l, mid, h)
		if InGamut(tr, tg, tb) {
			lo = mid
		} else {
			hi = mid
		}
	}

	r, g, b = OKLCHToLinear(l, lo, h)
	return r, g, b, lo
}
