package blend

import "github.com/gogpu/color/internal/num"

// Pixel is a straight-alpha color with unit-scaled channels.
type Pixel[F num.Float] struct {
	R, G, B, A F
}

// fastAlphaFloor keeps the fast path from dividing by a vanishing alpha.
const fastAlphaFloor = 1e-6

// Over composites src over dst.
//
// Formula:
//
//	A_out = Sa + Da*(1 - Sa)
//	C_out = (Sc*Sa + Dc*Da*(1 - Sa)) / A_out
//
// A zero output alpha yields transparent black.
func Over[F num.Float](src, dst Pixel[F]) Pixel[F] {
	invSa := 1 - src.A
	outA := src.A + dst.A*invSa
	if !(outA > 0) {
		return Pixel[F]{}
	}
	return Pixel[F]{
		R: (src.R*src.A + dst.R*dst.A*invSa) / outA,
		G: (src.G*src.A + dst.G*dst.A*invSa) / outA,
		B: (src.B*src.A + dst.B*dst.A*invSa) / outA,
		A: outA,
	}
}

// OverFast is Over with the output alpha denominator floored at a small
// epsilon instead of special-casing zero. Intended for gamma-encoded
// channels where speed matters more than accuracy.
func OverFast[F num.Float](src, dst Pixel[F]) Pixel[F] {
	invSa := 1 - src.A
	outA := src.A + dst.A*invSa
	den := max(outA, fastAlphaFloor)
	return Pixel[F]{
		R: (src.R*src.A + dst.R*dst.A*invSa) / den,
		G: (src.G*src.A + dst.G*dst.A*invSa) / den,
		B: (src.B*src.A + dst.B*dst.A*invSa) / den,
		A: outA,
	}
}

// Separable composites src over dst using blend mode m.
//
// The blended channel is combined with Porter-Duff alpha in premultiplied
// form and then unpremultiplied:
//
//	A_out   = Sa + Da - Sa*Da
//	C_out*A = Dc*Da*(1 - Sa) + Sc*Sa*(1 - Da) + Sa*Da*B(Sc, Dc)
//
// A zero output alpha yields transparent black.
func Separable[F num.Float](m Mode, src, dst Pixel[F]) Pixel[F] {
	sa, da := src.A, dst.A
	outA := sa + da - sa*da
	if !(outA > 0) {
		return Pixel[F]{}
	}

	ps, pd := Premultiply(src), Premultiply(dst)
	saDa := sa * da
	mix := func(psc, pdc, s, d F) F {
		return pdc*(1-sa) + psc*(1-da) + saDa*Channel(m, s, d)
	}

	return Unpremultiply(Pixel[F]{
		R: mix(ps.R, pd.R, src.R, dst.R),
		G: mix(ps.G, pd.G, src.G, dst.G),
		B: mix(ps.B, pd.B, src.B, dst.B),
		A: outA,
	})
}

// Premultiply returns p with RGB scaled by alpha.
func Premultiply[F num.Float](p Pixel[F]) Pixel[F] {
	return Pixel[F]{R: p.R * p.A, G: p.G * p.A, B: p.B * p.A, A: p.A}
}

// Unpremultiply reverses Premultiply. Zero alpha yields transparent black.
func Unpremultiply[F num.Float](p Pixel[F]) Pixel[F] {
	if p.A == 0 {
		return Pixel[F]{}
	}
	return Pixel[F]{R: p.R / p.A, G: p.G / p.A, B: p.B / p.A, A: p.A}
}
