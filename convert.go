package color

import (
	"github.com/gogpu/color/internal/blend"
	"github.com/gogpu/color/internal/num"
	"github.com/gogpu/color/internal/space"
)

// Linear decodes c to linear light as [r, g, b, a]. RGB go through the sRGB
// transfer function; alpha is never gamma-encoded and is returned as a/255.
func (c Color) Linear() [4]Float {
	return [4]Float{
		codec.Decode(c.R),
		codec.Decode(c.G),
		codec.Decode(c.B),
		Float(c.A) / 255,
	}
}

// FromLinear encodes linear light [r, g, b, a] to a Color. Every channel is
// clamped to [0,1] first, so out-of-range input always yields a valid color.
func FromLinear(lin [4]Float) Color {
	return Color{
		R: codec.Encode(lin[0]),
		G: codec.Encode(lin[1]),
		B: codec.Encode(lin[2]),
		A: num.UnitToByte(lin[3]),
	}
}

// linearPixel decodes c for the compositing engine.
func (c Color) linearPixel() blend.Pixel[Float] {
	lin := c.Linear()
	return blend.Pixel[Float]{R: lin[0], G: lin[1], B: lin[2], A: lin[3]}
}

func fromLinearPixel(p blend.Pixel[Float]) Color {
	return FromLinear([4]Float{p.R, p.G, p.B, p.A})
}

// unitPixel scales c to [0,1] without linearizing.
func (c Color) unitPixel() blend.Pixel[Float] {
	return blend.Pixel[Float]{
		R: Float(c.R) / 255,
		G: Float(c.G) / 255,
		B: Float(c.B) / 255,
		A: Float(c.A) / 255,
	}
}

func fromUnitPixel(p blend.Pixel[Float]) Color {
	return Color{
		R: num.UnitToByte(p.R),
		G: num.UnitToByte(p.G),
		B: num.UnitToByte(p.B),
		A: num.UnitToByte(p.A),
	}
}

// FromHSL creates an opaque color from [h, s, l]: hue in degrees (wrapped
// to [0,360)), saturation and lightness as fractions clamped to [0,1].
func FromHSL(hsl [3]Float) Color {
	return FromHSLA([4]Float{hsl[0], hsl[1], hsl[2], 1})
}

// FromHSLA creates a color from [h, s, l, a] with alpha as a [0,1] fraction.
func FromHSLA(hsla [4]Float) Color {
	r, g, b := space.HSLToRGB(hsla[0], num.Clamp01(hsla[1]), num.Clamp01(hsla[2]))
	return Color{
		R: num.UnitToByte(r),
		G: num.UnitToByte(g),
		B: num.UnitToByte(b),
		A: num.UnitToByte(hsla[3]),
	}
}

// HSL returns [h, s, l]: hue in [0,360), saturation and lightness in [0,1].
// Hue is 0 for grays.
func (c Color) HSL() [3]Float {
	h, s, l := space.RGBToHSL(Float(c.R)/255, Float(c.G)/255, Float(c.B)/255)
	return [3]Float{h, s, l}
}

// HSLA returns [h, s, l, a] with alpha as a [0,1] fraction.
func (c Color) HSLA() [4]Float {
	hsl := c.HSL()
	return [4]Float{hsl[0], hsl[1], hsl[2], Float(c.A) / 255}
}

// OKLab returns the OKLab coordinates [L, a, b] of c. Alpha is ignored.
func (c Color) OKLab() [3]Float {
	lin := c.Linear()
	L, a, b := space.LinearToOKLab(lin[0], lin[1], lin[2])
	return [3]Float{L, a, b}
}

// FromOKLab creates an opaque color from OKLab [L, a, b]. Linear channels
// outside [0,1] are clamped; use FromOKLCH for hue-preserving gamut mapping.
func FromOKLab(lab [3]Float) Color {
	r, g, b := space.OKLabToLinear(lab[0], lab[1], lab[2])
	return FromLinear([4]Float{r, g, b, 1})
}

// OKLCH returns the OKLCH coordinates [L, C, H] of c, hue in degrees.
func (c Color) OKLCH() [3]Float {
	return OKLabToOKLCH(c.OKLab())
}

// FromOKLCH creates an opaque color from OKLCH [L, C, H].
//
// Colors outside the sRGB gamut are mapped into it by reducing chroma at
// fixed lightness and hue, so the result is always a valid color, possibly
// less saturated than requested.
func FromOKLCH(lch [3]Float) Color {
	r, g, b, _ := space.OKLCHToLinearInGamut(lch[0], lch[1], lch[2])
	return FromLinear([4]Float{r, g, b, 1})
}

// OKLabToOKLCH converts OKLab [L, a, b] to OKLCH [L, C, H].
func OKLabToOKLCH(lab [3]Float) [3]Float {
	l, c, h := space.OKLabToOKLCH(lab[0], lab[1], lab[2])
	return [3]Float{l, c, h}
}

// OKLCHToOKLab converts OKLCH [L, C, H] to OKLab [L, a, b].
func OKLCHToOKLab(lch [3]Float) [3]Float {
	L, a, b := space.OKLCHToOKLab(lch[0], lch[1], lch[2])
	return [3]Float{L, a, b}
}
