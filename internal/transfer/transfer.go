// Package transfer implements the sRGB transfer function (IEC 61966-2-1)
// that relates 8-bit sRGB values to linear light.
//
// Two interchangeable strategies implement [Codec]:
//
//   - [Analytic] evaluates the curve with Pow on every call.
//   - [Table] replaces the Pow calls with lookup tables built once on first
//     use: an exact 256-entry decode table and an N-entry encode table that is
//     linearly interpolated.
//
// Blending must happen in linear space for physically correct results, so
// every compositing operation in the module goes through a Codec.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - GPU Gems 3, Chapter 24: https://developer.nvidia.com/gpugems/gpugems3/part-iv-image-effects/chapter-24-importance-being-linear
package transfer

import "github.com/gogpu/color/internal/num"

// Codec converts between 8-bit sRGB and linear light at precision F.
type Codec[F num.Float] interface {
	// Decode converts an sRGB byte to a linear value in [0,1].
	Decode(v uint8) F
	// Encode converts a linear value to an sRGB byte. Input is clamped to [0,1].
	Encode(x F) uint8
}

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear[F num.Float](s F) F {
	if s <= 0.04045 {
		return s / 12.92
	}
	return num.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB[F num.Float](l F) F {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*num.Pow(l, 1.0/2.4) - 0.055
}

// Decode converts an sRGB byte to linear light.
//
// Example:
//
//	l := Decode[float32](128) // ~0.2159 (not 0.5!)
func Decode[F num.Float](v uint8) F {
	return SRGBToLinear(F(v) / 255)
}

// Encode converts linear light to an sRGB byte: clamp to [0,1], apply the
// OETF, then floor(s*255 + 0.5).
//
// Example:
//
//	s := Encode[float32](0.5) // 188 (not 128!)
func Encode[F num.Float](x F) uint8 {
	return num.UnitToByte(LinearToSRGB(num.Clamp01(x)))
}

// Analytic is the Codec that evaluates the transfer curve on every call.
type Analytic[F num.Float] struct{}

// Decode implements Codec.
func (Analytic[F]) Decode(v uint8) F { return Decode[F](v) }

// Encode implements Codec.
func (Analytic[F]) Encode(x F) uint8 { return Encode(x) }
