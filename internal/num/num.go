// Package num provides the floating point capability every color formula
// is written against.
//
// Formulas are generic over [Float] and reach transcendental functions only
// through [Ops], so the same formula body runs at float32 or float64. The
// float32 strategy is backed by github.com/chewxy/math32 so narrow precision
// never round-trips through float64; the float64 strategy uses math.
//
// Conversions between widths are plain Go conversions (F(x), float64(x)) and
// the four arithmetic operators are Go's own, so Ops only carries what the
// language does not provide for a type parameter.
package num

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of concrete precisions a formula can be instantiated at.
type Float interface {
	float32 | float64
}

// Ops is the per-precision arithmetic capability.
type Ops[F Float] interface {
	Pow(x, e F) F
	Cbrt(x F) F
	Sqrt(x F) F
	Abs(x F) F
	Floor(x F) F
	Mod(x, y F) F
	Atan2(y, x F) F
	Sincos(x F) (sin, cos F)
}

// F32 implements Ops for float32.
type F32 struct{}

func (F32) Pow(x, e float32) float32 { return math32.Pow(x, e) }
func (F32) Cbrt(x float32) float32 { return math32.Cbrt(x) }
func (F32) Sqrt(x float32) float32 { return math32.Sqrt(x) }
func (F32) Abs(x float32) float32 { return math32.Abs(x) }
func (F32) Floor(x float32) float32 { return math32.Floor(x) }
func (F32) Mod(x, y float32) float32 { return math32.Mod(x, y) }
func (F32) Atan2(y, x float32) float32 { return math32.Atan2(y, x) }
func (F32) Sincos(x float32) (sin, cos float32) { return math32.Sincos(x) }

// F64 implements Ops for float64.
type F64 struct{}

func (F64) Pow(x, e float64) float64 { return math.Pow(x, e) }
func (F64) Cbrt(x float64) float64 { return math.Cbrt(x) }
func (F64) Sqrt(x float64) float64 { return math.Sqrt(x) }
func (F64) Abs(x float64) float64 { return math.Abs(x) }
func (F64) Floor(x float64) float64 { return math.Floor(x) }
func (F64) Mod(x, y float64) float64 { return math.Mod(x, y) }
func (F64) Atan2(y, x float64) float64 { return math.Atan2(y, x) }
func (F64) Sincos(x float64) (sin, cos float64) { return math.Sincos(x) }

var (
	ops32 Ops[float32] = F32{}
	ops64 Ops[float64] = F64{}
)

// For returns the Ops strategy for precision F.
func For[F Float]() Ops[F] {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return any(ops32).(Ops[F])
	}
	return any(ops64).(Ops[F])
}

// Zero returns 0 at precision F.
func Zero[F Float]() F { return 0 }

// One returns 1 at precision F.
func One[F Float]() F { return 1 }

// Epsilon returns the slack allowed for accumulated rounding error at
// precision F: 1e-5 for float32, 1e-9 for float64.
func Epsilon[F Float]() F {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return 1e-5
	}
	return 1e-9
}

// Pow returns x**e.
func Pow[F Float](x, e F) F { return For[F]().Pow(x, e) }

// Cbrt returns the cube root of x. Negative inputs keep their sign.
func Cbrt[F Float](x F) F { return For[F]().Cbrt(x) }

// Sqrt returns the square root of x.
func Sqrt[F Float](x F) F { return For[F]().Sqrt(x) }

// Abs returns |x|.
func Abs[F Float](x F) F { return For[F]().Abs(x) }

// Floor returns the greatest integer value <= x.
func Floor[F Float](x F) F { return For[F]().Floor(x) }

// Mod returns the floating point remainder of x/y with the sign of x.
func Mod[F Float](x, y F) F { return For[F]().Mod(x, y) }

// Atan2 returns the arc tangent of y/x in radians.
func Atan2[F Float](y, x F) F { return For[F]().Atan2(y, x) }

// Sincos returns sin(x) and cos(x).
func Sincos[F Float](x F) (sin, cos F) { return For[F]().Sincos(x) }

// Clamp restricts x to [lo, hi]. NaN maps to lo.
func Clamp[T constraints.Float](x, lo, hi T) T {
	if !(x >= lo) {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 restricts x to [0, 1].
func Clamp01[F Float](x F) F {
	return Clamp(x, 0, 1)
}

// RemEuclid returns the non-negative remainder of x/m for m > 0.
// The result is always in [0, m).
func RemEuclid[F Float](x, m F) F {
	r := Mod(x, m)
	if r < 0 {
		r += m
	}
	// r+m can round up to m for tiny negative r.
	if r >= m {
		r = 0
	}
	return r
}

// Radians converts degrees to radians.
func Radians[F Float](deg F) F {
	return deg * F(math.Pi/180)
}

// Degrees converts radians to degrees.
func Degrees[F Float](rad F) F {
	return rad * F(180/math.Pi)
}

// UnitToByte scales a [0,1] value to [0,255] with round-half-up.
// Inputs outside [0,1] are clamped first.
func UnitToByte[F Float](v F) uint8 {
	return uint8(Floor(Clamp01(v)*255 + 0.5))
}
