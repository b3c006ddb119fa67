//go:build color_f64

package color

// Float is the floating point precision used by every conversion.
type Float = float64
