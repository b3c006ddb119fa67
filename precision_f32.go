//go:build !color_f64

package color

// Float is the floating point precision used by every conversion.
// Build with -tags color_f64 to switch to float64.
type Float = float32
