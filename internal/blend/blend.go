// Package blend implements separable blend modes and Porter-Duff alpha
// compositing over unit-scaled, straight-alpha pixels.
//
// The package does not care which space the RGB channels are in: callers
// decode to linear light for accurate results or feed gamma-encoded values
// for the fast path. Alpha is always linear.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/gogpu/color/internal/num"

// Mode is a separable blend mode.
type Mode uint8

const (
	ModeNormal   Mode = iota // B(s, d) = s
	ModeMultiply             // B(s, d) = s * d
	ModeScreen               // B(s, d) = 1 - (1-s)*(1-d)
	ModeOverlay              // HardLight with swapped layers
	ModeDarken               // B(s, d) = min(s, d)
	ModeLighten              // B(s, d) = max(s, d)

	modeCount
)

var modeNames = [modeCount]string{
	ModeNormal:   "normal",
	ModeMultiply: "multiply",
	ModeScreen:   "screen",
	ModeOverlay:  "overlay",
	ModeDarken:   "darken",
	ModeLighten:  "lighten",
}

// String returns the lowercase CSS name of the mode.
func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return "unknown"
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// ModeFromString returns the mode with the given CSS name.
func ModeFromString(name string) (Mode, bool) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), true
		}
	}
	return ModeNormal, false
}

// Channel computes B(s, d) for one unmultiplied channel.
// Unknown modes behave like ModeNormal.
func Channel[F num.Float](m Mode, s, d F) F {
	switch m {
	case ModeMultiply:
		return s * d
	case ModeScreen:
		return 1 - (1-s)*(1-d)
	case ModeOverlay:
		if d <= 0.5 {
			return 2 * s * d
		}
		return 1 - 2*(1-s)*(1-d)
	case ModeDarken:
		return min(s, d)
	case ModeLighten:
		return max(s, d)
	default:
		return s
	}
}
