// Package color provides an 8-bit sRGB color type and the conversions and
// compositing math needed to use it correctly.
//
// # Overview
//
// [Color] stores gamma-encoded sRGB bytes with straight alpha. Anything that
// mixes light (compositing, interpolation, luminance) decodes to linear light
// first and encodes back, so results match what a physically based renderer
// would produce.
//
// # Quick Start
//
//	import "github.com/gogpu/color"
//
//	bg := color.MustParse("#1e1e2e")
//	fg := color.MustParse("rgba(137, 180, 250, 0.8)")
//
//	out := fg.Over(bg)
//	fmt.Println(out.Hex6(), color.ContrastRatio(fg, bg))
//
// # Color Spaces
//
//   - Linear RGB: [Color.Linear], [FromLinear]
//   - HSL: [Color.HSL], [FromHSL], [FromHSLA]
//   - OKLab and OKLCH: [Color.OKLab], [Color.OKLCH], [FromOKLab], [FromOKLCH]
//
// [FromOKLCH] maps out-of-gamut input into sRGB by reducing chroma at fixed
// lightness and hue.
//
// # Compositing
//
// [Color.Over] is Porter-Duff over in linear light. [Color.OverSRGBFast]
// skips linearization. [Color.BlendOver] adds the separable blend modes
// Multiply, Screen, Overlay, Darken and Lighten. [Compositor] bundles a mode
// for repeated use.
//
// # Precision and Lookup Tables
//
// Conversions compute in float32 by default. Build with -tags color_f64 to
// switch [Float] to float64. Build with -tags srgb_lut to replace the
// analytic sRGB transfer function with shared lookup tables, built once on
// first use.
//
// # Concurrency
//
// Every operation is a pure function of its arguments and safe for
// concurrent use. The lookup tables are built under sync.Once.
package color

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
