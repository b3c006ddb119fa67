package color

import (
	"fmt"

	"github.com/gogpu/color/internal/blend"
)

// BlendMode selects how source and backdrop channels are mixed where both
// layers cover.
type BlendMode = blend.Mode

// Supported blend modes.
const (
	Normal   BlendMode = blend.ModeNormal   // Porter-Duff over, same as Color.Over
	Multiply BlendMode = blend.ModeMultiply // s * d
	Screen   BlendMode = blend.ModeScreen   // 1 - (1-s)*(1-d)
	Overlay  BlendMode = blend.ModeOverlay  // multiply or screen depending on the backdrop
	Darken   BlendMode = blend.ModeDarken   // min(s, d)
	Lighten  BlendMode = blend.ModeLighten  // max(s, d)
)

// ParseBlendMode returns the blend mode with the given CSS name, matched
// case-insensitively.
func ParseBlendMode(name string) (BlendMode, error) {
	if m, ok := blend.ModeFromString(fold(name)); ok {
		return m, nil
	}
	return Normal, fmt.Errorf("%w: %q", ErrUnknownBlendMode, name)
}

// Over composites c over bg using Porter-Duff "over" in linear light.
//
// Both colors are decoded to linear RGBA, composited with straight alpha and
// encoded back. If the result has zero alpha it is transparent black.
// For speed over accuracy use OverSRGBFast.
func (c Color) Over(bg Color) Color {
	return fromLinearPixel(blend.Over(c.linearPixel(), bg.linearPixel()))
}

// OverSRGBFast composites c over dst directly on gamma-encoded channels.
// It is cheaper than Over but darkens mid-tones where the layers mix.
//
// A transparent dst is replaced by c before compositing, and a transparent
// c returns dst unchanged.
func (c Color) OverSRGBFast(dst Color) Color {
	if dst.A == 0 {
		dst = c
	}
	if c.A == 0 {
		return dst
	}
	return fromUnitPixel(blend.OverFast(c.unitPixel(), dst.unitPixel()))
}

// BlendOver composites c over bg with the given blend mode. The mode is
// evaluated on linear channels and combined with Porter-Duff alpha in
// premultiplied form, then encoded back with straight alpha.
//
// A transparent c returns bg untouched. Normal mode, or a transparent bg,
// is equivalent to Over.
func (c Color) BlendOver(bg Color, mode BlendMode) Color {
	if c.A == 0 {
		return bg
	}
	if mode == Normal || bg.A == 0 {
		return c.Over(bg)
	}
	return fromLinearPixel(blend.Separable(mode, c.linearPixel(), bg.linearPixel()))
}

// Compositor is a reusable compositing configuration.
//
// The zero value composites with Normal mode in linear light.
type Compositor struct {
	mode BlendMode
	fast bool
}

// NewCompositor returns a Compositor configured by opts.
//
// Example:
//
//	cp := color.NewCompositor(color.WithBlendMode(color.Multiply))
//	out := cp.Composite(src, dst)
func NewCompositor(opts ...CompositorOption) Compositor {
	var cp Compositor
	for _, opt := range opts {
		opt(&cp)
	}
	return cp
}

// Mode returns the configured blend mode.
func (cp Compositor) Mode() BlendMode {
	return cp.mode
}

// Fast reports whether Normal mode composites on gamma-encoded channels.
func (cp Compositor) Fast() bool {
	return cp.fast
}

// Composite places src over dst.
func (cp Compositor) Composite(src, dst Color) Color {
	if cp.mode == Normal && cp.fast {
		return src.OverSRGBFast(dst)
	}
	return src.BlendOver(dst, cp.mode)
}
