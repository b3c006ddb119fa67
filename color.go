package color

import (
	"encoding/hex"
	"fmt"
	imgcolor "image/color"
)

// Color is an 8-bit sRGB color with straight (non-premultiplied) alpha.
//
// Color is an immutable value type: every operation returns a new Color.
// Two colors are equal exactly when all four bytes are equal, so Color can
// be compared with == and used as a map key.
//
// The zero value is transparent black; use [Default] for the conventional
// opaque black default.
type Color struct {
	R, G, B, A uint8
}

// Verify at compile time that Color implements image/color.Color.
var _ imgcolor.Color = Color{}

// Common colors
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}

	// Default is the default color: opaque black.
	Default = Black
)

// New creates a color from four bytes.
func New(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// FromRGB creates an opaque color from an [r, g, b] triple.
func FromRGB(rgb [3]uint8) Color {
	return Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

// FromRGBA creates a color from an [r, g, b, a] quadruple.
func FromRGBA(rgba [4]uint8) Color {
	return Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}

// FromSlice reads a color from the first four bytes of p in R, G, B, A
// order. It returns ErrShortBuffer if p holds fewer than four bytes.
func FromSlice(p []uint8) (Color, error) {
	if len(p) < 4 {
		return Color{}, fmt.Errorf("%w: got %d bytes, need 4", ErrShortBuffer, len(p))
	}
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}, nil
}

// FromColor converts any image/color.Color to a Color, unpremultiplying
// alpha as needed.
func FromColor(c imgcolor.Color) Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	n := imgcolor.NRGBAModel.Convert(c).(imgcolor.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Model converts image/color values to Color.
var Model = imgcolor.ModelFunc(func(c imgcolor.Color) imgcolor.Color {
	return FromColor(c)
})

// RGBA implements image/color.Color. It returns alpha-premultiplied
// 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return r, g, b, a
}

// RGB8 returns the [r, g, b] bytes.
func (c Color) RGB8() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// RGBA8 returns the [r, g, b, a] bytes.
func (c Color) RGBA8() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Hex6 returns "#rrggbb" in lowercase. Alpha is dropped.
func (c Color) Hex6() string {
	var buf [7]byte
	buf[0] = '#'
	hex.Encode(buf[1:], []byte{c.R, c.G, c.B})
	return string(buf[:])
}

// Hex8 returns "#rrggbbaa" in lowercase. The form is lossless and round
// trips through Parse.
func (c Color) Hex8() string {
	var buf [9]byte
	buf[0] = '#'
	hex.Encode(buf[1:], []byte{c.R, c.G, c.B, c.A})
	return string(buf[:])
}

// String returns the canonical form, identical to Hex8.
func (c Color) String() string {
	return c.Hex8()
}
