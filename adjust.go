package color

import "github.com/gogpu/color/internal/num"

// LightenHSL adds amount to the HSL lightness of c, clamped to [0,1].
// Negative amounts darken. Alpha is preserved.
func (c Color) LightenHSL(amount Float) Color {
	hsla := c.HSLA()
	hsla[2] = num.Clamp01(hsla[2] + amount)
	out := FromHSLA(hsla)
	out.A = c.A
	return out
}

// LightenLinear adds amount to each linear RGB channel, clamping to [0,1].
// Negative amounts darken. Alpha is preserved.
func (c Color) LightenLinear(amount Float) Color {
	lin := c.Linear()
	for i := range 3 {
		lin[i] = num.Clamp01(lin[i] + amount)
	}
	out := FromLinear(lin)
	out.A = c.A
	return out
}
