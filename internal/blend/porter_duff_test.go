package blend

import (
	"math"
	"testing"
)

func pixelNear(a, b Pixel[float64], eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps && math.Abs(a.A-b.A) <= eps
}

func TestChannel(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		s, d float64
		want float64
	}{
		{"normal", ModeNormal, 0.3, 0.8, 0.3},
		{"multiply", ModeMultiply, 0.5, 0.5, 0.25},
		{"multiply white", ModeMultiply, 1, 0.7, 0.7},
		{"screen", ModeScreen, 0.5, 0.5, 0.75},
		{"screen black", ModeScreen, 0, 0.4, 0.4},
		{"overlay dark backdrop", ModeOverlay, 0.6, 0.25, 0.3},
		{"overlay at half", ModeOverlay, 0.6, 0.5, 0.6},
		{"overlay light backdrop", ModeOverlay, 0.5, 0.75, 0.75},
		{"darken", ModeDarken, 0.2, 0.9, 0.2},
		{"lighten", ModeLighten, 0.2, 0.9, 0.9},
		{"unknown mode", Mode(200), 0.2, 0.9, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Channel(tt.mode, tt.s, tt.d); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Channel(%v, %v, %v) = %v, want %v", tt.mode, tt.s, tt.d, got, tt.want)
			}
		})
	}
}

func TestModeNames(t *testing.T) {
	for m := ModeNormal; m < modeCount; m++ {
		got, ok := ModeFromString(m.String())
		if !ok || got != m {
			t.Errorf("ModeFromString(%q) = %v, %v", m.String(), got, ok)
		}
		if !m.Valid() {
			t.Errorf("%v.Valid() = false", m)
		}
	}
	if _, ok := ModeFromString("soft-light"); ok {
		t.Error("ModeFromString(soft-light) should fail")
	}
	if Mode(99).String() != "unknown" || Mode(99).Valid() {
		t.Error("Mode(99) should be unknown and invalid")
	}
}

func TestOver(t *testing.T) {
	tests := []struct {
		name     string
		src, dst Pixel[float64]
		want     Pixel[float64]
	}{
		{
			name: "opaque source replaces",
			src:  Pixel[float64]{R: 1, A: 1},
			dst:  Pixel[float64]{G: 1, A: 1},
			want: Pixel[float64]{R: 1, A: 1},
		},
		{
			name: "transparent source keeps destination",
			src:  Pixel[float64]{R: 1, A: 0},
			dst:  Pixel[float64]{G: 1, A: 1},
			want: Pixel[float64]{G: 1, A: 1},
		},
		{
			name: "half over opaque",
			src:  Pixel[float64]{R: 1, A: 0.5},
			dst:  Pixel[float64]{G: 1, A: 1},
			want: Pixel[float64]{R: 0.5, G: 0.5, A: 1},
		},
		{
			name: "half over half",
			src:  Pixel[float64]{R: 1, A: 0.5},
			dst:  Pixel[float64]{B: 1, A: 0.5},
			want: Pixel[float64]{R: 0.5 / 0.75, B: 0.25 / 0.75, A: 0.75},
		},
		{
			name: "both transparent",
			src:  Pixel[float64]{R: 1},
			dst:  Pixel[float64]{G: 1},
			want: Pixel[float64]{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Over(tt.src, tt.dst); !pixelNear(got, tt.want, 1e-12) {
				t.Errorf("Over() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOverFastFloorsDenominator(t *testing.T) {
	got := OverFast(Pixel[float32]{R: 1}, Pixel[float32]{G: 1})
	if got.A != 0 || got.R != 0 || got.G != 0 {
		t.Errorf("OverFast(transparent, transparent) = %+v", got)
	}
	for _, v := range []float32{got.R, got.G, got.B, got.A} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("OverFast produced non-finite %v", v)
		}
	}
}

func TestOverFastMatchesOver(t *testing.T) {
	src := Pixel[float64]{R: 0.8, G: 0.2, B: 0.4, A: 0.6}
	dst := Pixel[float64]{R: 0.1, G: 0.9, B: 0.3, A: 0.7}
	if a, b := Over(src, dst), OverFast(src, dst); !pixelNear(a, b, 1e-12) {
		t.Errorf("OverFast = %+v, Over = %+v", b, a)
	}
}

func TestSeparable(t *testing.T) {
	src := Pixel[float64]{R: 0.5, G: 0.2, B: 1, A: 1}
	dst := Pixel[float64]{R: 0.5, G: 0.8, B: 0.25, A: 1}

	got := Separable(ModeMultiply, src, dst)
	want := Pixel[float64]{R: 0.25, G: 0.16, B: 0.25, A: 1}
	if !pixelNear(got, want, 1e-12) {
		t.Errorf("multiply = %+v, want %+v", got, want)
	}

	got = Separable(ModeScreen, src, dst)
	want = Pixel[float64]{R: 0.75, G: 0.84, B: 1, A: 1}
	if !pixelNear(got, want, 1e-12) {
		t.Errorf("screen = %+v, want %+v", got, want)
	}
}

func TestSeparableNormalMatchesOver(t *testing.T) {
	cases := [][2]Pixel[float64]{
		{{R: 1, A: 0.5}, {G: 1, A: 1}},
		{{R: 0.3, G: 0.6, B: 0.9, A: 0.25}, {R: 0.9, G: 0.1, B: 0.5, A: 0.5}},
		{{R: 0.3, A: 1}, {B: 0.7, A: 0.1}},
	}
	for _, c := range cases {
		a := Separable(ModeNormal, c[0], c[1])
		b := Over(c[0], c[1])
		if !pixelNear(a, b, 1e-12) {
			t.Errorf("Separable(normal) = %+v, Over = %+v", a, b)
		}
	}
}

func TestSeparablePartialAlpha(t *testing.T) {
	// Where only one layer covers, its color shows through unblended.
	src := Pixel[float64]{R: 1, G: 1, B: 1, A: 0.5}
	dst := Pixel[float64]{R: 0.2, G: 0.2, B: 0.2, A: 0}
	got := Separable(ModeMultiply, src, dst)
	want := Pixel[float64]{R: 1, G: 1, B: 1, A: 0.5}
	if !pixelNear(got, want, 1e-12) {
		t.Errorf("multiply onto transparent = %+v, want %+v", got, want)
	}

	if got := Separable(ModeScreen, Pixel[float64]{}, Pixel[float64]{}); got != (Pixel[float64]{}) {
		t.Errorf("transparent over transparent = %+v", got)
	}
}

func TestPremultiply(t *testing.T) {
	p := Pixel[float64]{R: 0.8, G: 0.4, B: 0.2, A: 0.5}
	pm := Premultiply(p)
	if !pixelNear(pm, Pixel[float64]{R: 0.4, G: 0.2, B: 0.1, A: 0.5}, 1e-12) {
		t.Errorf("Premultiply = %+v", pm)
	}
	if back := Unpremultiply(pm); !pixelNear(back, p, 1e-12) {
		t.Errorf("Unpremultiply = %+v, want %+v", back, p)
	}
	if got := Unpremultiply(Pixel[float64]{R: 1}); got != (Pixel[float64]{}) {
		t.Errorf("Unpremultiply(zero alpha) = %+v", got)
	}
}

func TestSeparablePremultipliedScreen(t *testing.T) {
	src := Pixel[float64]{R: 0.6, A: 0.5}
	dst := Pixel[float64]{R: 0.2, A: 0.4}

	// screen(0.6, 0.2) = 0.68; A_out = 0.7
	// premultiplied R = 0.08*0.5 + 0.3*0.6 + 0.2*0.68 = 0.356
	got := Separable(ModeScreen, src, dst)
	want := Pixel[float64]{R: 0.356 / 0.7, A: 0.7}
	if !pixelNear(got, want, 1e-12) {
		t.Errorf("screen = %+v, want %+v", got, want)
	}
	if pm := Premultiply(got); !pixelNear(pm, Pixel[float64]{R: 0.356, A: 0.7}, 1e-12) {
		t.Errorf("Premultiply(screen) = %+v", pm)
	}
}
