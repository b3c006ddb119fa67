package color

import "testing"

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want Float
	}{
		{"black", Black, 0},
		{"white", White, 1},
		{"red", Red, 0.2126},
		{"green", Green, 0.7152},
		{"blue", Blue, 0.0722},
		{"alpha ignored", White.WithAlpha(0), 1},
		{"mid gray", RGB(128, 128, 128), 0.2158605},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.RelativeLuminance(); !nearFloat(got, tt.want, 1e-4) {
				t.Errorf("RelativeLuminance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio(Black, White); !nearFloat(got, 21, 1e-3) {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", got)
	}
	if got := ContrastRatio(Red, Red); !nearFloat(got, 1, 1e-6) {
		t.Errorf("ContrastRatio(red, red) = %v, want 1", got)
	}

	colors := []Color{Black, White, Red, Green, Blue, RGB(119, 119, 119), RGB(30, 60, 200)}
	for _, a := range colors {
		for _, b := range colors {
			ab, ba := ContrastRatio(a, b), ContrastRatio(b, a)
			if ab != ba {
				t.Errorf("ContrastRatio not symmetric for %v, %v: %v vs %v", a, b, ab, ba)
			}
			if ab < 1 || ab > 21.001 {
				t.Errorf("ContrastRatio(%v, %v) = %v out of [1,21]", a, b, ab)
			}
		}
	}
}

func TestMeetsContrast(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Color
		level Float
		want  bool
	}{
		{"black on white AAA", Black, White, WCAGNormalAAA, true},
		{"gray 767676 on white AA", RGB(0x76, 0x76, 0x76), White, WCAGNormalAA, true},
		{"gray 777777 on white AA", RGB(0x77, 0x77, 0x77), White, WCAGNormalAA, false},
		{"gray 777777 on white large AA", RGB(0x77, 0x77, 0x77), White, WCAGLargeAA, true},
		{"red on blue AA", Red, Blue, WCAGNormalAA, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsContrast(tt.a, tt.b, tt.level); got != tt.want {
				t.Errorf("MeetsContrast = %v (ratio %v), want %v", got, ContrastRatio(tt.a, tt.b), tt.want)
			}
		})
	}
}
