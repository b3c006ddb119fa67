package color

import "testing"

func TestWithBlendMode(t *testing.T) {
	tests := []struct {
		name string
		in   BlendMode
		want BlendMode
	}{
		{"normal", Normal, Normal},
		{"multiply", Multiply, Multiply},
		{"lighten", Lighten, Lighten},
		{"invalid falls back", BlendMode(200), Normal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := NewCompositor(WithBlendMode(tt.in))
			if cp.Mode() != tt.want {
				t.Errorf("Mode() = %v, want %v", cp.Mode(), tt.want)
			}
		})
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	cp := NewCompositor(WithFastOver(true), WithBlendMode(Multiply), WithFastOver(false))
	if cp.Fast() {
		t.Error("last WithFastOver should win")
	}
	if cp.Mode() != Multiply {
		t.Errorf("Mode() = %v, want multiply", cp.Mode())
	}
}
