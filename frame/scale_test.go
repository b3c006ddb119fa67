package frame

import (
	"image"
	imgcolor "image/color"
	"testing"

	"github.com/gogpu/color"
)

func TestQualityString(t *testing.T) {
	tests := []struct {
		q    Quality
		want string
	}{
		{NearestNeighbor, "nearest"},
		{ApproxBiLinear, "approx-bilinear"},
		{BiLinear, "bilinear"},
		{CatmullRom, "catmull-rom"},
		{Quality(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("Quality(%d).String() = %q, want %q", tt.q, got, tt.want)
		}
	}
}

// checker returns a 2x2 image with opaque red and blue pixels.
func checker() *image.NRGBA {
	red := imgcolor.NRGBA{R: 255, A: 255}
	blue := imgcolor.NRGBA{B: 255, A: 255}
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, blue)
	img.SetNRGBA(0, 1, blue)
	img.SetNRGBA(1, 1, red)
	return img
}

func TestDrawImageNearest(t *testing.T) {
	f := New(4, 4)
	f.DrawImage(image.Rect(0, 0, 4, 4), checker(), NearestNeighbor)

	tests := []struct {
		x, y int
		want color.Color
	}{
		{0, 0, color.Red},
		{1, 1, color.Red},
		{2, 0, color.Blue},
		{3, 1, color.Blue},
		{0, 3, color.Blue},
		{3, 3, color.Red},
	}
	for _, tt := range tests {
		if got, _ := f.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawImageFilters(t *testing.T) {
	src := image.NewUniform(color.RGB(40, 120, 200))
	for _, q := range []Quality{NearestNeighbor, ApproxBiLinear, BiLinear, CatmullRom} {
		t.Run(q.String(), func(t *testing.T) {
			f := New(3, 3)
			f.Clear(color.Black)
			f.DrawImage(image.Rect(0, 0, 3, 3), src, q)
			// A uniform source stays uniform under every filter.
			if got, _ := f.Pixel(1, 1); got != color.RGB(40, 120, 200) {
				t.Errorf("Pixel(1, 1) = %v, want %v", got, color.RGB(40, 120, 200))
			}
		})
	}
}

func TestDrawImageClipsAndBlends(t *testing.T) {
	f := New(4, 4)
	f.Clear(color.Black)

	half := color.New(255, 255, 255, 128)
	f.DrawImage(image.Rect(2, 2, 8, 8), image.NewUniform(half), BiLinear)

	if got, _ := f.Pixel(0, 0); got != color.Black {
		t.Errorf("pixel outside dst = %v, want black", got)
	}
	want := half.Over(color.Black)
	got, _ := f.Pixel(3, 3)
	if d := int(got.R) - int(want.R); d < -1 || d > 1 || got.A != 255 {
		t.Errorf("blended pixel = %v, want ~%v", got, want)
	}
}

func TestDrawImageEmpty(t *testing.T) {
	f := New(2, 2)
	f.DrawImage(image.Rectangle{}, checker(), BiLinear)
	f.DrawImage(image.Rect(0, 0, 2, 2), image.NewNRGBA(image.Rectangle{}), BiLinear)
	for _, v := range f.Data() {
		if v != 0 {
			t.Fatal("empty DrawImage modified the frame")
		}
	}
}
