// Package frame provides a straight-alpha RGBA pixel buffer whose drawing
// operations composite through color.Compositor.
//
// A Frame is not safe for concurrent mutation.
package frame

import (
	"image"
	imgcolor "image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/color"
	"github.com/gogpu/color/internal/logging"
	"github.com/gogpu/color/internal/parallel"
)

// Verify at compile time that Frame implements draw.Image.
var _ draw.Image = (*Frame)(nil)

// Frame is a rectangular buffer of 8-bit sRGB pixels with straight alpha.
type Frame struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel, straight alpha
	comp   color.Compositor
	pool   *parallel.Pool // nil runs rows on the caller's goroutine
}

// New creates a transparent frame with the given dimensions.
// Negative dimensions are treated as zero.
func New(width, height int, opts ...Option) *Frame {
	width, height = max(width, 0), max(height, 0)
	f := &Frame{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	for _, opt := range opts {
		opt(f)
	}
	logging.Logger().Debug("frame: created",
		"width", width, "height", height, "mode", f.comp.Mode(), "fast", f.comp.Fast(),
		"workers", f.Workers())
	return f
}

// Close releases the workers started by WithWorkers. The frame stays usable
// and runs serially afterwards. Close is safe to call multiple times.
func (f *Frame) Close() {
	if f.pool != nil {
		f.pool.Close()
	}
}

// Workers returns the number of goroutines used for row-parallel operations.
func (f *Frame) Workers() int {
	if f.pool == nil || !f.pool.IsRunning() {
		return 1
	}
	return f.pool.Workers()
}

// rows calls fn over [r.Min.Y, r.Max.Y) in bands, in parallel when the frame
// has workers.
func (f *Frame) rows(r image.Rectangle, fn func(y0, y1 int)) {
	if f.pool == nil {
		fn(r.Min.Y, r.Max.Y)
		return
	}
	f.pool.Rows(r.Min.Y, r.Max.Y, fn)
}

// FromImage creates a frame holding a copy of img.
func FromImage(img image.Image, opts ...Option) *Frame {
	b := img.Bounds()
	f := New(b.Dx(), b.Dy(), opts...)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.SetPixel(x, y, color.FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return f
}

// Width returns the width of the frame.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the height of the frame.
func (f *Frame) Height() int {
	return f.height
}

// Data returns the raw pixel data (RGBA, straight alpha).
func (f *Frame) Data() []uint8 {
	return f.data
}

// Compositor returns the compositor used by the Blend methods.
func (f *Frame) Compositor() color.Compositor {
	return f.comp
}

func (f *Frame) offset(x, y int) (int, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, false
	}
	return (y*f.width + x) * 4, true
}

func (f *Frame) put(i int, c color.Color) {
	f.data[i+0] = c.R
	f.data[i+1] = c.G
	f.data[i+2] = c.B
	f.data[i+3] = c.A
}

func (f *Frame) get(i int) color.Color {
	return color.New(f.data[i+0], f.data[i+1], f.data[i+2], f.data[i+3])
}

// SetPixel replaces a single pixel. Out-of-bounds coordinates are ignored.
func (f *Frame) SetPixel(x, y int, c color.Color) {
	if i, ok := f.offset(x, y); ok {
		f.put(i, c)
	}
}

// Pixel returns the pixel at (x, y) and whether it lies inside the frame.
func (f *Frame) Pixel(x, y int) (color.Color, bool) {
	i, ok := f.offset(x, y)
	if !ok {
		return color.Transparent, false
	}
	return f.get(i), true
}

// BlendPixel composites c over the pixel at (x, y).
func (f *Frame) BlendPixel(x, y int, c color.Color) {
	if i, ok := f.offset(x, y); ok {
		f.put(i, f.comp.Composite(c, f.get(i)))
	}
}

// Clear fills the entire frame with a color.
func (f *Frame) Clear(c color.Color) {
	for i := 0; i < len(f.data); i += 4 {
		f.put(i, c)
	}
}

// clip intersects the rectangle with the frame bounds. Non-positive sizes
// yield an empty rectangle.
func (f *Frame) clip(x, y, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(x, y, x+w, y+h).Intersect(f.Bounds())
}

// FillRect replaces every pixel in the w×h rectangle at (x, y), clipped to
// the frame.
func (f *Frame) FillRect(x, y, w, h int, c color.Color) {
	r := f.clip(x, y, w, h)
	f.rows(r, func(y0, y1 int) {
		for py := y0; py < y1; py++ {
			for px := r.Min.X; px < r.Max.X; px++ {
				i, _ := f.offset(px, py)
				f.put(i, c)
			}
		}
	})
}

// BlendRect composites c over every pixel in the w×h rectangle at (x, y),
// clipped to the frame.
func (f *Frame) BlendRect(x, y, w, h int, c color.Color) {
	r := f.clip(x, y, w, h)
	f.rows(r, func(y0, y1 int) {
		for py := y0; py < y1; py++ {
			for px := r.Min.X; px < r.Max.X; px++ {
				i, _ := f.offset(px, py)
				f.put(i, f.comp.Composite(c, f.get(i)))
			}
		}
	})
}

// FillGradient fills the frame with a horizontal ramp from a at the left
// edge to b at the right edge.
func (f *Frame) FillGradient(a, b color.Color, interp color.Interpolation) {
	ramp := color.Gradient(a, b, f.width, interp)
	f.rows(f.Bounds(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x, c := range ramp {
				i, _ := f.offset(x, y)
				f.put(i, c)
			}
		}
	})
}

// ToImage converts the frame to an image.NRGBA.
func (f *Frame) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// EncodePNG writes the frame to w as PNG.
func (f *Frame) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.ToImage())
}

// SavePNG saves the frame to a PNG file.
func (f *Frame) SavePNG(path string) (err error) {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return f.EncodePNG(file)
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) imgcolor.Color {
	c, _ := f.Pixel(x, y)
	return c
}

// Set implements the draw.Image interface. The pixel is replaced, not
// blended.
func (f *Frame) Set(x, y int, c imgcolor.Color) {
	f.SetPixel(x, y, color.FromColor(c))
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() imgcolor.Model {
	return color.Model
}
