package frame

import (
	"image"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/color"
	"github.com/gogpu/color/internal/logging"
)

// Quality selects the resampling filter used by DrawImage.
type Quality uint8

const (
	// NearestNeighbor copies the closest source pixel. Fastest, blocky.
	NearestNeighbor Quality = iota

	// ApproxBiLinear is a fast bilinear approximation.
	ApproxBiLinear

	// BiLinear is true bilinear filtering.
	BiLinear

	// CatmullRom is bicubic filtering. Slowest, sharpest.
	CatmullRom
)

// String returns the filter name.
func (q Quality) String() string {
	switch q {
	case NearestNeighbor:
		return "nearest"
	case ApproxBiLinear:
		return "approx-bilinear"
	case BiLinear:
		return "bilinear"
	case CatmullRom:
		return "catmull-rom"
	default:
		return "unknown"
	}
}

func (q Quality) scaler() xdraw.Scaler {
	switch q {
	case ApproxBiLinear:
		return xdraw.ApproxBiLinear
	case BiLinear:
		return xdraw.BiLinear
	case CatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}

// DrawImage scales src to fill dst (in frame coordinates) and composites the
// result over the frame with the frame's compositor. Parts of dst outside
// the frame are clipped.
func (f *Frame) DrawImage(dst image.Rectangle, src image.Image, q Quality) {
	dst = dst.Canon()
	if dst.Empty() || src.Bounds().Empty() {
		return
	}
	start := time.Now()

	// Resample into a scratch buffer first so blending happens in the
	// compositor's space rather than x/image/draw's premultiplied one.
	scaled := image.NewRGBA(image.Rect(0, 0, dst.Dx(), dst.Dy()))
	q.scaler().Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	r := dst.Intersect(f.Bounds())
	f.rows(r, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				c := color.FromColor(scaled.RGBAAt(x-dst.Min.X, y-dst.Min.Y))
				f.BlendPixel(x, y, c)
			}
		}
	})

	logging.Logger().Debug("frame: image scaled",
		"src", src.Bounds(), "dst", dst, "quality", q, "elapsed", time.Since(start))
}
