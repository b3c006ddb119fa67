package frame

import (
	"github.com/gogpu/color"
	"github.com/gogpu/color/internal/parallel"
)

// Option configures a Frame during creation.
//
// Example:
//
//	f := frame.New(64, 64, frame.WithCompositor(
//	    color.NewCompositor(color.WithBlendMode(color.Multiply)),
//	))
type Option func(*Frame)

// WithCompositor sets the compositor used by BlendPixel, BlendRect and
// DrawImage. The default composites with Porter-Duff over in linear light.
func WithCompositor(cp color.Compositor) Option {
	return func(f *Frame) {
		f.comp = cp
	}
}

// WithWorkers spreads FillRect, BlendRect, FillGradient and DrawImage over
// n goroutines, one horizontal band each. n <= 1 keeps everything on the
// caller's goroutine. Release the workers with Frame.Close.
func WithWorkers(n int) Option {
	return func(f *Frame) {
		if f.pool != nil {
			f.pool.Close()
			f.pool = nil
		}
		if n > 1 {
			f.pool = parallel.NewPool(n)
		}
	}
}
