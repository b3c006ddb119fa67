//go:build !srgb_lut

package color

import "github.com/gogpu/color/internal/transfer"

// codec evaluates the transfer curve on every call.
// Build with -tags srgb_lut to use lookup tables instead.
var codec transfer.Codec[Float] = transfer.Analytic[Float]{}
