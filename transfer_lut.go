//go:build srgb_lut

package color

import "github.com/gogpu/color/internal/transfer"

// codec uses the process-wide lookup tables, built on first use.
var codec transfer.Codec[Float] = transfer.Shared[Float]()
