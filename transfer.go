package color

import "github.com/gogpu/color/internal/transfer"

// Codec converts between 8-bit sRGB and linear light.
type Codec interface {
	// Decode converts an sRGB byte to a linear value in [0,1].
	Decode(v uint8) Float
	// Encode converts a linear value to an sRGB byte. Input is clamped to [0,1].
	Encode(x Float) uint8
}

// Transfer returns the codec every conversion in the package uses.
func Transfer() Codec {
	return codec
}

// UsesLookupTable reports whether the package was built with the
// srgb_lut tag.
func UsesLookupTable() bool {
	_, ok := codec.(*transfer.Table[Float])
	return ok
}

// DecodeSRGB converts an sRGB byte to linear light.
func DecodeSRGB(v uint8) Float {
	return codec.Decode(v)
}

// EncodeSRGB converts linear light to an sRGB byte, clamping to [0,1].
func EncodeSRGB(x Float) uint8 {
	return codec.Encode(x)
}
