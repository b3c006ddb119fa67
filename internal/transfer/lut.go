package transfer

import (
	"math"
	"sync"
	"time"

	"github.com/gogpu/color/internal/logging"
	"github.com/gogpu/color/internal/num"
)

// DefaultTableSize is the number of linear → sRGB entries in a table.
// 4096 entries give 12-bit input precision, enough for 8-bit output.
const DefaultTableSize = 4096

// lut holds the two lookup tables. They are filled exactly once on first
// use and never written again, so reads after build need no locking.
type lut struct {
	size int
	once sync.Once

	// dec maps sRGB byte [0-255] → linear [0.0-1.0]. 2KB.
	dec [256]float64
	// enc maps linear [0.0-1.0] sampled at size points → sRGB byte.
	enc []uint8
}

func newLUT(size int) *lut {
	if size < 2 {
		size = DefaultTableSize
	}
	return &lut{size: size}
}

// tables returns the lut, building it on the first call. Concurrent first
// callers block in sync.Once until the build is complete.
func (t *lut) tables() *lut {
	t.once.Do(t.build)
	return t
}

func (t *lut) build() {
	start := time.Now()

	for i := range t.dec {
		t.dec[i] = Decode[float64](uint8(i))
	}

	enc := make([]uint8, t.size)
	last := float64(t.size - 1)
	for i := range enc {
		enc[i] = Encode(float64(i) / last)
	}
	t.enc = enc

	logging.Logger().Debug("transfer: lookup tables built",
		"size", t.size, "elapsed", time.Since(start))
}

// shared is the process-wide default table. It is built on first use and
// lives for the lifetime of the process.
var shared = newLUT(DefaultTableSize)

// Table is the Codec backed by lookup tables.
//
// Decoding is an exact lookup since the input domain is already the 256
// byte values. Encoding discretizes [0,1] into Size points and interpolates
// linearly between the two nearest entries; the result agrees with
// [Analytic] within 1 LSB.
type Table[F num.Float] struct {
	t *lut
}

// NewTable returns a Table with its own encode table of the given size.
// Sizes below 2 select DefaultTableSize. The tables are built lazily.
func NewTable[F num.Float](size int) *Table[F] {
	return &Table[F]{t: newLUT(size)}
}

// Shared returns a Table backed by the process-wide default tables.
// All precisions share the same backing tables.
func Shared[F num.Float]() *Table[F] {
	return &Table[F]{t: shared}
}

// Size returns the number of encode table entries.
func (tb *Table[F]) Size() int {
	return tb.t.size
}

// Decode implements Codec.
func (tb *Table[F]) Decode(v uint8) F {
	return F(tb.t.tables().dec[v])
}

// Encode implements Codec.
func (tb *Table[F]) Encode(x F) uint8 {
	t := tb.t.tables()
	x = num.Clamp01(x)

	idx := x * F(t.size-1)
	i := int(idx)
	if i >= t.size-1 {
		return t.enc[t.size-1]
	}
	f := idx - F(i)
	a := F(t.enc[i])
	b := F(t.enc[i+1])
	// linear interp in byte space, then round
	y := a + (b-a)*f
	return uint8(num.Clamp(num.Floor(y+0.5), 0, math.MaxUint8))
}
