// Command colorinfo prints the representations of a color and, given a
// second color, their contrast and interpolations.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/color"
	"github.com/gogpu/color/frame"
)

func main() {
	var (
		input   = flag.String("color", "#3498db", "color to describe (hex, rgb() or rgba())")
		with    = flag.String("with", "", "second color for contrast and interpolation")
		t       = flag.Float64("t", 0.5, "interpolation position in [0,1]")
		mode    = flag.String("blend", "normal", "blend mode used to composite -color over -with")
		output  = flag.String("png", "", "write a gradient swatch from -color to -with to this file")
		width   = flag.Int("width", 256, "swatch width")
		height  = flag.Int("height", 48, "swatch height")
		workers = flag.Int("workers", 1, "goroutines used to render the swatch")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		color.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c, err := color.Parse(*input)
	if err != nil {
		log.Fatalf("Invalid -color: %v", err)
	}
	describe(os.Stdout, "color", c)

	if *with == "" {
		return
	}
	other, err := color.Parse(*with)
	if err != nil {
		log.Fatalf("Invalid -with: %v", err)
	}
	bm, err := color.ParseBlendMode(*mode)
	if err != nil {
		log.Fatalf("Invalid -blend: %v", err)
	}

	describe(os.Stdout, "with", other)
	compare(os.Stdout, c, other, color.Float(*t), bm)

	if *output != "" {
		if err := swatch(*output, c, other, *width, *height, *workers); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Swatch saved to %s (%dx%d)\n", *output, *width, *height)
	}
}

func describe(w io.Writer, label string, c color.Color) {
	lin := c.Linear()
	hsl := c.HSL()
	lab := c.OKLab()
	lch := c.OKLCH()

	fmt.Fprintf(w, "%s %s\n", label, c.Hex8())
	fmt.Fprintf(w, "  rgba      %d %d %d %d\n", c.R, c.G, c.B, c.A)
	fmt.Fprintf(w, "  linear    %.4f %.4f %.4f %.4f\n", lin[0], lin[1], lin[2], lin[3])
	fmt.Fprintf(w, "  hsl       %.1f %.3f %.3f\n", hsl[0], hsl[1], hsl[2])
	fmt.Fprintf(w, "  oklab     %.4f %.4f %.4f\n", lab[0], lab[1], lab[2])
	fmt.Fprintf(w, "  oklch     %.4f %.4f %.1f\n", lch[0], lch[1], lch[2])
	fmt.Fprintf(w, "  luminance %.4f\n", c.RelativeLuminance())
}

func compare(w io.Writer, a, b color.Color, t color.Float, mode color.BlendMode) {
	ratio := color.ContrastRatio(a, b)
	fmt.Fprintf(w, "contrast %.2f:1 (AA %s, AAA %s, large AA %s)\n", ratio,
		pass(color.MeetsContrast(a, b, color.WCAGNormalAA)),
		pass(color.MeetsContrast(a, b, color.WCAGNormalAAA)),
		pass(color.MeetsContrast(a, b, color.WCAGLargeAA)))

	for _, interp := range []color.Interpolation{color.InterpSRGB, color.InterpLinear, color.InterpOKLCH} {
		fmt.Fprintf(w, "lerp %-6s t=%.2f %s\n", interp, t, interp.Mix(a, b, t).Hex8())
	}
	fmt.Fprintf(w, "over      %s\n", a.Over(b).Hex8())
	fmt.Fprintf(w, "over fast %s\n", a.OverSRGBFast(b).Hex8())
	fmt.Fprintf(w, "blend %-8s %s\n", mode, a.BlendOver(b, mode).Hex8())
}

func pass(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

// swatch renders one band per interpolation strategy.
func swatch(path string, a, b color.Color, w, h, workers int) error {
	f := frame.New(w, h*3)
	band := frame.New(w, h, frame.WithWorkers(workers))
	defer band.Close()

	for i, interp := range []color.Interpolation{color.InterpSRGB, color.InterpLinear, color.InterpOKLCH} {
		band.FillGradient(a, b, interp)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c, _ := band.Pixel(x, y)
				f.SetPixel(x, i*h+y, c)
			}
		}
	}
	return f.SavePNG(path)
}
