package color

// WCAG 2.x contrast thresholds for MeetsContrast.
const (
	WCAGLargeAA   Float = 3   // large text, level AA
	WCAGNormalAA  Float = 4.5 // body text, level AA
	WCAGNormalAAA Float = 7   // body text, level AAA
)

// RelativeLuminance returns the WCAG relative luminance of c in [0,1],
// computed from linear RGB. Alpha is ignored.
func (c Color) RelativeLuminance() Float {
	lin := c.Linear()
	return 0.2126*lin[0] + 0.7152*lin[1] + 0.0722*lin[2]
}

// ContrastRatio returns the WCAG contrast ratio between a and b, from 1
// (identical luminance) to 21 (black on white). The result does not depend
// on argument order.
func ContrastRatio(a, b Color) Float {
	la, lb := a.RelativeLuminance(), b.RelativeLuminance()
	if lb > la {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// MeetsContrast reports whether a and b reach the given contrast ratio,
// typically one of the WCAG constants.
func MeetsContrast(a, b Color, level Float) bool {
	return ContrastRatio(a, b) >= level
}
