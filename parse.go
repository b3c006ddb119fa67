package color

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Parse parses a color string.
//
// Accepted forms:
//   - "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (short forms double each nibble)
//   - "rgb(r,g,b)" with integers 0-255
//   - "rgba(r,g,b,a)" where a is a fraction in [0,1] or an integer 2-255;
//     bare 0 and 1 are fractions, so "rgba(255,0,0,1)" is opaque red
//
// Surrounding whitespace is ignored and whitespace around arguments is
// allowed, but the hex digits must follow '#' directly. Function names match
// case-insensitively. Errors are *ParseError values wrapping one of ErrEmpty,
// ErrInvalidLength, ErrInvalidHex, ErrInvalidFunc or ErrOutOfRange.
func Parse(s string) (Color, error) {
	c, err := parse(s)
	if err != nil {
		return Color{}, &ParseError{Input: s, Err: err}
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and package-level variables.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, ErrEmpty
	}

	if rest, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(rest)
	}

	lower := fold(s)
	if args, ok := cutFunc(lower, "rgb"); ok {
		return parseRGB(args)
	}
	if args, ok := cutFunc(lower, "rgba"); ok {
		return parseRGBA(args)
	}
	return Color{}, ErrInvalidFunc
}

// fold case-folds s. Casers are stateful, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// cutFunc returns the argument list of name(...).
func cutFunc(s, name string) (string, bool) {
	rest, ok := strings.CutPrefix(s, name+"(")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ")")
}

// parseHex parses the digits after '#'.
func parseHex(digits string) (Color, error) {
	var n [8]uint8
	if len(digits) != 3 && len(digits) != 4 && len(digits) != 6 && len(digits) != 8 {
		return Color{}, ErrInvalidLength
	}
	for i := 0; i < len(digits); i++ {
		v, ok := nibble(digits[i])
		if !ok {
			return Color{}, ErrInvalidHex
		}
		n[i] = v
	}

	switch len(digits) {
	case 3: // RGB
		return Color{n[0] * 17, n[1] * 17, n[2] * 17, 255}, nil
	case 4: // RGBA
		return Color{n[0] * 17, n[1] * 17, n[2] * 17, n[3] * 17}, nil
	case 6: // RRGGBB
		return Color{n[0]<<4 | n[1], n[2]<<4 | n[3], n[4]<<4 | n[5], 255}, nil
	default: // RRGGBBAA
		return Color{n[0]<<4 | n[1], n[2]<<4 | n[3], n[4]<<4 | n[5], n[6]<<4 | n[7]}, nil
	}
}

func nibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// splitArgs splits a comma-separated argument list into exactly n trimmed
// fields.
func splitArgs(args string, n int) ([]string, bool) {
	fields := strings.Split(args, ",")
	if len(fields) != n {
		return nil, false
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields, true
}

func parseRGB(args string) (Color, error) {
	f, ok := splitArgs(args, 3)
	if !ok {
		return Color{}, ErrInvalidFunc
	}
	rgb, err := parseChannels(f)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(rgb), nil
}

func parseRGBA(args string) (Color, error) {
	f, ok := splitArgs(args, 4)
	if !ok {
		return Color{}, ErrInvalidFunc
	}
	rgb, err := parseChannels(f[:3])
	if err != nil {
		return Color{}, err
	}
	a, err := parseAlpha(f[3])
	if err != nil {
		return Color{}, err
	}
	return Color{rgb[0], rgb[1], rgb[2], a}, nil
}

func parseChannels(f []string) ([3]uint8, error) {
	var out [3]uint8
	for i, s := range f {
		v, err := parseByte(s)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

// parseByte parses a decimal integer in 0-255.
func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, ErrOutOfRange
	}
	return uint8(v), nil
}

// parseAlpha accepts a fraction in [0,1] or an integer byte. The integers
// 0 and 1 are read as fractions.
func parseAlpha(s string) (uint8, error) {
	if !strings.ContainsAny(s, ".eE") {
		v, err := parseByte(s)
		if err != nil {
			return 0, err
		}
		if v == 1 {
			return 255, nil
		}
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !(f >= 0 && f <= 1) {
		return 0, ErrOutOfRange
	}
	return uint8(f*255 + 0.5), nil
}
