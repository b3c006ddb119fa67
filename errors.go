package color

import (
	"errors"
	"fmt"
)

// Parse errors. Parse wraps them in a *ParseError, so test with errors.Is.
var (
	// ErrEmpty is returned for blank input.
	ErrEmpty = errors.New("color: empty color string")

	// ErrInvalidLength is returned when a hex color does not have 3, 4, 6
	// or 8 digits.
	ErrInvalidLength = errors.New("color: invalid hex length")

	// ErrInvalidHex is returned when a hex color contains a non-hex digit.
	ErrInvalidHex = errors.New("color: invalid hex digits")

	// ErrInvalidFunc is returned for unrecognized or malformed function
	// syntax, including the wrong number of arguments.
	ErrInvalidFunc = errors.New("color: invalid rgb()/rgba() function")

	// ErrOutOfRange is returned when a component is not an integer in
	// 0-255 or an alpha is outside 0-1 (fraction) or 0-255 (integer).
	ErrOutOfRange = errors.New("color: component out of range")
)

// ErrShortBuffer is returned by FromSlice when fewer than four bytes are given.
var ErrShortBuffer = errors.New("color: short buffer")

// ErrUnknownBlendMode is returned by ParseBlendMode for unknown names.
var ErrUnknownBlendMode = errors.New("color: unknown blend mode")

// ParseError records a failed Parse and the input that caused it.
type ParseError struct {
	Input string
	Err   error // one of the Err* sentinels above
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (input %q)", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
