package color

// MarshalText implements encoding.TextMarshaler. Colors are written as
// "#rrggbbaa".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex8()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any form accepted by
// Parse is allowed.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
