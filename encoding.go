package csscolors

import (
	"fmt"
	"strconv"
)

// The color types implement encoding.TextMarshaler and
// encoding.TextUnmarshaler over the hex form, which also gives them a
// JSON representation: colors marshal as "#rrggbb" (RGB, HSL) or
// "#rrggbbaa" (RGBA, HSLA) strings. Unmarshaling accepts exactly that
// fixed format; this is not CSS parsing.

// MarshalText implements encoding.TextMarshaler.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting
// "#rrggbb".
func (c *RGB) UnmarshalText(text []byte) error {
	v, err := parseHex(string(text), 3)
	if err != nil {
		return err
	}
	*c = NewRGB(v[0], v[1], v[2])
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c RGBA) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting
// "#rrggbbaa".
func (c *RGBA) UnmarshalText(text []byte) error {
	v, err := parseHex(string(text), 4)
	if err != nil {
		return err
	}
	*c = RGBA{R: Ratio(v[0]), G: Ratio(v[1]), B: Ratio(v[2]), A: Ratio(v[3])}
	return nil
}

// MarshalText implements encoding.TextMarshaler. The color marshals
// through its RGB equivalent.
func (c HSL) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting
// "#rrggbb" and converting to HSL.
func (c *HSL) UnmarshalText(text []byte) error {
	var rgb RGB
	if err := rgb.UnmarshalText(text); err != nil {
		return err
	}
	*c = rgb.ToHSL()
	return nil
}

// MarshalText implements encoding.TextMarshaler. The color marshals
// through its RGBA equivalent.
func (c HSLA) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting
// "#rrggbbaa" and converting to HSLA.
func (c *HSLA) UnmarshalText(text []byte) error {
	var rgba RGBA
	if err := rgba.UnmarshalText(text); err != nil {
		return err
	}
	*c = rgba.ToHSLA()
	return nil
}

// parseHex parses "#" followed by n two-digit hex bytes.
func parseHex(s string, n int) ([]uint8, error) {
	if len(s) != 1+2*n || s[0] != '#' {
		return nil, fmt.Errorf("invalid hex color %q: want #%s", s, "rrggbbaa"[:2*n])
	}
	v := make([]uint8, n)
	for i := 0; i < n; i++ {
		b, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		v[i] = uint8(b)
	}
	return v, nil
}
