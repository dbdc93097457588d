package csscolors

import "fmt"

// HSL is a color in the HSL model: hue in degrees, saturation and
// lightness as percentages held at byte resolution.
type HSL struct {
	H    Angle
	S, L Ratio
}

// NewHSL creates an HSL color from a hue in degrees (wrapping modulo
// 360) and saturation/lightness percentages (clamped to [0, 100]).
func NewHSL(h, s, l int) HSL {
	return HSL{H: Deg(h), S: Percent(s), L: Percent(l)}
}

// HSLA is a color in the HSL model with an alpha channel.
type HSLA struct {
	H       Angle
	S, L, A Ratio
}

// NewHSLA creates an HSLA color from a hue in degrees, saturation and
// lightness percentages, and an alpha fraction in [0, 1].
func NewHSLA(h, s, l int, a float64) HSLA {
	return HSLA{H: Deg(h), S: Percent(s), L: Percent(l), A: RatioFromFloat(a)}
}

// ToRGB converts the color to its RGB representation.
func (c HSL) ToRGB() RGB {
	r, g, b := hslToRGB(float64(c.H), c.S.Float(), c.L.Float())
	return RGB{R: RatioFromFloat(r), G: RatioFromFloat(g), B: RatioFromFloat(b)}
}

// ToRGBA converts the color to fully opaque RGBA.
func (c HSL) ToRGBA() RGBA {
	return c.ToRGB().ToRGBA()
}

// ToHSL returns the color unchanged.
func (c HSL) ToHSL() HSL { return c }

// ToHSLA returns the color as fully opaque HSLA.
func (c HSL) ToHSLA() HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L, A: 255}
}

// CSS renders the color as CSS text, e.g. "hsl(9, 100%, 64%)".
func (c HSL) CSS() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H.Degrees(), c.S.Percent(), c.L.Percent())
}

// Hex renders the RGB equivalent as a lowercase hex string.
func (c HSL) Hex() string {
	return c.ToRGB().Hex()
}

// String implements fmt.Stringer using the CSS form.
func (c HSL) String() string { return c.CSS() }

// Saturate increases saturation by an absolute amount, saturating at
// full saturation.
func (c HSL) Saturate(amount Ratio) HSL {
	c.S = c.S.Add(amount)
	return c
}

// Desaturate decreases saturation by an absolute amount, stopping at
// zero.
func (c HSL) Desaturate(amount Ratio) HSL {
	c.S = c.S.Sub(amount)
	return c
}

// Lighten increases lightness by an absolute amount, saturating at
// white.
func (c HSL) Lighten(amount Ratio) HSL {
	c.L = c.L.Add(amount)
	return c
}

// Darken decreases lightness by an absolute amount, stopping at black.
func (c HSL) Darken(amount Ratio) HSL {
	c.L = c.L.Sub(amount)
	return c
}

// Spin rotates the hue by an angle, wrapping modulo 360 in either
// direction.
func (c HSL) Spin(by Angle) HSL {
	c.H = c.H.Rotate(by)
	return c
}

// Greyscale removes all saturation, preserving hue and lightness.
func (c HSL) Greyscale() HSL {
	c.S = 0
	return c
}

// FadeIn increases opacity by an amount, treating the color as opaque
// first, so the result is always fully opaque HSLA.
func (c HSL) FadeIn(amount Ratio) HSLA {
	return c.ToHSLA().FadeIn(amount)
}

// FadeOut decreases opacity by an amount, treating the color as opaque
// first.
func (c HSL) FadeOut(amount Ratio) HSLA {
	return c.ToHSLA().FadeOut(amount)
}

// Fade sets the opacity to exactly the given amount.
func (c HSL) Fade(amount Ratio) HSLA {
	return c.ToHSLA().Fade(amount)
}

// Mix blends the color with another in variable proportion; weight is
// the share of the receiver. Blending happens channel-wise in the RGB
// model; the result is converted back to HSLA.
func (c HSL) Mix(other Color, weight Ratio) HSLA {
	return mixRGBA(c.ToRGBA(), other.ToRGBA(), weight).ToHSLA()
}

// Tint mixes the color with white; weight is the share of the receiver.
func (c HSL) Tint(weight Ratio) HSL {
	return c.Mix(White, weight).ToHSL()
}

// Shade mixes the color with black; weight is the share of the receiver.
func (c HSL) Shade(weight Ratio) HSL {
	return c.Mix(Black, weight).ToHSL()
}

// ToRGB converts the color to RGB, dropping the alpha channel.
func (c HSLA) ToRGB() RGB {
	return c.ToHSL().ToRGB()
}

// ToRGBA converts the color to RGBA, preserving the alpha channel.
func (c HSLA) ToRGBA() RGBA {
	rgb := c.ToRGB()
	return RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: c.A}
}

// ToHSL returns the color without its alpha channel.
func (c HSLA) ToHSL() HSL {
	return HSL{H: c.H, S: c.S, L: c.L}
}

// ToHSLA returns the color unchanged.
func (c HSLA) ToHSLA() HSLA { return c }

// CSS renders the color as CSS text with a two-decimal alpha,
// e.g. "hsla(9, 100%, 64%, 0.50)".
func (c HSLA) CSS() string {
	return fmt.Sprintf("hsla(%d, %d%%, %d%%, %.2f)", c.H.Degrees(), c.S.Percent(), c.L.Percent(), c.A.Float())
}

// Hex renders the RGBA equivalent as a lowercase hex string with an
// alpha byte.
func (c HSLA) Hex() string {
	return c.ToRGBA().Hex()
}

// String implements fmt.Stringer using the CSS form.
func (c HSLA) String() string { return c.CSS() }

// Saturate increases saturation by an absolute amount, preserving alpha.
func (c HSLA) Saturate(amount Ratio) HSLA {
	c.S = c.S.Add(amount)
	return c
}

// Desaturate decreases saturation by an absolute amount, preserving
// alpha.
func (c HSLA) Desaturate(amount Ratio) HSLA {
	c.S = c.S.Sub(amount)
	return c
}

// Lighten increases lightness by an absolute amount, preserving alpha.
func (c HSLA) Lighten(amount Ratio) HSLA {
	c.L = c.L.Add(amount)
	return c
}

// Darken decreases lightness by an absolute amount, preserving alpha.
func (c HSLA) Darken(amount Ratio) HSLA {
	c.L = c.L.Sub(amount)
	return c
}

// Spin rotates the hue by an angle, preserving alpha.
func (c HSLA) Spin(by Angle) HSLA {
	c.H = c.H.Rotate(by)
	return c
}

// Greyscale removes all saturation, preserving hue, lightness and alpha.
func (c HSLA) Greyscale() HSLA {
	c.S = 0
	return c
}

// FadeIn increases opacity by an amount, saturating at fully opaque.
func (c HSLA) FadeIn(amount Ratio) HSLA {
	c.A = c.A.Add(amount)
	return c
}

// FadeOut decreases opacity by an amount, stopping at fully transparent.
func (c HSLA) FadeOut(amount Ratio) HSLA {
	c.A = c.A.Sub(amount)
	return c
}

// Fade sets the opacity to exactly the given amount.
func (c HSLA) Fade(amount Ratio) HSLA {
	c.A = amount
	return c
}

// Mix blends the color with another in variable proportion; weight is
// the share of the receiver.
func (c HSLA) Mix(other Color, weight Ratio) HSLA {
	return mixRGBA(c.ToRGBA(), other.ToRGBA(), weight).ToHSLA()
}

// Tint mixes the color with white; weight is the share of the receiver.
func (c HSLA) Tint(weight Ratio) HSLA {
	return c.Mix(White, weight)
}

// Shade mixes the color with black; weight is the share of the receiver.
func (c HSLA) Shade(weight Ratio) HSLA {
	return c.Mix(Black, weight)
}
