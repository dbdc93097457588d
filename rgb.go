package csscolors

import "fmt"

// RGB is a color in the RGB model with channels in [0, 255].
type RGB struct {
	R, G, B Ratio
}

// NewRGB creates an RGB color from channel bytes.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: Ratio(r), G: Ratio(g), B: Ratio(b)}
}

// RGBA is a color in the RGB model with an alpha channel.
type RGBA struct {
	R, G, B, A Ratio
}

// NewRGBA creates an RGBA color from channel bytes and an alpha
// fraction in [0, 1]. Alpha outside the range is clamped.
func NewRGBA(r, g, b uint8, a float64) RGBA {
	return RGBA{R: Ratio(r), G: Ratio(g), B: Ratio(b), A: RatioFromFloat(a)}
}

// ToRGB returns the color unchanged.
func (c RGB) ToRGB() RGB { return c }

// ToRGBA returns the color as fully opaque RGBA.
func (c RGB) ToRGBA() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ToHSL converts the color to its HSL representation.
func (c RGB) ToHSL() HSL {
	h, s, l := rgbToHSL(c.R.Float(), c.G.Float(), c.B.Float())
	return HSL{H: angleFromFloat(h), S: RatioFromFloat(s), L: RatioFromFloat(l)}
}

// ToHSLA converts the color to fully opaque HSLA.
func (c RGB) ToHSLA() HSLA {
	return c.ToHSL().ToHSLA()
}

// CSS renders the color as CSS text, e.g. "rgb(255, 99, 71)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R.Byte(), c.G.Byte(), c.B.Byte())
}

// Hex renders the color as a lowercase hex string, e.g. "#fa8072".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R.Byte(), c.G.Byte(), c.B.Byte())
}

// String implements fmt.Stringer using the CSS form.
func (c RGB) String() string { return c.CSS() }

// Saturate increases saturation by an absolute amount, saturating at
// full saturation. Computed in the HSL model.
func (c RGB) Saturate(amount Ratio) RGB {
	return c.ToHSL().Saturate(amount).ToRGB()
}

// Desaturate decreases saturation by an absolute amount, stopping at
// zero. Computed in the HSL model.
func (c RGB) Desaturate(amount Ratio) RGB {
	return c.ToHSL().Desaturate(amount).ToRGB()
}

// Lighten increases lightness by an absolute amount, saturating at
// white. Computed in the HSL model.
func (c RGB) Lighten(amount Ratio) RGB {
	return c.ToHSL().Lighten(amount).ToRGB()
}

// Darken decreases lightness by an absolute amount, stopping at black.
// Computed in the HSL model.
func (c RGB) Darken(amount Ratio) RGB {
	return c.ToHSL().Darken(amount).ToRGB()
}

// Spin rotates the hue by an angle. Use Deg with a negative argument
// to rotate backwards.
func (c RGB) Spin(by Angle) RGB {
	return c.ToHSL().Spin(by).ToRGB()
}

// Greyscale removes all saturation, preserving hue and lightness.
func (c RGB) Greyscale() RGB {
	return c.ToHSL().Greyscale().ToRGB()
}

// FadeIn increases opacity by an amount, treating the color as opaque
// first, so the result is always fully opaque RGBA.
func (c RGB) FadeIn(amount Ratio) RGBA {
	return c.ToRGBA().FadeIn(amount)
}

// FadeOut decreases opacity by an amount, treating the color as opaque
// first.
func (c RGB) FadeOut(amount Ratio) RGBA {
	return c.ToRGBA().FadeOut(amount)
}

// Fade sets the opacity to exactly the given amount.
func (c RGB) Fade(amount Ratio) RGBA {
	return c.ToRGBA().Fade(amount)
}

// Mix blends the color with another in variable proportion; weight is
// the share of the receiver. Opacity is taken into account: the more
// opaque input pulls the blend toward itself.
func (c RGB) Mix(other Color, weight Ratio) RGBA {
	return mixRGBA(c.ToRGBA(), other.ToRGBA(), weight)
}

// Tint mixes the color with white; weight is the share of the receiver.
func (c RGB) Tint(weight Ratio) RGB {
	return c.Mix(White, weight).ToRGB()
}

// Shade mixes the color with black; weight is the share of the receiver.
func (c RGB) Shade(weight Ratio) RGB {
	return c.Mix(Black, weight).ToRGB()
}

// ToRGB returns the color without its alpha channel.
func (c RGBA) ToRGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// ToRGBA returns the color unchanged.
func (c RGBA) ToRGBA() RGBA { return c }

// ToHSL converts the color to HSL, dropping the alpha channel.
func (c RGBA) ToHSL() HSL {
	return c.ToRGB().ToHSL()
}

// ToHSLA converts the color to HSLA, preserving the alpha channel.
func (c RGBA) ToHSLA() HSLA {
	hsl := c.ToHSL()
	return HSLA{H: hsl.H, S: hsl.S, L: hsl.L, A: c.A}
}

// CSS renders the color as CSS text with a two-decimal alpha,
// e.g. "rgba(255, 99, 71, 0.50)".
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", c.R.Byte(), c.G.Byte(), c.B.Byte(), c.A.Float())
}

// Hex renders the color as a lowercase hex string with an alpha byte,
// e.g. "#fa807280".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R.Byte(), c.G.Byte(), c.B.Byte(), c.A.Byte())
}

// String implements fmt.Stringer using the CSS form.
func (c RGBA) String() string { return c.CSS() }

// Saturate increases saturation by an absolute amount, preserving alpha.
func (c RGBA) Saturate(amount Ratio) RGBA {
	return c.ToHSLA().Saturate(amount).ToRGBA()
}

// Desaturate decreases saturation by an absolute amount, preserving alpha.
func (c RGBA) Desaturate(amount Ratio) RGBA {
	return c.ToHSLA().Desaturate(amount).ToRGBA()
}

// Lighten increases lightness by an absolute amount, preserving alpha.
func (c RGBA) Lighten(amount Ratio) RGBA {
	return c.ToHSLA().Lighten(amount).ToRGBA()
}

// Darken decreases lightness by an absolute amount, preserving alpha.
func (c RGBA) Darken(amount Ratio) RGBA {
	return c.ToHSLA().Darken(amount).ToRGBA()
}

// Spin rotates the hue by an angle, preserving alpha.
func (c RGBA) Spin(by Angle) RGBA {
	return c.ToHSLA().Spin(by).ToRGBA()
}

// Greyscale removes all saturation, preserving hue, lightness and alpha.
func (c RGBA) Greyscale() RGBA {
	return c.ToHSLA().Greyscale().ToRGBA()
}

// FadeIn increases opacity by an amount, saturating at fully opaque.
func (c RGBA) FadeIn(amount Ratio) RGBA {
	c.A = c.A.Add(amount)
	return c
}

// FadeOut decreases opacity by an amount, stopping at fully transparent.
func (c RGBA) FadeOut(amount Ratio) RGBA {
	c.A = c.A.Sub(amount)
	return c
}

// Fade sets the opacity to exactly the given amount.
func (c RGBA) Fade(amount Ratio) RGBA {
	c.A = amount
	return c
}

// Mix blends the color with another in variable proportion; weight is
// the share of the receiver.
func (c RGBA) Mix(other Color, weight Ratio) RGBA {
	return mixRGBA(c, other.ToRGBA(), weight)
}

// Tint mixes the color with white; weight is the share of the receiver.
func (c RGBA) Tint(weight Ratio) RGBA {
	return c.Mix(White, weight)
}

// Shade mixes the color with black; weight is the share of the receiver.
func (c RGBA) Shade(weight Ratio) RGBA {
	return c.Mix(Black, weight)
}
