package csscolors

import "github.com/lucasb-eyer/go-colorful"

// Bridge to github.com/lucasb-eyer/go-colorful, which opens up color
// spaces beyond this library's model set (Lab, Luv, HCL, ...) and its
// distance and blending functions. colorful.Color carries no alpha, so
// the alpha channel is dropped on the way out; convert back through
// FromColorful and reattach alpha with Fade if needed.

// Colorful returns the color as a go-colorful color.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.R.Float(), G: c.G.Float(), B: c.B.Float()}
}

// Colorful returns the color as a go-colorful color. Alpha is dropped.
func (c RGBA) Colorful() colorful.Color {
	return c.ToRGB().Colorful()
}

// Colorful returns the color as a go-colorful color, constructed in
// colorful's own HSL space to avoid double rounding.
func (c HSL) Colorful() colorful.Color {
	return colorful.Hsl(float64(c.H), c.S.Float(), c.L.Float())
}

// Colorful returns the color as a go-colorful color. Alpha is dropped.
func (c HSLA) Colorful() colorful.Color {
	return c.ToHSL().Colorful()
}

// FromColorful converts a go-colorful color into an RGB value.
// Out-of-gamut channels are clamped to the displayable range first.
func FromColorful(c colorful.Color) RGB {
	cc := c.Clamped()
	return RGB{
		R: RatioFromFloat(cc.R),
		G: RatioFromFloat(cc.G),
		B: RatioFromFloat(cc.B),
	}
}
