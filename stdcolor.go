package csscolors

import "image/color"

// The four color types implement image/color.Color, returning
// alpha-premultiplied 16-bit channels per the stdlib contract, so they
// can be used directly with the image packages.

// RGBA implements image/color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = expand(c.R)
	g = expand(c.G)
	b = expand(c.B)
	return r, g, b, 0xffff
}

// RGBA implements image/color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = expand(c.R) * a / 0xff
	g = expand(c.G) * a / 0xff
	b = expand(c.B) * a / 0xff
	return r, g, b, expand(c.A)
}

// RGBA implements image/color.Color.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

// RGBA implements image/color.Color.
func (c HSLA) RGBA() (r, g, b, a uint32) {
	return c.ToRGBA().RGBA()
}

// expand widens a ratio byte to the 16-bit channel range.
func expand(v Ratio) uint32 {
	w := uint32(v)
	return w | w<<8
}

// FromColor converts any image/color.Color into an RGBA value,
// un-premultiplying through the stdlib NRGBA model.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: Ratio(n.R), G: Ratio(n.G), B: Ratio(n.B), A: Ratio(n.A)}
}
