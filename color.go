package csscolors

// Color is the common interface of the four color value types
// (RGB, RGBA, HSL, HSLA). It covers model conversion and text
// rendering; the manipulation operations are typed methods on the
// concrete types so that each returns its receiver's model.
//
// Equality is model-sensitive: the types are plain comparable structs
// and == never crosses models, so an RGB value and the equivalent HSL
// value are not equal until one is explicitly converted.
type Color interface {
	// ToRGB converts to the RGB model. Alpha, if present, is dropped.
	ToRGB() RGB
	// ToRGBA converts to the RGB model with alpha. Colors without an
	// alpha channel become fully opaque.
	ToRGBA() RGBA
	// ToHSL converts to the HSL model. Alpha, if present, is dropped.
	ToHSL() HSL
	// ToHSLA converts to the HSL model with alpha. Colors without an
	// alpha channel become fully opaque.
	ToHSLA() HSLA
	// CSS renders the color as CSS text in one of the forms
	// rgb(), rgba(), hsl() or hsla().
	CSS() string
	// Hex renders the color as lowercase #rrggbb, or #rrggbbaa when
	// it carries an alpha channel.
	Hex() string
	// String is the CSS form.
	String() string
}

// Common colors.
var (
	Black   = NewRGB(0, 0, 0)
	White   = NewRGB(255, 255, 255)
	Red     = NewRGB(255, 0, 0)
	Green   = NewRGB(0, 255, 0)
	Blue    = NewRGB(0, 0, 255)
	Yellow  = NewRGB(255, 255, 0)
	Cyan    = NewRGB(0, 255, 255)
	Magenta = NewRGB(255, 0, 255)
)

// mixRGBA blends two colors channel-wise in the RGB model. The weight
// is the share of c1, corrected for opacity: with unequal alphas the
// more opaque color pulls the blend toward itself, so that mixing with
// a fully transparent color changes alpha but not the channels. With
// equal alphas this reduces to a plain weighted average.
func mixRGBA(c1, c2 RGBA, weight Ratio) RGBA {
	p := weight.Float()
	w := 2*p - 1
	d := c1.A.Float() - c2.A.Float()

	w1 := w
	if w*d != -1 {
		w1 = (w + d) / (1 + w*d)
	}
	w1 = (w1 + 1) / 2
	w2 := 1 - w1

	return RGBA{
		R: RatioFromFloat(c1.R.Float()*w1 + c2.R.Float()*w2),
		G: RatioFromFloat(c1.G.Float()*w1 + c2.G.Float()*w2),
		B: RatioFromFloat(c1.B.Float()*w1 + c2.B.Float()*w2),
		A: RatioFromFloat(c1.A.Float()*p + c2.A.Float()*(1-p)),
	}
}
