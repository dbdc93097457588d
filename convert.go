package csscolors

import "math"

// rgbToHSL converts normalized RGB channels in [0, 1] to hue in degrees
// [0, 360) and saturation/lightness fractions in [0, 1].
//
// Achromatic input (delta == 0) yields hue 0 and saturation 0 without
// ever dividing by zero.
func rgbToHSL(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	l = (max + min) / 2

	if delta == 0 {
		return 0, 0, l
	}

	s = delta / (1 - math.Abs(2*l-1))

	switch max {
	case r:
		h = math.Mod((g-b)/delta, 6)
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60

	return h, s, l
}

// hslToRGB converts hue in degrees [0, 360) and saturation/lightness
// fractions in [0, 1] to normalized RGB channels in [0, 1] using the
// standard chroma/hue-sector reconstruction.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return r + m, g + m, b + m
}
