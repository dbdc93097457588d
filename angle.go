package csscolors

import "math"

// Angle is a hue angle in whole degrees, normalized to [0, 360).
type Angle uint16

// Deg creates an Angle from degrees, wrapping modulo 360 in either
// direction: Deg(360) is 0, Deg(-30) is 330, Deg(725) is 5.
func Deg(d int) Angle {
	d %= 360
	if d < 0 {
		d += 360
	}
	return Angle(d)
}

// angleFromFloat rounds a hue in degrees to the nearest whole degree
// and normalizes it into [0, 360). Shares the half-away-from-zero
// rounding rule with Ratio.
func angleFromFloat(h float64) Angle {
	return Deg(int(math.Round(h)))
}

// Degrees returns the angle in degrees, in [0, 360).
func (a Angle) Degrees() uint16 {
	return uint16(a)
}

// Rotate returns the angle rotated by another, wrapping modulo 360.
// Rotating backwards is expressed with a negative Deg argument:
// a.Rotate(Deg(-30)).
func (a Angle) Rotate(by Angle) Angle {
	return Angle((uint32(a) + uint32(by)) % 360)
}
