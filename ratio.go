package csscolors

import "math"

// Ratio is a bounded quantity stored at byte resolution.
// It represents channel intensities, saturation/lightness percentages,
// and alpha values uniformly as a fraction n/255.
//
// Storing percentages at byte resolution (so 50% is 128/255, not exactly
// one half) matches the CSS preprocessor behavior this library models and
// keeps repeated operations stable under round-tripping.
type Ratio uint8

// Percent creates a Ratio from a percentage.
// Values outside [0, 100] are clamped.
func Percent(p int) Ratio {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return Ratio(math.Round(float64(p) * 255 / 100))
}

// RatioFromFloat creates a Ratio from a fraction in [0, 1].
// Values outside the range are clamped.
// Rounding is half-away-from-zero; this is the only place a float
// becomes a ratio byte, so all conversions share one rounding rule.
func RatioFromFloat(f float64) Ratio {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return Ratio(math.Round(f * 255))
}

// Byte returns the underlying byte value.
func (r Ratio) Byte() uint8 {
	return uint8(r)
}

// Percent returns the ratio as a rounded percentage in [0, 100].
func (r Ratio) Percent() uint8 {
	return uint8(math.Round(float64(r) * 100 / 255))
}

// Float returns the ratio as a fraction in [0, 1].
func (r Ratio) Float() float64 {
	return float64(r) / 255
}

// Add returns the sum of two ratios, saturating at the upper bound.
func (r Ratio) Add(s Ratio) Ratio {
	sum := uint16(r) + uint16(s)
	if sum > 255 {
		return 255
	}
	return Ratio(sum)
}

// Sub returns the difference of two ratios, saturating at zero.
func (r Ratio) Sub(s Ratio) Ratio {
	if s >= r {
		return 0
	}
	return r - s
}
