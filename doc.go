// Package csscolors models CSS color values.
//
// # Overview
//
// csscolors provides the two CSS color models RGB(A) and HSL(A) as
// immutable value types, conversion between them, CSS3-compatible text
// rendering, and the color operations of the Less preprocessor
// (lighten, darken, saturate, desaturate, fade in/out, spin, mix,
// tint, shade, greyscale). Every function is pure: operations return
// new values and never mutate their receiver, so the package is safe
// for concurrent use without synchronization.
//
// # Quick Start
//
//	import csscolors "github.com/nyxkrage/css-colors"
//
//	tomato := csscolors.NewRGB(255, 99, 71)
//
//	tomato.CSS()                             // "rgb(255, 99, 71)"
//	tomato.ToHSL().CSS()                     // "hsl(9, 100%, 64%)"
//	tomato.Darken(csscolors.Percent(20))     // a darker tomato, still RGB
//	tomato.Fade(csscolors.Percent(50)).CSS() // "rgba(255, 99, 71, 0.50)"
//
// # Models and precision
//
// Channels, percentages and alpha are all held at byte resolution
// (0-255); hue is held in whole degrees. Conversion math runs in
// float64 and results are rounded half-away-from-zero back to that
// resolution. RGB to HSL and back round-trips within one unit per
// channel for typical colors; highly saturated extremes can move a
// channel by up to three. Out-of-range constructor input is clamped
// (hue wraps).
//
// # Interop
//
// All color types implement image/color.Color and marshal to and from
// hex text (and therefore JSON). Colorful converts to
// github.com/lucasb-eyer/go-colorful for color spaces beyond RGB/HSL.
//
// # Non-goals
//
// The package does not parse CSS, has no color-name table, and models
// no color spaces beyond RGB and HSL.
package csscolors
