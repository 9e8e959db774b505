package colour

import (
	"fmt"
	"math"
)

// Harmony schemes rotate the hue of a colour around the HSL wheel while
// preserving saturation and lightness (except where a scheme is defined
// in terms of lightness). Hue arithmetic wraps modulo 360.

// rotateHue returns the colour with its HSL hue rotated by offset
// degrees.
func rotateHue(rgb RGB, offset float64) RGB {
	h, s, l := rgbToHSL(rgb)
	h = math.Mod(h+offset, 360)
	if h < 0 {
		h += 360
	}
	return HSLToRGB(h, s, l)
}

// Complementary returns the colour opposite on the colour wheel.
func Complementary(rgb RGB) RGB {
	return rotateHue(rgb, 180)
}

// Analogous returns adjacent colours on the wheel: for i = 1..count the
// hues +30°·i and -30°·i, interleaved near/far, 2·count colours total.
func Analogous(rgb RGB, count int) []RGB {
	colors := make([]RGB, 0, count*2)
	for i := 1; i <= count; i++ {
		colors = append(colors, rotateHue(rgb, float64(30*i)))
		if len(colors) < count*2 {
			colors = append(colors, rotateHue(rgb, float64(-30*i)))
		}
	}
	return colors
}

// Triadic returns the two colours 120° and 240° around the wheel.
func Triadic(rgb RGB) []RGB {
	return []RGB{rotateHue(rgb, 120), rotateHue(rgb, 240)}
}

// Tetradic returns the three colours 90°, 180° and 270° around the wheel.
func Tetradic(rgb RGB) []RGB {
	return []RGB{rotateHue(rgb, 90), rotateHue(rgb, 180), rotateHue(rgb, 270)}
}

// SplitComplementary returns the colours 150° and 210° around the wheel.
func SplitComplementary(rgb RGB) []RGB {
	return []RGB{rotateHue(rgb, 150), rotateHue(rgb, 210)}
}

// Monochromatic returns count colours with the same hue and saturation
// and lightness stepped evenly over (0, 1) exclusive of the endpoints.
func Monochromatic(rgb RGB, count int) []RGB {
	h, s, _ := rgbToHSL(rgb)

	palette := make([]RGB, 0, count)
	for i := 0; i < count; i++ {
		l := float64(i+1) / float64(count+1)
		palette = append(palette, HSLToRGB(h, s, l))
	}
	return palette
}

// ShadesAndTints returns count darker and count lighter variants of the
// colour: shades step lightness down by 0.15 per step (clamped at 0),
// tints step it up by 0.15 (clamped at 1).
func ShadesAndTints(rgb RGB, count int) (shades, tints []RGB) {
	h, s, l := rgbToHSL(rgb)

	for i := 1; i <= count; i++ {
		step := float64(i) * 0.15
		shades = append(shades, HSLToRGB(h, s, math.Max(0, l-step)))
		tints = append(tints, HSLToRGB(h, s, math.Min(1, l+step)))
	}
	return shades, tints
}

// Scheme identifies a harmony scheme for dispatch from the API layer.
type Scheme string

const (
	SchemeComplementary      Scheme = "complementary"
	SchemeAnalogous          Scheme = "analogous"
	SchemeTriadic            Scheme = "triadic"
	SchemeTetradic           Scheme = "tetradic"
	SchemeSplitComplementary Scheme = "split-complementary"
	SchemeMonochromatic      Scheme = "monochromatic"
	SchemeShades             Scheme = "shades"
	SchemeTints              Scheme = "tints"
)

// ValidSchemes lists every recognised harmony scheme.
func ValidSchemes() []Scheme {
	return []Scheme{
		SchemeComplementary,
		SchemeAnalogous,
		SchemeTriadic,
		SchemeTetradic,
		SchemeSplitComplementary,
		SchemeMonochromatic,
		SchemeShades,
		SchemeTints,
	}
}

// SchemeColors generates the colours for a named scheme. count applies
// to the schemes parameterised by it (analogous, monochromatic, shades,
// tints) and is ignored otherwise.
func SchemeColors(rgb RGB, scheme Scheme, count int) ([]RGB, error) {
	if count <= 0 {
		count = 3
	}
	switch scheme {
	case SchemeComplementary:
		return []RGB{Complementary(rgb)}, nil
	case SchemeAnalogous:
		return Analogous(rgb, count), nil
	case SchemeTriadic:
		return Triadic(rgb), nil
	case SchemeTetradic:
		return Tetradic(rgb), nil
	case SchemeSplitComplementary:
		return SplitComplementary(rgb), nil
	case SchemeMonochromatic:
		return Monochromatic(rgb, count), nil
	case SchemeShades:
		shades, _ := ShadesAndTints(rgb, count)
		return shades, nil
	case SchemeTints:
		_, tints := ShadesAndTints(rgb, count)
		return tints, nil
	default:
		return nil, fmt.Errorf("unknown harmony scheme: %q (valid schemes: %v)", scheme, ValidSchemes())
	}
}
