package colour

import (
	"fmt"
	"math"
)

// Method selects a colour mixing model.
type Method string

const (
	MethodRGB         Method = "rgb"
	MethodCMYK        Method = "cmyk"
	MethodHSL         Method = "hsl"
	MethodSubtractive Method = "subtractive"
)

// ValidMethods lists every mixing method.
func ValidMethods() []Method {
	return []Method{MethodRGB, MethodCMYK, MethodHSL, MethodSubtractive}
}

// normalizeRatios returns mixing ratios for n colours that sum to 1.
// Nil or mismatched ratios default to uniform weights; explicit ratios
// are renormalised.
func normalizeRatios(n int, ratios []float64) []float64 {
	if len(ratios) != n {
		uniform := make([]float64, n)
		for i := range uniform {
			uniform[i] = 1.0 / float64(n)
		}
		return uniform
	}

	total := 0.0
	for _, r := range ratios {
		total += r
	}
	if total == 0 {
		return normalizeRatios(n, nil)
	}

	normalized := make([]float64, n)
	for i, r := range ratios {
		normalized[i] = r / total
	}
	return normalized
}

// MixRGB mixes colours by weighted-averaging each RGB channel.
func MixRGB(colors []RGB, ratios []float64) (RGB, error) {
	if len(colors) == 0 {
		return RGB{}, fmt.Errorf("%w: no colours to mix", ErrEmptyColorList)
	}
	ratios = normalizeRatios(len(colors), ratios)

	var r, g, b float64
	for i, c := range colors {
		r += float64(c.R) * ratios[i]
		g += float64(c.G) * ratios[i]
		b += float64(c.B) * ratios[i]
	}

	return RGB{R: uint8(clamp(r, 0, 255)), G: uint8(clamp(g, 0, 255)), B: uint8(clamp(b, 0, 255))}, nil
}

// MixCMYK mixes colours by weighted-averaging each CMYK channel and
// converting back to RGB. Closer to physical ink behaviour for dark
// mixtures than straight RGB averaging.
func MixCMYK(colors []RGB, ratios []float64) (RGB, error) {
	if len(colors) == 0 {
		return RGB{}, fmt.Errorf("%w: no colours to mix", ErrEmptyColorList)
	}
	ratios = normalizeRatios(len(colors), ratios)

	var mixed CMYK
	for i, c := range colors {
		cmyk := c.ToCMYK()
		mixed.C += cmyk.C * ratios[i]
		mixed.M += cmyk.M * ratios[i]
		mixed.Y += cmyk.Y * ratios[i]
		mixed.K += cmyk.K * ratios[i]
	}

	return mixed.RGB(), nil
}

// MixHSL mixes colours by weighted-averaging hue, saturation and
// lightness. Hue averaging is linear rather than circular, so hues
// straddling the 0°/360° boundary average to the wrong side of the
// wheel (350° and 10° give 180°, not 0°). Preserved as a documented
// approximation.
func MixHSL(colors []RGB, ratios []float64) (RGB, error) {
	if len(colors) == 0 {
		return RGB{}, fmt.Errorf("%w: no colours to mix", ErrEmptyColorList)
	}
	ratios = normalizeRatios(len(colors), ratios)

	var h, s, l float64
	for i, c := range colors {
		ch, cs, cl := rgbToHSL(c)
		h += ch * ratios[i]
		s += cs * ratios[i]
		l += cl * ratios[i]
	}

	return HSLToRGB(h, s, l), nil
}

// MixSubtractive approximates physical paint mixing via simplified
// Kubelka-Munk theory: channel reflectances are squared, weighted-
// averaged, then square-rooted back.
func MixSubtractive(colors []RGB, ratios []float64) (RGB, error) {
	if len(colors) == 0 {
		return RGB{}, fmt.Errorf("%w: no colours to mix", ErrEmptyColorList)
	}
	ratios = normalizeRatios(len(colors), ratios)

	var r, g, b float64
	for i, c := range colors {
		r += math.Pow(float64(c.R)/255.0, 2) * ratios[i]
		g += math.Pow(float64(c.G)/255.0, 2) * ratios[i]
		b += math.Pow(float64(c.B)/255.0, 2) * ratios[i]
	}

	return RGB{
		R: uint8(clamp(math.Sqrt(r)*255, 0, 255)),
		G: uint8(clamp(math.Sqrt(g)*255, 0, 255)),
		B: uint8(clamp(math.Sqrt(b)*255, 0, 255)),
	}, nil
}

// Mix dispatches to the named mixing method. Unknown methods fall back
// to CMYK mixing rather than erroring.
func Mix(colors []RGB, ratios []float64, method Method) (RGB, error) {
	switch method {
	case MethodRGB:
		return MixRGB(colors, ratios)
	case MethodHSL:
		return MixHSL(colors, ratios)
	case MethodSubtractive:
		return MixSubtractive(colors, ratios)
	case MethodCMYK:
		return MixCMYK(colors, ratios)
	default:
		// Unknown method: default to CMYK.
		return MixCMYK(colors, ratios)
	}
}

// TwoColorMix compares all four mixing methods for a colour pair.
type TwoColorMix struct {
	A              string  `json:"color1"`
	B              string  `json:"color2"`
	Ratio          float64 `json:"ratio"`
	RGBMix         RGB     `json:"rgb"`
	CMYKMix        RGB     `json:"cmyk"`
	HSLMix         RGB     `json:"hsl"`
	SubtractiveMix RGB     `json:"subtractive"`
	Recommendation string  `json:"recommendation"`
}

// MixTwo mixes two colours at a variable ratio (0 = all a, 1 = all b),
// clamped to [0, 1], and reports the result under every method.
func MixTwo(a, b RGB, ratio float64) TwoColorMix {
	ratio = clamp(ratio, 0, 1)
	colors := []RGB{a, b}
	ratios := []float64{1 - ratio, ratio}

	rgbMix, _ := MixRGB(colors, ratios)
	cmykMix, _ := MixCMYK(colors, ratios)
	hslMix, _ := MixHSL(colors, ratios)
	subMix, _ := MixSubtractive(colors, ratios)

	return TwoColorMix{
		A:              a.HexUpper(),
		B:              b.HexUpper(),
		Ratio:          ratio,
		RGBMix:         rgbMix,
		CMYKMix:        cmykMix,
		HSLMix:         hslMix,
		SubtractiveMix: subMix,
		Recommendation: "Use 'subtractive' or 'cmyk' for realistic paint mixing",
	}
}
