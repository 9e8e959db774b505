// Package colour implements the colour mathematics behind huecraft:
// colour-space conversion, named-colour lookup, harmony and gradient
// generation, colour-vision-deficiency simulation, mixing and dominant
// colour extraction.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSL is a colour in the HSL cylinder. H is in degrees [0, 360),
// S and L are percentages [0, 100]. Values are kept at full precision;
// call Rounded at the reporting boundary.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HSV is a colour in the HSV cylinder, with the same unit conventions
// as HSL.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// CMYK is a colour in the subtractive ink model. All channels are
// percentages [0, 100].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// ParseHex parses a hex colour string of the form "#RRGGBB" or "RRGGBB",
// case-insensitive. A single leading '#' is stripped; anything else that
// is not exactly six hexadecimal digits fails with ErrInvalidFormat.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		channels[i] = uint8(v)
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustParseHex is ParseHex for static literals; it panics on malformed
// input and is only used for the built-in registries.
func MustParseHex(s string) RGB {
	rgb, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return rgb
}

// rgbToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l = (maxVal + minVal) / 2.0

	// Achromatic: hue is undefined, reported as 0.
	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, l
}

// HSLToRGB converts HSL to RGB colour space.
// h is hue in degrees (0-360), s and l are fractions (0-1).
func HSLToRGB(h, s, l float64) RGB {
	if s == 0 {
		// Achromatic (grey).
		v := uint8(clamp(l*255, 0, 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToRGB(p, q, h+120)
	g := hueToRGB(p, q, h)
	b := hueToRGB(p, q, h-120)

	return RGB{
		R: uint8(clamp(r*255, 0, 255)),
		G: uint8(clamp(g*255, 0, 255)),
		B: uint8(clamp(b*255, 0, 255)),
	}
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// rgbToHSV converts RGB to HSV colour space.
// Returns hue (0-360), saturation (0-1), value (0-1).
func rgbToHSV(rgb RGB) (h, s, v float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v = maxVal
	if maxVal == 0 || delta == 0 {
		return 0, 0, v
	}
	s = delta / maxVal

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, v
}

// HSVToRGB converts HSV to RGB colour space.
// h is hue in degrees (0-360), s and v are fractions (0-1).
func HSVToRGB(h, s, v float64) RGB {
	if s == 0 {
		c := uint8(clamp(v*255, 0, 255))
		return RGB{R: c, G: c, B: c}
	}

	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}

	sector := h / 60
	i := math.Floor(sector)
	f := sector - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{
		R: uint8(clamp(r*255, 0, 255)),
		G: uint8(clamp(g*255, 0, 255)),
		B: uint8(clamp(b*255, 0, 255)),
	}
}

// ToHSL converts the colour to HSL with hue in degrees and
// saturation/lightness as percentages.
func (rgb RGB) ToHSL() HSL {
	h, s, l := rgbToHSL(rgb)
	return HSL{H: h, S: s * 100, L: l * 100}
}

// ToHSV converts the colour to HSV with hue in degrees and
// saturation/value as percentages.
func (rgb RGB) ToHSV() HSV {
	h, s, v := rgbToHSV(rgb)
	return HSV{H: h, S: s * 100, V: v * 100}
}

// ToCMYK converts the colour to CMYK percentages. Pure black maps to
// C=M=Y=0, K=100 rather than dividing by zero.
func (rgb RGB) ToCMYK() CMYK {
	if rgb.R == 0 && rgb.G == 0 && rgb.B == 0 {
		return CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	k := 1 - math.Max(r, math.Max(g, b))
	c := (1 - r - k) / (1 - k)
	m := (1 - g - k) / (1 - k)
	y := (1 - b - k) / (1 - k)

	return CMYK{C: c * 100, M: m * 100, Y: y * 100, K: k * 100}
}

// RGB converts back to RGB, truncating to integer channels.
func (h HSL) RGB() RGB {
	return HSLToRGB(h.H, h.S/100, h.L/100)
}

// RGB converts back to RGB, truncating to integer channels.
func (h HSV) RGB() RGB {
	return HSVToRGB(h.H, h.S/100, h.V/100)
}

// RGB converts back to RGB, truncating to integer channels.
func (c CMYK) RGB() RGB {
	cf := c.C / 100
	mf := c.M / 100
	yf := c.Y / 100
	kf := c.K / 100

	return RGB{
		R: uint8(clamp(255*(1-cf)*(1-kf), 0, 255)),
		G: uint8(clamp(255*(1-mf)*(1-kf), 0, 255)),
		B: uint8(clamp(255*(1-yf)*(1-kf), 0, 255)),
	}
}

// Rounded returns a copy with each component rounded to one decimal
// place for display.
func (h HSL) Rounded() HSL {
	return HSL{H: round1(h.H), S: round1(h.S), L: round1(h.L)}
}

// Rounded returns a copy with each component rounded to one decimal
// place for display.
func (h HSV) Rounded() HSV {
	return HSV{H: round1(h.H), S: round1(h.S), V: round1(h.V)}
}

// Rounded returns a copy with each component rounded to one decimal
// place for display.
func (c CMYK) Rounded() CMYK {
	return CMYK{C: round1(c.C), M: round1(c.M), Y: round1(c.Y), K: round1(c.K)}
}

// Distance returns the Euclidean distance to another colour in RGB space.
func (rgb RGB) Distance(other RGB) float64 {
	dr := float64(rgb.R) - float64(other.R)
	dg := float64(rgb.G) - float64(other.G)
	db := float64(rgb.B) - float64(other.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// squaredDistance avoids the sqrt for nearest-neighbour scans.
func squaredDistance(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
