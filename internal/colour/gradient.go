package colour

import (
	"fmt"
	"strings"
)

// Space selects the colour space used for gradient interpolation.
type Space string

const (
	SpaceRGB Space = "rgb"
	SpaceHSL Space = "hsl"
	SpaceHSV Space = "hsv"
)

// ParseSpace maps a space name to a Space, defaulting to RGB for
// anything unrecognised.
func ParseSpace(s string) Space {
	switch Space(strings.ToLower(s)) {
	case SpaceHSL:
		return SpaceHSL
	case SpaceHSV:
		return SpaceHSV
	default:
		return SpaceRGB
	}
}

// Stop is one colour stop in a gradient. Position is a percentage in
// [0, 100]; the first stop of a gradient sits at 0 and the last at 100.
type Stop struct {
	Hex      string  `json:"hex"`
	RGB      RGB     `json:"rgb"`
	Position float64 `json:"position"`
}

// Interpolate produces steps colours linearly interpolated between a and
// b in the chosen space. The parameter t runs i/(steps-1); a single step
// yields a alone at position 0. Hue interpolates linearly, not around
// the wheel.
func Interpolate(a, b RGB, steps int, space Space) []Stop {
	if steps < 1 {
		steps = 1
	}

	stops := make([]Stop, 0, steps)
	for i := 0; i < steps; i++ {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}

		var rgb RGB
		switch space {
		case SpaceHSL:
			h1, s1, l1 := rgbToHSL(a)
			h2, s2, l2 := rgbToHSL(b)
			rgb = HSLToRGB(lerp(h1, h2, t), lerp(s1, s2, t), lerp(l1, l2, t))
		case SpaceHSV:
			h1, s1, v1 := rgbToHSV(a)
			h2, s2, v2 := rgbToHSV(b)
			rgb = HSVToRGB(lerp(h1, h2, t), lerp(s1, s2, t), lerp(v1, v2, t))
		default:
			rgb = RGB{
				R: uint8(lerp(float64(a.R), float64(b.R), t)),
				G: uint8(lerp(float64(a.G), float64(b.G), t)),
				B: uint8(lerp(float64(a.B), float64(b.B), t)),
			}
		}

		stops = append(stops, Stop{
			Hex:      rgb.HexUpper(),
			RGB:      rgb,
			Position: round1(t * 100),
		})
	}

	return stops
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Generate builds a gradient through two or more anchor colours. The
// total step count is split across the segments between consecutive
// anchors, each segment getting at least two stops; shared segment
// boundaries appear once.
func Generate(colors []RGB, totalSteps int, space Space) ([]Stop, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("%w: gradient needs at least 2 colours, got %d", ErrInsufficientColors, len(colors))
	}
	if totalSteps < 2 {
		totalSteps = 2
	}

	segments := len(colors) - 1
	stepsPerSegment := totalSteps / segments
	if stepsPerSegment < 2 {
		stepsPerSegment = 2
	}

	var stops []Stop
	for i := 0; i < segments; i++ {
		segment := Interpolate(colors[i], colors[i+1], stepsPerSegment, space)
		if i > 0 {
			// The segment start duplicates the previous segment end.
			segment = segment[1:]
		}
		stops = append(stops, segment...)
	}

	// Re-spread positions across the full gradient.
	for i := range stops {
		t := 0.0
		if len(stops) > 1 {
			t = float64(i) / float64(len(stops)-1)
		}
		stops[i].Position = round1(t * 100)
	}

	return stops, nil
}

// GradientType selects the declarative gradient form.
type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
	GradientConic  GradientType = "conic"
)

// CSSResult is a declarative gradient descriptor.
type CSSResult struct {
	Background string       `json:"background"`
	FullCSS    string       `json:"full_css"`
	Type       GradientType `json:"type"`
}

// CSS renders gradient stops as a CSS gradient descriptor. Linear
// gradients take an angle in degrees; radial and conic gradients take a
// centre point in percentages. Unknown types render as linear.
func CSS(stops []Stop, typ GradientType, angle, centerX, centerY int) CSSResult {
	parts := make([]string, 0, len(stops))
	for _, s := range stops {
		parts = append(parts, fmt.Sprintf("%s %v%%", s.Hex, s.Position))
	}
	stopList := strings.Join(parts, ", ")

	var css string
	switch typ {
	case GradientRadial:
		css = fmt.Sprintf("radial-gradient(circle at %d%% %d%%, %s)", centerX, centerY, stopList)
	case GradientConic:
		css = fmt.Sprintf("conic-gradient(from %ddeg at %d%% %d%%, %s)", angle, centerX, centerY, stopList)
	default:
		typ = GradientLinear
		css = fmt.Sprintf("linear-gradient(%ddeg, %s)", angle, stopList)
	}

	return CSSResult{
		Background: css,
		FullCSS:    "background: " + css + ";",
		Type:       typ,
	}
}

// Preset is a named multi-colour gradient.
type Preset struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// gradientPresets is the fixed preset table, exposed read-only.
var gradientPresets = []Preset{
	{Name: "Sunset", Colors: []string{"#FF6B6B", "#FFD93D", "#6BCF7F"}},
	{Name: "Ocean", Colors: []string{"#667EEA", "#764BA2", "#F093FB"}},
	{Name: "Forest", Colors: []string{"#134E5E", "#71B280"}},
	{Name: "Fire", Colors: []string{"#FF0000", "#FF7F00", "#FFFF00"}},
	{Name: "Purple Dream", Colors: []string{"#C471F5", "#FA71CD"}},
	{Name: "Cool Blues", Colors: []string{"#2196F3", "#00BCD4", "#009688"}},
	{Name: "Warm Sunset", Colors: []string{"#F2994A", "#F2C94C", "#EB5757"}},
	{Name: "Green Grass", Colors: []string{"#56AB2F", "#A8E063"}},
	{Name: "Royal", Colors: []string{"#141E30", "#243B55"}},
	{Name: "Cherry", Colors: []string{"#EB3349", "#F45C43"}},
}

// Presets returns a copy of the preset table.
func Presets() []Preset {
	out := make([]Preset, len(gradientPresets))
	copy(out, gradientPresets)
	return out
}

// PresetGradient holds a rendered preset: its stops plus the default
// linear CSS form.
type PresetGradient struct {
	Name   string    `json:"name"`
	Colors []string  `json:"colors"`
	Stops  []Stop    `json:"gradient"`
	CSS    CSSResult `json:"css"`
}

// RenderPresets generates every preset gradient with 20 stops in RGB
// space and a 90° linear CSS descriptor.
func RenderPresets() []PresetGradient {
	rendered := make([]PresetGradient, 0, len(gradientPresets))
	for _, preset := range gradientPresets {
		anchors := make([]RGB, 0, len(preset.Colors))
		for _, hex := range preset.Colors {
			anchors = append(anchors, MustParseHex(hex))
		}

		stops, err := Generate(anchors, 20, SpaceRGB)
		if err != nil {
			continue
		}
		rendered = append(rendered, PresetGradient{
			Name:   preset.Name,
			Colors: preset.Colors,
			Stops:  stops,
			CSS:    CSS(stops, GradientLinear, 90, 50, 50),
		})
	}
	return rendered
}
