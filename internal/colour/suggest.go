package colour

import (
	"fmt"
	"strings"
)

// CuratedPalette is a hand-picked five colour palette with descriptive
// metadata, keyed by either an industry or a mood.
type CuratedPalette struct {
	Name        string   `json:"name"`
	Colors      []string `json:"colors"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

var industryPalettes = []CuratedPalette{
	{
		Name:        "tech",
		Colors:      []string{"#0066CC", "#00D4FF", "#6C63FF", "#1E1E1E", "#FFFFFF"},
		Description: "Modern, clean, professional tech colors",
		Tags:        []string{"innovation", "trust", "digital"},
	},
	{
		Name:        "healthcare",
		Colors:      []string{"#00A896", "#02C39A", "#05668D", "#F0F3BD", "#FFFFFF"},
		Description: "Calm, trustworthy, clean medical colors",
		Tags:        []string{"health", "care", "trust", "clean"},
	},
	{
		Name:        "finance",
		Colors:      []string{"#003F5C", "#2F4B7C", "#665191", "#A05195", "#D45087"},
		Description: "Professional, stable, trustworthy",
		Tags:        []string{"trust", "stability", "professional"},
	},
	{
		Name:        "food",
		Colors:      []string{"#FF6B6B", "#FFA500", "#FFDD00", "#7FBA00", "#00B159"},
		Description: "Appetizing, fresh, vibrant",
		Tags:        []string{"fresh", "appetizing", "natural"},
	},
	{
		Name:        "fashion",
		Colors:      []string{"#1A1A1D", "#4E4E50", "#6F2232", "#950740", "#C3073F"},
		Description: "Bold, elegant, sophisticated",
		Tags:        []string{"elegant", "bold", "style"},
	},
	{
		Name:        "education",
		Colors:      []string{"#F4A261", "#E76F51", "#2A9D8F", "#264653", "#E9C46A"},
		Description: "Friendly, engaging, warm",
		Tags:        []string{"learning", "growth", "friendly"},
	},
	{
		Name:        "eco",
		Colors:      []string{"#2D6A4F", "#40916C", "#52B788", "#74C69D", "#95D5B2"},
		Description: "Natural, sustainable, organic",
		Tags:        []string{"nature", "eco", "sustainable"},
	},
	{
		Name:        "luxury",
		Colors:      []string{"#000000", "#1C1C1C", "#C9A961", "#8B7355", "#FFFFFF"},
		Description: "Premium, exclusive, elegant",
		Tags:        []string{"luxury", "premium", "exclusive"},
	},
	{
		Name:        "creative",
		Colors:      []string{"#F72585", "#7209B7", "#3A0CA3", "#4361EE", "#4CC9F0"},
		Description: "Bold, vibrant, artistic",
		Tags:        []string{"creative", "artistic", "bold"},
	},
	{
		Name:        "corporate",
		Colors:      []string{"#003049", "#D62828", "#F77F00", "#FCBF49", "#EAE2B7"},
		Description: "Professional, reliable, established",
		Tags:        []string{"professional", "corporate", "reliable"},
	},
}

var moodPalettes = []CuratedPalette{
	{
		Name:        "calm",
		Colors:      []string{"#A8DADC", "#457B9D", "#1D3557", "#F1FAEE", "#E63946"},
		Description: "Peaceful and serene",
		Tags:        []string{"peaceful", "serene", "relaxed"},
	},
	{
		Name:        "energetic",
		Colors:      []string{"#FF006E", "#FB5607", "#FFBE0B", "#8338EC", "#3A86FF"},
		Description: "Vibrant and dynamic",
		Tags:        []string{"energetic", "dynamic", "exciting"},
	},
	{
		Name:        "professional",
		Colors:      []string{"#14213D", "#FCA311", "#E5E5E5", "#FFFFFF", "#000000"},
		Description: "Serious and trustworthy",
		Tags:        []string{"professional", "trustworthy", "serious"},
	},
	{
		Name:        "playful",
		Colors:      []string{"#FFB5E8", "#FF9CEE", "#FFCCF9", "#FCC2FF", "#F6A6FF"},
		Description: "Fun and lighthearted",
		Tags:        []string{"playful", "fun", "lighthearted"},
	},
	{
		Name:        "elegant",
		Colors:      []string{"#2B2D42", "#8D99AE", "#EDF2F4", "#EF233C", "#D90429"},
		Description: "Sophisticated and refined",
		Tags:        []string{"elegant", "sophisticated", "refined"},
	},
	{
		Name:        "warm",
		Colors:      []string{"#FFBA08", "#FAA307", "#F48C06", "#E85D04", "#DC2F02"},
		Description: "Cozy and inviting",
		Tags:        []string{"warm", "cozy", "inviting"},
	},
	{
		Name:        "cool",
		Colors:      []string{"#023E8A", "#0077B6", "#0096C7", "#00B4D8", "#48CAE4"},
		Description: "Fresh and modern",
		Tags:        []string{"cool", "fresh", "modern"},
	},
	{
		Name:        "nature",
		Colors:      []string{"#386641", "#6A994E", "#A7C957", "#F2E8CF", "#BC4749"},
		Description: "Natural and organic",
		Tags:        []string{"natural", "organic", "earthy"},
	},
}

// MoodPalette returns the curated palette for a mood. The second return
// value is false when the mood is unknown; callers typically fall back
// to a default palette and tell the client.
func MoodPalette(mood string) (CuratedPalette, bool) {
	mood = strings.ToLower(strings.TrimSpace(mood))
	for _, p := range moodPalettes {
		if p.Name == mood {
			return p, true
		}
	}
	return CuratedPalette{}, false
}

// IndustryPalette returns the curated palette for an industry.
func IndustryPalette(industry string) (CuratedPalette, bool) {
	industry = strings.ToLower(strings.TrimSpace(industry))
	for _, p := range industryPalettes {
		if p.Name == industry {
			return p, true
		}
	}
	return CuratedPalette{}, false
}

// AllMoods returns every mood palette in curated order.
func AllMoods() []CuratedPalette {
	out := make([]CuratedPalette, len(moodPalettes))
	copy(out, moodPalettes)
	return out
}

// AllIndustries returns every industry palette in curated order.
func AllIndustries() []CuratedPalette {
	out := make([]CuratedPalette, len(industryPalettes))
	copy(out, industryPalettes)
	return out
}

// MoodNames returns the known mood names.
func MoodNames() []string {
	names := make([]string, len(moodPalettes))
	for i, p := range moodPalettes {
		names[i] = p.Name
	}
	return names
}

// IndustryNames returns the known industry names.
func IndustryNames() []string {
	names := make([]string, len(industryPalettes))
	for i, p := range industryPalettes {
		names[i] = p.Name
	}
	return names
}

// Suggestion is one colour related to a base colour, with the wheel
// relationship that produced it.
type Suggestion struct {
	Hex          string `json:"hex"`
	Relationship string `json:"relationship"`
	Description  string `json:"description"`
}

// SuggestRelated proposes colours that pair well with the base colour:
// its complement, two analogous neighbours, a tint and a shade. At most
// count suggestions are returned.
func SuggestRelated(rgb RGB, count int) []Suggestion {
	h, s, v := rgbToHSV(rgb)

	suggestions := []Suggestion{
		{
			Hex:          HSVToRGB(rotateDeg(h, 180), s, v).HexUpper(),
			Relationship: "Complementary",
			Description:  "Opposite on color wheel, creates high contrast",
		},
		{
			Hex:          HSVToRGB(rotateDeg(h, -30), s, v).HexUpper(),
			Relationship: "Analogous",
			Description:  "Adjacent colors, harmonious and pleasing",
		},
		{
			Hex:          HSVToRGB(rotateDeg(h, 30), s, v).HexUpper(),
			Relationship: "Analogous",
			Description:  "Adjacent colors, harmonious and pleasing",
		},
		{
			Hex:          HSVToRGB(h, s*0.6, clamp(v*1.3, 0, 1)).HexUpper(),
			Relationship: "Tint",
			Description:  "Lighter version, good for backgrounds",
		},
		{
			Hex:          HSVToRGB(h, clamp(s*1.2, 0, 1), v*0.6).HexUpper(),
			Relationship: "Shade",
			Description:  "Darker version, good for text/accents",
		},
	}

	if count > 0 && count < len(suggestions) {
		suggestions = suggestions[:count]
	}
	return suggestions
}

// PaletteStyle selects the construction rule used by SmartPalette.
type PaletteStyle string

const (
	StyleBalanced      PaletteStyle = "balanced"
	StyleMonochromatic PaletteStyle = "monochromatic"
	StyleVibrant       PaletteStyle = "vibrant"
	StylePastel        PaletteStyle = "pastel"
	StyleDark          PaletteStyle = "dark"
)

// ValidStyles returns the palette styles SmartPalette understands.
func ValidStyles() []PaletteStyle {
	return []PaletteStyle{StyleBalanced, StyleMonochromatic, StyleVibrant, StylePastel, StyleDark}
}

// SmartPalette derives a five colour palette from a base colour using
// simple colour wheel rules. Unknown styles fall back to the balanced
// rule.
func SmartPalette(rgb RGB, style PaletteStyle) []string {
	h, s, v := rgbToHSV(rgb)
	palette := make([]string, 0, 5)

	switch style {
	case StyleMonochromatic:
		for i := 0; i < 5; i++ {
			factor := float64(i+1) / 6
			nv := v * (0.3 + factor*0.7)
			ns := s * (0.5 + factor*0.5)
			palette = append(palette, HSVToRGB(h, ns, nv).HexUpper())
		}
	case StyleVibrant:
		for i := 0; i < 5; i++ {
			palette = append(palette, HSVToRGB(rotateDeg(h, float64(i)*54), 0.9, 0.9).HexUpper())
		}
	case StylePastel:
		for i := 0; i < 5; i++ {
			palette = append(palette, HSVToRGB(rotateDeg(h, float64(i)*43.2), 0.3, 0.95).HexUpper())
		}
	case StyleDark:
		for i := 0; i < 5; i++ {
			palette = append(palette, HSVToRGB(rotateDeg(h, float64(i)*36), 0.7, 0.3+float64(i)*0.1).HexUpper())
		}
	default:
		palette = append(palette,
			rgb.HexUpper(),
			HSVToRGB(rotateDeg(h, 180), s, v).HexUpper(),
			HSVToRGB(rotateDeg(h, 120), s, v).HexUpper(),
			HSVToRGB(h, s*0.5, clamp(v*1.3, 0, 1)).HexUpper(),
			HSVToRGB(h, clamp(s*1.2, 0, 1), v*0.6).HexUpper(),
		)
	}

	return palette
}

// HarmonyStats are the per channel statistics behind a harmony
// analysis. Variances are population variances, percentages are on a
// 0 to 100 scale.
type HarmonyStats struct {
	HueVariance        float64 `json:"hue_variance"`
	SaturationVariance float64 `json:"saturation_variance"`
	ValueVariance      float64 `json:"value_variance"`
	AvgSaturation      float64 `json:"avg_saturation"`
	AvgBrightness      float64 `json:"avg_brightness"`
}

// HarmonyReport scores how well a set of colours works together.
type HarmonyReport struct {
	HarmonyType    string       `json:"harmony_type"`
	Score          float64      `json:"harmony_score"`
	Statistics     HarmonyStats `json:"statistics"`
	Recommendation string       `json:"recommendation"`
}

// AnalyzeHarmony classifies a colour set by its hue spread and scores
// it from 0 to 100. Hue variance below 100 reads as monochromatic,
// below 1000 as analogous, anything wider as diverse.
func AnalyzeHarmony(colors []RGB) (*HarmonyReport, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 colors, got %d", ErrInsufficientColors, len(colors))
	}

	hues := make([]float64, len(colors))
	sats := make([]float64, len(colors))
	vals := make([]float64, len(colors))
	for i, c := range colors {
		h, s, v := rgbToHSV(c)
		hues[i] = h
		sats[i] = s * 100
		vals[i] = v * 100
	}

	hueVar := variance(hues)
	score := clamp(100-hueVar/100, 0, 100)

	harmony := "Diverse"
	if hueVar < 100 {
		harmony = "Monochromatic"
	} else if hueVar < 1000 {
		harmony = "Analogous"
	}

	recommendation := "Fair"
	if score > 80 {
		recommendation = "Excellent"
	} else if score > 60 {
		recommendation = "Good"
	}

	return &HarmonyReport{
		HarmonyType: harmony,
		Score:       round1(score),
		Statistics: HarmonyStats{
			HueVariance:        round2(hueVar),
			SaturationVariance: round2(variance(sats)),
			ValueVariance:      round2(variance(vals)),
			AvgSaturation:      round1(mean(sats)),
			AvgBrightness:      round1(mean(vals)),
		},
		Recommendation: recommendation,
	}, nil
}

// rotateDeg shifts a hue by delta degrees, wrapping into [0, 360).
func rotateDeg(h, delta float64) float64 {
	h += delta
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}
