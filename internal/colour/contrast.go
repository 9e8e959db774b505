package colour

import "math"

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours
// according to WCAG 2.0. Returns a value between 1 and 21, where 21 is
// maximum contrast (black vs white). Symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastReport holds WCAG pass/fail levels for a contrast ratio.
// AA requires 4.5:1 for normal text and 3:1 for large text; AAA
// requires 7:1 and 4.5:1.
type ContrastReport struct {
	Ratio     float64 `json:"ratio"`
	AANormal  bool    `json:"aa_normal"`
	AALarge   bool    `json:"aa_large"`
	AAANormal bool    `json:"aaa_normal"`
	AAALarge  bool    `json:"aaa_large"`
}

// NewContrastReport evaluates the WCAG levels for the contrast ratio
// between two colours, rounding the ratio to two decimals for display.
func NewContrastReport(a, b RGB) ContrastReport {
	ratio := ContrastRatio(a, b)
	return ContrastReport{
		Ratio:     round2(ratio),
		AANormal:  ratio >= 4.5,
		AALarge:   ratio >= 3,
		AAANormal: ratio >= 7,
		AAALarge:  ratio >= 4.5,
	}
}

// AccessibilityInfo reports how a colour contrasts against white and
// black backgrounds.
type AccessibilityInfo struct {
	WhiteBackground ContrastReport `json:"white_background"`
	BlackBackground ContrastReport `json:"black_background"`
}

// Accessibility evaluates a colour against white and black backgrounds.
func Accessibility(rgb RGB) AccessibilityInfo {
	return AccessibilityInfo{
		WhiteBackground: NewContrastReport(rgb, RGB{R: 255, G: 255, B: 255}),
		BlackBackground: NewContrastReport(rgb, RGB{}),
	}
}

// Temperature describes whether a colour reads warm or cool.
type Temperature struct {
	Temperature string `json:"temperature"`
	Warmth      int    `json:"warmth_value"`
	Description string `json:"description"`
}

// ColorTemperature classifies a colour as warm, cool or neutral using a
// simple red-minus-blue heuristic with a ±50 dead band.
func ColorTemperature(rgb RGB) Temperature {
	warmth := int(rgb.R) - int(rgb.B)

	switch {
	case warmth > 50:
		return Temperature{Temperature: "warm", Warmth: warmth, Description: "This colour has warm tones"}
	case warmth < -50:
		return Temperature{Temperature: "cool", Warmth: warmth, Description: "This colour has cool tones"}
	default:
		return Temperature{Temperature: "neutral", Warmth: warmth, Description: "This colour is neutral in temperature"}
	}
}

// TextColorSuggestion recommends black or white text for a background.
type TextColorSuggestion struct {
	Background     string  `json:"background"`
	TextColor      string  `json:"suggested_text_color"`
	ContrastRatio  float64 `json:"contrast_ratio"`
	WCAGAA         bool    `json:"wcag_aa"`
	WCAGAAA        bool    `json:"wcag_aaa"`
	Recommendation string  `json:"recommendation"`
}

// SuggestTextColor picks black or white text for a background colour,
// whichever side of mid luminance the background falls on, and reports
// the resulting WCAG compliance.
func SuggestTextColor(background RGB) TextColorSuggestion {
	lum := Luminance(background)

	var text string
	var ratio float64
	if lum > 0.5 {
		text = "#000000"
		ratio = (lum + 0.05) / 0.05
	} else {
		text = "#FFFFFF"
		ratio = 1.05 / (lum + 0.05)
	}

	aa := ratio >= 4.5
	aaa := ratio >= 7.0

	rec := "Poor"
	if aaa {
		rec = "Excellent"
	} else if aa {
		rec = "Good"
	}

	return TextColorSuggestion{
		Background:     background.HexUpper(),
		TextColor:      text,
		ContrastRatio:  round2(ratio),
		WCAGAA:         aa,
		WCAGAAA:        aaa,
		Recommendation: rec,
	}
}
