package colour

import (
	"errors"
	"testing"
)

func TestMoodPalette(t *testing.T) {
	p, ok := MoodPalette("calm")
	if !ok {
		t.Fatal("calm mood not found")
	}
	if len(p.Colors) != 5 {
		t.Errorf("calm palette has %d colours, want 5", len(p.Colors))
	}
	if p.Description == "" || len(p.Tags) == 0 {
		t.Errorf("incomplete palette: %+v", p)
	}

	if _, ok := MoodPalette("MIXED Case  "); ok {
		t.Error("expected miss for unknown mood")
	}
	if _, ok := MoodPalette("  Warm "); !ok {
		t.Error("expected trimmed case-insensitive match for warm")
	}
}

func TestIndustryPalette(t *testing.T) {
	p, ok := IndustryPalette("tech")
	if !ok {
		t.Fatal("tech industry not found")
	}
	if p.Colors[0] != "#0066CC" {
		t.Errorf("tech palette starts with %q", p.Colors[0])
	}

	if _, ok := IndustryPalette("plumbing"); ok {
		t.Error("expected miss for unknown industry")
	}
}

func TestAllMoodsAndIndustries(t *testing.T) {
	if got := len(AllMoods()); got != 8 {
		t.Errorf("AllMoods returned %d palettes, want 8", got)
	}
	if got := len(AllIndustries()); got != 10 {
		t.Errorf("AllIndustries returned %d palettes, want 10", got)
	}
	if names := MoodNames(); len(names) != 8 || names[0] != "calm" {
		t.Errorf("MoodNames = %v", names)
	}
	if names := IndustryNames(); len(names) != 10 || names[0] != "tech" {
		t.Errorf("IndustryNames = %v", names)
	}
}

func TestSuggestRelated(t *testing.T) {
	rgb := MustParseHex("#3A6EA5")
	suggestions := SuggestRelated(rgb, 5)
	if len(suggestions) != 5 {
		t.Fatalf("got %d suggestions, want 5", len(suggestions))
	}

	wantRelationships := []string{"Complementary", "Analogous", "Analogous", "Tint", "Shade"}
	for i, s := range suggestions {
		if s.Relationship != wantRelationships[i] {
			t.Errorf("suggestion %d relationship = %q, want %q", i, s.Relationship, wantRelationships[i])
		}
		if _, err := ParseHex(s.Hex); err != nil {
			t.Errorf("suggestion %d has invalid hex %q", i, s.Hex)
		}
	}

	if got := SuggestRelated(rgb, 3); len(got) != 3 {
		t.Errorf("count 3 returned %d suggestions", len(got))
	}
}

func TestSmartPalette(t *testing.T) {
	rgb := MustParseHex("#3A6EA5")

	for _, style := range ValidStyles() {
		t.Run(string(style), func(t *testing.T) {
			palette := SmartPalette(rgb, style)
			if len(palette) != 5 {
				t.Fatalf("got %d colours, want 5", len(palette))
			}
			for i, hex := range palette {
				if _, err := ParseHex(hex); err != nil {
					t.Errorf("colour %d invalid: %q", i, hex)
				}
			}
		})
	}
}

func TestSmartPaletteBalancedStartsWithBase(t *testing.T) {
	rgb := MustParseHex("#3A6EA5")
	palette := SmartPalette(rgb, StyleBalanced)
	if palette[0] != rgb.HexUpper() {
		t.Errorf("balanced palette starts with %q, want base colour", palette[0])
	}
}

func TestSmartPaletteUnknownStyle(t *testing.T) {
	rgb := MustParseHex("#3A6EA5")
	got := SmartPalette(rgb, PaletteStyle("bogus"))
	want := SmartPalette(rgb, StyleBalanced)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unknown style differs from balanced at %d: %q vs %q", i, got[i], want[i])
		}
	}
}

func TestAnalyzeHarmonyMonochromatic(t *testing.T) {
	colors := []RGB{
		HSLToRGB(210, 0.7, 0.3),
		HSLToRGB(210, 0.7, 0.5),
		HSLToRGB(210, 0.7, 0.7),
	}

	report, err := AnalyzeHarmony(colors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.HarmonyType != "Monochromatic" {
		t.Errorf("HarmonyType = %q, want Monochromatic", report.HarmonyType)
	}
	if report.Score < 90 {
		t.Errorf("Score = %f, want high score for single-hue set", report.Score)
	}
	if report.Recommendation != "Excellent" {
		t.Errorf("Recommendation = %q", report.Recommendation)
	}
}

func TestAnalyzeHarmonyDiverse(t *testing.T) {
	colors := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}

	report, err := AnalyzeHarmony(colors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.HarmonyType != "Diverse" {
		t.Errorf("HarmonyType = %q, want Diverse", report.HarmonyType)
	}
	if report.Score > 50 {
		t.Errorf("Score = %f, want low score for spread hues", report.Score)
	}
}

func TestAnalyzeHarmonyTooFewColors(t *testing.T) {
	_, err := AnalyzeHarmony([]RGB{{R: 255}})
	if !errors.Is(err, ErrInsufficientColors) {
		t.Errorf("error = %v, want ErrInsufficientColors", err)
	}
}

func TestRotateDeg(t *testing.T) {
	tests := []struct {
		h, delta, want float64
	}{
		{0, 180, 180},
		{350, 30, 20},
		{10, -30, 340},
		{0, 360, 0},
	}
	for _, tt := range tests {
		if got := rotateDeg(tt.h, tt.delta); got != tt.want {
			t.Errorf("rotateDeg(%v, %v) = %v, want %v", tt.h, tt.delta, got, tt.want)
		}
	}
}
